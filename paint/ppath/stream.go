// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"fmt"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/math32"
)

// Serialize encodes the point into a compact stream:
//
//	[TYPE] [AUTO] X Y ['h' HLX HLY] ['H' HRX HRY] ['C' CL CR]
//
// TYPE is the [Corners.Code], omitted for Asymmetric. AUTO is true,
// omitted when false. Handles are only written when not automatic.
func (ap *AnchorPoint) Serialize() []any {
	var s []any
	if ap.Type != Asymmetric {
		s = append(s, ap.Type.Code())
	}
	if ap.Auto {
		s = append(s, true)
	}
	s = append(s, ap.X, ap.Y)
	if !ap.Auto {
		if ap.HL != nil {
			s = append(s, "h", ap.HL.X, ap.HL.Y)
		}
		if ap.HR != nil {
			s = append(s, "H", ap.HR.X, ap.HR.Y)
		}
	}
	if ap.CL != 0 || ap.CR != 0 {
		s = append(s, "C", ap.CL, ap.CR)
	}
	return s
}

// Deserialize sets the point from a stream made by [AnchorPoint.Serialize].
// Numbers may be any of the numeric types produced by decoders.
// Unknown markers are skipped.
func (ap *AnchorPoint) Deserialize(s []any) error {
	idx := 0
	if len(s) > 0 {
		if code, ok := s[0].(string); ok {
			if err := ap.Type.SetString(code); err != nil {
				return err
			}
			idx++
		}
	}
	if len(s) > idx {
		if auto, ok := s[idx].(bool); ok {
			ap.Auto = auto
			idx++
		}
	}
	if idx+1 >= len(s) {
		return fmt.Errorf("ppath.AnchorPoint.Deserialize: missing coordinates in %v", s)
	}
	var err error
	ap.X, err = toFloat(s[idx])
	if err != nil {
		return err
	}
	ap.Y, err = toFloat(s[idx+1])
	if err != nil {
		return err
	}
	idx += 2
	for idx+2 < len(s) {
		a, erra := toFloat(s[idx+1])
		b, errb := toFloat(s[idx+2])
		if err := errors.Join(erra, errb); err != nil {
			return err
		}
		switch s[idx] {
		case "h":
			ap.HL = &math32.Vector2{X: a, Y: b}
		case "H":
			ap.HR = &math32.Vector2{X: a, Y: b}
		case "C":
			ap.CL, ap.CR = a, b
		}
		idx += 3
	}
	return nil
}

// Serialize encodes all points of the path, each in the form of
// [AnchorPoint.Serialize].
func (p *Path) Serialize() [][]any {
	s := make([][]any, len(p.Points))
	for i, pt := range p.Points {
		s[i] = pt.Serialize()
	}
	return s
}

// Deserialize replaces the points of the path with the decoded streams.
// The points are restored exactly as stored, without recomputing
// any derived handles except automatic ones.
func (p *Path) Deserialize(s [][]any) error {
	pts := make([]*AnchorPoint, len(s))
	for i, ps := range s {
		pt := &AnchorPoint{}
		if err := pt.Deserialize(ps); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		pt.Parent = p
		pts[i] = pt
	}
	p.Clear()
	p.Points = pts
	for _, pt := range pts {
		if pt.Auto {
			p.recalc(pt)
		}
	}
	return nil
}

func toFloat(v any) (float32, error) {
	switch x := v.(type) {
	case float32:
		return x, nil
	case float64:
		return float32(x), nil
	case int:
		return float32(x), nil
	case int64:
		return float32(x), nil
	case uint64:
		return float32(x), nil
	}
	return 0, fmt.Errorf("ppath: %v (%T) is not a number", v, v)
}
