// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guides

import (
	"cogentcore.org/canvas/math32"
)

// Lines snaps points within Distance of a set of vertical and
// horizontal lines, such as page edges and user guide lines.
// The snap line is reported as a visual spanning Extent.
type Lines struct {

	// X are the positions of the vertical lines.
	X []float32

	// Y are the positions of the horizontal lines.
	Y []float32

	// Distance is the snap distance.
	Distance float32

	// Extent is the area the visual lines span.
	Extent math32.Box2
}

func (ln *Lines) IsActive() bool {
	return ln.Distance > 0 && (len(ln.X) > 0 || len(ln.Y) > 0)
}

func (ln *Lines) Map(p math32.Vector2) *Snap {
	s := &Snap{}
	if x, d, ok := nearest(ln.X, p.X, ln.Distance); ok {
		l := math32.NewLine2(math32.Vec2(x, ln.Extent.Min.Y), math32.Vec2(x, ln.Extent.Max.Y))
		s.X = &Axis{Value: x, Delta: d, Visual: &l}
	}
	if y, d, ok := nearest(ln.Y, p.Y, ln.Distance); ok {
		l := math32.NewLine2(math32.Vec2(ln.Extent.Min.X, y), math32.Vec2(ln.Extent.Max.X, y))
		s.Y = &Axis{Value: y, Delta: d, Visual: &l}
	}
	if s.X == nil && s.Y == nil {
		return nil
	}
	return s
}

// nearest returns the value in vals closest to v, if within dist.
func nearest(vals []float32, v, dist float32) (float32, float32, bool) {
	best, bd := float32(0), dist
	found := false
	for _, x := range vals {
		if d := math32.Abs(x - v); d <= bd {
			best, bd, found = x, d, true
		}
	}
	return best, bd, found
}
