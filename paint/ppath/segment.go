// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/canvas/math32"
)

// Segment is one cubic bezier segment of a path, from P0 to P3
// with control points P1 and P2. A segment without handles has
// P1 == P0 and P2 == P3, and is a straight line along which the
// parameter t is linear.
type Segment struct {
	P0, P1, P2, P3 math32.Vector2
}

// NumSegments returns the number of segments: one less than the
// number of points for open paths, and one per point for closed ones.
func (p *Path) NumSegments() int {
	n := len(p.Points)
	switch {
	case n < 2:
		return 0
	case p.Closed:
		return n
	default:
		return n - 1
	}
}

// Segment returns segment i, which goes from point i to the next point.
func (p *Path) Segment(i int) Segment {
	from := p.Points[i]
	to := p.Points[(i+1)%len(p.Points)]
	s := Segment{P0: from.Pos(), P1: from.Pos(), P2: to.Pos(), P3: to.Pos()}
	if from.HR != nil {
		s.P1 = *from.HR
	}
	if to.HL != nil {
		s.P2 = *to.HL
	}
	return s
}

// IsLine returns whether the segment is a straight line.
func (s Segment) IsLine() bool {
	return s.P1 == s.P0 && s.P2 == s.P3
}

// Transformed returns the segment with all points transformed by m.
func (s Segment) Transformed(m math32.Matrix2) Segment {
	return Segment{m.MulVector2AsPoint(s.P0), m.MulVector2AsPoint(s.P1), m.MulVector2AsPoint(s.P2), m.MulVector2AsPoint(s.P3)}
}

// Eval returns the point at parameter t in [0, 1].
func (s Segment) Eval(t float32) math32.Vector2 {
	if s.IsLine() {
		return s.P0.Lerp(s.P3, t)
	}
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return s.P0.MulScalar(a).Add(s.P1.MulScalar(b)).Add(s.P2.MulScalar(c)).Add(s.P3.MulScalar(d))
}

// Split splits the segment at parameter t using de Casteljau's algorithm.
func (s Segment) Split(t float32) (Segment, Segment) {
	if s.IsLine() {
		m := s.P0.Lerp(s.P3, t)
		return Segment{s.P0, s.P0, m, m}, Segment{m, m, s.P3, s.P3}
	}
	p01 := s.P0.Lerp(s.P1, t)
	p12 := s.P1.Lerp(s.P2, t)
	p23 := s.P2.Lerp(s.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	m := p012.Lerp(p123, t)
	return Segment{s.P0, p01, p012, m}, Segment{m, p123, p23, s.P3}
}

// Bounds returns the exact bounding box of the segment, including
// the curve extrema.
func (s Segment) Bounds() math32.Box2 {
	bb := math32.B2FromPoints(s.P0, s.P3)
	if s.IsLine() {
		return bb
	}
	ax := -s.P0.X + 3*s.P1.X - 3*s.P2.X + s.P3.X
	bx := 2 * (s.P0.X - 2*s.P1.X + s.P2.X)
	cx := s.P1.X - s.P0.X
	ay := -s.P0.Y + 3*s.P1.Y - 3*s.P2.Y + s.P3.Y
	by := 2 * (s.P0.Y - 2*s.P1.Y + s.P2.Y)
	cy := s.P1.Y - s.P0.Y
	for _, t := range append(quadraticRoots(ax, bx, cx), quadraticRoots(ay, by, cy)...) {
		if t > 0 && t < 1 {
			bb.ExpandByPoint(s.Eval(t))
		}
	}
	return bb
}

// nearestSamples is the number of samples used to bracket the nearest point.
const nearestSamples = 32

// Nearest returns the parameter of the point on the segment nearest
// to pt, and its distance.
func (s Segment) Nearest(pt math32.Vector2) (float32, float32) {
	if s.IsLine() {
		cp, t := math32.NewLine2(s.P0, s.P3).ClosestPointToPoint(pt)
		return t, cp.DistanceTo(pt)
	}
	bt := float32(0)
	bd := s.P0.DistanceToSquared(pt)
	for i := 1; i <= nearestSamples; i++ {
		t := float32(i) / nearestSamples
		if d := s.Eval(t).DistanceToSquared(pt); d < bd {
			bt, bd = t, d
		}
	}
	// golden section refinement around the best sample
	lo := max(bt-1.0/nearestSamples, 0)
	hi := min(bt+1.0/nearestSamples, 1)
	const gr = 0.618034
	for range 24 {
		m1 := hi - gr*(hi-lo)
		m2 := lo + gr*(hi-lo)
		if s.Eval(m1).DistanceToSquared(pt) < s.Eval(m2).DistanceToSquared(pt) {
			hi = m2
		} else {
			lo = m1
		}
	}
	t := (lo + hi) / 2
	if d := s.Eval(t).DistanceToSquared(pt); d < bd {
		bt, bd = t, d
	}
	return bt, math32.Sqrt(bd)
}

// quadraticRoots returns the real roots of a*t^2 + b*t + c.
func quadraticRoots(a, b, c float32) []float32 {
	if math32.IsZero(a) {
		if math32.IsZero(b) {
			return nil
		}
		return []float32{-c / b}
	}
	disc := b*b - 4*a*c
	switch {
	case disc < 0:
		return nil
	case disc == 0:
		return []float32{-b / (2 * a)}
	}
	sq := math32.Sqrt(disc)
	return []float32{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// SegmentHit is the result of a successful [Path.SegmentAt].
type SegmentHit struct {
	// Segment is the index of the segment, starting at point Segment.
	Segment int

	// T is the curve parameter of the hit.
	T float32

	// Dist is the distance of the hit position from the curve.
	Dist float32
}

// SegmentAt returns the segment nearest to pos within the given
// tolerance, with the path points transformed by m, or false.
func (p *Path) SegmentAt(pos math32.Vector2, m math32.Matrix2, tolerance float32) (SegmentHit, bool) {
	best := SegmentHit{Segment: -1}
	for i := range p.NumSegments() {
		s := p.Segment(i).Transformed(m)
		bb := s.Bounds()
		bb.ExpandByScalar(tolerance)
		if !bb.ContainsPoint(pos) {
			continue
		}
		t, d := s.Nearest(pos)
		if d <= tolerance && (best.Segment < 0 || d < best.Dist) {
			best = SegmentHit{Segment: i, T: t, Dist: d}
		}
	}
	return best, best.Segment >= 0
}

// InsertAt splits segment seg at parameter t, inserting and returning
// a new point. The handles of the segment endpoints are shortened so
// that the curve shape is unchanged.
func (p *Path) InsertAt(seg int, t float32) *AnchorPoint {
	from := p.Points[seg]
	to := p.Points[(seg+1)%len(p.Points)]
	s := p.Segment(seg)
	left, right := s.Split(t)
	np := NewAnchorPoint(left.P3.X, left.P3.Y)
	if !s.IsLine() {
		np.Type = Symmetric
		np.HL = &left.P2
		np.HR = &right.P1
		if from.HR != nil {
			from.Auto = false
			from.HR = &left.P1
		}
		if to.HL != nil {
			to.Auto = false
			to.HL = &right.P2
		}
	}
	p.Insert(seg+1, np)
	return np
}
