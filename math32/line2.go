// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Line2 represents a 2D line segment defined by a start and an end point.
type Line2 struct {
	Start Vector2
	End   Vector2
}

// NewLine2 creates and returns a new Line2 with the
// specified start and end points.
func NewLine2(start, end Vector2) Line2 {
	return Line2{start, end}
}

// Delta calculates the vector from the start to end point of this line segment.
func (l Line2) Delta() Vector2 {
	return l.End.Sub(l.Start)
}

// Length returns the length from the start point to the end point.
func (l Line2) Length() float32 {
	return l.Start.DistanceTo(l.End)
}

// note: ClosestPointToPoint is adapted from https://math.stackexchange.com/questions/2193720/find-a-point-on-a-line-segment-which-is-the-closest-to-other-point-not-on-the-li

// ClosestPointToPoint returns the point along the line that is
// closest to the given point, and its parameter in [0, 1].
func (l Line2) ClosestPointToPoint(point Vector2) (Vector2, float32) {
	v := l.Delta()
	ds := v.LengthSquared()
	if ds == 0 {
		return l.Start, 0
	}
	t := v.Dot(point.Sub(l.Start)) / ds
	switch {
	case t <= 0:
		return l.Start, 0
	case t >= 1:
		return l.End, 1
	default:
		return l.Start.Add(v.MulScalar(t)), t
	}
}

// Project returns the signed length of the projection of point onto
// the direction of the line, measured from Start.
func (l Line2) Project(point Vector2) float32 {
	dir := l.Delta().Normal()
	return dir.Dot(point.Sub(l.Start))
}

// tanPiDiv8 is tan(22.5°), the boundary between snapping to an axis
// and snapping to a diagonal.
const tanPiDiv8 = 0.4142

// Constrain45 returns pt constrained so that the vector from prev to
// the result is a multiple of 45 degrees. The coordinate along the
// dominant axis is kept; the other is snapped either onto the axis
// through prev or onto the diagonal.
func Constrain45(prev, pt Vector2) Vector2 {
	dx := Abs(prev.X - pt.X)
	dy := Abs(prev.Y - pt.Y)
	if IsZero(dx) || IsZero(dy) || IsZero(dx-dy) {
		return pt
	}
	res := pt
	if dx > dy {
		switch {
		case dy/dx < tanPiDiv8:
			res.Y = prev.Y
		case prev.Y > pt.Y:
			res.Y = prev.Y - dx
		default:
			res.Y = prev.Y + dx
		}
		return res
	}
	switch {
	case dx/dy < tanPiDiv8:
		res.X = prev.X
	case prev.X > pt.X:
		res.X = prev.X - dy
	default:
		res.X = prev.X + dy
	}
	return res
}
