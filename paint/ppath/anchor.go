// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"fmt"

	"cogentcore.org/canvas/math32"
)

// HandleCoeff is the relative length of automatically computed handles,
// as a fraction of the distance to the neighbor point.
const HandleCoeff = 0.39026286 // 0.551915024494 / sqrt(2)

// AnchorPoint is one vertex of a [Path], with optional control handles
// on its left (incoming) and right (outgoing) side.
type AnchorPoint struct {

	// Type is the handle coupling or corner style of the point.
	Type Corners

	// Auto indicates that the handles are computed automatically
	// from the neighbor points, and are not stored.
	Auto bool

	// X, Y is the position of the anchor.
	X, Y float32

	// HL is the left handle, or nil if there is none.
	HL *math32.Vector2

	// HR is the right handle, or nil if there is none.
	HR *math32.Vector2

	// Uniform keeps the two shoulder lengths equal while editing.
	Uniform bool

	// CL and CR are the left and right shoulder lengths of a styled
	// corner, 0 for none.
	CL, CR float32

	// Selected is set for the points in the current part selection.
	Selected bool

	// Parent is the path the point belongs to.
	Parent *Path `copier:"-"`
}

// NewAnchorPoint returns a new asymmetric point without handles at the given position.
func NewAnchorPoint(x, y float32) *AnchorPoint {
	return &AnchorPoint{X: x, Y: y}
}

func (ap *AnchorPoint) String() string {
	s := fmt.Sprintf("%v(%g, %g)", ap.Type, ap.X, ap.Y)
	if ap.HL != nil {
		s += fmt.Sprintf(" hl%v", *ap.HL)
	}
	if ap.HR != nil {
		s += fmt.Sprintf(" hr%v", *ap.HR)
	}
	return s
}

// Pos returns the position of the anchor.
func (ap *AnchorPoint) Pos() math32.Vector2 {
	return math32.Vec2(ap.X, ap.Y)
}

// SetPos sets the position of the anchor, without moving the handles.
func (ap *AnchorPoint) SetPos(pos math32.Vector2) {
	ap.X, ap.Y = pos.X, pos.Y
}

// HasHandles returns whether the point has at least one handle.
func (ap *AnchorPoint) HasHandles() bool {
	return ap.HL != nil || ap.HR != nil
}

// ClearHandles removes both handles and turns off automatic handles.
func (ap *AnchorPoint) ClearHandles() {
	ap.Auto = false
	ap.HL = nil
	ap.HR = nil
}

// SetHL sets the left handle. For a smooth point the right handle is
// then rotated onto the same line, keeping its length for Symmetric and
// taking the same length for Mirror.
func (ap *AnchorPoint) SetHL(h *math32.Vector2) {
	ap.HL = vecPtr(h)
	if h != nil && !ap.Auto && ap.Type.IsSmooth() && ap.HR != nil {
		ap.HR = ap.alignHandle(*h, *ap.HR)
	}
}

// SetHR sets the right handle, coupling the left one as [AnchorPoint.SetHL] does.
func (ap *AnchorPoint) SetHR(h *math32.Vector2) {
	ap.HR = vecPtr(h)
	if h != nil && !ap.Auto && ap.Type.IsSmooth() && ap.HL != nil {
		ap.HL = ap.alignHandle(*h, *ap.HL)
	}
}

// alignHandle returns the other handle rotated to be on the line
// through lead and the anchor, on the opposite side.
func (ap *AnchorPoint) alignHandle(lead, other math32.Vector2) *math32.Vector2 {
	pos := ap.Pos()
	dir := pos.Sub(lead)
	dl := dir.Length()
	if math32.IsZero(dl) {
		return &other
	}
	hl := other.DistanceTo(pos)
	if ap.Type == Mirror {
		hl = dl
	}
	h := pos.Add(dir.MulScalar(hl / dl))
	return &h
}

// SetShoulders sets the shoulder lengths. When Uniform is set,
// a change of one side is mirrored to the other.
func (ap *AnchorPoint) SetShoulders(cl, cr float32) {
	if ap.Uniform {
		switch {
		case cl != ap.CL:
			cr = cl
		case cr != ap.CR:
			cl = cr
		}
	}
	ap.CL, ap.CR = max(cl, 0), max(cr, 0)
}

// HasShoulders returns whether a shoulder length is set.
func (ap *AnchorPoint) HasShoulders() bool {
	return ap.CL > 0 || ap.CR > 0
}

// Clone returns a copy of the point, not attached to any path.
func (ap *AnchorPoint) Clone() *AnchorPoint {
	np := &AnchorPoint{}
	np.CopyFrom(ap)
	np.Selected = ap.Selected
	return np
}

// CopyFrom copies the geometry of the given point: type, position,
// handles and shoulders. Selection and parent are kept.
func (ap *AnchorPoint) CopyFrom(src *AnchorPoint) {
	ap.Type = src.Type
	ap.Auto = src.Auto
	ap.X, ap.Y = src.X, src.Y
	ap.HL = vecPtr(src.HL)
	ap.HR = vecPtr(src.HR)
	ap.Uniform = src.Uniform
	ap.CL, ap.CR = src.CL, src.CR
}

// GeometryEqual returns whether the two points have the same geometry.
func (ap *AnchorPoint) GeometryEqual(o *AnchorPoint) bool {
	return ap.Type == o.Type && ap.Auto == o.Auto && ap.X == o.X && ap.Y == o.Y &&
		vecPtrEqual(ap.HL, o.HL) && vecPtrEqual(ap.HR, o.HR) &&
		ap.CL == o.CL && ap.CR == o.CR
}

// Transformed returns a detached copy of the point with the position and
// handles transformed by m. Shoulder lengths are not transformed.
func (ap *AnchorPoint) Transformed(m math32.Matrix2) *AnchorPoint {
	np := ap.Clone()
	np.ApplyTransform(m)
	return np
}

// ApplyTransform transforms the position and handles of the point.
func (ap *AnchorPoint) ApplyTransform(m math32.Matrix2) {
	ap.SetPos(m.MulVector2AsPoint(ap.Pos()))
	if ap.HL != nil {
		h := m.MulVector2AsPoint(*ap.HL)
		ap.HL = &h
	}
	if ap.HR != nil {
		h := m.MulVector2AsPoint(*ap.HR)
		ap.HR = &h
	}
}

// Index returns the index of the point in its path, or -1.
func (ap *AnchorPoint) Index() int {
	if ap.Parent == nil {
		return -1
	}
	return ap.Parent.IndexOf(ap)
}

// Prev returns the previous point, wrapping around on closed paths.
func (ap *AnchorPoint) Prev() *AnchorPoint {
	if ap.Parent == nil {
		return nil
	}
	return ap.Parent.Prev(ap)
}

// Next returns the next point, wrapping around on closed paths.
func (ap *AnchorPoint) Next() *AnchorPoint {
	if ap.Parent == nil {
		return nil
	}
	return ap.Parent.Next(ap)
}

// LeftShoulder returns the position of the left shoulder point, or nil.
// If fictive is false, the point is only returned when there is a real
// corner, meaning both shoulders are set.
func (ap *AnchorPoint) LeftShoulder(fictive bool) *math32.Vector2 {
	if ap.CL <= 0 || (!fictive && ap.CR <= 0) {
		return nil
	}
	prev := ap.Prev()
	if prev == nil {
		return nil
	}
	return leftShoulder(ap, prev, false)
}

// RightShoulder returns the position of the right shoulder point, or nil.
func (ap *AnchorPoint) RightShoulder(fictive bool) *math32.Vector2 {
	if ap.CR <= 0 || (!fictive && ap.CL <= 0) {
		return nil
	}
	next := ap.Next()
	if next == nil {
		return nil
	}
	return rightShoulder(ap, next, false)
}

// LeftShoulderLimit returns the farthest position the left shoulder
// may be extended to, or nil when there is no previous point.
func (ap *AnchorPoint) LeftShoulderLimit() *math32.Vector2 {
	prev := ap.Prev()
	if prev == nil {
		return nil
	}
	return leftShoulder(ap, prev, true)
}

// RightShoulderLimit returns the farthest position the right shoulder
// may be extended to, or nil when there is no next point.
func (ap *AnchorPoint) RightShoulderLimit() *math32.Vector2 {
	next := ap.Next()
	if next == nil {
		return nil
	}
	return rightShoulder(ap, next, true)
}

func leftShoulder(cur, prev *AnchorPoint, limit bool) *math32.Vector2 {
	var h *math32.Vector2
	switch {
	case cur.HL != nil:
		h = cur.HL
	case prev.HR != nil:
		h = prev.HR
	}
	if h != nil {
		if limit {
			return vecPtr(h)
		}
		p := pointAtLength(cur.Pos(), *h, cur.CL)
		return &p
	}
	if limit {
		p := prev.Pos()
		return &p
	}
	return shoulderPoint(cur.Pos(), cur.CL, prev.Pos(), prev.CR)
}

func rightShoulder(cur, next *AnchorPoint, limit bool) *math32.Vector2 {
	var h *math32.Vector2
	switch {
	case cur.HR != nil:
		h = cur.HR
	case next.HL != nil:
		h = next.HL
	}
	if h != nil {
		if limit {
			return vecPtr(h)
		}
		p := pointAtLength(cur.Pos(), *h, cur.CR)
		return &p
	}
	if limit {
		p := next.Pos()
		return &p
	}
	return shoulderPoint(cur.Pos(), cur.CR, next.Pos(), next.CL)
}

// shoulderPoint returns the shoulder of p1 toward p2, sharing the
// segment proportionally when the two shoulders overlap.
func shoulderPoint(p1 math32.Vector2, s1 float32, p2 math32.Vector2, s2 float32) *math32.Vector2 {
	s1, s2 = max(s1, 0), max(s2, 0)
	total := s1 + s2
	if total <= 0 {
		return nil
	}
	dist := p1.DistanceTo(p2)
	d := s1
	if dist < total {
		d = dist * s1 / total
	}
	p := pointAtLength(p1, p2, d)
	return &p
}

// pointAtLength returns the point at distance d from a toward b.
func pointAtLength(a, b math32.Vector2, d float32) math32.Vector2 {
	dir := b.Sub(a)
	l := dir.Length()
	if math32.IsZero(l) {
		return a
	}
	return a.Add(dir.MulScalar(d / l))
}

func vecPtr(v *math32.Vector2) *math32.Vector2 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func vecPtrEqual(a, b *math32.Vector2) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
