// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ppath provides the anchor-point path model: an ordered list
// of [AnchorPoint]s with bezier handles and corner types, forming an
// open or closed [Path].
package ppath

import (
	"slices"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/math32"
	"github.com/jinzhu/copier"
)

// Path is an ordered sequence of anchor points, open or closed,
// with its own transform.
type Path struct {

	// Points are the anchor points in path order.
	Points []*AnchorPoint

	// Closed indicates that the last point connects back to the first.
	Closed bool

	// Transform is the transform of the path, applied on rendering.
	Transform math32.Matrix2
}

// New returns a new empty path with an identity transform.
func New(points ...*AnchorPoint) *Path {
	p := &Path{Transform: math32.Identity2()}
	p.Append(points...)
	return p
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.Points)
}

// At returns the point at given index, or nil if out of range.
func (p *Path) At(i int) *AnchorPoint {
	if i < 0 || i >= len(p.Points) {
		return nil
	}
	return p.Points[i]
}

// First returns the first point, or nil for an empty path.
func (p *Path) First() *AnchorPoint {
	return p.At(0)
}

// Last returns the last point, or nil for an empty path.
func (p *Path) Last() *AnchorPoint {
	return p.At(len(p.Points) - 1)
}

// IndexOf returns the index of the point, or -1.
func (p *Path) IndexOf(pt *AnchorPoint) int {
	return slices.Index(p.Points, pt)
}

// Prev returns the point before pt, wrapping around on closed paths.
func (p *Path) Prev(pt *AnchorPoint) *AnchorPoint {
	i := p.IndexOf(pt)
	switch {
	case i > 0:
		return p.Points[i-1]
	case i == 0 && p.Closed && len(p.Points) > 1:
		return p.Last()
	}
	return nil
}

// Next returns the point after pt, wrapping around on closed paths.
func (p *Path) Next(pt *AnchorPoint) *AnchorPoint {
	i := p.IndexOf(pt)
	switch {
	case i < 0:
		return nil
	case i < len(p.Points)-1:
		return p.Points[i+1]
	case p.Closed && len(p.Points) > 1:
		return p.First()
	}
	return nil
}

// IsEndpoint returns whether pt is the first or last point of an open path.
func (p *Path) IsEndpoint(pt *AnchorPoint) bool {
	if p.Closed || pt == nil {
		return false
	}
	return pt == p.First() || pt == p.Last()
}

// Append adds the points at the end of the path.
func (p *Path) Append(pts ...*AnchorPoint) {
	p.Insert(len(p.Points), pts...)
}

// Prepend adds the points at the start of the path.
func (p *Path) Prepend(pts ...*AnchorPoint) {
	p.Insert(0, pts...)
}

// Insert inserts the points before index i. Points already in a path
// are a programmer error.
func (p *Path) Insert(i int, pts ...*AnchorPoint) {
	for _, pt := range pts {
		if pt.Parent != nil {
			panic(errors.Errorf("ppath.Path.Insert: point %v is already in a path", pt))
		}
		pt.Parent = p
	}
	p.Points = slices.Insert(p.Points, i, pts...)
	for _, pt := range pts {
		p.Update(pt)
	}
}

// Remove removes the point from the path, returning false if it is not in it.
func (p *Path) Remove(pt *AnchorPoint) bool {
	i := p.IndexOf(pt)
	if i < 0 {
		return false
	}
	p.RemoveAt(i)
	return true
}

// RemoveAt removes the point at index i.
func (p *Path) RemoveAt(i int) {
	pt := p.Points[i]
	prev, next := p.Prev(pt), p.Next(pt)
	p.Points = slices.Delete(p.Points, i, i+1)
	pt.Parent = nil
	if prev != nil && prev != pt {
		p.updateLeft(prev)
	}
	if next != nil && next != pt {
		p.updateRight(next)
	}
}

// Clear removes all points.
func (p *Path) Clear() {
	for _, pt := range p.Points {
		pt.Parent = nil
	}
	p.Points = nil
}

// Clone returns a deep copy of the path, with all points copied.
func (p *Path) Clone() *Path {
	np := &Path{}
	errors.Must(copier.CopyWithOption(np, p, copier.Option{DeepCopy: true}))
	np.SetParents()
	return np
}

// SetParents sets the Parent of all points to the path.
func (p *Path) SetParents() {
	for _, pt := range p.Points {
		pt.Parent = p
	}
}

// CopyFrom replaces the geometry of the path with that of src,
// reusing the existing points where the counts match.
func (p *Path) CopyFrom(src *Path) {
	p.Closed = src.Closed
	p.Transform = src.Transform
	if len(p.Points) != len(src.Points) {
		p.Clear()
		for _, sp := range src.Points {
			np := sp.Clone()
			np.Parent = p
			p.Points = append(p.Points, np)
		}
		return
	}
	for i, sp := range src.Points {
		sel := p.Points[i].Selected
		p.Points[i].CopyFrom(sp)
		p.Points[i].Selected = sel
	}
}

// GeometryEqual returns whether the two paths have the same geometry.
func (p *Path) GeometryEqual(o *Path) bool {
	if p.Closed != o.Closed || len(p.Points) != len(o.Points) {
		return false
	}
	for i, pt := range p.Points {
		if !pt.GeometryEqual(o.Points[i]) {
			return false
		}
	}
	return true
}

// SelectedPoints returns the points with the Selected flag.
func (p *Path) SelectedPoints() []*AnchorPoint {
	var sel []*AnchorPoint
	for _, pt := range p.Points {
		if pt.Selected {
			sel = append(sel, pt)
		}
	}
	return sel
}

// ClearSelection clears the Selected flag of all points.
func (p *Path) ClearSelection() {
	for _, pt := range p.Points {
		pt.Selected = false
	}
}

// ApplyTransform transforms all points and handles by m.
func (p *Path) ApplyTransform(m math32.Matrix2) {
	for _, pt := range p.Points {
		pt.ApplyTransform(m)
	}
	for _, pt := range p.Points {
		if pt.Auto {
			p.recalc(pt)
		}
	}
}

// Bounds returns the bounding box of the path geometry in local
// coordinates, or an empty box for an empty path.
func (p *Path) Bounds() math32.Box2 {
	return p.TransformedBounds(math32.Identity2())
}

// TransformedBounds returns the bounding box of the path geometry with
// all points first transformed by m.
func (p *Path) TransformedBounds(m math32.Matrix2) math32.Box2 {
	bb := math32.B2Empty()
	n := len(p.Points)
	if n == 0 {
		return bb
	}
	bb.ExpandByPoint(m.MulVector2AsPoint(p.Points[0].Pos()))
	for i := range p.NumSegments() {
		bb.ExpandByBox(p.Segment(i).Transformed(m).Bounds())
	}
	return bb
}

// Update recomputes the derived handles of pt and its dependent
// neighbors after a change of its position or type.
func (p *Path) Update(pt *AnchorPoint) {
	p.recalc(pt)
	p.updateLeft(p.Prev(pt))
	p.updateRight(p.Next(pt))
}

// updateLeft recomputes pt, which is left of a changed point, and the
// point left of it if pt is smooth.
func (p *Path) updateLeft(pt *AnchorPoint) {
	if pt == nil {
		return
	}
	if pt.Auto || pt.Type == Connector {
		p.recalc(pt)
	}
	if pt.Type.IsSmooth() {
		if lp := p.Prev(pt); lp != nil && lp.Auto {
			p.recalc(lp)
		}
	}
}

// updateRight recomputes pt, which is right of a changed point, and the
// point right of it if pt is smooth.
func (p *Path) updateRight(pt *AnchorPoint) {
	if pt == nil {
		return
	}
	if pt.Auto || pt.Type == Connector {
		p.recalc(pt)
	}
	if pt.Type.IsSmooth() {
		if rp := p.Next(pt); rp != nil && rp.Auto {
			p.recalc(rp)
		}
	}
}

// recalc computes the derived handles of a single point:
// Connector takes priority over Auto.
func (p *Path) recalc(pt *AnchorPoint) {
	switch {
	case pt.Type == Connector:
		p.connectorHandles(pt)
	case pt.Auto:
		p.autoHandles(pt)
	}
}

// connectorHandles orients the handles of a connector point along the
// adjacent segments: the right handle continues the segment from the
// previous point, and the left handle the segment from the next one.
// Only the handle lengths are free.
func (p *Path) connectorHandles(pt *AnchorPoint) {
	pos := pt.Pos()
	prev, next := p.Prev(pt), p.Next(pt)
	var dPrev, dNext float32
	if prev != nil {
		dPrev = pos.DistanceTo(prev.Pos())
	}
	if next != nil {
		dNext = pos.DistanceTo(next.Pos())
	}
	along := func(from *AnchorPoint, dist, hlen float32) *math32.Vector2 {
		h := pos.Add(pos.Sub(from.Pos()).MulScalar(hlen / dist))
		return &h
	}
	if pt.Auto {
		pt.HR, pt.HL = nil, nil
		if prev != nil && next != nil && !math32.IsZero(dPrev) && !math32.IsZero(dNext) {
			if next.Type.IsSmooth() {
				pt.HR = along(prev, dPrev, dNext*HandleCoeff)
			}
			if prev.Type.IsSmooth() {
				pt.HL = along(next, dNext, dPrev*HandleCoeff)
			}
		}
		return
	}
	if pt.HL != nil && next != nil && !math32.IsZero(dNext) {
		pt.HL = along(next, dNext, pt.HL.DistanceTo(pos))
	}
	if pt.HR != nil && prev != nil && !math32.IsZero(dPrev) {
		pt.HR = along(prev, dPrev, pt.HR.DistanceTo(pos))
	}
}

// ConnectorHandle returns the derived handle of a connector point that
// continues the segment from the given neighbor, with the length of the
// projection of pos onto that direction. It returns nil when the
// projection is not positive or the direction is undefined.
func ConnectorHandle(anchor, neighbor, pos math32.Vector2) *math32.Vector2 {
	l := math32.NewLine2(neighbor, anchor)
	if math32.IsZero(l.Length()) {
		return nil
	}
	d := l.Project(pos) - l.Length()
	if d <= 0 {
		return nil
	}
	h := anchor.Add(l.Delta().Normal().MulScalar(d))
	return &h
}

// autoHandles computes automatic handles tangent to the circle through
// the point and its neighbors.
func (p *Path) autoHandles(pt *AnchorPoint) {
	prev, next := p.Prev(pt), p.Next(pt)
	pos := pt.Pos()
	if pt.Type.IsSmooth() {
		switch {
		case prev == nil && next == nil:
			return
		case next != nil && (prev == nil || prev.Pos() == pos):
			hr := pos.Add(next.Pos().Sub(pos).MulScalar(HandleCoeff))
			hl := pos.MulScalar(2).Sub(hr)
			pt.HL, pt.HR = &hl, &hr
		case prev != nil && (next == nil || next.Pos() == pos):
			hl := pos.Add(prev.Pos().Sub(pos).MulScalar(HandleCoeff))
			hr := pos.MulScalar(2).Sub(hl)
			pt.HL, pt.HR = &hl, &hr
		default:
			dir := tangent(prev.Pos(), pos, next.Pos())
			hl := pos.Sub(dir.MulScalar(pos.DistanceTo(prev.Pos()) * HandleCoeff))
			hr := pos.Add(dir.MulScalar(pos.DistanceTo(next.Pos()) * HandleCoeff))
			pt.HL, pt.HR = &hl, &hr
		}
		return
	}
	if prev != nil && prev.Pos() != pos {
		pt.HL = nil
		if prev.Type.IsSmooth() {
			pt.HL = sideHandle(pos, prev, p.Prev(prev))
		}
	}
	if next != nil && next.Pos() != pos {
		pt.HR = nil
		if next.Type.IsSmooth() {
			pt.HR = sideHandle(pos, next, p.Next(next))
		}
	}
}

// sideHandle returns the automatic handle of a corner point toward a
// smooth neighbor nb, whose other neighbor is far.
func sideHandle(pos math32.Vector2, nb, far *AnchorPoint) *math32.Vector2 {
	np := nb.Pos()
	if far == nil || far.Pos() == np {
		h := pos.Add(np.Sub(pos).MulScalar(HandleCoeff))
		return &h
	}
	dir := tangent(far.Pos(), pos, np)
	if dir.Dot(np.Sub(pos)) < 0 {
		dir = dir.Negate()
	}
	h := pos.Add(dir.MulScalar(pos.DistanceTo(np) * HandleCoeff))
	return &h
}

// tangent returns the unit tangent at b of the circle through a, b and c,
// oriented from a toward c. When the points are collinear it is the
// direction from a to c, or the perpendicular of a-b when a and c coincide.
func tangent(a, b, c math32.Vector2) math32.Vector2 {
	ctr, ok := circumcenter(a, b, c)
	if !ok {
		ac := c.Sub(a)
		if math32.IsZero(ac.LengthSquared()) {
			ab := b.Sub(a)
			return math32.Vec2(-ab.Y, ab.X).Normal()
		}
		return ac.Normal()
	}
	r := b.Sub(ctr)
	dir := math32.Vec2(-r.Y, r.X).Normal()
	if dir.Dot(c.Sub(a)) < 0 {
		dir = dir.Negate()
	}
	return dir
}

// circumcenter returns the center of the circle through the three points,
// and false if they are collinear.
func circumcenter(a, b, c math32.Vector2) (math32.Vector2, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math32.IsZero(d) {
		return math32.Vector2{}, false
	}
	a2, b2, c2 := a.LengthSquared(), b.LengthSquared(), c.LengthSquared()
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	return math32.Vec2(ux, uy), true
}
