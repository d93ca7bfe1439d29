// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"
	"slices"

	"cogentcore.org/canvas/guides"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/paint/ppath"
	"cogentcore.org/canvas/svg"
)

// PathParts are the kinds of parts of a path.
type PathParts int32

const (
	// PartPoint is an anchor point.
	PartPoint PathParts = iota

	// PartLeftHandle is the left handle of a point.
	PartLeftHandle

	// PartRightHandle is the right handle of a point.
	PartRightHandle

	// PartLeftShoulder is the left shoulder of a styled corner.
	PartLeftShoulder

	// PartRightShoulder is the right shoulder of a styled corner.
	PartRightShoulder

	// PartSegment is the segment between a point and the next one.
	PartSegment
)

var pathPartsNames = [...]string{"Point", "LeftHandle", "RightHandle", "LeftShoulder", "RightShoulder", "Segment"}

func (pp PathParts) String() string {
	if pp >= 0 && int(pp) < len(pathPartsNames) {
		return pathPartsNames[pp]
	}
	return fmt.Sprintf("PathParts(%d)", int32(pp))
}

// PathPart is the part ID of the parts of a path.
type PathPart struct {
	Type PathParts

	// Point is the point of the part, and the start of a segment.
	Point *ppath.AnchorPoint

	// Next is the end of a segment.
	Next *ppath.AnchorPoint
}

// PointsSelection classifies the point selection of a path.
type PointsSelection int32

const (
	// NoPoints is no selected point.
	NoPoints PointsSelection = iota

	// FirstPoint is only the first point of an open path.
	FirstPoint

	// LastPoint is only the last point of an open path.
	LastPoint

	// MiddlePoint is one point that is not an endpoint.
	MiddlePoint

	// SeveralPoints is more than one point.
	SeveralPoints
)

var pointsSelectionNames = [...]string{"NoPoints", "FirstPoint", "LastPoint", "MiddlePoint", "SeveralPoints"}

func (ps PointsSelection) String() string {
	if ps >= 0 && int(ps) < len(pointsSelectionNames) {
		return pointsSelectionNames[ps]
	}
	return fmt.Sprintf("PointsSelection(%d)", int32(ps))
}

// PathEditor is the editor of [svg.Path] elements. Edits are done on
// a preview copy of the path, which is transferred to the path when
// applied.
type PathEditor struct {
	EditorBase

	// preview is the preview copy of the path, or nil.
	preview *ppath.Path

	// previewIndex maps the indexes of the path points to the
	// indexes of their preview points.
	previewIndex []int

	// extending is set while the path is extended at one of its ends.
	extending bool
}

// Path returns the edited path element.
func (pe *PathEditor) Path() *svg.Path {
	return pe.Node.(*svg.Path)
}

// Data returns the geometry of the edited path.
func (pe *PathEditor) Data() *ppath.Path {
	return pe.Path().Data
}

// IsActiveExtendingMode returns whether the path is being extended.
func (pe *PathEditor) IsActiveExtendingMode() bool {
	return pe.extending
}

// SetActiveExtendingMode sets whether the path is being extended.
func (pe *PathEditor) SetActiveExtendingMode(on bool) {
	pe.extending = on
}

// TransformFromNative returns the transform from the path point
// coordinates to the view, for the given document to view transform.
func (pe *PathEditor) TransformFromNative(xf math32.Matrix2) math32.Matrix2 {
	return xf.Mul(pe.Data().Transform)
}

// paintPath returns the path drawn by the editor: the preview if there is one.
func (pe *PathEditor) paintPath() *ppath.Path {
	if pe.preview != nil {
		return pe.preview
	}
	return pe.Data()
}

// PathPreview returns the preview of the path, creating it as a copy
// of the path if there is none. forceNew releases an existing preview
// first. If anchor is non-nil, a new preview has only the preview of
// that point selected; otherwise the selection is copied.
func (pe *PathEditor) PathPreview(forceNew bool, anchor *ppath.AnchorPoint) *ppath.Path {
	if forceNew {
		pe.ReleasePathPreview()
	}
	if pe.preview != nil {
		return pe.preview
	}
	pe.RequestInvalidation()
	src := pe.Data()
	pe.preview = src.Clone()
	pe.previewIndex = make([]int, src.Len())
	for i := range pe.previewIndex {
		pe.previewIndex[i] = i
	}
	if anchor != nil {
		for i, pt := range pe.preview.Points {
			pt.Selected = src.Points[i] == anchor
		}
	}
	pe.RequestInvalidation()
	return pe.preview
}

// HasPreview returns whether there is a path preview.
func (pe *PathEditor) HasPreview() bool {
	return pe.preview != nil
}

// ReleasePathPreview drops the path preview.
func (pe *PathEditor) ReleasePathPreview() {
	if pe.preview == nil {
		return
	}
	pe.RequestInvalidation()
	pe.preview = nil
	pe.previewIndex = nil
	pe.RequestInvalidation()
}

// PreviewPoint returns the preview point of the given path point,
// creating the preview as needed. Preview points are returned as is.
func (pe *PathEditor) PreviewPoint(src *ppath.AnchorPoint) *ppath.AnchorPoint {
	if src == nil {
		return nil
	}
	if pe.preview != nil && src.Parent == pe.preview {
		return src
	}
	p := pe.PathPreview(false, nil)
	i := pe.Data().IndexOf(src)
	if i < 0 || i >= len(pe.previewIndex) {
		return nil
	}
	return p.At(pe.previewIndex[i])
}

// ShiftPreviewTable shifts the preview indexes of all path points,
// after points have been inserted at the start of the preview.
func (pe *PathEditor) ShiftPreviewTable(shift int) {
	for i := range pe.previewIndex {
		pe.previewIndex[i] += shift
	}
}

// RemovePreviewPoint removes a point from the preview, keeping
// the preview indexes of the other points.
func (pe *PathEditor) RemovePreviewPoint(pt *ppath.AnchorPoint) {
	if pe.preview == nil {
		return
	}
	i := pe.preview.IndexOf(pt)
	if i < 0 {
		return
	}
	pe.preview.RemoveAt(i)
	for j, k := range pe.previewIndex {
		if k > i {
			pe.previewIndex[j] = k - 1
		}
	}
	pe.RequestInvalidation()
}

// SelectedPoints returns the points covered by the part selection,
// in path order.
func (pe *PathEditor) SelectedPoints() []*ppath.AnchorPoint {
	var pts []*ppath.AnchorPoint
	for _, pt := range pe.Data().Points {
		if pe.isPointCovered(pt) {
			pts = append(pts, pt)
		}
	}
	return pts
}

func (pe *PathEditor) isPointCovered(pt *ppath.AnchorPoint) bool {
	for _, id := range pe.PartSelection {
		pp, ok := id.(PathPart)
		if !ok {
			continue
		}
		if pp.Point == pt || (pp.Type == PartSegment && pp.Next == pt) {
			return true
		}
	}
	return false
}

// SelectOnePoint makes pt the only selected point.
func (pe *PathEditor) SelectOnePoint(pt *ppath.AnchorPoint) {
	pe.UpdatePartSelection(false, []any{PathPart{Type: PartPoint, Point: pt}})
}

// PointsSelectionType classifies the current point selection.
// The points of a closed path are never first or last.
func (pe *PathEditor) PointsSelectionType() PointsSelection {
	n := 0
	var one *ppath.AnchorPoint
	for _, id := range pe.PartSelection {
		pp, ok := id.(PathPart)
		if !ok {
			continue
		}
		switch pp.Type {
		case PartPoint:
			n++
			one = pp.Point
		case PartSegment:
			n += 2
		}
	}
	switch {
	case n == 0:
		return NoPoints
	case n > 1:
		return SeveralPoints
	}
	p := pe.Data()
	switch {
	case p.Closed:
		return MiddlePoint
	case one == p.Last():
		return LastPoint
	case one == p.First():
		return FirstPoint
	}
	return MiddlePoint
}

func (pe *PathEditor) setPartSelection(sel []any) {
	sel = filterPathSelection(sel)
	pe.RequestInvalidation()
	pe.Data().ClearSelection()
	for _, id := range sel {
		pp := id.(PathPart)
		pp.Point.Selected = true
		if pp.Type == PartSegment && pp.Next != nil {
			pp.Next.Selected = true
		}
	}
	pe.PartSelection = sel
	pe.RequestInvalidation()
}

// filterPathSelection keeps the point and segment parts, dropping the
// points that are an end of a selected segment.
func filterPathSelection(sel []any) []any {
	var segs []PathPart
	for _, id := range sel {
		if pp, ok := id.(PathPart); ok && pp.Type == PartSegment {
			segs = append(segs, pp)
		}
	}
	var res []any
	for _, id := range sel {
		pp, ok := id.(PathPart)
		if !ok || (pp.Type != PartPoint && pp.Type != PartSegment) {
			continue
		}
		if pp.Type == PartPoint && slices.ContainsFunc(segs, func(s PathPart) bool {
			return s.Point == pp.Point || s.Next == pp.Point
		}) {
			continue
		}
		res = append(res, id)
	}
	return res
}

// IsDeletePartsAllowed returns whether some but not all points are selected.
func (pe *PathEditor) IsDeletePartsAllowed() bool {
	n := len(pe.SelectedPoints())
	return n > 0 && n < pe.Data().Len()
}

// DeletePartsSelected removes the selected points from the path.
func (pe *PathEditor) DeletePartsSelected() {
	pts := pe.SelectedPoints()
	pe.ReleasePathPreview()
	pe.RequestInvalidation()
	for _, pt := range pts {
		pe.Data().Remove(pt)
	}
	pe.PartSelection = nil
	pe.RequestInvalidation()
}

// HitAnchorPoint returns whether the view location is on the
// annotation of the point, for the document to view transform xf.
func (pe *PathEditor) HitAnchorPoint(pt *ppath.AnchorPoint, loc math32.Vector2, xf math32.Matrix2, tolerance float32) bool {
	p := pt.Parent
	if p == nil {
		p = pe.Data()
	}
	return hitAnnotation(xf.Mul(p.Transform), pt.Pos(), loc, tolerance)
}

func hitAnnotation(xf math32.Matrix2, center, loc math32.Vector2, tolerance float32) bool {
	bb := annotationBBox(xf, center, true)
	bb.ExpandByScalar(tolerance)
	return bb.ContainsPoint(loc)
}

// showLeftHandle returns whether the left handle of pt is shown.
func showLeftHandle(pt *ppath.AnchorPoint) bool {
	if pt.HL == nil {
		return false
	}
	prev := pt.Prev()
	return pt.Selected || (prev != nil && prev.Selected)
}

// showRightHandle returns whether the right handle of pt is shown.
func showRightHandle(pt *ppath.AnchorPoint) bool {
	if pt.HR == nil {
		return false
	}
	next := pt.Next()
	return pt.Selected || (next != nil && next.Selected)
}

func (pe *PathEditor) BBox(xf math32.Matrix2) math32.Box2 {
	if !pe.HasFlag(Selected) && !pe.HasFlag(Highlighted) {
		return math32.B2Empty()
	}
	p := pe.paintPath()
	vx := pe.viewTransform(xf).Mul(p.Transform)
	bb := p.TransformedBounds(vx)
	if bb.IsEmpty() {
		return bb
	}
	bb.ExpandByScalar(1)
	if !pe.ShowAnnotations() {
		return bb
	}
	for _, pt := range p.Points {
		bb.ExpandByBox(annotationBBox(vx, pt.Pos(), false))
		if showLeftHandle(pt) {
			bb.ExpandByBox(annotationBBox(vx, *pt.HL, true))
		}
		if showRightHandle(pt) {
			bb.ExpandByBox(annotationBBox(vx, *pt.HR, true))
		}
	}
	return bb
}

func (pe *PathEditor) partInfoAt(loc math32.Vector2, xf math32.Matrix2, tolerance float32) *PartInfo {
	if !pe.ShowAnnotations() {
		return nil
	}
	p := pe.Data()
	vx := xf.Mul(p.Transform)
	isolated := func(tp PathParts, pt *ppath.AnchorPoint) *PartInfo {
		return &PartInfo{Editor: pe, ID: PathPart{Type: tp, Point: pt}, Isolated: true}
	}
	for _, pt := range p.Points {
		if showRightHandle(pt) && hitAnnotation(vx, *pt.HR, loc, tolerance) {
			return isolated(PartRightHandle, pt)
		}
		if showLeftHandle(pt) && hitAnnotation(vx, *pt.HL, loc, tolerance) {
			return isolated(PartLeftHandle, pt)
		}
		if pt.Selected && pt.Type.IsCorner() {
			if rs := pt.RightShoulder(false); rs != nil && hitAnnotation(vx, *rs, loc, tolerance) {
				return isolated(PartRightShoulder, pt)
			}
			if ls := pt.LeftShoulder(false); ls != nil && hitAnnotation(vx, *ls, loc, tolerance) {
				return isolated(PartLeftShoulder, pt)
			}
		}
		if hitAnnotation(vx, pt.Pos(), loc, tolerance) {
			return &PartInfo{Editor: pe, ID: PathPart{Type: PartPoint, Point: pt}, Data: pt.Selected, Selectable: true}
		}
	}
	if pe.HasFlag(Detail) {
		if hit, ok := p.SegmentAt(loc, vx, pe.Editor.Settings.PickDist); ok {
			next := p.At((hit.Segment + 1) % p.Len())
			return &PartInfo{Editor: pe, ID: PathPart{Type: PartSegment, Point: p.At(hit.Segment), Next: next}, Data: hit, Selectable: true}
		}
	}
	return nil
}

// MovePart moves a handle or shoulder of the preview to the view position.
func (pe *PathEditor) MovePart(part *PartInfo, pos math32.Vector2, viewToDoc math32.Matrix2, g *guides.Guides, shift, option bool) {
	pp, ok := part.ID.(PathPart)
	if !ok {
		pe.EditorBase.MovePart(part, pos, viewToDoc, g, shift, option)
		return
	}
	pe.PathPreview(false, nil)
	src := pp.Point
	ppt := pe.PreviewPoint(src)
	if ppt == nil {
		return
	}
	toNative := pe.Data().Transform.Inverse()
	dpos := viewToDoc.MulVector2AsPoint(pos)
	if g != nil {
		g.BeginMap()
		dpos = g.MapPoint(dpos)
		g.FinishMap()
	}
	switch pp.Type {
	case PartLeftHandle, PartRightHandle:
		if shift {
			anchor := pe.Data().Transform.MulVector2AsPoint(src.Pos())
			dpos = constrainAngle(anchor, dpos, pe.Editor.Settings.Constrain)
		}
		h := toNative.MulVector2AsPoint(dpos)
		ppt.Auto = false
		if pp.Type == PartLeftHandle {
			ppt.SetHL(&h)
		} else {
			ppt.SetHR(&h)
		}
	case PartLeftShoulder, PartRightShoulder:
		lim := src.LeftShoulderLimit()
		if pp.Type == PartRightShoulder {
			lim = src.RightShoulderLimit()
		}
		if lim == nil {
			return
		}
		ln := math32.NewLine2(src.Pos(), *lim)
		d := math32.Clamp(ln.Project(toNative.MulVector2AsPoint(dpos)), 0, ln.Length())
		if pp.Type == PartLeftShoulder {
			ppt.SetShoulders(d, ppt.CR)
		} else {
			ppt.SetShoulders(ppt.CL, d)
		}
	default:
		return
	}
	pe.EditorBase.MovePart(part, pos, viewToDoc, g, shift, option)
}

func (pe *PathEditor) ResetPartMove(part *PartInfo) {
	pe.ReleasePathPreview()
	pe.EditorBase.ResetPartMove(part)
}

// ApplyPartMove copies the moved handle or shoulder from the preview.
func (pe *PathEditor) ApplyPartMove(part *PartInfo) {
	if pp, ok := part.ID.(PathPart); ok && pe.preview != nil {
		if ppt := pe.PreviewPoint(pp.Point); ppt != nil {
			src := pp.Point
			switch pp.Type {
			case PartLeftHandle, PartRightHandle:
				src.Auto = ppt.Auto
				src.HL = vecCopy(ppt.HL)
				src.HR = vecCopy(ppt.HR)
			case PartLeftShoulder, PartRightShoulder:
				src.CL, src.CR = ppt.CL, ppt.CR
			}
		}
	}
	pe.ResetPartMove(part)
}

// Transform moves the selected points of the preview by xf, or sets
// the pending transform of the whole path if no point is selected.
func (pe *PathEditor) Transform(xf math32.Matrix2, part *PartInfo) {
	if len(pe.PartSelection) == 0 {
		pe.EditorBase.Transform(xf, part)
		return
	}
	pxf := pe.Data().Transform
	m := pxf.Inverse().Mul(xf).Mul(pxf)
	prev := pe.PathPreview(false, nil)
	var moved []*ppath.AnchorPoint
	for _, src := range pe.SelectedPoints() {
		ppt := pe.PreviewPoint(src)
		if ppt == nil {
			continue
		}
		ppt.SetPos(m.MulVector2AsPoint(src.Pos()))
		if !src.Auto {
			ppt.HL = transformVec(m, src.HL)
			ppt.HR = transformVec(m, src.HR)
		}
		moved = append(moved, ppt)
	}
	for _, ppt := range moved {
		prev.Update(ppt)
	}
	pe.RequestInvalidation()
}

func (pe *PathEditor) ResetTransform() {
	pe.ReleasePathPreview()
	pe.EditorBase.ResetTransform()
}

func (pe *PathEditor) CanApplyTransform() bool {
	if pe.Node.AsNodeBase().Locked {
		return false
	}
	return len(pe.PartSelection) > 0 || pe.EditorBase.CanApplyTransform()
}

// ApplyTransform transfers the preview geometry of the selected points
// to the points at the same indexes of n, or applies the pending
// transform if no point is selected.
func (pe *PathEditor) ApplyTransform(n svg.Node) {
	tp, ok := n.(*svg.Path)
	if len(pe.PartSelection) == 0 || pe.preview == nil || !ok {
		pe.EditorBase.ApplyTransform(n)
		return
	}
	target := tp.Data
	var sel []any
	var moved []*ppath.AnchorPoint
	for _, src := range pe.SelectedPoints() {
		ppt := pe.PreviewPoint(src)
		dst := target.At(src.Index())
		if ppt == nil || dst == nil {
			continue
		}
		dst.CopyFrom(ppt)
		moved = append(moved, dst)
		sel = append(sel, PathPart{Type: PartPoint, Point: dst})
	}
	for _, dst := range moved {
		target.Update(dst)
	}
	pe.This.ResetTransform()
	if target == pe.Data() {
		pe.UpdatePartSelection(false, sel)
	}
}

// ConstrainPosition returns the view position constrained to a
// multiple of 45 degrees from the point, relative to the
// constrain angle of the settings.
func (pe *PathEditor) ConstrainPosition(pos math32.Vector2, xf math32.Matrix2, pt *ppath.AnchorPoint) math32.Vector2 {
	base := pe.TransformFromNative(xf).MulVector2AsPoint(pt.Pos())
	return constrainAngle(base, pos, pe.Editor.Settings.Constrain)
}

// MovePoint moves the point to the view position. The handles of a
// point without automatic handles move along, by the view offset of
// the position relative to orig, which defaults to the point itself.
func (pe *PathEditor) MovePoint(pt *ppath.AnchorPoint, pos math32.Vector2, xf math32.Matrix2, orig *ppath.AnchorPoint) {
	fromNative := pe.TransformFromNative(xf)
	toNative := fromNative.Inverse()
	if orig == nil {
		orig = pt
	}
	if !pt.Auto {
		delta := pos.Sub(fromNative.MulVector2AsPoint(orig.Pos()))
		shift := func(h *math32.Vector2) *math32.Vector2 {
			if h == nil {
				return nil
			}
			v := toNative.MulVector2AsPoint(fromNative.MulVector2AsPoint(*h).Add(delta))
			return &v
		}
		hl, hr := shift(orig.HL), shift(orig.HR)
		pt.HL, pt.HR = hl, hr
	}
	pt.SetPos(toNative.MulVector2AsPoint(pos))
	if pt.Parent != nil {
		pt.Parent.Update(pt)
	}
	pe.RequestInvalidation()
}

// constrainAngle constrains pos to a multiple of 45 degrees from
// base, with the directions rotated by angle.
func constrainAngle(base, pos math32.Vector2, angle float32) math32.Vector2 {
	if angle == 0 {
		return math32.Constrain45(base, pos)
	}
	rel := math32.Rotate2D(-angle).MulVector2AsVector(pos.Sub(base))
	c := math32.Constrain45(math32.Vector2{}, rel)
	return base.Add(math32.Rotate2D(angle).MulVector2AsVector(c))
}

func vecCopy(v *math32.Vector2) *math32.Vector2 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func transformVec(m math32.Matrix2, v *math32.Vector2) *math32.Vector2 {
	if v == nil {
		return nil
	}
	c := m.MulVector2AsPoint(*v)
	return &c
}
