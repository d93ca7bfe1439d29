// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"cogentcore.org/canvas/cursors"
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/events/key"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/paint/ppath"
)

// PenTool draws paths point by point. A click adds a corner point,
// a drag adds a smooth point with its handles pulled out. A click on
// the first point closes the path. With Alt the handles are dragged
// independently, and the right button adds connector (with Alt) or
// rounded corner points. In the edit mode, clicks on the path insert,
// remove and reshape points.
type PenTool struct {
	*PathTool
}

// NewPenTool returns a new pen tool.
func NewPenTool() *PenTool {
	t := &PenTool{PathTool: newPathTool()}
	t.hooks = t
	return t
}

func (t *PenTool) option() bool {
	return t.view.Mods.HasFlag(key.Alt)
}

func (t *PenTool) doubleClicked(ev *events.Mouse) bool {
	return !t.downTime.IsZero() && ev.Time().Sub(t.downTime) < t.view.Editor.Settings.DoubleClick.Std()
}

func (t *PenTool) mouseDown(ev *events.Mouse) {
	if ev.Button == events.Middle {
		return
	}
	if t.doubleClicked(ev) {
		t.dblClick(ev)
		return
	}
	t.lastMouse = ev
	t.dragStarted = false
	t.dragStartPt = nil
	t.mouseMove(ev)
	t.downTime = ev.Time()
	t.released = false
	t.firstAlt = t.option()
	t.deactivationAllowed = false

	t.checkMode()
	if t.mode == ModeEdit {
		t.mouseDownOnEdit(ev)
	}
	if t.mode == ModeEdit {
		return
	}
	t.renewPreviewLink()
	switch {
	case t.newPoint && t.pathEditor != nil:
		t.updatePoint(ev.Where)
		if t.mode == ModeAppend {
			if prev := t.editPt.Prev(); prev != nil {
				prev.Selected = false
				t.editPt.Selected = true
			}
		} else if next := t.editPt.Next(); next != nil {
			next.Selected = false
			t.editPt.Selected = true
		}
		if ev.Button == events.Right {
			t.setCornerType(t.editPt)
		} else if !t.option() {
			t.closePreviewIfNeeded()
		}
		if t.preview.Closed {
			if t.mode == ModeAppend {
				t.refPt = t.path.Data.First()
			} else {
				t.refPt = t.path.Data.Last()
			}
		}
		t.pathEditor.RequestInvalidation()
	case t.pathEditor != nil:
		if t.mode == ModeAppend {
			t.refPt = t.path.Data.Last()
		} else {
			t.refPt = t.path.Data.First()
		}
	default:
		_, dpos := t.snapView(ev.Where)
		pt := ppath.NewAnchorPoint(dpos.X, dpos.Y)
		if ev.Button == events.Right {
			t.setCornerType(pt)
		}
		t.addPoint(pt, true, false, false)
	}
}

// setCornerType makes a point added with the right button a connector
// with Alt, or a rounded corner.
func (t *PenTool) setCornerType(pt *ppath.AnchorPoint) {
	if t.option() {
		pt.Type = ppath.Connector
		return
	}
	pt.Type = ppath.Rounded
	pt.Uniform = true
}

// renewPreviewLink takes the preview of the edited path, dropping the
// point being placed if it is not at the extended end anymore.
func (t *PenTool) renewPreviewLink() {
	pe := t.pathEditor
	if pe == nil {
		t.editPt = nil
		t.newPoint = false
		t.preview = nil
		return
	}
	p := pe.PathPreview(false, nil)
	end := p.Last()
	if t.mode == ModePrepend {
		end = p.First()
	}
	if t.editPt != end {
		t.newPoint = false
		t.editPt = nil
	}
	t.preview = p
}

// closePreviewIfNeeded closes the preview when the point being placed
// is on the other end of the path. The placed point is dropped and
// the other end becomes the point being shaped.
func (t *PenTool) closePreviewIfNeeded() {
	if t.path == nil || !t.newPoint || (t.mode != ModeAppend && t.mode != ModePrepend) {
		return
	}
	pe := t.pathEditor
	p := t.preview
	anchor, other := p.Last(), p.First()
	if t.mode == ModePrepend {
		anchor, other = other, anchor
	}
	if p.Len() < 3 {
		return
	}
	loc := pe.TransformFromNative(t.view.Transform).MulVector2AsPoint(anchor.Pos())
	if !pe.HitAnchorPoint(other, loc, t.view.Transform, t.view.Editor.Settings.PickDist) {
		return
	}
	t.editPt = other
	if !other.Type.IsCorner() {
		other.Type = ppath.Asymmetric
	}
	if t.mode == ModeAppend {
		other.HL = nil
	} else {
		other.HR = nil
	}
	other.Auto = false
	pe.RemovePreviewPoint(anchor)
	p.Closed = true
	p.Update(other)
	other.Selected = true
	t.newPoint = false
}

func (t *PenTool) mouseMove(ev *events.Mouse) {
	if t.doubleClicked(ev) || !t.released {
		return
	}
	t.lastMouse = ev
	t.checkMode()
	if t.mode == ModeEdit {
		t.updateCursorAt(ev.Where)
		return
	}
	t.renewPreviewLink()
	pos := ev.Where
	switch {
	case !t.newPoint && t.pathEditor != nil:
		var dpos math32.Vector2
		pos, dpos = t.snapView(t.constrainIfNeeded(ev.Where, t.path.Data, nil))
		t.addPoint(ppath.NewAnchorPoint(dpos.X, dpos.Y), true, false, true)
	case t.editPt != nil:
		pos = t.updatePoint(ev.Where)
	}
	if t.editPt == nil {
		t.updateCursorAt(ev.Where)
		return
	}
	other := t.path.Data.First()
	if t.mode == ModePrepend {
		other = t.path.Data.Last()
	}
	if t.pathEditor.HitAnchorPoint(other, pos, t.view.Transform, t.view.Editor.Settings.PickDist) {
		t.view.SetCursor(cursors.PenEnd)
	} else {
		t.view.SetCursor(cursors.Pen)
	}
}

func (t *PenTool) mouseDrag(ev *events.Mouse) {
	if t.released {
		return
	}
	if t.refPt != nil && t.editPt == nil {
		t.makePointMajor(t.refPt)
		t.editPt = t.pathEditor.PreviewPoint(t.refPt)
		t.dragStartPt = t.refPt.Clone()
		if ev.Button == events.Left {
			t.editPt.Type = ppath.Symmetric
		}
	}
	if t.editPt == nil {
		return
	}
	t.lastMouse = ev
	t.view.SetCursor(cursors.PenDrag)
	if t.dragStartPt == nil {
		src := t.refPt
		if src == nil {
			src = t.editPt
		}
		t.dragStartPt = src.Clone()
		if ev.Button == events.Left && t.editPt.Type != ppath.Connector {
			t.editPt.Type = ppath.Symmetric
		}
	}
	t.dragStarted = true
	t.updatePointProperties(ev.Where)
}

// updatePointProperties shapes the point being placed for the view
// position: the handles, or the shoulders of a rounded corner.
func (t *PenTool) updatePointProperties(pos math32.Vector2) math32.Vector2 {
	if t.editPt.Type == ppath.Rounded {
		t.updateShoulders(pos)
		return pos
	}
	pos = t.constrainIfNeeded(pos, t.path.Data, t.dragStartPt)
	t.updateHandles(pos)
	return pos
}

func (t *PenTool) updateShoulders(pos math32.Vector2) {
	if (t.mode != ModeAppend && t.mode != ModePrepend) || t.editPt == nil {
		return
	}
	pe := t.pathEditor
	pt := t.editPt
	d := float32(0)
	if !pe.HitAnchorPoint(pt, pos, t.view.Transform, 0) {
		d = pe.TransformFromNative(t.view.Transform).MulVector2AsPoint(pt.Pos()).DistanceTo(pos)
	}
	if t.mode == ModeAppend {
		pt.SetShoulders(pt.CL, d)
	} else {
		pt.SetShoulders(d, pt.CR)
	}
	pe.RequestInvalidation()
}

// updateHandles pulls the handles of the point being shaped to the
// view position. Back on the point, the handle being pulled is removed.
func (t *PenTool) updateHandles(pos math32.Vector2) {
	pe := t.pathEditor
	pt := t.editPt
	option := t.option()
	defer pe.RequestInvalidation()
	if pe.HitAnchorPoint(pt, pos, t.view.Transform, 0) && !t.firstAlt {
		switch {
		case t.mode == ModeAppend:
			pt.Type = ppath.Asymmetric
			if pt.HL != nil {
				pt.Type = ppath.Symmetric
			}
			pt.HR = nil
		case t.mode == ModePrepend:
			pt.Type = ppath.Asymmetric
			if pt.HR != nil {
				pt.Type = ppath.Symmetric
			}
			pt.HL = nil
		case !option:
			pt.Type = ppath.Asymmetric
			pt.HL, pt.HR = nil, nil
		default:
			pt.Type = ppath.Asymmetric
			pt.HR = nil
		}
		return
	}
	native := pe.TransformFromNative(t.view.Transform).Inverse().MulVector2AsPoint(pos)
	lone := pt.Prev() == nil && pt.Next() == nil
	switch {
	case !t.newPoint && option && t.firstAlt && pt.Type != ppath.Connector && !lone:
		hr := native
		if t.dragStartPt != nil && t.dragStartPt.HR != nil {
			hr = t.dragStartPt.HR.Add(native.Sub(pt.Pos()))
		}
		pt.Auto = false
		pt.Type = ppath.Asymmetric
		pt.HR = &hr
	case pt.Type != ppath.Connector:
		pt.Auto = false
		h1 := native
		if option {
			pt.Type = ppath.Asymmetric
			if t.mode == ModePrepend {
				pt.HL = &h1
			} else {
				pt.HR = &h1
			}
			return
		}
		pt.Type = ppath.Symmetric
		extremity := (pt.Prev() == nil) != (pt.Next() == nil)
		if t.mode != ModeEdit && !t.newPoint && !t.preview.Closed && extremity {
			if t.mode == ModePrepend {
				pt.HL = &h1
			} else {
				pt.HR = &h1
			}
			return
		}
		h2 := pt.Pos().MulScalar(2).Sub(h1)
		if t.mode == ModePrepend {
			pt.HL, pt.HR = &h1, &h2
		} else {
			pt.HR, pt.HL = &h1, &h2
		}
	case t.mode == ModeAppend || (t.mode == ModeEdit && option):
		pt.HL = nil
		pt.HR = connectorHandle(pt, pt.Prev(), native)
	case t.mode == ModePrepend:
		pt.HR = nil
		pt.HL = connectorHandle(pt, pt.Next(), native)
	}
}

// connectorHandle returns the handle of a connector point continuing
// the segment from the neighbor, for the native position.
func connectorHandle(pt, nb *ppath.AnchorPoint, pos math32.Vector2) *math32.Vector2 {
	if nb == nil || math32.IsZero(nb.Pos().DistanceTo(pt.Pos())) {
		return &pos
	}
	return ppath.ConnectorHandle(pt.Pos(), nb.Pos(), pos)
}

func (t *PenTool) mouseRelease(ev *events.Mouse) {
	if t.released {
		return
	}
	func() {
		defer t.finishTransaction()
		t.released = true
		pe := t.pathEditor
		switch {
		case pe != nil && t.mode == ModeEdit:
			switch {
			case !t.dragStarted && t.refPt != nil && t.editPt == nil:
				t.mouseNoDragReleaseOnEdit(ev.Where)
			case t.dragStarted:
				t.updatePointProperties(ev.Where)
				if t.transaction == NoTransaction {
					t.startTransaction(ModifyPointProperties)
				}
				pe.ApplyTransform(t.path)
				t.commitChanges()
				t.updateCursorAt(ev.Where)
			default:
				t.commitChanges()
				t.updateCursorAt(ev.Where)
			}
		case pe != nil && t.preview != nil:
			if t.dragStarted {
				t.updatePointProperties(ev.Where)
			}
			if !t.preview.Closed {
				if t.newPoint {
					t.addPoint(t.editPt, false, true, false)
				}
				ref, other := t.path.Data.Last(), t.path.Data.First()
				if t.mode == ModePrepend {
					ref, other = other, ref
				}
				if !t.newPoint {
					if t.transaction == NoTransaction {
						t.startTransaction(ModifyPointProperties)
					}
					pe.SelectOnePoint(ref)
					pe.ApplyTransform(t.path)
				}
				if pe.HitAnchorPoint(other, ev.Where, t.view.Transform, t.view.Editor.Settings.PickDist) {
					t.view.SetCursor(cursors.PenEnd)
				} else {
					t.view.SetCursor(cursors.Pen)
				}
				t.commitChanges()
			} else {
				if t.refPt != nil {
					t.startTransaction(ModifyPathProperties)
					pe.SelectOnePoint(t.refPt)
					pe.ApplyTransform(t.path)
					t.path.Data.Closed = true
					t.path.Data.Update(t.refPt)
					pe.SetActiveExtendingMode(false)
				}
				t.commitChanges()
				t.mode = ModeEdit
				t.updateCursorAt(ev.Where)
			}
			t.refPt = nil
		}
	}()
	t.dragStarted = false
	t.dragStartPt = nil
	t.lastMouse = nil
	t.firstAlt = false
	t.deactivationAllowed = true
}
