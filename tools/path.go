// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"log/slog"
	"time"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/cursors"
	"cogentcore.org/canvas/editor"
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/events/key"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/paint/ppath"
	"cogentcore.org/canvas/svg"
)

// pathHooks are the gesture handlers specific to each path tool.
type pathHooks interface {
	mouseDown(ev *events.Mouse)
	mouseMove(ev *events.Mouse)
	mouseDrag(ev *events.Mouse)
	mouseRelease(ev *events.Mouse)
	renewPreviewLink()
}

// PathTool is the base of the tools that draw and edit one path at a
// time. It keeps the state shared by a gesture: the edited path, its
// preview, the point being placed and the open transaction.
//
// Points are placed in the preview of the path first and copied to
// the path when the gesture ends, in one transaction per gesture.
type PathTool struct {

	// hooks are the gesture handlers of the concrete tool.
	hooks pathHooks

	// view is the view the tool is active on.
	view *View

	// path is the edited path, or nil.
	path *svg.Path

	// pathEditor is the editor of the edited path, or nil.
	pathEditor *editor.PathEditor

	// preview is the preview of the path while a gesture changes it.
	preview *ppath.Path

	// newPoint is set while editPt is a point of the preview
	// that is not in the path yet.
	newPoint bool

	// editPt is the preview point being placed or shaped.
	editPt *ppath.AnchorPoint

	// refPt is the path point a gesture refers to.
	refPt *ppath.AnchorPoint

	// dragStartPt is the state of the shaped point at the start of a drag.
	dragStartPt *ppath.AnchorPoint

	// released is set while no mouse button is pressed.
	released bool

	// dragStarted is set once the pressed mouse has moved.
	dragStarted bool

	// firstAlt is set when Alt was held at the start of the gesture.
	firstAlt bool

	// transaction is the kind of the open transaction.
	transaction Transactions

	// mode is the current mode.
	mode Modes

	// downTime is the time of the last press.
	downTime time.Time

	// lastMouse is the last mouse event, replayed on modifier changes.
	lastMouse *events.Mouse

	// deactivationAllowed is cleared during a gesture.
	deactivationAllowed bool
}

func newPathTool() *PathTool {
	t := &PathTool{released: true, deactivationAllowed: true}
	t.hooks = t
	return t
}

// Mode returns the current mode.
func (t *PathTool) Mode() Modes {
	return t.mode
}

// Transaction returns the kind of the open transaction.
func (t *PathTool) Transaction() Transactions {
	return t.transaction
}

func (t *PathTool) IsDeactivatable() bool {
	return t.deactivationAllowed
}

func (t *PathTool) Activate(v *View) {
	t.view = v
	ls := &v.Listeners
	ls.Add(events.MouseDown, func(e events.Event) { t.hooks.mouseDown(e.(*events.Mouse)) })
	ls.Add(events.MouseUp, func(e events.Event) { t.hooks.mouseRelease(e.(*events.Mouse)) })
	ls.Add(events.MouseMove, func(e events.Event) { t.hooks.mouseMove(e.(*events.Mouse)) })
	ls.Add(events.MouseDrag, func(e events.Event) { t.hooks.mouseDrag(e.(*events.Mouse)) })
	ls.Add(events.KeyDown, func(e events.Event) { t.keyDown(e.(*events.Key)) })
	ls.Add(events.ModifiersChanged, func(e events.Event) { t.modifiersChanged(e.(*events.Modifiers)) })
	v.SetCursor(cursors.PenStart)
	t.transaction = NoTransaction
	t.initialSelectCorrection()
}

func (t *PathTool) Deactivate(v *View) {
	if (t.newPoint || t.preview != nil) && t.pathEditor != nil {
		t.pathEditor.ReleasePathPreview()
	}
	t.finishTransaction()
	t.deactivationAllowed = true
	t.released = true
	t.dragStarted = false
	t.firstAlt = false
	t.lastMouse = nil
	t.reset()
}

// reset drops the references to the edited path.
func (t *PathTool) reset() {
	if t.pathEditor != nil {
		t.pathEditor.RemoveFlag(editor.Detail)
	}
	t.preview = nil
	t.path = nil
	t.pathEditor = nil
	t.newPoint = false
	t.editPt = nil
	t.dragStartPt = nil
	t.refPt = nil
}

// initialSelectCorrection continues extending a path that was being
// extended when the tool was last active, selecting its last point
// if the selection is not at one of its ends.
func (t *PathTool) initialSelectCorrection() {
	t.checkPathEditor()
	pe := t.pathEditor
	if pe == nil {
		return
	}
	p := pe.Data()
	switch {
	case p.Closed:
		pe.SetActiveExtendingMode(false)
	case pe.IsActiveExtendingMode():
		st := pe.PointsSelectionType()
		if st != editor.FirstPoint && st != editor.LastPoint {
			pe.SelectOnePoint(p.Last())
			t.view.SetCursor(cursors.Pen)
		}
	}
}

// checkPathEditor opens the editor of the selected path, with details.
func (t *PathTool) checkPathEditor() {
	p := t.view.Editor.PathSelection()
	if p == nil {
		return
	}
	ed, err := t.view.Editor.OpenEditor(p)
	if errors.Log(err) != nil {
		return
	}
	pe, ok := ed.(*editor.PathEditor)
	if !ok {
		return
	}
	pe.SetFlag(editor.Detail)
	t.pathEditor = pe
}

// checkMode derives the mode from the selected path and its
// selected points.
func (t *PathTool) checkMode() {
	t.checkPathEditor()
	pe := t.pathEditor
	if pe == nil {
		t.path = nil
		t.mode = ModeAppend
		return
	}
	t.path = pe.Path()
	if t.path.Data.Closed {
		t.mode = ModeEdit
		return
	}
	switch pe.PointsSelectionType() {
	case editor.NoPoints, editor.SeveralPoints, editor.MiddlePoint:
		t.mode = ModeEdit
	case editor.LastPoint:
		t.mode = ModeAppend
	case editor.FirstPoint:
		t.mode = ModePrepend
	}
}

// startTransaction opens a transaction unless one is open, and sets
// its kind. The last kind set labels the commit.
func (t *PathTool) startTransaction(tr Transactions) {
	if t.transaction == NoTransaction {
		t.view.Editor.BeginTransaction()
	}
	t.transaction = tr
}

// finishTransaction commits the open transaction, labeled with its kind.
func (t *PathTool) finishTransaction() {
	defer func() { t.transaction = NoTransaction }()
	if t.transaction == NoTransaction {
		return
	}
	slog.Debug("tools: finish transaction", "transaction", t.transaction)
	errors.Log(t.view.Editor.CommitTransaction(t.transaction.Label()))
}

// commitChanges ends the gesture on the path.
func (t *PathTool) commitChanges() {
	if pe := t.pathEditor; pe != nil {
		pe.ReleasePathPreview()
	}
	t.reset()
}

// makePointMajor makes pt the only selected point, with a new preview.
func (t *PathTool) makePointMajor(pt *ppath.AnchorPoint) {
	pe := t.pathEditor
	pe.SelectOnePoint(pt)
	t.preview = nil
	pe.ReleasePathPreview()
	t.preview = pe.PathPreview(false, pt)
}

// constrainIfNeeded constrains the view position to multiples of
// 45 degrees while Shift is held, from orient, or from the end of
// the path being extended.
func (t *PathTool) constrainIfNeeded(pos math32.Vector2, p *ppath.Path, orient *ppath.AnchorPoint) math32.Vector2 {
	if !t.view.Mods.HasFlag(key.Shift) || t.pathEditor == nil {
		return pos
	}
	other := orient
	if other == nil && p != nil {
		switch t.mode {
		case ModeAppend:
			other = p.Last()
		case ModePrepend:
			other = p.First()
		}
	}
	if other == nil {
		return pos
	}
	return t.pathEditor.ConstrainPosition(pos, t.view.Transform, other)
}

// snapView returns the view position snapped to the guides, and its
// document position.
func (t *PathTool) snapView(pos math32.Vector2) (math32.Vector2, math32.Vector2) {
	dpos := t.view.Snap(t.view.ToDoc(pos))
	return t.view.ToView(dpos), dpos
}

// updatePoint moves the point being placed to the view position,
// constrained and snapped, and returns the resulting position.
func (t *PathTool) updatePoint(pos math32.Vector2) math32.Vector2 {
	if t.path == nil || t.editPt == nil {
		return pos
	}
	var orient *ppath.AnchorPoint
	if t.mode == ModeEdit && t.preview != nil {
		orient = t.preview.Prev(t.editPt)
	}
	pos = t.constrainIfNeeded(pos, t.path.Data, orient)
	pos, _ = t.snapView(pos)
	t.pathEditor.MovePoint(t.editPt, pos, t.view.Transform, t.dragStartPt)
	return pos
}

// addPoint adds the point at the end of the path being extended, or
// creates a new path with it. A draft point is added to the preview.
// The point is in document coordinates unless nativeCoord is set.
// oldPreviewSelection keeps the selection of the preview.
func (t *PathTool) addPoint(pt *ppath.AnchorPoint, draft, nativeCoord, oldPreviewSelection bool) {
	if !oldPreviewSelection {
		pt.Selected = true
	}
	if t.pathEditor != nil && !nativeCoord {
		pt.SetPos(t.path.Data.Transform.Inverse().MulVector2AsPoint(pt.Pos()))
	}
	if t.pathEditor == nil {
		t.startTransaction(InsertElement)
		t.createAndAppendPath(pt)
		t.pathEditor.SelectOnePoint(pt)
		t.checkMode()
		t.hooks.renewPreviewLink()
		if draft {
			t.editPt = t.preview.Last()
		}
		t.pathEditor.SetActiveExtendingMode(true)
		return
	}
	pe := t.pathEditor
	if draft {
		switch t.mode {
		case ModeAppend:
			if !oldPreviewSelection {
				t.preview.Last().Selected = false
			}
			t.preview.Append(pt)
			t.editPt = t.preview.Last()
		case ModePrepend:
			if !oldPreviewSelection {
				t.preview.First().Selected = false
			}
			t.preview.Prepend(pt)
			pe.ShiftPreviewTable(1)
			t.editPt = t.preview.First()
		default:
			return
		}
		t.newPoint = true
		pe.SetActiveExtendingMode(true)
		pe.RequestInvalidation()
		return
	}
	if t.mode != ModeAppend && t.mode != ModePrepend {
		return
	}
	pe.ReleasePathPreview()
	t.startTransaction(AppendPoint)
	if old := pt.Parent; old != nil {
		old.Remove(pt)
	}
	if t.mode == ModeAppend {
		t.path.Data.Append(pt)
	} else {
		t.path.Data.Prepend(pt)
	}
	pe.SelectOnePoint(pt)
	pe.SetActiveExtendingMode(true)
}

// createAndAppendPath adds a new path with the point to the document.
func (t *PathTool) createAndAppendPath(pt *ppath.AnchorPoint) {
	pt.Selected = true
	p := svg.NewPath(ppath.New(pt))
	t.view.Editor.InsertElements(p)
	t.checkPathEditor()
}

// updateCursorAt sets the cursor for the view position.
func (t *PathTool) updateCursorAt(pos math32.Vector2) {
	if t.pathEditor == nil {
		t.checkPathEditor()
	}
	pe := t.pathEditor
	if pe == nil {
		t.view.SetCursor(cursors.PenStart)
		return
	}
	c := cursors.Pen
	part := pe.PartInfoAt(pos, t.view.Transform, nil, t.view.Editor.Settings.PickDist)
	pp, ok := editor.PathPart{}, false
	if part != nil {
		pp, ok = part.ID.(editor.PathPart)
	}
	switch {
	case ok && pp.Type == editor.PartPoint:
		p := part.Editor.(*editor.PathEditor).Data()
		pt := pp.Point
		switch {
		case !p.Closed && (pt == p.First() || pt == p.Last()):
			if (t.mode == ModeAppend && pt == p.First()) || (t.mode == ModePrepend && pt == p.Last()) {
				c = cursors.PenEnd
			}
		case t.mode == ModeEdit && pt.HasHandles():
			c = cursors.PenModify
		case t.mode == ModeEdit:
			c = cursors.PenMinus
		}
	case ok && pp.Type == editor.PartSegment:
		if t.mode == ModeEdit {
			c = cursors.PenPlus
		}
	case t.mode == ModeEdit:
		c = cursors.PenStart
	}
	t.view.SetCursor(c)
}

// mouseDownOnEdit handles a press in the edit mode: a press on an end
// of the path continues it, a press on a segment inserts a point, and
// a press outside of the path starts a new one.
func (t *PathTool) mouseDownOnEdit(ev *events.Mouse) {
	pe := t.pathEditor
	pe.ReleasePathPreview()
	t.preview = nil
	part := pe.PartInfoAt(ev.Where, t.view.Transform, nil, t.view.Editor.Settings.PickDist)
	var pp editor.PathPart
	ok := false
	if part != nil {
		if ped, isPath := part.Editor.(*editor.PathEditor); isPath {
			pe = ped
			t.pathEditor = ped
			t.path = ped.Path()
			pp, ok = part.ID.(editor.PathPart)
		}
	}
	switch {
	case ok && pp.Type == editor.PartPoint:
		p := t.path.Data
		pt := pp.Point
		switch {
		case !p.Closed && pt == p.Last():
			t.mode = ModeAppend
			t.makePointMajor(pt)
		case !p.Closed && pt == p.First():
			t.mode = ModePrepend
			t.makePointMajor(pt)
		default:
			t.refPt = pt
			if pt.HasHandles() {
				t.view.SetCursor(cursors.PenModify)
			} else {
				t.view.SetCursor(cursors.PenMinus)
			}
		}
	case ok && pp.Type == editor.PartSegment:
		hit, isHit := part.Data.(ppath.SegmentHit)
		if !isHit {
			return
		}
		t.view.SetCursor(cursors.PenPlus)
		t.startTransaction(InsertPoint)
		pt := t.path.Data.InsertAt(hit.Segment, hit.T)
		if pt == nil {
			t.finishTransaction()
			t.reset()
			t.mode = ModeAppend
			return
		}
		if ev.Button == events.Right && t.view.Mods.HasFlag(key.Alt) && pt.Type == ppath.Asymmetric {
			pt.Type = ppath.Connector
		}
		t.makePointMajor(pt)
		t.refPt = pt
		t.editPt = pe.PreviewPoint(pt)
		t.mode = ModeEdit
	default:
		t.view.SetCursor(cursors.PenStart)
		pe.UpdatePartSelection(false, nil)
		t.commitChanges()
		t.mode = ModeAppend
	}
}

// mouseNoDragReleaseOnEdit handles a click on a middle point: its
// handles are removed, or the point itself if it has none.
func (t *PathTool) mouseNoDragReleaseOnEdit(pos math32.Vector2) {
	pt := t.refPt
	if pt == nil {
		return
	}
	pe := t.pathEditor
	if pt.HasHandles() {
		if t.transaction == NoTransaction {
			t.startTransaction(ModifyPointProperties)
		}
		pt.ClearHandles()
		t.path.Data.Update(pt)
		t.makePointMajor(pt)
		t.view.SetCursor(cursors.PenMinus)
	} else if t.path.Data.Len() > 2 {
		t.startTransaction(DeletePoint)
		pe.ReleasePathPreview()
		pe.UpdatePartSelection(false, nil)
		t.path.Data.Remove(pt)
		pe.RequestInvalidation()
		t.updateCursorAt(pos)
	}
	t.refPt = nil
	t.commitChanges()
}

// dblClick ends the extension of the path.
func (t *PathTool) dblClick(ev *events.Mouse) {
	t.lastMouse = nil
	t.checkMode()
	if pe := t.pathEditor; pe != nil {
		pe.UpdatePartSelection(false, nil)
		pe.SetActiveExtendingMode(false)
		t.commitChanges()
	}
	t.mode = ModeEdit
	t.updateCursorAt(ev.Where)
}

// endPath ends the extension of the path and deselects it, so that
// the next press starts a new path.
func (t *PathTool) endPath() {
	if !t.released {
		return
	}
	t.lastMouse = nil
	t.checkMode()
	if pe := t.pathEditor; pe != nil {
		pe.UpdatePartSelection(false, nil)
		pe.SetActiveExtendingMode(false)
		t.commitChanges()
		t.view.Editor.ClearSelection()
	}
	t.mode = ModeAppend
	t.view.SetCursor(cursors.PenStart)
}

func (t *PathTool) keyDown(ev *events.Key) {
	switch ev.Code {
	case key.CodeTab, key.CodeEscape, key.CodeReturnEnter:
		t.endPath()
		ev.SetHandled()
	case key.CodeDelete, key.CodeBackspace:
		if !t.released {
			return
		}
		t.checkMode()
		pe := t.pathEditor
		if t.mode != ModeEdit || pe == nil || !pe.IsDeletePartsAllowed() {
			return
		}
		t.startTransaction(DeletePoint)
		pe.DeletePartsSelected()
		t.commitChanges()
		t.finishTransaction()
		ev.SetHandled()
	}
}

// modifiersChanged replays the last mouse event with the new modifiers.
func (t *PathTool) modifiersChanged(ev *events.Modifiers) {
	if ev.HasChanged(key.Shift) && t.lastMouse != nil {
		if !t.released {
			t.hooks.mouseDrag(t.lastMouse)
		} else {
			t.hooks.mouseMove(t.lastMouse)
		}
	}
	if ev.HasChanged(key.Alt) {
		t.firstAlt = false
		if !t.released {
			if ev.Mods.HasFlag(key.Alt) {
				t.firstAlt = !t.dragStarted
			}
			if t.lastMouse != nil {
				t.hooks.mouseDrag(t.lastMouse)
			}
		}
	}
}

func (t *PathTool) mouseDown(ev *events.Mouse) {
	t.released = false
	t.deactivationAllowed = false
}

func (t *PathTool) mouseMove(ev *events.Mouse) {}

func (t *PathTool) mouseDrag(ev *events.Mouse) {}

func (t *PathTool) mouseRelease(ev *events.Mouse) {
	t.released = true
	t.dragStarted = false
	t.dragStartPt = nil
	t.lastMouse = nil
	t.deactivationAllowed = true
	t.finishTransaction()
}

// renewPreviewLink takes the preview of the edited path.
func (t *PathTool) renewPreviewLink() {
	if t.pathEditor == nil {
		t.preview = nil
		return
	}
	t.preview = t.pathEditor.PathPreview(false, nil)
}
