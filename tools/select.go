// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"slices"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/cursors"
	"cogentcore.org/canvas/editor"
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/events/key"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/svg"
)

// SelectTool selects, moves and transforms elements. A click selects
// the element under the mouse, with Shift toggling it. Meta cycles
// through stacked elements. A drag on the selection moves it, a drag
// elsewhere selects the elements in the dragged area. A double click
// opens the transform box, and arrow keys nudge the selection.
type SelectTool struct {

	// view is the view the tool is active on.
	view *View

	// mode is the current mode.
	mode SelectModes

	// area is the dragged selection area in view coordinates.
	area math32.Box2

	// elementUnderMouse is the element pressed in the last click.
	elementUnderMouse svg.Node

	// partUnderMouse is the editor part under the mouse, or nil.
	partUnderMouse *editor.PartInfo

	// movePart is the part a move or transform was started from.
	movePart *editor.PartInfo

	// moveStart is where the current drag started, in view coordinates.
	moveStart math32.Vector2

	// moveCurrent is the current drag position.
	moveCurrent math32.Vector2

	// dragging is set during a move or transform drag.
	dragging bool

	// keyDelta is the accumulated arrow key move, in document units.
	keyDelta math32.Vector2

	// nudging is set while arrow keys move the selection.
	nudging bool

	// inline is the editor with an active inline edit, or nil.
	inline editor.ElementEditor
}

// NewSelectTool returns a new select tool.
func NewSelectTool() *SelectTool {
	return &SelectTool{area: math32.B2Empty()}
}

// Mode returns the current mode.
func (t *SelectTool) Mode() SelectModes {
	return t.mode
}

func (t *SelectTool) IsDeactivatable() bool {
	return t.mode == SelectIdle || t.mode == ModeTransforming
}

func (t *SelectTool) Activate(v *View) {
	t.view = v
	ls := &v.Listeners
	ls.Add(events.MouseDown, func(e events.Event) { t.mouseDown(e.(*events.Mouse)) })
	ls.Add(events.MouseUp, func(e events.Event) { t.mouseRelease(e.(*events.Mouse)) })
	ls.Add(events.MouseMove, func(e events.Event) { t.mouseMove(e.(*events.Mouse)) })
	ls.Add(events.DragStart, func(e events.Event) { t.dragStart(e.(*events.Mouse)) })
	ls.Add(events.MouseDrag, func(e events.Event) { t.drag(e.(*events.Mouse)) })
	ls.Add(events.DragEnd, func(e events.Event) { t.dragEnd(e.(*events.Mouse)) })
	ls.Add(events.DoubleClick, func(e events.Event) { t.dblClick(e.(*events.Mouse)) })
	ls.Add(events.KeyDown, func(e events.Event) { t.keyDown(e.(*events.Key)) })
	ls.Add(events.KeyUp, func(e events.Event) { t.keyRelease(e.(*events.Key)) })
	ls.Add(events.ModifiersChanged, func(e events.Event) { t.modifiersChanged(e.(*events.Modifiers)) })
	if v.Editor.RootEditor.IsTransformBoxActive() {
		t.mode = ModeTransforming
	}
	t.updateCursor()
}

func (t *SelectTool) Deactivate(v *View) {
	t.finishInlineEdit()
	if t.mode == ModeTransforming {
		t.closeTransformBox()
	}
	if t.mode == ModeMoving {
		v.Editor.ResetSelectionTransform()
	}
	t.mode = SelectIdle
	t.movePart = nil
	t.partUnderMouse = nil
	t.elementUnderMouse = nil
	t.dragging = false
	t.nudging = false
	t.area = math32.B2Empty()
}

func (t *SelectTool) shift() bool  { return t.view.Mods.HasFlag(key.Shift) }
func (t *SelectTool) option() bool { return t.view.Mods.HasFlag(key.Alt) }

func (t *SelectTool) updateCursor() {
	switch {
	case t.mode == ModeMoving:
		t.view.SetCursor(cursors.SelectCross)
	case t.partUnderMouse != nil:
		t.view.SetCursor(cursors.SelectDot)
	default:
		t.view.SetCursor(cursors.Select)
	}
}

// acceptSelected accepts the editors of selected elements.
func acceptSelected(ed editor.ElementEditor) bool {
	return ed.AsEditorBase().HasFlag(editor.Selected)
}

// updateUnderMouse updates the part under the mouse and the cursor.
func (t *SelectTool) updateUnderMouse(pos math32.Vector2) {
	re := t.view.Editor.RootEditor
	if t.mode == ModeTransforming && !re.IsTransformBoxActive() {
		t.mode = SelectIdle
	}
	t.partUnderMouse = nil
	if t.mode == ModeTransforming {
		c := cursors.Select
		if part := re.TransformBoxPartAt(pos, t.view.Transform, t.view.Editor.Settings.PickDist); part != nil {
			switch part.ID {
			case editor.TBoxTop, editor.TBoxBottom:
				c = cursors.SelectResizeVert
			case editor.TBoxLeft, editor.TBoxRight:
				c = cursors.SelectResizeHoriz
			case editor.TBoxInside:
				c = cursors.SelectInverse
			case editor.TBoxRotate:
				c = cursors.SelectCross
			default:
				c = cursors.SelectResizeDiag
			}
		}
		t.view.SetCursor(c)
		return
	}
	if t.mode == SelectIdle {
		t.partUnderMouse = t.view.Editor.PartInfoAt(pos, t.view.Transform, acceptSelected, t.view.Editor.Settings.PickDist)
	}
	t.updateCursor()
}

func (t *SelectTool) mouseMove(ev *events.Mouse) {
	if t.view.Editor.RootEditor.IsTransformBoxActive() {
		t.mode = ModeTransforming
	}
	t.updateUnderMouse(ev.Where)
}

func (t *SelectTool) mouseDown(ev *events.Mouse) {
	if ev.Button != events.Left {
		return
	}
	if t.finishInlineEdit() {
		return
	}
	ed := t.view.Editor
	re := ed.RootEditor
	t.elementUnderMouse = nil
	t.movePart = nil
	stacked := t.view.Mods.HasFlag(key.Meta)
	if re.IsTransformBoxActive() {
		t.mode = ModeTransforming
		t.movePart = re.TransformBoxPartAt(ev.Where, t.view.Transform, ed.Settings.PickDist)
		return
	}
	t.mode = ModeSelect
	if !stacked {
		if part := ed.PartInfoAt(ev.Where, t.view.Transform, acceptSelected, ed.Settings.PickDist); part != nil {
			eb := part.Editor.AsEditorBase()
			shift := t.shift()
			if shift || (part.Selectable && !eb.IsPartSelected(part.ID)) {
				eb.UpdatePartSelection(shift, []any{part.ID})
			}
			if !part.Selectable || eb.IsPartSelected(part.ID) {
				t.movePart = part
			}
			t.mode = ModeMove
			return
		}
	}
	t.selectAt(ev.Where, stacked)
}

// selectAt selects the top level element at the view position. Among
// stacked elements, a press selects the one below the selected one.
func (t *SelectTool) selectAt(pos math32.Vector2, stacked bool) {
	ed := t.view.Editor
	shift := t.shift()
	hits := t.hitElements(pos)
	if !stacked {
		for _, n := range hits {
			if n.AsNodeBase().Selected {
				hits = []svg.Node{n}
				break
			}
		}
	}
	switch {
	case len(hits) > 1:
		next := hits[0]
		for i := len(hits) - 1; i >= 0; i-- {
			if hits[i].AsNodeBase().Selected {
				next = hits[(i+1)%len(hits)]
				break
			}
		}
		ed.UpdateSelection(shift, next)
	case len(hits) == 1:
		n := hits[0]
		t.elementUnderMouse = n
		if shift || !n.AsNodeBase().Selected {
			ed.UpdateSelection(shift, n)
		} else if ee := ed.EditorFor(n); ee != nil {
			ee.AsEditorBase().UpdatePartSelection(false, nil)
		}
		if ed.HasSelection() {
			t.mode = ModeMove
		}
	default:
		ed.UpdateSelection(shift)
	}
}

// hitElements returns the unlocked top level elements at the view
// position, top-most first.
func (t *SelectTool) hitElements(pos math32.Vector2) []svg.Node {
	root := t.view.Editor.Root
	tol := t.view.DocTolerance(t.view.Editor.Settings.PickDist)
	var res []svg.Node
	for _, n := range root.HitTest(t.view.ToDoc(pos), tol) {
		top := root.TopLevel(n)
		if top == nil || top.AsNodeBase().Locked || slices.Contains(res, top) {
			continue
		}
		res = append(res, top)
	}
	return res
}

func (t *SelectTool) mouseRelease(ev *events.Mouse) {
	t.movePart = nil
	t.dragging = false
	if t.mode != ModeTransforming {
		t.mode = SelectIdle
	}
	t.updateUnderMouse(ev.Where)
}

func (t *SelectTool) dragStart(ev *events.Mouse) {
	re := t.view.Editor.RootEditor
	if re.IsTransformBoxActive() {
		if t.mode != ModeTransforming {
			re.SetTransformBoxActive(false)
			t.mode = SelectIdle
		}
	} else if t.mode == ModeTransforming {
		t.mode = SelectIdle
	}
	switch t.mode {
	case ModeMove:
		t.mode = ModeMoving
		t.moveStart = ev.Start
		t.dragging = true
	case ModeTransforming:
		t.moveStart = ev.Start
		t.dragging = t.movePart != nil
	}
	t.updateCursor()
}

func (t *SelectTool) drag(ev *events.Mouse) {
	if t.mode == ModeTransforming && !t.view.Editor.RootEditor.IsTransformBoxActive() {
		t.mode = SelectIdle
	}
	switch t.mode {
	case ModeMoving, ModeTransforming:
		t.moveCurrent = ev.Where
		t.updateSelectionTransform()
	case ModeSelect:
		t.view.Invalidate(t.area)
		t.area = math32.B2FromPoints(ev.Start, ev.Where)
		t.view.Invalidate(t.area)
	}
}

// updateSelectionTransform previews the move or transform of the
// current drag.
func (t *SelectTool) updateSelectionTransform() {
	if !t.dragging {
		return
	}
	ed := t.view.Editor
	switch t.mode {
	case ModeMoving:
		part := t.movePart
		if part != nil && part.Isolated {
			part.Editor.MovePart(part, t.moveCurrent, t.view.ViewToDoc(), ed.Guides, t.shift(), t.option())
			return
		}
		pos := t.moveCurrent
		if t.shift() {
			pos = math32.Constrain45(t.moveStart, pos)
		}
		dpos := t.view.ToDoc(pos)
		start := t.view.ToDoc(t.moveStart)
		pp, isPath := editor.PathPart{}, false
		if part != nil {
			pp, isPath = part.ID.(editor.PathPart)
		}
		if isPath && (pp.Type == editor.PartPoint || pp.Type == editor.PartSegment) {
			dpos = t.view.Snap(dpos)
			if pp.Type == editor.PartPoint {
				pe := part.Editor.(*editor.PathEditor)
				start = pe.Data().Transform.MulVector2AsPoint(pp.Point.Pos())
			}
			ed.MoveSelection(dpos.Sub(start), false, part)
			return
		}
		ed.MoveSelection(dpos.Sub(start), true, part)
	case ModeTransforming:
		ed.RootEditor.TransformWithBox(t.movePart, t.moveStart, t.moveCurrent, t.view.ViewToDoc(), t.option(), t.shift())
	}
}

func (t *SelectTool) dragEnd(ev *events.Mouse) {
	ed := t.view.Editor
	switch t.mode {
	case ModeMoving:
		if part := t.movePart; part != nil && part.Isolated {
			ed.BeginTransaction()
			part.Editor.ApplyPartMove(part)
			errors.Log(ed.CommitTransaction("Modify " + editor.NodeLabel(part.Editor.AsEditorBase().Node.Kind())))
		} else {
			ed.ApplySelectionTransform(t.option())
		}
	case ModeSelect:
		if !t.area.IsEmpty() {
			t.view.Invalidate(t.area)
			t.selectArea(t.area.MulMatrix2(t.view.ViewToDoc()))
			t.area = math32.B2Empty()
		}
	case ModeTransforming:
		if t.dragging {
			ed.RootEditor.ApplyTransformBox(t.option())
		}
	}
	t.dragging = false
}

// selectArea selects the unlocked visible top level elements
// intersecting the document area.
func (t *SelectTool) selectArea(area math32.Box2) {
	ed := t.view.Editor
	var sel []svg.Node
	for _, n := range ed.Root.Children {
		nb := n.AsNodeBase()
		if nb.Locked || nb.Hidden {
			continue
		}
		if bb := n.LocalBBox(); !bb.IsEmpty() && bb.IntersectsBox(area) {
			sel = append(sel, n)
		}
	}
	if t.shift() {
		ed.UpdateSelection(true, sel...)
		return
	}
	ed.UpdateSelection(false, sel...)
}

func (t *SelectTool) dblClick(ev *events.Mouse) {
	if t.closeTransformBox() {
		return
	}
	if n := t.elementUnderMouse; n != nil {
		if ee := t.view.Editor.EditorFor(n); ee != nil && ee.CanInlineEdit() {
			if errors.Log(ee.BeginInlineEdit()) == nil {
				t.inline = ee
				return
			}
		}
	}
	t.openTransformBox()
}

// finishInlineEdit ends an active inline edit, returning whether
// there was one.
func (t *SelectTool) finishInlineEdit() bool {
	ee := t.inline
	if ee == nil {
		return false
	}
	t.inline = nil
	ed := t.view.Editor
	ed.BeginTransaction()
	label, err := ee.FinishInlineEdit()
	errors.Log(err)
	errors.Log(ed.CommitTransaction(label))
	return true
}

func (t *SelectTool) openTransformBox() {
	re := t.view.Editor.RootEditor
	re.SetTransformBoxActive(true)
	if re.IsTransformBoxActive() {
		t.mode = ModeTransforming
	}
}

// closeTransformBox closes the transform box, returning whether it was open.
func (t *SelectTool) closeTransformBox() bool {
	re := t.view.Editor.RootEditor
	if !re.IsTransformBoxActive() {
		return false
	}
	re.ResetTransformBox()
	re.SetTransformBoxActive(false)
	t.mode = SelectIdle
	return true
}

// nudgeDelta returns the document move of an arrow key.
func (t *SelectTool) nudgeDelta(code key.Codes) math32.Vector2 {
	st := t.view.Editor.Settings
	d := st.NudgeSmall
	if t.shift() {
		d = st.NudgeBig
	}
	switch code {
	case key.CodeLeftArrow:
		return math32.Vec2(-d, 0)
	case key.CodeRightArrow:
		return math32.Vec2(d, 0)
	case key.CodeUpArrow:
		return math32.Vec2(0, -d)
	case key.CodeDownArrow:
		return math32.Vec2(0, d)
	}
	return math32.Vector2{}
}

func (t *SelectTool) keyDown(ev *events.Key) {
	if !ev.Code.IsArrow() {
		return
	}
	ed := t.view.Editor
	if !ed.HasSelection() || (t.mode != SelectIdle && !(t.mode == ModeMoving && t.nudging)) {
		return
	}
	t.mode = ModeMoving
	t.nudging = true
	t.keyDelta = t.keyDelta.Add(t.nudgeDelta(ev.Code))
	ed.MoveSelection(t.keyDelta, false, nil)
	ev.SetHandled()
}

func (t *SelectTool) keyRelease(ev *events.Key) {
	if !ev.Code.IsArrow() || !t.nudging {
		return
	}
	ed := t.view.Editor
	ed.BeginTransaction()
	ed.ApplySelectionTransform(false)
	errors.Log(ed.CommitTransaction("Move Selection"))
	t.keyDelta = math32.Vector2{}
	t.nudging = false
	t.mode = SelectIdle
	t.updateCursor()
	ev.SetHandled()
}

func (t *SelectTool) modifiersChanged(ev *events.Modifiers) {
	re := t.view.Editor.RootEditor
	if re.IsTransformBoxActive() {
		if t.mode == SelectIdle {
			t.mode = ModeTransforming
		}
	} else if t.mode == ModeTransforming {
		t.mode = SelectIdle
	}
	if ev.HasChanged(key.Shift|key.Alt|key.Meta) && (t.mode == ModeMoving || t.mode == ModeTransforming) {
		t.updateSelectionTransform()
	}
}
