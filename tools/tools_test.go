// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/canvas/base/tolassert"
	"cogentcore.org/canvas/cursors"
	"cogentcore.org/canvas/editor"
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/events/key"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/paint/ppath"
	"cogentcore.org/canvas/settings"
	"cogentcore.org/canvas/svg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

// harness drives a tool manager with events one step apart.
type harness struct {
	t    *testing.T
	ed   *editor.Editor
	view *View
	mgr  *Manager
	now  time.Time
	step time.Duration
}

func newHarness(t *testing.T, ns ...svg.Node) *harness {
	root := svg.NewRoot(math32.Vec2(200, 200))
	svg.Add(root, ns...)
	st := settings.New()
	st.PageSnap = false
	ed := editor.New(root, st)
	v := NewView(ed)
	return &harness{t: t, ed: ed, view: v, mgr: NewManager(v), now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: time.Second}
}

func (h *harness) activate(tl Tool) {
	require.NoError(h.t, h.mgr.Activate(tl, false))
}

func (h *harness) tick() time.Time {
	h.now = h.now.Add(h.step)
	return h.now
}

func (h *harness) mouse(typ events.Types, but events.Buttons, x, y float32, mods key.Modifiers) {
	ev := events.NewMouse(typ, but, math32.Vec2(x, y), mods)
	ev.GenTime = h.tick()
	h.mgr.HandleEvent(ev)
}

func (h *harness) move(x, y float32, mods key.Modifiers) {
	h.mouse(events.MouseMove, events.NoButton, x, y, mods)
}

func (h *harness) clickButton(but events.Buttons, x, y float32, mods key.Modifiers) {
	h.move(x, y, mods)
	h.mouse(events.MouseDown, but, x, y, mods)
	h.mouse(events.MouseUp, but, x, y, mods)
}

func (h *harness) click(x, y float32, mods key.Modifiers) {
	h.clickButton(events.Left, x, y, mods)
}

func (h *harness) drag(x0, y0, x1, y1 float32, mods key.Modifiers) {
	h.move(x0, y0, mods)
	h.mouse(events.MouseDown, events.Left, x0, y0, mods)
	h.move(x1, y1, mods)
	h.mouse(events.MouseUp, events.Left, x1, y1, mods)
}

func (h *harness) key(typ events.Types, code key.Codes, mods key.Modifiers) {
	ev := events.NewKey(typ, code, mods)
	ev.GenTime = h.tick()
	h.mgr.HandleEvent(ev)
}

// actions returns the labels of the recorded undo steps.
func (h *harness) actions() []string {
	u := &h.ed.Undos
	var res []string
	for i := 1; i <= u.Idx && i < len(u.Recs); i++ {
		res = append(res, u.Recs[i].Action)
	}
	return res
}

func (h *harness) lastAction() string {
	acts := h.actions()
	if len(acts) == 0 {
		return ""
	}
	return acts[len(acts)-1]
}

func (h *harness) onlyPath() *svg.Path {
	require.Len(h.t, h.ed.Root.Children, 1)
	p, ok := h.ed.Root.Children[0].(*svg.Path)
	require.True(h.t, ok)
	return p
}

func (h *harness) pathEditor(p *svg.Path) *editor.PathEditor {
	pe, ok := h.ed.EditorFor(p).(*editor.PathEditor)
	require.True(h.t, ok)
	return pe
}

func (h *harness) selectPath(p *svg.Path, pt *ppath.AnchorPoint) {
	h.ed.UpdateSelection(false, p)
	if pt != nil {
		h.pathEditor(p).SelectOnePoint(pt)
	}
}

func assertVec(t *testing.T, expected, actual math32.Vector2) {
	t.Helper()
	tolassert.Equal(t, expected.X, actual.X)
	tolassert.Equal(t, expected.Y, actual.Y)
}

func assertPoints(t *testing.T, p *ppath.Path, pos ...math32.Vector2) {
	t.Helper()
	require.Equal(t, len(pos), p.Len())
	for i, v := range pos {
		assertVec(t, v, p.At(i).Pos())
	}
}

func newPath(closed bool, pos ...float32) *svg.Path {
	var pts []*ppath.AnchorPoint
	for i := 0; i+1 < len(pos); i += 2 {
		pts = append(pts, ppath.NewAnchorPoint(pos[i], pos[i+1]))
	}
	pd := ppath.New(pts...)
	pd.Closed = closed
	return svg.NewPath(pd)
}

func TestPenAppend(t *testing.T) {
	h := newHarness(t)
	pen := NewPenTool()
	h.activate(pen)
	assert.Equal(t, cursors.PenStart, h.view.Cursor)

	h.click(10, 10, 0)
	h.click(50, 10, 0)
	h.click(50, 50, 0)

	p := h.onlyPath()
	assertPoints(t, p.Data, math32.Vec2(10, 10), math32.Vec2(50, 10), math32.Vec2(50, 50))
	assert.False(t, p.Data.Closed)
	assert.Equal(t, []*ppath.AnchorPoint{p.Data.Last()}, p.Data.SelectedPoints())
	assert.Equal(t, ModeAppend, pen.Mode())
	assert.True(t, h.pathEditor(p).IsActiveExtendingMode())
	assert.False(t, h.pathEditor(p).HasPreview())
	assert.False(t, h.ed.InTransaction())
	assert.Equal(t, NoTransaction, pen.Transaction())
	assert.Equal(t, []string{"Insert Element(s)", "Append Point", "Append Point"}, h.actions())
	assert.False(t, h.view.Dirty.IsEmpty())
	assert.NotEqual(t, image.Rectangle{}, h.view.DirtyRect())
	assert.NotEqual(t, fixed.Rectangle26_6{}, h.view.DirtyFixed())
	h.view.ResetDirty()
	assert.Equal(t, fixed.Rectangle26_6{}, h.view.DirtyFixed())
}

func TestPenPrepend(t *testing.T) {
	p := newPath(false, 10, 10, 50, 10)
	h := newHarness(t, p)
	h.selectPath(p, p.Data.First())
	pen := NewPenTool()
	h.activate(pen)

	h.click(10, 50, 0)
	assertPoints(t, p.Data, math32.Vec2(10, 50), math32.Vec2(10, 10), math32.Vec2(50, 10))
	assert.Equal(t, ModePrepend, pen.Mode())
	assert.Equal(t, []*ppath.AnchorPoint{p.Data.First()}, p.Data.SelectedPoints())
	assert.Equal(t, "Append Point", h.lastAction())
}

func TestPenConstrain(t *testing.T) {
	h := newHarness(t)
	h.activate(NewPenTool())
	h.click(10, 10, 0)
	h.click(50, 10, 0)
	h.click(90, 20, key.Shift)
	h.click(130, 45, key.Shift)

	p := h.onlyPath()
	assertPoints(t, p.Data, math32.Vec2(10, 10), math32.Vec2(50, 10), math32.Vec2(90, 10), math32.Vec2(130, 50))
}

func TestPenShiftReplay(t *testing.T) {
	h := newHarness(t)
	pen := NewPenTool()
	h.activate(pen)
	h.click(10, 10, 0)
	h.move(50, 20, 0)
	require.NotNil(t, pen.editPt)
	assertVec(t, math32.Vec2(50, 20), pen.editPt.Pos())

	h.key(events.KeyDown, key.CodeLeftShift, key.Shift)
	assertVec(t, math32.Vec2(50, 10), pen.editPt.Pos())
}

func TestPenClose(t *testing.T) {
	h := newHarness(t)
	pen := NewPenTool()
	h.activate(pen)
	h.click(10, 10, 0)
	h.click(50, 10, 0)
	h.click(50, 50, 0)

	h.move(11, 11, 0)
	assert.Equal(t, cursors.PenEnd, h.view.Cursor)
	h.mouse(events.MouseDown, events.Left, 11, 11, 0)
	h.mouse(events.MouseUp, events.Left, 11, 11, 0)

	p := h.onlyPath()
	assert.True(t, p.Data.Closed)
	assertPoints(t, p.Data, math32.Vec2(10, 10), math32.Vec2(50, 10), math32.Vec2(50, 50))
	assert.Nil(t, p.Data.First().HL)
	assert.Equal(t, ModeEdit, pen.Mode())
	assert.False(t, h.pathEditor(p).IsActiveExtendingMode())
	assert.Equal(t, "Modify Path Properties", h.lastAction())
}

func TestPenSmoothPoint(t *testing.T) {
	h := newHarness(t)
	h.activate(NewPenTool())
	h.click(10, 10, 0)
	h.drag(50, 10, 70, 10, 0)

	p := h.onlyPath()
	require.Equal(t, 2, p.Data.Len())
	pt := p.Data.Last()
	assertVec(t, math32.Vec2(50, 10), pt.Pos())
	assert.Equal(t, ppath.Symmetric, pt.Type)
	require.NotNil(t, pt.HR)
	require.NotNil(t, pt.HL)
	assertVec(t, math32.Vec2(70, 10), *pt.HR)
	assertVec(t, math32.Vec2(30, 10), *pt.HL)
	assert.Equal(t, "Append Point", h.lastAction())
}

func TestPenCornerTypes(t *testing.T) {
	h := newHarness(t)
	h.activate(NewPenTool())
	h.click(10, 10, 0)
	h.clickButton(events.Right, 50, 10, 0)
	h.clickButton(events.Right, 90, 10, key.Alt)

	p := h.onlyPath()
	require.Equal(t, 3, p.Data.Len())
	assert.Equal(t, ppath.Rounded, p.Data.At(1).Type)
	assert.True(t, p.Data.At(1).Uniform)
	assert.Equal(t, ppath.Connector, p.Data.At(2).Type)
}

// middlePath returns an open path with a smooth second point.
func middlePath() *svg.Path {
	p := newPath(false, 10, 10, 50, 10, 90, 10, 90, 50)
	pt := p.Data.At(1)
	pt.Type = ppath.Symmetric
	hl, hr := math32.Vec2(40, 10), math32.Vec2(60, 10)
	pt.HL, pt.HR = &hl, &hr
	return p
}

func TestPenClearHandles(t *testing.T) {
	p := middlePath()
	h := newHarness(t, p)
	h.selectPath(p, nil)
	pen := NewPenTool()
	h.activate(pen)

	h.move(50, 10, 0)
	assert.Equal(t, ModeEdit, pen.Mode())
	assert.Equal(t, cursors.PenModify, h.view.Cursor)
	h.mouse(events.MouseDown, events.Left, 50, 10, 0)
	h.mouse(events.MouseUp, events.Left, 50, 10, 0)

	require.Equal(t, 4, p.Data.Len())
	pt := p.Data.At(1)
	assert.Nil(t, pt.HL)
	assert.Nil(t, pt.HR)
	assert.Equal(t, cursors.PenMinus, h.view.Cursor)
	assert.Equal(t, "Modify Point Properties", h.lastAction())

	h.click(50, 10, 0)
	assertPoints(t, p.Data, math32.Vec2(10, 10), math32.Vec2(90, 10), math32.Vec2(90, 50))
	assert.Equal(t, "Delete Point", h.lastAction())
	assert.False(t, h.ed.InTransaction())
}

func TestPenKeepLastPoints(t *testing.T) {
	p := newPath(true, 10, 10, 50, 10)
	h := newHarness(t, p)
	h.selectPath(p, nil)
	pen := NewPenTool()
	h.activate(pen)

	h.click(50, 10, 0)
	assert.Equal(t, 2, p.Data.Len())
	assert.Empty(t, h.actions())
	assert.False(t, h.ed.InTransaction())
	assert.Equal(t, NoTransaction, pen.Transaction())
}

func TestPenInsertPoint(t *testing.T) {
	p := newPath(false, 10, 10, 90, 10)
	h := newHarness(t, p)
	h.selectPath(p, nil)
	pen := NewPenTool()
	h.activate(pen)

	h.move(50, 10, 0)
	assert.Equal(t, cursors.PenPlus, h.view.Cursor)
	h.mouse(events.MouseDown, events.Left, 50, 10, 0)
	assert.Equal(t, InsertPoint, pen.Transaction())
	h.mouse(events.MouseUp, events.Left, 50, 10, 0)

	assertPoints(t, p.Data, math32.Vec2(10, 10), math32.Vec2(50, 10), math32.Vec2(90, 10))
	assert.Equal(t, "Insert Point", h.lastAction())
	assert.Equal(t, ModeEdit, pen.Mode())
}

func TestPenContinueFromEnd(t *testing.T) {
	p := newPath(false, 10, 10, 50, 10)
	h := newHarness(t, p)
	h.selectPath(p, nil)
	pen := NewPenTool()
	h.activate(pen)

	h.click(50, 10, 0)
	assert.Equal(t, ModeAppend, pen.Mode())
	h.click(50, 50, 0)
	assertPoints(t, p.Data, math32.Vec2(10, 10), math32.Vec2(50, 10), math32.Vec2(50, 50))
}

func TestPenTransactionKind(t *testing.T) {
	p := newPath(false, 10, 10, 50, 10, 90, 10)
	h := newHarness(t, p)
	pen := NewPenTool()
	h.activate(pen)

	pen.startTransaction(InsertPoint)
	assert.True(t, h.ed.InTransaction())
	pen.startTransaction(AppendPoint)
	assert.Equal(t, AppendPoint, pen.Transaction())
	pen.startTransaction(DeletePoint)
	assert.Equal(t, DeletePoint, pen.Transaction())
	p.Data.Remove(p.Data.At(1))
	pen.finishTransaction()
	assert.Equal(t, NoTransaction, pen.Transaction())
	assert.False(t, h.ed.InTransaction())
	assert.Equal(t, []string{"Delete Point"}, h.actions())

	act, err := h.ed.Undo()
	require.NoError(t, err)
	assert.Equal(t, "Delete Point", act)
	assert.Equal(t, 3, h.onlyPath().Data.Len())
}

func TestPenInsertPointDrag(t *testing.T) {
	p := newPath(false, 10, 10, 90, 10)
	h := newHarness(t, p)
	h.selectPath(p, nil)
	pen := NewPenTool()
	h.activate(pen)

	h.drag(50, 10, 60, 30, 0)

	p = h.onlyPath()
	require.Equal(t, 3, p.Data.Len())
	assertVec(t, math32.Vec2(50, 10), p.Data.At(1).Pos())
	assert.True(t, p.Data.At(1).HasHandles())
	assert.Equal(t, []string{"Insert Point"}, h.actions())
	assert.Equal(t, NoTransaction, pen.Transaction())
}

func TestPenForcedDeactivate(t *testing.T) {
	h := newHarness(t)
	pen := NewPenTool()
	h.activate(pen)
	h.move(10, 10, 0)
	h.mouse(events.MouseDown, events.Left, 10, 10, 0)
	h.move(30, 10, 0)
	require.True(t, h.ed.InTransaction())
	assert.False(t, pen.IsDeactivatable())

	assert.ErrorIs(t, h.mgr.Deactivate(false), ErrPressed)
	require.NoError(t, h.mgr.Deactivate(true))

	assert.Nil(t, h.mgr.Active())
	assert.False(t, h.ed.InTransaction())
	assert.Equal(t, NoTransaction, pen.Transaction())
	assert.Nil(t, pen.pathEditor)
	assert.Nil(t, pen.path)
	assert.Nil(t, pen.preview)
	assert.Nil(t, pen.editPt)
	assert.Nil(t, pen.refPt)
	assert.Nil(t, pen.dragStartPt)
	assert.True(t, pen.IsDeactivatable())

	p := h.onlyPath()
	assert.False(t, h.pathEditor(p).HasPreview())
	assert.Equal(t, "Insert Element(s)", h.lastAction())
}

func TestPenDoubleClick(t *testing.T) {
	h := newHarness(t)
	pen := NewPenTool()
	h.activate(pen)
	h.click(10, 10, 0)
	h.click(50, 10, 0)

	h.step = 50 * time.Millisecond
	h.click(90, 10, 0)
	h.mouse(events.MouseDown, events.Left, 90, 10, 0)
	h.mouse(events.MouseUp, events.Left, 90, 10, 0)

	p := h.onlyPath()
	assert.Equal(t, 3, p.Data.Len())
	assert.Equal(t, ModeEdit, pen.Mode())
	assert.False(t, h.pathEditor(p).IsActiveExtendingMode())
	assert.Empty(t, p.Data.SelectedPoints())

	h.step = time.Second
	h.click(150, 150, 0)
	require.Len(t, h.ed.Root.Children, 2)
	np := h.ed.Root.Children[1].(*svg.Path)
	assertPoints(t, np.Data, math32.Vec2(150, 150))
	assert.Equal(t, []svg.Node{np}, h.ed.Selection())
}

func TestPenEndPath(t *testing.T) {
	h := newHarness(t)
	pen := NewPenTool()
	h.activate(pen)
	h.click(10, 10, 0)
	h.click(50, 10, 0)
	h.key(events.KeyDown, key.CodeTab, 0)

	assert.False(t, h.ed.HasSelection())
	assert.Equal(t, cursors.PenStart, h.view.Cursor)
	h.click(100, 100, 0)
	assert.Len(t, h.ed.Root.Children, 2)
}

func TestPenDeletePoints(t *testing.T) {
	p := newPath(false, 10, 10, 50, 10, 90, 10)
	h := newHarness(t, p)
	h.selectPath(p, p.Data.At(1))
	h.activate(NewPenTool())

	h.key(events.KeyDown, key.CodeDelete, 0)
	assertPoints(t, p.Data, math32.Vec2(10, 10), math32.Vec2(90, 10))
	assert.Equal(t, "Delete Point", h.lastAction())
}

func TestPenTemporarySelect(t *testing.T) {
	h := newHarness(t)
	pen := NewPenTool()
	h.activate(pen)
	h.click(10, 10, 0)
	h.click(50, 10, 0)
	p := h.onlyPath()

	require.NoError(t, h.mgr.ActivateTemporary(NewSelectTool()))
	h.click(30, 10, 0)
	assert.Equal(t, []svg.Node{p}, h.ed.Selection())
	assert.Empty(t, p.Data.SelectedPoints())

	require.NoError(t, h.mgr.ReleaseTemporary())
	assert.Equal(t, pen, h.mgr.Active())
	assert.Equal(t, []*ppath.AnchorPoint{p.Data.Last()}, p.Data.SelectedPoints())
	assert.Equal(t, cursors.Pen, h.view.Cursor)

	h.click(50, 50, 0)
	assertPoints(t, p.Data, math32.Vec2(10, 10), math32.Vec2(50, 10), math32.Vec2(50, 50))
}

func squarePath() *svg.Path {
	return newPath(true, 10, 10, 30, 10, 30, 30, 10, 30)
}

func assertBox(t *testing.T, expected, actual math32.Box2) {
	t.Helper()
	assertVec(t, expected.Min, actual.Min)
	assertVec(t, expected.Max, actual.Max)
}

func TestSelectMove(t *testing.T) {
	p := squarePath()
	h := newHarness(t, p)
	st := NewSelectTool()
	h.activate(st)

	h.drag(20, 20, 30, 25, 0)
	assert.Equal(t, []svg.Node{p}, h.ed.Selection())
	assertBox(t, math32.B2(20, 15, 40, 35), p.LocalBBox())
	assert.Equal(t, "Transform Selection", h.lastAction())
	assert.Equal(t, SelectIdle, st.Mode())
}

func TestSelectMovePoint(t *testing.T) {
	p := squarePath()
	h := newHarness(t, p)
	h.activate(NewSelectTool())

	h.click(20, 20, 0)
	h.move(10, 10, 0)
	assert.Equal(t, cursors.SelectDot, h.view.Cursor)
	h.drag(10, 10, 15, 12, 0)
	assertPoints(t, p.Data, math32.Vec2(15, 12), math32.Vec2(30, 10), math32.Vec2(30, 30), math32.Vec2(10, 30))
}

func TestSelectNudge(t *testing.T) {
	p := squarePath()
	h := newHarness(t, p)
	h.activate(NewSelectTool())
	h.click(20, 20, 0)

	h.key(events.KeyDown, key.CodeRightArrow, 0)
	h.key(events.KeyDown, key.CodeRightArrow, 0)
	h.key(events.KeyUp, key.CodeRightArrow, 0)
	assertBox(t, math32.B2(12, 10, 32, 30), p.LocalBBox())
	assert.Equal(t, "Move Selection", h.lastAction())

	h.key(events.KeyDown, key.CodeDownArrow, key.Shift)
	h.key(events.KeyUp, key.CodeDownArrow, key.Shift)
	assertBox(t, math32.B2(12, 20, 32, 40), p.LocalBBox())
}

func TestSelectArea(t *testing.T) {
	a := newPath(false, 10, 10, 20, 20)
	b := newPath(false, 100, 100, 120, 120)
	h := newHarness(t, a, b)
	h.activate(NewSelectTool())

	h.drag(0, 0, 50, 50, 0)
	assert.Equal(t, []svg.Node{a}, h.ed.Selection())
	h.drag(90, 90, 130, 130, key.Shift)
	assert.Equal(t, []svg.Node{a, b}, h.ed.Selection())
	h.click(180, 180, 0)
	assert.False(t, h.ed.HasSelection())
}

func TestSelectStacked(t *testing.T) {
	a := squarePath()
	b := squarePath()
	h := newHarness(t, a, b)
	h.activate(NewSelectTool())

	h.click(20, 20, 0)
	assert.Equal(t, []svg.Node{b}, h.ed.Selection())
	h.click(20, 20, key.Meta)
	assert.Equal(t, []svg.Node{a}, h.ed.Selection())
	h.click(20, 20, key.Meta)
	assert.Equal(t, []svg.Node{b}, h.ed.Selection())
}

func TestSelectTransformBox(t *testing.T) {
	p := squarePath()
	h := newHarness(t, p)
	st := NewSelectTool()
	h.activate(st)

	h.step = 50 * time.Millisecond
	h.click(20, 20, 0)
	h.click(20, 20, 0)
	re := h.ed.RootEditor
	require.True(t, re.IsTransformBoxActive())
	assert.Equal(t, ModeTransforming, st.Mode())
	assert.True(t, st.IsDeactivatable())

	h.step = time.Second
	h.move(30, 30, 0)
	assert.Equal(t, cursors.SelectResizeDiag, h.view.Cursor)
	h.drag(30, 30, 50, 50, 0)
	assertBox(t, math32.B2(10, 10, 50, 50), p.LocalBBox())
	require.True(t, re.IsTransformBoxActive())
	assertBox(t, math32.B2(10, 10, 50, 50), re.TransformBox.Box)

	h.step = 50 * time.Millisecond
	h.click(100, 100, 0)
	h.click(100, 100, 0)
	assert.False(t, re.IsTransformBoxActive())
	assert.Equal(t, SelectIdle, st.Mode())
}

// recorder records the types of the events it receives.
type recorder struct {
	types  []events.Types
	busy   bool
	active bool
}

func (r *recorder) Activate(v *View) {
	r.active = true
	for typ := events.MouseDown; typ <= events.ModifiersChanged; typ++ {
		v.Listeners.Add(typ, func(e events.Event) { r.types = append(r.types, e.Type()) })
	}
}

func (r *recorder) Deactivate(v *View)    { r.active = false }
func (r *recorder) IsDeactivatable() bool { return !r.busy }

func TestManagerEvents(t *testing.T) {
	h := newHarness(t)
	r := &recorder{}
	h.activate(r)

	h.move(0, 0, 0)
	h.mouse(events.MouseDown, events.Left, 0, 0, 0)
	h.move(1, 0, 0)
	h.move(5, 0, 0)
	h.mouse(events.MouseUp, events.Left, 5, 0, 0)
	assert.Equal(t, []events.Types{events.MouseMove, events.MouseDown, events.DragStart, events.MouseDrag, events.DragEnd, events.MouseUp}, r.types)

	r.types = nil
	h.step = 50 * time.Millisecond
	h.mouse(events.MouseDown, events.Left, 5, 0, 0)
	h.mouse(events.MouseUp, events.Left, 5, 0, 0)
	h.mouse(events.MouseDown, events.Left, 5, 0, 0)
	h.mouse(events.MouseUp, events.Left, 5, 0, 0)
	assert.Equal(t, []events.Types{events.MouseDown, events.MouseUp, events.MouseDown, events.MouseUp, events.DoubleClick}, r.types)

	r.types = nil
	h.move(6, 0, key.Shift)
	h.mouse(events.MouseUp, events.Left, 6, 0, key.Shift)
	assert.Equal(t, []events.Types{events.ModifiersChanged, events.MouseMove}, r.types)
	assert.Equal(t, key.Shift, h.view.Mods)
}

func TestManagerTemporary(t *testing.T) {
	h := newHarness(t)
	a, b := &recorder{}, &recorder{}
	h.activate(a)
	require.NoError(t, h.mgr.ActivateTemporary(b))
	assert.False(t, a.active)
	assert.True(t, b.active)

	b.busy = true
	assert.ErrorIs(t, h.mgr.ReleaseTemporary(), ErrPressed)
	b.busy = false
	require.NoError(t, h.mgr.ReleaseTemporary())
	assert.True(t, a.active)
	assert.False(t, b.active)
	assert.Equal(t, Tool(a), h.mgr.Active())
	require.NoError(t, h.mgr.ReleaseTemporary())
	assert.Equal(t, Tool(a), h.mgr.Active())
}

func TestNewTool(t *testing.T) {
	tl, err := NewTool("pen")
	require.NoError(t, err)
	assert.IsType(t, &PenTool{}, tl)
	assert.Equal(t, "pen", ToolName(tl))
	_, err = NewTool("brush")
	assert.Error(t, err)
	assert.Equal(t, []string{"pen", "select"}, ToolNames())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Insert Element(s)", InsertElement.Label())
	assert.Equal(t, "Modify Point Properties", ModifyPointProperties.Label())
	assert.Equal(t, "", NoTransaction.Label())
	assert.Equal(t, "Prepend", ModePrepend.String())
	assert.Equal(t, "Transforming", ModeTransforming.String())
	assert.Equal(t, "Modes(7)", Modes(7).String())
}
