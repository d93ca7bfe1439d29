// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import (
	"image"
	"log/slog"

	"cogentcore.org/canvas/cursors"
	"cogentcore.org/canvas/editor"
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/events/key"
	"cogentcore.org/canvas/math32"
	"golang.org/x/image/math/fixed"
)

// View is the surface the tools work on: the view of a document
// being edited, with its cursor and the listeners of the active tool.
type View struct {

	// Editor is the editor of the document.
	Editor *editor.Editor

	// Transform is the document to view transform.
	Transform math32.Matrix2

	// Cursor is the current mouse cursor.
	Cursor cursors.Cursor

	// Mods are the modifier keys currently held.
	Mods key.Modifiers

	// Dirty is the view area that needs repainting.
	Dirty math32.Box2

	// Listeners are the event listeners of the active tool.
	Listeners events.Listeners
}

// NewView returns a new view for the editor, collecting the areas
// invalidated by the editors and the guides.
func NewView(ed *editor.Editor) *View {
	v := &View{Editor: ed, Transform: math32.Identity2(), Dirty: math32.B2Empty()}
	ed.OnInvalidate = func(ee editor.ElementEditor, args any) {
		v.Invalidate(ee.Invalidate(v.Transform, args))
	}
	ed.Guides.Invalidate = func(area math32.Box2) {
		v.Invalidate(area.MulMatrix2(v.Transform))
	}
	return v
}

// ViewToDoc returns the view to document transform.
func (v *View) ViewToDoc() math32.Matrix2 {
	return v.Transform.Inverse()
}

// ToDoc returns the document position of the view position.
func (v *View) ToDoc(pos math32.Vector2) math32.Vector2 {
	return v.ViewToDoc().MulVector2AsPoint(pos)
}

// ToView returns the view position of the document position.
func (v *View) ToView(pos math32.Vector2) math32.Vector2 {
	return v.Transform.MulVector2AsPoint(pos)
}

// Snap returns the document position snapped to the guides.
func (v *View) Snap(pos math32.Vector2) math32.Vector2 {
	g := v.Editor.Guides
	g.BeginMap()
	defer g.FinishMap()
	return g.MapPoint(pos)
}

// DocTolerance converts a view distance to the document.
func (v *View) DocTolerance(d float32) float32 {
	sx, sy := v.ViewToDoc().ExtractXYScale()
	return d * max(math32.Abs(sx), math32.Abs(sy))
}

// SetCursor sets the mouse cursor.
func (v *View) SetCursor(c cursors.Cursor) {
	if c == v.Cursor {
		return
	}
	slog.Debug("tools: cursor", "cursor", c)
	v.Cursor = c
}

// Invalidate adds the view area to the dirty area.
func (v *View) Invalidate(area math32.Box2) {
	if area.IsEmpty() {
		return
	}
	v.Dirty.ExpandByBox(area)
}

// DirtyRect returns the pixel rectangle covering the dirty area.
func (v *View) DirtyRect() image.Rectangle {
	if v.Dirty.IsEmpty() {
		return image.Rectangle{}
	}
	return v.Dirty.ToRect()
}

// DirtyFixed returns the dirty area in 26.6 fixed point,
// for rasterizers working in fixed point.
func (v *View) DirtyFixed() fixed.Rectangle26_6 {
	if v.Dirty.IsEmpty() {
		return fixed.Rectangle26_6{}
	}
	return v.Dirty.ToFixed()
}

// ResetDirty clears the dirty area, after repainting.
func (v *View) ResetDirty() {
	v.Dirty = math32.B2Empty()
}
