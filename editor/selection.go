// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"slices"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/svg"
)

// Selection returns the selected elements, in selection order.
func (e *Editor) Selection() []svg.Node {
	return e.selection
}

// HasSelection returns whether any element is selected.
func (e *Editor) HasSelection() bool {
	return len(e.selection) > 0
}

// PathSelection returns the selected path if it is the only
// selected element, or nil.
func (e *Editor) PathSelection() *svg.Path {
	if len(e.selection) != 1 {
		return nil
	}
	p, _ := e.selection[0].(*svg.Path)
	return p
}

// tryAddToSelection opens the editor of the node and flags it selected.
func (e *Editor) tryAddToSelection(n svg.Node) {
	ed, err := e.OpenEditor(n)
	if errors.Log(err) != nil {
		return
	}
	n.AsNodeBase().Selected = true
	eb := ed.AsEditorBase()
	eb.SetFlag(Selected)
	if e.SelectionDetail {
		eb.SetFlag(Detail)
	}
	if !slices.Contains(e.selection, n) {
		e.selection = append(e.selection, n)
	}
}

// tryRemoveFromSelection unflags the node and closes its editor if
// it is no longer needed.
func (e *Editor) tryRemoveFromSelection(n svg.Node) {
	n.AsNodeBase().Selected = false
	if i := slices.Index(e.selection, n); i >= 0 {
		e.selection = slices.Delete(e.selection, i, i+1)
	}
	ed := e.editors[n]
	if ed == nil {
		return
	}
	eb := ed.AsEditorBase()
	eb.RemoveFlag(Selected | Detail)
	eb.PartSelection = nil
	if pe, ok := ed.(*PathEditor); ok {
		pe.ReleasePathPreview()
		pe.Data().ClearSelection()
	}
	e.tryCloseEditor(n)
}

// UpdateSelection updates the selection with the given elements.
// Without toggle the selection is replaced. With toggle, selected
// elements are removed and the others are added.
func (e *Editor) UpdateSelection(toggle bool, sel ...svg.Node) {
	if !toggle {
		for _, n := range sel {
			e.tryAddToSelection(n)
		}
		e.ClearSelection(sel...)
		return
	}
	for _, n := range sel {
		if slices.Contains(e.selection, n) {
			e.tryRemoveFromSelection(n)
		} else {
			e.tryAddToSelection(n)
		}
	}
}

// ClearSelection removes all elements from the selection,
// except for the given ones.
func (e *Editor) ClearSelection(except ...svg.Node) {
	for _, n := range slices.Clone(e.selection) {
		if !slices.Contains(except, n) {
			e.tryRemoveFromSelection(n)
		}
	}
}

// SelectionBBox returns the bounding box of the selection in
// document coordinates.
func (e *Editor) SelectionBBox() math32.Box2 {
	bb := math32.B2Empty()
	for _, n := range e.selection {
		if nb := n.LocalBBox(); !nb.IsEmpty() {
			bb.ExpandByBox(nb)
		}
	}
	return bb
}

// MoveSelection moves the selection by the document delta. With align
// the moved bounding box of the selection snaps to the guides.
// part is the editor part the move was started from, or nil.
func (e *Editor) MoveSelection(delta math32.Vector2, align bool, part *PartInfo) {
	if align {
		bb := e.SelectionBBox()
		if !bb.IsEmpty() {
			moved := math32.Box2{Min: bb.Min.Add(delta), Max: bb.Max.Add(delta)}
			e.Guides.BeginMap()
			moved = e.Guides.MapRect(moved)
			e.Guides.FinishMap()
			delta = moved.Min.Sub(bb.Min)
		}
	}
	e.TransformSelection(math32.Translate2D(delta.X, delta.Y), part)
}

// ScaleSelection scales the selection by sx, sy around the given
// document position.
func (e *Editor) ScaleSelection(sx, sy float32, origin math32.Vector2, part *PartInfo) {
	xf := math32.Translate2D(origin.X, origin.Y).Mul(math32.Scale2D(sx, sy)).Mul(math32.Translate2D(-origin.X, -origin.Y))
	e.TransformSelection(xf, part)
}

// TransformSelection sets the pending transform of the editors of the
// selection.
func (e *Editor) TransformSelection(xf math32.Matrix2, part *PartInfo) {
	for _, n := range e.selection {
		if ed := e.editors[n]; ed != nil {
			ed.Transform(xf, part)
		}
	}
}

// ResetSelectionTransform discards the pending transforms of the selection.
func (e *Editor) ResetSelectionTransform() {
	for _, n := range e.selection {
		if ed := e.editors[n]; ed != nil {
			ed.ResetTransform()
		}
	}
}

// ApplySelectionTransform applies the pending transforms of the
// selection in one undo step. With clone, the transforms are applied
// to clones of the selected elements, which are added after them
// and become the selection.
func (e *Editor) ApplySelectionTransform(clone bool) {
	label := "Transform Selection"
	if clone {
		label = "Transform & Clone Selection"
	}
	e.BeginTransaction()
	var clones []svg.Node
	for _, n := range slices.Clone(e.selection) {
		ed := e.editors[n]
		if ed == nil {
			continue
		}
		if !ed.CanApplyTransform() {
			ed.ResetTransform()
			continue
		}
		target := n
		if clone {
			target = n.Clone()
			target.AsNodeBase().Selected = false
			par := n.AsNodeBase().Parent
			svg.Insert(par, svg.IndexOf(n)+1, target)
			clones = append(clones, target)
		}
		ed.ApplyTransform(target)
	}
	if len(clones) > 0 {
		e.UpdateSelection(false, clones...)
	}
	errors.Log(e.CommitTransaction(label))
}

// InsertElements adds the elements at the end of the document and
// selects them, in one undo step.
func (e *Editor) InsertElements(ns ...svg.Node) {
	e.BeginTransaction()
	svg.Add(e.Root, ns...)
	e.UpdateSelection(false, ns...)
	errors.Log(e.CommitTransaction("Insert Element(s)"))
}

// DeleteSelection deletes the selected parts of editors that allow it,
// and the other selected elements, in one undo step.
func (e *Editor) DeleteSelection() {
	if !e.HasSelection() {
		return
	}
	e.BeginTransaction()
	for _, n := range slices.Clone(e.selection) {
		ed := e.editors[n]
		if ed != nil && ed.IsDeletePartsAllowed() {
			ed.DeletePartsSelected()
			continue
		}
		e.tryRemoveFromSelection(n)
		e.CloseEditor(n)
		svg.Delete(n)
	}
	errors.Log(e.CommitTransaction("Delete Selection"))
}
