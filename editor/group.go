// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"cogentcore.org/canvas/math32"
)

// GroupEditor is the editor of [svg.Group] elements.
// A group is edited as a whole, through its pending transform.
type GroupEditor struct {
	EditorBase
}

// RootEditor is the editor of the document root. It is always open,
// as the root of the editor tree, and holds the transform box.
type RootEditor struct {
	EditorBase

	// TransformBox is the active transform box, or nil.
	TransformBox *TransformBox
}

// IsTransformBoxActive returns whether the transform box is shown.
func (re *RootEditor) IsTransformBoxActive() bool {
	return re.TransformBox != nil
}

// SetTransformBoxActive shows or hides the transform box around the
// selection. The box is not shown for an empty selection.
func (re *RootEditor) SetTransformBoxActive(on bool) {
	re.RequestInvalidation()
	re.TransformBox = nil
	if on {
		bb := re.Editor.SelectionBBox()
		if !bb.IsEmpty() {
			re.TransformBox = NewTransformBox(bb)
		}
	}
	re.RequestInvalidation()
}

// TransformBoxPartAt returns the part of the transform box at the view
// location, or nil.
func (re *RootEditor) TransformBoxPartAt(loc math32.Vector2, xf math32.Matrix2, tolerance float32) *PartInfo {
	if re.TransformBox == nil {
		return nil
	}
	tp := re.TransformBox.PartAt(loc, xf, tolerance)
	if tp == TBoxNone {
		return nil
	}
	return &PartInfo{Editor: re, ID: tp}
}

// TransformWithBox previews the transform of the selection for a drag
// of the transform box part from start to pos, in view coordinates.
func (re *RootEditor) TransformWithBox(part *PartInfo, start, pos math32.Vector2, viewToDoc math32.Matrix2, option, shift bool) {
	tp, ok := part.ID.(TBoxParts)
	if !ok || re.TransformBox == nil {
		return
	}
	xf := re.TransformBox.TransformFor(tp, viewToDoc.MulVector2AsPoint(start), viewToDoc.MulVector2AsPoint(pos), option, shift)
	re.RequestInvalidation()
	re.TransformBox.Transform = xf
	re.RequestInvalidation()
	re.Editor.TransformSelection(xf, nil)
}

// ApplyTransformBox applies the transform of the box to the selection,
// to clones of it if clone is set.
func (re *RootEditor) ApplyTransformBox(clone bool) {
	if re.TransformBox == nil {
		return
	}
	re.Editor.ApplySelectionTransform(clone)
	re.SetTransformBoxActive(true)
}

// ResetTransformBox discards the transform of the box and of the selection.
func (re *RootEditor) ResetTransformBox() {
	if re.TransformBox == nil {
		return
	}
	re.RequestInvalidation()
	re.TransformBox.Transform = math32.Identity2()
	re.RequestInvalidation()
	re.Editor.ResetSelectionTransform()
}

func (re *RootEditor) BBox(xf math32.Matrix2) math32.Box2 {
	if re.TransformBox == nil {
		return re.EditorBase.BBox(xf)
	}
	return re.TransformBox.BBox(xf)
}
