// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"slices"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/guides"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/svg"
)

// ErrNotSupported is returned by the inline editing methods of
// editors that do not support inline editing.
var ErrNotSupported = errors.New("editor: not supported")

// Annotation sizes in view pixels.
const (
	AnnotationSmall   = 4
	AnnotationRegular = 6
)

// PartInfo describes a part of an element hit under a location.
type PartInfo struct {

	// Editor is the editor owning the part.
	Editor ElementEditor

	// ID identifies the part within the editor. It is comparable.
	ID any

	// Data is optional editor specific data about the hit.
	Data any

	// Isolated parts are moved on their own with
	// [ElementEditor.MovePart] instead of moving the selection.
	Isolated bool

	// Selectable parts can be added to the part selection.
	Selectable bool
}

// ElementEditor is the interface for the editors attached to the
// elements of a document while they are selected or highlighted.
// Editors form a tree mirroring the document tree.
// All editors embed [EditorBase].
type ElementEditor interface {

	// AsEditorBase returns the [EditorBase] of the editor.
	AsEditorBase() *EditorBase

	// PartInfoAt returns the part at the given view location, testing
	// the children first, or nil. xf is the document to view
	// transform. If accept is non-nil, only editors it accepts
	// are tested, but their children are always visited.
	PartInfoAt(loc math32.Vector2, xf math32.Matrix2, accept func(ed ElementEditor) bool, tolerance float32) *PartInfo

	// BBox returns the area covered by the editor in view coordinates,
	// which is empty unless the element is selected or highlighted.
	BBox(xf math32.Matrix2) math32.Box2

	// Invalidate returns the area to repaint for the given
	// invalidation arguments, which are nil for the whole editor.
	Invalidate(xf math32.Matrix2, args any) math32.Box2

	// MovePart moves an isolated part to the given view position,
	// as a preview until [ElementEditor.ApplyPartMove].
	MovePart(part *PartInfo, pos math32.Vector2, viewToDoc math32.Matrix2, g *guides.Guides, shift, option bool)

	// ResetPartMove discards a pending part move.
	ResetPartMove(part *PartInfo)

	// ApplyPartMove commits a pending part move to the element.
	ApplyPartMove(part *PartInfo)

	// Transform sets the pending transform, which is shown as a
	// preview. part is the part the transform was started from, or nil.
	Transform(xf math32.Matrix2, part *PartInfo)

	// ResetTransform discards the pending transform.
	ResetTransform()

	// CanApplyTransform returns whether [ElementEditor.ApplyTransform]
	// would change anything.
	CanApplyTransform() bool

	// ApplyTransform applies the pending transform to the given node,
	// which is the element or a clone of it, and resets it.
	ApplyTransform(n svg.Node)

	// CanInlineEdit returns whether the element has an inline editor.
	CanInlineEdit() bool

	// BeginInlineEdit starts inline editing.
	BeginInlineEdit() error

	// FinishInlineEdit ends inline editing, returning the
	// label of the resulting change.
	FinishInlineEdit() (string, error)

	// IsDeletePartsAllowed returns whether the selected parts can be deleted.
	IsDeletePartsAllowed() bool

	// DeletePartsSelected deletes the selected parts.
	DeletePartsSelected()

	// partInfoAt is the editor specific hit test, called by
	// PartInfoAt when the location is inside of the bounding box.
	partInfoAt(loc math32.Vector2, xf math32.Matrix2, tolerance float32) *PartInfo

	// setPartSelection stores the new part selection, which differs
	// from the current one.
	setPartSelection(sel []any)
}

// EditorBase is the base type of all element editors, implementing the
// flag, part selection and pending transform protocol.
type EditorBase struct {

	// This is the editor as its full interface type, used for
	// calling the methods that editors override.
	This ElementEditor

	// Editor is the document editor this editor belongs to.
	Editor *Editor

	// Node is the edited element.
	Node svg.Node

	// Flags are the state flags.
	Flags Flags

	// Parent is the editor of the parent element, nil for the root.
	Parent ElementEditor

	// Children are the editors of child elements, in document order.
	Children []ElementEditor

	// PartSelection are the IDs of the selected parts, or nil.
	PartSelection []any

	// transform is the pending transform, or nil.
	transform *math32.Matrix2
}

func (eb *EditorBase) AsEditorBase() *EditorBase { return eb }

// init sets up the base for the given editor and node.
func (eb *EditorBase) init(this ElementEditor, ed *Editor, n svg.Node) {
	eb.This = this
	eb.Editor = ed
	eb.Node = n
}

// HasFlag returns whether the given flags are set.
func (eb *EditorBase) HasFlag(f Flags) bool {
	return eb.Flags.HasFlag(f)
}

// SetFlag sets the given flags, invalidating the editor area
// before and after.
func (eb *EditorBase) SetFlag(f Flags) {
	if eb.HasFlag(f) {
		return
	}
	eb.RequestInvalidation()
	eb.Flags |= f
	eb.RequestInvalidation()
}

// RemoveFlag clears the given flags, invalidating the editor area
// before and after.
func (eb *EditorBase) RemoveFlag(f Flags) {
	if eb.Flags&f == 0 {
		return
	}
	eb.RequestInvalidation()
	eb.Flags &^= f
	eb.RequestInvalidation()
}

// RequestInvalidation asks the document editor to repaint the area
// of this editor for the given optional arguments.
func (eb *EditorBase) RequestInvalidation(args ...any) {
	if eb.Editor == nil {
		return
	}
	var a any
	if len(args) > 0 {
		a = args[0]
	}
	eb.Editor.requestInvalidation(eb.This, a)
}

// insertEditor inserts a child editor before index i.
func (eb *EditorBase) insertEditor(i int, ed ElementEditor) {
	ed.AsEditorBase().Parent = eb.This
	eb.Children = slices.Insert(eb.Children, i, ed)
}

// removeEditor removes a child editor.
func (eb *EditorBase) removeEditor(ed ElementEditor) {
	if i := slices.Index(eb.Children, ed); i >= 0 {
		eb.Children = slices.Delete(eb.Children, i, i+1)
		ed.AsEditorBase().Parent = nil
	}
}

// Walk calls fun on this editor and all of its descendants, depth
// first. If fun returns false the children of that editor are skipped.
func (eb *EditorBase) Walk(fun func(ed ElementEditor) bool) {
	if !fun(eb.This) {
		return
	}
	for _, k := range slices.Clone(eb.Children) {
		k.AsEditorBase().Walk(fun)
	}
}

// IsPartSelected returns whether the part is in the part selection.
func (eb *EditorBase) IsPartSelected(id any) bool {
	return slices.Contains(eb.PartSelection, id)
}

// UpdatePartSelection updates the part selection with the given parts.
// Without toggle it replaces the selection. With toggle, parts already
// selected are removed and the others are added. Only selected editors
// have a part selection.
func (eb *EditorBase) UpdatePartSelection(toggle bool, sel []any) {
	if !eb.HasFlag(Selected) {
		return
	}
	var ns []any
	if !toggle {
		ns = slices.Clone(sel)
	} else {
		for _, id := range eb.PartSelection {
			if !slices.Contains(sel, id) {
				ns = append(ns, id)
			}
		}
		for _, id := range sel {
			if !slices.Contains(eb.PartSelection, id) && !slices.Contains(ns, id) {
				ns = append(ns, id)
			}
		}
	}
	if len(ns) == 0 {
		ns = nil
	}
	if slices.Equal(ns, eb.PartSelection) {
		return
	}
	eb.This.setPartSelection(ns)
}

func (eb *EditorBase) setPartSelection(sel []any) {
	eb.RequestInvalidation()
	eb.PartSelection = sel
	eb.RequestInvalidation()
}

func (eb *EditorBase) PartInfoAt(loc math32.Vector2, xf math32.Matrix2, accept func(ed ElementEditor) bool, tolerance float32) *PartInfo {
	for i := len(eb.Children) - 1; i >= 0; i-- {
		if pi := eb.Children[i].PartInfoAt(loc, xf, accept, tolerance); pi != nil {
			return pi
		}
	}
	if accept != nil && !accept(eb.This) {
		return nil
	}
	bb := eb.This.BBox(xf)
	if bb.IsEmpty() {
		return nil
	}
	bb.ExpandByScalar(tolerance)
	if !bb.ContainsPoint(loc) {
		return nil
	}
	return eb.This.partInfoAt(loc, xf, tolerance)
}

func (eb *EditorBase) partInfoAt(loc math32.Vector2, xf math32.Matrix2, tolerance float32) *PartInfo {
	return nil
}

// ShowAnnotations returns whether the editor shows its parts.
func (eb *EditorBase) ShowAnnotations() bool {
	return eb.HasFlag(Selected) && !eb.HasFlag(Outline)
}

// viewTransform returns the document to view transform with the
// pending transform applied first.
func (eb *EditorBase) viewTransform(xf math32.Matrix2) math32.Matrix2 {
	if eb.transform != nil {
		return xf.Mul(*eb.transform)
	}
	return xf
}

func (eb *EditorBase) BBox(xf math32.Matrix2) math32.Box2 {
	if !eb.HasFlag(Selected) && !eb.HasFlag(Highlighted) {
		return math32.B2Empty()
	}
	bb := eb.Node.LocalBBox()
	if bb.IsEmpty() {
		return bb
	}
	bb = bb.MulMatrix2(eb.viewTransform(xf))
	bb.ExpandByScalar(1)
	return bb
}

func (eb *EditorBase) Invalidate(xf math32.Matrix2, args any) math32.Box2 {
	if args == nil {
		return eb.This.BBox(xf)
	}
	return math32.B2Empty()
}

func (eb *EditorBase) MovePart(part *PartInfo, pos math32.Vector2, viewToDoc math32.Matrix2, g *guides.Guides, shift, option bool) {
	if !eb.HasFlag(Outline) {
		eb.SetFlag(Outline)
	} else {
		eb.RequestInvalidation()
	}
}

func (eb *EditorBase) ResetPartMove(part *PartInfo) {
	eb.RemoveFlag(Outline)
}

func (eb *EditorBase) ApplyPartMove(part *PartInfo) {
	eb.RemoveFlag(Outline)
}

func (eb *EditorBase) Transform(xf math32.Matrix2, part *PartInfo) {
	eb.setTransform(xf)
}

// setTransform stores the pending transform and shows the outline.
func (eb *EditorBase) setTransform(xf math32.Matrix2) {
	if eb.transform != nil && *eb.transform == xf {
		return
	}
	if !eb.HasFlag(Outline) {
		eb.SetFlag(Outline)
	} else {
		eb.RequestInvalidation()
	}
	eb.transform = &xf
	eb.RequestInvalidation()
}

// PendingTransform returns the pending transform, and false if there is none.
func (eb *EditorBase) PendingTransform() (math32.Matrix2, bool) {
	if eb.transform == nil {
		return math32.Identity2(), false
	}
	return *eb.transform, true
}

func (eb *EditorBase) ResetTransform() {
	eb.RequestInvalidation()
	eb.transform = nil
	eb.RemoveFlag(Outline)
}

func (eb *EditorBase) CanApplyTransform() bool {
	return eb.transform != nil && !eb.transform.IsIdentity() && !eb.Node.AsNodeBase().Locked
}

func (eb *EditorBase) ApplyTransform(n svg.Node) {
	if eb.transform != nil && !eb.transform.IsIdentity() {
		n.ApplyTransform(*eb.transform)
	}
	eb.This.ResetTransform()
}

func (eb *EditorBase) CanInlineEdit() bool { return false }

func (eb *EditorBase) BeginInlineEdit() error { return ErrNotSupported }

func (eb *EditorBase) FinishInlineEdit() (string, error) { return "", ErrNotSupported }

func (eb *EditorBase) IsDeletePartsAllowed() bool { return false }

func (eb *EditorBase) DeletePartsSelected() {}

// annotationBBox returns the view area of an annotation drawn at the
// given position, which is transformed by xf.
func annotationBBox(xf math32.Matrix2, center math32.Vector2, small bool) math32.Box2 {
	size := float32(AnnotationRegular)
	if small {
		size = AnnotationSmall
	}
	c := xf.MulVector2AsPoint(center)
	cx := math32.Floor(c.X) + 0.5
	cy := math32.Floor(c.Y) + 0.5
	h := size/2 + 1
	return math32.B2(cx-h, cy-h, cx+h, cy+h)
}
