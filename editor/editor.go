// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package editor provides the editing of a document: the element
// editors with their parts and previews, the selection, and undoable
// transactions.
package editor

import (
	"bytes"
	"strings"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/guides"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/settings"
	"cogentcore.org/canvas/svg"
	"cogentcore.org/canvas/undo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Editor edits a document.
type Editor struct {

	// Root is the edited document.
	Root *svg.Root

	// RootEditor is the editor of the root, at the top of the editor tree.
	RootEditor *RootEditor

	// Settings are the editing settings.
	Settings *settings.Settings

	// Guides are the snapping guides, updated from the settings
	// by [Editor.UpdateGuides].
	Guides *guides.Guides

	// Undos is the undo history, with YAML snapshots of the document.
	Undos undo.Mgr

	// SelectionDetail sets the [Detail] flag on the editors of
	// newly selected elements.
	SelectionDetail bool

	// OnInvalidate is called when the area of an element editor
	// needs repainting, with optional invalidation arguments.
	OnInvalidate func(ed ElementEditor, args any)

	// selection are the selected elements in selection order.
	selection []svg.Node

	// editors are the open element editors.
	editors map[svg.Node]ElementEditor

	// transactions are the document states at the start of the
	// open transactions, innermost last.
	transactions [][]string
}

// New returns a new editor for the document, with the given settings,
// or default settings if nil. Elements already flagged as selected
// in the document form the initial selection.
func New(root *svg.Root, st *settings.Settings) *Editor {
	if st == nil {
		st = settings.New()
	}
	e := &Editor{Root: root, Settings: st}
	e.Undos.MaxRecs = st.MaxUndo
	e.UpdateGuides()
	e.resetEditors()
	e.Undos.Reset(e.state())
	return e
}

// resetEditors closes all editors and opens the editors of the elements
// flagged as selected in the document.
func (e *Editor) resetEditors() {
	e.editors = map[svg.Node]ElementEditor{}
	e.selection = nil
	ed, err := e.newElementEditor(e.Root)
	errors.Log(err)
	e.RootEditor = ed.(*RootEditor)
	e.editors[e.Root] = ed
	for _, n := range e.Root.Selected() {
		e.tryAddToSelection(n)
	}
	e.requestInvalidation(ed, nil)
}

// UpdateGuides rebuilds the guides from the settings: the grid, and
// the page edges and center.
func (e *Editor) UpdateGuides() {
	gr := guides.NewGrid(e.Settings.GridSize)
	gr.Active = e.Settings.GridActive
	g := guides.New(gr)
	if e.Settings.PageSnap {
		pb := e.Root.PageBox()
		c := pb.Center()
		g.Add(&guides.Lines{
			X:        []float32{pb.Min.X, c.X, pb.Max.X},
			Y:        []float32{pb.Min.Y, c.Y, pb.Max.Y},
			Distance: e.Settings.SnapDist,
			Extent:   pb,
		})
	}
	if e.Guides != nil {
		g.Invalidate = e.Guides.Invalidate
	}
	e.Guides = g
}

// SetSettings sets new settings, updating the guides.
func (e *Editor) SetSettings(st *settings.Settings) {
	e.Settings = st
	e.Undos.MaxRecs = st.MaxUndo
	e.UpdateGuides()
}

// requestInvalidation reports the editor area to repaint.
func (e *Editor) requestInvalidation(ed ElementEditor, args any) {
	if e.OnInvalidate != nil {
		e.OnInvalidate(ed, args)
	}
}

// PartInfoAt returns the editor part at the view location, or nil.
// See [ElementEditor.PartInfoAt].
func (e *Editor) PartInfoAt(loc math32.Vector2, xf math32.Matrix2, accept func(ed ElementEditor) bool, tolerance float32) *PartInfo {
	return e.RootEditor.PartInfoAt(loc, xf, accept, tolerance)
}

// state returns the document as YAML lines.
func (e *Editor) state() []string {
	var b bytes.Buffer
	errors.Log(e.Root.WriteYAML(&b))
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

// restore sets the document from YAML lines, reopening the editors
// of the selected elements.
func (e *Editor) restore(state []string) error {
	if err := e.Root.ReadYAML(strings.NewReader(strings.Join(state, "\n"))); err != nil {
		return err
	}
	e.resetEditors()
	return nil
}

// NodeLabel returns the user label of the kind of the node,
// such as "Path".
func NodeLabel(kind string) string {
	name := kind
	switch kind {
	case "g":
		name = "group"
	case "svg":
		name = "document"
	}
	return cases.Title(language.English).String(name)
}
