// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/svg"
)

// ErrDetached is returned when opening an editor for a node that
// is not part of the document.
var ErrDetached = errors.New("editor: node is not in the document")

// newEditorFuncs are the editor constructors by element kind.
var newEditorFuncs = map[string]func() ElementEditor{}

// Register registers the editor constructor for the given element kind.
func Register(kind string, fun func() ElementEditor) {
	newEditorFuncs[kind] = fun
}

func init() {
	Register("svg", func() ElementEditor { return &RootEditor{} })
	Register("g", func() ElementEditor { return &GroupEditor{} })
	Register("path", func() ElementEditor { return &PathEditor{} })
}

// newElementEditor returns a new editor for the node, not attached
// to any parent editor.
func (e *Editor) newElementEditor(n svg.Node) (ElementEditor, error) {
	fun, ok := newEditorFuncs[n.Kind()]
	if !ok {
		return nil, fmt.Errorf("editor: no editor for element kind %q", n.Kind())
	}
	ed := fun()
	ed.AsEditorBase().init(ed, e, n)
	return ed, nil
}

// EditorFor returns the open editor of the node, or nil.
func (e *Editor) EditorFor(n svg.Node) ElementEditor {
	return e.editors[n]
}

// OpenEditor returns the editor of the node, opening it and the
// editors of its parents as needed.
func (e *Editor) OpenEditor(n svg.Node) (ElementEditor, error) {
	if ed, ok := e.editors[n]; ok {
		return ed, nil
	}
	if !svg.IsAncestor(e.Root, n) {
		return nil, fmt.Errorf("%w: %s %s", ErrDetached, n.Kind(), n.AsNodeBase().ID)
	}
	ped, err := e.OpenEditor(n.AsNodeBase().Parent)
	if err != nil {
		return nil, err
	}
	ed, err := e.newElementEditor(n)
	if err != nil {
		return nil, err
	}
	pb := ped.AsEditorBase()
	idx := len(pb.Children)
	sibs := n.AsNodeBase().Parent.AsContainer().Children
	for i := svg.IndexOf(n) + 1; i < len(sibs); i++ {
		if sed, ok := e.editors[sibs[i]]; ok {
			for j, k := range pb.Children {
				if k == sed {
					idx = j
					break
				}
			}
			break
		}
	}
	pb.insertEditor(idx, ed)
	e.editors[n] = ed
	return ed, nil
}

// CloseEditor closes the editor of the node and the editors of its
// descendants.
func (e *Editor) CloseEditor(n svg.Node) {
	ed, ok := e.editors[n]
	if !ok || ed == ElementEditor(e.RootEditor) {
		return
	}
	eb := ed.AsEditorBase()
	for len(eb.Children) > 0 {
		e.CloseEditor(eb.Children[len(eb.Children)-1].AsEditorBase().Node)
	}
	eb.RequestInvalidation()
	if eb.Parent != nil {
		eb.Parent.AsEditorBase().removeEditor(ed)
	}
	delete(e.editors, n)
}

// tryCloseEditor closes the editor of the node if it is neither
// selected nor highlighted and has no children, and then tries the
// same for its parents.
func (e *Editor) tryCloseEditor(n svg.Node) {
	ed, ok := e.editors[n]
	if !ok || ed == ElementEditor(e.RootEditor) {
		return
	}
	eb := ed.AsEditorBase()
	if eb.HasFlag(Selected) || eb.HasFlag(Highlighted) || len(eb.Children) > 0 {
		return
	}
	par := eb.Parent
	e.CloseEditor(n)
	if par != nil {
		e.tryCloseEditor(par.AsEditorBase().Node)
	}
}
