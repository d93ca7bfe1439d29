// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg provides the drawing document: a tree of path and group
// elements that is saved as SVG or YAML.
package svg

import (
	"slices"

	"cogentcore.org/canvas/math32"
)

// Root is the root of a document.
type Root struct {
	NodeBase
	Container

	// Size is the page size.
	Size math32.Vector2
}

// NewRoot returns a new empty document with the given page size.
func NewRoot(size math32.Vector2) *Root {
	r := &Root{Size: size}
	r.init()
	return r
}

func (r *Root) Kind() string { return "svg" }

func (r *Root) LocalBBox() math32.Box2 {
	return r.childrenBBox()
}

// ApplyTransform applies the transform to all children.
func (r *Root) ApplyTransform(xf math32.Matrix2) {
	for _, k := range r.Children {
		k.ApplyTransform(xf)
	}
}

func (r *Root) Clone() Node {
	c := &Root{NodeBase: r.cloneBase(), Size: r.Size}
	cloneChildren(c, r.Children)
	return c
}

// PageBox returns the page rectangle.
func (r *Root) PageBox() math32.Box2 {
	return math32.Box2{Max: r.Size}
}

// DeleteAll removes all children.
func (r *Root) DeleteAll() {
	for _, k := range r.Children {
		k.AsNodeBase().Parent = nil
	}
	r.Children = nil
}

// FindID returns the node with the given ID, or nil.
func (r *Root) FindID(id string) Node {
	var res Node
	Walk(r, func(n Node) bool {
		if res != nil {
			return false
		}
		if n.AsNodeBase().ID == id {
			res = n
			return false
		}
		return true
	})
	return res
}

// Selected returns the selected nodes in document order.
func (r *Root) Selected() []Node {
	var sel []Node
	Walk(r, func(n Node) bool {
		if n.AsNodeBase().Selected {
			sel = append(sel, n)
		}
		return true
	})
	return sel
}

// HitTest returns the visible leaf elements at pos within the given
// tolerance, top-most first. Groups are reported through their children.
func (r *Root) HitTest(pos math32.Vector2, tolerance float32) []Node {
	var hits []Node
	Walk(r, func(n Node) bool {
		if n.AsNodeBase().Hidden {
			return false
		}
		if p, ok := n.(*Path); ok && p.Hit(pos, tolerance) {
			hits = append(hits, n)
		}
		return true
	})
	slices.Reverse(hits)
	return hits
}

// TopLevel returns the ancestor of n that is a direct child of the root.
func (r *Root) TopLevel(n Node) Node {
	for n != nil {
		p := n.AsNodeBase().Parent
		if p == nil {
			return nil
		}
		if p == Parent(r) {
			return n
		}
		n = p
	}
	return nil
}
