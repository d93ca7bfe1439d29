// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"slices"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/math32"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Node is the interface for all document nodes.
type Node interface {

	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// Kind returns the element kind, which is also the SVG element name
	// (e.g., "path", "g").
	Kind() string

	// LocalBBox returns the bounding box of the node in document
	// coordinates, or an empty box.
	LocalBBox() math32.Box2

	// ApplyTransform applies the given 2D transform to the geometry of this node.
	ApplyTransform(xf math32.Matrix2)

	// Clone returns a deep copy of the node with new IDs,
	// not attached to any parent.
	Clone() Node
}

// Parent is a [Node] that has children.
type Parent interface {
	Node

	// AsContainer returns the children container.
	AsContainer() *Container
}

// NodeBase is the base type for all elements within a document.
type NodeBase struct {

	// ID is the unique identifier of the node.
	ID string

	// Name is an optional user name.
	Name string

	// Locked nodes cannot be transformed by selection edits.
	Locked bool

	// Hidden nodes are not hit by [Root.HitTest].
	Hidden bool

	// Selected is set for nodes in the editor selection.
	Selected bool

	// Parent is the node containing this one, nil for the root and
	// for detached nodes.
	Parent Parent `copier:"-"`
}

func (nb *NodeBase) AsNodeBase() *NodeBase { return nb }

// init sets a new unique ID.
func (nb *NodeBase) init() {
	nb.ID = uuid.NewString()
}

// cloneBase returns a copy of the base with a new ID and no parent.
func (nb *NodeBase) cloneBase() NodeBase {
	var c NodeBase
	errors.Must(copier.Copy(&c, nb))
	c.init()
	return c
}

// Container holds child nodes.
type Container struct {

	// Children are the child nodes, bottom-most first.
	Children []Node
}

func (c *Container) AsContainer() *Container { return c }

// Add adds the given nodes at the end of the children of par.
// Adding a node that already has a parent is a programmer error.
func Add(par Parent, ns ...Node) {
	Insert(par, len(par.AsContainer().Children), ns...)
}

// Insert inserts the given nodes before index i in the children of par.
func Insert(par Parent, i int, ns ...Node) {
	for _, n := range ns {
		nb := n.AsNodeBase()
		if nb.Parent != nil {
			panic(errors.Errorf("svg.Insert: node %s is already in a parent", nb.ID))
		}
		nb.Parent = par
	}
	c := par.AsContainer()
	c.Children = slices.Insert(c.Children, i, ns...)
}

// Delete removes the node from its parent, returning false if it has none.
func Delete(n Node) bool {
	nb := n.AsNodeBase()
	if nb.Parent == nil {
		return false
	}
	c := nb.Parent.AsContainer()
	i := slices.Index(c.Children, n)
	if i < 0 {
		return false
	}
	c.Children = slices.Delete(c.Children, i, i+1)
	nb.Parent = nil
	return true
}

// IndexOf returns the index of the node in its parent, or -1.
func IndexOf(n Node) int {
	nb := n.AsNodeBase()
	if nb.Parent == nil {
		return -1
	}
	return slices.Index(nb.Parent.AsContainer().Children, n)
}

// Walk calls fun on n and then on all of its descendants, depth first
// in document order. If fun returns false the children of that node
// are skipped.
func Walk(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	if p, ok := n.(Parent); ok {
		for _, k := range p.AsContainer().Children {
			Walk(k, fun)
		}
	}
}

// IsAncestor returns whether anc is n or one of its parents.
func IsAncestor(anc, n Node) bool {
	for n != nil {
		if n == anc {
			return true
		}
		p := n.AsNodeBase().Parent
		if p == nil {
			return false
		}
		n = p
	}
	return false
}

// childrenBBox returns the union of the bounding boxes of the children.
func (c *Container) childrenBBox() math32.Box2 {
	bb := math32.B2Empty()
	for _, k := range c.Children {
		kb := k.LocalBBox()
		if !kb.IsEmpty() {
			bb.ExpandByBox(kb)
		}
	}
	return bb
}

// cloneChildren sets the children of par to clones of the given ones.
func cloneChildren(par Parent, kids []Node) {
	par.AsContainer().Children = nil
	for _, k := range kids {
		Add(par, k.Clone())
	}
}
