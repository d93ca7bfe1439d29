// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/canvas/math32"
)

// Group groups together elements, which are transformed together.
type Group struct {
	NodeBase
	Container
}

// NewGroup returns a new group with the given children.
func NewGroup(ns ...Node) *Group {
	g := &Group{}
	g.init()
	Add(g, ns...)
	return g
}

func (g *Group) Kind() string { return "g" }

func (g *Group) LocalBBox() math32.Box2 {
	return g.childrenBBox()
}

// ApplyTransform applies the transform to all children.
func (g *Group) ApplyTransform(xf math32.Matrix2) {
	for _, k := range g.Children {
		k.ApplyTransform(xf)
	}
}

func (g *Group) Clone() Node {
	c := &Group{NodeBase: g.cloneBase()}
	cloneChildren(c, g.Children)
	return c
}
