// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/paint/ppath"
)

// Path is a path element, made of anchor points.
type Path struct {
	NodeBase

	// Data is the path geometry, including its transform.
	Data *ppath.Path
}

// NewPath returns a new path element for the given path, which may be nil.
func NewPath(data *ppath.Path) *Path {
	if data == nil {
		data = ppath.New()
	}
	g := &Path{Data: data}
	g.init()
	return g
}

func (g *Path) Kind() string { return "path" }

// LocalBBox returns the bounds of the path geometry with its transform.
func (g *Path) LocalBBox() math32.Box2 {
	return g.Data.TransformedBounds(g.Data.Transform)
}

// ApplyTransform multiplies the path transform by xf, which applies last.
func (g *Path) ApplyTransform(xf math32.Matrix2) {
	g.Data.Transform = xf.Mul(g.Data.Transform)
}

func (g *Path) Clone() Node {
	return &Path{NodeBase: g.cloneBase(), Data: g.Data.Clone()}
}

// Hit returns whether pos is on the path, within the tolerance of
// its segments, or inside of it for closed paths.
func (g *Path) Hit(pos math32.Vector2, tolerance float32) bool {
	bb := g.LocalBBox()
	if bb.IsEmpty() {
		return false
	}
	bb.ExpandByScalar(tolerance)
	if !bb.ContainsPoint(pos) {
		return false
	}
	if g.Data.Closed {
		return true
	}
	if _, ok := g.Data.SegmentAt(pos, g.Data.Transform, tolerance); ok {
		return true
	}
	for _, pt := range g.Data.Points {
		if g.Data.Transform.MulVector2AsPoint(pt.Pos()).DistanceTo(pos) <= tolerance {
			return true
		}
	}
	return false
}
