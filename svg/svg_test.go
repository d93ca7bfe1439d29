// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/paint/ppath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linePath(x0, y0, x1, y1 float32) *Path {
	return NewPath(ppath.New(ppath.NewAnchorPoint(x0, y0), ppath.NewAnchorPoint(x1, y1)))
}

func testDoc() (*Root, *Path, *Path, *Group) {
	r := NewRoot(math32.Vec2(100, 80))
	a := linePath(0, 0, 50, 0)
	b := linePath(0, 0, 0, 50)
	b.Data.Closed = true
	g := NewGroup(b)
	Add(r, a, g)
	return r, a, b, g
}

func TestTree(t *testing.T) {
	r, a, b, g := testDoc()
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36)
	assert.Equal(t, Parent(g), b.Parent)
	assert.Equal(t, 1, IndexOf(g))
	assert.Equal(t, 0, IndexOf(b))
	assert.Equal(t, -1, IndexOf(r))
	assert.True(t, IsAncestor(r, b))
	assert.False(t, IsAncestor(a, b))
	assert.Equal(t, Node(g), r.TopLevel(b))
	assert.Equal(t, Node(b), r.FindID(b.ID))
	assert.Nil(t, r.FindID("none"))

	var kinds []string
	Walk(r, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Equal(t, []string{"svg", "path", "g", "path"}, kinds)

	assert.Panics(t, func() { Add(r, b) })
	assert.True(t, Delete(b))
	assert.False(t, Delete(b))
	assert.Empty(t, g.Children)
	assert.Nil(t, b.Parent)
}

func TestBBoxTransform(t *testing.T) {
	r, a, b, g := testDoc()
	assert.Equal(t, math32.B2(0, 0, 50, 50), r.LocalBBox())
	g.ApplyTransform(math32.Translate2D(10, 5))
	assert.Equal(t, math32.B2(10, 5, 10, 55), b.LocalBBox())
	a.ApplyTransform(math32.Scale2D(2, 1))
	a.ApplyTransform(math32.Translate2D(1, 0))
	assert.Equal(t, math32.B2(1, 0, 101, 0), a.LocalBBox())
}

func TestClone(t *testing.T) {
	_, _, b, g := testDoc()
	b.Selected = true
	c := g.Clone().(*Group)
	assert.Nil(t, c.Parent)
	assert.NotEqual(t, g.ID, c.ID)
	require.Len(t, c.Children, 1)
	cb := c.Children[0].(*Path)
	assert.Equal(t, Parent(c), cb.Parent)
	assert.NotEqual(t, b.ID, cb.ID)
	assert.True(t, cb.Selected)
	assert.True(t, cb.Data.GeometryEqual(b.Data))
	assert.NotSame(t, b.Data, cb.Data)
}

func TestHitTest(t *testing.T) {
	r, a, b, _ := testDoc()
	assert.Equal(t, []Node{a}, r.HitTest(math32.Vec2(25, 1), 2))
	assert.Empty(t, r.HitTest(math32.Vec2(25, 10), 2))
	// both paths touch the origin; the top-most comes first
	assert.Equal(t, []Node{b, a}, r.HitTest(math32.Vec2(0, 0), 2))
	b.Hidden = true
	assert.Equal(t, []Node{a}, r.HitTest(math32.Vec2(0, 0), 2))
}

func TestSelected(t *testing.T) {
	r, a, b, _ := testDoc()
	assert.Empty(t, r.Selected())
	b.Selected = true
	a.Selected = true
	assert.Equal(t, []Node{a, b}, r.Selected())
}

func TestYAML(t *testing.T) {
	r, a, b, _ := testDoc()
	a.Name = "line"
	a.Data.Points[0].Type = ppath.Symmetric
	b.Locked = true
	var buf bytes.Buffer
	require.NoError(t, r.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "size: [100, 80]")

	n := NewRoot(math32.Vec2(1, 1))
	require.NoError(t, n.ReadYAML(&buf))
	assert.Equal(t, r.ID, n.ID)
	assert.Equal(t, r.Size, n.Size)
	require.Len(t, n.Children, 2)
	na := n.Children[0].(*Path)
	assert.Equal(t, a.ID, na.ID)
	assert.Equal(t, "line", na.Name)
	assert.True(t, na.Data.GeometryEqual(a.Data))
	ng := n.Children[1].(*Group)
	nb := ng.Children[0].(*Path)
	assert.True(t, nb.Locked)
	assert.True(t, nb.Data.Closed)
	assert.Equal(t, Parent(ng), nb.Parent)

	assert.Error(t, n.ReadYAML(strings.NewReader("id: x\nsize: [1, 1]\nchildren:\n  - kind: rect\n    id: y\n")))
}

func TestXML(t *testing.T) {
	r, a, _, _ := testDoc()
	a.ApplyTransform(math32.Translate2D(3, 4))
	var buf bytes.Buffer
	require.NoError(t, r.WriteXML(&buf, true))
	s := buf.String()
	assert.Contains(t, s, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="80" viewBox="0 0 100 80">`)
	assert.Contains(t, s, `d="M0 0L50 0" transform="translate(3,4)"`)
	assert.Contains(t, s, `d="M0 0L0 50Z"`)

	n := NewRoot(math32.Vec2(1, 1))
	require.NoError(t, n.ReadXML(&buf))
	assert.Equal(t, r.Size, n.Size)
	require.Len(t, n.Children, 2)
	na := n.Children[0].(*Path)
	assert.Equal(t, a.ID, na.ID)
	assert.True(t, na.Data.GeometryEqual(a.Data))
	assert.Equal(t, a.Data.Transform, na.Data.Transform)
	assert.Len(t, n.Children[1].(*Group).Children, 1)
}

func TestReadXMLCompound(t *testing.T) {
	src := `<?xml version="1.0"?>
<svg width="20px" height="10px">
  <title>test</title>
  <rect x="0" y="0" width="5" height="5"/>
  <path id="p" d="M0 0L5 0M10 0L15 0Z" display="none"/>
</svg>`
	r := NewRoot(math32.Vec2(1, 1))
	require.NoError(t, r.ReadXML(strings.NewReader(src)))
	assert.Equal(t, math32.Vec2(20, 10), r.Size)
	require.Len(t, r.Children, 1)
	g := r.Children[0].(*Group)
	assert.Equal(t, "p", g.ID)
	require.Len(t, g.Children, 2)
	assert.False(t, g.Children[0].(*Path).Data.Closed)
	assert.True(t, g.Children[1].(*Path).Data.Closed)
	assert.True(t, g.Children[1].AsNodeBase().Hidden)

	assert.Error(t, r.ReadXML(strings.NewReader(`<svg><path d="M0 0A1 1 0 0 0 1 1"/></svg>`)))
}
