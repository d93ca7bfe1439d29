// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/canvas/base/tolassert"
	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tolEqualVec2(t *testing.T, a, b math32.Vector2, tols ...float64) {
	t.Helper()
	tol := 1.0e-4
	if len(tols) == 1 {
		tol = tols[0]
	}
	assert.InDelta(t, b.X, a.X, tol)
	assert.InDelta(t, b.Y, a.Y, tol)
}

func tolEqualBox2(t *testing.T, a, b math32.Box2, tols ...float64) {
	t.Helper()
	tol := 1.0e-4
	if len(tols) == 1 {
		tol = tols[0]
	}
	tolEqualVec2(t, b.Min, a.Min, tol)
	tolEqualVec2(t, b.Max, a.Max, tol)
}

func vp(x, y float32) *math32.Vector2 {
	return &math32.Vector2{X: x, Y: y}
}

func TestPathOrder(t *testing.T) {
	a, b, c := NewAnchorPoint(0, 0), NewAnchorPoint(10, 0), NewAnchorPoint(10, 10)
	p := New(b)
	p.Append(c)
	p.Prepend(a)
	assert.Equal(t, []*AnchorPoint{a, b, c}, p.Points)
	assert.Equal(t, 3, p.Len())
	assert.Same(t, a, p.First())
	assert.Same(t, c, p.Last())
	assert.Same(t, p, b.Parent)
	assert.Equal(t, 1, b.Index())

	assert.Nil(t, p.Prev(a))
	assert.Nil(t, p.Next(c))
	assert.True(t, p.IsEndpoint(a))
	assert.True(t, p.IsEndpoint(c))
	assert.False(t, p.IsEndpoint(b))

	p.Closed = true
	assert.Same(t, c, a.Prev())
	assert.Same(t, a, c.Next())
	assert.False(t, p.IsEndpoint(a))

	assert.True(t, p.Remove(b))
	assert.Nil(t, b.Parent)
	assert.False(t, p.Remove(b))
	assert.Equal(t, []*AnchorPoint{a, c}, p.Points)

	assert.Panics(t, func() { New(a) })
	assert.Nil(t, p.At(5))
}

func TestClone(t *testing.T) {
	a := NewAnchorPoint(0, 0)
	a.HR = vp(5, 5)
	a.Selected = true
	b := NewAnchorPoint(10, 0)
	b.Type = Rounded
	b.CL, b.CR = 2, 3
	p := New(a, b)
	p.Transform = math32.Translate2D(3, 4)

	c := p.Clone()
	require.Equal(t, 2, c.Len())
	assert.NotSame(t, a, c.Points[0])
	assert.Same(t, c, c.Points[0].Parent)
	assert.Same(t, c, c.Points[1].Parent)
	assert.True(t, c.Points[0].Selected)
	assert.True(t, p.GeometryEqual(c))
	assert.Equal(t, p.Transform, c.Transform)

	c.Points[0].HR.X = 99
	assert.Equal(t, float32(5), a.HR.X)
	assert.False(t, p.GeometryEqual(c))

	p.CopyFrom(c)
	assert.Equal(t, float32(99), a.HR.X)
	assert.True(t, a.Selected)
}

func TestSmoothHandles(t *testing.T) {
	pt := NewAnchorPoint(10, 10)
	pt.Type = Symmetric
	pt.HL = vp(0, 10)
	pt.SetHR(vp(10, 20))
	tolEqualVec2(t, *pt.HL, math32.Vec2(10, 0))

	pt.Type = Mirror
	pt.SetHL(vp(10, 5))
	tolEqualVec2(t, *pt.HR, math32.Vec2(10, 15))

	pt.Type = Asymmetric
	pt.SetHL(vp(0, 0))
	tolEqualVec2(t, *pt.HR, math32.Vec2(10, 15))

	pt.ClearHandles()
	assert.False(t, pt.HasHandles())
}

func TestShoulders(t *testing.T) {
	a, b, c := NewAnchorPoint(0, 0), NewAnchorPoint(10, 0), NewAnchorPoint(10, 10)
	b.Type = Rounded
	b.Uniform = true
	New(a, b, c)
	b.SetShoulders(3, 0)
	assert.Equal(t, float32(3), b.CR)
	tolEqualVec2(t, *b.LeftShoulder(false), math32.Vec2(7, 0))
	tolEqualVec2(t, *b.RightShoulder(false), math32.Vec2(10, 3))
	tolEqualVec2(t, *b.RightShoulderLimit(), math32.Vec2(10, 10))

	b.Uniform = false
	b.SetShoulders(3, 0)
	assert.Nil(t, b.LeftShoulder(false))
	assert.NotNil(t, b.LeftShoulder(true))
	assert.Nil(t, a.LeftShoulderLimit())

	// overlapping shoulders share the segment
	c.CL = 30
	b.SetShoulders(3, 10)
	tolEqualVec2(t, *b.RightShoulder(false), math32.Vec2(10, 2.5))
}

func TestConnectorHandle(t *testing.T) {
	h := ConnectorHandle(math32.Vec2(10, 0), math32.Vec2(0, 0), math32.Vec2(15, 7))
	require.NotNil(t, h)
	tolEqualVec2(t, *h, math32.Vec2(15, 0))
	assert.Nil(t, ConnectorHandle(math32.Vec2(10, 0), math32.Vec2(0, 0), math32.Vec2(5, 7)))
	assert.Nil(t, ConnectorHandle(math32.Vec2(10, 0), math32.Vec2(10, 0), math32.Vec2(15, 7)))

	// stored connector handles are re-oriented along the segments
	a, b, c := NewAnchorPoint(0, 0), NewAnchorPoint(10, 0), NewAnchorPoint(10, 10)
	b.Type = Connector
	b.HR = vp(10, 4)
	p := New(a, b, c)
	tolEqualVec2(t, *b.HR, math32.Vec2(14, 0))
	a.SetPos(math32.Vec2(10, -10))
	p.Update(a)
	tolEqualVec2(t, *b.HR, math32.Vec2(10, 4))
}

func TestAutoHandles(t *testing.T) {
	a, b, c := NewAnchorPoint(0, 0), NewAnchorPoint(10, 10), NewAnchorPoint(20, 0)
	b.Type = Symmetric
	b.Auto = true
	New(a, b, c)
	d := math32.Sqrt(200) * HandleCoeff
	tolEqualVec2(t, *b.HL, math32.Vec2(10-d, 10))
	tolEqualVec2(t, *b.HR, math32.Vec2(10+d, 10))

	// corner point next to a smooth end point
	e, f := NewAnchorPoint(0, 0), NewAnchorPoint(10, 0)
	e.Type = Symmetric
	f.Auto = true
	New(e, f)
	tolEqualVec2(t, *f.HL, math32.Vec2(10-10*HandleCoeff, 0))
	assert.Nil(t, f.HR)
}

func TestTransform(t *testing.T) {
	a, b := NewAnchorPoint(0, 0), NewAnchorPoint(10, 0)
	b.HL = vp(5, 5)
	p := New(a, b)
	p.ApplyTransform(math32.Translate2D(1, 2).Mul(math32.Scale2D(2, 2)))
	tolEqualVec2(t, b.Pos(), math32.Vec2(21, 2))
	tolEqualVec2(t, *b.HL, math32.Vec2(11, 12))

	tp := a.Transformed(math32.Translate2D(5, 0))
	assert.Nil(t, tp.Parent)
	tolassert.Equal(t, 6, tp.X)
	tolassert.Equal(t, 1, a.X)
}

func TestBounds(t *testing.T) {
	p := New()
	assert.True(t, p.Bounds().IsEmpty())

	a, b := NewAnchorPoint(0, 0), NewAnchorPoint(10, 0)
	a.HR = vp(0, 10)
	b.HL = vp(10, 10)
	p.Append(a, b)
	// the curve peaks at 3/4 of the handle height
	tolEqualBox2(t, p.Bounds(), math32.B2(0, 0, 10, 7.5))
	tolEqualBox2(t, p.TransformedBounds(math32.Scale2D(2, 1)), math32.B2(0, 0, 20, 7.5))
}
