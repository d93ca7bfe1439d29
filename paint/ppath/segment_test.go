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

func TestSegments(t *testing.T) {
	p := New(NewAnchorPoint(0, 0))
	assert.Equal(t, 0, p.NumSegments())
	p.Append(NewAnchorPoint(10, 0), NewAnchorPoint(10, 10))
	assert.Equal(t, 2, p.NumSegments())
	p.Closed = true
	assert.Equal(t, 3, p.NumSegments())

	s := p.Segment(2)
	assert.True(t, s.IsLine())
	assert.Equal(t, math32.Vec2(10, 10), s.P0)
	assert.Equal(t, math32.Vec2(0, 0), s.P3)
	tolEqualVec2(t, s.Eval(0.5), math32.Vec2(5, 5))
}

func TestSplit(t *testing.T) {
	s := Segment{math32.Vec2(0, 0), math32.Vec2(0, 10), math32.Vec2(10, 10), math32.Vec2(10, 0)}
	l, r := s.Split(0.5)
	tolEqualVec2(t, l.P3, s.Eval(0.5))
	tolEqualVec2(t, r.P0, s.Eval(0.5))
	tolEqualVec2(t, l.Eval(0.5), s.Eval(0.25))
	tolEqualVec2(t, r.Eval(0.5), s.Eval(0.75))
}

func TestNearest(t *testing.T) {
	s := Segment{math32.Vec2(0, 0), math32.Vec2(0, 10), math32.Vec2(10, 10), math32.Vec2(10, 0)}
	top := s.Eval(0.5)
	tt, d := s.Nearest(top.Add(math32.Vec2(0, 2)))
	tolassert.EqualTol(t, 0.5, tt, 1e-3)
	tolassert.EqualTol(t, 2, d, 1e-3)

	line := Segment{math32.Vec2(0, 0), math32.Vec2(0, 0), math32.Vec2(10, 0), math32.Vec2(10, 0)}
	tt, d = line.Nearest(math32.Vec2(3, -4))
	tolassert.Equal(t, 0.3, tt)
	tolassert.Equal(t, 4, d)
}

func TestSegmentAt(t *testing.T) {
	p := New(NewAnchorPoint(0, 0), NewAnchorPoint(10, 0), NewAnchorPoint(10, 10))
	hit, ok := p.SegmentAt(math32.Vec2(5, 1), math32.Identity2(), 2)
	require.True(t, ok)
	assert.Equal(t, 0, hit.Segment)
	tolassert.Equal(t, 0.5, hit.T)
	tolassert.Equal(t, 1, hit.Dist)

	hit, ok = p.SegmentAt(math32.Vec2(19, 10), math32.Scale2D(2, 2), 2)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Segment)

	_, ok = p.SegmentAt(math32.Vec2(5, 5), math32.Identity2(), 2)
	assert.False(t, ok)
	p.Closed = true
	hit, ok = p.SegmentAt(math32.Vec2(5, 5), math32.Identity2(), 2)
	require.True(t, ok)
	assert.Equal(t, 2, hit.Segment)
}

func TestInsertAt(t *testing.T) {
	a, b := NewAnchorPoint(0, 0), NewAnchorPoint(10, 0)
	a.HR = vp(0, 10)
	b.HL = vp(10, 10)
	p := New(a, b)
	orig := p.Segment(0)

	np := p.InsertAt(0, 0.5)
	require.Equal(t, 3, p.Len())
	assert.Same(t, np, p.Points[1])
	assert.Equal(t, Symmetric, np.Type)
	tolEqualVec2(t, np.Pos(), math32.Vec2(5, 7.5))
	tolEqualVec2(t, p.Segment(0).Eval(0.5), orig.Eval(0.25))
	tolEqualVec2(t, p.Segment(1).Eval(0.5), orig.Eval(0.75))
	tolEqualVec2(t, *a.HR, math32.Vec2(0, 5))

	// straight segments get a plain point
	q := New(NewAnchorPoint(0, 0), NewAnchorPoint(10, 0))
	lp := q.InsertAt(0, 0.25)
	assert.Equal(t, Asymmetric, lp.Type)
	assert.False(t, lp.HasHandles())
	tolEqualVec2(t, lp.Pos(), math32.Vec2(2.5, 0))
}

func TestInsertAtHit(t *testing.T) {
	p := New(NewAnchorPoint(10, 10), NewAnchorPoint(90, 10))
	hit, ok := p.SegmentAt(math32.Vec2(30, 11), math32.Identity2(), 2)
	require.True(t, ok)
	tolEqualVec2(t, p.Segment(0).Eval(hit.T), math32.Vec2(30, 10))

	np := p.InsertAt(hit.Segment, hit.T)
	tolEqualVec2(t, np.Pos(), math32.Vec2(30, 10))
	assert.True(t, p.Segment(0).IsLine())
	assert.True(t, p.Segment(1).IsLine())

	l, r := p.Segment(0).Split(0.5)
	tolEqualVec2(t, l.P3, math32.Vec2(20, 10))
	assert.True(t, l.IsLine())
	assert.True(t, r.IsLine())
}
