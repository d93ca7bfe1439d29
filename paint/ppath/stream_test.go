// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// mixedPath returns a closed path with one point of most types.
func mixedPath() *Path {
	a := NewAnchorPoint(0, 0)
	a.HR = vp(2, -3)
	b := NewAnchorPoint(10, 10)
	b.Type = Symmetric
	b.Auto = true
	c := NewAnchorPoint(20, 0)
	c.Type = Rounded
	c.CL, c.CR = 1.5, 4
	d := NewAnchorPoint(20, 20)
	d.Type = Connector
	d.HR = vp(20, 25)
	e := NewAnchorPoint(5, 25)
	e.Type = Mirror
	e.HL = vp(10, 30)
	e.HR = vp(0, 20)
	f := NewAnchorPoint(-5, 10)
	f.Auto = true
	p := New(a, b, c, d, e, f)
	p.Closed = true
	p.Update(f)
	return p
}

func TestSerializePoint(t *testing.T) {
	a := NewAnchorPoint(1, 2)
	assert.Equal(t, []any{float32(1), float32(2)}, a.Serialize())

	a.Type = Rounded
	a.CL, a.CR = 3, 0
	a.HL = vp(0, 2)
	assert.Equal(t, []any{"R", float32(1), float32(2), "h", float32(0), float32(2), "C", float32(3), float32(0)}, a.Serialize())

	a.Auto = true
	assert.Equal(t, []any{"R", true, float32(1), float32(2), "C", float32(3), float32(0)}, a.Serialize())

	var b AnchorPoint
	require.NoError(t, b.Deserialize([]any{"TS", 4, 5.5, "H", int64(6), 7.0, "x", 1, 2}))
	assert.Equal(t, Symmetric, b.Type)
	assert.Equal(t, math32.Vec2(4, 5.5), b.Pos())
	assert.Nil(t, b.HL)
	assert.Equal(t, math32.Vec2(6, 7), *b.HR)

	assert.Error(t, b.Deserialize([]any{"XX", 1, 2}))
	assert.Error(t, b.Deserialize([]any{"TA", 1}))
	assert.Error(t, b.Deserialize([]any{1, "y"}))
}

func TestSerializeRoundTrip(t *testing.T) {
	p := mixedPath()
	s := p.Serialize()
	require.Len(t, s, 6)

	q := New()
	q.Closed = true
	require.NoError(t, q.Deserialize(s))
	require.Equal(t, p.Len(), q.Len())
	for i, pt := range q.Points {
		assert.Same(t, q, pt.Parent)
		assert.True(t, pt.GeometryEqual(p.Points[i]), "point %d: %v != %v", i, pt, p.Points[i])
	}
}

func TestYAML(t *testing.T) {
	p := mixedPath()
	p.Transform = math32.Translate2D(3, 4)
	b, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "closed: true")
	assert.Contains(t, string(b), "- [TS, true, 10, 10]")

	q := &Path{}
	require.NoError(t, yaml.Unmarshal(b, q))
	assert.True(t, p.GeometryEqual(q))
	assert.Equal(t, p.Transform, q.Transform)
}

func TestSVGData(t *testing.T) {
	p := New(NewAnchorPoint(0, 0), NewAnchorPoint(10, 0), NewAnchorPoint(10, 10))
	assert.Equal(t, "M0 0L10 0L10 10", p.SVGData())
	p.Closed = true
	assert.Equal(t, "M0 0L10 0L10 10Z", p.SVGData())
	p.Points[2].HR = vp(5, 10)
	assert.Equal(t, "M0 0L10 0L10 10C5 10 0 0 0 0Z", p.SVGData())
	assert.Equal(t, "", New().SVGData())

	ps, err := ParseSVGPath(p.SVGData())
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.True(t, p.GeometryEqual(ps[0]))
}

func TestParseSVGPath(t *testing.T) {
	ps, err := ParseSVGPath("m 1 2 h 3 v 4 z M 0 0 Q 3 3 6 0 T 12 0")
	require.NoError(t, err)
	require.Len(t, ps, 2)

	a := ps[0]
	assert.True(t, a.Closed)
	require.Equal(t, 3, a.Len())
	assert.Equal(t, math32.Vec2(4, 2), a.Points[1].Pos())
	assert.Equal(t, math32.Vec2(4, 6), a.Points[2].Pos())

	b := ps[1]
	assert.False(t, b.Closed)
	require.Equal(t, 3, b.Len())
	tolEqualVec2(t, *b.Points[0].HR, math32.Vec2(2, 2))
	tolEqualVec2(t, *b.Points[1].HL, math32.Vec2(4, 2))
	tolEqualVec2(t, *b.Points[1].HR, math32.Vec2(8, -2))

	_, err = ParseSVGPath("M0 0A1 1 0 0 0 2 2")
	assert.Error(t, err)
	_, err = ParseSVGPath("0 0")
	assert.Error(t, err)
	_, err = ParseSVGPath("M0")
	assert.Error(t, err)
	ps, err = ParseSVGPath("  ")
	assert.NoError(t, err)
	assert.Nil(t, ps)
}
