// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guides

import (
	"testing"

	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	g := New(NewGrid(10))
	p := math32.Vec2(13, 27)
	assert.Equal(t, p, g.MapPoint(p))

	g.BeginMap()
	assert.True(t, g.IsMapping())
	assert.Equal(t, math32.Vec2(10, 30), g.MapPoint(p))
	g.BeginMap()
	assert.Equal(t, math32.Vec2(-10, 0), g.MapPoint(math32.Vec2(-12, 4)))
	g.FinishMap()
	assert.True(t, g.IsMapping())
	g.FinishMap()
	assert.False(t, g.IsMapping())
	assert.Panics(t, g.FinishMap)

	g.Guides[0].(*Grid).Active = false
	g.BeginMap()
	assert.Equal(t, p, g.MapPoint(p))
	g.FinishMap()
}

func TestPriority(t *testing.T) {
	var areas []math32.Box2
	ln := &Lines{X: []float32{12}, Distance: 3, Extent: math32.B2(0, 0, 100, 100)}
	g := New(ln, NewGrid(10))
	g.Invalidate = func(a math32.Box2) { areas = append(areas, a) }

	g.BeginMap()
	// x from the lines, y from the grid
	assert.Equal(t, math32.Vec2(12, 30), g.MapPoint(math32.Vec2(13, 27)))
	assert.Len(t, g.Visuals, 1)
	g.FinishMap()
	assert.Len(t, areas, 1)
	assert.Equal(t, math32.B2(11, -1, 13, 101), g.Area)

	g.BeginMap()
	assert.Len(t, areas, 2)
	assert.Empty(t, g.Visuals)
	assert.Equal(t, math32.Vec2(20, 30), g.MapPoint(math32.Vec2(18, 27)))
	g.FinishMap()
	assert.Len(t, areas, 2)
}

func TestMapRect(t *testing.T) {
	g := New(NewGrid(10))
	r := math32.B2(3, 4, 9, 12)
	assert.Equal(t, r, g.MapRect(r))

	g.BeginMap()
	defer g.FinishMap()
	// both axes snap the max corner, the first of the closest pivots
	assert.Equal(t, math32.B2(4, 2, 10, 10), g.MapRect(r))
}
