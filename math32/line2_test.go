// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/canvas/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLine2(t *testing.T) {
	l := NewLine2(Vec2(0, 0), Vec2(10, 0))
	assert.Equal(t, float32(10), l.Length())
	assert.Equal(t, Vec2(10, 0), l.Delta())

	p, tp := l.ClosestPointToPoint(Vec2(4, 5))
	assert.Equal(t, Vec2(4, 0), p)
	tolassert.Equal(t, 0.4, tp)

	p, tp = l.ClosestPointToPoint(Vec2(-4, 5))
	assert.Equal(t, l.Start, p)
	assert.Equal(t, float32(0), tp)

	p, tp = l.ClosestPointToPoint(Vec2(40, 5))
	assert.Equal(t, l.End, p)
	assert.Equal(t, float32(1), tp)

	tolassert.Equal(t, 4, l.Project(Vec2(4, 5)))
	tolassert.Equal(t, -3, l.Project(Vec2(-3, 1)))
}

// isOn45 returns true if the vector from a to b is a multiple of 45 degrees.
func isOn45(a, b Vector2) bool {
	d := b.Sub(a).Abs()
	return IsZero(d.X) || IsZero(d.Y) || IsEqual(d.X, d.Y)
}

func TestConstrain45(t *testing.T) {
	prev := Vec2(10, 10)
	tests := []struct {
		pt   Vector2
		want Vector2
	}{
		{Vec2(30, 12), Vec2(30, 10)},
		{Vec2(30, 25), Vec2(30, 30)},
		{Vec2(30, -5), Vec2(30, -10)},
		{Vec2(12, 30), Vec2(10, 30)},
		{Vec2(25, 30), Vec2(30, 30)},
		{Vec2(-5, 30), Vec2(-10, 30)},
		{Vec2(10, 40), Vec2(10, 40)},
		{Vec2(20, 20), Vec2(20, 20)},
	}
	for _, tt := range tests {
		got := Constrain45(prev, tt.pt)
		assert.Equal(t, tt.want, got, tt.pt.String())
		assert.True(t, isOn45(prev, got), tt.pt.String())
	}
	for x := float32(-50); x <= 50; x += 7 {
		for y := float32(-50); y <= 50; y += 11 {
			assert.True(t, isOn45(prev, Constrain45(prev, Vec2(x, y))))
		}
	}
}
