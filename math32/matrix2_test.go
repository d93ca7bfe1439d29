// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/canvas/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

const standardTol = float32(1.0e-6)

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vxy, Identity2().MulVector2AsPoint(vxy))
	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, v0, Translate2D(1, 1).MulVector2AsVector(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy))
	tolAssertEqualVector(t, standardTol, vxy.Normal(), Rotate2D(DegToRad(45)).MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(-90)).Inverse().MulVector2AsPoint(vx))

	tolassert.EqualTol(t, DegToRad(45), Rotate2D(DegToRad(45)).ExtractRot(), standardTol)
	tolassert.EqualTol(t, DegToRad(-90), Rotate2D(DegToRad(-90)).ExtractRot(), standardTol)

	// multiplication order is *reverse* of "logical" order:
	tolAssertEqualVector(t, standardTol, Vec2(1, 3), Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2)).MulVector2AsPoint(vx))

	m := Translate2D(5, -3).Mul(Scale2D(2, 4))
	p := Vec2(7, 9)
	tolAssertEqualVector(t, 1e-5, p, m.Inverse().MulVector2AsPoint(m.MulVector2AsPoint(p)))
	assert.True(t, m.Mul(m.Inverse()).IsIdentity())
	assert.Equal(t, Identity2(), Scale2D(0, 0).Inverse())
}

func TestMatrix2SetString(t *testing.T) {
	tests := []struct {
		str     string
		wantErr bool
		want    Matrix2
	}{
		{"none", false, Identity2()},
		{"", false, Identity2()},
		{"matrix(1, 2, 3, 4, 5, 6)", false, Matrix2{1, 2, 3, 4, 5, 6}},
		{"translate(1, 2)", false, Matrix2{XX: 1, YX: 0, XY: 0, YY: 1, X0: 1, Y0: 2}},
		{"translate(1,2) scale(2)", false, Matrix2{XX: 2, YY: 2, X0: 1, Y0: 2}},
		{"invalid(1, 2)", true, Identity2()},
		{"scale(1, 2, 3)", true, Identity2()},
	}
	for _, tt := range tests {
		a := &Matrix2{}
		err := a.SetString(tt.str)
		if tt.wantErr {
			assert.Error(t, err, tt.str)
		} else {
			assert.NoError(t, err, tt.str)
		}
		assert.Equal(t, tt.want, *a, tt.str)
	}
}

func TestMatrix2String(t *testing.T) {
	tests := []struct {
		matrix Matrix2
		want   string
	}{
		{Identity2(), "none"},
		{Matrix2{XX: 1, YX: 2, XY: 3, YY: 4, X0: 5, Y0: 6}, "matrix(1,2,3,4,5,6)"},
		{Matrix2{XX: 2, YY: 2}, "scale(2,2)"},
		{Matrix2{XX: 1, YY: 1, X0: 1, Y0: 2}, "translate(1,2)"},
		{Matrix2{XX: 2, YY: 2, X0: 1, Y0: 2}, "translate(1,2) scale(2,2)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.matrix.String())
		var back Matrix2
		assert.NoError(t, back.SetString(tt.matrix.String()))
		assert.Equal(t, tt.matrix, back)
	}
}

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec2(1, 2))
	b.ExpandByPoint(Vec2(-3, 5))
	assert.Equal(t, B2(-3, 2, 1, 5), b)
	assert.True(t, b.ContainsPoint(Vec2(0, 3)))
	assert.False(t, b.ContainsPoint(Vec2(2, 3)))
	b.ExpandByScalar(1)
	assert.Equal(t, B2(-4, 1, 2, 6), b)
	assert.Equal(t, Vec2(6, 5), b.Size())

	rb := B2(0, 0, 2, 1).MulMatrix2(Rotate2D(DegToRad(90)))
	tolAssertEqualVector(t, 1e-6, Vec2(-1, 0), rb.Min)
	tolAssertEqualVector(t, 1e-6, Vec2(0, 2), rb.Max)
	ub := B2(0, 0, 1, 1)
	ub.ExpandByBox(B2(2, 2, 3, 3))
	ub.ExpandByBox(B2Empty())
	assert.Equal(t, B2(0, 0, 3, 3), ub)
	assert.Equal(t, Vec2(1.5, 1.5), ub.Center())
	assert.True(t, B2(0, 0, 1, 1).IntersectsBox(B2(1, 1, 2, 2)))
	assert.False(t, B2(0, 0, 1, 1).IntersectsBox(B2(1.5, 1, 2, 2)))
}
