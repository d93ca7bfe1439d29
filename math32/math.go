// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 vectors, boxes and affine
// matrices of the document geometry, with scalar functions
// from github.com/chewxy/math32.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Pi is the float32 value of π.
const Pi = math.Pi

// Infinity is positive infinity, the bound of empty boxes.
var Infinity = float32(math.Inf(1))

// Epsilon is the tolerance of [IsZero] and [IsEqual],
// used by the path geometry.
const Epsilon = float32(1e-5)

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 { return deg * (Pi / 180) }

// Scalar functions, as in package math.

func Abs(x float32) float32      { return math32.Abs(x) }
func Sqrt(x float32) float32     { return math32.Sqrt(x) }
func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }
func Sin(x float32) float32      { return math32.Sin(x) }
func Cos(x float32) float32      { return math32.Cos(x) }
func Round(x float32) float32    { return math32.Round(x) }
func Floor(x float32) float32    { return math32.Floor(x) }
func Ceil(x float32) float32     { return math32.Ceil(x) }

// Sign is -1 for negative x and 1 otherwise, so that it can
// be used as a factor for mirroring.
func Sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	return max(lo, min(x, hi))
}

// IsZero returns whether x is within [Epsilon] of zero.
func IsZero(x float32) bool { return Abs(x) < Epsilon }

// IsEqual returns whether a and b are within [Epsilon].
func IsEqual(a, b float32) bool { return Abs(a-b) < Epsilon }
