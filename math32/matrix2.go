// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"

	"cogentcore.org/canvas/base/errors"
	"github.com/tdewolff/parse/v2/strconv"
)

// Matrix2 is a 3x2 matrix for 2D affine transforms,
// in the same layout as the SVG transform matrix(a,b,c,d,e,f):
//
//	[XX XY X0]
//	[YX YY Y0]
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 2D matrix with given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a Matrix2 2D matrix with given rotation, specified in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Mul returns a*b: b is applied first, then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets a to a*b
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// MulCenter multiplies the Matrix2, first subtracting given translation center point
// from the translation components, and then adding it back in.
func (a Matrix2) MulCenter(b Matrix2, ctr Vector2) Matrix2 {
	return Translate2D(ctr.X, ctr.Y).Mul(a).Mul(b).Mul(Translate2D(-ctr.X, -ctr.Y))
}

// Det returns the determinant of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns inverse of matrix, for inverting transforms.
// A singular matrix returns the identity.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if IsZero(det) {
		return Identity2()
	}
	d := 1 / det
	return Matrix2{
		XX: a.YY * d,
		YX: -a.YX * d,
		XY: -a.XY * d,
		YY: a.XX * d,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * d,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * d,
	}
}

// IsIdentity returns true if the matrix is within [Epsilon] of the identity.
func (a Matrix2) IsIdentity() bool {
	return IsEqual(a.XX, 1) && IsZero(a.YX) && IsZero(a.XY) && IsEqual(a.YY, 1) && IsZero(a.X0) && IsZero(a.Y0)
}

// ExtractRot extracts the rotation component from a given matrix
func (a Matrix2) ExtractRot() float32 {
	return Atan2(-a.XY, a.XX)
}

// ExtractXYScale extracts the X and Y scale factors
func (a Matrix2) ExtractXYScale() (scx, scy float32) {
	rot := a.ExtractRot()
	tx := a.Mul(Rotate2D(-rot))
	scx, scy = tx.XX, tx.YY
	return
}

// Translation returns the translation component.
func (a Matrix2) Translation() Vector2 {
	return Vec2(a.X0, a.Y0)
}

// String returns the XML-based string representation of the transform
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if IsZero(a.YX) && IsZero(a.XY) {
		hasScale := !IsEqual(a.XX, 1) || !IsEqual(a.YY, 1)
		hasTrans := !IsZero(a.X0) || !IsZero(a.Y0)
		switch {
		case hasScale && hasTrans:
			return fmt.Sprintf("translate(%g,%g) scale(%g,%g)", a.X0, a.Y0, a.XX, a.YY)
		case hasScale:
			return fmt.Sprintf("scale(%g,%g)", a.XX, a.YY)
		default:
			return fmt.Sprintf("translate(%g,%g)", a.X0, a.Y0)
		}
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}

// SetString processes the standard SVG-style transform strings:
// a sequence of matrix, translate, scale and rotate functions
// (rotate in degrees). The empty string and "none" set the identity.
func (a *Matrix2) SetString(str string) error {
	*a = Identity2()
	str = strings.TrimSpace(str)
	if str == "" || str == "none" {
		return nil
	}
	b := []byte(str)
	for len(b) > 0 {
		op := strings.IndexByte(string(b), '(')
		cl := strings.IndexByte(string(b), ')')
		if op < 0 || cl < op {
			return fmt.Errorf("math32.Matrix2.SetString: malformed transform %q", str)
		}
		name := strings.TrimSpace(string(b[:op]))
		args, err := parseNumbers(b[op+1 : cl])
		if err != nil {
			return errors.Join(fmt.Errorf("math32.Matrix2.SetString: in %q", str), err)
		}
		var m Matrix2
		switch {
		case name == "matrix" && len(args) == 6:
			m = Matrix2{args[0], args[1], args[2], args[3], args[4], args[5]}
		case name == "translate" && len(args) == 1:
			m = Translate2D(args[0], 0)
		case name == "translate" && len(args) == 2:
			m = Translate2D(args[0], args[1])
		case name == "scale" && len(args) == 1:
			m = Scale2D(args[0], args[0])
		case name == "scale" && len(args) == 2:
			m = Scale2D(args[0], args[1])
		case name == "rotate" && len(args) == 1:
			m = Rotate2D(DegToRad(args[0]))
		default:
			*a = Identity2()
			return fmt.Errorf("math32.Matrix2.SetString: unsupported transform %s with %d args", name, len(args))
		}
		a.SetMul(m)
		b = []byte(strings.TrimLeft(string(b[cl+1:]), " ,\t\n"))
	}
	return nil
}

// parseNumbers parses a comma or space separated list of numbers.
func parseNumbers(b []byte) ([]float32, error) {
	var nums []float32
	for {
		for len(b) > 0 && (b[0] == ' ' || b[0] == ',' || b[0] == '\t' || b[0] == '\n') {
			b = b[1:]
		}
		if len(b) == 0 {
			return nums, nil
		}
		f, n := strconv.ParseFloat(b)
		if n == 0 {
			return nums, fmt.Errorf("invalid number at %q", string(b))
		}
		nums = append(nums, float32(f))
		b = b[n:]
	}
}
