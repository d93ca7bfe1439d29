// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"fmt"

	"cogentcore.org/canvas/math32"
)

// TBoxParts are the parts of a [TransformBox].
type TBoxParts int32

const (
	TBoxNone TBoxParts = iota
	TBoxTopLeft
	TBoxTop
	TBoxTopRight
	TBoxRight
	TBoxBottomRight
	TBoxBottom
	TBoxBottomLeft
	TBoxLeft

	// TBoxInside moves the selection.
	TBoxInside

	// TBoxRotate rotates the selection around the center of the box.
	// It is the area just outside of the corners.
	TBoxRotate
)

var tboxPartsNames = [...]string{"None", "TopLeft", "Top", "TopRight", "Right", "BottomRight", "Bottom", "BottomLeft", "Left", "Inside", "Rotate"}

func (tp TBoxParts) String() string {
	if tp >= 0 && int(tp) < len(tboxPartsNames) {
		return tboxPartsNames[tp]
	}
	return fmt.Sprintf("TBoxParts(%d)", int32(tp))
}

// TransformBox is a box around the selection with handles to scale,
// rotate and move it.
type TransformBox struct {

	// Box is the box in document coordinates.
	Box math32.Box2

	// Transform is the pending transform of the box.
	Transform math32.Matrix2
}

// NewTransformBox returns a new transform box for the given box.
func NewTransformBox(bb math32.Box2) *TransformBox {
	return &TransformBox{Box: bb, Transform: math32.Identity2()}
}

// handle returns the position of the handle in document coordinates,
// before the pending transform.
func (tb *TransformBox) handle(tp TBoxParts) math32.Vector2 {
	mn, mx, c := tb.Box.Min, tb.Box.Max, tb.Box.Center()
	switch tp {
	case TBoxTopLeft:
		return mn
	case TBoxTop:
		return math32.Vec2(c.X, mn.Y)
	case TBoxTopRight:
		return math32.Vec2(mx.X, mn.Y)
	case TBoxRight:
		return math32.Vec2(mx.X, c.Y)
	case TBoxBottomRight:
		return mx
	case TBoxBottom:
		return math32.Vec2(c.X, mx.Y)
	case TBoxBottomLeft:
		return math32.Vec2(mn.X, mx.Y)
	case TBoxLeft:
		return math32.Vec2(mn.X, c.Y)
	}
	return c
}

// opposite returns the handle opposite of the given one.
func (tp TBoxParts) opposite() TBoxParts {
	if tp < TBoxTopLeft || tp > TBoxLeft {
		return tp
	}
	return TBoxTopLeft + (tp-TBoxTopLeft+4)%8
}

// BBox returns the view area covered by the box and its handles.
func (tb *TransformBox) BBox(xf math32.Matrix2) math32.Box2 {
	vx := xf.Mul(tb.Transform)
	bb := math32.B2Empty()
	for tp := TBoxTopLeft; tp <= TBoxLeft; tp++ {
		bb.ExpandByBox(annotationBBox(vx, tb.handle(tp), false))
	}
	bb.ExpandByScalar(AnnotationRegular)
	return bb
}

// PartAt returns the part at the view location.
func (tb *TransformBox) PartAt(loc math32.Vector2, xf math32.Matrix2, tolerance float32) TBoxParts {
	vx := xf.Mul(tb.Transform)
	for tp := TBoxTopLeft; tp <= TBoxLeft; tp++ {
		bb := annotationBBox(vx, tb.handle(tp), false)
		bb.ExpandByScalar(tolerance)
		if bb.ContainsPoint(loc) {
			return tp
		}
	}
	dloc := vx.Inverse().MulVector2AsPoint(loc)
	if tb.Box.ContainsPoint(dloc) {
		return TBoxInside
	}
	rd := 2*float32(AnnotationRegular) + tolerance
	for _, tp := range []TBoxParts{TBoxTopLeft, TBoxTopRight, TBoxBottomRight, TBoxBottomLeft} {
		if vx.MulVector2AsPoint(tb.handle(tp)).DistanceTo(loc) <= rd {
			return TBoxRotate
		}
	}
	return TBoxNone
}

// TransformFor returns the transform for a drag of the part from
// start to pos, in document coordinates. Scaling is relative to the
// opposite handle, or to the center with option. shift keeps the
// proportions when scaling, and constrains moves and rotations
// to multiples of 45 degrees.
func (tb *TransformBox) TransformFor(tp TBoxParts, start, pos math32.Vector2, option, shift bool) math32.Matrix2 {
	c := tb.Box.Center()
	switch tp {
	case TBoxNone:
		return math32.Identity2()
	case TBoxInside:
		if shift {
			pos = math32.Constrain45(start, pos)
		}
		d := pos.Sub(start)
		return math32.Translate2D(d.X, d.Y)
	case TBoxRotate:
		a := pos.Sub(c).Angle() - start.Sub(c).Angle()
		if shift {
			step := float32(math32.Pi / 4)
			a = math32.Round(a/step) * step
		}
		return math32.Rotate2D(a).MulCenter(math32.Identity2(), c)
	}
	h := tb.handle(tp)
	o := tb.handle(tp.opposite())
	if option {
		o = c
	}
	scale := func(hv, ov, pv float32) float32 {
		if math32.IsZero(hv - ov) {
			return 1
		}
		return (pv - ov) / (hv - ov)
	}
	sx, sy := float32(1), float32(1)
	if tp != TBoxTop && tp != TBoxBottom {
		sx = scale(h.X, o.X, pos.X)
	}
	if tp != TBoxLeft && tp != TBoxRight {
		sy = scale(h.Y, o.Y, pos.Y)
	}
	if shift {
		switch tp {
		case TBoxTop, TBoxBottom:
			sx = math32.Abs(sy)
		case TBoxLeft, TBoxRight:
			sy = math32.Abs(sx)
		default:
			s := max(math32.Abs(sx), math32.Abs(sy))
			sx, sy = math32.Sign(sx)*s, math32.Sign(sy)*s
		}
	}
	return math32.Translate2D(o.X, o.Y).Mul(math32.Scale2D(sx, sy)).Mul(math32.Translate2D(-o.X, -o.Y))
}
