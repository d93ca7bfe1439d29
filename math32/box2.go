// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Box2 is an axis aligned box, such as the bounding box of an element
// or an area to repaint. A box with Max below Min on an axis is empty.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns the box from (x0, y0) to (x1, y1).
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns an empty box, which any point expands to
// the box of that point.
func B2Empty() Box2 {
	return Box2{Min: Vec2(Infinity, Infinity), Max: Vec2(-Infinity, -Infinity)}
}

// B2FromPoints returns the smallest box containing the points,
// which is empty for no points.
func B2FromPoints(points ...Vector2) Box2 {
	b := B2Empty()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
	return b
}

// IsEmpty returns whether the box is empty.
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// ToRect returns the smallest integer rectangle containing the box,
// or the zero rectangle for an empty box.
func (b Box2) ToRect() image.Rectangle {
	if b.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}

// ToFixed returns the box as a 26.6 fixed point rectangle.
func (b Box2) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.Min.ToFixed(), Max: b.Max.ToFixed()}
}

// ExpandByPoint grows the box to contain p.
func (b *Box2) ExpandByPoint(p Vector2) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandByScalar grows a non-empty box by d on every side,
// for hit testing with a tolerance.
func (b *Box2) ExpandByScalar(d float32) {
	if b.IsEmpty() {
		return
	}
	b.Min.SetSubScalar(d)
	b.Max.SetAddScalar(d)
}

// ExpandByBox grows the box to contain o, unless o is empty.
func (b *Box2) ExpandByBox(o Box2) {
	if o.IsEmpty() {
		return
	}
	b.ExpandByPoint(o.Min)
	b.ExpandByPoint(o.Max)
}

// Size returns the width and height of the box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center of the box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsPoint returns whether p is inside the box or on its border.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// IntersectsBox returns whether the boxes overlap or touch.
func (b Box2) IntersectsBox(o Box2) bool {
	return o.Max.X >= b.Min.X && o.Min.X <= b.Max.X && o.Max.Y >= b.Min.Y && o.Min.Y <= b.Max.Y
}

// MulMatrix2 returns the bounding box of the corners of the box
// transformed by m. An empty box stays empty.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	if b.IsEmpty() {
		return b
	}
	return B2FromPoints(
		m.MulVector2AsPoint(b.Min),
		m.MulVector2AsPoint(Vec2(b.Max.X, b.Min.Y)),
		m.MulVector2AsPoint(b.Max),
		m.MulVector2AsPoint(Vec2(b.Min.X, b.Max.Y)),
	)
}
