// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guides

import (
	"cogentcore.org/canvas/math32"
)

// Grid snaps points to a regular grid.
type Grid struct {

	// Size is the grid cell size.
	Size math32.Vector2

	// Active turns snapping on.
	Active bool
}

// NewGrid returns a new active square grid of the given size.
func NewGrid(size float32) *Grid {
	return &Grid{Size: math32.Vec2(size, size), Active: true}
}

func (gr *Grid) IsActive() bool {
	return gr.Active && gr.Size.X > 0 && gr.Size.Y > 0
}

func (gr *Grid) Map(p math32.Vector2) *Snap {
	x := math32.Round(p.X/gr.Size.X) * gr.Size.X
	y := math32.Round(p.Y/gr.Size.Y) * gr.Size.Y
	return &Snap{
		X: &Axis{Value: x, Delta: math32.Abs(p.X - x)},
		Y: &Axis{Value: y, Delta: math32.Abs(p.Y - y)},
	}
}
