// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guides provides snapping of points and rectangles to
// guides such as a grid, inside paired BeginMap / FinishMap scopes.
package guides

import (
	"cogentcore.org/canvas/math32"
)

// Axis is a snap result along one axis.
type Axis struct {
	// Value is the snapped coordinate.
	Value float32

	// Delta is the absolute distance from the original coordinate.
	Delta float32

	// Visual is an optional line shown while the snap is in effect.
	Visual *math32.Line2
}

// Snap is the result of a [Guide] mapping: either axis may be nil
// when the guide does not snap along it.
type Snap struct {
	X, Y *Axis
}

// Guide is a source of snapping.
type Guide interface {
	// Map returns the snap of the given point, or nil.
	Map(p math32.Vector2) *Snap

	// IsActive returns whether the guide currently maps.
	IsActive() bool
}

// Guides is an ordered list of [Guide]s; earlier guides have priority.
// Mapping is only done between BeginMap and FinishMap, which may nest.
type Guides struct {

	// Guides are the guides in priority order.
	Guides []Guide

	// Visuals are the snap lines collected in the current map scope.
	Visuals []math32.Line2

	// Area is the region covered by the visuals of the last finished scope.
	Area math32.Box2

	// Invalidate is called with regions that need repainting, if set.
	Invalidate func(area math32.Box2)

	counter int
}

// New returns new guides with the given guides in priority order.
func New(gs ...Guide) *Guides {
	return &Guides{Guides: gs, Area: math32.B2Empty()}
}

// Add adds a guide with the lowest priority.
func (g *Guides) Add(gd Guide) {
	g.Guides = append(g.Guides, gd)
}

// IsMapping returns whether a map scope is open.
func (g *Guides) IsMapping() bool {
	return g.counter > 0
}

// BeginMap opens a map scope. The outermost scope clears the visuals
// of the previous one.
func (g *Guides) BeginMap() {
	if g.counter == 0 {
		g.Visuals = nil
		if !g.Area.IsEmpty() {
			g.invalidate(g.Area)
		}
		g.Area = math32.B2Empty()
	}
	g.counter++
}

// FinishMap closes a map scope, which must have been opened with
// [Guides.BeginMap]. Closing the outermost scope invalidates the
// area of the collected visuals.
func (g *Guides) FinishMap() {
	if g.counter <= 0 {
		panic("guides.Guides.FinishMap: no map scope open")
	}
	g.counter--
	if g.counter > 0 || len(g.Visuals) == 0 {
		return
	}
	bb := math32.B2Empty()
	for _, v := range g.Visuals {
		bb.ExpandByPoint(v.Start)
		bb.ExpandByPoint(v.End)
	}
	bb.ExpandByScalar(1)
	g.Area = bb
	g.invalidate(bb)
}

func (g *Guides) invalidate(area math32.Box2) {
	if g.Invalidate != nil {
		g.Invalidate(area)
	}
}

// MapPoint returns the point snapped to the guides. Each axis takes
// the value of the first guide that snaps along it. Outside of a map
// scope the point is returned unchanged.
func (g *Guides) MapPoint(p math32.Vector2) math32.Vector2 {
	if g.counter == 0 {
		return p
	}
	var rx, ry *Axis
	for _, gd := range g.Guides {
		if rx != nil && ry != nil {
			break
		}
		if !gd.IsActive() {
			continue
		}
		s := gd.Map(p)
		if s == nil {
			continue
		}
		if rx == nil && s.X != nil {
			rx = s.X
			g.addVisual(rx.Visual)
		}
		if ry == nil && s.Y != nil {
			ry = s.Y
			g.addVisual(ry.Visual)
		}
	}
	if rx != nil {
		p.X = rx.Value
	}
	if ry != nil {
		p.Y = ry.Value
	}
	return p
}

// MapRect returns the rectangle translated so that one of its top-left,
// bottom-right or center points snaps to the guides. Per axis, the pivot
// with the smallest snap distance of the first snapping guide is used.
func (g *Guides) MapRect(r math32.Box2) math32.Box2 {
	if g.counter == 0 || r.IsEmpty() {
		return r
	}
	pivots := []math32.Vector2{r.Min, r.Max, r.Center()}
	var dx, dy *float32
	var bx, by float32
	for _, gd := range g.Guides {
		if dx != nil && dy != nil {
			break
		}
		if !gd.IsActive() {
			continue
		}
		gx, gy := dx == nil, dy == nil
		for _, pv := range pivots {
			s := gd.Map(pv)
			if s == nil {
				continue
			}
			if gx && s.X != nil && (dx == nil || s.X.Delta < bx) {
				d := s.X.Value - pv.X
				dx, bx = &d, s.X.Delta
			}
			if gy && s.Y != nil && (dy == nil || s.Y.Delta < by) {
				d := s.Y.Value - pv.Y
				dy, by = &d, s.Y.Delta
			}
		}
	}
	var delta math32.Vector2
	if dx != nil {
		delta.X = *dx
	}
	if dy != nil {
		delta.Y = *dy
	}
	return math32.Box2{Min: r.Min.Add(delta), Max: r.Max.Add(delta)}
}

func (g *Guides) addVisual(l *math32.Line2) {
	if l != nil {
		g.Visuals = append(g.Visuals, *l)
	}
}
