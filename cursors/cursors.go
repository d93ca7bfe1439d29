// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors provides the standard set of cursors shown
// by the editing tools, along with their hotspots.
package cursors

import (
	"fmt"
	"image"
)

// Cursor is a cursor shape. The set is closed, so an unknown
// cursor is impossible to request.
type Cursor int32

const (
	// None indicates no preference for a cursor; typically the default one.
	None Cursor = iota

	// Select is the standard selection arrow.
	Select

	// SelectInverse is the selection arrow used over selected items.
	SelectInverse

	// SelectDot is the selection arrow over a part of a selected element.
	SelectDot

	// SelectCross is the selection arrow shown while moving.
	SelectCross

	// SelectResizeVert is shown over vertical resize handles.
	SelectResizeVert

	// SelectResizeHoriz is shown over horizontal resize handles.
	SelectResizeHoriz

	// SelectResizeDiag is shown over corner resize handles.
	SelectResizeDiag

	// Pen is the pen, ready to extend the selected path.
	Pen

	// PenStart is the pen, ready to start a new path.
	PenStart

	// PenEnd is the pen over the endpoint that closes the path.
	PenEnd

	// PenPlus is the pen over a segment, where a point can be inserted.
	PenPlus

	// PenMinus is the pen over a point that a click would remove.
	PenMinus

	// PenModify is the pen over a point or handle that can be modified.
	PenModify

	// PenDrag is the pen while dragging out handles.
	PenDrag

	cursorN
)

var cursorNames = [...]string{
	None:              "none",
	Select:            "select",
	SelectInverse:     "select-inverse",
	SelectDot:         "select-dot",
	SelectCross:       "select-cross",
	SelectResizeVert:  "select-resize-vert",
	SelectResizeHoriz: "select-resize-horiz",
	SelectResizeDiag:  "select-resize-diag",
	Pen:               "pen",
	PenStart:          "pen-start",
	PenEnd:            "pen-end",
	PenPlus:           "pen-plus",
	PenMinus:          "pen-minus",
	PenModify:         "pen-modify",
	PenDrag:           "pen-drag",
}

// Hotspots contains the cursor hotspot points for cursors whose
// hotspots are not the default of (0, 0), in a 32x32 cursor image.
var Hotspots = map[Cursor]image.Point{
	SelectCross:       {16, 16},
	SelectResizeVert:  {16, 16},
	SelectResizeHoriz: {16, 16},
	SelectResizeDiag:  {16, 16},
	Pen:               {2, 2},
	PenStart:          {2, 2},
	PenEnd:            {2, 2},
	PenPlus:           {2, 2},
	PenMinus:          {2, 2},
	PenModify:         {2, 2},
	PenDrag:           {2, 2},
}

// CursorValues returns all cursors.
func CursorValues() []Cursor {
	vals := make([]Cursor, cursorN)
	for i := range vals {
		vals[i] = Cursor(i)
	}
	return vals
}

// String returns the file name of the cursor, without extension.
func (c Cursor) String() string {
	if c >= 0 && c < cursorN {
		return cursorNames[c]
	}
	return fmt.Sprintf("Cursor(%d)", int32(c))
}

// SetString sets the cursor from its name.
func (c *Cursor) SetString(s string) error {
	for i, nm := range cursorNames {
		if nm == s {
			*c = Cursor(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type cursors.Cursor", s)
}

// Hotspot returns the hotspot of the cursor.
func (c Cursor) Hotspot() image.Point {
	return Hotspots[c]
}

// IsPen returns whether the cursor is one of the pen cursors.
func (c Cursor) IsPen() bool {
	return c >= Pen && c <= PenDrag
}
