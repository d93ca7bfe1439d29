// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/canvas/events/key"
	"cogentcore.org/canvas/math32"
)

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

var buttonsNames = [...]string{"NoButton", "Left", "Middle", "Right"}

func (b Buttons) String() string {
	if b >= 0 && int(b) < len(buttonsNames) {
		return buttonsNames[b]
	}
	return fmt.Sprintf("Buttons(%d)", int32(b))
}

// SetString sets the button from its name.
func (b *Buttons) SetString(s string) error {
	for i, nm := range buttonsNames {
		if nm == s {
			*b = Buttons(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type events.Buttons", s)
}

func (b Buttons) MarshalText() ([]byte, error)    { return []byte(b.String()), nil }
func (b *Buttons) UnmarshalText(text []byte) error { return b.SetString(string(text)) }

// Mouse is the event for all mouse events. Positions are in
// view (client) coordinates.
type Mouse struct {
	Base

	// Button is the button involved in the event.
	Button Buttons

	// Where is the position of the event.
	Where math32.Vector2

	// Start is where the button was pressed, for drag events.
	Start math32.Vector2
}

// NewMouse returns a new mouse event of the given type.
func NewMouse(typ Types, but Buttons, where math32.Vector2, mods key.Modifiers) *Mouse {
	ev := &Mouse{}
	ev.Init(typ)
	ev.Button = but
	ev.Where = where
	ev.Mods = mods
	return ev
}

// NewMouseDrag returns a new [MouseDrag] event, with the start position
// of the drag sequence.
func NewMouseDrag(but Buttons, where, start math32.Vector2, mods key.Modifiers) *Mouse {
	ev := NewMouse(MouseDrag, but, where, mods)
	ev.Start = start
	return ev
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v, Time: %v}", ev.Type(), ev.Button, ev.Where, ev.Mods.ModifiersString(), ev.Time().Format("04:05.000"))
}

// Pos returns the position of the event.
func (ev *Mouse) Pos() math32.Vector2 { return ev.Where }

// Clone returns a copy of the event, with the Handled flag cleared.
// It is used to replay a past event after a modifier change.
func (ev *Mouse) Clone(typ Types, mods key.Modifiers) *Mouse {
	ne := *ev
	ne.Typ = typ
	ne.Flags = 0
	ne.Mods = mods
	return &ne
}
