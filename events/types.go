// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the type of input event, and also the
// level at which one can select which events to listen to.
// The type includes both the source of the event and its
// "action" (MouseDown and MouseUp are separate types).
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down.
	// See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// MouseMove is sent when the mouse is moving, with or without a button down.
	MouseMove

	// MouseDrag is sent when the mouse is moving and there is a button down,
	// after DragStart. Start holds where the button was first pressed.
	MouseDrag

	// DragStart is sent once the mouse has moved far enough with a button
	// down to engage a drag sequence.
	DragStart

	// DragEnd ends a drag sequence. It is always followed by MouseUp.
	DragEnd

	// DoubleClick represents two clicks in a row in rapid succession.
	DoubleClick

	// KeyDown is when a key is pressed down.
	KeyDown

	// KeyUp is when a key is released.
	KeyUp

	// ModifiersChanged is sent when the set of held modifier keys changes.
	ModifiersChanged

	typesN
)

var typesNames = [...]string{
	UnknownType:      "UnknownType",
	MouseDown:        "MouseDown",
	MouseUp:          "MouseUp",
	MouseMove:        "MouseMove",
	MouseDrag:        "MouseDrag",
	DragStart:        "DragStart",
	DragEnd:          "DragEnd",
	DoubleClick:      "DoubleClick",
	KeyDown:          "KeyDown",
	KeyUp:            "KeyUp",
	ModifiersChanged: "ModifiersChanged",
}

// TypesValues returns all event types.
func TypesValues() []Types {
	vals := make([]Types, typesN)
	for i := range vals {
		vals[i] = Types(i)
	}
	return vals
}

// String returns the name of the event type.
func (i Types) String() string {
	if i >= 0 && i < typesN {
		return typesNames[i]
	}
	return fmt.Sprintf("Types(%d)", int32(i))
}

// SetString sets the event type from its name.
func (i *Types) SetString(s string) error {
	for t, nm := range typesNames {
		if nm == s {
			*i = Types(t)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type events.Types", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (i Types) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *Types) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// IsMouse returns whether the type is a mouse event type.
func (i Types) IsMouse() bool {
	return i >= MouseDown && i <= DoubleClick
}

// EventFlags encode boolean event properties
type EventFlags int64

const (
	// Handled indicates that the event has been handled
	Handled EventFlags = 1 << iota
)
