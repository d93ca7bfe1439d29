// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/canvas/events/key"
)

// Key is a low-level keyboard event: [KeyDown] or [KeyUp].
type Key struct {
	Base

	// Code is the physical key that was pressed or released.
	Code key.Codes
}

// NewKey returns a new key event of the given type.
func NewKey(typ Types, code key.Codes, mods key.Modifiers) *Key {
	ev := &Key{}
	ev.Init(typ)
	ev.Code = code
	ev.Mods = mods
	return ev
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v, Mods: %v, Time: %v}", ev.Type(), ev.Code, ev.Mods.ModifiersString(), ev.Time().Format("04:05.000"))
}

// Modifiers is sent as a [ModifiersChanged] event. Mods holds the
// modifiers held now, and Changed the ones that toggled.
type Modifiers struct {
	Base

	// Changed are the modifiers that were pressed or released.
	Changed key.Modifiers
}

// NewModifiers returns a new [ModifiersChanged] event going
// from the prev set of held modifiers to the cur set.
func NewModifiers(prev, cur key.Modifiers) *Modifiers {
	ev := &Modifiers{}
	ev.Init(ModifiersChanged)
	ev.Mods = cur
	ev.Changed = prev ^ cur
	return ev
}

// HasChanged returns whether the given modifier toggled.
func (ev *Modifiers) HasChanged(m key.Modifiers) bool {
	return ev.Changed&m != 0
}

func (ev *Modifiers) String() string {
	return fmt.Sprintf("%v{Changed: %v, Mods: %v}", ev.Type(), ev.Changed.ModifiersString(), ev.Mods.ModifiersString())
}
