// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events that drive the editing tools:
// mouse, keyboard and modifier changes, along with [Listeners] for
// dispatching them.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/canvas/events/key"
)

// Event is the interface for all input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// Modifiers returns the modifier keys held when the event happened.
	Modifiers() key.Modifiers

	// HasAllModifiers tests whether all of the given modifiers are held.
	HasAllModifiers(mods ...key.Modifiers) bool

	// IsHandled returns whether the event has been handled.
	IsHandled() bool

	// SetHandled marks the event as handled, stopping further processing.
	SetHandled()
}

// Base is the base type for all events.
type Base struct {
	// Typ is the type of event.
	Typ Types

	// Flags records event state such as Handled.
	Flags EventFlags

	// GenTime is the time when the event was generated.
	GenTime time.Time

	// Mods are the modifier keys held at the time of the event.
	Mods key.Modifiers
}

// Init sets the type and time of the event.
func (ev *Base) Init(typ Types) {
	ev.Typ = typ
	if ev.GenTime.IsZero() {
		ev.GenTime = time.Now()
	}
}

func (ev *Base) Type() Types              { return ev.Typ }
func (ev *Base) Time() time.Time          { return ev.GenTime }
func (ev *Base) Modifiers() key.Modifiers { return ev.Mods }
func (ev *Base) IsHandled() bool          { return ev.Flags&Handled != 0 }
func (ev *Base) SetHandled()              { ev.Flags |= Handled }

func (ev *Base) HasAllModifiers(mods ...key.Modifiers) bool {
	for _, m := range mods {
		if !ev.Mods.HasFlag(m) {
			return false
		}
	}
	return true
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Mods: %v, Time: %v}", ev.Typ, ev.Mods.ModifiersString(), ev.GenTime.Format("04:05.000"))
}
