// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"fmt"
	"strings"
)

// Modifiers are used as bitflags representing a set of modifier keys.
// Alt is the Option key on macOS.
type Modifiers int64

const (
	// Shift is the shift key.
	Shift Modifiers = 1 << iota

	// Control is the control key.
	Control

	// Alt is the alt / option key.
	Alt

	// Meta is the command / windows key.
	Meta
)

var modifierNames = []struct {
	mod  Modifiers
	name string
}{
	{Shift, "Shift"},
	{Control, "Control"},
	{Alt, "Alt"},
	{Meta, "Meta"},
}

// HasFlag returns whether all of the given modifiers are set.
func (m Modifiers) HasFlag(f Modifiers) bool {
	return m&f == f
}

// SetFlag sets or clears the given modifiers.
func (m *Modifiers) SetFlag(on bool, f Modifiers) {
	if on {
		*m |= f
	} else {
		*m &^= f
	}
}

// HasAnyModifier tests whether any of the given modifiers are set.
func HasAnyModifier(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags&m != 0 {
			return true
		}
	}
	return false
}

// ModifiersString returns the string representation of the modifiers,
// joined with '+' (for example "Shift+Alt").
func (m Modifiers) ModifiersString() string {
	var parts []string
	for _, mn := range modifierNames {
		if m&mn.mod != 0 {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}

// String returns [Modifiers.ModifiersString].
func (m Modifiers) String() string { return m.ModifiersString() }

// SetString sets the modifiers from a '+' or '|' separated list of names.
func (m *Modifiers) SetString(s string) error {
	*m = 0
	if s == "" {
		return nil
	}
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == '|' }) {
		f = strings.TrimSpace(f)
		found := false
		for _, mn := range modifierNames {
			if strings.EqualFold(mn.name, f) {
				*m |= mn.mod
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%q is not a valid value for type key.Modifiers", f)
		}
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (m Modifiers) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Modifiers) UnmarshalText(text []byte) error { return m.SetString(string(text)) }
