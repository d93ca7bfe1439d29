// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key contains the key codes and modifier flags
// used by keyboard events.
package key

import (
	"fmt"
)

// Codes are the physical key codes that the editing tools react to.
// The set is closed: [Codes.SetString] returns an error for anything else.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeTab
	CodeEscape
	CodeReturnEnter
	CodeBackspace
	CodeDelete
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodeLeftShift
	CodeRightShift
	CodeLeftAlt
	CodeRightAlt
	CodeLeftControl
	CodeRightControl
	CodeLeftMeta
	CodeRightMeta
	CodeSpacebar
	codesN
)

var codeNames = [...]string{
	CodeUnknown:      "Unknown",
	CodeTab:          "Tab",
	CodeEscape:       "Escape",
	CodeReturnEnter:  "ReturnEnter",
	CodeBackspace:    "Backspace",
	CodeDelete:       "Delete",
	CodeLeftArrow:    "LeftArrow",
	CodeRightArrow:   "RightArrow",
	CodeUpArrow:      "UpArrow",
	CodeDownArrow:    "DownArrow",
	CodeLeftShift:    "LeftShift",
	CodeRightShift:   "RightShift",
	CodeLeftAlt:      "LeftAlt",
	CodeRightAlt:     "RightAlt",
	CodeLeftControl:  "LeftControl",
	CodeRightControl: "RightControl",
	CodeLeftMeta:     "LeftMeta",
	CodeRightMeta:    "RightMeta",
	CodeSpacebar:     "Spacebar",
}

// CodesValues returns all known key codes.
func CodesValues() []Codes {
	vals := make([]Codes, codesN)
	for i := range vals {
		vals[i] = Codes(i)
	}
	return vals
}

// String returns the name of the key code.
func (i Codes) String() string {
	if i >= 0 && i < codesN {
		return codeNames[i]
	}
	return fmt.Sprintf("Codes(%d)", int32(i))
}

// SetString sets the key code from its name.
func (i *Codes) SetString(s string) error {
	for c, nm := range codeNames {
		if nm == s {
			*i = Codes(c)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type key.Codes", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (i Codes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (i *Codes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// IsArrow returns whether the code is one of the four arrow keys.
func (i Codes) IsArrow() bool {
	return i >= CodeLeftArrow && i <= CodeDownArrow
}

// Modifier returns the modifier that the key code itself represents,
// or zero and false for non-modifier keys.
func (i Codes) Modifier() (Modifiers, bool) {
	switch i {
	case CodeLeftShift, CodeRightShift:
		return Shift, true
	case CodeLeftAlt, CodeRightAlt:
		return Alt, true
	case CodeLeftControl, CodeRightControl:
		return Control, true
	case CodeLeftMeta, CodeRightMeta:
		return Meta, true
	}
	return 0, false
}
