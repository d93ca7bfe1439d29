// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "fmt"

// Corners is the type of an [AnchorPoint]: either a kind of handle
// coupling (Asymmetric, Symmetric, Mirror, Connector) or a styled
// corner with shoulder lengths (Rounded and the others).
type Corners int32

const (
	// Asymmetric handles are independent of each other.
	Asymmetric Corners = iota

	// Symmetric handles are kept on one line through the anchor,
	// each with its own length.
	Symmetric

	// Mirror handles are kept on one line through the anchor,
	// with the same length.
	Mirror

	// Connector handles are derived from the adjacent segments:
	// only their length is free.
	Connector

	// Rounded is a rounded corner, with the roundness
	// set by the shoulder lengths.
	Rounded

	// InverseRounded is an inwards rounded corner.
	InverseRounded

	// Bevel is a straight cut corner.
	Bevel

	// Inset is a square inset corner.
	Inset

	// Fancy is a double-rounded corner.
	Fancy

	cornersN
)

// cornerCodes are the short codes used in the compact point stream.
var cornerCodes = [...]string{
	Asymmetric:     "TA",
	Symmetric:      "TS",
	Mirror:         "TM",
	Connector:      "TC",
	Rounded:        "R",
	InverseRounded: "U",
	Bevel:          "B",
	Inset:          "I",
	Fancy:          "F",
}

var cornerNames = [...]string{
	Asymmetric:     "Asymmetric",
	Symmetric:      "Symmetric",
	Mirror:         "Mirror",
	Connector:      "Connector",
	Rounded:        "Rounded",
	InverseRounded: "InverseRounded",
	Bevel:          "Bevel",
	Inset:          "Inset",
	Fancy:          "Fancy",
}

// CornersValues returns all corner types.
func CornersValues() []Corners {
	vals := make([]Corners, cornersN)
	for i := range vals {
		vals[i] = Corners(i)
	}
	return vals
}

func (c Corners) String() string {
	if c >= 0 && c < cornersN {
		return cornerNames[c]
	}
	return fmt.Sprintf("Corners(%d)", int32(c))
}

// SetString sets the corner type from its name or its stream code.
func (c *Corners) SetString(s string) error {
	for i := range cornerNames {
		if cornerNames[i] == s || cornerCodes[i] == s {
			*c = Corners(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type ppath.Corners", s)
}

// Code returns the short stream code of the corner type.
func (c Corners) Code() string {
	if c >= 0 && c < cornersN {
		return cornerCodes[c]
	}
	return ""
}

func (c Corners) MarshalText() ([]byte, error)    { return []byte(c.String()), nil }
func (c *Corners) UnmarshalText(text []byte) error { return c.SetString(string(text)) }

// IsCorner returns whether the type is a styled corner that uses
// shoulder lengths rather than handle coupling.
func (c Corners) IsCorner() bool {
	return c >= Rounded
}

// IsSmooth returns whether the two handles are kept on one line.
func (c Corners) IsSmooth() bool {
	return c == Symmetric || c == Mirror
}
