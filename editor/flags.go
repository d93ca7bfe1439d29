// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"strings"
)

// Flags are the state flags of an [ElementEditor].
type Flags int64

const (
	// Selected is set when the element is in the selection.
	Selected Flags = 1 << iota

	// Highlighted is set when the element is highlighted, for example
	// while the mouse is over it.
	Highlighted

	// Detail is set when the editor shows and hit tests the fine
	// structure of its element, such as the segments of a path.
	Detail

	// Outline is set while a part move or transform is pending, and
	// the element is drawn as an outline preview.
	Outline
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{Selected, "Selected"},
	{Highlighted, "Highlighted"},
	{Detail, "Detail"},
	{Outline, "Outline"},
}

// HasFlag returns whether all of the given flags are set.
func (f Flags) HasFlag(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f.HasFlag(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
