// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import (
	"github.com/pmezard/go-difflib/difflib"
)

// PatchRec is one step in a [Patch]: the diff op code, and for
// inserts and replacements the new lines.
type PatchRec struct {
	Op     difflib.OpCode
	Blines []string
}

// Patch is the set of edits that turns one state into the next.
// It stores only the changed lines of the new state.
type Patch []*PatchRec

// DiffLines computes the diff op codes between the lines of two states.
func DiffLines(astr, bstr []string) []difflib.OpCode {
	m := difflib.NewMatcherWithJunk(astr, bstr, false, nil) // no junk
	return m.GetOpCodes()
}

// ToPatch converts op codes computed against bstr into a [Patch].
func ToPatch(ops []difflib.OpCode, bstr []string) Patch {
	pt := make(Patch, len(ops))
	for i, op := range ops {
		pr := &PatchRec{Op: op}
		switch op.Tag {
		case 'r', 'i':
			pr.Blines = make([]string, op.J2-op.J1)
			copy(pr.Blines, bstr[op.J1:op.J2])
		}
		pt[i] = pr
	}
	return pt
}

// NumChanges returns the number of non-equal ops in the patch.
func (pt Patch) NumChanges() int {
	n := 0
	for _, pr := range pt {
		if pr.Op.Tag != 'e' {
			n++
		}
	}
	return n
}

// Apply applies the patch to the given lines of the previous state,
// returning the lines of the new state.
func (pt Patch) Apply(astr []string) []string {
	var bstr []string
	for _, pr := range pt {
		switch pr.Op.Tag {
		case 'e':
			bstr = append(bstr, astr[pr.Op.I1:pr.Op.I2]...)
		case 'r', 'i':
			bstr = append(bstr, pr.Blines...)
		}
	}
	return bstr
}
