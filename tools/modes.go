// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tools

import "fmt"

// Modes are the modes of the path tools.
type Modes int32

const (
	// ModeAppend adds points after the last point of the path.
	ModeAppend Modes = iota

	// ModePrepend adds points before the first point of the path.
	ModePrepend

	// ModeEdit modifies, inserts and removes points of the path.
	ModeEdit
)

var modesNames = [...]string{"Append", "Prepend", "Edit"}

func (m Modes) String() string {
	if m >= 0 && int(m) < len(modesNames) {
		return modesNames[m]
	}
	return fmt.Sprintf("Modes(%d)", int32(m))
}

// Transactions are the kinds of undoable changes of the path tools.
// The kind of an open transaction can be changed before it is
// committed, and the last one names the undo step.
type Transactions int32

const (
	NoTransaction Transactions = iota
	InsertPoint
	AppendPoint
	MovePoint
	DeletePoint
	ModifyPointProperties
	ModifyPathProperties
	InsertElement
)

var transactionsNames = [...]string{"NoTransaction", "InsertPoint", "AppendPoint", "MovePoint", "DeletePoint", "ModifyPointProperties", "ModifyPathProperties", "InsertElement"}

var transactionsLabels = [...]string{"", "Insert Point", "Append Point", "Move Point", "Delete Point", "Modify Point Properties", "Modify Path Properties", "Insert Element(s)"}

func (tr Transactions) String() string {
	if tr >= 0 && int(tr) < len(transactionsNames) {
		return transactionsNames[tr]
	}
	return fmt.Sprintf("Transactions(%d)", int32(tr))
}

// Label returns the undo label of the transaction.
func (tr Transactions) Label() string {
	if tr >= 0 && int(tr) < len(transactionsLabels) {
		return transactionsLabels[tr]
	}
	return ""
}

// SelectModes are the modes of the [SelectTool].
type SelectModes int32

const (
	// SelectIdle is the mode between gestures.
	SelectIdle SelectModes = iota

	// ModeSelect selects elements under the mouse or in a dragged area.
	ModeSelect

	// ModeMove is set on a press over the selection, before dragging.
	ModeMove

	// ModeMoving moves the selection or an isolated part.
	ModeMoving

	// ModeTransforming transforms the selection with the transform box.
	ModeTransforming
)

var selectModesNames = [...]string{"Idle", "Select", "Move", "Moving", "Transforming"}

func (m SelectModes) String() string {
	if m >= 0 && int(m) < len(selectModesNames) {
		return selectModesNames[m]
	}
	return fmt.Sprintf("SelectModes(%d)", int32(m))
}
