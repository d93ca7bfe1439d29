// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides an undo manager that stores document states
// as lines of text: a full copy at intervals, and line patches in between.
package undo

import (
	"log/slog"
	"slices"
	"sync"
)

// DefaultRawInterval is interval for saving raw state. We need to do this
// at some interval to prevent having it take too long to compute patches
// from all the diffs.
var DefaultRawInterval = 50

// Rec is one undo record, associated with one action that changed state
// from the previous record to this one.
type Rec struct {
	// Action is the description of this action, for the user to see.
	Action string

	// Data is optional action data, encoded however you want.
	Data string

	// Raw, if present, is the direct save of the full state.
	Raw []string

	// Patch gets from the previous record to this one.
	Patch Patch
}

// Mgr is the undo manager, managing the undo / redo process.
// Recs[0] is the initial state and Idx is the record of the current state.
type Mgr struct {
	// Idx is the current index in the undo records.
	// This is the record that will be undone if the user hits undo.
	Idx int

	// Recs is the list of saved state / action records.
	Recs []*Rec

	// RawInterval is the interval for saving raw data.
	RawInterval int

	// MaxRecs is the maximum number of records kept, if > 0.
	// The oldest records are dropped beyond that.
	MaxRecs int

	// Mu protects updates.
	Mu sync.Mutex
}

// RecState returns the state for given index, reconstructing from diffs
// as needed.  Must be called under lock.
func (um *Mgr) RecState(idx int) []string {
	stidx := 0
	var cdt []string
	for i := idx; i >= 0; i-- {
		r := um.Recs[i]
		if r.Raw != nil {
			stidx = i
			cdt = r.Raw
			break
		}
	}
	for i := stidx + 1; i <= idx; i++ {
		r := um.Recs[i]
		if r.Patch != nil {
			cdt = r.Patch.Apply(cdt)
		}
	}
	return cdt
}

// Reset starts the history over, with the given initial state.
func (um *Mgr) Reset(state []string) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.RawInterval == 0 {
		um.RawInterval = DefaultRawInterval
	}
	um.Recs = []*Rec{{Action: "Initial", Raw: state}}
	um.Idx = 0
}

// Save saves a new action as next action to be undone, with given action
// data and the full state of the system after the action.
// Any records after the current index (redo history) are discarded.
// The state must not be modified afterwards, as it may be stored directly.
func (um *Mgr) Save(action, data string, state []string) {
	if um.Recs == nil {
		um.Reset(nil)
	}
	um.Mu.Lock()
	defer um.Mu.Unlock()
	// recs will be [old..., Idx] after this
	um.Idx++
	if um.Idx > len(um.Recs) {
		slog.Error("undo.Mgr: index out of range", "index", um.Idx, "records", len(um.Recs))
		um.Idx = len(um.Recs)
	}
	um.Recs = um.Recs[:um.Idx]
	nr := &Rec{Action: action, Data: data}
	um.Recs = append(um.Recs, nr)
	um.SaveState(nr, um.Idx, state)
	um.trim()
}

// SaveState saves given record of state at given index.
// Must be called under lock.
func (um *Mgr) SaveState(nr *Rec, idx int, state []string) {
	if idx%um.RawInterval == 0 {
		nr.Raw = state
		return
	}
	prv := um.RecState(idx - 1)
	nr.Patch = ToPatch(DiffLines(prv, state), state)
}

// Refresh replaces the state of the current record with the given one,
// for changes made outside of any action. The records after it are
// kept for redo. It returns whether the state differed.
func (um *Mgr) Refresh(state []string) bool {
	if um.Recs == nil {
		um.Reset(state)
		return true
	}
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if slices.Equal(um.RecState(um.Idx), state) {
		return false
	}
	var later [][]string
	for i := um.Idx + 1; i < len(um.Recs); i++ {
		later = append(later, um.RecState(i))
	}
	recs := um.Recs[um.Idx:]
	for i, r := range recs {
		st := state
		if i > 0 {
			st = later[i-1]
		}
		r.Raw, r.Patch = nil, nil
		um.SaveState(r, um.Idx+i, st)
	}
	return true
}

// trim drops the oldest records beyond MaxRecs, turning the new
// first record into a raw record. Must be called under lock.
func (um *Mgr) trim() {
	if um.MaxRecs <= 0 {
		return
	}
	n := len(um.Recs) - um.MaxRecs
	if n <= 0 {
		return
	}
	first := um.RecState(n)
	um.Recs = um.Recs[n:]
	um.Recs[0].Raw = first
	um.Recs[0].Patch = nil
	um.Idx -= n
	// keep raw saves aligned with the new indexes
	for i := 1; i < len(um.Recs); i++ {
		r := um.Recs[i]
		if i%um.RawInterval == 0 && r.Raw == nil {
			r.Raw = um.RecState(i)
			r.Patch = nil
		}
	}
}

// IsUndoAvail returns true if there is at least one undo record available.
func (um *Mgr) IsUndoAvail() bool {
	return um.Idx > 0
}

// IsRedoAvail returns true if there is at least one redo record available.
func (um *Mgr) IsRedoAvail() bool {
	return um.Idx < len(um.Recs)-1
}

// Undo returns the action and data of the current record, and the state
// before it, decrementing the index. If there is nothing to undo,
// the state is nil.
func (um *Mgr) Undo() (action, data string, state []string) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Idx <= 0 {
		return
	}
	rec := um.Recs[um.Idx]
	action = rec.Action
	data = rec.Data
	um.Idx--
	state = um.RecState(um.Idx)
	return
}

// Redo returns the action, action data, and state at the next index,
// returning a nil state if already at end of saved records.
func (um *Mgr) Redo() (action, data string, state []string) {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Idx >= len(um.Recs)-1 {
		return
	}
	um.Idx++
	rec := um.Recs[um.Idx]
	action = rec.Action
	data = rec.Data
	state = um.RecState(um.Idx)
	return
}
