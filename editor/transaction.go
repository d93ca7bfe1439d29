// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package editor

import (
	"log/slog"
	"slices"

	"cogentcore.org/canvas/base/errors"
)

var (
	// ErrNoTransaction is returned when committing or rolling back
	// without an open transaction.
	ErrNoTransaction = errors.New("editor: no open transaction")

	// ErrInTransaction is returned by undo and redo while a
	// transaction is open.
	ErrInTransaction = errors.New("editor: transaction in progress")
)

// BeginTransaction opens a transaction. Transactions nest, and only
// the outermost one records an undo step. Opening the outermost one
// also stores selection changes made since the last step, so that
// undoing it restores the selection it started from.
func (e *Editor) BeginTransaction() {
	st := e.state()
	if len(e.transactions) == 0 && e.Undos.Refresh(st) {
		slog.Debug("editor: refresh undo state", "undo", e.Undos.Idx)
	}
	e.transactions = append(e.transactions, st)
}

// InTransaction returns whether a transaction is open.
func (e *Editor) InTransaction() bool {
	return len(e.transactions) > 0
}

// CommitTransaction closes the innermost transaction. Closing the
// outermost one records an undo step with the given label, if the
// document has changed.
func (e *Editor) CommitTransaction(label string) error {
	n := len(e.transactions)
	if n == 0 {
		return errors.Errorf("%w: commit %q", ErrNoTransaction, label)
	}
	before := e.transactions[n-1]
	e.transactions = e.transactions[:n-1]
	if n > 1 {
		return nil
	}
	st := e.state()
	if slices.Equal(st, before) {
		slog.Debug("editor: commit without changes", "action", label)
		return nil
	}
	e.Undos.Save(label, "", st)
	slog.Debug("editor: commit", "action", label, "undo", e.Undos.Idx)
	return nil
}

// RollbackTransaction closes the innermost transaction, restoring
// the document to its state at the start of it.
func (e *Editor) RollbackTransaction() error {
	n := len(e.transactions)
	if n == 0 {
		return ErrNoTransaction
	}
	before := e.transactions[n-1]
	e.transactions = e.transactions[:n-1]
	return e.restore(before)
}

// Undo undoes the last recorded action, returning its label,
// or "" if there is nothing to undo.
func (e *Editor) Undo() (string, error) {
	if e.InTransaction() {
		return "", ErrInTransaction
	}
	action, _, st := e.Undos.Undo()
	if st == nil {
		return "", nil
	}
	slog.Debug("editor: undo", "action", action)
	return action, e.restore(st)
}

// Redo redoes the last undone action, returning its label,
// or "" if there is nothing to redo.
func (e *Editor) Redo() (string, error) {
	if e.InTransaction() {
		return "", ErrInTransaction
	}
	action, _, st := e.Undos.Redo()
	if st == nil {
		return "", nil
	}
	slog.Debug("editor: redo", "action", action)
	return action, e.restore(st)
}
