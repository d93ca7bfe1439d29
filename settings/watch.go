// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/canvas/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch watches the given settings file and calls fn with freshly loaded
// settings each time it is written or replaced, until ctx is done.
// The directory is watched so that editors that replace the file by
// renaming are handled. Load errors are logged and skipped.
func Watch(ctx context.Context, filename string, fn func(s *Settings)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			s, err := Load(abs)
			if errors.Log(err) != nil {
				continue
			}
			slog.Debug("settings reloaded", "file", abs)
			fn(s)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
