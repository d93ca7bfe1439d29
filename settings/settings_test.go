// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, float32(3), s.PickDist)
	assert.Equal(t, 300*time.Millisecond, s.DoubleClick.Std())
	assert.Equal(t, float32(10), s.NudgeBig)
	assert.Equal(t, 100, s.MaxUndo)
	assert.False(t, s.GridActive)
	assert.True(t, s.PageSnap)

	type bad struct {
		C complex64 `default:"1"`
	}
	assert.Error(t, SetFromDefaults(&bad{}))
	assert.Error(t, SetFromDefaults(bad{}))
}

func TestTOML(t *testing.T) {
	s := New()
	s.GridActive = true
	s.DoubleClick = Duration(250 * time.Millisecond)
	var b bytes.Buffer
	require.NoError(t, s.Write(&b))
	assert.Contains(t, b.String(), "250ms")

	r := New()
	require.NoError(t, r.Read(&b))
	assert.Equal(t, s, r)

	r = New()
	require.NoError(t, r.Read(strings.NewReader("PickDist = 5\n")))
	assert.Equal(t, float32(5), r.PickDist)
	assert.Equal(t, float32(1), r.NudgeSmall)

	assert.Error(t, r.Read(strings.NewReader("Unknown = 1\n")))
	assert.Error(t, r.Read(strings.NewReader("DoubleClick = 'soon'\n")))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "settings.toml")
	s, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, New(), s)

	s.NudgeBig = 20
	require.NoError(t, s.Save(fn))
	r, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, float32(20), r.NudgeBig)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "settings.toml")
	ctx, cancel := context.WithCancel(context.Background())
	var grid atomic.Bool
	done := make(chan error)
	go func() {
		done <- Watch(ctx, fn, func(s *Settings) {
			if s.GridActive {
				grid.Store(true)
			}
		})
	}()
	// the watcher may not be set up yet, so keep writing
	assert.Eventually(t, func() bool {
		os.WriteFile(fn, []byte("GridActive = true\n"), 0666)
		return grid.Load()
	}, 5*time.Second, 50*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
