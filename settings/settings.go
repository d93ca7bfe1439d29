// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings provides the user settings of the drawing tools,
// stored as TOML.
package settings

import (
	"io"
	"io/fs"
	"os"
	"time"

	"cogentcore.org/canvas/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Settings are the settings used by the editor and the tools.
type Settings struct {

	// PickDist is the hit test tolerance for points, handles and segments.
	PickDist float32 `default:"3"`

	// SnapDist is the distance within which points snap to guide lines.
	SnapDist float32 `default:"3"`

	// DoubleClick is the maximum time between two mouse presses
	// that are taken as a double click.
	DoubleClick Duration `default:"300ms"`

	// NudgeSmall is the arrow key move distance.
	NudgeSmall float32 `default:"1"`

	// NudgeBig is the arrow key move distance with Shift.
	NudgeBig float32 `default:"10"`

	// GridSize is the grid cell size.
	GridSize float32 `default:"10"`

	// GridActive turns on snapping to the grid.
	GridActive bool `default:"false"`

	// PageSnap turns on snapping to the page edges and center.
	PageSnap bool `default:"true"`

	// MaxUndo is the maximum number of undo records.
	MaxUndo int `default:"100"`

	// Constrain is the base angle in radians of Shift constraining.
	Constrain float32 `default:"0"`
}

// New returns new settings with default values.
func New() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets all fields to their `default:` tag values.
func (s *Settings) Defaults() {
	errors.Must(SetFromDefaults(s))
}

// Open reads the settings from the given TOML file. Fields missing
// from the file keep their current values.
func (s *Settings) Open(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Read(f)
}

// Read reads TOML settings.
func (s *Settings) Read(r io.Reader) error {
	return toml.NewDecoder(r).DisallowUnknownFields().Decode(s)
}

// Save writes the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Write(f)
}

// Write writes the settings as TOML.
func (s *Settings) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

// Load sets the defaults and then opens the given file, which may not exist.
func Load(filename string) (*Settings, error) {
	s := New()
	if filename == "" {
		return s, nil
	}
	err := s.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	return s, err
}

// Duration is a [time.Duration] stored as text like "300ms".
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Duration) UnmarshalText(text []byte) error {
	td, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(td)
	return nil
}
