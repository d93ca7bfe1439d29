// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/editor"
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/events/key"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/settings"
	"cogentcore.org/canvas/svg"
	"cogentcore.org/canvas/tools"
	"golang.org/x/image/math/fixed"
	"gopkg.in/yaml.v3"
)

// Point is a position in view coordinates, written as [x, y].
type Point [2]float32

// Vec returns the point as a vector.
func (p Point) Vec() math32.Vector2 { return math32.Vec2(p[0], p[1]) }

// Script is a sequence of input steps replayed on a document.
type Script struct {

	// Size is the page size of a new document.
	Size *Point `yaml:"size,omitempty"`

	// Document is the document to start from, relative to the
	// script. A new empty document is used if it is empty.
	Document string `yaml:"document,omitempty"`

	// Scale is the view zoom factor; 0 means 1.
	Scale float32 `yaml:"scale,omitempty"`

	// Interval is the time between two events.
	// It defaults to one second, so that only explicit
	// double clicks are taken as such.
	Interval time.Duration `yaml:"interval,omitempty"`

	// Steps are the steps to replay.
	Steps []Step `yaml:"steps"`
}

// Step is one step of a [Script]. Op selects what it does:
//   - tool: activates Tool, interrupting a gesture if Force is set
//   - temporary, release: activates Tool until the next release
//   - move, down, up: a single mouse event at At
//   - click, dblclick: a press and release at At, once or twice
//   - drag: a press at At, moves to To and a release
//   - key: a press and release of Key
//   - keydown, keyup: a single key event
//   - mods: a change of the held modifiers
//   - wait: lets Wait pass
//   - undo, redo: undoes or redoes the last action
type Step struct {
	Op     string         `yaml:"op"`
	Tool   string         `yaml:"tool,omitempty"`
	Force  bool           `yaml:"force,omitempty"`
	At     Point          `yaml:"at,omitempty"`
	To     Point          `yaml:"to,omitempty"`
	Button events.Buttons `yaml:"button,omitempty"`
	Key    key.Codes      `yaml:"key,omitempty"`
	Mods   key.Modifiers  `yaml:"mods,omitempty"`
	Wait   time.Duration  `yaml:"wait,omitempty"`
}

// ReadScript reads a YAML script.
func ReadScript(r io.Reader) (*Script, error) {
	s := &Script{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return nil, errors.Errorf("reading script: %w", err)
	}
	return s, nil
}

// OpenScript opens a YAML script file.
func OpenScript(filename string) (*Script, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadScript(fp)
}

// Player replays scripts on a headless view.
type Player struct {
	Editor  *editor.Editor
	View    *tools.View
	Manager *tools.Manager

	// Now is the time of the last event.
	Now time.Time

	// Interval is the time between two events.
	Interval time.Duration

	// Repaints are the areas of the view repainted after each
	// step that changed it, in fixed point.
	Repaints []fixed.Rectangle26_6

	// temporary is set while a temporary tool is active.
	temporary bool
}

// NewPlayer returns a player for the document.
func NewPlayer(root *svg.Root, st *settings.Settings) *Player {
	ed := editor.New(root, st)
	v := tools.NewView(ed)
	return &Player{Editor: ed, View: v, Manager: tools.NewManager(v), Now: time.Now(), Interval: time.Second}
}

// Run replays the steps of the script, then deactivates the tool
// so that pending edits are committed.
func (p *Player) Run(s *Script) error {
	if s.Interval > 0 {
		p.Interval = s.Interval
	}
	if s.Scale > 0 {
		p.View.Transform = math32.Scale2D(s.Scale, s.Scale)
	}
	for i, st := range s.Steps {
		if err := p.Do(st); err != nil {
			return errors.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
		p.repaint()
	}
	defer p.repaint()
	return p.Manager.Deactivate(true)
}

// repaint records and clears the dirty area of the view.
func (p *Player) repaint() {
	if p.View.Dirty.IsEmpty() {
		return
	}
	r := p.View.DirtyFixed()
	slog.Debug("replay: repaint", "min", r.Min, "max", r.Max)
	p.Repaints = append(p.Repaints, r)
	p.View.ResetDirty()
}

func (p *Player) tick() time.Time {
	p.Now = p.Now.Add(p.Interval)
	return p.Now
}

func (p *Player) mouse(typ events.Types, but events.Buttons, at Point, mods key.Modifiers) {
	ev := events.NewMouse(typ, but, at.Vec(), mods)
	ev.GenTime = p.tick()
	p.Manager.HandleEvent(ev)
}

func (p *Player) key(typ events.Types, code key.Codes, mods key.Modifiers) {
	ev := events.NewKey(typ, code, mods)
	ev.GenTime = p.tick()
	p.Manager.HandleEvent(ev)
}

// Do performs one step.
func (p *Player) Do(st Step) error {
	slog.Debug("replay", "op", st.Op, "at", st.At, "mods", st.Mods)
	but := st.Button
	if but == events.NoButton {
		but = events.Left
	}
	switch st.Op {
	case "tool", "temporary":
		t, err := tools.NewTool(st.Tool)
		if err != nil {
			return err
		}
		if st.Op == "temporary" {
			if err := p.Manager.ActivateTemporary(t); err != nil {
				return err
			}
			p.temporary = true
			return nil
		}
		p.temporary = false
		return p.Manager.Activate(t, st.Force)
	case "release":
		if !p.temporary {
			return errors.New("no temporary tool to release")
		}
		p.temporary = false
		return p.Manager.ReleaseTemporary()
	case "move":
		p.mouse(events.MouseMove, events.NoButton, st.At, st.Mods)
	case "down":
		p.mouse(events.MouseDown, but, st.At, st.Mods)
	case "up":
		p.mouse(events.MouseUp, but, st.At, st.Mods)
	case "click":
		p.mouse(events.MouseMove, events.NoButton, st.At, st.Mods)
		p.mouse(events.MouseDown, but, st.At, st.Mods)
		p.mouse(events.MouseUp, but, st.At, st.Mods)
	case "dblclick":
		p.mouse(events.MouseMove, events.NoButton, st.At, st.Mods)
		interval := p.Interval
		p.Interval = time.Millisecond
		for range 2 {
			p.mouse(events.MouseDown, but, st.At, st.Mods)
			p.mouse(events.MouseUp, but, st.At, st.Mods)
		}
		p.Interval = interval
	case "drag":
		p.mouse(events.MouseMove, events.NoButton, st.At, st.Mods)
		p.mouse(events.MouseDown, but, st.At, st.Mods)
		p.mouse(events.MouseMove, but, st.To, st.Mods)
		p.mouse(events.MouseUp, but, st.To, st.Mods)
	case "key":
		p.key(events.KeyDown, st.Key, st.Mods)
		p.key(events.KeyUp, st.Key, st.Mods)
	case "keydown":
		p.key(events.KeyDown, st.Key, st.Mods)
	case "keyup":
		p.key(events.KeyUp, st.Key, st.Mods)
	case "mods":
		ev := events.NewModifiers(p.View.Mods, st.Mods)
		ev.GenTime = p.tick()
		p.Manager.HandleEvent(ev)
	case "wait":
		p.Now = p.Now.Add(st.Wait)
	case "undo":
		_, err := p.Editor.Undo()
		return err
	case "redo":
		_, err := p.Editor.Redo()
		return err
	default:
		return errors.Errorf("unknown op %q", st.Op)
	}
	return nil
}
