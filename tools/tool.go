// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tools provides the interactive drawing tools, which turn
// input events on a [View] into edits of the document, and the
// [Manager] that runs them.
package tools

import (
	"log/slog"
	"sort"
	"time"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/events"
	"cogentcore.org/canvas/math32"
)

// Tool is an interactive tool. While active, a tool receives the
// events of its view through the listeners it registers.
type Tool interface {

	// Activate registers the listeners of the tool on the view
	// and initializes its state.
	Activate(v *View)

	// Deactivate releases the state of the tool. It is called before
	// the listeners are removed, also while a gesture is in progress
	// when forced.
	Deactivate(v *View)

	// IsDeactivatable returns whether the tool can be deactivated
	// without interrupting a gesture.
	IsDeactivatable() bool
}

// ErrPressed is returned when switching tools in the middle of a gesture.
var ErrPressed = errors.New("tools: active tool is in a gesture")

// DragDistance is the distance in view pixels the mouse has to move
// with a button pressed to start a drag.
var DragDistance float32 = 2

// Manager activates tools on a view and dispatches the input events to
// the active tool. It synthesizes the drag, double click and modifier
// change events from the raw mouse and key events.
type Manager struct {

	// View is the view the tools work on.
	View *View

	// active is the active tool.
	active Tool

	// previous is the tool to restore after a temporary tool.
	previous Tool

	// pressed is set while a mouse button is pressed.
	pressed bool

	// dragging is set after the drag start of a press.
	dragging bool

	// button is the pressed button.
	button events.Buttons

	// start is where the button was pressed.
	start math32.Vector2

	// lastClick is the time of the last release without drag,
	// for double clicks.
	lastClick time.Time
}

// NewManager returns a new tool manager for the view.
func NewManager(v *View) *Manager {
	return &Manager{View: v}
}

// Active returns the active tool, or nil.
func (m *Manager) Active() Tool {
	return m.active
}

// Activate deactivates the active tool and activates t, which may be
// nil. Unless force is set, it fails with [ErrPressed] if the active
// tool is not deactivatable.
func (m *Manager) Activate(t Tool, force bool) error {
	if err := m.Deactivate(force); err != nil {
		return err
	}
	m.previous = nil
	m.activate(t)
	return nil
}

func (m *Manager) activate(t Tool) {
	m.active = t
	if t != nil {
		slog.Debug("tools: activate", "tool", ToolName(t))
		t.Activate(m.View)
	}
}

// Deactivate deactivates the active tool and removes its listeners.
// Unless force is set, it fails with [ErrPressed] if the tool is not
// deactivatable.
func (m *Manager) Deactivate(force bool) error {
	t := m.active
	if t == nil {
		return nil
	}
	if !force && !t.IsDeactivatable() {
		return ErrPressed
	}
	t.Deactivate(m.View)
	m.View.Listeners.Reset()
	m.active = nil
	m.pressed, m.dragging = false, false
	return nil
}

// ActivateTemporary activates t until [Manager.ReleaseTemporary],
// which restores the active tool.
func (m *Manager) ActivateTemporary(t Tool) error {
	prev := m.previous
	if prev == nil {
		prev = m.active
	}
	if err := m.Deactivate(false); err != nil {
		return err
	}
	m.previous = prev
	m.activate(t)
	return nil
}

// ReleaseTemporary restores the tool active before
// [Manager.ActivateTemporary].
func (m *Manager) ReleaseTemporary() error {
	if m.previous == nil {
		return nil
	}
	prev := m.previous
	if err := m.Deactivate(false); err != nil {
		return err
	}
	m.previous = nil
	m.activate(prev)
	return nil
}

// HandleEvent dispatches the event to the active tool. A change of the
// modifiers held is dispatched first as a [events.ModifiersChanged]
// event. Mouse moves with a button pressed are turned into
// [events.DragStart] and [events.MouseDrag] events, and a release
// ending a drag is preceded by [events.DragEnd]. A release without
// drag soon after another one is followed by [events.DoubleClick].
func (m *Manager) HandleEvent(ev events.Event) {
	v := m.View
	if me, ok := ev.(*events.Modifiers); ok {
		v.Mods = me.Mods
		v.Listeners.Call(me)
		return
	}
	if mods := ev.Modifiers(); mods != v.Mods {
		me := events.NewModifiers(v.Mods, mods)
		me.GenTime = ev.Time()
		v.Mods = mods
		v.Listeners.Call(me)
	}
	if me, ok := ev.(*events.Mouse); ok {
		m.handleMouse(me)
		return
	}
	v.Listeners.Call(ev)
}

func (m *Manager) handleMouse(ev *events.Mouse) {
	ls := &m.View.Listeners
	switch ev.Type() {
	case events.MouseDown:
		if m.pressed {
			return
		}
		m.pressed, m.dragging = true, false
		m.button = ev.Button
		m.start = ev.Where
		ev.Start = ev.Where
		ls.Call(ev)
	case events.MouseMove, events.MouseDrag:
		if !m.pressed {
			ls.Call(ev.Clone(events.MouseMove, ev.Mods))
			return
		}
		if !m.dragging {
			if ev.Where.DistanceTo(m.start) < DragDistance {
				return
			}
			m.dragging = true
			ls.Call(m.derived(events.DragStart, ev))
		}
		ls.Call(m.derived(events.MouseDrag, ev))
	case events.MouseUp:
		if !m.pressed {
			return
		}
		dragged := m.dragging
		if dragged {
			ls.Call(m.derived(events.DragEnd, ev))
		}
		m.pressed, m.dragging = false, false
		ev.Button = m.button
		ev.Start = m.start
		ls.Call(ev)
		if dragged {
			m.lastClick = time.Time{}
			return
		}
		st := m.View.Editor.Settings
		if !m.lastClick.IsZero() && ev.Time().Sub(m.lastClick) <= st.DoubleClick.Std() {
			m.lastClick = time.Time{}
			ls.Call(m.derived(events.DoubleClick, ev))
			return
		}
		m.lastClick = ev.Time()
	default:
		ls.Call(ev)
	}
}

// derived returns a copy of the event of the given type, for the
// pressed button and its start position.
func (m *Manager) derived(typ events.Types, ev *events.Mouse) *events.Mouse {
	ne := ev.Clone(typ, ev.Mods)
	ne.Button = m.button
	ne.Start = m.start
	return ne
}

// Tools are the constructors of the tools by name.
var Tools = map[string]func() Tool{
	"pen":    func() Tool { return NewPenTool() },
	"select": func() Tool { return NewSelectTool() },
}

// ToolNames returns the sorted names of the [Tools].
func ToolNames() []string {
	names := make([]string, 0, len(Tools))
	for nm := range Tools {
		names = append(names, nm)
	}
	sort.Strings(names)
	return names
}

// NewTool returns a new tool by name.
func NewTool(name string) (Tool, error) {
	fn, ok := Tools[name]
	if !ok {
		return nil, errors.Errorf("tools: unknown tool %q, want one of %v", name, ToolNames())
	}
	return fn(), nil
}

// ToolName returns the name of the tool, or "".
func ToolName(t Tool) string {
	switch t.(type) {
	case *PenTool:
		return "pen"
	case *SelectTool:
		return "select"
	}
	return ""
}
