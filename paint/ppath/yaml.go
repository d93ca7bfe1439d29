// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/canvas/math32"
	"gopkg.in/yaml.v3"
)

// pathYAML is the YAML form of a [Path], with one compact
// point stream per line.
type pathYAML struct {
	Closed    bool          `yaml:"closed,omitempty"`
	Transform string        `yaml:"transform,omitempty"`
	Points    []pointStream `yaml:"points"`
}

type pointStream []any

func (ps pointStream) MarshalYAML() (any, error) {
	n := &yaml.Node{}
	if err := n.Encode([]any(ps)); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return n, nil
}

// MarshalYAML implements [yaml.Marshaler].
func (p *Path) MarshalYAML() (any, error) {
	py := pathYAML{Closed: p.Closed}
	if !p.Transform.IsIdentity() {
		py.Transform = p.Transform.String()
	}
	for _, s := range p.Serialize() {
		py.Points = append(py.Points, s)
	}
	return py, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (p *Path) UnmarshalYAML(value *yaml.Node) error {
	var py struct {
		Closed    bool    `yaml:"closed"`
		Transform string  `yaml:"transform"`
		Points    [][]any `yaml:"points"`
	}
	if err := value.Decode(&py); err != nil {
		return err
	}
	p.Closed = py.Closed
	p.Transform = math32.Identity2()
	if err := p.Transform.SetString(py.Transform); err != nil {
		return err
	}
	return p.Deserialize(py.Points)
}
