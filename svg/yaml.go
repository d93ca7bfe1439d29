// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"io"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/paint/ppath"
	"gopkg.in/yaml.v3"
)

// nodeYAML is the YAML form of a [Node].
type nodeYAML struct {
	Kind     string      `yaml:"kind"`
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name,omitempty"`
	Locked   bool        `yaml:"locked,omitempty"`
	Hidden   bool        `yaml:"hidden,omitempty"`
	Selected bool        `yaml:"selected,omitempty"`
	Path     *ppath.Path `yaml:"path,omitempty"`
	Children []*nodeYAML `yaml:"children,omitempty"`
}

type rootYAML struct {
	ID       string      `yaml:"id"`
	Size     [2]float32  `yaml:"size,flow"`
	Children []*nodeYAML `yaml:"children"`
}

func toYAML(n Node) *nodeYAML {
	nb := n.AsNodeBase()
	ny := &nodeYAML{Kind: n.Kind(), ID: nb.ID, Name: nb.Name, Locked: nb.Locked, Hidden: nb.Hidden, Selected: nb.Selected}
	switch x := n.(type) {
	case *Path:
		ny.Path = x.Data
	case Parent:
		for _, k := range x.AsContainer().Children {
			ny.Children = append(ny.Children, toYAML(k))
		}
	}
	return ny
}

func fromYAML(ny *nodeYAML) (Node, error) {
	nb := NodeBase{ID: ny.ID, Name: ny.Name, Locked: ny.Locked, Hidden: ny.Hidden, Selected: ny.Selected}
	switch ny.Kind {
	case "path":
		p := &Path{NodeBase: nb, Data: ny.Path}
		if p.Data == nil {
			p.Data = ppath.New()
		}
		return p, nil
	case "g":
		g := &Group{NodeBase: nb}
		for _, ky := range ny.Children {
			k, err := fromYAML(ky)
			if err != nil {
				return nil, err
			}
			Add(g, k)
		}
		return g, nil
	}
	return nil, fmt.Errorf("svg: unknown node kind %q", ny.Kind)
}

// MarshalYAML implements [yaml.Marshaler].
func (r *Root) MarshalYAML() (any, error) {
	ry := &rootYAML{ID: r.ID, Size: [2]float32{r.Size.X, r.Size.Y}}
	for _, k := range r.Children {
		ry.Children = append(ry.Children, toYAML(k))
	}
	return ry, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler], replacing the content of the root.
func (r *Root) UnmarshalYAML(value *yaml.Node) error {
	ry := &rootYAML{}
	if err := value.Decode(ry); err != nil {
		return err
	}
	var kids []Node
	for _, ky := range ry.Children {
		k, err := fromYAML(ky)
		if err != nil {
			return err
		}
		kids = append(kids, k)
	}
	r.DeleteAll()
	r.ID = ry.ID
	r.Size = math32.Vec2(ry.Size[0], ry.Size[1])
	Add(r, kids...)
	return nil
}

// WriteYAML writes the document as YAML.
func (r *Root) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML reads a YAML document, replacing the content of the root.
func (r *Root) ReadYAML(rd io.Reader) error {
	return yaml.NewDecoder(rd).Decode(r)
}
