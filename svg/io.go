// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/paint/ppath"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/net/html/charset"
)

// OpenXML opens an SVG file, replacing the content of the root.
func (r *Root) OpenXML(filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return r.ReadXML(bufio.NewReader(fp))
}

// SaveXML saves the document as an SVG file.
func (r *Root) SaveXML(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := r.WriteXML(bw, true); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteXML writes the document as SVG. Paths are written in their
// local coordinates with a transform attribute.
func (r *Root) WriteXML(w io.Writer, indent bool) error {
	enc := xml.NewEncoder(w)
	if indent {
		enc.Indent("", "  ")
	}
	w2, h2 := fmt.Sprintf("%g", r.Size.X), fmt.Sprintf("%g", r.Size.Y)
	start := xml.StartElement{Name: xml.Name{Local: "svg"}}
	xmlAddAttr(&start.Attr, "xmlns", "http://www.w3.org/2000/svg")
	xmlAddAttr(&start.Attr, "width", w2)
	xmlAddAttr(&start.Attr, "height", h2)
	xmlAddAttr(&start.Attr, "viewBox", "0 0 "+w2+" "+h2)
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, k := range r.Children {
		if err := marshalXML(k, enc); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(start.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func xmlAddAttr(attr *[]xml.Attr, name, val string) {
	*attr = append(*attr, xml.Attr{Name: xml.Name{Local: name}, Value: val})
}

// marshalXML encodes the node and its children.
func marshalXML(n Node, enc *xml.Encoder) error {
	nb := n.AsNodeBase()
	se := xml.StartElement{Name: xml.Name{Local: n.Kind()}}
	xmlAddAttr(&se.Attr, "id", nb.ID)
	if nb.Hidden {
		xmlAddAttr(&se.Attr, "display", "none")
	}
	if p, ok := n.(*Path); ok {
		xmlAddAttr(&se.Attr, "d", p.Data.SVGData())
		if !p.Data.Transform.IsIdentity() {
			xmlAddAttr(&se.Attr, "transform", p.Data.Transform.String())
		}
	}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if p, ok := n.(Parent); ok {
		for _, k := range p.AsContainer().Children {
			if err := marshalXML(k, enc); err != nil {
				return err
			}
		}
	}
	return enc.EncodeToken(se.End())
}

// ReadXML reads SVG input, replacing the content of the root.
// Only path and g elements are read; others are skipped. A path
// with several subpaths is read as a group of single paths.
func (r *Root) ReadXML(reader io.Reader) error {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	r.DeleteAll()
	stack := []Parent{}
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("svg.ReadXML: %w", err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			switch se.Name.Local {
			case "svg":
				if len(stack) > 0 {
					if err := decoder.Skip(); err != nil {
						return err
					}
					continue
				}
				r.Size = math32.Vec2(xmlNumber(attr(se, "width")), xmlNumber(attr(se, "height")))
				stack = append(stack, r)
			case "g":
				if len(stack) == 0 {
					return fmt.Errorf("svg.ReadXML: <g> outside of <svg>")
				}
				g := NewGroup()
				setID(g, attr(se, "id"))
				g.Hidden = attr(se, "display") == "none"
				Add(stack[len(stack)-1], g)
				stack = append(stack, g)
			case "path":
				if len(stack) == 0 {
					return fmt.Errorf("svg.ReadXML: <path> outside of <svg>")
				}
				n, err := readPath(se)
				if err != nil {
					return err
				}
				if n != nil {
					Add(stack[len(stack)-1], n)
				}
				if err := decoder.Skip(); err != nil {
					return err
				}
			default:
				slog.Debug("svg.ReadXML: skipping element", "element", se.Name.Local)
				if err := decoder.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			switch se.Name.Local {
			case "g", "svg":
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		}
	}
}

// readPath returns the path, or group of paths, for a path element.
func readPath(se xml.StartElement) (Node, error) {
	ps, err := ppath.ParseSVGPath(attr(se, "d"))
	if err != nil {
		return nil, fmt.Errorf("svg.ReadXML: path %q: %w", attr(se, "id"), err)
	}
	xf := math32.Identity2()
	if err := xf.SetString(attr(se, "transform")); err != nil {
		return nil, err
	}
	hidden := attr(se, "display") == "none"
	var nodes []Node
	for _, p := range ps {
		p.Transform = xf
		np := NewPath(p)
		np.Hidden = hidden
		nodes = append(nodes, np)
	}
	switch len(nodes) {
	case 0:
		return nil, nil
	case 1:
		setID(nodes[0], attr(se, "id"))
		return nodes[0], nil
	}
	g := NewGroup(nodes...)
	setID(g, attr(se, "id"))
	return g, nil
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func setID(n Node, id string) {
	if id != "" {
		n.AsNodeBase().ID = id
	}
}

// xmlNumber returns the leading number of a length like "100px", or 0.
func xmlNumber(s string) float32 {
	f, n := strconv.ParseFloat([]byte(strings.TrimSpace(s)))
	if n == 0 {
		return 0
	}
	return float32(f)
}
