// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/svg"
)

// DefaultSize is the page size of new documents.
var DefaultSize = math32.Vec2(800, 600)

// isSVG returns whether the file is an SVG file by its extension.
// Everything else is taken as YAML.
func isSVG(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".svg")
}

// OpenDocument opens an SVG or YAML document.
func OpenDocument(filename string) (*svg.Root, error) {
	root := svg.NewRoot(DefaultSize)
	if isSVG(filename) {
		if err := root.OpenXML(filename); err != nil {
			return nil, errors.Errorf("opening %s: %w", filename, err)
		}
		return root, nil
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	if err := root.ReadYAML(fp); err != nil {
		return nil, errors.Errorf("opening %s: %w", filename, err)
	}
	return root, nil
}

// SaveDocument saves the document as SVG or YAML, by the extension
// of the file name. An empty name writes YAML to w.
func SaveDocument(root *svg.Root, filename string, w io.Writer) error {
	switch {
	case filename == "":
		return root.WriteYAML(w)
	case isSVG(filename):
		return root.SaveXML(filename)
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return root.WriteYAML(fp)
}
