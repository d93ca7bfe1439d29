// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/canvas/svg"
	"github.com/spf13/cobra"
)

func newReplay(c *Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "replay script.yaml",
		Short: "Replay a tool event script and save the resulting document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Replay(c, args[0], output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output SVG or YAML file (default YAML on stdout)")
	return cmd
}

// Replay runs the script file and saves the document to output.
func Replay(c *Config, script, output string, w io.Writer) error {
	st, err := c.LoadSettings()
	if err != nil {
		return err
	}
	s, err := OpenScript(script)
	if err != nil {
		return err
	}
	var root *svg.Root
	if s.Document != "" {
		doc := s.Document
		if !filepath.IsAbs(doc) {
			doc = filepath.Join(filepath.Dir(script), doc)
		}
		if root, err = OpenDocument(doc); err != nil {
			return err
		}
	} else {
		size := DefaultSize
		if s.Size != nil {
			size = s.Size.Vec()
		}
		root = svg.NewRoot(size)
	}
	p := NewPlayer(root, st)
	if err := p.Run(s); err != nil {
		return err
	}
	slog.Info("replayed", "script", script, "steps", len(s.Steps), "undo", p.Editor.Undos.Idx, "repaints", len(p.Repaints))
	return SaveDocument(root, output, w)
}
