// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"
)

func newConvert(c *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "convert in out",
		Short: "Convert a document between SVG and YAML",
		Long:  "Convert reads an SVG or YAML document and writes it in the format given by the extension of the output file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Convert(args[0], args[1])
		},
	}
}

// Convert converts the document in to the format of out.
func Convert(in, out string) error {
	root, err := OpenDocument(in)
	if err != nil {
		return err
	}
	return SaveDocument(root, out, nil)
}
