// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command canvas replays tool event scripts on vector documents
// and converts documents between the SVG and YAML formats.
package main

import (
	"os"

	"cogentcore.org/canvas/cmd/canvas/cmd"
)

func main() {
	if err := cmd.NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
