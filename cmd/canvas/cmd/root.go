// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the canvas tool.
package cmd

import (
	"cogentcore.org/canvas/base/logx"
	"cogentcore.org/canvas/settings"
	"github.com/spf13/cobra"
)

// Config is the configuration shared by all commands.
type Config struct {

	// Settings is the TOML settings file, if any.
	Settings string

	// VeryVerbose shows debug messages.
	VeryVerbose bool

	// Verbose shows info messages.
	Verbose bool

	// Quiet only shows errors.
	Quiet bool
}

// LoadSettings returns the settings of the config file,
// or the default settings if there is none.
func (c *Config) LoadSettings() (*settings.Settings, error) {
	if c.Settings == "" {
		return settings.New(), nil
	}
	return settings.Load(c.Settings)
}

// NewRoot returns the root command with all subcommands.
func NewRoot() *cobra.Command {
	c := &Config{}
	root := &cobra.Command{
		Use:           "canvas",
		Short:         "Replay drawing tool scripts on vector documents",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&c.Settings, "settings", "", "TOML settings file")
	pf.BoolVar(&c.VeryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&c.Verbose, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&c.Quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(newReplay(c), newConvert(c), newSettings(c))
	return root
}
