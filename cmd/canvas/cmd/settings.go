// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/settings"
	"github.com/spf13/cobra"
)

func newSettings(c *Config) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "settings [file]",
		Short: "Print the effective settings as TOML",
		Long:  "Settings prints the settings of the given file, or of the --settings file, with defaults for the missing values. With --watch it prints them again each time the file changes.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c.Settings = args[0]
			}
			st, err := c.LoadSettings()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := st.Write(w); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			if c.Settings == "" {
				return errors.New("settings: --watch needs a settings file")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return WatchSettings(ctx, c.Settings, w)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "print the settings again when the file changes")
	return cmd
}

// WatchSettings prints the settings of the file to w each time it
// changes, until ctx is done.
func WatchSettings(ctx context.Context, filename string, w io.Writer) error {
	slog.Info("watching settings", "file", filename)
	err := settings.Watch(ctx, filename, func(s *settings.Settings) {
		errors.Log(s.Write(w))
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
