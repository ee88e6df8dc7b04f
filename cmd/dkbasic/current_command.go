package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
)

func newCurrentCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the settings last applied to the device",
		RunE: func(cmd *cobra.Command, args []string) error {
			applier := ctx.applier()
			snap, err := applier.Current()
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("no settings applied yet at %s", applier.Path())
			}
			if err != nil {
				return fmt.Errorf("read device settings: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Device:  %s\n", snap.Device)
			fmt.Fprintf(out, "Applied: %s\n", snap.Timestamp.Format("2006-01-02 15:04:05 MST"))
			fmt.Fprintf(out, "Source:  %s\n", snap.Source)
			fmt.Fprintln(out, renderSettings(snap.Settings, nil))
			return nil
		},
	}
}
