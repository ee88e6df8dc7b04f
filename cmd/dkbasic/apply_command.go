package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dkbasic/mappings"
	"github.com/dkbasic/mappings/sourcefile"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file>",
		Short: "Apply a mappings file to the device, falling back to defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ctx.warnNonCanonicalName(path)

			src := sourcefile.New(path, sourcefile.Options{})
			source := src.Name()
			settings, err := mappings.NewLoader().Load(cmd.Context(), src)
			if err != nil {
				ctx.logger.Warn("mappings file rejected; applying default settings",
					slog.String("file", path),
					slog.String("code", mappings.CodeOf(err)),
					slog.Any("error", err),
				)
				settings = mappings.Default()
				source = mappings.SourceDefault
			}

			return ctx.applier().Apply(cmd.Context(), settings, source)
		},
	}
}
