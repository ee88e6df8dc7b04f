package main

import (
	"github.com/spf13/cobra"
)

const aboutDescription = `Processes and validates DK-BASIC mappings files.

If this utility is being run on DK-BASIC hardware, it should be run
with the "apply" command; otherwise it should be run with "validate".`

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "dkbasic",
		Short:         "DK-BASIC mappings utility",
		Long:          aboutDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&ctx.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&ctx.logFormat, "log-format", "", "Log format (console, json)")
	flags.StringVar(&ctx.devicePath, "device-path", "", "Device settings file written by apply")

	rootCmd.AddCommand(newApplyCommand(ctx))
	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newDefaultsCommand())
	rootCmd.AddCommand(newCurrentCommand(ctx))

	return rootCmd
}
