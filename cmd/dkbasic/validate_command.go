package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkbasic/mappings"
	"github.com/dkbasic/mappings/internal/normalize"
	"github.com/dkbasic/mappings/sourcefile"
)

type validateOptions struct {
	all                  bool
	strict               bool
	requireMicrophone    bool
	requireCanonicalName bool
	show                 bool
	asJSON               bool
	format               string
}

func (o validateOptions) loaderOptions() []mappings.Option {
	opts := []mappings.Option{mappings.Strict(o.strict)}
	if o.all {
		opts = append(opts, mappings.CollectAll())
	}
	if o.requireMicrophone {
		opts = append(opts, mappings.WithMicrophonePolicy(mappings.MicrophoneRequiresEnabled))
	}
	if o.requireCanonicalName {
		opts = append(opts, mappings.RequireCanonicalName())
	}
	return opts
}

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate <file|->",
		Short: "Check a mappings file without applying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			ctx.warnNonCanonicalName(path)

			src, err := validateSource(cmd.InOrStdin(), path, opts.format)
			if err != nil {
				return err
			}

			loader := mappings.NewLoader(opts.loaderOptions()...)
			settings, prov, err := loader.LoadWithProvenance(cmd.Context(), src)
			if err != nil {
				errOut := cmd.ErrOrStderr()
				fmt.Fprintln(errOut, colorize(errOut, ansiRed, fmt.Sprintf("ERROR: %q is invalid", path)))
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return mappings.DumpEffective(out, settings, mappings.AsJSON(), mappings.WithProvenance(prov))
			}

			fmt.Fprintln(out, colorize(out, ansiGreen, fmt.Sprintf("[*] %q is valid", path)))
			if opts.show {
				fmt.Fprintln(out, renderSettings(settings, prov))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.all, "all", false, "Report every problem instead of stopping at the first")
	flags.BoolVar(&opts.strict, "strict", false, "Reject unknown keys")
	flags.BoolVar(&opts.requireMicrophone, "require-microphone", false, "Reject MIC beats unless global.microphone = true")
	flags.BoolVar(&opts.requireCanonicalName, "require-canonical-name", false, "Reject files not named "+mappings.DefaultFileName)
	flags.BoolVar(&opts.show, "show", false, "Print the resolved settings as a table")
	flags.BoolVar(&opts.asJSON, "json", false, "Print the resolved settings as JSON")
	flags.StringVar(&opts.format, "format", "", "Document format (toml, yaml, json); inferred from the extension by default")
	return cmd
}

// validateSource reads stdin when path is "-".
func validateSource(stdin io.Reader, path, format string) (mappings.Source, error) {
	if path != "-" {
		return sourcefile.New(path, sourcefile.Options{Format: format}), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, &mappings.ParseError{Code: mappings.ErrCodeCannotReadFile, Name: os.Stdin.Name(), Err: err}
	}
	if format == "" {
		format = mappings.FormatTOML
	}
	return mappings.Bytes("stdin", normalize.Format(format), data), nil
}
