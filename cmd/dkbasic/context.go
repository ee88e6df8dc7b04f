package main

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkbasic/mappings"
	"github.com/dkbasic/mappings/internal/device"
	"github.com/dkbasic/mappings/internal/logging"
	"github.com/dkbasic/mappings/sourceenv"
)

const envPrefix = "DKBASIC_"

type commandContext struct {
	logLevel   string
	logFormat  string
	devicePath string

	logger *slog.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

// init fills unset flags from DKBASIC_* variables and builds the logger.
func (c *commandContext) init(cmd *cobra.Command) error {
	env := sourceenv.Load(sourceenv.Options{Prefix: envPrefix})
	c.logLevel = firstNonEmpty(c.logLevel, env["log.level"])
	c.logFormat = firstNonEmpty(c.logFormat, env["log.format"])
	c.devicePath = firstNonEmpty(c.devicePath, env["device.path"])

	logger, err := logging.New(logging.Options{
		Level:  c.logLevel,
		Format: c.logFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

func (c *commandContext) applier() *device.Applier {
	return device.NewApplier(c.devicePath, c.logger)
}

// warnNonCanonicalName logs when path is not named mappings.toml. The device
// only picks up that name, but the check is advisory.
func (c *commandContext) warnNonCanonicalName(path string) {
	if path == "-" {
		return
	}
	if name := filepath.Base(path); name != mappings.DefaultFileName {
		c.logger.Warn("mappings file has a non-canonical name",
			slog.String("file", path),
			slog.String("expected", mappings.DefaultFileName),
		)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
