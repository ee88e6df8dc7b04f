// Package logging builds the slog loggers used by the dkbasic command.
package logging
