// Package sourcefile reads mapping documents from the filesystem.
//
// Format is auto-detected from extension (.toml, .yaml, .json), TOML otherwise.
//
// Example:
//
//	settings, err := sourcefile.Parse(ctx, "/boot/mappings.toml")
package sourcefile
