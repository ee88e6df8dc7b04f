package normalize

import (
	"path/filepath"
	"strings"
)

// ToLowerDotPath normalizes an environment key to a lowercase dot-separated path.
// Double underscores (__) are treated as level separators and converted to dots.
// Single underscores within a level are preserved.
// Examples:
//   - "LOG__LEVEL" → "log.level"
//   - "DEVICE__SETTINGS_PATH" → "device.settings_path"
func ToLowerDotPath(key string) string {
	normalized := strings.ReplaceAll(key, "__", ".")
	return strings.ToLower(normalized)
}

// Format canonicalizes a document format name ("YML" → "yaml").
// Unknown names are returned lowercased and trimmed.
func Format(name string) string {
	f := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, ".")))
	switch f {
	case "yml":
		return "yaml"
	case "tml":
		return "toml"
	default:
		return f
	}
}

// FormatFromPath infers the document format from a file extension.
// Files without a recognized extension are treated as TOML.
func FormatFromPath(path string) string {
	switch f := Format(filepath.Ext(path)); f {
	case "toml", "yaml", "json":
		return f
	default:
		return "toml"
	}
}
