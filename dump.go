package mappings

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for DumpEffective.
type dumpConfig struct {
	prov   *Provenance // Source attribution for global fields
	asJSON bool        // Output as JSON instead of text format
	indent string      // Indentation for JSON output (default: "  ")
}

// WithProvenance annotates each global value with where it came from.
func WithProvenance(prov *Provenance) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.prov = prov
	}
}

// AsJSON outputs settings as JSON instead of text format.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.asJSON = true
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// DumpEffective writes a human-readable representation of the settings.
// Returns an error if writing to the writer fails.
func DumpEffective(w io.Writer, s *Settings, opts ...DumpOption) error {
	if s == nil {
		return fmt.Errorf("settings are nil")
	}

	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	if config.asJSON {
		return dumpJSON(w, s, config)
	}
	return dumpText(w, s, config)
}

func dumpText(w io.Writer, s *Settings, config dumpConfig) error {
	lines := []string{
		formatLine("global.debounce", fmt.Sprintf("%d", s.Global.Debounce), config.prov),
		formatLine("global.combo_window", fmt.Sprintf("%d", s.Global.ComboWindow), config.prov),
		formatLine("global.microphone", fmt.Sprintf("%t", s.Global.Microphone), config.prov),
	}
	for i, r := range s.Freestyle {
		lines = append(lines, fmt.Sprintf("freestyle[%d]: %q %s", i, rune(r.Character), FormatBeats(r.Beats)))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatLine(key, value string, prov *Provenance) string {
	line := key + ": " + value
	if f, ok := prov.Lookup(key); ok {
		line += " (source: " + f.SourceName + ")"
	}
	return line
}

// FormatBeats renders beats as tokens with the following delay in brackets,
// e.g. "BLB(150) MIC".
func FormatBeats(beats []Beat) string {
	parts := make([]string, len(beats))
	for i, b := range beats {
		if d, ok := b.Delay.Get(); ok {
			parts[i] = fmt.Sprintf("%s(%d)", b.Input.Token(), d)
		} else {
			parts[i] = b.Input.Token()
		}
	}
	return strings.Join(parts, " ")
}

func dumpJSON(w io.Writer, s *Settings, config dumpConfig) error {
	out := struct {
		*Settings
		Provenance []FieldProvenance `json:"provenance,omitempty"`
	}{Settings: s}
	if config.prov != nil {
		out.Provenance = config.prov.Fields
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", config.indent)
	return encoder.Encode(out)
}
