package mappings

import (
	"fmt"
	"unicode/utf8"
)

// Document is a mapping file exactly as authored. Only structural
// constraints apply here; range and token checks happen in Validate.
type Document struct {
	Global    *GlobalDocument  `toml:"global" yaml:"global" json:"global"`
	Freestyle []RhythmDocument `toml:"freestyle" yaml:"freestyle" json:"freestyle"`
}

// GlobalDocument is the optional [global] table.
type GlobalDocument struct {
	Debounce    *int64 `toml:"debounce" yaml:"debounce" json:"debounce"`
	ComboWindow *int64 `toml:"combo_window" yaml:"combo_window" json:"combo_window"`
	Microphone  *bool  `toml:"microphone" yaml:"microphone" json:"microphone"`
}

// RhythmDocument is one [[freestyle]] entry. All three keys are required.
type RhythmDocument struct {
	Character *Character `toml:"character" yaml:"character" json:"character"`
	Beats     *[]string  `toml:"beats" yaml:"beats" json:"beats"`
	Delays    *[]int64   `toml:"delays" yaml:"delays" json:"delays"`
}

// Character is a single Unicode scalar value.
type Character rune

// UnmarshalText accepts exactly one scalar.
func (c *Character) UnmarshalText(text []byte) error {
	r, size := utf8.DecodeRune(text)
	if size == 0 || size != len(text) || (r == utf8.RuneError && size == 1) {
		return fmt.Errorf("character %q must be exactly one character", text)
	}
	*c = Character(r)
	return nil
}

// MarshalText encodes the character as a one-scalar string.
func (c Character) MarshalText() ([]byte, error) {
	return []byte(string(rune(c))), nil
}

// checkRequired reports the first rhythm with a missing required key.
func (d *Document) checkRequired() error {
	for i, r := range d.Freestyle {
		switch {
		case r.Character == nil:
			return fmt.Errorf("freestyle[%d]: missing required key \"character\"", i)
		case r.Beats == nil:
			return fmt.Errorf("freestyle[%d]: missing required key \"beats\"", i)
		case r.Delays == nil:
			return fmt.Errorf("freestyle[%d]: missing required key \"delays\"", i)
		}
	}
	return nil
}
