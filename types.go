package mappings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Source provides raw mapping documents from backends (files, stdin, memory).
type Source interface {
	// Read returns the document bytes. Failures should be *ParseError with
	// ErrCodeInvalidFilename or ErrCodeCannotReadFile.
	Read(ctx context.Context) (*RawDocument, error)

	// Name identifies the source in provenance (e.g., "file:mappings.toml").
	Name() string
}

// RawDocument is an undecoded document and the format it is written in.
type RawDocument struct {
	Name   string // Base file name
	Format string // "toml", "yaml" or "json"
	Data   []byte
}

// Optional distinguishes "not set" from "zero value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}

// MarshalJSON encodes a set value as itself and an unset one as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Delay is the pause in milliseconds between a beat and the next one.
type Delay int

// Duration converts the delay to a time.Duration.
func (d Delay) Duration() time.Duration {
	return time.Duration(d) * time.Millisecond
}

// Settings is the validated, fully resolved mapping configuration.
// Values returned by the validator must be treated as read-only; use Clone
// to obtain a copy that can be modified.
type Settings struct {
	Global    GlobalSettings `json:"global"`
	Freestyle []Rhythm       `json:"freestyle,omitempty"`
}

// GlobalSettings holds device-wide timing.
type GlobalSettings struct {
	Debounce    int  `json:"debounce"`     // ms, within [MinDebounceTime, MaxDebounceTime]
	ComboWindow int  `json:"combo_window"` // ms, within [MinComboWindow, MaxComboWindow]
	Microphone  bool `json:"microphone"`
}

// Rhythm is a sequence of beats bound to a keyboard character.
type Rhythm struct {
	Character byte   `json:"character"`
	Beats     []Beat `json:"beats"`
}

// Beat is one input event and the delay that follows it.
// Delay is unset on the last beat of a rhythm.
type Beat struct {
	Input Input           `json:"input"`
	Delay Optional[Delay] `json:"delay"`
}

// Default returns a freshly allocated Settings with every value at its default.
func Default() *Settings {
	return &Settings{
		Global: GlobalSettings{
			Debounce:    MinDebounceTime,
			ComboWindow: MinComboWindow,
		},
	}
}

// HasRhythms reports whether any freestyle rhythm is configured.
func (s *Settings) HasRhythms() bool {
	return len(s.Freestyle) > 0
}

// Rhythm returns the rhythm bound to c.
func (s *Settings) Rhythm(c byte) (Rhythm, bool) {
	for _, r := range s.Freestyle {
		if r.Character == c {
			return r, true
		}
	}
	return Rhythm{}, false
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	out := &Settings{Global: s.Global}
	if s.Freestyle != nil {
		out.Freestyle = make([]Rhythm, len(s.Freestyle))
		for i, r := range s.Freestyle {
			beats := make([]Beat, len(r.Beats))
			copy(beats, r.Beats)
			out.Freestyle[i] = Rhythm{Character: r.Character, Beats: beats}
		}
	}
	return out
}

type rhythmJSON struct {
	Character string `json:"character"`
	Beats     []Beat `json:"beats"`
}

// MarshalJSON writes the character as a one-letter string.
func (r Rhythm) MarshalJSON() ([]byte, error) {
	return json.Marshal(rhythmJSON{Character: string(rune(r.Character)), Beats: r.Beats})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (r *Rhythm) UnmarshalJSON(data []byte) error {
	var raw rhythmJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Character) != 1 {
		return fmt.Errorf("rhythm character %q must be a single ASCII character", raw.Character)
	}
	r.Character = raw.Character[0]
	r.Beats = raw.Beats
	return nil
}

// Delays returns the set delays of r in order. The result has len(r.Beats)-1 entries.
func (r Rhythm) Delays() []Delay {
	var delays []Delay
	for _, b := range r.Beats {
		if d, ok := b.Delay.Get(); ok {
			delays = append(delays, d)
		}
	}
	return delays
}

// Length is the total time from the first beat to the last one.
func (r Rhythm) Length() time.Duration {
	var total time.Duration
	for _, d := range r.Delays() {
		total += d.Duration()
	}
	return total
}

// UsesMicrophone reports whether any beat needs the clap microphone.
func (r Rhythm) UsesMicrophone() bool {
	for _, b := range r.Beats {
		if b.Input.RequiresMicrophone() {
			return true
		}
	}
	return false
}
