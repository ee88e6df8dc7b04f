package mappings

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for parse failures.
const (
	ErrCodeInvalidFilename    = "invalid_filename"
	ErrCodeUnexpectedFilename = "unexpected_filename"
	ErrCodeCannotReadFile     = "cannot_read_file"
	ErrCodeInvalidToml        = "invalid_toml"
	ErrCodeInvalidDebounce    = "invalid_debounce_time"
	ErrCodeInvalidComboWindow = "invalid_combo_window"
	ErrCodeInvalidCharacter   = "invalid_character"
	ErrCodeInvalidBeat        = "invalid_beat"
	ErrCodeInvalidDelay       = "invalid_delay"
	ErrCodeEmptyRhythm        = "empty_rhythm"
	ErrCodeTooFewDelays       = "too_few_delays"
	ErrCodeTooManyDelays      = "too_many_delays"
	ErrCodeMicrophoneDisabled = "microphone_disabled"
)

// Sentinels for errors.Is. Matching compares codes only.
var (
	ErrInvalidFilename    = &ParseError{Code: ErrCodeInvalidFilename}
	ErrUnexpectedFilename = &ParseError{Code: ErrCodeUnexpectedFilename}
	ErrCannotReadFile     = &ParseError{Code: ErrCodeCannotReadFile}
	ErrInvalidToml        = &ParseError{Code: ErrCodeInvalidToml}
	ErrInvalidDebounce    = &ParseError{Code: ErrCodeInvalidDebounce}
	ErrInvalidComboWindow = &ParseError{Code: ErrCodeInvalidComboWindow}
	ErrInvalidCharacter   = &ParseError{Code: ErrCodeInvalidCharacter}
	ErrInvalidBeat        = &ParseError{Code: ErrCodeInvalidBeat}
	ErrInvalidDelay       = &ParseError{Code: ErrCodeInvalidDelay}
	ErrEmptyRhythm        = &ParseError{Code: ErrCodeEmptyRhythm}
	ErrTooFewDelays       = &ParseError{Code: ErrCodeTooFewDelays}
	ErrTooManyDelays      = &ParseError{Code: ErrCodeTooManyDelays}
	ErrMicrophoneDisabled = &ParseError{Code: ErrCodeMicrophoneDisabled}
)

// ParseError is a single terminal failure while turning a document into Settings.
// Only the payload fields relevant to Code are populated.
type ParseError struct {
	Code      string
	Path      string // Document path (e.g., "freestyle[1].delays[0]")
	Name      string // File name for file-level errors
	Value     int64  // Offending number for range errors
	Beat      string // Offending beat token
	Character rune   // Rhythm the failure belongs to
	Err       error  // Underlying decoder or I/O error
}

// Error formats the failure as a single line.
func (e *ParseError) Error() string {
	var msg string
	switch e.Code {
	case ErrCodeInvalidFilename:
		msg = "path has no file name"
	case ErrCodeUnexpectedFilename:
		msg = fmt.Sprintf("file %q is not named %s", e.Name, DefaultFileName)
	case ErrCodeCannotReadFile:
		msg = fmt.Sprintf("cannot read file %q", e.Name)
	case ErrCodeInvalidToml:
		msg = "invalid document"
	case ErrCodeInvalidDebounce:
		msg = fmt.Sprintf("debounce time %d is outside %d..%d ms", e.Value, MinDebounceTime, MaxDebounceTime)
	case ErrCodeInvalidComboWindow:
		msg = fmt.Sprintf("combo window %d is outside %d..%d ms", e.Value, MinComboWindow, MaxComboWindow)
	case ErrCodeInvalidCharacter:
		msg = fmt.Sprintf("character %q is not ASCII", e.Character)
	case ErrCodeInvalidBeat:
		msg = fmt.Sprintf("rhythm %q: unknown beat %q", e.Character, e.Beat)
	case ErrCodeInvalidDelay:
		msg = fmt.Sprintf("rhythm %q: delay %d is outside %d..%d ms", e.Character, e.Value, MinDebounceTime, MaxDebounceTime)
	case ErrCodeEmptyRhythm:
		msg = fmt.Sprintf("rhythm %q has no beats", e.Character)
	case ErrCodeTooFewDelays:
		msg = fmt.Sprintf("rhythm %q has too few delays for its beats", e.Character)
	case ErrCodeTooManyDelays:
		msg = fmt.Sprintf("rhythm %q has too many delays for its beats", e.Character)
	case ErrCodeMicrophoneDisabled:
		msg = fmt.Sprintf("rhythm %q uses MIC but global.microphone is not enabled", e.Character)
	default:
		msg = e.Code
	}

	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "mappings: " + msg
}

// Unwrap returns the underlying decoder or I/O error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *ParseError with the same code.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the code of the first *ParseError in err's chain, or "".
func CodeOf(err error) string {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ""
}

// ValidationError aggregates every failure found in accumulate mode.
// Errors are ordered by precedence; Errors[0] is what fail-fast mode reports.
type ValidationError struct {
	Errors []*ParseError
}

// Error formats validation errors as a multi-line message.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "mappings validation failed: no errors"
	}

	var b strings.Builder
	if len(e.Errors) == 1 {
		b.WriteString("mappings validation failed: 1 error\n")
	} else {
		fmt.Fprintf(&b, "mappings validation failed: %d errors\n", len(e.Errors))
	}

	for _, pe := range e.Errors {
		fmt.Fprintf(&b, "  - %s (%s)\n", strings.TrimPrefix(pe.Error(), "mappings: "), pe.Code)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, pe := range e.Errors {
		errs[i] = pe
	}
	return errs
}

// First returns the highest-precedence failure, or nil.
func (e *ValidationError) First() *ParseError {
	if len(e.Errors) == 0 {
		return nil
	}
	return e.Errors[0]
}
