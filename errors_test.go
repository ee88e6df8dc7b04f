package mappings

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "invalid filename",
			err:  &ParseError{Code: ErrCodeInvalidFilename},
			want: "mappings: path has no file name",
		},
		{
			name: "cannot read file wraps cause",
			err:  &ParseError{Code: ErrCodeCannotReadFile, Name: "mappings.toml", Err: fs.ErrNotExist},
			want: `mappings: cannot read file "mappings.toml": file does not exist`,
		},
		{
			name: "debounce with path",
			err:  &ParseError{Code: ErrCodeInvalidDebounce, Path: "global.debounce", Value: 5},
			want: "mappings: global.debounce: debounce time 5 is outside 10..500 ms",
		},
		{
			name: "invalid beat",
			err:  &ParseError{Code: ErrCodeInvalidBeat, Beat: "XYZ", Character: '$'},
			want: `mappings: rhythm '$': unknown beat "XYZ"`,
		},
		{
			name: "too few delays",
			err:  &ParseError{Code: ErrCodeTooFewDelays, Character: 'a'},
			want: "mappings: rhythm 'a' has too few delays for its beats",
		},
		{
			name: "unknown code falls back to code",
			err:  &ParseError{Code: "something_else"},
			want: "mappings: something_else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error()\ngot:  %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestParseError_IsMatchesCode(t *testing.T) {
	err := error(&ParseError{Code: ErrCodeInvalidDelay, Value: 9000, Character: 'x'})

	if !errors.Is(err, ErrInvalidDelay) {
		t.Error("errors.Is(err, ErrInvalidDelay) = false, want true")
	}
	if errors.Is(err, ErrInvalidBeat) {
		t.Error("errors.Is(err, ErrInvalidBeat) = true, want false")
	}

	var perr *ParseError
	if !errors.As(err, &perr) || perr.Value != 9000 {
		t.Errorf("errors.As did not expose payload: %+v", perr)
	}
}

func TestParseError_Unwrap(t *testing.T) {
	err := &ParseError{Code: ErrCodeCannotReadFile, Name: "mappings.toml", Err: fs.ErrPermission}

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is(err, fs.ErrPermission) = false, want true")
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &ParseError{Code: ErrCodeEmptyRhythm})

	if got := CodeOf(wrapped); got != ErrCodeEmptyRhythm {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeEmptyRhythm)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %q, want empty", got)
	}
}

func TestValidationError_Error_SingleError(t *testing.T) {
	ve := &ValidationError{
		Errors: []*ParseError{
			{Code: ErrCodeEmptyRhythm, Path: "freestyle[0].beats", Character: 'a'},
		},
	}

	got := ve.Error()
	want := "mappings validation failed: 1 error\n  - freestyle[0].beats: rhythm 'a' has no beats (empty_rhythm)"

	if got != want {
		t.Errorf("ValidationError.Error() with single error\ngot:  %q\nwant: %q", got, want)
	}
}

func TestValidationError_Error_MultipleErrors(t *testing.T) {
	ve := &ValidationError{
		Errors: []*ParseError{
			{Code: ErrCodeInvalidDebounce, Path: "global.debounce", Value: 1},
			{Code: ErrCodeInvalidComboWindow, Path: "global.combo_window", Value: 1},
			{Code: ErrCodeInvalidBeat, Path: "freestyle[0].beats[0]", Beat: "blb", Character: 'q'},
		},
	}

	got := ve.Error()

	if !strings.HasPrefix(got, "mappings validation failed: 3 errors\n") {
		t.Errorf("ValidationError.Error() header incorrect\ngot: %q", got)
	}

	expectedErrors := []string{
		"  - global.debounce: debounce time 1 is outside 10..500 ms (invalid_debounce_time)",
		"  - global.combo_window: combo window 1 is outside 100..5000 ms (invalid_combo_window)",
		`  - freestyle[0].beats[0]: rhythm 'q': unknown beat "blb" (invalid_beat)`,
	}

	for _, expected := range expectedErrors {
		if !strings.Contains(got, expected) {
			t.Errorf("ValidationError.Error() missing expected error\ngot:  %q\nwant to contain: %q", got, expected)
		}
	}

	if strings.HasSuffix(got, "\n") {
		t.Error("ValidationError.Error() should not have a trailing newline")
	}
}

func TestValidationError_Error_NoErrors(t *testing.T) {
	ve := &ValidationError{}

	got := ve.Error()
	want := "mappings validation failed: no errors"

	if got != want {
		t.Errorf("ValidationError.Error() with no errors\ngot:  %q\nwant: %q", got, want)
	}
	if ve.First() != nil {
		t.Error("First() on empty ValidationError should be nil")
	}
}

func TestValidationError_UnwrapExposesEachError(t *testing.T) {
	ve := &ValidationError{
		Errors: []*ParseError{
			{Code: ErrCodeInvalidDebounce},
			{Code: ErrCodeTooManyDelays},
		},
	}

	if !errors.Is(ve, ErrTooManyDelays) {
		t.Error("errors.Is(ve, ErrTooManyDelays) = false, want true")
	}
	if errors.Is(ve, ErrInvalidDelay) {
		t.Error("errors.Is(ve, ErrInvalidDelay) = true, want false")
	}
	if ve.First().Code != ErrCodeInvalidDebounce {
		t.Errorf("First().Code = %q, want %q", ve.First().Code, ErrCodeInvalidDebounce)
	}
}
