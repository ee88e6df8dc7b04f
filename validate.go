package mappings

import "fmt"

// Option configures validation and loading using the functional options pattern.
type Option func(*options)

type options struct {
	collectAll    bool
	strict        bool
	canonicalName bool
	micPolicy     MicrophonePolicy
}

func newOptions(opts []Option) options {
	o := options{micPolicy: MicrophoneUnrestricted}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CollectAll reports every failure as a *ValidationError instead of stopping at the first.
func CollectAll() Option {
	return func(o *options) {
		o.collectAll = true
	}
}

// Strict rejects unknown document keys. Default: false.
func Strict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// RequireCanonicalName rejects files not named DefaultFileName.
func RequireCanonicalName() Option {
	return func(o *options) {
		o.canonicalName = true
	}
}

// WithMicrophonePolicy selects how MIC beats relate to global.microphone.
func WithMicrophonePolicy(p MicrophonePolicy) Option {
	return func(o *options) {
		o.micPolicy = p
	}
}

// Validate resolves doc into Settings.
// In the default fail-fast mode the returned error is a *ParseError; with
// CollectAll it is a *ValidationError.
func Validate(doc *Document, opts ...Option) (*Settings, error) {
	if doc == nil {
		doc = &Document{}
	}
	if err := doc.checkRequired(); err != nil {
		return nil, &ParseError{Code: ErrCodeInvalidToml, Err: err}
	}
	o := newOptions(opts)
	v := &validator{collectAll: o.collectAll}

	global, ok := v.parseGlobal(doc.Global)
	if !ok && !v.collectAll {
		return nil, v.result()
	}

	freestyle, ok := v.parseFreestyle(doc.Freestyle)
	if !ok && !v.collectAll {
		return nil, v.result()
	}

	settings := &Settings{Global: global, Freestyle: freestyle}
	for _, err := range o.micPolicy.check(settings) {
		if !v.fail(err) {
			break
		}
	}

	if len(v.errs) > 0 {
		return nil, v.result()
	}
	return settings, nil
}

// validator records failures in precedence order.
type validator struct {
	collectAll bool
	errs       []*ParseError
}

// fail records err and reports whether validation should continue.
func (v *validator) fail(err *ParseError) bool {
	v.errs = append(v.errs, err)
	return v.collectAll
}

func (v *validator) result() error {
	if !v.collectAll {
		return v.errs[0]
	}
	return &ValidationError{Errors: v.errs}
}

func (v *validator) parseGlobal(doc *GlobalDocument) (GlobalSettings, bool) {
	settings := Default().Global
	if doc == nil {
		return settings, true
	}

	ok := true
	if doc.Debounce != nil {
		if d := *doc.Debounce; d < MinDebounceTime || d > MaxDebounceTime {
			ok = false
			if !v.fail(&ParseError{Code: ErrCodeInvalidDebounce, Path: "global.debounce", Value: d}) {
				return settings, false
			}
		} else {
			settings.Debounce = int(d)
		}
	}

	if doc.ComboWindow != nil {
		if w := *doc.ComboWindow; w < MinComboWindow || w > MaxComboWindow {
			ok = false
			if !v.fail(&ParseError{Code: ErrCodeInvalidComboWindow, Path: "global.combo_window", Value: w}) {
				return settings, false
			}
		} else {
			settings.ComboWindow = int(w)
		}
	}

	if doc.Microphone != nil {
		settings.Microphone = *doc.Microphone
	}

	return settings, ok
}

func (v *validator) parseFreestyle(docs []RhythmDocument) ([]Rhythm, bool) {
	if docs == nil {
		return nil, true
	}

	rhythms := make([]Rhythm, 0, len(docs))
	ok := true
	for i := range docs {
		rhythm, rok := v.parseRhythm(i, &docs[i])
		if !rok {
			ok = false
			if !v.collectAll {
				return nil, false
			}
			continue
		}
		rhythms = append(rhythms, rhythm)
	}
	return rhythms, ok
}

// parseRhythm checks character, then non-empty, then count, then beats, then delays.
func (v *validator) parseRhythm(index int, doc *RhythmDocument) (Rhythm, bool) {
	path := fmt.Sprintf("freestyle[%d]", index)
	char := rune(*doc.Character)
	beats := *doc.Beats
	delays := *doc.Delays

	if char > 0x7F {
		v.fail(&ParseError{Code: ErrCodeInvalidCharacter, Path: path + ".character", Character: char})
		return Rhythm{}, false
	}

	if len(beats) == 0 {
		v.fail(&ParseError{Code: ErrCodeEmptyRhythm, Path: path + ".beats", Character: char})
		return Rhythm{}, false
	}

	ok := true
	switch want := len(delays) + 1; {
	case len(beats) < want:
		ok = false
		if !v.fail(&ParseError{Code: ErrCodeTooFewDelays, Path: path + ".delays", Character: char}) {
			return Rhythm{}, false
		}
	case len(beats) > want:
		ok = false
		if !v.fail(&ParseError{Code: ErrCodeTooManyDelays, Path: path + ".delays", Character: char}) {
			return Rhythm{}, false
		}
	}

	inputs := make([]Input, len(beats))
	for i, token := range beats {
		in, found := LookupInput(token)
		if !found {
			ok = false
			err := &ParseError{Code: ErrCodeInvalidBeat, Path: fmt.Sprintf("%s.beats[%d]", path, i), Beat: token, Character: char}
			if !v.fail(err) {
				return Rhythm{}, false
			}
			continue
		}
		inputs[i] = in
	}

	for i, d := range delays {
		if d < MinDebounceTime || d > MaxDebounceTime {
			ok = false
			err := &ParseError{Code: ErrCodeInvalidDelay, Path: fmt.Sprintf("%s.delays[%d]", path, i), Value: d, Character: char}
			if !v.fail(err) {
				return Rhythm{}, false
			}
		}
	}

	if !ok {
		return Rhythm{}, false
	}

	return Rhythm{Character: byte(char), Beats: pairBeats(inputs, delays)}, true
}

// pairBeats pairs inputs[i] with delays[i]; the last input gets no delay.
// len(inputs) must equal len(delays)+1.
func pairBeats(inputs []Input, delays []int64) []Beat {
	beats := make([]Beat, len(inputs))
	for i, in := range inputs {
		beats[i] = Beat{Input: in}
		if i < len(delays) {
			beats[i].Delay = Some(Delay(delays[i]))
		}
	}
	return beats
}

// Check re-runs validation over resolved settings, such as ones read back
// from a snapshot. Only the last beat of each rhythm may lack a delay.
func (s *Settings) Check() error {
	doc := &Document{
		Global: &GlobalDocument{
			Debounce:    ptrTo(int64(s.Global.Debounce)),
			ComboWindow: ptrTo(int64(s.Global.ComboWindow)),
			Microphone:  ptrTo(s.Global.Microphone),
		},
		Freestyle: make([]RhythmDocument, len(s.Freestyle)),
	}
	for i, r := range s.Freestyle {
		char := Character(r.Character)
		beats := make([]string, len(r.Beats))
		delays := make([]int64, 0, len(r.Beats))
		for j, b := range r.Beats {
			beats[j] = b.Input.Token()
			if d, ok := b.Delay.Get(); ok {
				delays = append(delays, int64(d))
			}
		}
		doc.Freestyle[i] = RhythmDocument{Character: &char, Beats: &beats, Delays: &delays}
	}

	if _, err := Validate(doc); err != nil {
		return err
	}

	for i, r := range s.Freestyle {
		if last := r.Beats[len(r.Beats)-1]; last.Delay.Set {
			return &ParseError{
				Code:      ErrCodeTooFewDelays,
				Path:      fmt.Sprintf("freestyle[%d].beats[%d]", i, len(r.Beats)-1),
				Character: rune(r.Character),
			}
		}
	}
	return nil
}

func ptrTo[T any](v T) *T {
	return &v
}
