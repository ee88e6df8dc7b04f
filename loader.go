package mappings

import (
	"context"
	"errors"
)

// Loader reads, decodes and validates mapping documents.
// A configured Loader is safe for concurrent use.
type Loader struct {
	opts []Option
}

// NewLoader creates a Loader. Options apply to every Load.
func NewLoader(opts ...Option) *Loader {
	return &Loader{opts: append([]Option(nil), opts...)}
}

// Load reads src, decodes it and validates the result.
// Steps short-circuit on the first failure: read, name gate, decode, validate.
func (l *Loader) Load(ctx context.Context, src Source) (*Settings, error) {
	settings, _, err := l.LoadWithProvenance(ctx, src)
	return settings, err
}

// LoadWithProvenance is Load plus a record of which global values were defaulted.
func (l *Loader) LoadWithProvenance(ctx context.Context, src Source) (*Settings, *Provenance, error) {
	if src == nil {
		return nil, nil, errors.New("mappings: nil source")
	}
	o := newOptions(l.opts)

	raw, err := src.Read(ctx)
	if err != nil {
		return nil, nil, err
	}

	if o.canonicalName && raw.Name != DefaultFileName {
		return nil, nil, &ParseError{Code: ErrCodeUnexpectedFilename, Name: raw.Name}
	}

	doc, err := DecodeDocument(raw, o.strict)
	if err != nil {
		return nil, nil, err
	}

	settings, err := Validate(doc, l.opts...)
	if err != nil {
		return nil, nil, err
	}

	return settings, buildProvenance(doc, src.Name()), nil
}

// ParseBytes decodes and validates an in-memory document.
func ParseBytes(name string, data []byte, format string, opts ...Option) (*Settings, error) {
	return NewLoader(opts...).Load(context.Background(), Bytes(name, format, data))
}

type bytesSource struct {
	raw RawDocument
}

// Bytes wraps an in-memory document as a Source. An empty format means TOML.
func Bytes(name, format string, data []byte) Source {
	return &bytesSource{raw: RawDocument{Name: name, Format: format, Data: data}}
}

func (b *bytesSource) Read(ctx context.Context) (*RawDocument, error) {
	if b.raw.Name == "" {
		return nil, &ParseError{Code: ErrCodeInvalidFilename}
	}
	raw := b.raw
	return &raw, nil
}

func (b *bytesSource) Name() string {
	return "bytes:" + b.raw.Name
}
