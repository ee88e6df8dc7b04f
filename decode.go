package mappings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported document formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// DecodeDocument deserializes raw into a Document. Every structural failure
// is reported as a *ParseError with ErrCodeInvalidToml.
// In strict mode unknown keys are rejected.
func DecodeDocument(raw *RawDocument, strict bool) (*Document, error) {
	if raw == nil {
		return nil, &ParseError{Code: ErrCodeInvalidToml, Err: errors.New("no document")}
	}

	format := raw.Format
	if format == "" {
		format = FormatTOML
	}

	var doc Document
	var err error
	switch format {
	case FormatTOML:
		err = decodeTOML(raw.Data, &doc, strict)
	case FormatYAML:
		err = decodeYAML(raw.Data, &doc, strict)
	case FormatJSON:
		err = decodeJSON(raw.Data, &doc, strict)
	default:
		err = fmt.Errorf("unsupported format %q (supported: toml, yaml, json)", format)
	}
	if err == nil {
		err = doc.checkRequired()
	}
	if err != nil {
		return nil, &ParseError{Code: ErrCodeInvalidToml, Name: raw.Name, Err: err}
	}

	return &doc, nil
}

func decodeTOML(data []byte, doc *Document, strict bool) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(doc); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("parse TOML at line %d, column %d: %w", row, col, err)
		}
		return fmt.Errorf("parse TOML: %w", err)
	}
	return nil
}

func decodeYAML(data []byte, doc *Document, strict bool) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse YAML: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return fmt.Errorf("parse YAML: %w", err)
		}
		return errors.New("parse YAML: more than one document")
	}
	return nil
}

func decodeJSON(data []byte, doc *Document, strict bool) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(doc); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("parse JSON: trailing data")
	}
	return nil
}
