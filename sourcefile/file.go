package sourcefile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dkbasic/mappings"
	"github.com/dkbasic/mappings/internal/normalize"
)

// Options configures file source behavior.
type Options struct {
	// Format: "toml", "yaml", or "json". Auto-detected from extension if empty.
	Format string
}

type fileSource struct {
	path string
	opts Options
}

// New creates a file-based mapping source.
func New(path string, opts Options) mappings.Source {
	return &fileSource{
		path: path,
		opts: opts,
	}
}

// Parse reads, decodes and validates the mapping file at path.
func Parse(ctx context.Context, path string, opts ...mappings.Option) (*mappings.Settings, error) {
	return mappings.NewLoader(opts...).Load(ctx, New(path, Options{}))
}

// Read checks that the path names a file and reads it as UTF-8 text.
func (f *fileSource) Read(ctx context.Context) (*mappings.RawDocument, error) {
	name, ok := fileName(f.path)
	if !ok {
		return nil, &mappings.ParseError{Code: mappings.ErrCodeInvalidFilename}
	}

	if err := ctx.Err(); err != nil {
		return nil, &mappings.ParseError{Code: mappings.ErrCodeCannotReadFile, Name: name, Err: err}
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, &mappings.ParseError{Code: mappings.ErrCodeCannotReadFile, Name: name, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &mappings.ParseError{
			Code: mappings.ErrCodeCannotReadFile,
			Name: name,
			Err:  errors.New("file is not valid UTF-8"),
		}
	}

	format := normalize.Format(f.opts.Format)
	if format == "" {
		format = normalize.FormatFromPath(f.path)
	}

	return &mappings.RawDocument{Name: name, Format: format, Data: data}, nil
}

// Name returns a human-readable identifier for this source.
func (f *fileSource) Name() string {
	if name, ok := fileName(f.path); ok {
		return "file:" + name
	}
	return "file:" + f.path
}

// fileName returns the final path element. Paths that end in "." or "..",
// are a bare root, or are not valid UTF-8 have no file name.
func fileName(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	base := filepath.Base(path)
	switch {
	case base == "." || base == "..":
		return "", false
	case strings.Trim(base, string(filepath.Separator)) == "":
		return "", false
	case !utf8.ValidString(base):
		return "", false
	}
	return base, true
}
