package sourceenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromList(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		environ  []string
		expected map[string]string
	}{
		{
			name:    "basic environment variables",
			opts:    Options{},
			environ: []string{"HOST=localhost", "PORT=8080"},
			expected: map[string]string{
				"host": "localhost",
				"port": "8080",
			},
		},
		{
			name:    "double underscore as level separator",
			opts:    Options{},
			environ: []string{"LOG__LEVEL=debug", "LOG__FORMAT=json"},
			expected: map[string]string{
				"log.level":  "debug",
				"log.format": "json",
			},
		},
		{
			name:    "with prefix filtering",
			opts:    Options{Prefix: "DKBASIC_"},
			environ: []string{"DKBASIC_LOG__LEVEL=warn", "OTHER_VAR=ignored", "DKBASIC_DEVICE__PATH=/dev/dk"},
			expected: map[string]string{
				"log.level":   "warn",
				"device.path": "/dev/dk",
			},
		},
		{
			name:    "prefix case insensitive matching",
			opts:    Options{Prefix: "dkbasic_"},
			environ: []string{"DKBASIC_LOG__LEVEL=info", "DkBasic_DEVICE__PATH=/tmp/x"},
			expected: map[string]string{
				"log.level":   "info",
				"device.path": "/tmp/x",
			},
		},
		{
			name:     "prefix case sensitive matching",
			opts:     Options{Prefix: "DKBASIC_", CaseSensitive: true},
			environ:  []string{"dkbasic_LOG__LEVEL=info"},
			expected: map[string]string{},
		},
		{
			name:     "prefix only is skipped",
			opts:     Options{Prefix: "DKBASIC_"},
			environ:  []string{"DKBASIC_=x", "MALFORMED"},
			expected: map[string]string{},
		},
		{
			name:    "value containing equals sign",
			opts:    Options{},
			environ: []string{"OPTS=a=b"},
			expected: map[string]string{
				"opts": "a=b",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromList(tt.environ, tt.opts))
		})
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("DKBASIC_TEST__MARKER", "present")

	vars := Load(Options{Prefix: "DKBASIC_TEST__"})
	assert.Equal(t, "present", vars["marker"])
}
