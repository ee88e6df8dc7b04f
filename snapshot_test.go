package mappings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSnapshot(t *testing.T) {
	settings := sampleSettings()
	at := time.Date(2026, 5, 4, 3, 2, 1, 0, time.FixedZone("X", 3600))

	snap, err := CreateSnapshot(settings, WithSnapshotSource("file:mappings.toml"), WithSnapshotTime(at))
	require.NoError(t, err)

	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.Equal(t, DeviceName, snap.Device)
	assert.Equal(t, "file:mappings.toml", snap.Source)
	assert.Equal(t, time.UTC, snap.Timestamp.Location())
	assert.True(t, snap.Timestamp.Equal(at))
	assert.Equal(t, settings, snap.Settings)

	settings.Freestyle[0].Beats[0].Input = FrontRightBongo
	assert.Equal(t, BackLeftBongo, snap.Settings.Freestyle[0].Beats[0].Input, "snapshot keeps its own copy")
}

func TestCreateSnapshot_Defaults(t *testing.T) {
	snap, err := CreateSnapshot(Default())
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, snap.Source)

	_, err = CreateSnapshot(nil)
	require.ErrorIs(t, err, ErrNilSettings)
}

func TestWriteAndReadSnapshot(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	snap, err := CreateSnapshot(sampleSettings(), WithSnapshotTime(at))
	require.NoError(t, err)

	path, err := WriteSnapshot(snap, filepath.Join(dir, "nested", "settings-{{timestamp}}.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "settings-20260102-030405.json"), path)

	got, err := ReadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, snap.Settings, got.Settings)
	assert.True(t, got.Timestamp.Equal(at))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".tmp."), "temp file left behind: %s", e.Name())
	}
}

func TestWriteSnapshot_Nil(t *testing.T) {
	_, err := WriteSnapshot(nil, filepath.Join(t.TempDir(), "x.json"))
	require.ErrorIs(t, err, ErrNilSettings)
}

func TestReadSnapshot_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadSnapshot(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	badVersion := filepath.Join(dir, "version.json")
	require.NoError(t, os.WriteFile(badVersion, []byte(`{"version":"9.9","settings":{"global":{}}}`), 0o644))
	_, err = ReadSnapshot(badVersion)
	require.ErrorIs(t, err, ErrUnsupportedVersion)

	noSettings := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(noSettings, []byte(`{"version":"1.0"}`), 0o644))
	_, err = ReadSnapshot(noSettings)
	require.ErrorIs(t, err, ErrNilSettings)

	outOfRange := filepath.Join(dir, "debounce.json")
	require.NoError(t, os.WriteFile(outOfRange, []byte(`{"version":"1.0","settings":{"global":{"debounce":1,"combo_window":100}}}`), 0o644))
	_, err = ReadSnapshot(outOfRange)
	require.ErrorIs(t, err, ErrInvalidDebounce)

	badPairing := filepath.Join(dir, "pairing.json")
	require.NoError(t, os.WriteFile(badPairing, []byte(`{"version":"1.0","settings":{"global":{"debounce":10,"combo_window":100},`+
		`"freestyle":[{"character":"a","beats":[{"input":"BLB","delay":null},{"input":"MIC","delay":150}]}]}}`), 0o644))
	_, err = ReadSnapshot(badPairing)
	require.ErrorIs(t, err, ErrTooFewDelays)

	garbage := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(garbage, []byte(`not json`), 0o644))
	_, err = ReadSnapshot(garbage)
	require.Error(t, err)
}

func TestExpandPathWithTime(t *testing.T) {
	at := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "/var/lib/dk/20261018-093000.json", ExpandPathWithTime("/var/lib/dk/{{timestamp}}.json", at))
	assert.Equal(t, "/var/lib/dk/settings.json", ExpandPathWithTime("/var/lib/dk/settings.json", at))
}
