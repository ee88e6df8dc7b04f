package mappings

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxSnapshotSize is the maximum allowed snapshot size (1MB).
const MaxSnapshotSize = 1024 * 1024

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = "1.0"

// Snapshot errors.
var (
	// ErrSnapshotTooLarge is returned when a snapshot exceeds MaxSnapshotSize.
	ErrSnapshotTooLarge = errors.New("mappings: snapshot exceeds 1MB size limit")

	// ErrNilSettings is returned when CreateSnapshot receives nil settings.
	ErrNilSettings = errors.New("mappings: settings are nil")

	// ErrUnsupportedVersion is returned when reading a snapshot with unknown version.
	ErrUnsupportedVersion = errors.New("mappings: unsupported snapshot version")
)

// supportedVersions lists snapshot format versions that can be read.
var supportedVersions = map[string]bool{
	"1.0": true,
}

// SettingsSnapshot is the payload handed to the device: the settings plus metadata.
type SettingsSnapshot struct {
	// Version is the snapshot format version (currently "1.0")
	Version string `json:"version"`

	// Timestamp is when the snapshot was created
	Timestamp time.Time `json:"timestamp"`

	// Device names the target peripheral
	Device string `json:"device"`

	// Source describes where the settings came from (e.g., "file:mappings.toml" or "default")
	Source string `json:"source"`

	Settings *Settings `json:"settings"`
}

// SnapshotOption configures snapshot creation behavior.
type SnapshotOption func(*SettingsSnapshot)

// WithSnapshotSource records where the settings came from.
func WithSnapshotSource(source string) SnapshotOption {
	return func(s *SettingsSnapshot) {
		s.Source = source
	}
}

// WithSnapshotTime overrides the creation timestamp.
func WithSnapshotTime(t time.Time) SnapshotOption {
	return func(s *SettingsSnapshot) {
		s.Timestamp = t.UTC()
	}
}

// CreateSnapshot captures settings for transmission to the device.
// The snapshot holds its own copy of the settings.
func CreateSnapshot(settings *Settings, opts ...SnapshotOption) (*SettingsSnapshot, error) {
	if settings == nil {
		return nil, ErrNilSettings
	}

	snap := &SettingsSnapshot{
		Version:   SnapshotVersion,
		Timestamp: time.Now().UTC(),
		Device:    DeviceName,
		Source:    SourceDefault,
		Settings:  settings.Clone(),
	}
	for _, opt := range opts {
		opt(snap)
	}
	return snap, nil
}

// ExpandPathWithTime expands template variables using the provided timestamp.
// Replaces all {{timestamp}} occurrences with the time formatted as 20060102-150405.
// Returns the path unchanged if no template variables are present.
func ExpandPathWithTime(template string, t time.Time) string {
	timestamp := t.UTC().Format("20060102-150405")
	return strings.ReplaceAll(template, "{{timestamp}}", timestamp)
}

// WriteSnapshot persists a snapshot to disk with atomic write semantics.
// Supports {{timestamp}} template variable in path - uses snapshot.Timestamp
// (not current time) to ensure filename matches internal metadata.
// Returns the path written.
func WriteSnapshot(snapshot *SettingsSnapshot, pathTemplate string) (string, error) {
	if snapshot == nil || snapshot.Settings == nil {
		return "", ErrNilSettings
	}

	targetPath := ExpandPathWithTime(pathTemplate, snapshot.Timestamp)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	if len(data) > MaxSnapshotSize {
		return "", ErrSnapshotTooLarge
	}

	dir := filepath.Dir(targetPath)
	if dir != "" && dir != "." {
		if mkdirErr := os.MkdirAll(dir, 0o755); mkdirErr != nil {
			return "", mkdirErr
		}
	}

	tempPath, err := generateTempFileName(targetPath)
	if err != nil {
		return "", err
	}

	var tempFileCreated bool
	defer func() {
		if tempFileCreated {
			_ = os.Remove(tempPath)
		}
	}()

	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return "", err
	}
	tempFileCreated = true

	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", err
	}

	// Rename succeeded, the temp file is now the target
	tempFileCreated = false

	return targetPath, nil
}

// ReadSnapshot loads a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) (*SettingsSnapshot, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > MaxSnapshotSize {
		return nil, ErrSnapshotTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap SettingsSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if !supportedVersions[snap.Version] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, snap.Version)
	}
	if snap.Settings == nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, ErrNilSettings)
	}
	if err := snap.Settings.Check(); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// generateTempFileName generates a unique temporary file name for atomic writes.
// Format: targetPath + ".tmp." + randomHex
func generateTempFileName(targetPath string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	suffix := hex.EncodeToString(randomBytes)
	return targetPath + ".tmp." + suffix, nil
}
