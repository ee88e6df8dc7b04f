package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/dkbasic/mappings"
)

// DefaultSettingsPath is where the peripheral reads its settings.
const DefaultSettingsPath = "/var/lib/dkbasic/settings.json"

const lockRetryDelay = 50 * time.Millisecond

// ErrLocked is returned when another apply holds the settings lock past the context deadline.
var ErrLocked = errors.New("device: settings are locked by another apply")

// Applier writes settings snapshots to the device settings path.
type Applier struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
	now    func() time.Time
}

// NewApplier creates an Applier targeting path. An empty path means DefaultSettingsPath.
func NewApplier(path string, logger *slog.Logger) *Applier {
	if path == "" {
		path = DefaultSettingsPath
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger.With(slog.String("component", "device")),
		now:    time.Now,
	}
}

// Path returns the settings file the Applier writes.
func (a *Applier) Path() string {
	return a.path
}

// Apply transmits settings to the device. source is recorded in the snapshot
// (e.g., "file:mappings.toml" or mappings.SourceDefault).
func (a *Applier) Apply(ctx context.Context, settings *mappings.Settings, source string) error {
	snap, err := mappings.CreateSnapshot(settings,
		mappings.WithSnapshotSource(source),
		mappings.WithSnapshotTime(a.now()),
	)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(a.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	locked, err := a.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ErrLocked, ctx.Err())
		}
		return fmt.Errorf("acquire settings lock: %w", err)
	}
	if !locked {
		return ErrLocked
	}
	defer func() {
		if err := a.lock.Unlock(); err != nil {
			a.logger.Warn("failed to release settings lock", slog.String("lock", a.lock.Path()), slog.Any("error", err))
		}
	}()

	written, err := mappings.WriteSnapshot(snap, a.path)
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	a.logger.Info("settings applied",
		slog.String("path", written),
		slog.String("source", source),
		slog.Int("debounce_ms", settings.Global.Debounce),
		slog.Int("combo_window_ms", settings.Global.ComboWindow),
		slog.Int("rhythms", len(settings.Freestyle)),
	)
	return nil
}

// Current reads back the settings last applied.
func (a *Applier) Current() (*mappings.SettingsSnapshot, error) {
	return mappings.ReadSnapshot(a.path)
}
