// Package ledgerfile persists the ledger to a single expenses.json file.
package ledgerfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/duebook-dev/duebook/internal/model"
)

// Filename is the ledger file name, resolved next to the executable by
// default.
const Filename = "expenses.json"

// Adapter loads and saves ledger snapshots against one file path. It never
// holds live ledger state; callers hand it snapshots.
type Adapter struct {
	path string
	log  zerolog.Logger
}

// New creates an Adapter for the given path.
func New(path string, log zerolog.Logger) *Adapter {
	return &Adapter{path: path, log: log}
}

// Path returns the file path the adapter operates on.
func (a *Adapter) Path() string {
	return a.path
}

// DefaultPath returns the ledger file path next to the running executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), Filename), nil
}

// Load reads the ledger file, creating it empty if absent. A file that fails
// to parse yields the default empty ledger with a warning rather than an
// error: corruption must never prevent startup. Only I/O errors are returned.
func (a *Adapter) Load() (model.Ledger, error) {
	f, err := os.OpenFile(a.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return model.Ledger{}, fmt.Errorf("opening %s: %w", a.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return model.Ledger{}, fmt.Errorf("stat %s: %w", a.path, err)
	}
	if info.Size() == 0 {
		a.log.Debug().Str("path", a.path).Msg("ledger file empty, starting fresh")
		return model.Ledger{}, nil
	}

	led, err := Decode(f)
	if err != nil {
		a.log.Warn().Err(err).Str("path", a.path).Msg("ledger file unreadable, falling back to empty ledger")
		return model.Ledger{}, nil
	}

	a.log.Debug().Str("path", a.path).Int("expenses", len(led.Expenses)).Msg("ledger loaded")
	return led, nil
}

// Save writes a snapshot to a temporary file in the target directory and
// renames it over the ledger file, so a reader always sees either the old or
// the new content. I/O errors are surfaced to the caller.
func (a *Adapter) Save(snapshot model.Ledger) error {
	dir := filepath.Dir(a.path)

	tmp, err := os.CreateTemp(dir, ".expenses-*.json")
	if err != nil {
		return fmt.Errorf("creating temp ledger file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// Best-effort cleanup when the rename never happened.
		if _, statErr := os.Stat(tmpPath); statErr == nil {
			os.Remove(tmpPath)
		}
	}()

	if err := Encode(tmp, snapshot); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp ledger file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("setting ledger file mode: %w", err)
	}
	if err := os.Rename(tmpPath, a.path); err != nil {
		return fmt.Errorf("replacing %s: %w", a.path, err)
	}

	a.log.Debug().Str("path", a.path).Int("expenses", len(snapshot.Expenses)).Msg("ledger saved")
	return nil
}
