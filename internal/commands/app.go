package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/duebook-dev/duebook/internal/config"
	"github.com/duebook-dev/duebook/internal/ledger"
	"github.com/duebook-dev/duebook/internal/ledgerfile"
	"github.com/duebook-dev/duebook/internal/logging"
)

// app wires config, logger, and the persistence adapter for one command
// invocation.
type app struct {
	cfg  *config.Config
	log  zerolog.Logger
	file *ledgerfile.Adapter
}

func newApp(opts *rootOptions) (*app, error) {
	cfgPath := opts.config
	if cfgPath == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("resolving executable path: %w", err)
		}
		cfgPath = filepath.Join(filepath.Dir(exe), "duebook.yaml")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	log := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	path := opts.file
	if path == "" {
		path = cfg.LedgerFile
	}
	if path == "" {
		path, err = ledgerfile.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	return &app{cfg: cfg, log: log, file: ledgerfile.New(path, log)}, nil
}

// openStore loads the ledger file and wraps it in a store.
func (a *app) openStore() (*ledger.Store, error) {
	led, err := a.file.Load()
	if err != nil {
		return nil, err
	}
	return ledger.NewStore(led), nil
}

// persist snapshots the store and saves the snapshot. The ledger lock is not
// held during file I/O.
func (a *app) persist(store *ledger.Store) error {
	return a.file.Save(store.Snapshot())
}

// amount renders a monetary value with the configured currency symbol, sign
// first: -$160, not $-160.
func (a *app) amount(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + a.cfg.Currency + d.Neg().String()
	}
	return a.cfg.Currency + d.String()
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}
