package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/chessplay/uciboard/internal/logging"
)

const keyEngineConfig = "engine_config"

// ErrConfigUnavailable means the embedded key/value store could not be
// opened. Load and Save degrade to environment variables and compiled-in
// defaults rather than failing the caller.
var ErrConfigUnavailable = errors.New("config: settings store unavailable")

type persistedEngineConfig struct {
	Path         string            `json:"path"`
	MoveTimeMS   int64             `json:"move_time_ms"`
	StartOptions map[string]string `json:"start_options"`
}

// Store resolves EngineConfig values from caller overrides, environment
// variables, persisted state, and compiled-in defaults (in that
// precedence order), and persists updated values back to an embedded
// key/value database for the next run. A Store with no open database is
// still safe to use: Load degrades to environment/defaults and Save
// becomes a no-op, both logged through the injected Logger.
type Store struct {
	db     *badger.DB
	logger logging.Logger
}

// Open opens (creating if necessary) the settings database at the
// platform data directory. A failure to open is not returned as an
// error from Open: the resulting Store simply has no database, and
// degrades gracefully on every subsequent call, since the store must
// never be required for the driver or Board to function.
func Open(logger logging.Logger) *Store {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		logger = logging.OrNop(logger)
		logger.Printf("config: could not resolve data directory: %v", err)
		return &Store{logger: logger}
	}
	return OpenAt(dbDir, logger)
}

// OpenAt opens the settings database at an explicit directory, bypassing
// the platform data-directory lookup. Exposed mainly so tests can point
// the store at a temporary directory.
func OpenAt(dbDir string, logger logging.Logger) *Store {
	logger = logging.OrNop(logger)

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		logger.Printf("config: %v: %v", ErrConfigUnavailable, err)
		return &Store{logger: logger}
	}

	return &Store{db: db, logger: logger}
}

// Close releases the underlying database, if one is open.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load merges, highest precedence first: the given overrides,
// environment variables (ENGINE_PATH, ENGINE_MOVETIME_MS), the last
// persisted values, and compiled-in defaults.
func (s *Store) Load(overrides EngineConfig) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	if persisted, err := s.loadPersisted(); err == nil {
		applyPersisted(&cfg, persisted)
	}

	if path := os.Getenv("ENGINE_PATH"); path != "" {
		cfg.Path = path
	}
	if ms := os.Getenv("ENGINE_MOVETIME_MS"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 {
			cfg.MoveTime = time.Duration(v) * time.Millisecond
		}
	}

	if overrides.Path != "" {
		cfg.Path = overrides.Path
	}
	if overrides.MoveTime > 0 {
		cfg.MoveTime = overrides.MoveTime
	}
	if overrides.StartOptions != nil {
		cfg.StartOptions = overrides.StartOptions
	}

	if s.db == nil {
		s.logger.Printf("config: Load degraded to environment/defaults, %v", ErrConfigUnavailable)
		return cfg, fmt.Errorf("%w", ErrConfigUnavailable)
	}
	return cfg, nil
}

// Save persists cfg to the embedded store so the next Load call sees it
// as a lower-precedence source than environment variables.
func (s *Store) Save(cfg EngineConfig) error {
	if s.db == nil {
		s.logger.Printf("config: Save skipped, %v", ErrConfigUnavailable)
		return ErrConfigUnavailable
	}

	data, err := json.Marshal(persistedEngineConfig{
		Path:         cfg.Path,
		MoveTimeMS:   cfg.MoveTime.Milliseconds(),
		StartOptions: cfg.StartOptions,
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyEngineConfig), data)
	})
}

func (s *Store) loadPersisted() (persistedEngineConfig, error) {
	var out persistedEngineConfig
	if s.db == nil {
		return out, ErrConfigUnavailable
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyEngineConfig))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	return out, err
}

func applyPersisted(cfg *EngineConfig, persisted persistedEngineConfig) {
	if persisted.Path != "" {
		cfg.Path = persisted.Path
	}
	if persisted.MoveTimeMS > 0 {
		cfg.MoveTime = time.Duration(persisted.MoveTimeMS) * time.Millisecond
	}
	if persisted.StartOptions != nil {
		cfg.StartOptions = persisted.StartOptions
	}
}
