package idsvc

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/srccircumflex/ulid-tool/internal/config"
	"github.com/srccircumflex/ulid-tool/internal/counterstore"
	pebblestore "github.com/srccircumflex/ulid-tool/internal/storage/pebble"
	"github.com/srccircumflex/ulid-tool/pkg/ulid"
)

// Info is the inspection view of a parsed identifier, one field per
// representation.
type Info struct {
	Canonical   string `json:"canonical"`
	Hex         string `json:"hex"`
	Oct         string `json:"oct"`
	Bin         string `json:"bin"`
	Int         string `json:"int"`
	UUID        string `json:"uuid"`
	TimestampMs uint64 `json:"timestampMs"`
	Time        string `json:"time"`
	Randomness  string `json:"randomness"`
}

// Service resolves the configured strategy and serves generation and
// inspection requests. A Service is safe for use from a single goroutine;
// the HTTP server serializes access with a mutex of its own.
type Service struct {
	strategy     ulid.Strategy
	slidStrategy ulid.SLIDStrategy
	local        *ulid.LocalLexical
	db           *pebblestore.DB
}

// Open builds the strategy named by cfg and acquires its backing state.
// Callers must Close the service to flush the file-scoped counter.
func Open(cfg config.Config) (*Service, error) {
	s := &Service{}
	switch cfg.Strategy {
	case config.StrategyDefault:
		s.strategy = ulid.NewDefault(nil)
	case config.StrategyRuntime:
		s.strategy = ulid.NewRuntimeLexical()
	case config.StrategyLocal:
		store, err := s.openStore(cfg)
		if err != nil {
			return nil, err
		}
		local, err := ulid.OpenLocalLexical(store)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.local = local
		s.strategy = local
	case config.StrategyEnv:
		s.strategy = ulid.NewEnvLexical()
	case config.StrategyThreadEnv:
		s.strategy = ulid.NewThreadEnvLexical(nil)
	case config.StrategyShortEnv:
		s.strategy = ulid.NewShortEnvLexical()
	case config.StrategySLID:
		s.strategy = ulid.NewDefault(nil)
	default:
		return nil, fmt.Errorf("idsvc: unknown strategy %q", cfg.Strategy)
	}
	s.slidStrategy = ulid.NewSLIDLexical()
	return s, nil
}

func (s *Service) openStore(cfg config.Config) (ulid.CounterStore, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}
	switch cfg.CounterBackend {
	case config.BackendFile:
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, err
		}
		return counterstore.NewFile(filepath.Join(dataDir, "counter")), nil
	case config.BackendPebble:
		fsync := pebblestore.FsyncModeAlways
		switch cfg.Fsync {
		case "interval":
			fsync = pebblestore.FsyncModeInterval
		case "never":
			fsync = pebblestore.FsyncModeNever
		}
		db, err := pebblestore.Open(pebblestore.Options{
			DataDir:       filepath.Join(dataDir, "counters"),
			Fsync:         fsync,
			FsyncInterval: cfg.FsyncInterval(),
		})
		if err != nil {
			return nil, err
		}
		s.db = db
		return counterstore.NewPebble(db), nil
	default:
		return nil, fmt.Errorf("idsvc: unknown counter backend %q", cfg.CounterBackend)
	}
}

// Close flushes the file-scoped counter and releases storage handles.
func (s *Service) Close() error {
	var firstErr error
	if s.local != nil {
		firstErr = s.local.Close()
		s.local = nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.db = nil
	}
	return firstErr
}

// Generate emits count identifiers with the configured strategy.
func (s *Service) Generate(count int) ([]ulid.ULID, error) {
	if count < 1 {
		count = 1
	}
	ids := make([]ulid.ULID, 0, count)
	for i := 0; i < count; i++ {
		id, err := ulid.New(s.strategy)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GenerateAt emits count identifiers with the timestamp part fixed to t.
func (s *Service) GenerateAt(t time.Time, count int) ([]ulid.ULID, error) {
	if count < 1 {
		count = 1
	}
	ids := make([]ulid.ULID, 0, count)
	for i := 0; i < count; i++ {
		id, err := ulid.NewAt(t, s.strategy)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GenerateSLID emits count short identifiers.
func (s *Service) GenerateSLID(count int) ([]ulid.SLID, error) {
	if count < 1 {
		count = 1
	}
	ids := make([]ulid.SLID, 0, count)
	for i := 0; i < count; i++ {
		id, err := ulid.NewSLID(s.slidStrategy)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Inspect parses repr in any accepted representation and returns all views.
func (s *Service) Inspect(repr string) (Info, error) {
	id, err := ulid.ParseAny(repr)
	if err != nil {
		return Info{}, err
	}
	return Describe(id), nil
}

// Describe builds the inspection view for id.
func Describe(id ulid.ULID) Info {
	return Info{
		Canonical:   id.String(),
		Hex:         id.Hex(),
		Oct:         id.Oct(),
		Bin:         id.Bin(),
		Int:         id.Big().String(),
		UUID:        id.UUID().String(),
		TimestampMs: id.Timestamp(),
		Time:        id.Time().Format("2006-01-02T15:04:05.000Z07:00"),
		Randomness:  id.Randomness().String(),
	}
}

// Sequence returns count consecutive identifiers starting at repr, descending
// over the same elements when reversed is set.
func (s *Service) Sequence(repr string, count int, reversed bool) ([]ulid.ULID, error) {
	start, err := ulid.ParseAny(repr)
	if err != nil {
		return nil, err
	}
	seq := ulid.NewSequence(start, count)
	if reversed {
		seq = seq.Reversed()
	}
	return seq.Collect(), nil
}
