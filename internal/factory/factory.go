// Package factory wires the application together once at startup.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jdmorgan/noughts/internal/dependencies/clock"
	"github.com/jdmorgan/noughts/internal/dependencies/ident"
	"github.com/jdmorgan/noughts/internal/services/board"
	"github.com/jdmorgan/noughts/internal/services/match"
	"github.com/jdmorgan/noughts/internal/services/matchmaker"
	"github.com/jdmorgan/noughts/internal/storage"
	"github.com/jdmorgan/noughts/internal/storage/memory"
	redisstorage "github.com/jdmorgan/noughts/internal/storage/redis"
	"github.com/jdmorgan/noughts/internal/ws"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Rules mode constants
const (
	RulesStrict     = "strict"
	RulesPermissive = "permissive"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	Clock clock.Clock
	Ident ident.Generator

	Registry   *ws.Registry
	Dispatcher *ws.Dispatcher

	BoardService *board.Service
	MatchEngine  *match.Engine
	Matchmaker   *matchmaker.Service
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "redis").
	// If empty, defaults to "memory".
	StorageType string
	// RedisConfig holds Redis connection settings (required if
	// StorageType is "redis")
	RedisConfig *redisstorage.Config
	// RulesMode selects turn validation ("strict" or "permissive").
	// If empty, defaults to "strict".
	RulesMode string
	// Logger is the application logger (optional).
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	var rules board.Rules
	switch cfg.RulesMode {
	case "", RulesStrict:
		rules = board.StrictRules()
	case RulesPermissive:
		rules = board.PermissiveRules()
	default:
		return nil, errors.New("invalid RulesMode: must be 'strict' or 'permissive'")
	}

	return newWithDependencies(store, clock.New(), ident.New(), rules, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, idg ident.Generator, rules board.Rules, logger *slog.Logger) *App {
	registry := ws.NewRegistry(logger)
	dispatcher := ws.NewDispatcher(registry, logger)
	boardService := board.New(rules)
	engine := match.NewEngine(store, boardService, dispatcher, clk, logger)
	mm := matchmaker.New(store, engine, dispatcher, idg, clk, logger)

	return &App{
		Storage:      store,
		Clock:        clk,
		Ident:        idg,
		Registry:     registry,
		Dispatcher:   dispatcher,
		BoardService: boardService,
		MatchEngine:  engine,
		Matchmaker:   mm,
	}
}

// Shutdown releases live resources: all websocket handles are closed and
// a redis-backed store disconnects
func (a *App) Shutdown() {
	a.Registry.CloseAll()
	if closer, ok := a.Storage.(io.Closer); ok {
		_ = closer.Close()
	}
}
