package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skybird/internal/config"
	"github.com/vovakirdan/skybird/internal/leaderboard"
	"github.com/vovakirdan/skybird/internal/storage"
)

// Leaderboard backends accepted by --store.
const (
	storeGdata  = "gdata"
	storeSQLite = "sqlite"
	storeMemory = "memory"
)

// gdataApp is the application name of the local gdata store.
const gdataApp = "skybird"

// openStore opens the run history database. Failure is not fatal: the game
// still works, it just forgets past runs.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openBoard opens the leaderboard on the backend chosen by --store.
// store may be nil; the sqlite backend then falls back to memory.
func openBoard(cfg config.SkybirdConfig, store *storage.Store, logger *log.Logger) (*leaderboard.Board, error) {
	var kv leaderboard.KV

	switch flagStore {
	case storeGdata:
		g, err := leaderboard.OpenGdata(gdataApp)
		if err != nil {
			logger.Warn("could not open local data store, scores will not be kept", "error", err)
			kv = leaderboard.NewMemoryKV()
		} else {
			kv = g
		}
	case storeSQLite:
		if store == nil {
			logger.Warn("no database, scores will not be kept")
			kv = leaderboard.NewMemoryKV()
		} else {
			kv = store
		}
	case storeMemory:
		kv = leaderboard.NewMemoryKV()
	default:
		return nil, fmt.Errorf("unknown store %q (want %s, %s or %s)", flagStore, storeGdata, storeSQLite, storeMemory)
	}

	return leaderboard.Open(kv,
		leaderboard.WithLogger(logger),
		leaderboard.WithLimit(cfg.Leaderboard.Size),
		leaderboard.WithKey(cfg.Leaderboard.Key),
	), nil
}
