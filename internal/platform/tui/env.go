package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sumfall/internal/config"
	"github.com/vovakirdan/sumfall/internal/progression"
	"github.com/vovakirdan/sumfall/internal/storage"
)

// Env bundles the collaborators shared by every screen of one player.
type Env struct {
	Config   config.Config
	Scores   *storage.Store // finished-game history, nil when unavailable
	Slot     *storage.SaveSlot
	Profiles *storage.ProfileRepo
	Tracker  *progression.Tracker
	Logger   *log.Logger
	User     string
}

// NewEnv wires storage and progression for one player. A nil store falls
// back to in-memory persistence for the process lifetime. user scopes the
// profile and save slot keys; empty means the local player.
func NewEnv(cfg config.Config, store *storage.Store, user string, logger *log.Logger) Env {
	if logger == nil {
		logger = log.Default()
	}

	var kv storage.KV = storage.NewMemoryKV()
	if store != nil {
		kv = store
	}

	profiles := storage.NewProfileRepo(kv, storage.UserKey(storage.ProfileKey, user), logger)
	tracker := progression.NewTracker(profiles.Load(), progression.NewCatalog(cfg), profiles, logger)

	return Env{
		Config:   cfg,
		Scores:   store,
		Slot:     storage.NewSaveSlot(kv, storage.UserKey(storage.SaveGameKey, user), logger),
		Profiles: profiles,
		Tracker:  tracker,
		Logger:   logger,
		User:     user,
	}
}
