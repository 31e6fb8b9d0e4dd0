package tui

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sumfall/internal/config"
	"github.com/vovakirdan/sumfall/internal/storage"
)

// Players hands out one Env per user name. Connections of the same user
// share its tracker and save slot, so their profile writes do not race.
type Players struct {
	cfg    config.Config
	store  *storage.Store
	logger *log.Logger

	mu   sync.Mutex
	envs map[string]Env
}

// NewPlayers creates an empty registry over a shared store, which may be nil.
func NewPlayers(cfg config.Config, store *storage.Store, logger *log.Logger) *Players {
	if logger == nil {
		logger = log.Default()
	}
	return &Players{
		cfg:    cfg,
		store:  store,
		logger: logger,
		envs:   make(map[string]Env),
	}
}

// Env returns the environment of user, building it on first use.
func (p *Players) Env(user string) Env {
	p.mu.Lock()
	defer p.mu.Unlock()

	if env, ok := p.envs[user]; ok {
		return env
	}
	env := NewEnv(p.cfg, p.store, user, p.logger.With("user", user))
	p.envs[user] = env
	return env
}

// Len returns the number of users seen so far.
func (p *Players) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.envs)
}
