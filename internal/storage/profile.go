package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sumfall/internal/progression"
)

// ProfileRepo persists the player profile as JSON under one key.
type ProfileRepo struct {
	kv     KV
	key    string
	logger *log.Logger
}

var _ progression.ProfileSaver = (*ProfileRepo)(nil)

// NewProfileRepo creates a profile repository stored under key in kv.
func NewProfileRepo(kv KV, key string, logger *log.Logger) *ProfileRepo {
	if logger == nil {
		logger = log.Default()
	}
	return &ProfileRepo{kv: kv, key: key, logger: logger}
}

// Load returns the stored profile. Missing or corrupt data yields an empty
// profile; corruption is logged.
func (r *ProfileRepo) Load() progression.Profile {
	data, err := r.kv.Get(r.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.Warn("failed to read profile", "key", r.key, "error", err)
		}
		return progression.NewProfile()
	}

	var p progression.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		r.logger.Warn("ignoring corrupt profile", "key", r.key, "error", err)
		return progression.NewProfile()
	}
	return p.Clone()
}

// SaveProfile stores the profile.
func (r *ProfileRepo) SaveProfile(p progression.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("storage: encode profile: %w", err)
	}
	return r.kv.Put(r.key, data)
}

// Reset removes the stored profile.
func (r *ProfileRepo) Reset() error {
	return r.kv.Delete(r.key)
}
