package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sumfall/internal/games/sumfall"
)

// Fixed keys. Per-user variants append "." and the user name.
const (
	SaveGameKey = "sumfall.savegame"
	ProfileKey  = "sumfall.profile"
)

// UserKey scopes a fixed key to a user. An empty user yields the key itself.
func UserKey(key, user string) string {
	if user == "" {
		return key
	}
	return key + "." + user
}

// SaveSlot holds at most one saved game. Loading consumes the save.
type SaveSlot struct {
	kv     KV
	key    string
	logger *log.Logger
	now    func() time.Time
}

// NewSaveSlot creates a save slot stored under key in kv.
func NewSaveSlot(kv KV, key string, logger *log.Logger) *SaveSlot {
	if logger == nil {
		logger = log.Default()
	}
	return &SaveSlot{kv: kv, key: key, logger: logger, now: time.Now}
}

// Save captures the session and overwrites any previous save.
func (s *SaveSlot) Save(session *sumfall.Session) error {
	return s.SaveSnapshot(session.Snapshot(s.now()))
}

// SaveSnapshot stores a snapshot, overwriting any previous save.
func (s *SaveSlot) SaveSnapshot(snap sumfall.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("storage: encode save: %w", err)
	}
	if err := s.kv.Put(s.key, data); err != nil {
		return err
	}
	s.logger.Debug("game saved", "key", s.key, "session", snap.Session.ID, "points", snap.Session.Points)
	return nil
}

// Has reports whether the slot holds a save.
func (s *SaveSlot) Has() bool {
	_, err := s.kv.Get(s.key)
	return err == nil
}

// Load returns the saved snapshot and removes it from the slot. A missing,
// corrupt or invalid save is reported as absent; unusable entries are deleted.
func (s *SaveSlot) Load() (sumfall.Snapshot, bool) {
	data, err := s.kv.Get(s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("failed to read saved game", "key", s.key, "error", err)
		}
		return sumfall.Snapshot{}, false
	}

	s.Clear()

	var snap sumfall.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("discarding corrupt saved game", "key", s.key, "error", err)
		return sumfall.Snapshot{}, false
	}
	if err := snap.Validate(); err != nil {
		s.logger.Warn("discarding invalid saved game", "key", s.key, "error", err)
		return sumfall.Snapshot{}, false
	}
	return snap, true
}

// Clear removes the save, if any.
func (s *SaveSlot) Clear() {
	if err := s.kv.Delete(s.key); err != nil {
		s.logger.Warn("failed to clear saved game", "key", s.key, "error", err)
	}
}
