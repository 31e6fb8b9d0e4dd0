package progression

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sumfall/internal/games/sumfall"
)

// ProfileSaver persists a profile.
type ProfileSaver interface {
	SaveProfile(p Profile) error
}

// Tracker records best scores and unlocks achievements as points change.
// It implements sumfall.ProgressListener.
type Tracker struct {
	mu       sync.Mutex
	profile  Profile
	catalog  Catalog
	saver    ProfileSaver
	logger   *log.Logger
	unlocked []Achievement
}

var _ sumfall.ProgressListener = (*Tracker)(nil)

// NewTracker creates a tracker starting from profile. saver may be nil.
func NewTracker(profile Profile, catalog Catalog, saver ProfileSaver, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.Default()
	}
	return &Tracker{
		profile: profile.Clone(),
		catalog: catalog,
		saver:   saver,
		logger:  logger,
	}
}

// PointsChanged handles a point-total update. When points beat the stored
// best for the difficulty, the best is raised and the highest newly reached
// achievement of that difficulty is unlocked. Lower thresholds crossed in the
// same jump stay locked.
func (t *Tracker) PointsChanged(difficulty sumfall.Difficulty, points int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tag := string(difficulty)
	if points <= t.profile.Best(tag) {
		return
	}
	t.profile.MaxPointsByDifficulty[tag] = points

	var best *Achievement
	for i, a := range t.catalog {
		if a.Difficulty != tag || a.Points > points || t.profile.Has(a.ID) {
			continue
		}
		if best == nil || a.Points > best.Points {
			best = &t.catalog[i]
		}
	}
	if best != nil {
		t.profile.Achievements[best.ID] = true
		t.unlocked = append(t.unlocked, *best)
		t.logger.Info("achievement unlocked", "id", best.ID, "title", best.Title, "points", points)
	}

	t.persist()
}

func (t *Tracker) persist() {
	if t.saver == nil {
		return
	}
	if err := t.saver.SaveProfile(t.profile.Clone()); err != nil {
		t.logger.Warn("failed to save profile", "error", err)
	}
}

// Unlocked drains the achievements unlocked since the last call.
func (t *Tracker) Unlocked() []Achievement {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := t.unlocked
	t.unlocked = nil
	return out
}

// Profile returns a copy of the current profile.
func (t *Tracker) Profile() Profile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profile.Clone()
}

// Catalog returns the achievement catalog.
func (t *Tracker) Catalog() Catalog {
	return t.catalog
}

// Stats reports unlocked versus total achievements.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	unlocked := 0
	for _, ok := range t.profile.Achievements {
		if ok {
			unlocked++
		}
	}
	return Stats{Unlocked: unlocked, Total: len(t.catalog)}
}
