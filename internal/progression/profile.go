// Package progression tracks per-difficulty best scores and achievement
// unlocks across sessions.
package progression

import (
	"maps"

	"github.com/vovakirdan/sumfall/internal/config"
)

// Profile is the persisted player record.
type Profile struct {
	MaxPointsByDifficulty map[string]int  `json:"max_points_by_difficulty"`
	Achievements          map[string]bool `json:"achievements"`
}

// NewProfile returns an empty profile.
func NewProfile() Profile {
	return Profile{
		MaxPointsByDifficulty: make(map[string]int),
		Achievements:          make(map[string]bool),
	}
}

// Best returns the best points for a difficulty; unknown difficulties read as 0.
func (p Profile) Best(difficulty string) int {
	return p.MaxPointsByDifficulty[difficulty]
}

// Has reports whether an achievement is unlocked.
func (p Profile) Has(id string) bool {
	return p.Achievements[id]
}

// Clone returns a deep copy. Nil maps are replaced with empty ones.
func (p Profile) Clone() Profile {
	c := NewProfile()
	maps.Copy(c.MaxPointsByDifficulty, p.MaxPointsByDifficulty)
	maps.Copy(c.Achievements, p.Achievements)
	return c
}

// Achievement is one unlockable goal: reach Points on Difficulty.
type Achievement struct {
	ID         string
	Title      string
	Difficulty string
	Points     int
}

// Catalog is the full list of achievements.
type Catalog []Achievement

// NewCatalog builds the catalog from configuration.
func NewCatalog(cfg config.Config) Catalog {
	defs := cfg.AchievementCatalog()
	c := make(Catalog, len(defs))
	for i, d := range defs {
		c[i] = Achievement(d)
	}
	return c
}

// ForDifficulty returns the achievements of one difficulty in catalog order.
func (c Catalog) ForDifficulty(difficulty string) []Achievement {
	var out []Achievement
	for _, a := range c {
		if a.Difficulty == difficulty {
			out = append(out, a)
		}
	}
	return out
}

// Stats summarizes achievement progress.
type Stats struct {
	Unlocked int
	Total    int
}
