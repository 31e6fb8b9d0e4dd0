// Package config provides YAML-based configuration for sumfall: the
// difficulty table, resolution and banner timings and the achievement
// catalog.
package config

import (
	"fmt"
	"time"
)

// Config is the complete game configuration.
type Config struct {
	Difficulties      []DifficultyLevel `yaml:"difficulties"`
	DefaultDifficulty string            `yaml:"default_difficulty"`
	DefaultMode       string            `yaml:"default_mode"`

	ResolveWindowMS     int `yaml:"resolve_window_ms"`
	TargetBannerMS      int `yaml:"target_banner_ms"`
	AchievementBannerMS int `yaml:"achievement_banner_ms"`

	Achievements AchievementsConfig `yaml:"achievements"`
}

// DifficultyLevel maps an opaque difficulty tag to a gravity tick interval.
type DifficultyLevel struct {
	Tag    string `yaml:"tag"`
	Label  string `yaml:"label"`
	TickMS int    `yaml:"tick_ms"`
}

// Tick returns the gravity tick interval.
func (d DifficultyLevel) Tick() time.Duration {
	return time.Duration(d.TickMS) * time.Millisecond
}

// AchievementsConfig defines the per-difficulty point thresholds.
// Titles[tag][i] names the achievement for Thresholds[i] on that difficulty.
type AchievementsConfig struct {
	Thresholds []int               `yaml:"thresholds"`
	Titles     map[string][]string `yaml:"titles"`
}

// AchievementDef is one entry of the achievement catalog.
type AchievementDef struct {
	ID         string
	Title      string
	Difficulty string
	Points     int
}

// Difficulty looks up a difficulty level by tag.
func (c Config) Difficulty(tag string) (DifficultyLevel, bool) {
	for _, d := range c.Difficulties {
		if d.Tag == tag {
			return d, true
		}
	}
	return DifficultyLevel{}, false
}

// Tags returns the difficulty tags in configured order.
func (c Config) Tags() []string {
	tags := make([]string, len(c.Difficulties))
	for i, d := range c.Difficulties {
		tags[i] = d.Tag
	}
	return tags
}

// TickInterval maps a difficulty tag to its gravity tick interval.
func (c Config) TickInterval(tag string) (time.Duration, error) {
	d, ok := c.Difficulty(tag)
	if !ok {
		return 0, fmt.Errorf("config: unknown difficulty %q", tag)
	}
	return d.Tick(), nil
}

// ResolveWindow returns how long cleared cells stay highlighted.
func (c Config) ResolveWindow() time.Duration {
	return time.Duration(c.ResolveWindowMS) * time.Millisecond
}

// TargetBanner returns how long the target-changed banner is shown.
func (c Config) TargetBanner() time.Duration {
	return time.Duration(c.TargetBannerMS) * time.Millisecond
}

// AchievementBanner returns how long an unlock notification is shown.
func (c Config) AchievementBanner() time.Duration {
	return time.Duration(c.AchievementBannerMS) * time.Millisecond
}

// AchievementCatalog expands the thresholds into one achievement per
// difficulty and threshold, in difficulty order. IDs are "<tag>_<points>".
// Missing titles fall back to the ID.
func (c Config) AchievementCatalog() []AchievementDef {
	defs := make([]AchievementDef, 0, len(c.Difficulties)*len(c.Achievements.Thresholds))
	for _, d := range c.Difficulties {
		titles := c.Achievements.Titles[d.Tag]
		for i, pts := range c.Achievements.Thresholds {
			id := fmt.Sprintf("%s_%d", d.Tag, pts)
			title := id
			if i < len(titles) && titles[i] != "" {
				title = titles[i]
			}
			defs = append(defs, AchievementDef{
				ID:         id,
				Title:      title,
				Difficulty: d.Tag,
				Points:     pts,
			})
		}
	}
	return defs
}

// Validate reports the first problem that would make the configuration unusable.
func (c Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("config: no difficulties defined")
	}
	seen := make(map[string]bool, len(c.Difficulties))
	for _, d := range c.Difficulties {
		if d.Tag == "" {
			return fmt.Errorf("config: difficulty with empty tag")
		}
		if seen[d.Tag] {
			return fmt.Errorf("config: duplicate difficulty %q", d.Tag)
		}
		seen[d.Tag] = true
		if d.TickMS <= 0 {
			return fmt.Errorf("config: difficulty %q: tick_ms must be positive, got %d", d.Tag, d.TickMS)
		}
	}
	if !seen[c.DefaultDifficulty] {
		return fmt.Errorf("config: default_difficulty %q is not defined", c.DefaultDifficulty)
	}
	switch c.DefaultMode {
	case "fixed", "changing":
	default:
		return fmt.Errorf("config: unknown default_mode %q", c.DefaultMode)
	}
	if c.ResolveWindowMS <= 0 {
		return fmt.Errorf("config: resolve_window_ms must be positive, got %d", c.ResolveWindowMS)
	}
	if c.TargetBannerMS < 0 || c.AchievementBannerMS < 0 {
		return fmt.Errorf("config: banner durations must not be negative")
	}
	prev := 0
	for _, pts := range c.Achievements.Thresholds {
		if pts <= prev {
			return fmt.Errorf("config: achievement thresholds must be positive and increasing, got %v", c.Achievements.Thresholds)
		}
		prev = pts
	}
	return nil
}
