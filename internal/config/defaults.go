package config

import (
	_ "embed"
)

//go:embed defaults/sumfall.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when no YAML source
// can be read.
func DefaultConfig() Config {
	return Config{
		Difficulties: []DifficultyLevel{
			{Tag: "easy", Label: "Easy", TickMS: 1300},
			{Tag: "medium", Label: "Medium", TickMS: 1000},
			{Tag: "hard", Label: "Hard", TickMS: 700},
			{Tag: "expert", Label: "Expert", TickMS: 500},
			{Tag: "nightmare", Label: "Nightmare", TickMS: 300},
			{Tag: "nightmare+", Label: "Nightmare+", TickMS: 250},
			{Tag: "nightmare++", Label: "Nightmare++", TickMS: 225},
		},
		DefaultDifficulty:   "medium",
		DefaultMode:         "fixed",
		ResolveWindowMS:     2000,
		TargetBannerMS:      2000,
		AchievementBannerMS: 3000,
		Achievements: AchievementsConfig{
			Thresholds: []int{500, 1000, 2000, 3000, 5000},
		},
	}
}
