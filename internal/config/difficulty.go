package config

import "strings"

// Profile is one of the three fixed difficulty settings. Profiles are code
// constants rather than configuration: every player on a given build races
// under identical rules, so scores stay comparable.
type Profile struct {
	Label            string  // Stable key used in storage and CLI flags
	Name             string  // Display name
	Description      string  // One-line menu blurb
	ObstacleSpeed    float64 // Base falling speed at session start, units per tick
	SpeedIncrement   float64 // Base speed gain per dodged obstacle
	SpawnIntervalMin int     // Shortest gap between spawn attempts, ticks
	SpawnIntervalMax int     // Longest gap between spawn attempts, ticks
}

var profiles = []Profile{
	{
		Label:            "easy",
		Name:             "Easy",
		Description:      "Slower obstacles, gentler speed increases. Perfect for beginners!",
		ObstacleSpeed:    3,
		SpeedIncrement:   0.5,
		SpawnIntervalMin: 110,
		SpawnIntervalMax: 160,
	},
	{
		Label:            "normal",
		Name:             "Normal",
		Description:      "Balanced gameplay with moderate challenge. The classic experience.",
		ObstacleSpeed:    5,
		SpeedIncrement:   1.0,
		SpawnIntervalMin: 90,
		SpawnIntervalMax: 140,
	},
	{
		Label:            "hard",
		Name:             "Hard",
		Description:      "Fast obstacles and quick speed increases. For experienced players!",
		ObstacleSpeed:    7,
		SpeedIncrement:   1.5,
		SpawnIntervalMin: 70,
		SpawnIntervalMax: 110,
	},
}

// Profiles returns the selectable difficulty profiles in menu order.
// The returned slice is a copy; callers may not mutate the built-ins.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// ProfileByLabel finds a profile by its label, case-insensitively.
func ProfileByLabel(label string) (Profile, bool) {
	want := strings.ToLower(strings.TrimSpace(label))
	for _, p := range profiles {
		if p.Label == want {
			return p, true
		}
	}
	return Profile{}, false
}
