// Package progression applies experience gains and level-ups after a fight
// concludes.
package progression

import (
	"github.com/arenaforge/arena-api/internal/engine/combat"
	"github.com/arenaforge/arena-api/internal/entities/arena"
)

// Experience rewards per fight outcome
const (
	WinnerExperience int32 = 40
	LoserExperience  int32 = 25
)

// ExperiencePerLevel is the cost of one level-up; overflow carries forward
const ExperiencePerLevel int32 = 100

// GrantExperience adds experience to a character, consuming 100 points per
// level-up and carrying the remainder forward, so a single large grant can
// raise several levels. At max level experience is pinned at 100 and gains
// stop.
func GrantExperience(c *arena.Character, amount int32) {
	if c.Level >= combat.MaxLevel {
		c.Experience = ExperiencePerLevel
		return
	}

	c.Experience += amount
	for c.Experience >= ExperiencePerLevel && c.Level < combat.MaxLevel {
		c.Experience -= ExperiencePerLevel
		LevelUp(c)
	}
	if c.Level >= combat.MaxLevel {
		c.Experience = ExperiencePerLevel
	}
}

// LevelUp raises the character one level, recomputes the level-derived
// stats, and scales the ultimate threshold by 10% (rounded). The threshold
// only ever grows. No-op at max level.
func LevelUp(c *arena.Character) {
	if c.Level >= combat.MaxLevel {
		return
	}

	c.Level++
	c.MaxHealth = combat.MaxHealthForLevel(c.Level)
	c.Health = c.MaxHealth
	c.Shield = combat.ShieldForLevel(c.Level)
	c.UltimateThreshold = combat.NextUltimateThreshold(c.UltimateThreshold)
}
