// Package combat implements the turn-based combat engine: 1v1 duels and
// team battles between simulation copies of persisted characters.
package combat

import (
	"math"

	"github.com/arenaforge/arena-api/internal/entities/arena"
)

// Level-derived stat rules. Every derived stat is a function of level only.
const (
	// MaxLevel caps progression; experience is pinned at 100 once reached
	MaxLevel int32 = 10

	// BaseUltimateThreshold is the charge required at level 1. It grows by
	// 10% (rounded) on every level-up and never decreases.
	BaseUltimateThreshold int32 = 150
)

// MaxHealthForLevel returns the maximum health at the given level
func MaxHealthForLevel(level int32) float64 {
	return 100 + float64(level-1)*5
}

// ShieldForLevel returns the mitigation percentage at the given level
func ShieldForLevel(level int32) int32 {
	return (level - 1) * 5
}

// NextUltimateThreshold scales a threshold for one level-up, rounding to the
// nearest integer. Applied iteratively, not compounded analytically.
func NextUltimateThreshold(threshold int32) int32 {
	return int32(math.Round(float64(threshold) * 1.1))
}

// Combatant is a transient simulation copy of a character. The engine mutates
// combatants freely during a fight; only the final post-fight fields are
// committed back onto the persisted entity by the caller.
type Combatant struct {
	ID                int64
	Name              string
	Kind              arena.Kind
	Level             int32
	Shield            int32
	MaxHealth         float64
	Health            float64
	UltimateCharge    int32
	UltimateThreshold int32
	UltimateReady     bool
}

// NewCombatant copies a character into a simulation context. Health starts at
// the level-derived maximum regardless of the persisted value; use SetHealth
// to resume a continued team battle from a recorded snapshot.
func NewCombatant(c *arena.Character) *Combatant {
	return &Combatant{
		ID:                c.ID,
		Name:              c.Name,
		Kind:              c.Kind,
		Level:             c.Level,
		Shield:            ShieldForLevel(c.Level),
		MaxHealth:         MaxHealthForLevel(c.Level),
		Health:            MaxHealthForLevel(c.Level),
		UltimateCharge:    c.UltimateCharge,
		UltimateThreshold: c.UltimateThreshold,
		UltimateReady:     c.UltimateReady,
	}
}

// SetHealth restores a recorded health value, clamped to [0, MaxHealth]
func (c *Combatant) SetHealth(health float64) {
	c.Health = math.Min(math.Max(health, 0), c.MaxHealth)
}

// Alive reports whether the combatant can still fight
func (c *Combatant) Alive() bool {
	return c.Health > 0
}

// BasicAttackDamage returns the basic attack damage at the combatant's level
func (c *Combatant) BasicAttackDamage() int32 {
	return 5 + (c.Level - 1)
}

// SpecialAttackDamage returns the special attack damage at the combatant's level
func (c *Combatant) SpecialAttackDamage() int32 {
	return 30 + (c.Level-1)*10
}

// UltimateAttackDamage returns the ultimate attack damage at the combatant's level
func (c *Combatant) UltimateAttackDamage() int32 {
	return 80 + (c.Level-1)*10
}

// CriticalDamage amplifies a base damage value by 1.5, rounded to the
// nearest integer
func CriticalDamage(base int32) int32 {
	return int32(math.Round(float64(base) * 1.5))
}

// ReceiveDamage applies incoming damage. Non-ultimate damage is reduced by
// the shield percentage before subtracting from health; ultimate damage
// bypasses the shield entirely. Health never drops below 0. Returns the
// damage actually applied after mitigation.
func (c *Combatant) ReceiveDamage(amount float64, ultimate bool) float64 {
	if !ultimate && c.Shield > 0 {
		amount -= amount * float64(c.Shield) / 100
	}
	if amount > c.Health {
		amount = c.Health
	}
	c.Health -= amount
	return amount
}

// AccumulateCharge adds damage dealt to the ultimate charge and flags the
// ultimate ready once the threshold is met. At max level with the ultimate
// already charged this is a no-op, so the charge does not grow without bound.
func (c *Combatant) AccumulateCharge(damageDealt int32) {
	if c.Level >= MaxLevel && c.UltimateCharge >= c.UltimateThreshold {
		return
	}
	c.UltimateCharge += damageDealt
	if c.UltimateCharge >= c.UltimateThreshold {
		c.UltimateReady = true
	}
}

// ConsumeUltimate spends the charged ultimate and returns its damage. When
// the ultimate is not ready it returns 0 and leaves the charge untouched,
// signaling the caller the move was unavailable.
func (c *Combatant) ConsumeUltimate() int32 {
	if !c.UltimateReady {
		return 0
	}
	c.UltimateCharge = 0
	c.UltimateReady = false
	return c.UltimateAttackDamage()
}
