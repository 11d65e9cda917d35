// Package arena implements the arena entities
package arena

// Kind discriminates heroes from villains. A duel requires exactly one of each.
type Kind string

// Character kinds
const (
	KindHero    Kind = "hero"
	KindVillain Kind = "villain"
)

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	return k == KindHero || k == KindVillain
}

// Character represents a persisted combatant with progression stats.
// NOTE: This is a data-only struct. Stat derivation and combat math live in
// internal/engine/combat; experience rules live in internal/engine/progression.
type Character struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city,omitempty"`
	Kind       Kind   `json:"kind"`
	Team       string `json:"team,omitempty"`
	Level      int32  `json:"level"`
	Experience int32  `json:"experience"`

	// Shield is the mitigation percentage against non-ultimate damage,
	// derived as (level-1)*5.
	Shield    int32   `json:"shield"`
	MaxHealth float64 `json:"maxHealth"`
	Health    float64 `json:"health"`

	// UltimateCharge accumulates damage dealt since the last ultimate use.
	// The ultimate unlocks once charge reaches UltimateThreshold.
	UltimateCharge    int32 `json:"ultimateCharge"`
	UltimateThreshold int32 `json:"ultimateThreshold"`
	UltimateReady     bool  `json:"ultimateReady"`

	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}
