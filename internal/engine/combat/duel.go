package combat

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/arenaforge/arena-api/internal/entities/arena"
	"github.com/arenaforge/arena-api/internal/errors"
)

// Move identifies an attack type
type Move string

// Attack moves
const (
	MoveBasic    Move = "basic"
	MoveSpecial  Move = "special"
	MoveCritical Move = "critical"
	MoveUltimate Move = "ultimate"
)

// Move selection draws a d100: 1-40 critical, 41-70 special, 71-100 basic.
// A ready ultimate preempts the draw entirely.
const (
	moveDie          = 100
	criticalCeiling  = 40
	specialCeiling   = 70
	criticalCoinDie  = 2
	initiativeDie    = 2
)

// Config holds the dependencies for the combat engine
type Config struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Engine simulates fights. All randomness flows through the injected roller
// so tests can substitute a deterministic source.
type Engine struct {
	roller dice.Roller
}

// New creates a combat engine with the provided dependencies
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Engine{roller: cfg.Roller}, nil
}

// DuelResult is the outcome of a 1v1 duel
type DuelResult struct {
	Winner *Combatant
	Loser  *Combatant
	Turns  []arena.TurnEntry
}

// Duel runs a hero-versus-villain duel to the death. An initiative coin flip
// picks the opening attacker; turns then alternate strictly. Each turn the
// active attacker either unleashes a ready ultimate or draws a random move,
// the defender takes mitigated damage, and the attacker charges its ultimate
// by the raw (pre-mitigation) damage value. The loop ends when one side's
// health reaches 0; only one side's health changes per turn, so a draw is
// impossible.
func (e *Engine) Duel(a, b *Combatant) (*DuelResult, error) {
	if a == nil || b == nil {
		return nil, errors.InvalidArgument("both combatants are required")
	}
	if a.Kind == b.Kind {
		return nil, errors.FailedPreconditionf(
			"matchup requires one hero and one villain, got %s vs %s", a.Kind, b.Kind)
	}

	flip, err := e.roller.Roll(initiativeDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll initiative")
	}

	order := [2]*Combatant{a, b}
	if flip == 2 {
		order[0], order[1] = b, a
	}

	result := &DuelResult{}
	for turn := int32(0); ; turn++ {
		attacker := order[turn%2]
		defender := order[(turn+1)%2]

		move, raw, ultimate, err := e.chooseMove(attacker)
		if err != nil {
			return nil, err
		}

		before := defender.Health
		applied := defender.ReceiveDamage(float64(raw), ultimate)
		attacker.AccumulateCharge(raw)

		result.Turns = append(result.Turns, arena.TurnEntry{
			Turn:                 turn + 1,
			AttackerID:           attacker.ID,
			DefenderID:           defender.ID,
			Attacker:             attacker.Name,
			Defender:             defender.Name,
			Move:                 string(move),
			Damage:               applied,
			DefenderHealthBefore: before,
			DefenderHealthAfter:  defender.Health,
			Message: fmt.Sprintf("%s hits %s with a %s attack for %.2f damage (%.2f -> %.2f)",
				attacker.Name, defender.Name, move, applied, before, defender.Health),
		})

		if !defender.Alive() {
			result.Winner = attacker
			result.Loser = defender
			return result, nil
		}
	}
}

// chooseMove picks the attacker's move for this turn and returns its raw
// damage. A ready ultimate is used unconditionally and bypasses the defender's
// shield; otherwise the d100 policy applies, with the critical base chosen
// between basic and special by a coin flip.
func (e *Engine) chooseMove(attacker *Combatant) (Move, int32, bool, error) {
	if attacker.UltimateReady {
		return MoveUltimate, attacker.ConsumeUltimate(), true, nil
	}

	r, err := e.roller.Roll(moveDie)
	if err != nil {
		return "", 0, false, errors.Wrap(err, "failed to roll move selection")
	}

	switch {
	case r <= criticalCeiling:
		coin, err := e.roller.Roll(criticalCoinDie)
		if err != nil {
			return "", 0, false, errors.Wrap(err, "failed to roll critical base")
		}
		base := attacker.BasicAttackDamage()
		if coin == 2 {
			base = attacker.SpecialAttackDamage()
		}
		return MoveCritical, CriticalDamage(base), false, nil
	case r <= specialCeiling:
		return MoveSpecial, attacker.SpecialAttackDamage(), false, nil
	default:
		return MoveBasic, attacker.BasicAttackDamage(), false, nil
	}
}
