package combat

import (
	"fmt"

	"github.com/arenaforge/arena-api/internal/entities/arena"
	"github.com/arenaforge/arena-api/internal/errors"
)

// Side names the attacking team of a scripted round
type Side string

// Team sides
const (
	SideA Side = "A"
	SideB Side = "B"
)

// TeamSize is the required roster size for a team battle
const TeamSize = 3

// ScriptedRound is one externally supplied exchange: which side attacks and
// with which move. Ultimates are not available in scripted mode.
type ScriptedRound struct {
	Side Side `json:"side"`
	Move Move `json:"move"`
}

// Flat damage per move in scripted mode; no shield or ultimate mechanics.
var scriptedDamage = map[Move]float64{
	MoveBasic:    5,
	MoveSpecial:  30,
	MoveCritical: 45,
}

// TeamResult is the outcome of a team battle run (or partial run)
type TeamResult struct {
	// Rounds holds the per-exchange history appended by this run
	Rounds []arena.RoundEntry

	// RemainingA and RemainingB are the surviving rosters, front member
	// first, with current health
	RemainingA []*Combatant
	RemainingB []*Combatant

	Result    string
	Concluded bool
}

// RunScripted applies caller-supplied rounds to the two rosters. Each round
// the named side's front member deals a flat per-move damage to the opposing
// front member; a member at 0 health is removed and the next roster member
// becomes the new front. Processing stops early once a team is exhausted.
//
// An unrecognized side or move aborts the remaining rounds: the rounds
// already applied stay in the returned result (the caller persists them) and
// the error names the failing round. Round numbering starts at startRound so
// continuations stay contiguous with stored history.
func (e *Engine) RunScripted(teamA, teamB []*Combatant, rounds []ScriptedRound, startRound int32) (*TeamResult, error) {
	result := &TeamResult{
		RemainingA: teamA,
		RemainingB: teamB,
		Result:     arena.ResultInconclusive,
	}

	round := startRound
	for _, r := range rounds {
		if len(result.RemainingA) == 0 || len(result.RemainingB) == 0 {
			break
		}

		if r.Side != SideA && r.Side != SideB {
			return result, errors.InvalidArgumentf("round %d: unknown attacker side %q", round, r.Side)
		}
		damage, ok := scriptedDamage[r.Move]
		if !ok {
			return result, errors.InvalidArgumentf("round %d: unknown move type %q", round, r.Move)
		}

		attackers, defenders := result.RemainingA, result.RemainingB
		if r.Side == SideB {
			attackers, defenders = defenders, attackers
		}
		attacker, defender := attackers[0], defenders[0]

		if damage > defender.Health {
			damage = defender.Health
		}
		defender.Health -= damage

		eliminated := !defender.Alive()

		entry := arena.RoundEntry{
			Round:      round,
			Side:       string(r.Side),
			AttackerID: attacker.ID,
			DefenderID: defender.ID,
			Attacker:   attacker.Name,
			Defender:   defender.Name,
			Move:       string(r.Move),
			Damage:     damage,
			Message: fmt.Sprintf("%s hits %s with a %s attack for %.2f damage",
				attacker.Name, defender.Name, r.Move, damage),
		}

		if eliminated {
			entry.Message += fmt.Sprintf("; %s is out of the fight", defender.Name)
			if r.Side == SideA {
				result.RemainingB = result.RemainingB[1:]
			} else {
				result.RemainingA = result.RemainingA[1:]
			}
		}

		entry.TeamAState = snapshot(result.RemainingA)
		entry.TeamBState = snapshot(result.RemainingB)
		result.Rounds = append(result.Rounds, entry)
		round++
	}

	result.settle()
	return result, nil
}

// RunSimulated fights the battle to its conclusion: the front members of each
// team duel to the death under the full 1v1 protocol (shield, ultimate,
// random moves), the fallen front is removed, and the next members clash,
// until one team is exhausted. A surviving front carries its remaining health
// into the next clash; fresh members enter at full health.
//
// Every exchange is recorded as its own round entry, numbered from startRound.
func (e *Engine) RunSimulated(teamA, teamB []*Combatant, startRound int32) (*TeamResult, error) {
	result := &TeamResult{
		RemainingA: teamA,
		RemainingB: teamB,
		Result:     arena.ResultInconclusive,
	}

	round := startRound
	for len(result.RemainingA) > 0 && len(result.RemainingB) > 0 {
		frontA, frontB := result.RemainingA[0], result.RemainingB[0]

		flip, err := e.roller.Roll(initiativeDie)
		if err != nil {
			return result, errors.Wrap(err, "failed to roll initiative")
		}
		order := [2]*Combatant{frontA, frontB}
		if flip == 2 {
			order[0], order[1] = frontB, frontA
		}

		for turn := 0; frontA.Alive() && frontB.Alive(); turn++ {
			attacker := order[turn%2]
			defender := order[(turn+1)%2]

			move, raw, ultimate, err := e.chooseMove(attacker)
			if err != nil {
				return result, err
			}

			applied := defender.ReceiveDamage(float64(raw), ultimate)
			attacker.AccumulateCharge(raw)

			side := SideA
			if attacker == frontB {
				side = SideB
			}

			entry := arena.RoundEntry{
				Round:      round,
				Side:       string(side),
				AttackerID: attacker.ID,
				DefenderID: defender.ID,
				Attacker:   attacker.Name,
				Defender:   defender.Name,
				Move:       string(move),
				Damage:     applied,
				Message: fmt.Sprintf("%s hits %s with a %s attack for %.2f damage",
					attacker.Name, defender.Name, move, applied),
			}

			if !defender.Alive() {
				entry.Message += fmt.Sprintf("; %s is out of the fight", defender.Name)
				if defender == frontA {
					result.RemainingA = result.RemainingA[1:]
				} else {
					result.RemainingB = result.RemainingB[1:]
				}
			}

			entry.TeamAState = snapshot(result.RemainingA)
			entry.TeamBState = snapshot(result.RemainingB)
			result.Rounds = append(result.Rounds, entry)
			round++
		}
	}

	result.settle()
	return result, nil
}

// settle derives the battle result from the remaining rosters
func (r *TeamResult) settle() {
	switch {
	case len(r.RemainingB) == 0 && len(r.RemainingA) > 0:
		r.Result = arena.ResultTeamAWins
		r.Concluded = true
	case len(r.RemainingA) == 0 && len(r.RemainingB) > 0:
		r.Result = arena.ResultTeamBWins
		r.Concluded = true
	default:
		r.Result = arena.ResultInconclusive
	}
}

func snapshot(team []*Combatant) []arena.MemberHealth {
	state := make([]arena.MemberHealth, 0, len(team))
	for _, m := range team {
		state = append(state, arena.MemberHealth{
			CharacterID: m.ID,
			Name:        m.Name,
			Health:      m.Health,
		})
	}
	return state
}
