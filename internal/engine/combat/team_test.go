package combat_test

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenaforge/arena-api/internal/engine/combat"
	"github.com/arenaforge/arena-api/internal/entities/arena"
	"github.com/arenaforge/arena-api/internal/errors"
)

func newTeam(kind arena.Kind, level int32, firstID int64) []*combat.Combatant {
	team := make([]*combat.Combatant, 0, combat.TeamSize)
	for i := int64(0); i < combat.TeamSize; i++ {
		team = append(team, newDuelist(firstID+i, fmt.Sprintf("%s-%d", kind, firstID+i), kind, level))
	}
	return team
}

func attackRounds(side combat.Side, move combat.Move, count int) []combat.ScriptedRound {
	rounds := make([]combat.ScriptedRound, count)
	for i := range rounds {
		rounds[i] = combat.ScriptedRound{Side: side, Move: move}
	}
	return rounds
}

func TestRunScripted_CriticalsEliminateTheFront(t *testing.T) {
	engine := newEngine(t, &fixedRoller{value: 100})

	teamA := newTeam(arena.KindHero, 1, 1)
	teamB := newTeam(arena.KindVillain, 1, 4)

	// Three 45-damage criticals take the 100-health front member out
	result, err := engine.RunScripted(teamA, teamB, attackRounds(combat.SideA, combat.MoveCritical, 3), 1)
	require.NoError(t, err)

	require.Len(t, result.Rounds, 3)
	assert.Equal(t, float64(45), result.Rounds[0].Damage)
	assert.Equal(t, float64(45), result.Rounds[1].Damage)
	// The last hit is clamped to the 10 health the front had left
	assert.Equal(t, float64(10), result.Rounds[2].Damage)
	assert.Contains(t, result.Rounds[2].Message, "out of the fight")

	assert.Len(t, result.RemainingA, 3)
	assert.Len(t, result.RemainingB, 2)
	assert.Equal(t, int64(5), result.RemainingB[0].ID)
	assert.Equal(t, arena.ResultInconclusive, result.Result)
	assert.False(t, result.Concluded)

	// Snapshots track the roster after each exchange
	assert.Len(t, result.Rounds[1].TeamBState, 3)
	assert.Equal(t, float64(10), result.Rounds[1].TeamBState[0].Health)
	assert.Len(t, result.Rounds[2].TeamBState, 2)
}

func TestRunScripted_SideBAttacks(t *testing.T) {
	engine := newEngine(t, &fixedRoller{value: 100})

	teamA := newTeam(arena.KindHero, 1, 1)
	teamB := newTeam(arena.KindVillain, 1, 4)

	result, err := engine.RunScripted(teamA, teamB, []combat.ScriptedRound{
		{Side: combat.SideB, Move: combat.MoveSpecial},
	}, 1)
	require.NoError(t, err)

	require.Len(t, result.Rounds, 1)
	assert.Equal(t, "B", result.Rounds[0].Side)
	assert.Equal(t, int64(4), result.Rounds[0].AttackerID)
	assert.Equal(t, int64(1), result.Rounds[0].DefenderID)
	assert.Equal(t, float64(70), result.Rounds[0].TeamAState[0].Health)
}

func TestRunScripted_FullElimination(t *testing.T) {
	engine := newEngine(t, &fixedRoller{value: 100})

	teamA := newTeam(arena.KindHero, 1, 1)
	teamB := newTeam(arena.KindVillain, 1, 4)

	// Nine criticals wipe all three members of team B
	result, err := engine.RunScripted(teamA, teamB, attackRounds(combat.SideA, combat.MoveCritical, 9), 1)
	require.NoError(t, err)

	assert.Len(t, result.Rounds, 9)
	assert.Empty(t, result.RemainingB)
	assert.Equal(t, arena.ResultTeamAWins, result.Result)
	assert.True(t, result.Concluded)
}

func TestRunScripted_StopsOnceExhausted(t *testing.T) {
	engine := newEngine(t, &fixedRoller{value: 100})

	teamA := newTeam(arena.KindHero, 1, 1)
	teamB := newTeam(arena.KindVillain, 1, 4)

	// Rounds past the wipe are ignored, not an error
	result, err := engine.RunScripted(teamA, teamB, attackRounds(combat.SideA, combat.MoveCritical, 12), 1)
	require.NoError(t, err)

	assert.Len(t, result.Rounds, 9)
	assert.True(t, result.Concluded)
}

func TestRunScripted_InvalidMoveAbortsWithPartialRounds(t *testing.T) {
	engine := newEngine(t, &fixedRoller{value: 100})

	teamA := newTeam(arena.KindHero, 1, 1)
	teamB := newTeam(arena.KindVillain, 1, 4)

	result, err := engine.RunScripted(teamA, teamB, []combat.ScriptedRound{
		{Side: combat.SideA, Move: combat.MoveBasic},
		{Side: combat.SideA, Move: "banana"},
		{Side: combat.SideA, Move: combat.MoveBasic},
	}, 1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "round 2")

	// The first round stays applied for the caller to persist
	require.NotNil(t, result)
	require.Len(t, result.Rounds, 1)
	assert.Equal(t, float64(95), result.RemainingB[0].Health)
	assert.False(t, result.Concluded)
}

func TestRunScripted_InvalidSide(t *testing.T) {
	engine := newEngine(t, &fixedRoller{value: 100})

	_, err := engine.RunScripted(
		newTeam(arena.KindHero, 1, 1),
		newTeam(arena.KindVillain, 1, 4),
		[]combat.ScriptedRound{{Side: "C", Move: combat.MoveBasic}}, 1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), `unknown attacker side "C"`)
}

func TestRunScripted_RoundNumberingStartsAtOffset(t *testing.T) {
	engine := newEngine(t, &fixedRoller{value: 100})

	result, err := engine.RunScripted(
		newTeam(arena.KindHero, 1, 1),
		newTeam(arena.KindVillain, 1, 4),
		attackRounds(combat.SideA, combat.MoveBasic, 3), 7)
	require.NoError(t, err)

	require.Len(t, result.Rounds, 3)
	assert.Equal(t, int32(7), result.Rounds[0].Round)
	assert.Equal(t, int32(8), result.Rounds[1].Round)
	assert.Equal(t, int32(9), result.Rounds[2].Round)
}

func TestRunSimulated_FightsToConclusion(t *testing.T) {
	engine := newEngine(t, dice.DefaultRoller)

	teamA := newTeam(arena.KindHero, 5, 1)
	teamB := newTeam(arena.KindVillain, 5, 4)

	result, err := engine.RunSimulated(teamA, teamB, 1)
	require.NoError(t, err)

	assert.True(t, result.Concluded)
	require.NotEmpty(t, result.Rounds)

	if assert.Contains(t, []string{arena.ResultTeamAWins, arena.ResultTeamBWins}, result.Result) {
		if result.Result == arena.ResultTeamAWins {
			assert.Empty(t, result.RemainingB)
			assert.NotEmpty(t, result.RemainingA)
		} else {
			assert.Empty(t, result.RemainingA)
			assert.NotEmpty(t, result.RemainingB)
		}
	}

	// Exchanges are numbered contiguously from the start round
	for i, round := range result.Rounds {
		assert.Equal(t, int32(i+1), round.Round)
	}

	// The loser's final snapshot is empty
	last := result.Rounds[len(result.Rounds)-1]
	assert.Contains(t, last.Message, "out of the fight")
	if result.Result == arena.ResultTeamAWins {
		assert.Empty(t, last.TeamBState)
	} else {
		assert.Empty(t, last.TeamAState)
	}
}

func TestRunSimulated_SurvivorCarriesHealthForward(t *testing.T) {
	// All-basic duels with team A opening every clash: A's front wins the
	// first duel on 5 health and dies to the very next fresh opponent.
	engine := newEngine(t, &fixedRoller{value: 100})

	teamA := newTeam(arena.KindHero, 1, 1)
	teamB := newTeam(arena.KindVillain, 1, 4)

	result, err := engine.RunSimulated(teamA, teamB, 1)
	require.NoError(t, err)
	require.True(t, result.Concluded)

	// First duel: 39 exchanges, B's front falls, A's front is at 5 health
	firstKill := result.Rounds[38]
	assert.Equal(t, int64(4), firstKill.DefenderID)
	assert.Contains(t, firstKill.Message, "out of the fight")
	require.Len(t, firstKill.TeamAState, 3)
	assert.Equal(t, float64(5), firstKill.TeamAState[0].Health)
	assert.Len(t, firstKill.TeamBState, 2)

	// Second duel: the worn-down front lands one hit, then falls to the
	// fresh member's first swing
	assert.Equal(t, int64(1), result.Rounds[39].AttackerID)
	secondKill := result.Rounds[40]
	assert.Equal(t, int64(1), secondKill.DefenderID)
	assert.Contains(t, secondKill.Message, "out of the fight")
}
