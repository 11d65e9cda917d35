// Package battle implements the battle orchestrator: it loads characters,
// runs the combat engine, applies progression, and persists fight records.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/arenaforge/arena-api/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/arenaforge/arena-api/internal/engine/combat"
	"github.com/arenaforge/arena-api/internal/engine/progression"
	"github.com/arenaforge/arena-api/internal/entities/arena"
	"github.com/arenaforge/arena-api/internal/errors"
	"github.com/arenaforge/arena-api/internal/repositories/character"
	"github.com/arenaforge/arena-api/internal/repositories/fight"
)

// Service defines the interface for battle operations
type Service interface {
	// Duel runs a hero-versus-villain fight to the death, applies experience
	// rewards, and stores the fight record
	Duel(ctx context.Context, input *DuelInput) (*DuelOutput, error)

	// TeamBattle runs a 3v3 battle between two teams, scripted or simulated
	TeamBattle(ctx context.Context, input *TeamBattleInput) (*TeamBattleOutput, error)

	// ContinueTeamBattle appends rounds to a stored inconclusive team battle
	ContinueTeamBattle(ctx context.Context, input *ContinueTeamBattleInput) (*ContinueTeamBattleOutput, error)

	// GetFight retrieves a stored fight record
	GetFight(ctx context.Context, input *GetFightInput) (*GetFightOutput, error)

	// DeleteFight removes a stored fight record
	DeleteFight(ctx context.Context, input *DeleteFightInput) (*DeleteFightOutput, error)

	// ListFights retrieves all stored fight records
	ListFights(ctx context.Context, input *ListFightsInput) (*ListFightsOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	CharacterRepo character.Repository
	FightRepo     fight.Repository
	Roller        dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.FightRepo == nil {
		vb.RequiredField("FightRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	fightRepo     fight.Repository
	engine        *combat.Engine
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	engine, err := combat.New(&combat.Config{Roller: cfg.Roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat engine")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		fightRepo:     cfg.FightRepo,
		engine:        engine,
	}, nil
}

func (o *orchestrator) Duel(ctx context.Context, input *DuelInput) (*DuelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	first, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	second, err := o.loadCharacter(ctx, input.OpponentID)
	if err != nil {
		return nil, err
	}

	if first.Kind == second.Kind {
		return nil, errors.FailedPreconditionf(
			"matchup requires one hero and one villain, got %s vs %s", first.Kind, second.Kind)
	}

	// Orient the pairing so the hero always fills the hero slot of the record
	hero, villain := first, second
	if hero.Kind != arena.KindHero {
		hero, villain = villain, hero
	}

	heroSim := combat.NewCombatant(hero)
	villainSim := combat.NewCombatant(villain)

	result, err := o.engine.Duel(heroSim, villainSim)
	if err != nil {
		return nil, errors.Wrap(err, "failed to simulate duel")
	}

	winner, loser := hero, villain
	if result.Winner.ID == villain.ID {
		winner, loser = villain, hero
	}

	// Commit simulation outcome and progression back onto the persisted
	// characters; health resets to the level-derived maximum
	commitSimulation(hero, heroSim)
	commitSimulation(villain, villainSim)
	progression.GrantExperience(winner, progression.WinnerExperience)
	progression.GrantExperience(loser, progression.LoserExperience)
	hero.Health = hero.MaxHealth
	villain.Health = villain.MaxHealth

	record := &arena.FightRecord{
		Kind:      arena.FightDuel,
		HeroID:    hero.ID,
		VillainID: villain.ID,
		WinnerID:  winner.ID,
		TurnLog:   result.Turns,
	}

	createOut, err := o.fightRepo.Create(ctx, fight.CreateInput{Record: record})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store fight record")
	}

	if _, err := o.characterRepo.UpdateMany(ctx, character.UpdateManyInput{
		Characters: []*arena.Character{hero, villain},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to update characters after duel")
	}

	slog.InfoContext(ctx, "duel resolved",
		"fight_id", createOut.Record.ID,
		"hero_id", hero.ID,
		"villain_id", villain.ID,
		"winner_id", winner.ID,
		"turns", len(result.Turns))

	return &DuelOutput{
		Fight:  createOut.Record,
		Winner: winner,
		Loser:  loser,
	}, nil
}

func (o *orchestrator) TeamBattle(ctx context.Context, input *TeamBattleInput) (*TeamBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("TeamA", input.TeamA, vb)
	errors.ValidateRequired("TeamB", input.TeamB, vb)
	errors.ValidateEnum("Mode", string(input.Mode),
		[]string{string(arena.ModeScripted), string(arena.ModeSimulated)}, vb)
	if input.TeamA != "" && input.TeamA == input.TeamB {
		vb.InvalidField("TeamB", "a team cannot fight itself")
	}
	if input.Mode == arena.ModeScripted && len(input.Rounds) == 0 {
		vb.RequiredField("Rounds")
	}
	if input.Mode == arena.ModeSimulated && len(input.Rounds) > 0 {
		vb.InvalidField("Rounds", "simulated battles generate their own rounds")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	membersA, err := o.loadTeam(ctx, input.TeamA)
	if err != nil {
		return nil, err
	}
	membersB, err := o.loadTeam(ctx, input.TeamB)
	if err != nil {
		return nil, err
	}
	if err := validateMatchup(input.TeamA, membersA, input.TeamB, membersB); err != nil {
		return nil, err
	}

	result, runErr := o.runTeamRounds(input.Mode, combatants(membersA), combatants(membersB), input.Rounds, 1)

	record := &arena.FightRecord{
		Kind:    arena.FightTeam,
		TeamA:   input.TeamA,
		TeamB:   input.TeamB,
		Mode:    input.Mode,
		Result:  result.Result,
		Rounds:  result.Rounds,
		RosterA: rosterIDs(result.RemainingA),
		RosterB: rosterIDs(result.RemainingB),
	}

	// The record is stored even when a scripted round fails validation:
	// rounds applied before the failure keep their side effects
	createOut, err := o.fightRepo.Create(ctx, fight.CreateInput{Record: record})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store fight record")
	}

	if runErr != nil {
		var structured *errors.Error
		if errors.As(runErr, &structured) {
			structured.WithMeta("fight_id", createOut.Record.ID)
		}
		return nil, runErr
	}

	if result.Concluded {
		if err := o.resetHealth(ctx, membersA, membersB); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "team battle resolved",
		"fight_id", createOut.Record.ID,
		"team_a", input.TeamA,
		"team_b", input.TeamB,
		"mode", input.Mode,
		"result", result.Result,
		"rounds", len(result.Rounds))

	return &TeamBattleOutput{Fight: createOut.Record}, nil
}

func (o *orchestrator) ContinueTeamBattle(ctx context.Context, input *ContinueTeamBattleInput) (*ContinueTeamBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOut, err := o.fightRepo.Get(ctx, fight.GetInput{ID: input.FightID})
	if err != nil {
		return nil, err
	}
	record := getOut.Record

	if record.Kind != arena.FightTeam {
		return nil, errors.FailedPreconditionf("fight %d is not a team battle", record.ID)
	}
	if record.Result != arena.ResultInconclusive {
		return nil, errors.FailedPreconditionf("fight %d already concluded: %s", record.ID, record.Result)
	}
	if record.Mode == arena.ModeScripted && len(input.Rounds) == 0 {
		return nil, errors.InvalidArgument("Rounds: is required")
	}
	if record.Mode == arena.ModeSimulated && len(input.Rounds) > 0 {
		return nil, errors.InvalidArgument("Rounds: simulated battles generate their own rounds")
	}

	// Rebuild the surviving fronts from the last recorded health snapshot
	healths := lastSnapshot(record)
	teamA, err := o.reviveRoster(ctx, record.RosterA, healths)
	if err != nil {
		return nil, err
	}
	teamB, err := o.reviveRoster(ctx, record.RosterB, healths)
	if err != nil {
		return nil, err
	}

	result, runErr := o.runTeamRounds(record.Mode, teamA, teamB, input.Rounds, nextRound(record))

	record.Rounds = append(record.Rounds, result.Rounds...)
	record.Result = result.Result
	record.RosterA = rosterIDs(result.RemainingA)
	record.RosterB = rosterIDs(result.RemainingB)

	updateOut, err := o.fightRepo.Update(ctx, fight.UpdateInput{Record: record})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update fight record")
	}

	if runErr != nil {
		var structured *errors.Error
		if errors.As(runErr, &structured) {
			structured.WithMeta("fight_id", record.ID)
		}
		return nil, runErr
	}

	if result.Concluded {
		membersA, err := o.loadTeam(ctx, record.TeamA)
		if err != nil {
			return nil, err
		}
		membersB, err := o.loadTeam(ctx, record.TeamB)
		if err != nil {
			return nil, err
		}
		if err := o.resetHealth(ctx, membersA, membersB); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "team battle continued",
		"fight_id", record.ID,
		"result", result.Result,
		"appended_rounds", len(result.Rounds))

	return &ContinueTeamBattleOutput{Fight: updateOut.Record}, nil
}

func (o *orchestrator) GetFight(ctx context.Context, input *GetFightInput) (*GetFightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOut, err := o.fightRepo.Get(ctx, fight.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetFightOutput{Fight: getOut.Record}, nil
}

func (o *orchestrator) DeleteFight(ctx context.Context, input *DeleteFightInput) (*DeleteFightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.fightRepo.Delete(ctx, fight.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	return &DeleteFightOutput{}, nil
}

func (o *orchestrator) ListFights(ctx context.Context, input *ListFightsInput) (*ListFightsOutput, error) {
	listOut, err := o.fightRepo.List(ctx, fight.ListInput{})
	if err != nil {
		return nil, err
	}

	return &ListFightsOutput{Fights: listOut.Records}, nil
}

// runTeamRounds dispatches to the engine mode. startRound keeps continuation
// numbering contiguous with stored history.
func (o *orchestrator) runTeamRounds(
	mode arena.BattleMode,
	teamA, teamB []*combat.Combatant,
	rounds []combat.ScriptedRound,
	startRound int32,
) (*combat.TeamResult, error) {
	if mode == arena.ModeScripted {
		return o.engine.RunScripted(teamA, teamB, rounds, startRound)
	}
	return o.engine.RunSimulated(teamA, teamB, startRound)
}

func (o *orchestrator) loadCharacter(ctx context.Context, id int64) (*arena.Character, error) {
	getOut, err := o.characterRepo.Get(ctx, character.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return getOut.Character, nil
}

func (o *orchestrator) loadTeam(ctx context.Context, team string) ([]*arena.Character, error) {
	listOut, err := o.characterRepo.ListByTeam(ctx, character.ListByTeamInput{Team: team})
	if err != nil {
		return nil, err
	}
	if len(listOut.Characters) == 0 {
		return nil, errors.NotFoundf("team %q not found", team)
	}
	return listOut.Characters, nil
}

// reviveRoster rebuilds combatants for the surviving roster, restoring each
// member's health from the last recorded snapshot. Members without a snapshot
// entry enter at full health.
func (o *orchestrator) reviveRoster(ctx context.Context, ids []int64, healths map[int64]float64) ([]*combat.Combatant, error) {
	roster := make([]*combat.Combatant, 0, len(ids))
	for _, id := range ids {
		char, err := o.loadCharacter(ctx, id)
		if err != nil {
			return nil, err
		}
		sim := combat.NewCombatant(char)
		if h, ok := healths[id]; ok {
			sim.SetHealth(h)
		}
		roster = append(roster, sim)
	}
	return roster, nil
}

// resetHealth restores every participant to full health in the character
// store once a team battle concludes
func (o *orchestrator) resetHealth(ctx context.Context, teams ...[]*arena.Character) error {
	var all []*arena.Character
	for _, team := range teams {
		for _, member := range team {
			member.Health = member.MaxHealth
			all = append(all, member)
		}
	}

	if _, err := o.characterRepo.UpdateMany(ctx, character.UpdateManyInput{Characters: all}); err != nil {
		return errors.Wrap(err, "failed to reset character health")
	}
	return nil
}

// validateMatchup enforces the team battle preconditions: both rosters have
// exactly three members of one kind, and the kinds differ between teams
func validateMatchup(nameA string, teamA []*arena.Character, nameB string, teamB []*arena.Character) error {
	for _, t := range []struct {
		name    string
		members []*arena.Character
	}{{nameA, teamA}, {nameB, teamB}} {
		if len(t.members) != combat.TeamSize {
			return errors.FailedPreconditionf(
				"team %q must have exactly %d members, has %d", t.name, combat.TeamSize, len(t.members))
		}
		for _, m := range t.members[1:] {
			if m.Kind != t.members[0].Kind {
				return errors.FailedPreconditionf("team %q mixes heroes and villains", t.name)
			}
		}
	}

	if teamA[0].Kind == teamB[0].Kind {
		return errors.FailedPreconditionf(
			"matchup requires a hero team and a villain team, got %s vs %s", teamA[0].Kind, teamB[0].Kind)
	}
	return nil
}

// commitSimulation writes the simulation-owned fields back onto the
// persisted character
func commitSimulation(c *arena.Character, sim *combat.Combatant) {
	c.UltimateCharge = sim.UltimateCharge
	c.UltimateReady = sim.UltimateReady
}

func combatants(members []*arena.Character) []*combat.Combatant {
	sims := make([]*combat.Combatant, 0, len(members))
	for _, m := range members {
		sims = append(sims, combat.NewCombatant(m))
	}
	return sims
}

func rosterIDs(roster []*combat.Combatant) []int64 {
	ids := make([]int64, 0, len(roster))
	for _, m := range roster {
		ids = append(ids, m.ID)
	}
	return ids
}

// lastSnapshot extracts the per-member health map from the most recent
// round entry
func lastSnapshot(record *arena.FightRecord) map[int64]float64 {
	healths := make(map[int64]float64)
	if len(record.Rounds) == 0 {
		return healths
	}

	last := record.Rounds[len(record.Rounds)-1]
	for _, m := range last.TeamAState {
		healths[m.CharacterID] = m.Health
	}
	for _, m := range last.TeamBState {
		healths[m.CharacterID] = m.Health
	}
	return healths
}

// nextRound returns the round number the next exchange should carry
func nextRound(record *arena.FightRecord) int32 {
	if len(record.Rounds) == 0 {
		return 1
	}
	return record.Rounds[len(record.Rounds)-1].Round + 1
}
