// Package roster implements the roster orchestrator for character CRUD and
// team assignment
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/arenaforge/arena-api/internal/orchestrators/roster Service

import (
	"context"
	"log/slog"

	"github.com/arenaforge/arena-api/internal/engine/combat"
	"github.com/arenaforge/arena-api/internal/entities/arena"
	"github.com/arenaforge/arena-api/internal/errors"
	"github.com/arenaforge/arena-api/internal/repositories/character"
)

// Service defines the interface for roster operations
type Service interface {
	// CreateCharacter creates a level-1 character with derived stats
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// ListCharacters retrieves all characters, optionally filtered by team
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// DeleteCharacter removes a character
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// AssignTeam moves a character onto a team, enforcing roster limits
	AssignTeam(ctx context.Context, input *AssignTeamInput) (*AssignTeamOutput, error)
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	CharacterRepo character.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
}

// NewOrchestrator creates a new roster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{characterRepo: cfg.CharacterRepo}, nil
}

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", input.Name, vb)
	errors.ValidateEnum("Kind", string(input.Kind),
		[]string{string(arena.KindHero), string(arena.KindVillain)}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if input.Team != "" {
		if err := o.validateTeamSlot(ctx, input.Team, input.Kind); err != nil {
			return nil, err
		}
	}

	char := &arena.Character{
		Name:              input.Name,
		City:              input.City,
		Kind:              input.Kind,
		Team:              input.Team,
		Level:             1,
		Experience:        0,
		Shield:            combat.ShieldForLevel(1),
		MaxHealth:         combat.MaxHealthForLevel(1),
		Health:            combat.MaxHealthForLevel(1),
		UltimateThreshold: combat.BaseUltimateThreshold,
	}

	createOut, err := o.characterRepo.Create(ctx, character.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", createOut.Character.ID,
		"name", createOut.Character.Name,
		"kind", createOut.Character.Kind)

	return &CreateCharacterOutput{Character: createOut.Character}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOut, err := o.characterRepo.Get(ctx, character.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: getOut.Character}, nil
}

func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input != nil && input.Team != "" {
		listOut, err := o.characterRepo.ListByTeam(ctx, character.ListByTeamInput{Team: input.Team})
		if err != nil {
			return nil, err
		}
		return &ListCharactersOutput{Characters: listOut.Characters}, nil
	}

	listOut, err := o.characterRepo.List(ctx, character.ListInput{})
	if err != nil {
		return nil, err
	}

	return &ListCharactersOutput{Characters: listOut.Characters}, nil
}

func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.characterRepo.Delete(ctx, character.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) AssignTeam(ctx context.Context, input *AssignTeamInput) (*AssignTeamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOut, err := o.characterRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	char := getOut.Character

	if char.Team == input.Team {
		return &AssignTeamOutput{Character: char}, nil
	}

	if input.Team != "" {
		if err := o.validateTeamSlot(ctx, input.Team, char.Kind); err != nil {
			return nil, err
		}
	}

	char.Team = input.Team
	updateOut, err := o.characterRepo.Update(ctx, character.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update character team")
	}

	slog.InfoContext(ctx, "character team updated",
		"character_id", char.ID,
		"team", input.Team)

	return &AssignTeamOutput{Character: updateOut.Character}, nil
}

// validateTeamSlot enforces the team invariant at assignment time: at most
// three members, all of one kind
func (o *orchestrator) validateTeamSlot(ctx context.Context, team string, kind arena.Kind) error {
	listOut, err := o.characterRepo.ListByTeam(ctx, character.ListByTeamInput{Team: team})
	if err != nil {
		return err
	}

	if len(listOut.Characters) >= combat.TeamSize {
		return errors.FailedPreconditionf("team %q already has %d members", team, combat.TeamSize)
	}
	for _, member := range listOut.Characters {
		if member.Kind != kind {
			return errors.FailedPreconditionf(
				"team %q is a %s team, cannot add a %s", team, member.Kind, kind)
		}
	}
	return nil
}
