// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/arenaforge/arena-api/internal/repositories/character Repository

import (
	"context"

	"github.com/arenaforge/arena-api/internal/entities/arena"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create creates a new character, assigning the next available ID
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for non-positive IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// UpdateMany replaces several existing characters in one transaction.
	// Used by fight resolution write-back and battle-reset flows.
	// Returns errors.NotFound if any character doesn't exist
	UpdateMany(ctx context.Context, input UpdateManyInput) (*UpdateManyOutput, error)

	// Delete deletes a character by ID
	// Returns errors.InvalidArgument for non-positive IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves all characters, ordered by ID
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByTeam retrieves all characters on a team, ordered by ID
	// Returns errors.InvalidArgument for empty team names
	// Returns errors.Internal for storage failures
	ListByTeam(ctx context.Context, input ListByTeamInput) (*ListByTeamOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *arena.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *arena.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *arena.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *arena.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *arena.Character
}

// UpdateManyInput defines the input for bulk character updates
type UpdateManyInput struct {
	Characters []*arena.Character
}

// UpdateManyOutput defines the output for bulk character updates
type UpdateManyOutput struct {
	Characters []*arena.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListInput defines the input for listing all characters
type ListInput struct {
	// Empty for now, pagination can be added later
}

// ListOutput defines the output for listing all characters
type ListOutput struct {
	Characters []*arena.Character
}

// ListByTeamInput defines the input for listing characters by team
type ListByTeamInput struct {
	Team string
}

// ListByTeamOutput defines the output for listing characters by team
type ListByTeamOutput struct {
	Characters []*arena.Character
}
