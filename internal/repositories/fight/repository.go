// Package fight provides repository interface and types for fight records
package fight

//go:generate mockgen -destination=mock/mock_repository.go -package=fightmock github.com/arenaforge/arena-api/internal/repositories/fight Repository

import (
	"context"

	"github.com/arenaforge/arena-api/internal/entities/arena"
)

// Repository defines the interface for fight record storage operations
type Repository interface {
	// Create stores a new fight record, assigning the next available ID
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a fight record by ID
	// Returns errors.NotFound if the record doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing fight record (used to append rounds on
	// battle continuation)
	// Returns errors.NotFound if the record doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a fight record
	// Returns errors.NotFound if the record doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves all fight records, ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput contains parameters for creating a fight record
type CreateInput struct {
	Record *arena.FightRecord
}

// CreateOutput contains the result of creating a fight record
type CreateOutput struct {
	Record *arena.FightRecord
}

// GetInput contains parameters for retrieving a fight record
type GetInput struct {
	ID int64
}

// GetOutput contains the result of retrieving a fight record
type GetOutput struct {
	Record *arena.FightRecord
}

// UpdateInput contains parameters for updating a fight record
type UpdateInput struct {
	Record *arena.FightRecord
}

// UpdateOutput contains the result of updating a fight record
type UpdateOutput struct {
	Record *arena.FightRecord
}

// DeleteInput contains parameters for deleting a fight record
type DeleteInput struct {
	ID int64
}

// DeleteOutput contains the result of deleting a fight record
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListInput contains parameters for listing fight records
type ListInput struct {
	// Empty for now, pagination can be added later
}

// ListOutput contains the result of listing fight records
type ListOutput struct {
	Records []*arena.FightRecord
}
