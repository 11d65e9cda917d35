package roster

import (
	"github.com/arenaforge/arena-api/internal/entities/arena"
)

// CreateCharacterInput defines the input for creating a character.
// Name and Kind are mandatory; progression starts at level 1.
type CreateCharacterInput struct {
	Name string
	City string
	Kind arena.Kind
	Team string
}

// CreateCharacterOutput carries the stored character
type CreateCharacterOutput struct {
	Character *arena.Character
}

// GetCharacterInput identifies a character
type GetCharacterInput struct {
	ID int64
}

// GetCharacterOutput carries a character
type GetCharacterOutput struct {
	Character *arena.Character
}

// ListCharactersInput lists characters, optionally filtered by team
type ListCharactersInput struct {
	Team string
}

// ListCharactersOutput carries the matching characters
type ListCharactersOutput struct {
	Characters []*arena.Character
}

// DeleteCharacterInput identifies a character to delete
type DeleteCharacterInput struct {
	ID int64
}

// DeleteCharacterOutput is the result of deleting a character
type DeleteCharacterOutput struct {
	// Empty for now, can be extended later
}

// AssignTeamInput moves a character onto a team. An empty team name clears
// the membership.
type AssignTeamInput struct {
	CharacterID int64
	Team        string
}

// AssignTeamOutput carries the updated character
type AssignTeamOutput struct {
	Character *arena.Character
}
