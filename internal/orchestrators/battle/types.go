package battle

import (
	"github.com/arenaforge/arena-api/internal/engine/combat"
	"github.com/arenaforge/arena-api/internal/entities/arena"
)

// DuelInput requests a 1v1 fight between two characters. The pairing must
// contain exactly one hero and one villain, in either order.
type DuelInput struct {
	CharacterID int64
	OpponentID  int64
}

// DuelOutput carries the stored fight record and the updated characters
type DuelOutput struct {
	Fight  *arena.FightRecord
	Winner *arena.Character
	Loser  *arena.Character
}

// TeamBattleInput requests a 3v3 battle between two named teams.
// Rounds is required in scripted mode and must be empty in simulated mode.
type TeamBattleInput struct {
	TeamA  string
	TeamB  string
	Mode   arena.BattleMode
	Rounds []combat.ScriptedRound
}

// TeamBattleOutput carries the stored fight record
type TeamBattleOutput struct {
	Fight *arena.FightRecord
}

// ContinueTeamBattleInput appends rounds to an inconclusive team battle.
// Rounds applies to scripted fights only; simulated fights run to conclusion.
type ContinueTeamBattleInput struct {
	FightID int64
	Rounds  []combat.ScriptedRound
}

// ContinueTeamBattleOutput carries the updated fight record
type ContinueTeamBattleOutput struct {
	Fight *arena.FightRecord
}

// GetFightInput identifies a fight record
type GetFightInput struct {
	ID int64
}

// GetFightOutput carries a fight record
type GetFightOutput struct {
	Fight *arena.FightRecord
}

// DeleteFightInput identifies a fight record to delete
type DeleteFightInput struct {
	ID int64
}

// DeleteFightOutput is the result of deleting a fight record
type DeleteFightOutput struct {
	// Empty for now, can be extended later
}

// ListFightsInput lists all fight records
type ListFightsInput struct {
	// Empty for now, pagination can be added later
}

// ListFightsOutput carries all fight records
type ListFightsOutput struct {
	Fights []*arena.FightRecord
}
