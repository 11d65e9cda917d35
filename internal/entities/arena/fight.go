package arena

// FightKind distinguishes 1v1 duels from team battles
type FightKind string

// Fight kinds
const (
	FightDuel FightKind = "duel"
	FightTeam FightKind = "team"
)

// BattleMode selects how team battle rounds are produced
type BattleMode string

// Battle modes
const (
	// ModeScripted applies caller-supplied rounds with flat per-move damage
	ModeScripted BattleMode = "scripted"
	// ModeSimulated runs full duels between front members, with shield and
	// ultimate mechanics
	ModeSimulated BattleMode = "simulated"
)

// Team battle results. Inconclusive battles can be continued later.
const (
	ResultTeamAWins    = "Team A wins"
	ResultTeamBWins    = "Team B wins"
	ResultInconclusive = "inconclusive"
)

// FightRecord is a persisted, continuable record of a battle.
// Duel fights fill HeroID/VillainID/WinnerID/TurnLog; team fights fill
// TeamA/TeamB/Mode/Result/Rounds plus the remaining rosters used to resume
// an inconclusive battle.
type FightRecord struct {
	ID   int64     `json:"fightId"`
	Kind FightKind `json:"kind"`

	// 1v1 pairing
	HeroID    int64       `json:"heroId,omitempty"`
	VillainID int64       `json:"villainId,omitempty"`
	WinnerID  int64       `json:"winnerId,omitempty"`
	TurnLog   []TurnEntry `json:"turnLog,omitempty"`

	// Team pairing
	TeamA  string       `json:"teamA,omitempty"`
	TeamB  string       `json:"teamB,omitempty"`
	Mode   BattleMode   `json:"mode,omitempty"`
	Result string       `json:"result,omitempty"`
	Rounds []RoundEntry `json:"roundHistory,omitempty"`

	// Remaining roster character ids, front member first. Dead members are
	// removed as they fall.
	RosterA []int64 `json:"rosterA,omitempty"`
	RosterB []int64 `json:"rosterB,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty"`
	UpdatedAt int64 `json:"updatedAt,omitempty"`
}

// TurnEntry records a single exchange of a 1v1 duel
type TurnEntry struct {
	Turn                 int32   `json:"turn"`
	AttackerID           int64   `json:"attackerId"`
	DefenderID           int64   `json:"defenderId"`
	Attacker             string  `json:"attacker"`
	Defender             string  `json:"defender"`
	Move                 string  `json:"move"`
	Damage               float64 `json:"damage"`
	DefenderHealthBefore float64 `json:"defenderHealthBefore"`
	DefenderHealthAfter  float64 `json:"defenderHealthAfter"`
	Message              string  `json:"message"`
}

// RoundEntry records one attacker/defender exchange of a team battle,
// with health snapshots for every living member of both teams. Entries are
// append-only; continuation requests keep the round numbering going.
type RoundEntry struct {
	Round      int32          `json:"round"`
	Side       string         `json:"side"`
	AttackerID int64          `json:"attackerId"`
	DefenderID int64          `json:"defenderId"`
	Attacker   string         `json:"attacker"`
	Defender   string         `json:"defender"`
	Move       string         `json:"move"`
	Damage     float64        `json:"damage"`
	TeamAState []MemberHealth `json:"teamAState"`
	TeamBState []MemberHealth `json:"teamBState"`
	Message    string         `json:"message"`
}

// MemberHealth is a health snapshot for a living team member
type MemberHealth struct {
	CharacterID int64   `json:"characterId"`
	Name        string  `json:"name"`
	Health      float64 `json:"health"`
}
