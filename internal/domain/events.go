package domain

// Event type names for betting pool engine events
const (
	EventTypeRoundCreated = "RoundCreated"
	EventTypeStakePlaced  = "StakePlaced"
	EventTypeRoundEnded   = "RoundEnded"
	EventTypeWinClaimed   = "WinClaimed"
)
