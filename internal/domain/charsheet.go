package domain

import "time"

// Ability score and level bounds for character sheets
const (
	MinAbilityScore = 3
	MaxAbilityScore = 18
	MinLevel        = 1
	MaxLevel        = 20
)

// AbilityScores is one versioned snapshot of a character's attributes.
// Every update appends a new snapshot to the owner's history.
type AbilityScores struct {
	Timestamp time.Time `json:"timestamp"`
	Level     int       `json:"level"`
	Str       int       `json:"strength"`
	Dex       int       `json:"dexterity"`
	Con       int       `json:"constitution"`
	Int       int       `json:"intelligence"`
	Wis       int       `json:"wisdom"`
	Cha       int       `json:"charisma"`
}

// CharacterSheet is a participant's record. One live sheet per owner;
// deletion is allowed and recreation after deletion starts a fresh history.
type CharacterSheet struct {
	OwnerID   string        `json:"owner_id"`
	Name      string        `json:"name"`
	RaceClass string        `json:"race_class"`
	Scores    AbilityScores `json:"scores"`
	CreatedAt time.Time     `json:"created_at"`
}
