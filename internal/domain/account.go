package domain

import "time"

// Account holds a participant's withdrawable balance. Stakes are debited
// from here at escrow time; claims are credited back here.
type Account struct {
	ParticipantID string    `json:"participant_id"`
	Balance       int64     `json:"balance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
