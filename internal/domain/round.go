package domain

import "time"

// RoundState represents the lifecycle state of a betting round
type RoundState string

const (
	RoundStateInProgress RoundState = "InProgress"
	RoundStateCancelled  RoundState = "Cancelled"
	RoundStateWinX       RoundState = "WinX"
	RoundStateWinY       RoundState = "WinY"
	RoundStateDraw       RoundState = "Draw"
)

// Terminal reports whether the state is absorbing. Every state except
// InProgress is terminal; a terminal round never transitions again.
func (s RoundState) Terminal() bool {
	switch s {
	case RoundStateCancelled, RoundStateWinX, RoundStateWinY, RoundStateDraw:
		return true
	}
	return false
}

// ValidOutcome reports whether the state is an acceptable resolution target.
// Resolving back to InProgress (or to an unknown value) is rejected.
func (s RoundState) ValidOutcome() bool {
	return s.Terminal()
}

// Wire codes for round outcomes, as exposed on the HTTP surface.
// 0 and 1 are reserved (uninitialized / in-progress) and never accepted.
const (
	OutcomeCodeCancelled = 2
	OutcomeCodeWinX      = 3
	OutcomeCodeWinY      = 4
	OutcomeCodeDraw      = 5
)

// OutcomeFromCode maps a wire outcome code to a round state.
// Returns ErrInvalidOutcome for anything that is not a terminal outcome.
func OutcomeFromCode(code int) (RoundState, error) {
	switch code {
	case OutcomeCodeCancelled:
		return RoundStateCancelled, nil
	case OutcomeCodeWinX:
		return RoundStateWinX, nil
	case OutcomeCodeWinY:
		return RoundStateWinY, nil
	case OutcomeCodeDraw:
		return RoundStateDraw, nil
	}
	return "", ErrInvalidOutcome
}

// Side is one of the two mutually exclusive outcome choices of a round
type Side string

const (
	SideX Side = "X"
	SideY Side = "Y"
)

// Wire codes for sides (0 = X, 1 = Y)
const (
	SideCodeX = 0
	SideCodeY = 1
)

// SideFromCode maps a wire side code to a Side
func SideFromCode(code int) (Side, error) {
	switch code {
	case SideCodeX:
		return SideX, nil
	case SideCodeY:
		return SideY, nil
	}
	return "", ErrInvalidSide
}

// Valid reports whether the side is one of the two known sides
func (s Side) Valid() bool {
	return s == SideX || s == SideY
}

// FeeDenominator is the fixed scale for creator fee rates. A round's FeeBps
// is a numerator over this denominator (100 bps = 1%).
const FeeDenominator = 10000

// ClaimMode selects the payout-authorization strategy for a deployment.
// The two strategies are alternatives, never combined for win payouts.
type ClaimMode string

const (
	// ClaimModeLedger derives entitlements from the engine's own stake ledger
	ClaimModeLedger ClaimMode = "ledger"
	// ClaimModeProof authorizes win payouts by merkle membership proof
	// against the commitment stored at resolution
	ClaimModeProof ClaimMode = "proof"
)

// Valid reports whether the claim mode is a known strategy
func (m ClaimMode) Valid() bool {
	return m == ClaimModeLedger || m == ClaimModeProof
}

// Round is one binary-outcome betting market instance.
// Rounds are never deleted; terminal rounds remain queryable and claimable
// indefinitely.
type Round struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	CreatorID   string     `json:"creator_id"`
	FeeBps      int        `json:"fee_bps"`
	State       RoundState `json:"state"`
	TotalStakeX int64      `json:"total_stake_x"`
	TotalStakeY int64      `json:"total_stake_y"`
	Commitment  []byte     `json:"commitment,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}

// Pool returns the total value staked on both sides
func (r *Round) Pool() int64 {
	return r.TotalStakeX + r.TotalStakeY
}

// SideTotal returns the total staked on one side
func (r *Round) SideTotal(side Side) int64 {
	if side == SideX {
		return r.TotalStakeX
	}
	return r.TotalStakeY
}

// Stake is the accumulated amount one participant has committed to one side
// of one round. Stakes only ever grow while the round is InProgress and are
// frozen once it resolves.
type Stake struct {
	RoundID       int64  `json:"round_id"`
	ParticipantID string `json:"participant_id"`
	Side          Side   `json:"side"`
	Amount        int64  `json:"amount"`
}

// Claim records a completed payout for (round, participant). At most one
// exists per pair; it is written before the wallet credit and never removed.
type Claim struct {
	RoundID       int64     `json:"round_id"`
	ParticipantID string    `json:"participant_id"`
	Amount        int64     `json:"amount"`
	ClaimedAt     time.Time `json:"claimed_at"`
}
