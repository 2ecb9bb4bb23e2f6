package repository

import (
	"context"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// Betpool defines the interface for data access required by the betpool service
type Betpool interface {
	CreateRound(ctx context.Context, round *domain.Round) (*domain.Round, error)
	GetRound(ctx context.Context, id int64) (*domain.Round, error)
	RoundCount(ctx context.Context) (int64, error)
	GetStake(ctx context.Context, roundID int64, participantID string, side domain.Side) (int64, error)
	GetParticipantStakes(ctx context.Context, roundID int64, participantID string) (map[domain.Side]int64, error)
	GetRoundStakes(ctx context.Context, roundID int64) ([]domain.Stake, error)
	HasClaimed(ctx context.Context, roundID int64, participantID string) (bool, error)

	// ResolveRound flips the round to a terminal state only while it is still
	// in progress, recording the commitment when one is supplied. It returns
	// the round as of the flip, so callers see totals that include any stake
	// committed after they last read it; nil with no error means the round was
	// already terminal.
	ResolveRound(ctx context.Context, id int64, outcome domain.RoundState, commitment []byte) (*domain.Round, error)

	// Transaction support
	BeginStakeTx(ctx context.Context) (StakeTx, error)
	BeginClaimTx(ctx context.Context) (ClaimTx, error)
}

// StakeTx wraps escrow and stake recording in a single atomic transaction
type StakeTx interface {
	Tx // Commit, Rollback

	// DebitAccount moves amount out of the participant's wallet, failing on
	// missing account or insufficient balance.
	DebitAccount(ctx context.Context, participantID string, amount int64) error

	// AddStake records the stake and bumps the round's side total, guarded on
	// the round still being in progress. It returns the number of rows
	// updated; zero means the round was missing or already terminal.
	AddStake(ctx context.Context, stake *domain.Stake) (int64, error)
}

// ClaimTx wraps the claim flag and the wallet credit in a single atomic
// transaction, sequenced so the flag lands before any funds move
type ClaimTx interface {
	Tx // Commit, Rollback

	// MarkClaimed records the claim flag and paid amount for
	// (round, participant). It returns false without error when the flag
	// already exists.
	MarkClaimed(ctx context.Context, roundID int64, participantID string, amount int64) (bool, error)

	// CreditAccount moves amount into the participant's wallet, creating the
	// account if needed.
	CreditAccount(ctx context.Context, participantID string, amount int64) error
}
