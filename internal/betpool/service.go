package betpool

import (
	"context"
	"fmt"

	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/event"
	"github.com/wagerworks/parimutuel/internal/logger"
	"github.com/wagerworks/parimutuel/internal/merkle"
	"github.com/wagerworks/parimutuel/internal/repository"
)

// Service defines the interface for betting round operations
type Service interface {
	CreateRound(ctx context.Context, creatorID, description string, feeBps int) (*domain.Round, error)
	PlaceStake(ctx context.Context, roundID int64, participantID string, side domain.Side, amount int64) error
	Resolve(ctx context.Context, roundID int64, callerID string, outcome domain.RoundState, commitment []byte) (*domain.Round, error)
	ClaimWin(ctx context.Context, roundID int64, participantID string) (int64, error)
	ClaimWinWithProof(ctx context.Context, roundID int64, participantID string, amount int64, proof [][]byte) (int64, error)
	GetRound(ctx context.Context, id int64) (*domain.Round, error)
	GetCommitment(ctx context.Context, roundID int64) ([]byte, error)
	RoundCount(ctx context.Context) (int64, error)
	GetStake(ctx context.Context, roundID int64, participantID string, side domain.Side) (int64, error)
	HasClaimed(ctx context.Context, roundID int64, participantID string) (bool, error)
	ClaimMode() domain.ClaimMode
}

type service struct {
	repo      repository.Betpool
	eventBus  event.Publisher
	claimMode domain.ClaimMode
	maxFeeBps int
	cache     *roundCache
}

// NewService creates a new betpool service. claimMode fixes the payout
// authorization strategy for the deployment's lifetime; maxFeeBps caps the
// creator fee rate accepted at round creation.
func NewService(repo repository.Betpool, eventBus event.Publisher, claimMode domain.ClaimMode, maxFeeBps int) (Service, error) {
	if !claimMode.Valid() {
		return nil, fmt.Errorf("%w: claim mode %q", domain.ErrInvalidInput, claimMode)
	}
	if maxFeeBps <= 0 || maxFeeBps >= domain.FeeDenominator {
		return nil, fmt.Errorf("%w: max fee %d bps", domain.ErrInvalidFeeRate, maxFeeBps)
	}

	cache, err := newRoundCache(DefaultRoundCacheSize)
	if err != nil {
		return nil, err
	}

	return &service{
		repo:      repo,
		eventBus:  eventBus,
		claimMode: claimMode,
		maxFeeBps: maxFeeBps,
		cache:     cache,
	}, nil
}

// ClaimMode reports the deployment's payout authorization strategy
func (s *service) ClaimMode() domain.ClaimMode {
	return s.claimMode
}

// CreateRound opens a new binary-outcome round. The fee rate is validated
// here, not at resolution, so a round with an unpayable fee can never
// accumulate stakes.
func (s *service) CreateRound(ctx context.Context, creatorID, description string, feeBps int) (*domain.Round, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateRoundCalled, "creatorID", creatorID, "feeBps", feeBps)

	if feeBps < 0 || feeBps > s.maxFeeBps {
		return nil, fmt.Errorf("%w: %d bps (accepted range 0-%d)", domain.ErrInvalidFeeRate, feeBps, s.maxFeeBps)
	}

	round := &domain.Round{
		Description: description,
		CreatorID:   creatorID,
		FeeBps:      feeBps,
		State:       domain.RoundStateInProgress,
	}

	created, err := s.repo.CreateRound(ctx, round)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateRound, err)
	}

	s.publish(ctx, event.NewRoundCreatedEvent(created))

	return created, nil
}

// PlaceStake escrows amount from the participant's wallet onto one side of an
// in-progress round. The debit and the stake record commit atomically; a
// terminal or missing round leaves the wallet untouched.
func (s *service) PlaceStake(ctx context.Context, roundID int64, participantID string, side domain.Side, amount int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlaceStakeCalled, "roundID", roundID, "participantID", participantID, "side", side, "amount", amount)

	if amount <= 0 {
		return domain.ErrStakeAmountPositive
	}
	if !side.Valid() {
		return domain.ErrInvalidSide
	}

	tx, err := s.repo.BeginStakeTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.DebitAccount(ctx, participantID, amount); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToDebitAccount, err)
	}

	rows, err := tx.AddStake(ctx, &domain.Stake{
		RoundID:       roundID,
		ParticipantID: participantID,
		Side:          side,
		Amount:        amount,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToRecordStake, err)
	}
	if rows == 0 {
		// The guard rejected the stake; distinguish missing from resolved
		if _, getErr := s.repo.GetRound(ctx, roundID); getErr != nil {
			return getErr
		}
		return domain.ErrRoundNotActive
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	s.publish(ctx, event.NewStakePlacedEvent(roundID, side, participantID, amount))

	return nil
}

// Resolve transitions an in-progress round to a terminal outcome. Only the
// round's creator may resolve, exactly once; the state flip is conditional at
// the storage layer so concurrent resolutions cannot both land. In proof-gated
// deployments a side-win resolution must carry the commitment root that later
// claims are verified against; refund outcomes never carry one.
func (s *service) Resolve(ctx context.Context, roundID int64, callerID string, outcome domain.RoundState, commitment []byte) (*domain.Round, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgResolveCalled, "roundID", roundID, "callerID", callerID, "outcome", outcome)

	if !outcome.ValidOutcome() {
		return nil, domain.ErrInvalidOutcome
	}

	round, err := s.repo.GetRound(ctx, roundID)
	if err != nil {
		return nil, err
	}
	if round.CreatorID != callerID {
		return nil, domain.ErrNotCreator
	}

	winOutcome := outcome == domain.RoundStateWinX || outcome == domain.RoundStateWinY
	if s.claimMode == domain.ClaimModeProof && winOutcome {
		if len(commitment) != merkle.HashSize {
			return nil, domain.ErrCommitmentRequired
		}
	} else if len(commitment) > 0 {
		return nil, domain.ErrUnexpectedCommitment
	}

	// The flipped row, not the pre-flip read, is what gets cached and
	// published: a stake can legally commit between the read above and the
	// flip, and its amount must be in the terminal totals.
	resolved, err := s.repo.ResolveRound(ctx, roundID, outcome, commitment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToResolveRound, err)
	}
	if resolved == nil {
		return nil, domain.ErrRoundNotActive
	}
	s.cache.Set(resolved)

	// The fee is only retained on side wins; refund outcomes return the
	// full pool to its stakers
	var fee int64
	if winOutcome {
		fee = feeAmount(resolved.Pool(), resolved.FeeBps)
	}

	log.Info(LogMsgRoundResolved, "roundID", roundID, "outcome", outcome, "pool", resolved.Pool(), "fee", fee)

	s.publish(ctx, event.NewRoundEndedEvent(resolved, outcome, fee))

	return resolved, nil
}

// ClaimWin pays out a participant's entitlement from a resolved round,
// derived from the engine's own stake ledger. In proof-gated deployments this
// path still serves Cancelled and Draw refunds; side-win claims must go
// through ClaimWinWithProof.
func (s *service) ClaimWin(ctx context.Context, roundID int64, participantID string) (int64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgClaimWinCalled, "roundID", roundID, "participantID", participantID)

	round, err := s.loadRound(ctx, roundID)
	if err != nil {
		return 0, err
	}
	if !round.State.Terminal() {
		return 0, domain.ErrRoundStillActive
	}

	winOutcome := round.State == domain.RoundStateWinX || round.State == domain.RoundStateWinY
	if winOutcome && s.claimMode == domain.ClaimModeProof {
		return 0, domain.ErrProofModeRequired
	}

	stakes, err := s.repo.GetParticipantStakes(ctx, roundID, participantID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToGetStakes, err)
	}

	amount := entitlement(round, stakes)
	if amount == 0 {
		return 0, domain.ErrNoWin
	}

	if err := s.executeClaimTx(ctx, roundID, participantID, amount); err != nil {
		return 0, err
	}

	log.Info(LogMsgPayoutCredited, "roundID", roundID, "participantID", participantID, "amount", amount)

	s.publish(ctx, event.NewWinClaimedEvent(roundID, participantID, amount))

	return amount, nil
}

// ClaimWinWithProof pays out a side-win entitlement authorized by a merkle
// inclusion proof against the commitment recorded at resolution. Only
// available in proof-gated deployments, and only for win outcomes; refunds
// use ClaimWin in every deployment.
func (s *service) ClaimWinWithProof(ctx context.Context, roundID int64, participantID string, amount int64, proof [][]byte) (int64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgProofClaimCalled, "roundID", roundID, "participantID", participantID, "amount", amount)

	if s.claimMode != domain.ClaimModeProof {
		return 0, domain.ErrLedgerModeRequired
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: claim amount must be positive", domain.ErrInvalidInput)
	}

	round, err := s.loadRound(ctx, roundID)
	if err != nil {
		return 0, err
	}
	if !round.State.Terminal() {
		return 0, domain.ErrRoundStillActive
	}
	if round.State != domain.RoundStateWinX && round.State != domain.RoundStateWinY {
		// Refund outcomes carry no commitment; there is no win to prove
		return 0, domain.ErrNoWin
	}

	if !merkle.Verify(round.Commitment, merkle.Leaf(participantID, amount), proof) {
		return 0, domain.ErrInvalidProof
	}

	if err := s.executeClaimTx(ctx, roundID, participantID, amount); err != nil {
		return 0, err
	}

	log.Info(LogMsgPayoutCredited, "roundID", roundID, "participantID", participantID, "amount", amount)

	s.publish(ctx, event.NewWinClaimedEvent(roundID, participantID, amount))

	return amount, nil
}

// executeClaimTx records the claim flag and credits the wallet atomically.
// The flag lands first; a duplicate claim aborts before any funds move.
func (s *service) executeClaimTx(ctx context.Context, roundID int64, participantID string, amount int64) error {
	tx, err := s.repo.BeginClaimTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	claimed, err := tx.MarkClaimed(ctx, roundID, participantID, amount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToMarkClaimed, err)
	}
	if !claimed {
		return domain.ErrAlreadyClaimed
	}

	if err := tx.CreditAccount(ctx, participantID, amount); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCreditAccount, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	return nil
}

// GetRound retrieves a round by ID
func (s *service) GetRound(ctx context.Context, id int64) (*domain.Round, error) {
	return s.loadRound(ctx, id)
}

// GetCommitment returns the merkle root recorded when the round was resolved.
// Empty for unresolved rounds and for refund outcomes.
func (s *service) GetCommitment(ctx context.Context, roundID int64) ([]byte, error) {
	round, err := s.loadRound(ctx, roundID)
	if err != nil {
		return nil, err
	}
	return round.Commitment, nil
}

// RoundCount returns the number of rounds ever created. Round IDs are
// assigned sequentially from zero, so this is also the next round's ID.
func (s *service) RoundCount(ctx context.Context) (int64, error) {
	count, err := s.repo.RoundCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToCountRounds, err)
	}
	return count, nil
}

// GetStake returns the amount a participant has staked on one side of a round
func (s *service) GetStake(ctx context.Context, roundID int64, participantID string, side domain.Side) (int64, error) {
	if !side.Valid() {
		return 0, domain.ErrInvalidSide
	}
	stake, err := s.repo.GetStake(ctx, roundID, participantID, side)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToGetStakes, err)
	}
	return stake, nil
}

// HasClaimed reports whether a participant has already claimed from a round
func (s *service) HasClaimed(ctx context.Context, roundID int64, participantID string) (bool, error) {
	claimed, err := s.repo.HasClaimed(ctx, roundID, participantID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextFailedToCheckClaim, err)
	}
	return claimed, nil
}

// loadRound fetches a round, serving terminal rounds from the cache.
// In-progress rounds are never cached; their totals change with every stake.
func (s *service) loadRound(ctx context.Context, id int64) (*domain.Round, error) {
	if round, ok := s.cache.Get(id); ok {
		return round, nil
	}

	round, err := s.repo.GetRound(ctx, id)
	if err != nil {
		return nil, err
	}
	if round.State.Terminal() {
		s.cache.Set(round)
	}
	return round, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}
