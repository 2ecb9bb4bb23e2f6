package betpool

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/repository"
)

// fakeRepo is an in-memory repository.Betpool used for end-to-end service
// scenarios where mock choreography would obscure the accounting under test.

type stakeKey struct {
	roundID       int64
	participantID string
	side          domain.Side
}

type claimKey struct {
	roundID       int64
	participantID string
}

type fakeRepo struct {
	mu       sync.Mutex
	nextID   int64
	rounds   map[int64]*domain.Round
	stakes   map[stakeKey]int64
	claims   map[claimKey]bool
	balances map[string]int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rounds:   make(map[int64]*domain.Round),
		stakes:   make(map[stakeKey]int64),
		claims:   make(map[claimKey]bool),
		balances: make(map[string]int64),
	}
}

func (r *fakeRepo) fund(participantID string, amount int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[participantID] += amount
}

func (r *fakeRepo) balance(participantID string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balances[participantID]
}

func copyRound(round *domain.Round) *domain.Round {
	cp := *round
	if round.Commitment != nil {
		cp.Commitment = append([]byte(nil), round.Commitment...)
	}
	return &cp
}

func (r *fakeRepo) CreateRound(_ context.Context, round *domain.Round) (*domain.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyRound(round)
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++
	r.rounds[stored.ID] = stored
	return copyRound(stored), nil
}

func (r *fakeRepo) GetRound(_ context.Context, id int64) (*domain.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	round, ok := r.rounds[id]
	if !ok {
		return nil, domain.ErrRoundNotFound
	}
	return copyRound(round), nil
}

func (r *fakeRepo) RoundCount(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextID, nil
}

func (r *fakeRepo) GetStake(_ context.Context, roundID int64, participantID string, side domain.Side) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stakes[stakeKey{roundID, participantID, side}], nil
}

func (r *fakeRepo) GetParticipantStakes(_ context.Context, roundID int64, participantID string) (map[domain.Side]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[domain.Side]int64)
	for _, side := range []domain.Side{domain.SideX, domain.SideY} {
		if amt := r.stakes[stakeKey{roundID, participantID, side}]; amt > 0 {
			out[side] = amt
		}
	}
	return out, nil
}

func (r *fakeRepo) GetRoundStakes(_ context.Context, roundID int64) ([]domain.Stake, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Stake
	for key, amt := range r.stakes {
		if key.roundID == roundID {
			out = append(out, domain.Stake{
				RoundID:       key.roundID,
				ParticipantID: key.participantID,
				Side:          key.side,
				Amount:        amt,
			})
		}
	}
	return out, nil
}

func (r *fakeRepo) HasClaimed(_ context.Context, roundID int64, participantID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.claims[claimKey{roundID, participantID}], nil
}

func (r *fakeRepo) ResolveRound(_ context.Context, id int64, outcome domain.RoundState, commitment []byte) (*domain.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	round, ok := r.rounds[id]
	if !ok || round.State != domain.RoundStateInProgress {
		return nil, nil
	}
	now := time.Now()
	round.State = outcome
	round.Commitment = append([]byte(nil), commitment...)
	round.EndTime = &now
	return copyRound(round), nil
}

// lateStakeRepo commits one extra stake at the top of ResolveRound, modelling
// a stake transaction that lands between the resolver's read of the round and
// the terminal state flip. The round is still in progress at that point, so
// the stake guard accepts it.
type lateStakeRepo struct {
	*fakeRepo
	late domain.Stake
	once sync.Once
}

func (r *lateStakeRepo) ResolveRound(ctx context.Context, id int64, outcome domain.RoundState, commitment []byte) (*domain.Round, error) {
	var err error
	r.once.Do(func() {
		tx, txErr := r.fakeRepo.BeginStakeTx(ctx)
		if txErr != nil {
			err = txErr
			return
		}
		if err = tx.DebitAccount(ctx, r.late.ParticipantID, r.late.Amount); err != nil {
			return
		}
		if _, err = tx.AddStake(ctx, &r.late); err != nil {
			return
		}
		err = tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}
	return r.fakeRepo.ResolveRound(ctx, id, outcome, commitment)
}

func (r *fakeRepo) BeginStakeTx(_ context.Context) (repository.StakeTx, error) {
	return &fakeStakeTx{repo: r}, nil
}

func (r *fakeRepo) BeginClaimTx(_ context.Context) (repository.ClaimTx, error) {
	return &fakeClaimTx{repo: r}, nil
}

// fakeStakeTx buffers the debit and stake until commit

type fakeStakeTx struct {
	repo   *fakeRepo
	debit  *struct {
		participantID string
		amount        int64
	}
	stake  *domain.Stake
	closed bool
}

func (t *fakeStakeTx) DebitAccount(_ context.Context, participantID string, amount int64) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()

	balance, ok := t.repo.balances[participantID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if balance < amount {
		return domain.ErrInsufficientFunds
	}
	t.debit = &struct {
		participantID string
		amount        int64
	}{participantID, amount}
	return nil
}

func (t *fakeStakeTx) AddStake(_ context.Context, stake *domain.Stake) (int64, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()

	round, ok := t.repo.rounds[stake.RoundID]
	if !ok || round.State != domain.RoundStateInProgress {
		return 0, nil
	}
	cp := *stake
	t.stake = &cp
	return 1, nil
}

func (t *fakeStakeTx) Commit(_ context.Context) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()

	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true

	if t.debit != nil {
		t.repo.balances[t.debit.participantID] -= t.debit.amount
	}
	if t.stake != nil {
		t.repo.stakes[stakeKey{t.stake.RoundID, t.stake.ParticipantID, t.stake.Side}] += t.stake.Amount
		round := t.repo.rounds[t.stake.RoundID]
		if t.stake.Side == domain.SideX {
			round.TotalStakeX += t.stake.Amount
		} else {
			round.TotalStakeY += t.stake.Amount
		}
	}
	return nil
}

func (t *fakeStakeTx) Rollback(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

// fakeClaimTx buffers the claim flag and credit until commit

type fakeClaimTx struct {
	repo   *fakeRepo
	claim  *claimKey
	credit *struct {
		participantID string
		amount        int64
	}
	closed bool
}

func (t *fakeClaimTx) MarkClaimed(_ context.Context, roundID int64, participantID string, _ int64) (bool, error) {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()

	key := claimKey{roundID, participantID}
	if t.repo.claims[key] {
		return false, nil
	}
	t.claim = &key
	return true, nil
}

func (t *fakeClaimTx) CreditAccount(_ context.Context, participantID string, amount int64) error {
	t.credit = &struct {
		participantID string
		amount        int64
	}{participantID, amount}
	return nil
}

func (t *fakeClaimTx) Commit(_ context.Context) error {
	t.repo.mu.Lock()
	defer t.repo.mu.Unlock()

	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true

	if t.claim != nil {
		t.repo.claims[*t.claim] = true
	}
	if t.credit != nil {
		t.repo.balances[t.credit.participantID] += t.credit.amount
	}
	return nil
}

func (t *fakeClaimTx) Rollback(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}
