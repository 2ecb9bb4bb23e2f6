package betpool

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/event"
	"github.com/wagerworks/parimutuel/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateRound(ctx context.Context, round *domain.Round) (*domain.Round, error) {
	args := m.Called(ctx, round)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockRepository) GetRound(ctx context.Context, id int64) (*domain.Round, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockRepository) RoundCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetStake(ctx context.Context, roundID int64, participantID string, side domain.Side) (int64, error) {
	args := m.Called(ctx, roundID, participantID, side)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetParticipantStakes(ctx context.Context, roundID int64, participantID string) (map[domain.Side]int64, error) {
	args := m.Called(ctx, roundID, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Side]int64), args.Error(1)
}

func (m *MockRepository) GetRoundStakes(ctx context.Context, roundID int64) ([]domain.Stake, error) {
	args := m.Called(ctx, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stake), args.Error(1)
}

func (m *MockRepository) HasClaimed(ctx context.Context, roundID int64, participantID string) (bool, error) {
	args := m.Called(ctx, roundID, participantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ResolveRound(ctx context.Context, id int64, outcome domain.RoundState, commitment []byte) (*domain.Round, error) {
	args := m.Called(ctx, id, outcome, commitment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockRepository) BeginStakeTx(ctx context.Context) (repository.StakeTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.StakeTx), args.Error(1)
}

func (m *MockRepository) BeginClaimTx(ctx context.Context) (repository.ClaimTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ClaimTx), args.Error(1)
}

// MockStakeTx
type MockStakeTx struct {
	mock.Mock
}

func (m *MockStakeTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStakeTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStakeTx) DebitAccount(ctx context.Context, participantID string, amount int64) error {
	args := m.Called(ctx, participantID, amount)
	return args.Error(0)
}

func (m *MockStakeTx) AddStake(ctx context.Context, stake *domain.Stake) (int64, error) {
	args := m.Called(ctx, stake)
	return args.Get(0).(int64), args.Error(1)
}

// MockClaimTx
type MockClaimTx struct {
	mock.Mock
}

func (m *MockClaimTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClaimTx) MarkClaimed(ctx context.Context, roundID int64, participantID string, amount int64) (bool, error) {
	args := m.Called(ctx, roundID, participantID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockClaimTx) CreditAccount(ctx context.Context, participantID string, amount int64) error {
	args := m.Called(ctx, participantID, amount)
	return args.Error(0)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}
