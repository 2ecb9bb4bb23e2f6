package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/event"
	"github.com/wagerworks/parimutuel/internal/repository"
)

// MockBetpoolService is a testify mock of betpool.Service
type MockBetpoolService struct {
	mock.Mock
}

func (m *MockBetpoolService) CreateRound(ctx context.Context, creatorID, description string, feeBps int) (*domain.Round, error) {
	args := m.Called(ctx, creatorID, description, feeBps)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockBetpoolService) PlaceStake(ctx context.Context, roundID int64, participantID string, side domain.Side, amount int64) error {
	args := m.Called(ctx, roundID, participantID, side, amount)
	return args.Error(0)
}

func (m *MockBetpoolService) Resolve(ctx context.Context, roundID int64, callerID string, outcome domain.RoundState, commitment []byte) (*domain.Round, error) {
	args := m.Called(ctx, roundID, callerID, outcome, commitment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockBetpoolService) ClaimWin(ctx context.Context, roundID int64, participantID string) (int64, error) {
	args := m.Called(ctx, roundID, participantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBetpoolService) ClaimWinWithProof(ctx context.Context, roundID int64, participantID string, amount int64, proof [][]byte) (int64, error) {
	args := m.Called(ctx, roundID, participantID, amount, proof)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBetpoolService) GetRound(ctx context.Context, id int64) (*domain.Round, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockBetpoolService) GetCommitment(ctx context.Context, roundID int64) ([]byte, error) {
	args := m.Called(ctx, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBetpoolService) RoundCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBetpoolService) GetStake(ctx context.Context, roundID int64, participantID string, side domain.Side) (int64, error) {
	args := m.Called(ctx, roundID, participantID, side)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBetpoolService) HasClaimed(ctx context.Context, roundID int64, participantID string) (bool, error) {
	args := m.Called(ctx, roundID, participantID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBetpoolService) ClaimMode() domain.ClaimMode {
	args := m.Called()
	return args.Get(0).(domain.ClaimMode)
}

// MockWalletService is a testify mock of wallet.Service
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) CreateAccount(ctx context.Context, participantID string) (*domain.Account, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockWalletService) Deposit(ctx context.Context, participantID string, amount int64) (*domain.Account, error) {
	args := m.Called(ctx, participantID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockWalletService) Withdraw(ctx context.Context, participantID string, amount int64) (*domain.Account, error) {
	args := m.Called(ctx, participantID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockWalletService) GetBalance(ctx context.Context, participantID string) (int64, error) {
	args := m.Called(ctx, participantID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCharsheetService is a testify mock of charsheet.Service
type MockCharsheetService struct {
	mock.Mock
}

func (m *MockCharsheetService) CreateSheet(ctx context.Context, ownerID, name, raceClass string, scores domain.AbilityScores) (*domain.CharacterSheet, error) {
	args := m.Called(ctx, ownerID, name, raceClass, scores)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterSheet), args.Error(1)
}

func (m *MockCharsheetService) UpdateScores(ctx context.Context, ownerID string, scores domain.AbilityScores) error {
	args := m.Called(ctx, ownerID, scores)
	return args.Error(0)
}

func (m *MockCharsheetService) GetSheet(ctx context.Context, ownerID string) (*domain.CharacterSheet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterSheet), args.Error(1)
}

func (m *MockCharsheetService) GetHistory(ctx context.Context, ownerID string) ([]domain.AbilityScores, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AbilityScores), args.Error(1)
}

func (m *MockCharsheetService) HistoryLength(ctx context.Context, ownerID string) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *MockCharsheetService) DeleteSheet(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// MockEventLogService is a testify mock of eventlog.Service
type MockEventLogService struct {
	mock.Mock
}

func (m *MockEventLogService) Subscribe(bus event.Bus) error {
	args := m.Called(bus)
	return args.Error(0)
}

func (m *MockEventLogService) GetEvents(ctx context.Context, filter repository.EventLogFilter) ([]repository.EventLogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EventLogEntry), args.Error(1)
}

func (m *MockEventLogService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}
