package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAccount(ctx context.Context, participantID string) (*domain.Account, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRepository) CreateAccount(ctx context.Context, participantID string) (*domain.Account, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockRepository) CreditAccount(ctx context.Context, participantID string, amount int64) error {
	args := m.Called(ctx, participantID, amount)
	return args.Error(0)
}

func (m *MockRepository) DebitAccount(ctx context.Context, participantID string, amount int64) error {
	args := m.Called(ctx, participantID, amount)
	return args.Error(0)
}

func TestCreateAccount_New(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetAccount", mock.Anything, "alice").Return(nil, domain.ErrAccountNotFound)
	repo.On("CreateAccount", mock.Anything, "alice").
		Return(&domain.Account{ParticipantID: "alice"}, nil)

	svc := NewService(repo)
	account, err := svc.CreateAccount(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", account.ParticipantID)
	assert.Zero(t, account.Balance)
	repo.AssertExpectations(t)
}

func TestCreateAccount_Idempotent(t *testing.T) {
	repo := new(MockRepository)
	existing := &domain.Account{ParticipantID: "alice", Balance: 500}
	repo.On("GetAccount", mock.Anything, "alice").Return(existing, nil)

	svc := NewService(repo)
	account, err := svc.CreateAccount(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(500), account.Balance)
	repo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestCreateAccount_EmptyID(t *testing.T) {
	svc := NewService(new(MockRepository))

	_, err := svc.CreateAccount(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeposit_Success(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetAccount", mock.Anything, "alice").
		Return(&domain.Account{ParticipantID: "alice", Balance: 300}, nil)
	repo.On("CreditAccount", mock.Anything, "alice", int64(300)).Return(nil)

	svc := NewService(repo)
	account, err := svc.Deposit(context.Background(), "alice", 300)

	require.NoError(t, err)
	assert.Equal(t, int64(300), account.Balance)
	repo.AssertExpectations(t)
}

func TestDeposit_NonPositiveAmount(t *testing.T) {
	svc := NewService(new(MockRepository))

	_, err := svc.Deposit(context.Background(), "alice", 0)
	assert.ErrorIs(t, err, domain.ErrDepositPositive)

	_, err = svc.Deposit(context.Background(), "alice", -100)
	assert.ErrorIs(t, err, domain.ErrDepositPositive)
}

func TestWithdraw_Success(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DebitAccount", mock.Anything, "alice", int64(200)).Return(nil)
	repo.On("GetAccount", mock.Anything, "alice").
		Return(&domain.Account{ParticipantID: "alice", Balance: 100}, nil)

	svc := NewService(repo)
	account, err := svc.Withdraw(context.Background(), "alice", 200)

	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance)
	repo.AssertExpectations(t)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DebitAccount", mock.Anything, "alice", int64(500)).
		Return(domain.ErrInsufficientFunds)

	svc := NewService(repo)
	_, err := svc.Withdraw(context.Background(), "alice", 500)

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestWithdraw_NonPositiveAmount(t *testing.T) {
	svc := NewService(new(MockRepository))

	_, err := svc.Withdraw(context.Background(), "alice", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetBalance(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetAccount", mock.Anything, "alice").
		Return(&domain.Account{ParticipantID: "alice", Balance: 42}, nil)
	repo.On("GetAccount", mock.Anything, "ghost").
		Return(nil, domain.ErrAccountNotFound)

	svc := NewService(repo)

	balance, err := svc.GetBalance(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance)

	_, err = svc.GetBalance(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
