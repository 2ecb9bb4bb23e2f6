// Package wallet manages participant balances. The betpool service moves
// funds between wallets and round escrow; this service is the outer surface
// for funding accounts and reading balances.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/logger"
	"github.com/wagerworks/parimutuel/internal/repository"
)

// Service defines the interface for wallet operations
type Service interface {
	CreateAccount(ctx context.Context, participantID string) (*domain.Account, error)
	Deposit(ctx context.Context, participantID string, amount int64) (*domain.Account, error)
	Withdraw(ctx context.Context, participantID string, amount int64) (*domain.Account, error)
	GetBalance(ctx context.Context, participantID string) (int64, error)
}

type service struct {
	repo repository.Wallet
}

// NewService creates a new wallet service
func NewService(repo repository.Wallet) Service {
	return &service{repo: repo}
}

// CreateAccount opens a zero-balance account. Opening an existing account is
// idempotent and returns the current account.
func (s *service) CreateAccount(ctx context.Context, participantID string) (*domain.Account, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateAccountCalled, "participantID", participantID)

	if participantID == "" {
		return nil, fmt.Errorf("%w: participant id required", domain.ErrInvalidInput)
	}

	account, err := s.repo.GetAccount(ctx, participantID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetAccount, err)
	}

	account, err = s.repo.CreateAccount(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateAccount, err)
	}
	return account, nil
}

// Deposit credits amount to the participant's account, creating it if needed
func (s *service) Deposit(ctx context.Context, participantID string, amount int64) (*domain.Account, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDepositCalled, "participantID", participantID, "amount", amount)

	if amount <= 0 {
		return nil, domain.ErrDepositPositive
	}

	if _, err := s.CreateAccount(ctx, participantID); err != nil {
		return nil, err
	}

	if err := s.repo.CreditAccount(ctx, participantID, amount); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
	}

	account, err := s.repo.GetAccount(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetAccount, err)
	}
	return account, nil
}

// Withdraw debits amount from the participant's account. Fails on unknown
// accounts and on balances below amount; balances never go negative.
func (s *service) Withdraw(ctx context.Context, participantID string, amount int64) (*domain.Account, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWithdrawCalled, "participantID", participantID, "amount", amount)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", domain.ErrInvalidInput)
	}

	if err := s.repo.DebitAccount(ctx, participantID, amount); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDebit, err)
	}

	account, err := s.repo.GetAccount(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetAccount, err)
	}
	return account, nil
}

// GetBalance returns the participant's current balance
func (s *service) GetBalance(ctx context.Context, participantID string) (int64, error) {
	account, err := s.repo.GetAccount(ctx, participantID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}
