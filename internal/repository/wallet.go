package repository

import (
	"context"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// Wallet defines the interface for wallet persistence
type Wallet interface {
	GetAccount(ctx context.Context, participantID string) (*domain.Account, error)
	CreateAccount(ctx context.Context, participantID string) (*domain.Account, error)
	CreditAccount(ctx context.Context, participantID string, amount int64) error
	DebitAccount(ctx context.Context, participantID string, amount int64) error
}
