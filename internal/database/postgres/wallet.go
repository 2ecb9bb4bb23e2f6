package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// WalletRepository implements the wallet repository for PostgreSQL
type WalletRepository struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(db *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetAccount retrieves an account by participant ID
func (r *WalletRepository) GetAccount(ctx context.Context, participantID string) (*domain.Account, error) {
	query := `
		SELECT participant_id, balance, created_at, updated_at
		FROM accounts WHERE participant_id = $1`

	var account domain.Account
	err := r.db.QueryRow(ctx, query, participantID).Scan(
		&account.ParticipantID, &account.Balance, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// CreateAccount inserts a zero-balance account, tolerating duplicates
func (r *WalletRepository) CreateAccount(ctx context.Context, participantID string) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (participant_id, balance)
		VALUES ($1, 0)
		ON CONFLICT (participant_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, participantID); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return r.GetAccount(ctx, participantID)
}

// CreditAccount adds amount to an account, creating it if needed
func (r *WalletRepository) CreditAccount(ctx context.Context, participantID string, amount int64) error {
	return creditAccount(ctx, r.db, participantID, amount)
}

// DebitAccount subtracts amount from an account. Fails when the account is
// missing or the balance is below amount.
func (r *WalletRepository) DebitAccount(ctx context.Context, participantID string, amount int64) error {
	return debitAccount(ctx, r.db, participantID, amount)
}
