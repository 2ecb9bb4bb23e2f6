package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// executor is the subset of pgx shared by pools and transactions, so the
// account movement helpers work inside and outside a transaction
type executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// creditAccount adds amount to an account, creating the account if needed
func creditAccount(ctx context.Context, db executor, participantID string, amount int64) error {
	query := `
		INSERT INTO accounts (participant_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (participant_id)
		DO UPDATE SET balance = accounts.balance + EXCLUDED.balance, updated_at = now()`

	if _, err := db.Exec(ctx, query, participantID, amount); err != nil {
		return fmt.Errorf("failed to credit account: %w", err)
	}
	return nil
}

// debitAccount subtracts amount from an account. The balance predicate makes
// the debit atomic; a zero-row update is then classified as a missing account
// or an insufficient balance.
func debitAccount(ctx context.Context, db executor, participantID string, amount int64) error {
	query := `
		UPDATE accounts
		SET balance = balance - $2, updated_at = now()
		WHERE participant_id = $1 AND balance >= $2`

	tag, err := db.Exec(ctx, query, participantID, amount)
	if err != nil {
		return fmt.Errorf("failed to debit account: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	existsQuery := `SELECT EXISTS (SELECT 1 FROM accounts WHERE participant_id = $1)`
	if err := db.QueryRow(ctx, existsQuery, participantID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		return domain.ErrAccountNotFound
	}
	return domain.ErrInsufficientFunds
}
