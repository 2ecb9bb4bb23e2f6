package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/repository"
)

// BetpoolRepository implements the betpool repository for PostgreSQL
type BetpoolRepository struct {
	db *pgxpool.Pool
}

// NewBetpoolRepository creates a new BetpoolRepository
func NewBetpoolRepository(db *pgxpool.Pool) *BetpoolRepository {
	return &BetpoolRepository{db: db}
}

const roundColumns = `id, description, creator_id, fee_bps, state, total_stake_x, total_stake_y, commitment, created_at, end_time`

func scanRound(row pgx.Row) (*domain.Round, error) {
	var round domain.Round
	err := row.Scan(
		&round.ID,
		&round.Description,
		&round.CreatorID,
		&round.FeeBps,
		&round.State,
		&round.TotalStakeX,
		&round.TotalStakeY,
		&round.Commitment,
		&round.CreatedAt,
		&round.EndTime,
	)
	if err != nil {
		return nil, err
	}
	return &round, nil
}

// CreateRound inserts a new round and returns it with its assigned ID
func (r *BetpoolRepository) CreateRound(ctx context.Context, round *domain.Round) (*domain.Round, error) {
	query := `
		INSERT INTO rounds (description, creator_id, fee_bps, state)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + roundColumns

	created, err := scanRound(r.db.QueryRow(ctx, query,
		round.Description, round.CreatorID, round.FeeBps, round.State))
	if err != nil {
		return nil, fmt.Errorf("failed to insert round: %w", err)
	}
	return created, nil
}

// GetRound retrieves a round by ID
func (r *BetpoolRepository) GetRound(ctx context.Context, id int64) (*domain.Round, error) {
	query := `SELECT ` + roundColumns + ` FROM rounds WHERE id = $1`

	round, err := scanRound(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	return round, nil
}

// RoundCount returns the number of rounds ever created
func (r *BetpoolRepository) RoundCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM rounds`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rounds: %w", err)
	}
	return count, nil
}

// GetStake returns a participant's stake on one side of a round, zero if none
func (r *BetpoolRepository) GetStake(ctx context.Context, roundID int64, participantID string, side domain.Side) (int64, error) {
	query := `
		SELECT amount FROM stakes
		WHERE round_id = $1 AND participant_id = $2 AND side = $3`

	var amount int64
	err := r.db.QueryRow(ctx, query, roundID, participantID, side).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get stake: %w", err)
	}
	return amount, nil
}

// GetParticipantStakes returns a participant's stakes on both sides of a round
func (r *BetpoolRepository) GetParticipantStakes(ctx context.Context, roundID int64, participantID string) (map[domain.Side]int64, error) {
	query := `
		SELECT side, amount FROM stakes
		WHERE round_id = $1 AND participant_id = $2`

	rows, err := r.db.Query(ctx, query, roundID, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participant stakes: %w", err)
	}
	defer rows.Close()

	stakes := make(map[domain.Side]int64)
	for rows.Next() {
		var side domain.Side
		var amount int64
		if err := rows.Scan(&side, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan stake: %w", err)
		}
		stakes[side] = amount
	}
	return stakes, rows.Err()
}

// GetRoundStakes returns every stake recorded for a round
func (r *BetpoolRepository) GetRoundStakes(ctx context.Context, roundID int64) ([]domain.Stake, error) {
	query := `
		SELECT round_id, participant_id, side, amount FROM stakes
		WHERE round_id = $1
		ORDER BY participant_id, side`

	rows, err := r.db.Query(ctx, query, roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to get round stakes: %w", err)
	}
	defer rows.Close()

	var stakes []domain.Stake
	for rows.Next() {
		var stake domain.Stake
		if err := rows.Scan(&stake.RoundID, &stake.ParticipantID, &stake.Side, &stake.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan stake: %w", err)
		}
		stakes = append(stakes, stake)
	}
	return stakes, rows.Err()
}

// HasClaimed reports whether a claim row exists for (round, participant)
func (r *BetpoolRepository) HasClaimed(ctx context.Context, roundID int64, participantID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM claims WHERE round_id = $1 AND participant_id = $2
		)`

	var claimed bool
	if err := r.db.QueryRow(ctx, query, roundID, participantID).Scan(&claimed); err != nil {
		return false, fmt.Errorf("failed to check claim: %w", err)
	}
	return claimed, nil
}

// ResolveRound flips the round to a terminal state iff it is still in
// progress. The WHERE clause is the concurrency guard: of two racing
// resolutions exactly one sees a row. RETURNING hands back the post-flip row,
// whose side totals are authoritative for payout math; a snapshot read before
// the flip could miss a stake that committed in between.
func (r *BetpoolRepository) ResolveRound(ctx context.Context, id int64, outcome domain.RoundState, commitment []byte) (*domain.Round, error) {
	query := `
		UPDATE rounds
		SET state = $2, commitment = $3, end_time = now()
		WHERE id = $1 AND state = $4
		RETURNING ` + roundColumns

	round, err := scanRound(r.db.QueryRow(ctx, query, id, outcome, commitment, domain.RoundStateInProgress))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve round: %w", err)
	}
	return round, nil
}

// BeginStakeTx starts a transaction for escrowing a stake
func (r *BetpoolRepository) BeginStakeTx(ctx context.Context) (repository.StakeTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin stake tx: %w", err)
	}
	return &stakeTx{tx: tx}, nil
}

// BeginClaimTx starts a transaction for paying out a claim
func (r *BetpoolRepository) BeginClaimTx(ctx context.Context) (repository.ClaimTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim tx: %w", err)
	}
	return &claimTx{tx: tx}, nil
}

// stakeTx implements repository.StakeTx over a pgx transaction
type stakeTx struct {
	tx pgx.Tx
}

func (t *stakeTx) DebitAccount(ctx context.Context, participantID string, amount int64) error {
	return debitAccount(ctx, t.tx, participantID, amount)
}

func (t *stakeTx) AddStake(ctx context.Context, stake *domain.Stake) (int64, error) {
	// Bump the side total first; its guard on state decides whether the
	// stake lands at all.
	var totalColumn string
	if stake.Side == domain.SideX {
		totalColumn = "total_stake_x"
	} else {
		totalColumn = "total_stake_y"
	}

	guard := fmt.Sprintf(`
		UPDATE rounds SET %s = %s + $2
		WHERE id = $1 AND state = $3`, totalColumn, totalColumn)

	tag, err := t.tx.Exec(ctx, guard, stake.RoundID, stake.Amount, domain.RoundStateInProgress)
	if err != nil {
		return 0, fmt.Errorf("failed to update round totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return 0, nil
	}

	upsert := `
		INSERT INTO stakes (round_id, participant_id, side, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (round_id, participant_id, side)
		DO UPDATE SET amount = stakes.amount + EXCLUDED.amount`

	if _, err := t.tx.Exec(ctx, upsert, stake.RoundID, stake.ParticipantID, stake.Side, stake.Amount); err != nil {
		return 0, fmt.Errorf("failed to upsert stake: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (t *stakeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *stakeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// claimTx implements repository.ClaimTx over a pgx transaction
type claimTx struct {
	tx pgx.Tx
}

func (t *claimTx) MarkClaimed(ctx context.Context, roundID int64, participantID string, amount int64) (bool, error) {
	// The primary key makes the insert race-safe; the loser of a racing
	// double claim sees zero rows.
	query := `
		INSERT INTO claims (round_id, participant_id, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (round_id, participant_id) DO NOTHING`

	tag, err := t.tx.Exec(ctx, query, roundID, participantID, amount)
	if err != nil {
		return false, fmt.Errorf("failed to insert claim: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (t *claimTx) CreditAccount(ctx context.Context, participantID string, amount int64) error {
	return creditAccount(ctx, t.tx, participantID, amount)
}

func (t *claimTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *claimTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
