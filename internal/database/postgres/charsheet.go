package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/repository"
)

// CharsheetRepository implements the charsheet repository for PostgreSQL
type CharsheetRepository struct {
	db *pgxpool.Pool
}

// NewCharsheetRepository creates a new CharsheetRepository
func NewCharsheetRepository(db *pgxpool.Pool) *CharsheetRepository {
	return &CharsheetRepository{db: db}
}

// CreateSheet inserts a sheet and its first score entry atomically
func (r *CharsheetRepository) CreateSheet(ctx context.Context, sheet *domain.CharacterSheet) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	insertSheet := `
		INSERT INTO character_sheets (owner_id, name, race_class)
		VALUES ($1, $2, $3)`

	if _, err := tx.Exec(ctx, insertSheet, sheet.OwnerID, sheet.Name, sheet.RaceClass); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrSheetExists
		}
		return fmt.Errorf("failed to insert sheet: %w", err)
	}

	if err := appendScores(ctx, tx, sheet.OwnerID, sheet.Scores); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetSheet retrieves a sheet with its most recent score entry
func (r *CharsheetRepository) GetSheet(ctx context.Context, ownerID string) (*domain.CharacterSheet, error) {
	query := `
		SELECT s.owner_id, s.name, s.race_class, s.created_at,
		       c.recorded_at, c.level, c.str, c.dex, c.con, c.intel, c.wis, c.cha
		FROM character_sheets s
		JOIN character_scores c ON c.owner_id = s.owner_id
		WHERE s.owner_id = $1
		ORDER BY c.recorded_at DESC, c.id DESC
		LIMIT 1`

	var sheet domain.CharacterSheet
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&sheet.OwnerID, &sheet.Name, &sheet.RaceClass, &sheet.CreatedAt,
		&sheet.Scores.Timestamp, &sheet.Scores.Level,
		&sheet.Scores.Str, &sheet.Scores.Dex, &sheet.Scores.Con,
		&sheet.Scores.Int, &sheet.Scores.Wis, &sheet.Scores.Cha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}
	return &sheet, nil
}

// DeleteSheet removes a sheet; its score history cascades
func (r *CharsheetRepository) DeleteSheet(ctx context.Context, ownerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM character_sheets WHERE owner_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSheetNotFound
	}
	return nil
}

// AppendScores adds a score entry to the owner's history
func (r *CharsheetRepository) AppendScores(ctx context.Context, ownerID string, scores domain.AbilityScores) error {
	return appendScores(ctx, r.db, ownerID, scores)
}

func appendScores(ctx context.Context, db executor, ownerID string, scores domain.AbilityScores) error {
	query := `
		INSERT INTO character_scores (owner_id, recorded_at, level, str, dex, con, intel, wis, cha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := db.Exec(ctx, query, ownerID, scores.Timestamp, scores.Level,
		scores.Str, scores.Dex, scores.Con, scores.Int, scores.Wis, scores.Cha)
	if err != nil {
		return fmt.Errorf("failed to insert scores: %w", err)
	}
	return nil
}

// GetScoreHistory returns all score entries for an owner, oldest first
func (r *CharsheetRepository) GetScoreHistory(ctx context.Context, ownerID string) ([]domain.AbilityScores, error) {
	query := `
		SELECT recorded_at, level, str, dex, con, intel, wis, cha
		FROM character_scores
		WHERE owner_id = $1
		ORDER BY recorded_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get score history: %w", err)
	}
	defer rows.Close()

	var history []domain.AbilityScores
	for rows.Next() {
		var scores domain.AbilityScores
		if err := rows.Scan(&scores.Timestamp, &scores.Level,
			&scores.Str, &scores.Dex, &scores.Con, &scores.Int, &scores.Wis, &scores.Cha); err != nil {
			return nil, fmt.Errorf("failed to scan scores: %w", err)
		}
		history = append(history, scores)
	}
	return history, rows.Err()
}

// ScoreHistoryLength returns the number of score entries for an owner
func (r *CharsheetRepository) ScoreHistoryLength(ctx context.Context, ownerID string) (int, error) {
	var count int
	query := `SELECT count(*) FROM character_scores WHERE owner_id = $1`
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scores: %w", err)
	}
	return count, nil
}
