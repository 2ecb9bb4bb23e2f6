// Package charsheet manages participant character sheets and their ability
// score history. Sheets are cosmetic profile data riding alongside the
// betting engine; they hold no balance and gate no payouts.
package charsheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wagerworks/parimutuel/internal/domain"
	"github.com/wagerworks/parimutuel/internal/logger"
	"github.com/wagerworks/parimutuel/internal/repository"
)

// Service defines the interface for character sheet operations
type Service interface {
	CreateSheet(ctx context.Context, ownerID, name, raceClass string, scores domain.AbilityScores) (*domain.CharacterSheet, error)
	UpdateScores(ctx context.Context, ownerID string, scores domain.AbilityScores) error
	GetSheet(ctx context.Context, ownerID string) (*domain.CharacterSheet, error)
	GetHistory(ctx context.Context, ownerID string) ([]domain.AbilityScores, error)
	HistoryLength(ctx context.Context, ownerID string) (int, error)
	DeleteSheet(ctx context.Context, ownerID string) error
}

type service struct {
	repo repository.Charsheet
}

// NewService creates a new charsheet service
func NewService(repo repository.Charsheet) Service {
	return &service{repo: repo}
}

func validateScores(scores domain.AbilityScores) error {
	if scores.Level < domain.MinLevel || scores.Level > domain.MaxLevel {
		return fmt.Errorf("%w: %d", domain.ErrInvalidLevel, scores.Level)
	}
	for _, score := range []int{scores.Str, scores.Dex, scores.Con, scores.Int, scores.Wis, scores.Cha} {
		if score < domain.MinAbilityScore || score > domain.MaxAbilityScore {
			return fmt.Errorf("%w: %d", domain.ErrInvalidScore, score)
		}
	}
	return nil
}

// CreateSheet creates a character sheet for a participant. One sheet per
// owner; the initial scores become the first history entry.
func (s *service) CreateSheet(ctx context.Context, ownerID, name, raceClass string, scores domain.AbilityScores) (*domain.CharacterSheet, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateSheetCalled, "ownerID", ownerID, "name", name)

	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if err := validateScores(scores); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetSheet(ctx, ownerID); err == nil {
		return nil, domain.ErrSheetExists
	} else if !errors.Is(err, domain.ErrSheetNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSheet, err)
	}

	if scores.Timestamp.IsZero() {
		scores.Timestamp = time.Now()
	}

	sheet := &domain.CharacterSheet{
		OwnerID:   ownerID,
		Name:      name,
		RaceClass: raceClass,
		Scores:    scores,
	}

	if err := s.repo.CreateSheet(ctx, sheet); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateSheet, err)
	}
	return sheet, nil
}

// UpdateScores appends a new ability score entry to the owner's history.
// Earlier entries are never rewritten.
func (s *service) UpdateScores(ctx context.Context, ownerID string, scores domain.AbilityScores) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpdateScoresCalled, "ownerID", ownerID, "level", scores.Level)

	if err := validateScores(scores); err != nil {
		return err
	}

	if _, err := s.repo.GetSheet(ctx, ownerID); err != nil {
		return err
	}

	if scores.Timestamp.IsZero() {
		scores.Timestamp = time.Now()
	}

	if err := s.repo.AppendScores(ctx, ownerID, scores); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToAppendScores, err)
	}
	return nil
}

// GetSheet retrieves a character sheet by owner
func (s *service) GetSheet(ctx context.Context, ownerID string) (*domain.CharacterSheet, error) {
	return s.repo.GetSheet(ctx, ownerID)
}

// GetHistory returns all ability score entries for an owner, oldest first
func (s *service) GetHistory(ctx context.Context, ownerID string) ([]domain.AbilityScores, error) {
	history, err := s.repo.GetScoreHistory(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetHistory, err)
	}
	return history, nil
}

// HistoryLength returns the number of ability score entries for an owner
func (s *service) HistoryLength(ctx context.Context, ownerID string) (int, error) {
	length, err := s.repo.ScoreHistoryLength(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToGetHistory, err)
	}
	return length, nil
}

// DeleteSheet removes a character sheet and its history
func (s *service) DeleteSheet(ctx context.Context, ownerID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDeleteSheetCalled, "ownerID", ownerID)

	if _, err := s.repo.GetSheet(ctx, ownerID); err != nil {
		return err
	}
	if err := s.repo.DeleteSheet(ctx, ownerID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToDeleteSheet, err)
	}
	return nil
}
