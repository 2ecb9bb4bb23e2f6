package repository

import (
	"context"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// Charsheet defines the interface for character sheet persistence
type Charsheet interface {
	CreateSheet(ctx context.Context, sheet *domain.CharacterSheet) error
	GetSheet(ctx context.Context, ownerID string) (*domain.CharacterSheet, error)
	DeleteSheet(ctx context.Context, ownerID string) error
	AppendScores(ctx context.Context, ownerID string, scores domain.AbilityScores) error
	GetScoreHistory(ctx context.Context, ownerID string) ([]domain.AbilityScores, error)
	ScoreHistoryLength(ctx context.Context, ownerID string) (int, error)
}
