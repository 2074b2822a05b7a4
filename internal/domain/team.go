package domain

import (
	"context"
	"time"
)

// Team представляет команду, которой принадлежат отчеты.
type Team struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// TeamRepository определяет контракт для работы с хранилищем команд.
type TeamRepository interface {
	Create(ctx context.Context, team *Team, creatorID string) error
	GetByID(ctx context.Context, teamID string) (*Team, error)
	UpdateName(ctx context.Context, teamID, name string) (*Team, error)
	ListByMember(ctx context.Context, userID string, skip, limit int) ([]*Team, error)
	ExistsTeam(ctx context.Context, teamID string) (bool, error)
	AddMember(ctx context.Context, teamID, userID string) error
}
