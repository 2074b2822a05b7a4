package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"standup-report-service/internal/database"
	"standup-report-service/internal/domain"
)

// TeamRepository реализует взаимодействие с данными команд в PostgreSQL.
type TeamRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewTeamRepository создает новый экземпляр TeamRepository.
func NewTeamRepository(db *sql.DB, queries *database.Queries) domain.TeamRepository {
	return &TeamRepository{
		db:      db,
		queries: queries,
	}
}

// Create создает команду и включает в нее создателя.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team, creatorID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	// 1. Создаем команду
	_, err = txQueries.CreateTeam(ctx, database.CreateTeamParams{
		TeamID: team.ID,
		Name:   team.Name,
	})
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	// 2. Создатель сразу становится участником
	err = txQueries.AddTeamMember(ctx, database.AddTeamMemberParams{
		TeamID: team.ID,
		UserID: creatorID,
	})
	if err != nil {
		return fmt.Errorf("failed to add creator to team: %w", err)
	}

	// 3. Коммитим транзакцию
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID возвращает команду по ID.
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	dbTeam, err := r.queries.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &domain.Team{
		ID:        dbTeam.TeamID,
		Name:      dbTeam.Name,
		CreatedAt: dbTeam.CreatedAt,
	}, nil
}

// UpdateName переименовывает команду.
func (r *TeamRepository) UpdateName(ctx context.Context, teamID, name string) (*domain.Team, error) {
	dbTeam, err := r.queries.UpdateTeamName(ctx, database.UpdateTeamNameParams{
		TeamID: teamID,
		Name:   name,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to rename team: %w", err)
	}

	return &domain.Team{
		ID:        dbTeam.TeamID,
		Name:      dbTeam.Name,
		CreatedAt: dbTeam.CreatedAt,
	}, nil
}

// ListByMember возвращает команды пользователя, отсортированные по дате создания.
func (r *TeamRepository) ListByMember(ctx context.Context, userID string, skip, limit int) ([]*domain.Team, error) {
	dbTeams, err := r.queries.ListTeamsByMember(ctx, database.ListTeamsByMemberParams{
		UserID: userID,
		Skip:   int32(skip),
		Limit:  int32(limit),
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]*domain.Team, 0, len(dbTeams))
	for _, dbTeam := range dbTeams {
		teams = append(teams, &domain.Team{
			ID:        dbTeam.TeamID,
			Name:      dbTeam.Name,
			CreatedAt: dbTeam.CreatedAt,
		})
	}

	return teams, nil
}

// ExistsTeam проверяет существование команды.
func (r *TeamRepository) ExistsTeam(ctx context.Context, teamID string) (bool, error) {
	count, err := r.queries.TeamExists(ctx, teamID)
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return count > 0, nil
}

// AddMember добавляет пользователя в команду.
func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID string) error {
	err := r.queries.AddTeamMember(ctx, database.AddTeamMemberParams{
		TeamID: teamID,
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return nil
}
