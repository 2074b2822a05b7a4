package usecase

import (
	"context"

	"standup-report-service/internal/domain"

	"github.com/google/uuid"
)

// TeamUseCase реализует бизнес-логику для работы с командами.
type TeamUseCase struct {
	teamRepo domain.TeamRepository
	userRepo domain.UserRepository
}

// NewTeamUseCase создает новый экземпляр TeamUseCase.
func NewTeamUseCase(teamRepo domain.TeamRepository, userRepo domain.UserRepository) domain.TeamUseCase {
	return &TeamUseCase{
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// CreateTeam создает команду; создатель автоматически становится участником.
func (uc *TeamUseCase) CreateTeam(ctx context.Context, creatorID, name string) (*domain.Team, error) {
	// Валидация
	if creatorID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if name == "" {
		return nil, domain.ErrInvalidTeamName
	}

	// Проверяем, что создатель существует
	if _, err := uc.userRepo.GetByID(ctx, creatorID); err != nil {
		return nil, err
	}

	team := &domain.Team{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := uc.teamRepo.Create(ctx, team, creatorID); err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeam возвращает команду по ID.
func (uc *TeamUseCase) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}

	return uc.teamRepo.GetByID(ctx, teamID)
}

// RenameTeam переименовывает команду.
func (uc *TeamUseCase) RenameTeam(ctx context.Context, teamID, name string) (*domain.Team, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}
	if name == "" {
		return nil, domain.ErrInvalidTeamName
	}

	return uc.teamRepo.UpdateName(ctx, teamID, name)
}

// ListUserTeams возвращает команды, в которых состоит пользователь.
func (uc *TeamUseCase) ListUserTeams(ctx context.Context, userID string, skip, limit int) ([]*domain.Team, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	return uc.teamRepo.ListByMember(ctx, userID, skip, limit)
}

// AddUserToTeam добавляет пользователя в команду.
func (uc *TeamUseCase) AddUserToTeam(ctx context.Context, teamID, userID string) error {
	if teamID == "" {
		return domain.ErrInvalidTeamID
	}
	if userID == "" {
		return domain.ErrInvalidUserID
	}

	// 1. Проверяем, что команда существует
	exists, err := uc.teamRepo.ExistsTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTeamNotFound
	}

	// 2. Проверяем, что пользователь существует
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	return uc.teamRepo.AddMember(ctx, teamID, userID)
}
