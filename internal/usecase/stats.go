package usecase

import (
	"context"

	"standup-report-service/internal/domain"
)

// StatsUseCase реализует бизнес-логику для работы со статистикой команды.
type StatsUseCase struct {
	statsRepo domain.StatsRepository
	teamRepo  domain.TeamRepository
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(statsRepo domain.StatsRepository, teamRepo domain.TeamRepository) domain.StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		teamRepo:  teamRepo,
	}
}

// GetTeamReportStats возвращает количество отчетов каждого участника команды.
func (uc *StatsUseCase) GetTeamReportStats(ctx context.Context, teamID string) ([]*domain.ReportStat, error) {
	if err := uc.checkTeam(ctx, teamID); err != nil {
		return nil, err
	}

	return uc.statsRepo.GetTeamReportStats(ctx, teamID)
}

// GetTeamHelperStats возвращает, сколько раз участники предлагались как помощники.
func (uc *StatsUseCase) GetTeamHelperStats(ctx context.Context, teamID string) ([]*domain.HelperStat, error) {
	if err := uc.checkTeam(ctx, teamID); err != nil {
		return nil, err
	}

	return uc.statsRepo.GetTeamHelperStats(ctx, teamID)
}

func (uc *StatsUseCase) checkTeam(ctx context.Context, teamID string) error {
	if teamID == "" {
		return domain.ErrInvalidTeamID
	}

	exists, err := uc.teamRepo.ExistsTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTeamNotFound
	}

	return nil
}
