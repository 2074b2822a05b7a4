package repository

import (
	"context"
	"fmt"

	"standup-report-service/internal/database"
	"standup-report-service/internal/domain"
)

// StatsRepository реализует domain.StatsRepository для работы со статистикой.
type StatsRepository struct {
	queries *database.Queries
}

// NewStatsRepository создает новый экземпляр StatsRepository.
func NewStatsRepository(queries *database.Queries) domain.StatsRepository {
	return &StatsRepository{
		queries: queries,
	}
}

// GetTeamReportStats возвращает количество отчетов каждого участника команды.
func (r *StatsRepository) GetTeamReportStats(ctx context.Context, teamID string) ([]*domain.ReportStat, error) {
	stats, err := r.queries.GetTeamReportStats(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team report stats: %w", err)
	}

	result := make([]*domain.ReportStat, len(stats))
	for i, stat := range stats {
		result[i] = &domain.ReportStat{
			UserID:      stat.UserID,
			Username:    stat.Username,
			ReportCount: stat.ReportCount,
		}
	}

	return result, nil
}

// GetTeamHelperStats возвращает, сколько раз участники предлагались как помощники.
func (r *StatsRepository) GetTeamHelperStats(ctx context.Context, teamID string) ([]*domain.HelperStat, error) {
	stats, err := r.queries.GetTeamHelperStats(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team helper stats: %w", err)
	}

	result := make([]*domain.HelperStat, len(stats))
	for i, stat := range stats {
		result[i] = &domain.HelperStat{
			UserID:      stat.UserID,
			Username:    stat.Username,
			HelperCount: stat.HelperCount,
		}
	}

	return result, nil
}
