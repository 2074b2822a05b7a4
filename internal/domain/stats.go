package domain

import "context"

// ReportStat представляет количество отчетов пользователя в команде.
type ReportStat struct {
	UserID      string
	Username    string
	ReportCount int64
}

// HelperStat представляет, сколько раз пользователь был предложен как помощник.
type HelperStat struct {
	UserID      string
	Username    string
	HelperCount int64
}

// StatsRepository определяет контракт для работы со статистическими данными.
type StatsRepository interface {
	GetTeamReportStats(ctx context.Context, teamID string) ([]*ReportStat, error)
	GetTeamHelperStats(ctx context.Context, teamID string) ([]*HelperStat, error)
}
