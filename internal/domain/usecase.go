package domain

import "context"

// ReportUseCase определяет бизнес-логику для работы с отчетами.
type ReportUseCase interface {
	CreateReport(ctx context.Context, userID, teamID string, input *ReportInput) (*Report, error)
	UpdateReport(ctx context.Context, userID, reportID string, input *ReportInput) (*Report, error)
	ListReports(ctx context.Context, userID, teamID string, filter ReportListFilter) ([]*Report, error)
	ListUserReports(ctx context.Context, userID string, skip, limit int) ([]*Report, error)
}

// TeamUseCase определяет бизнес-логику для работы с командами.
type TeamUseCase interface {
	CreateTeam(ctx context.Context, creatorID, name string) (*Team, error)
	GetTeam(ctx context.Context, teamID string) (*Team, error)
	RenameTeam(ctx context.Context, teamID, name string) (*Team, error)
	ListUserTeams(ctx context.Context, userID string, skip, limit int) ([]*Team, error)
	AddUserToTeam(ctx context.Context, teamID, userID string) error
}

// UserUseCase определяет бизнес-логику для работы с пользователями.
type UserUseCase interface {
	CreateUser(ctx context.Context, username, mobileNumber string) (*User, error)
	GetUser(ctx context.Context, userID string) (*User, error)
	UpdateUser(ctx context.Context, userID, username, mobileNumber string) (*User, error)
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context, skip, limit int) ([]*User, error)
}

// StatsUseCase определяет бизнес-логику для работы со статистикой команды.
type StatsUseCase interface {
	GetTeamReportStats(ctx context.Context, teamID string) ([]*ReportStat, error)
	GetTeamHelperStats(ctx context.Context, teamID string) ([]*HelperStat, error)
}
