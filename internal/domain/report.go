package domain

import (
	"context"
	"time"
)

// Report представляет ежедневный отчет пользователя в команде.
type Report struct {
	ID                 string
	TeamID             string
	UserID             string
	Yesterday          []string
	Today              []string
	Problems           string
	Keywords           []string
	UsersThatCanHelpID []string
	Date               time.Time
	CreatedAt          time.Time
}

// ReportInput содержит поля отчета, приходящие от клиента.
// Keywords и UsersThatCanHelpID всегда вычисляются на сервере.
type ReportInput struct {
	Yesterday []string
	Today     []string
	Problems  string
	Date      *time.Time
}

// ReportListFilter задает параметры выборки отчетов команды.
// Date включает отчеты за скользящие сутки (date-1d, date].
type ReportListFilter struct {
	Skip   int
	Limit  int
	Date   *time.Time
	UserID string
}

// ReportRepository определяет контракт для работы с хранилищем отчетов.
type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	GetByID(ctx context.Context, reportID string) (*Report, error)
	Update(ctx context.Context, report *Report) error
	ListByTeam(ctx context.Context, teamID string, filter ReportListFilter) ([]*Report, error)
	ListByUser(ctx context.Context, userID string, skip, limit int) ([]*Report, error)
	ListByKeywords(ctx context.Context, teamID string, keywords []string) ([]*Report, error)
}
