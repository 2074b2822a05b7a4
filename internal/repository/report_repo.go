package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"standup-report-service/internal/database"
	"standup-report-service/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// Лимит просмотра истории команды при поиске пересечений по ключевым словам.
const keywordMatchLimit = 665

// ReportRepository реализует взаимодействие с данными отчетов в PostgreSQL.
type ReportRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewReportRepository создает новый экземпляр ReportRepository.
func NewReportRepository(db *sql.DB, queries *database.Queries) domain.ReportRepository {
	return &ReportRepository{
		db:      db,
		queries: queries,
	}
}

// Create сохраняет отчет вместе с ключевыми словами и помощниками.
func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	yesterday, today, err := marshalItems(report)
	if err != nil {
		return err
	}

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

	// 1. Создаем отчет
	_, err = txQueries.CreateReport(ctx, database.CreateReportParams{
		ReportID:   report.ID,
		TeamID:     report.TeamID,
		UserID:     report.UserID,
		Yesterday:  yesterday,
		Today:      today,
		Problems:   report.Problems,
		ReportDate: report.Date,
		CreatedAt:  report.CreatedAt,
	})
	if err != nil {
		// Уникальный индекс по (team_id, user_id, день) закрывает гонку
		// между проверкой дубликата и вставкой
		if isUniqueViolation(err) {
			return &domain.DuplicateReportError{Date: report.Date}
		}
		return fmt.Errorf("failed to create report: %w", err)
	}

	// 2. Сохраняем ключевые слова с позициями
	for i, kw := range report.Keywords {
		err = txQueries.InsertReportKeyword(ctx, database.InsertReportKeywordParams{
			ReportID: report.ID,
			Position: int32(i),
			Keyword:  kw,
		})
		if err != nil {
			return fmt.Errorf("failed to insert keyword %s: %w", kw, err)
		}
	}

	// 3. Сохраняем помощников
	for _, userID := range report.UsersThatCanHelpID {
		err = txQueries.InsertReportHelper(ctx, database.InsertReportHelperParams{
			ReportID: report.ID,
			UserID:   userID,
		})
		if err != nil {
			return fmt.Errorf("failed to insert helper %s: %w", userID, err)
		}
	}

	// 4. Коммитим транзакцию
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID возвращает отчет по ID со всеми производными полями.
func (r *ReportRepository) GetByID(ctx context.Context, reportID string) (*domain.Report, error) {
	dbReport, err := r.queries.GetReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	return r.hydrateReport(ctx, dbReport)
}

// Update перезаписывает текстовые поля и ключевые слова отчета.
// Помощники (users_that_can_help) не трогаются.
func (r *ReportRepository) Update(ctx context.Context, report *domain.Report) error {
	yesterday, today, err := marshalItems(report)
	if err != nil {
		return err
	}

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

	// 1. Обновляем отчет
	_, err = txQueries.UpdateReport(ctx, database.UpdateReportParams{
		ReportID:  report.ID,
		Yesterday: yesterday,
		Today:     today,
		Problems:  report.Problems,
	})
	if err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}

	// 2. Пересобираем ключевые слова
	err = txQueries.DeleteReportKeywords(ctx, report.ID)
	if err != nil {
		return fmt.Errorf("failed to delete keywords: %w", err)
	}
	for i, kw := range report.Keywords {
		err = txQueries.InsertReportKeyword(ctx, database.InsertReportKeywordParams{
			ReportID: report.ID,
			Position: int32(i),
			Keyword:  kw,
		})
		if err != nil {
			return fmt.Errorf("failed to insert keyword %s: %w", kw, err)
		}
	}

	// 3. Коммитим транзакцию
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListByTeam возвращает отчеты команды, опционально в суточном окне и по автору.
func (r *ReportRepository) ListByTeam(ctx context.Context, teamID string, filter domain.ReportListFilter) ([]*domain.Report, error) {
	var (
		dbReports []database.Report
		err       error
	)

	switch {
	case filter.Date != nil && filter.UserID != "":
		dbReports, err = r.queries.FindUserReportsInWindow(ctx, database.FindUserReportsInWindowParams{
			TeamID: teamID,
			UserID: filter.UserID,
			After:  filter.Date.AddDate(0, 0, -1),
			Until:  *filter.Date,
		})
	case filter.Date != nil:
		dbReports, err = r.queries.ListTeamReportsInWindow(ctx, database.ListTeamReportsInWindowParams{
			TeamID: teamID,
			After:  filter.Date.AddDate(0, 0, -1),
			Until:  *filter.Date,
			Skip:   int32(filter.Skip),
			Limit:  int32(filter.Limit),
		})
	default:
		dbReports, err = r.queries.ListTeamReports(ctx, database.ListTeamReportsParams{
			TeamID: teamID,
			Skip:   int32(filter.Skip),
			Limit:  int32(filter.Limit),
		})
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list team reports: %w", err)
	}

	return r.hydrateReports(ctx, dbReports)
}

// ListByUser возвращает отчеты пользователя по всем командам.
func (r *ReportRepository) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*domain.Report, error) {
	dbReports, err := r.queries.ListUserReports(ctx, database.ListUserReportsParams{
		UserID: userID,
		Skip:   int32(skip),
		Limit:  int32(limit),
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list user reports: %w", err)
	}

	return r.hydrateReports(ctx, dbReports)
}

// ListByKeywords возвращает отчеты команды, пересекающиеся с набором ключевых
// слов. Пустой набор корректен и не дает совпадений.
func (r *ReportRepository) ListByKeywords(ctx context.Context, teamID string, keywords []string) ([]*domain.Report, error) {
	if keywords == nil {
		keywords = []string{}
	}

	dbReports, err := r.queries.ListReportsByKeywords(ctx, database.ListReportsByKeywordsParams{
		TeamID:   teamID,
		Keywords: keywords,
		Limit:    keywordMatchLimit,
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list reports by keywords: %w", err)
	}

	return r.hydrateReports(ctx, dbReports)
}

func (r *ReportRepository) hydrateReports(ctx context.Context, dbReports []database.Report) ([]*domain.Report, error) {
	reports := make([]*domain.Report, 0, len(dbReports))
	for _, dbReport := range dbReports {
		report, err := r.hydrateReport(ctx, dbReport)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *ReportRepository) hydrateReport(ctx context.Context, dbReport database.Report) (*domain.Report, error) {
	var yesterday, today []string
	if err := json.Unmarshal(dbReport.Yesterday, &yesterday); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yesterday items: %w", err)
	}
	if err := json.Unmarshal(dbReport.Today, &today); err != nil {
		return nil, fmt.Errorf("failed to unmarshal today items: %w", err)
	}

	keywords, err := r.queries.GetReportKeywords(ctx, dbReport.ReportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report keywords: %w", err)
	}

	helpers, err := r.queries.GetReportHelpers(ctx, dbReport.ReportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get report helpers: %w", err)
	}

	return &domain.Report{
		ID:                 dbReport.ReportID,
		TeamID:             dbReport.TeamID,
		UserID:             dbReport.UserID,
		Yesterday:          yesterday,
		Today:              today,
		Problems:           dbReport.Problems,
		Keywords:           keywords,
		UsersThatCanHelpID: helpers,
		Date:               dbReport.ReportDate,
		CreatedAt:          dbReport.CreatedAt,
	}, nil
}

func marshalItems(report *domain.Report) ([]byte, []byte, error) {
	yesterday, err := json.Marshal(report.Yesterday)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal yesterday items: %w", err)
	}
	today, err := json.Marshal(report.Today)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal today items: %w", err)
	}
	return yesterday, today, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
