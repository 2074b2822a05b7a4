package usecase

import (
	"context"
	"time"

	"standup-report-service/internal/domain"
	"standup-report-service/internal/keyword"

	"github.com/google/uuid"
)

const defaultListLimit = 50

// ReportUseCase реализует бизнес-логику ежедневных отчетов:
// уникальность отчета за день, извлечение ключевых слов и
// кросс-референс с историей команды.
type ReportUseCase struct {
	reportRepo domain.ReportRepository
	userRepo   domain.UserRepository
	extractor  keyword.Extractor
	now        func() time.Time
}

// NewReportUseCase создает новый экземпляр ReportUseCase.
func NewReportUseCase(reportRepo domain.ReportRepository, userRepo domain.UserRepository, extractor keyword.Extractor) domain.ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		extractor:  extractor,
		now:        time.Now,
	}
}

// CreateReport создает отчет: проверяет членство в команде и отсутствие
// отчета за эти сутки, извлекает ключевые слова и подбирает помощников.
func (uc *ReportUseCase) CreateReport(ctx context.Context, userID, teamID string, input *domain.ReportInput) (*domain.Report, error) {
	// Валидация входных данных
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}
	if len(input.Yesterday) == 0 {
		return nil, domain.ErrEmptyYesterday
	}
	if len(input.Today) == 0 {
		return nil, domain.ErrEmptyToday
	}

	// 1. Проверяем, что автор состоит в команде
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsMemberOf(teamID) {
		return nil, domain.ErrNotTeamMember
	}

	// 2. Проверяем, что за эти сутки отчета еще нет
	date := uc.now()
	if input.Date != nil {
		date = *input.Date
	}
	existing, err := uc.reportRepo.ListByTeam(ctx, teamID, domain.ReportListFilter{
		Date:   &date,
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, &domain.DuplicateReportError{Date: existing[0].Date}
	}

	// 3. Извлекаем ключевые слова из задач на сегодня и проблем
	keywords := uc.extractor.Extract(input.Today, input.Problems)

	// 4. Ищем в истории команды авторов отчетов с теми же ключевыми словами
	helpers, err := uc.findHelpers(ctx, keywords, teamID, userID)
	if err != nil {
		return nil, err
	}

	// 5. Сохраняем собранный отчет
	report := &domain.Report{
		ID:                 uuid.NewString(),
		TeamID:             teamID,
		UserID:             userID,
		Yesterday:          input.Yesterday,
		Today:              input.Today,
		Problems:           input.Problems,
		Keywords:           keywords,
		UsersThatCanHelpID: helpers,
		Date:               date,
		CreatedAt:          uc.now(),
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// findHelpers возвращает авторов прошлых отчетов команды, пересекающихся
// по ключевым словам с новым отчетом. Сам автор исключается, дубликаты
// схлопываются с сохранением порядка первого вхождения.
func (uc *ReportUseCase) findHelpers(ctx context.Context, keywords []string, teamID, excludeUserID string) ([]string, error) {
	matches, err := uc.reportRepo.ListByKeywords(ctx, teamID, keywords)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(matches))
	helpers := make([]string, 0, len(matches))
	for _, match := range matches {
		if match.UserID == "" || match.UserID == excludeUserID {
			continue
		}
		if _, dup := seen[match.UserID]; dup {
			continue
		}
		seen[match.UserID] = struct{}{}
		helpers = append(helpers, match.UserID)
	}

	return helpers, nil
}

// UpdateReport обновляет текстовые поля отчета. Разрешено только автору.
// Ключевые слова пересчитываются, а подобранные при создании помощники
// сознательно сохраняются как есть.
func (uc *ReportUseCase) UpdateReport(ctx context.Context, userID, reportID string, input *domain.ReportInput) (*domain.Report, error) {
	// Валидация входных данных
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if reportID == "" {
		return nil, domain.ErrInvalidReportID
	}
	if len(input.Yesterday) == 0 {
		return nil, domain.ErrEmptyYesterday
	}
	if len(input.Today) == 0 {
		return nil, domain.ErrEmptyToday
	}

	// 1. Загружаем отчет
	report, err := uc.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	// 2. Редактировать отчет может только автор
	if report.UserID != userID {
		return nil, domain.ErrNotReportAuthor
	}

	// 3. Перезаписываем поля и пересчитываем ключевые слова
	report.Yesterday = input.Yesterday
	report.Today = input.Today
	report.Problems = input.Problems
	report.Keywords = uc.extractor.Extract(input.Today, input.Problems)

	// 4. Сохраняем
	if err := uc.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// ListReports возвращает отчеты команды для участника команды.
func (uc *ReportUseCase) ListReports(ctx context.Context, userID, teamID string, filter domain.ReportListFilter) ([]*domain.Report, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}

	// Список доступен только участникам команды
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsMemberOf(teamID) {
		return nil, domain.ErrNotTeamMember
	}

	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	return uc.reportRepo.ListByTeam(ctx, teamID, filter)
}

// ListUserReports возвращает историю отчетов пользователя.
func (uc *ReportUseCase) ListUserReports(ctx context.Context, userID string, skip, limit int) ([]*domain.Report, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	if limit <= 0 {
		limit = defaultListLimit
	}

	return uc.reportRepo.ListByUser(ctx, userID, skip, limit)
}
