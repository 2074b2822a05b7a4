package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"standup-report-service/internal/database"
	"standup-report-service/internal/domain"
	"standup-report-service/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ReportRepositoryTestSuite struct {
	suite.Suite
	db      *sql.DB
	queries *database.Queries
	repo    domain.ReportRepository
	ctx     context.Context
}

func (suite *ReportRepositoryTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		"postgres", "password", "localhost", "5433", "standup_reports_test",
	)

	var err error
	suite.db, err = sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	err = suite.db.Ping()
	if err != nil {
		log.Fatalf("Failed to ping test database: %v", err)
	}

	suite.queries = database.New(suite.db)
	suite.repo = repository.NewReportRepository(suite.db, suite.queries)

	suite.cleanDatabase()
	suite.setupTestData()
}

func (suite *ReportRepositoryTestSuite) TearDownTest() {
	suite.cleanDatabase()
	suite.setupTestData()
}

func (suite *ReportRepositoryTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *ReportRepositoryTestSuite) cleanDatabase() {
	tables := []string{"report_helpers", "report_keywords", "reports", "team_members", "users", "teams"}
	for _, table := range tables {
		_, err := suite.db.ExecContext(suite.ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			log.Printf("Failed to clean table %s: %v", table, err)
		}
	}
}

func (suite *ReportRepositoryTestSuite) setupTestData() {
	// Создаем тестовую команду и участников
	_, err := suite.queries.CreateTeam(suite.ctx, database.CreateTeamParams{TeamID: "t1", Name: "backend"})
	if err != nil {
		log.Printf("Failed to create team t1: %v", err)
	}

	users := []struct {
		id       string
		username string
	}{
		{id: "alice", username: "Alice"},
		{id: "bob", username: "Bob"},
		{id: "carol", username: "Carol"},
	}
	for _, user := range users {
		_, err := suite.queries.CreateUser(suite.ctx, database.CreateUserParams{
			UserID:   user.id,
			Username: user.username,
		})
		if err != nil {
			log.Printf("Failed to create user %s: %v", user.id, err)
		}
		err = suite.queries.AddTeamMember(suite.ctx, database.AddTeamMemberParams{
			TeamID: "t1",
			UserID: user.id,
		})
		if err != nil {
			log.Printf("Failed to add user %s to team: %v", user.id, err)
		}
	}
}

func (suite *ReportRepositoryTestSuite) newReport(id, userID string, date time.Time) *domain.Report {
	return &domain.Report{
		ID:                 id,
		TeamID:             "t1",
		UserID:             userID,
		Yesterday:          []string{"reviewed release"},
		Today:              []string{"fix login bug"},
		Problems:           "cannot deploy",
		Keywords:           []string{"login", "bug", "deploy"},
		UsersThatCanHelpID: []string{},
		Date:               date,
		CreatedAt:          date,
	}
}

func (suite *ReportRepositoryTestSuite) TestCreate_Success() {
	date := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	report := suite.newReport("r-001", "alice", date)
	report.UsersThatCanHelpID = []string{"bob", "carol"}

	err := suite.repo.Create(suite.ctx, report)
	assert.NoError(suite.T(), err)

	// Проверяем что отчет сохранился со всеми производными полями
	created, err := suite.repo.GetByID(suite.ctx, "r-001")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "r-001", created.ID)
	assert.Equal(suite.T(), "t1", created.TeamID)
	assert.Equal(suite.T(), "alice", created.UserID)
	assert.Equal(suite.T(), []string{"reviewed release"}, created.Yesterday)
	assert.Equal(suite.T(), []string{"fix login bug"}, created.Today)
	assert.Equal(suite.T(), "cannot deploy", created.Problems)
	// Ключевые слова возвращаются в порядке извлечения
	assert.Equal(suite.T(), []string{"login", "bug", "deploy"}, created.Keywords)
	assert.ElementsMatch(suite.T(), []string{"bob", "carol"}, created.UsersThatCanHelpID)
	assert.True(suite.T(), created.Date.Equal(date))
}

func (suite *ReportRepositoryTestSuite) TestCreate_DuplicateSameDay() {
	date := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	err := suite.repo.Create(suite.ctx, suite.newReport("r-001", "alice", date))
	assert.NoError(suite.T(), err)

	// Второй отчет того же автора в те же календарные сутки отбивается
	// уникальным индексом
	later := suite.newReport("r-002", "alice", date.Add(5*time.Hour))
	err = suite.repo.Create(suite.ctx, later)
	assert.ErrorIs(suite.T(), err, domain.ErrReportAlreadyExists)

	var dup *domain.DuplicateReportError
	assert.ErrorAs(suite.T(), err, &dup)

	// Отчет другого автора в тот же день проходит
	err = suite.repo.Create(suite.ctx, suite.newReport("r-003", "bob", date))
	assert.NoError(suite.T(), err)
}

func (suite *ReportRepositoryTestSuite) TestGetByID_NotFound() {
	report, err := suite.repo.GetByID(suite.ctx, "nonexistent")
	assert.ErrorIs(suite.T(), err, domain.ErrReportNotFound)
	assert.Nil(suite.T(), report)
}

func (suite *ReportRepositoryTestSuite) TestUpdate_RewritesKeywordsKeepsHelpers() {
	date := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	report := suite.newReport("r-001", "alice", date)
	report.UsersThatCanHelpID = []string{"bob"}
	err := suite.repo.Create(suite.ctx, report)
	assert.NoError(suite.T(), err)

	report.Yesterday = []string{"shipped login page"}
	report.Today = []string{"investigate checkout latency"}
	report.Problems = "flaky staging"
	report.Keywords = []string{"investigate", "checkout", "latency", "flaky", "staging"}

	err = suite.repo.Update(suite.ctx, report)
	assert.NoError(suite.T(), err)

	updated, err := suite.repo.GetByID(suite.ctx, "r-001")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"shipped login page"}, updated.Yesterday)
	assert.Equal(suite.T(), []string{"investigate checkout latency"}, updated.Today)
	assert.Equal(suite.T(), "flaky staging", updated.Problems)
	assert.Equal(suite.T(), []string{"investigate", "checkout", "latency", "flaky", "staging"}, updated.Keywords)
	// Помощники не пересобираются при обновлении
	assert.Equal(suite.T(), []string{"bob"}, updated.UsersThatCanHelpID)
}

func (suite *ReportRepositoryTestSuite) TestListByKeywords_Overlap() {
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	first := suite.newReport("r-001", "bob", base)
	first.Keywords = []string{"deploy", "pipeline"}
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, first))

	second := suite.newReport("r-002", "carol", base.Add(24*time.Hour))
	second.Keywords = []string{"deploy", "kubernetes"}
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, second))

	third := suite.newReport("r-003", "alice", base.Add(48*time.Hour))
	third.Keywords = []string{"frontend"}
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, third))

	matches, err := suite.repo.ListByKeywords(suite.ctx, "t1", []string{"deploy", "docs"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, len(matches))

	// Свежие отчеты идут первыми, отчет без пересечения не возвращается
	assert.Equal(suite.T(), "r-002", matches[0].ID)
	assert.Equal(suite.T(), "r-001", matches[1].ID)
}

func (suite *ReportRepositoryTestSuite) TestListByKeywords_EmptySet() {
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-001", "bob", base)))

	matches, err := suite.repo.ListByKeywords(suite.ctx, "t1", []string{})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), matches)

	matches, err = suite.repo.ListByKeywords(suite.ctx, "t1", nil)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), matches)
}

func (suite *ReportRepositoryTestSuite) TestListByTeam_DateWindow() {
	// Отчеты за три подряд идущих дня
	day1 := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)
	day3 := day2.Add(24 * time.Hour)

	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-001", "alice", day1)))
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-002", "bob", day2)))
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-003", "carol", day3)))

	// Окно (day2 - 24h, day2]: попадает только r-002, граница слева не включается
	reports, err := suite.repo.ListByTeam(suite.ctx, "t1", domain.ReportListFilter{
		Date:  &day2,
		Limit: 50,
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, len(reports))
	assert.Equal(suite.T(), "r-002", reports[0].ID)
}

func (suite *ReportRepositoryTestSuite) TestListByTeam_DateAndUser() {
	day := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-001", "alice", day)))
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-002", "bob", day)))

	probe := day.Add(3 * time.Hour)
	reports, err := suite.repo.ListByTeam(suite.ctx, "t1", domain.ReportListFilter{
		Date:   &probe,
		UserID: "alice",
	})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, len(reports))
	assert.Equal(suite.T(), "r-001", reports[0].ID)

	reports, err = suite.repo.ListByTeam(suite.ctx, "t1", domain.ReportListFilter{
		Date:   &probe,
		UserID: "carol",
	})
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), reports)
}

func (suite *ReportRepositoryTestSuite) TestListByTeam_Pagination() {
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-001", "alice", base)))
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-002", "bob", base.Add(24*time.Hour))))
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-003", "carol", base.Add(48*time.Hour))))

	// Сортировка по created_at по убыванию
	reports, err := suite.repo.ListByTeam(suite.ctx, "t1", domain.ReportListFilter{Limit: 2})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, len(reports))
	assert.Equal(suite.T(), "r-003", reports[0].ID)
	assert.Equal(suite.T(), "r-002", reports[1].ID)

	reports, err = suite.repo.ListByTeam(suite.ctx, "t1", domain.ReportListFilter{Skip: 2, Limit: 2})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, len(reports))
	assert.Equal(suite.T(), "r-001", reports[0].ID)
}

func (suite *ReportRepositoryTestSuite) TestListByUser() {
	base := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-001", "alice", base)))
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-002", "bob", base.Add(24*time.Hour))))
	assert.NoError(suite.T(), suite.repo.Create(suite.ctx, suite.newReport("r-003", "alice", base.Add(48*time.Hour))))

	reports, err := suite.repo.ListByUser(suite.ctx, "alice", 0, 50)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, len(reports))
	assert.Equal(suite.T(), "r-003", reports[0].ID)
	assert.Equal(suite.T(), "r-001", reports[1].ID)
}

func TestReportRepositoryTestSuite(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "1" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}
	suite.Run(t, new(ReportRepositoryTestSuite))
}
