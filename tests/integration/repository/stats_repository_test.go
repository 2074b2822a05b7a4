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

type StatsRepositoryTestSuite struct {
	suite.Suite
	db         *sql.DB
	queries    *database.Queries
	repo       domain.StatsRepository
	reportRepo domain.ReportRepository
	ctx        context.Context
}

func (suite *StatsRepositoryTestSuite) SetupSuite() {
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
	suite.repo = repository.NewStatsRepository(suite.queries)
	suite.reportRepo = repository.NewReportRepository(suite.db, suite.queries)

	suite.cleanDatabase()
	suite.setupTestData()
}

func (suite *StatsRepositoryTestSuite) TearDownTest() {
	suite.cleanDatabase()
	suite.setupTestData()
}

func (suite *StatsRepositoryTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *StatsRepositoryTestSuite) cleanDatabase() {
	tables := []string{"report_helpers", "report_keywords", "reports", "team_members", "users", "teams"}
	for _, table := range tables {
		_, err := suite.db.ExecContext(suite.ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			log.Printf("Failed to clean table %s: %v", table, err)
		}
	}
}

func (suite *StatsRepositoryTestSuite) setupTestData() {
	_, err := suite.queries.CreateTeam(suite.ctx, database.CreateTeamParams{TeamID: "t1", Name: "backend"})
	if err != nil {
		log.Printf("Failed to create team t1: %v", err)
	}

	for _, user := range []struct{ id, username string }{
		{"alice", "Alice"},
		{"bob", "Bob"},
		{"carol", "Carol"},
	} {
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

func (suite *StatsRepositoryTestSuite) createReport(id, userID string, day int, helpers []string) {
	date := time.Date(2024, 3, day, 9, 0, 0, 0, time.UTC)
	err := suite.reportRepo.Create(suite.ctx, &domain.Report{
		ID:                 id,
		TeamID:             "t1",
		UserID:             userID,
		Yesterday:          []string{"y"},
		Today:              []string{"t"},
		Keywords:           []string{"deploy"},
		UsersThatCanHelpID: helpers,
		Date:               date,
		CreatedAt:          date,
	})
	assert.NoError(suite.T(), err)
}

func (suite *StatsRepositoryTestSuite) TestGetTeamReportStats() {
	suite.createReport("r-001", "alice", 10, nil)
	suite.createReport("r-002", "alice", 11, nil)
	suite.createReport("r-003", "bob", 11, nil)

	stats, err := suite.repo.GetTeamReportStats(suite.ctx, "t1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, len(stats))

	// Сортировка по количеству отчетов, участники без отчетов тоже в списке
	assert.Equal(suite.T(), "alice", stats[0].UserID)
	assert.Equal(suite.T(), int64(2), stats[0].ReportCount)
	assert.Equal(suite.T(), "bob", stats[1].UserID)
	assert.Equal(suite.T(), int64(1), stats[1].ReportCount)
	assert.Equal(suite.T(), "carol", stats[2].UserID)
	assert.Equal(suite.T(), int64(0), stats[2].ReportCount)
}

func (suite *StatsRepositoryTestSuite) TestGetTeamHelperStats() {
	suite.createReport("r-001", "alice", 10, []string{"bob"})
	suite.createReport("r-002", "carol", 11, []string{"bob", "alice"})

	stats, err := suite.repo.GetTeamHelperStats(suite.ctx, "t1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, len(stats))

	assert.Equal(suite.T(), "bob", stats[0].UserID)
	assert.Equal(suite.T(), int64(2), stats[0].HelperCount)
	assert.Equal(suite.T(), "alice", stats[1].UserID)
	assert.Equal(suite.T(), int64(1), stats[1].HelperCount)
}

func (suite *StatsRepositoryTestSuite) TestEmptyTeamStats() {
	stats, err := suite.repo.GetTeamReportStats(suite.ctx, "t1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, len(stats))
	for _, stat := range stats {
		assert.Equal(suite.T(), int64(0), stat.ReportCount)
	}

	helperStats, err := suite.repo.GetTeamHelperStats(suite.ctx, "t1")
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), helperStats)
}

func TestStatsRepositoryTestSuite(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "1" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}
	suite.Run(t, new(StatsRepositoryTestSuite))
}
