package handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"standup-report-service/api"
	"standup-report-service/internal/config"
	"standup-report-service/internal/database"
	"standup-report-service/internal/handler"
	"standup-report-service/internal/keyword"
	"standup-report-service/internal/repository"
	"standup-report-service/internal/usecase"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	db      *sql.DB
	queries *database.Queries
	echo    *echo.Echo
	handler *handler.ReportHandler
}

func (suite *ReportHandlerTestSuite) SetupSuite() {
	cfg, _ := config.LoadConfig()
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, "localhost", "5433", "standup_reports_test",
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
	suite.cleanDatabase()
	suite.setupTestData()

	suite.echo = echo.New()
	logger := logrus.New()

	reportRepo := repository.NewReportRepository(suite.db, suite.queries)
	userRepo := repository.NewUserRepository(suite.db, suite.queries)
	reportUC := usecase.NewReportUseCase(reportRepo, userRepo, keyword.NewStopWordExtractor())
	suite.handler = handler.NewReportHandler(reportUC, logger)
}

func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.cleanDatabase()
	suite.setupTestData()
}

func (suite *ReportHandlerTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *ReportHandlerTestSuite) cleanDatabase() {
	tables := []string{"report_helpers", "report_keywords", "reports", "team_members", "users", "teams"}
	for _, table := range tables {
		_, err := suite.db.ExecContext(context.Background(), fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			log.Printf("Failed to clean table %s: %v", table, err)
		}
	}
}

func (suite *ReportHandlerTestSuite) setupTestData() {
	ctx := context.Background()
	suite.queries.CreateTeam(ctx, database.CreateTeamParams{TeamID: "report-team", Name: "Report Team"})
	for _, user := range []struct{ id, username string }{
		{"report-author", "Report Author"},
		{"report-helper", "Report Helper"},
	} {
		suite.queries.CreateUser(ctx, database.CreateUserParams{UserID: user.id, Username: user.username})
		suite.queries.AddTeamMember(ctx, database.AddTeamMemberParams{TeamID: "report-team", UserID: user.id})
	}
}

func (suite *ReportHandlerTestSuite) newRequest(method string, body any, userID string) (*httptest.ResponseRecorder, echo.Context) {
	requestBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, "/teams/report-team/reports", bytes.NewReader(requestBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	rec := httptest.NewRecorder()
	return rec, suite.echo.NewContext(req, rec)
}

func (suite *ReportHandlerTestSuite) TestPostTeamReports_Success() {
	problems := "cannot deploy"
	request := api.CreateReportJSONBody{
		Yesterday: []string{"reviewed release"},
		Today:     []string{"fix login bug"},
		Problems:  &problems,
	}

	rec, c := suite.newRequest(http.MethodPost, request, "report-author")

	err := suite.handler.PostTeamReports(c, "report-team")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var created api.Report
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(suite.T(), created.Id)
	assert.Equal(suite.T(), "report-team", created.TeamId)
	assert.Equal(suite.T(), "report-author", created.UserId)
	assert.Equal(suite.T(), []string{"login", "bug", "deploy"}, created.Keywords)
	// Пустой список сериализуется как [], а не null
	assert.NotNil(suite.T(), created.UsersThatCanHelpId)
	assert.Empty(suite.T(), created.UsersThatCanHelpId)
}

func (suite *ReportHandlerTestSuite) TestPostTeamReports_SuggestsHelpers() {
	// Помощник уже отчитывался про deploy
	problems := "deploy pipeline is broken"
	first := api.CreateReportJSONBody{
		Yesterday: []string{"debugging"},
		Today:     []string{"rebuild deploy pipeline"},
		Problems:  &problems,
	}
	rec, c := suite.newRequest(http.MethodPost, first, "report-helper")
	assert.NoError(suite.T(), suite.handler.PostTeamReports(c, "report-team"))
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	second := api.CreateReportJSONBody{
		Yesterday: []string{"onboarding"},
		Today:     []string{"deploy the billing service"},
	}
	rec, c = suite.newRequest(http.MethodPost, second, "report-author")
	assert.NoError(suite.T(), suite.handler.PostTeamReports(c, "report-team"))
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	var created api.Report
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(suite.T(), []string{"report-helper"}, created.UsersThatCanHelpId)
}

func (suite *ReportHandlerTestSuite) TestPostTeamReports_DuplicateSameDay() {
	date := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC).UnixMilli()
	request := api.CreateReportJSONBody{
		Yesterday: []string{"reviewed release"},
		Today:     []string{"fix login bug"},
		Date:      &date,
	}

	rec, c := suite.newRequest(http.MethodPost, request, "report-author")
	assert.NoError(suite.T(), suite.handler.PostTeamReports(c, "report-team"))
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)

	// Повторный отчет за те же сутки
	rec, c = suite.newRequest(http.MethodPost, request, "report-author")
	assert.NoError(suite.T(), suite.handler.PostTeamReports(c, "report-team"))
	assert.Equal(suite.T(), http.StatusConflict, rec.Code)

	var resp api.ErrorResponse
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "REPORT_EXISTS", resp.Error.Code)
	assert.Contains(suite.T(), resp.Error.Message, "already reported")
}

func (suite *ReportHandlerTestSuite) TestPostTeamReports_MissingIdentity() {
	request := api.CreateReportJSONBody{
		Yesterday: []string{"y"},
		Today:     []string{"t"},
	}

	rec, c := suite.newRequest(http.MethodPost, request, "")
	assert.NoError(suite.T(), suite.handler.PostTeamReports(c, "report-team"))
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *ReportHandlerTestSuite) TestPostTeamReports_NotTeamMember() {
	suite.queries.CreateUser(context.Background(), database.CreateUserParams{
		UserID: "outsider", Username: "Outsider",
	})

	request := api.CreateReportJSONBody{
		Yesterday: []string{"y"},
		Today:     []string{"t"},
	}

	rec, c := suite.newRequest(http.MethodPost, request, "outsider")
	assert.NoError(suite.T(), suite.handler.PostTeamReports(c, "report-team"))
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *ReportHandlerTestSuite) TestPutTeamReports_OnlyAuthor() {
	date := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC).UnixMilli()
	create := api.CreateReportJSONBody{
		Yesterday: []string{"reviewed release"},
		Today:     []string{"fix login bug"},
		Date:      &date,
	}
	rec, c := suite.newRequest(http.MethodPost, create, "report-author")
	assert.NoError(suite.T(), suite.handler.PostTeamReports(c, "report-team"))
	var created api.Report
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &created))

	update := api.UpdateReportJSONBody{
		Id:        created.Id,
		Yesterday: []string{"shipped login page"},
		Today:     []string{"investigate checkout latency"},
	}

	// Не автор получает отказ
	rec, c = suite.newRequest(http.MethodPut, update, "report-helper")
	assert.NoError(suite.T(), suite.handler.PutTeamReports(c, "report-team"))
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)

	// Автор обновляет успешно, ключевые слова пересчитаны
	rec, c = suite.newRequest(http.MethodPut, update, "report-author")
	assert.NoError(suite.T(), suite.handler.PutTeamReports(c, "report-team"))
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var updated api.Report
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(suite.T(), []string{"investigate", "checkout", "latency"}, updated.Keywords)
}

func (suite *ReportHandlerTestSuite) TestGetTeamReports_DateWindow() {
	day1 := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	for i, report := range []struct {
		author string
		date   time.Time
	}{
		{"report-author", day1},
		{"report-helper", day2},
	} {
		millis := report.date.UnixMilli()
		create := api.CreateReportJSONBody{
			Yesterday: []string{"y"},
			Today:     []string{fmt.Sprintf("task %d", i)},
			Date:      &millis,
		}
		rec, c := suite.newRequest(http.MethodPost, create, report.author)
		assert.NoError(suite.T(), suite.handler.PostTeamReports(c, "report-team"))
		assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	}

	// Запрашиваем окно, заканчивающееся на day2
	probe := day2.UnixMilli()
	req := httptest.NewRequest(http.MethodGet, "/teams/report-team/reports", nil)
	req.Header.Set("X-User-Id", "report-author")
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)

	err := suite.handler.GetTeamReports(c, "report-team", api.ListTeamReportsParams{Date: &probe})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var reports []api.Report
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &reports))
	assert.Equal(suite.T(), 1, len(reports))
	assert.Equal(suite.T(), "report-helper", reports[0].UserId)
}

func TestReportHandlerTestSuite(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "1" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}
	suite.Run(t, new(ReportHandlerTestSuite))
}
