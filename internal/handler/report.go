package handler

import (
	"errors"
	"net/http"
	"time"

	"standup-report-service/api"
	"standup-report-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ReportHandler обрабатывает HTTP-запросы, связанные с отчетами
type ReportHandler struct {
	*BaseHandler
	reportUseCase domain.ReportUseCase
}

// NewReportHandler создает новый экземпляр ReportHandler
func NewReportHandler(reportUseCase domain.ReportUseCase, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   NewBaseHandler(logger),
		reportUseCase: reportUseCase,
	}
}

// PostTeamReports обрабатывает создание нового отчета
func (h *ReportHandler) PostTeamReports(c echo.Context, teamID string) error {
	userID := principalID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", "missing user identity"))
	}

	var req api.CreateReportJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create report request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_report").WithField("team_id", teamID)
	logEntry.Info("Creating report")

	input := &domain.ReportInput{
		Yesterday: req.Yesterday,
		Today:     req.Today,
	}
	if req.Problems != nil {
		input.Problems = *req.Problems
	}
	if req.Date != nil {
		date := time.UnixMilli(*req.Date)
		input.Date = &date
	}

	report, err := h.reportUseCase.CreateReport(c.Request().Context(), userID, teamID, input)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create report")
		// Для дубликата клиенту нужна дата уже существующего отчета
		var dup *domain.DuplicateReportError
		if errors.As(err, &dup) {
			return c.JSON(http.StatusConflict, toErrorResponse("REPORT_EXISTS", dup.Error()))
		}
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithFields(logrus.Fields{
		"report_id":     report.ID,
		"keywords":      len(report.Keywords),
		"helpers_count": len(report.UsersThatCanHelpID),
	}).Info("Report created successfully")
	return c.JSON(http.StatusCreated, toAPIReport(report))
}

// PutTeamReports обрабатывает обновление существующего отчета
func (h *ReportHandler) PutTeamReports(c echo.Context, teamID string) error {
	userID := principalID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", "missing user identity"))
	}

	var req api.UpdateReportJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind update report request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "update_report").WithFields(logrus.Fields{
		"team_id":   teamID,
		"report_id": req.Id,
	})
	logEntry.Info("Updating report")

	input := &domain.ReportInput{
		Yesterday: req.Yesterday,
		Today:     req.Today,
	}
	if req.Problems != nil {
		input.Problems = *req.Problems
	}

	report, err := h.reportUseCase.UpdateReport(c.Request().Context(), userID, req.Id, input)
	if err != nil {
		logEntry.WithError(err).Error("Failed to update report")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("Report updated successfully")
	return c.JSON(http.StatusOK, toAPIReport(report))
}

// GetTeamReports обрабатывает получение отчетов команды
func (h *ReportHandler) GetTeamReports(c echo.Context, teamID string, params api.ListTeamReportsParams) error {
	userID := principalID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", "missing user identity"))
	}

	logEntry := h.logRequest(c, "list_reports").WithField("team_id", teamID)
	logEntry.Info("Listing team reports")

	filter := domain.ReportListFilter{}
	if params.Skip != nil {
		filter.Skip = int(*params.Skip)
	}
	if params.Limit != nil {
		filter.Limit = int(*params.Limit)
	}
	if params.Date != nil {
		date := time.UnixMilli(*params.Date)
		filter.Date = &date
	}

	reports, err := h.reportUseCase.ListReports(c.Request().Context(), userID, teamID, filter)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list team reports")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("reports_count", len(reports)).Info("Team reports retrieved successfully")
	return c.JSON(http.StatusOK, toAPIReports(reports))
}

// GetUserReports обрабатывает получение истории отчетов пользователя
func (h *ReportHandler) GetUserReports(c echo.Context, userID string, params api.ListParams) error {
	logEntry := h.logRequest(c, "list_user_reports").WithField("target_user_id", userID)
	logEntry.Info("Listing user reports")

	skip, limit := 0, 0
	if params.Skip != nil {
		skip = int(*params.Skip)
	}
	if params.Limit != nil {
		limit = int(*params.Limit)
	}

	reports, err := h.reportUseCase.ListUserReports(c.Request().Context(), userID, skip, limit)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list user reports")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("reports_count", len(reports)).Info("User reports retrieved successfully")
	return c.JSON(http.StatusOK, toAPIReports(reports))
}
