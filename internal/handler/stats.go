package handler

import (
	"net/http"

	"standup-report-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы статистики команды
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
	}
}

// GetTeamStats обрабатывает получение статистики отчетов команды
func (h *StatsHandler) GetTeamStats(c echo.Context, teamID string) error {
	logEntry := h.logRequest(c, "get_team_stats").WithField("team_id", teamID)
	logEntry.Info("Getting team stats")

	reportStats, err := h.statsUseCase.GetTeamReportStats(c.Request().Context(), teamID)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get team report stats")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	helperStats, err := h.statsUseCase.GetTeamHelperStats(c.Request().Context(), teamID)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to get team helper stats")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("Team stats retrieved successfully")
	return c.JSON(http.StatusOK, toAPITeamStats(reportStats, helperStats))
}
