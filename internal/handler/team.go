package handler

import (
	"net/http"

	"standup-report-service/api"
	"standup-report-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TeamHandler обрабатывает HTTP-запросы для управления командами
type TeamHandler struct {
	*BaseHandler
	teamUseCase domain.TeamUseCase
}

// NewTeamHandler создает новый экземпляр TeamHandler
func NewTeamHandler(teamUseCase domain.TeamUseCase, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{
		BaseHandler: NewBaseHandler(logger),
		teamUseCase: teamUseCase,
	}
}

// PostTeams обрабатывает создание новой команды
func (h *TeamHandler) PostTeams(c echo.Context) error {
	userID := principalID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", "missing user identity"))
	}

	var req api.CreateTeamJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create team request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_team").WithField("team_name", req.Name)
	logEntry.Info("Creating team")

	team, err := h.teamUseCase.CreateTeam(c.Request().Context(), userID, req.Name)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create team")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("team_id", team.ID).Info("Team created successfully")
	return c.JSON(http.StatusCreated, toAPITeam(team))
}

// GetTeams обрабатывает получение команд текущего пользователя
func (h *TeamHandler) GetTeams(c echo.Context, params api.ListParams) error {
	userID := principalID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, toErrorResponse("UNAUTHORIZED", "missing user identity"))
	}

	logEntry := h.logRequest(c, "list_teams")
	logEntry.Info("Listing user teams")

	skip, limit := 0, 0
	if params.Skip != nil {
		skip = int(*params.Skip)
	}
	if params.Limit != nil {
		limit = int(*params.Limit)
	}

	teams, err := h.teamUseCase.ListUserTeams(c.Request().Context(), userID, skip, limit)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list teams")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	result := make([]api.Team, len(teams))
	for i, team := range teams {
		result[i] = toAPITeam(team)
	}

	logEntry.WithField("teams_count", len(teams)).Info("Teams retrieved successfully")
	return c.JSON(http.StatusOK, result)
}

// GetTeam обрабатывает получение команды по ID
func (h *TeamHandler) GetTeam(c echo.Context, teamID string) error {
	logEntry := h.logRequest(c, "get_team").WithField("team_id", teamID)
	logEntry.Info("Getting team")

	team, err := h.teamUseCase.GetTeam(c.Request().Context(), teamID)
	if err != nil {
		logEntry.WithError(err).Warn("Team not found")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("Team retrieved successfully")
	return c.JSON(http.StatusOK, toAPITeam(team))
}

// PutTeam обрабатывает переименование команды
func (h *TeamHandler) PutTeam(c echo.Context, teamID string) error {
	var req api.RenameTeamJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind rename team request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "rename_team").WithFields(logrus.Fields{
		"team_id":   teamID,
		"team_name": req.Name,
	})
	logEntry.Info("Renaming team")

	team, err := h.teamUseCase.RenameTeam(c.Request().Context(), teamID, req.Name)
	if err != nil {
		logEntry.WithError(err).Error("Failed to rename team")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("Team renamed successfully")
	return c.JSON(http.StatusOK, toAPITeam(team))
}

// PostTeamAddUser обрабатывает добавление пользователя в команду
func (h *TeamHandler) PostTeamAddUser(c echo.Context, teamID string) error {
	var req api.AddUserToTeamJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind add user request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "add_team_member").WithFields(logrus.Fields{
		"team_id":        teamID,
		"target_user_id": req.UserId,
	})
	logEntry.Info("Adding user to team")

	if err := h.teamUseCase.AddUserToTeam(c.Request().Context(), teamID, req.UserId); err != nil {
		logEntry.WithError(err).Error("Failed to add user to team")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("User added to team successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"teamId": teamID,
		"userId": req.UserId,
	})
}
