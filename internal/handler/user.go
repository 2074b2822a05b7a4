package handler

import (
	"net/http"

	"standup-report-service/api"
	"standup-report-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы, связанные с пользователями.
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// PostUsers обрабатывает создание нового пользователя
func (h *UserHandler) PostUsers(c echo.Context) error {
	var req api.CreateUserJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create user request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_user").WithField("username", req.Username)
	logEntry.Info("Creating user")

	user, err := h.userUseCase.CreateUser(c.Request().Context(), req.Username, req.MobileNumber)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create user")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("created_user_id", user.ID).Info("User created successfully")
	return c.JSON(http.StatusCreated, toAPIUser(user))
}

// GetUsers обрабатывает получение списка пользователей
func (h *UserHandler) GetUsers(c echo.Context, params api.ListParams) error {
	logEntry := h.logRequest(c, "list_users")
	logEntry.Info("Listing users")

	skip, limit := 0, 0
	if params.Skip != nil {
		skip = int(*params.Skip)
	}
	if params.Limit != nil {
		limit = int(*params.Limit)
	}

	users, err := h.userUseCase.ListUsers(c.Request().Context(), skip, limit)
	if err != nil {
		logEntry.WithError(err).Warn("Failed to list users")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	result := make([]api.User, len(users))
	for i, user := range users {
		result[i] = toAPIUser(user)
	}

	logEntry.WithField("users_count", len(users)).Info("Users retrieved successfully")
	return c.JSON(http.StatusOK, result)
}

// GetUser обрабатывает получение пользователя по ID
func (h *UserHandler) GetUser(c echo.Context, userID string) error {
	logEntry := h.logRequest(c, "get_user").WithField("target_user_id", userID)
	logEntry.Info("Getting user")

	user, err := h.userUseCase.GetUser(c.Request().Context(), userID)
	if err != nil {
		logEntry.WithError(err).Warn("User not found")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("User retrieved successfully")
	return c.JSON(http.StatusOK, toAPIUser(user))
}

// PutUser обрабатывает обновление пользователя
func (h *UserHandler) PutUser(c echo.Context, userID string) error {
	var req api.UpdateUserJSONBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind update user request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "update_user").WithField("target_user_id", userID)
	logEntry.Info("Updating user")

	user, err := h.userUseCase.UpdateUser(c.Request().Context(), userID, req.Username, req.MobileNumber)
	if err != nil {
		logEntry.WithError(err).Error("Failed to update user")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("User updated successfully")
	return c.JSON(http.StatusOK, toAPIUser(user))
}

// DeleteUser обрабатывает удаление пользователя
func (h *UserHandler) DeleteUser(c echo.Context, userID string) error {
	logEntry := h.logRequest(c, "delete_user").WithField("target_user_id", userID)
	logEntry.Info("Deleting user")

	if err := h.userUseCase.DeleteUser(c.Request().Context(), userID); err != nil {
		logEntry.WithError(err).Error("Failed to delete user")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("User deleted successfully")
	return c.NoContent(http.StatusNoContent)
}
