// Package api содержит типы HTTP-контракта сервиса и привязку маршрутов
// к echo в стиле oapi-codegen.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Report defines model for Report.
type Report struct {
	Id                 string    `json:"_id"`
	TeamId             string    `json:"teamId"`
	UserId             string    `json:"userId"`
	Yesterday          []string  `json:"yesterday"`
	Today              []string  `json:"today"`
	Problems           string    `json:"problems,omitempty"`
	Keywords           []string  `json:"keywords"`
	UsersThatCanHelpId []string  `json:"usersThatCanHelpId"`
	Date               time.Time `json:"date"`
	CreatedAt          time.Time `json:"createdAt"`
}

// User defines model for User.
type User struct {
	Id           string    `json:"_id"`
	Username     string    `json:"username"`
	MobileNumber string    `json:"mobileNumber,omitempty"`
	TeamsId      []string  `json:"teamsId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Team defines model for Team.
type Team struct {
	Id        string    `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReportStat defines model for ReportStat.
type ReportStat struct {
	UserId      string `json:"userId"`
	Username    string `json:"username"`
	ReportCount int64  `json:"reportCount"`
}

// HelperStat defines model for HelperStat.
type HelperStat struct {
	UserId      string `json:"userId"`
	Username    string `json:"username"`
	HelperCount int64  `json:"helperCount"`
}

// TeamStats defines model for TeamStats.
type TeamStats struct {
	Reports []ReportStat `json:"reports"`
	Helpers []HelperStat `json:"helpers"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateUserJSONBody defines parameters for PostUsers.
type CreateUserJSONBody struct {
	Username     string `json:"username"`
	MobileNumber string `json:"mobileNumber"`
}

// UpdateUserJSONBody defines parameters for PutUser.
type UpdateUserJSONBody struct {
	Username     string `json:"username"`
	MobileNumber string `json:"mobileNumber"`
}

// CreateTeamJSONBody defines parameters for PostTeams.
type CreateTeamJSONBody struct {
	Name string `json:"name"`
}

// RenameTeamJSONBody defines parameters for PutTeam.
type RenameTeamJSONBody struct {
	Name string `json:"name"`
}

// AddUserToTeamJSONBody defines parameters for PostTeamAddUser.
type AddUserToTeamJSONBody struct {
	UserId string `json:"userId"`
}

// CreateReportJSONBody defines parameters for PostTeamReports.
// Date принимается в unix-миллисекундах.
type CreateReportJSONBody struct {
	Yesterday []string `json:"yesterday"`
	Today     []string `json:"today"`
	Problems  *string  `json:"problems,omitempty"`
	Date      *int64   `json:"date,omitempty"`
}

// UpdateReportJSONBody defines parameters for PutTeamReports.
type UpdateReportJSONBody struct {
	Id        string   `json:"_id"`
	Yesterday []string `json:"yesterday"`
	Today     []string `json:"today"`
	Problems  *string  `json:"problems,omitempty"`
}

// ListParams defines pagination parameters for list endpoints.
type ListParams struct {
	Skip  *int32 `form:"skip" json:"skip,omitempty"`
	Limit *int32 `form:"limit" json:"limit,omitempty"`
}

// ListTeamReportsParams defines parameters for GetTeamReports.
// Date — unix-миллисекунды; задает конец суточного окна.
type ListTeamReportsParams struct {
	Skip  *int32 `form:"skip" json:"skip,omitempty"`
	Limit *int32 `form:"limit" json:"limit,omitempty"`
	Date  *int64 `form:"date" json:"date,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// POST /users
	PostUsers(ctx echo.Context) error
	// GET /users
	GetUsers(ctx echo.Context, params ListParams) error
	// GET /users/:userId
	GetUser(ctx echo.Context, userId string) error
	// PUT /users/:userId
	PutUser(ctx echo.Context, userId string) error
	// DELETE /users/:userId
	DeleteUser(ctx echo.Context, userId string) error
	// GET /users/:userId/reports
	GetUserReports(ctx echo.Context, userId string, params ListParams) error
	// POST /teams
	PostTeams(ctx echo.Context) error
	// GET /teams
	GetTeams(ctx echo.Context, params ListParams) error
	// GET /teams/:teamId
	GetTeam(ctx echo.Context, teamId string) error
	// PUT /teams/:teamId
	PutTeam(ctx echo.Context, teamId string) error
	// POST /teams/:teamId/addUser
	PostTeamAddUser(ctx echo.Context, teamId string) error
	// POST /teams/:teamId/reports
	PostTeamReports(ctx echo.Context, teamId string) error
	// PUT /teams/:teamId/reports
	PutTeamReports(ctx echo.Context, teamId string) error
	// GET /teams/:teamId/reports
	GetTeamReports(ctx echo.Context, teamId string, params ListTeamReportsParams) error
	// GET /teams/:teamId/stats
	GetTeamStats(ctx echo.Context, teamId string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) PostUsers(ctx echo.Context) error {
	return w.Handler.PostUsers(ctx)
}

func (w *ServerInterfaceWrapper) GetUsers(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetUsers(ctx, params)
}

func (w *ServerInterfaceWrapper) GetUser(ctx echo.Context) error {
	return w.Handler.GetUser(ctx, ctx.Param("userId"))
}

func (w *ServerInterfaceWrapper) PutUser(ctx echo.Context) error {
	return w.Handler.PutUser(ctx, ctx.Param("userId"))
}

func (w *ServerInterfaceWrapper) DeleteUser(ctx echo.Context) error {
	return w.Handler.DeleteUser(ctx, ctx.Param("userId"))
}

func (w *ServerInterfaceWrapper) GetUserReports(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetUserReports(ctx, ctx.Param("userId"), params)
}

func (w *ServerInterfaceWrapper) PostTeams(ctx echo.Context) error {
	return w.Handler.PostTeams(ctx)
}

func (w *ServerInterfaceWrapper) GetTeams(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetTeams(ctx, params)
}

func (w *ServerInterfaceWrapper) GetTeam(ctx echo.Context) error {
	return w.Handler.GetTeam(ctx, ctx.Param("teamId"))
}

func (w *ServerInterfaceWrapper) PutTeam(ctx echo.Context) error {
	return w.Handler.PutTeam(ctx, ctx.Param("teamId"))
}

func (w *ServerInterfaceWrapper) PostTeamAddUser(ctx echo.Context) error {
	return w.Handler.PostTeamAddUser(ctx, ctx.Param("teamId"))
}

func (w *ServerInterfaceWrapper) PostTeamReports(ctx echo.Context) error {
	return w.Handler.PostTeamReports(ctx, ctx.Param("teamId"))
}

func (w *ServerInterfaceWrapper) PutTeamReports(ctx echo.Context) error {
	return w.Handler.PutTeamReports(ctx, ctx.Param("teamId"))
}

func (w *ServerInterfaceWrapper) GetTeamReports(ctx echo.Context) error {
	var params ListTeamReportsParams

	if err := runtime.BindQueryParameter("form", true, false, "skip", ctx.QueryParams(), &params.Skip); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter skip: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "date", ctx.QueryParams(), &params.Date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter date: %s", err))
	}

	return w.Handler.GetTeamReports(ctx, ctx.Param("teamId"), params)
}

func (w *ServerInterfaceWrapper) GetTeamStats(ctx echo.Context) error {
	return w.Handler.GetTeamStats(ctx, ctx.Param("teamId"))
}

func bindListParams(ctx echo.Context) (ListParams, error) {
	var params ListParams

	if err := runtime.BindQueryParameter("form", true, false, "skip", ctx.QueryParams(), &params.Skip); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter skip: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return params, nil
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router *echo.Echo, si ServerInterface) {
	wrapper := &ServerInterfaceWrapper{Handler: si}

	router.POST("/users", wrapper.PostUsers)
	router.GET("/users", wrapper.GetUsers)
	router.GET("/users/:userId", wrapper.GetUser)
	router.PUT("/users/:userId", wrapper.PutUser)
	router.DELETE("/users/:userId", wrapper.DeleteUser)
	router.GET("/users/:userId/reports", wrapper.GetUserReports)
	router.POST("/teams", wrapper.PostTeams)
	router.GET("/teams", wrapper.GetTeams)
	router.GET("/teams/:teamId", wrapper.GetTeam)
	router.PUT("/teams/:teamId", wrapper.PutTeam)
	router.POST("/teams/:teamId/addUser", wrapper.PostTeamAddUser)
	router.POST("/teams/:teamId/reports", wrapper.PostTeamReports)
	router.PUT("/teams/:teamId/reports", wrapper.PutTeamReports)
	router.GET("/teams/:teamId/reports", wrapper.GetTeamReports)
	router.GET("/teams/:teamId/stats", wrapper.GetTeamStats)
}
