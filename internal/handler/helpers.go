package handler

import (
	"errors"
	"net/http"

	"standup-report-service/api"
	"standup-report-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIReport(report *domain.Report) api.Report {
	return api.Report{
		Id:                 report.ID,
		TeamId:             report.TeamID,
		UserId:             report.UserID,
		Yesterday:          report.Yesterday,
		Today:              report.Today,
		Problems:           report.Problems,
		Keywords:           emptyIfNil(report.Keywords),
		UsersThatCanHelpId: emptyIfNil(report.UsersThatCanHelpID),
		Date:               report.Date,
		CreatedAt:          report.CreatedAt,
	}
}

func toAPIReports(reports []*domain.Report) []api.Report {
	result := make([]api.Report, len(reports))
	for i, report := range reports {
		result[i] = toAPIReport(report)
	}
	return result
}

func toAPIUser(user *domain.User) api.User {
	return api.User{
		Id:           user.ID,
		Username:     user.Username,
		MobileNumber: user.MobileNumber,
		TeamsId:      emptyIfNil(user.TeamsID),
		CreatedAt:    user.CreatedAt,
	}
}

func toAPITeam(team *domain.Team) api.Team {
	return api.Team{
		Id:        team.ID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt,
	}
}

func toAPITeamStats(reports []*domain.ReportStat, helpers []*domain.HelperStat) api.TeamStats {
	stats := api.TeamStats{
		Reports: make([]api.ReportStat, len(reports)),
		Helpers: make([]api.HelperStat, len(helpers)),
	}
	for i, s := range reports {
		stats.Reports[i] = api.ReportStat{
			UserId:      s.UserID,
			Username:    s.Username,
			ReportCount: s.ReportCount,
		}
	}
	for i, s := range helpers {
		stats.Helpers[i] = api.HelperStat{
			UserId:      s.UserID,
			Username:    s.Username,
			HelperCount: s.HelperCount,
		}
	}
	return stats
}

// Производные поля сериализуются как [], а не null, для совместимости
// со старыми клиентами.
func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func toErrorResponse(code, message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Unauthorized errors (401)
	case errors.Is(err, domain.ErrNotTeamMember),
		errors.Is(err, domain.ErrNotReportAuthor):
		return http.StatusUnauthorized

	// Conflict errors (409)
	case errors.Is(err, domain.ErrReportAlreadyExists),
		errors.Is(err, domain.ErrUserAlreadyExists):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTeamNotFound),
		errors.Is(err, domain.ErrReportNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidTeamID),
		errors.Is(err, domain.ErrInvalidReportID),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidTeamName),
		errors.Is(err, domain.ErrEmptyYesterday),
		errors.Is(err, domain.ErrEmptyToday):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
