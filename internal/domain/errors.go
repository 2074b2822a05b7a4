package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidTeamID   = errors.New("invalid team id")
	ErrInvalidReportID = errors.New("invalid report id")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidTeamName = errors.New("invalid team name")
	ErrEmptyYesterday  = errors.New("yesterday items are required")
	ErrEmptyToday      = errors.New("today items are required")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Team errors
	ErrTeamNotFound = errors.New("team not found")

	// Report errors
	ErrReportNotFound      = errors.New("report not found")
	ErrReportAlreadyExists = errors.New("report already exists for this day")

	// Authorization errors
	ErrNotTeamMember   = errors.New("user is not a member of the team")
	ErrNotReportAuthor = errors.New("user is not the author of the report")
)

// DuplicateReportError несет дату уже существующего отчета,
// чтобы клиент мог показать точное сообщение.
type DuplicateReportError struct {
	Date time.Time
}

func (e *DuplicateReportError) Error() string {
	return fmt.Sprintf("you already reported for %s", e.Date.Format(time.RFC3339))
}

// Is сопоставляет ошибку с сигнальной ErrReportAlreadyExists.
func (e *DuplicateReportError) Is(target error) bool {
	return target == ErrReportAlreadyExists
}

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidUserID:       {Code: "INVALID_REQUEST", Message: "user id is required"},
	ErrInvalidTeamID:       {Code: "INVALID_REQUEST", Message: "team id is required"},
	ErrInvalidReportID:     {Code: "INVALID_REQUEST", Message: "report id is required"},
	ErrInvalidUsername:     {Code: "INVALID_REQUEST", Message: "username is required"},
	ErrInvalidTeamName:     {Code: "INVALID_REQUEST", Message: "team name is required"},
	ErrEmptyYesterday:      {Code: "INVALID_REQUEST", Message: "yesterday items are required"},
	ErrEmptyToday:          {Code: "INVALID_REQUEST", Message: "today items are required"},
	ErrReportAlreadyExists: {Code: "REPORT_EXISTS", Message: "report for this day already exists"},
	ErrUserAlreadyExists:   {Code: "USER_EXISTS", Message: "username already exists"},
	ErrNotTeamMember:       {Code: "UNAUTHORIZED", Message: "you must be in the team"},
	ErrNotReportAuthor:     {Code: "UNAUTHORIZED", Message: "you must be the author to edit the report"},
	ErrUserNotFound:        {Code: "NOT_FOUND", Message: "user not found"},
	ErrTeamNotFound:        {Code: "NOT_FOUND", Message: "team not found"},
	ErrReportNotFound:      {Code: "NOT_FOUND", Message: "report not found"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	if httpErr, exists := ErrorMapping[err]; exists {
		return httpErr, true
	}
	// Обертки вроде DuplicateReportError сопоставляются через errors.Is
	for sentinel, httpErr := range ErrorMapping {
		if errors.Is(err, sentinel) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
