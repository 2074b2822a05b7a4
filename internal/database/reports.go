package database

import (
	"context"
	"database/sql"
	"time"
)

const createReport = `
INSERT INTO reports (report_id, team_id, user_id, yesterday, today, problems, report_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING report_id, team_id, user_id, yesterday, today, problems, report_date, created_at
`

type CreateReportParams struct {
	ReportID   string
	TeamID     string
	UserID     string
	Yesterday  []byte
	Today      []byte
	Problems   string
	ReportDate time.Time
	CreatedAt  time.Time
}

func (q *Queries) CreateReport(ctx context.Context, arg CreateReportParams) (Report, error) {
	row := q.db.QueryRowContext(ctx, createReport,
		arg.ReportID, arg.TeamID, arg.UserID, arg.Yesterday, arg.Today,
		arg.Problems, arg.ReportDate, arg.CreatedAt,
	)
	return scanReport(row)
}

const getReportByID = `
SELECT report_id, team_id, user_id, yesterday, today, problems, report_date, created_at
FROM reports
WHERE report_id = $1
`

func (q *Queries) GetReportByID(ctx context.Context, reportID string) (Report, error) {
	row := q.db.QueryRowContext(ctx, getReportByID, reportID)
	return scanReport(row)
}

const updateReport = `
UPDATE reports
SET yesterday = $2, today = $3, problems = $4
WHERE report_id = $1
RETURNING report_id, team_id, user_id, yesterday, today, problems, report_date, created_at
`

type UpdateReportParams struct {
	ReportID  string
	Yesterday []byte
	Today     []byte
	Problems  string
}

func (q *Queries) UpdateReport(ctx context.Context, arg UpdateReportParams) (Report, error) {
	row := q.db.QueryRowContext(ctx, updateReport, arg.ReportID, arg.Yesterday, arg.Today, arg.Problems)
	return scanReport(row)
}

const listTeamReports = `
SELECT report_id, team_id, user_id, yesterday, today, problems, report_date, created_at
FROM reports
WHERE team_id = $1
ORDER BY created_at DESC
OFFSET $2 LIMIT $3
`

type ListTeamReportsParams struct {
	TeamID string
	Skip   int32
	Limit  int32
}

func (q *Queries) ListTeamReports(ctx context.Context, arg ListTeamReportsParams) ([]Report, error) {
	rows, err := q.db.QueryContext(ctx, listTeamReports, arg.TeamID, arg.Skip, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReports(rows)
}

// Окно (after, until]: скользящие сутки, заканчивающиеся в until.
const listTeamReportsInWindow = `
SELECT report_id, team_id, user_id, yesterday, today, problems, report_date, created_at
FROM reports
WHERE team_id = $1 AND report_date > $2 AND report_date <= $3
ORDER BY created_at DESC
OFFSET $4 LIMIT $5
`

type ListTeamReportsInWindowParams struct {
	TeamID string
	After  time.Time
	Until  time.Time
	Skip   int32
	Limit  int32
}

func (q *Queries) ListTeamReportsInWindow(ctx context.Context, arg ListTeamReportsInWindowParams) ([]Report, error) {
	rows, err := q.db.QueryContext(ctx, listTeamReportsInWindow,
		arg.TeamID, arg.After, arg.Until, arg.Skip, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReports(rows)
}

const findUserReportsInWindow = `
SELECT report_id, team_id, user_id, yesterday, today, problems, report_date, created_at
FROM reports
WHERE team_id = $1 AND user_id = $2 AND report_date > $3 AND report_date <= $4
ORDER BY created_at DESC
`

type FindUserReportsInWindowParams struct {
	TeamID string
	UserID string
	After  time.Time
	Until  time.Time
}

func (q *Queries) FindUserReportsInWindow(ctx context.Context, arg FindUserReportsInWindowParams) ([]Report, error) {
	rows, err := q.db.QueryContext(ctx, findUserReportsInWindow,
		arg.TeamID, arg.UserID, arg.After, arg.Until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReports(rows)
}

const listUserReports = `
SELECT report_id, team_id, user_id, yesterday, today, problems, report_date, created_at
FROM reports
WHERE user_id = $1
ORDER BY created_at DESC
OFFSET $2 LIMIT $3
`

type ListUserReportsParams struct {
	UserID string
	Skip   int32
	Limit  int32
}

func (q *Queries) ListUserReports(ctx context.Context, arg ListUserReportsParams) ([]Report, error) {
	rows, err := q.db.QueryContext(ctx, listUserReports, arg.UserID, arg.Skip, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReports(rows)
}

// Совпадением считается непустое пересечение наборов ключевых слов.
// Лимит ограничивает глубину просмотра истории команды.
const listReportsByKeywords = `
SELECT DISTINCT r.report_id, r.team_id, r.user_id, r.yesterday, r.today, r.problems, r.report_date, r.created_at
FROM reports r
JOIN report_keywords k ON k.report_id = r.report_id
WHERE r.team_id = $1 AND k.keyword = ANY($2)
ORDER BY r.created_at DESC
LIMIT $3
`

type ListReportsByKeywordsParams struct {
	TeamID   string
	Keywords []string
	Limit    int32
}

func (q *Queries) ListReportsByKeywords(ctx context.Context, arg ListReportsByKeywordsParams) ([]Report, error) {
	rows, err := q.db.QueryContext(ctx, listReportsByKeywords, arg.TeamID, arg.Keywords, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReports(rows)
}

const insertReportKeyword = `
INSERT INTO report_keywords (report_id, position, keyword)
VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING
`

type InsertReportKeywordParams struct {
	ReportID string
	Position int32
	Keyword  string
}

func (q *Queries) InsertReportKeyword(ctx context.Context, arg InsertReportKeywordParams) error {
	_, err := q.db.ExecContext(ctx, insertReportKeyword, arg.ReportID, arg.Position, arg.Keyword)
	return err
}

const deleteReportKeywords = `
DELETE FROM report_keywords
WHERE report_id = $1
`

func (q *Queries) DeleteReportKeywords(ctx context.Context, reportID string) error {
	_, err := q.db.ExecContext(ctx, deleteReportKeywords, reportID)
	return err
}

const getReportKeywords = `
SELECT keyword
FROM report_keywords
WHERE report_id = $1
ORDER BY position
`

func (q *Queries) GetReportKeywords(ctx context.Context, reportID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, getReportKeywords, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var kw string
		if err := rows.Scan(&kw); err != nil {
			return nil, err
		}
		keywords = append(keywords, kw)
	}
	return keywords, rows.Err()
}

const insertReportHelper = `
INSERT INTO report_helpers (report_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

type InsertReportHelperParams struct {
	ReportID string
	UserID   string
}

func (q *Queries) InsertReportHelper(ctx context.Context, arg InsertReportHelperParams) error {
	_, err := q.db.ExecContext(ctx, insertReportHelper, arg.ReportID, arg.UserID)
	return err
}

const getReportHelpers = `
SELECT user_id
FROM report_helpers
WHERE report_id = $1
ORDER BY user_id
`

func (q *Queries) GetReportHelpers(ctx context.Context, reportID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, getReportHelpers, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}
	return userIDs, rows.Err()
}

func scanReport(row *sql.Row) (Report, error) {
	var r Report
	err := row.Scan(&r.ReportID, &r.TeamID, &r.UserID, &r.Yesterday, &r.Today,
		&r.Problems, &r.ReportDate, &r.CreatedAt)
	return r, err
}

func scanReports(rows *sql.Rows) ([]Report, error) {
	var reports []Report
	for rows.Next() {
		var r Report
		if err := rows.Scan(&r.ReportID, &r.TeamID, &r.UserID, &r.Yesterday, &r.Today,
			&r.Problems, &r.ReportDate, &r.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}
