package database

import "context"

const getTeamReportStats = `
SELECT u.user_id, u.username, count(r.report_id) AS report_count
FROM users u
JOIN team_members m ON m.user_id = u.user_id
LEFT JOIN reports r ON r.user_id = u.user_id AND r.team_id = m.team_id
WHERE m.team_id = $1
GROUP BY u.user_id, u.username
ORDER BY report_count DESC, u.user_id
`

type GetTeamReportStatsRow struct {
	UserID      string
	Username    string
	ReportCount int64
}

func (q *Queries) GetTeamReportStats(ctx context.Context, teamID string) ([]GetTeamReportStatsRow, error) {
	rows, err := q.db.QueryContext(ctx, getTeamReportStats, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []GetTeamReportStatsRow
	for rows.Next() {
		var s GetTeamReportStatsRow
		if err := rows.Scan(&s.UserID, &s.Username, &s.ReportCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

const getTeamHelperStats = `
SELECT u.user_id, u.username, count(h.report_id) AS helper_count
FROM users u
JOIN report_helpers h ON h.user_id = u.user_id
JOIN reports r ON r.report_id = h.report_id
WHERE r.team_id = $1
GROUP BY u.user_id, u.username
ORDER BY helper_count DESC, u.user_id
`

type GetTeamHelperStatsRow struct {
	UserID      string
	Username    string
	HelperCount int64
}

func (q *Queries) GetTeamHelperStats(ctx context.Context, teamID string) ([]GetTeamHelperStatsRow, error) {
	rows, err := q.db.QueryContext(ctx, getTeamHelperStats, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []GetTeamHelperStatsRow
	for rows.Next() {
		var s GetTeamHelperStatsRow
		if err := rows.Scan(&s.UserID, &s.Username, &s.HelperCount); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
