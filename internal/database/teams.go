package database

import "context"

const createTeam = `
INSERT INTO teams (team_id, name)
VALUES ($1, $2)
RETURNING team_id, name, created_at
`

type CreateTeamParams struct {
	TeamID string
	Name   string
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, createTeam, arg.TeamID, arg.Name)
	var t Team
	err := row.Scan(&t.TeamID, &t.Name, &t.CreatedAt)
	return t, err
}

const getTeamByID = `
SELECT team_id, name, created_at
FROM teams
WHERE team_id = $1
`

func (q *Queries) GetTeamByID(ctx context.Context, teamID string) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeamByID, teamID)
	var t Team
	err := row.Scan(&t.TeamID, &t.Name, &t.CreatedAt)
	return t, err
}

const updateTeamName = `
UPDATE teams
SET name = $2
WHERE team_id = $1
RETURNING team_id, name, created_at
`

type UpdateTeamNameParams struct {
	TeamID string
	Name   string
}

func (q *Queries) UpdateTeamName(ctx context.Context, arg UpdateTeamNameParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, updateTeamName, arg.TeamID, arg.Name)
	var t Team
	err := row.Scan(&t.TeamID, &t.Name, &t.CreatedAt)
	return t, err
}

const teamExists = `
SELECT count(*)
FROM teams
WHERE team_id = $1
`

func (q *Queries) TeamExists(ctx context.Context, teamID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, teamExists, teamID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listTeamsByMember = `
SELECT t.team_id, t.name, t.created_at
FROM teams t
JOIN team_members m ON m.team_id = t.team_id
WHERE m.user_id = $1
ORDER BY t.created_at DESC
OFFSET $2 LIMIT $3
`

type ListTeamsByMemberParams struct {
	UserID string
	Skip   int32
	Limit  int32
}

func (q *Queries) ListTeamsByMember(ctx context.Context, arg ListTeamsByMemberParams) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, listTeamsByMember, arg.UserID, arg.Skip, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.TeamID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

const addTeamMember = `
INSERT INTO team_members (team_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

type AddTeamMemberParams struct {
	TeamID string
	UserID string
}

func (q *Queries) AddTeamMember(ctx context.Context, arg AddTeamMemberParams) error {
	_, err := q.db.ExecContext(ctx, addTeamMember, arg.TeamID, arg.UserID)
	return err
}
