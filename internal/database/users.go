package database

import "context"

const createUser = `
INSERT INTO users (user_id, username, mobile_number)
VALUES ($1, $2, $3)
RETURNING user_id, username, mobile_number, created_at
`

type CreateUserParams struct {
	UserID       string
	Username     string
	MobileNumber string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, createUser, arg.UserID, arg.Username, arg.MobileNumber)
	var u User
	err := row.Scan(&u.UserID, &u.Username, &u.MobileNumber, &u.CreatedAt)
	return u, err
}

const getUserByID = `
SELECT user_id, username, mobile_number, created_at
FROM users
WHERE user_id = $1
`

func (q *Queries) GetUserByID(ctx context.Context, userID string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByID, userID)
	var u User
	err := row.Scan(&u.UserID, &u.Username, &u.MobileNumber, &u.CreatedAt)
	return u, err
}

const updateUser = `
UPDATE users
SET username = $2, mobile_number = $3
WHERE user_id = $1
RETURNING user_id, username, mobile_number, created_at
`

type UpdateUserParams struct {
	UserID       string
	Username     string
	MobileNumber string
}

func (q *Queries) UpdateUser(ctx context.Context, arg UpdateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, updateUser, arg.UserID, arg.Username, arg.MobileNumber)
	var u User
	err := row.Scan(&u.UserID, &u.Username, &u.MobileNumber, &u.CreatedAt)
	return u, err
}

const deleteUser = `
DELETE FROM users
WHERE user_id = $1
`

func (q *Queries) DeleteUser(ctx context.Context, userID string) error {
	_, err := q.db.ExecContext(ctx, deleteUser, userID)
	return err
}

const listUsers = `
SELECT user_id, username, mobile_number, created_at
FROM users
ORDER BY created_at DESC
OFFSET $1 LIMIT $2
`

type ListUsersParams struct {
	Skip  int32
	Limit int32
}

func (q *Queries) ListUsers(ctx context.Context, arg ListUsersParams) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listUsers, arg.Skip, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.UserID, &u.Username, &u.MobileNumber, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

const userExistsByUsername = `
SELECT count(*)
FROM users
WHERE username = $1
`

func (q *Queries) UserExistsByUsername(ctx context.Context, username string) (int64, error) {
	row := q.db.QueryRowContext(ctx, userExistsByUsername, username)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getUserTeamIDs = `
SELECT team_id
FROM team_members
WHERE user_id = $1
ORDER BY team_id
`

func (q *Queries) GetUserTeamIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, getUserTeamIDs, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teamIDs []string
	for rows.Next() {
		var teamID string
		if err := rows.Scan(&teamID); err != nil {
			return nil, err
		}
		teamIDs = append(teamIDs, teamID)
	}
	return teamIDs, rows.Err()
}
