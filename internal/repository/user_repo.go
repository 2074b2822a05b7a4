package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"standup-report-service/internal/database"
	"standup-report-service/internal/domain"
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB, queries *database.Queries) domain.UserRepository {
	return &UserRepository{
		db:      db,
		queries: queries,
	}
}

// Create создает пользователя.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.queries.CreateUser(ctx, database.CreateUserParams{
		UserID:       user.ID,
		Username:     user.Username,
		MobileNumber: user.MobileNumber,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID возвращает пользователя вместе со списком его команд.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	dbUser, err := r.queries.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	teamIDs, err := r.queries.GetUserTeamIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user teams: %w", err)
	}

	return &domain.User{
		ID:           dbUser.UserID,
		Username:     dbUser.Username,
		MobileNumber: dbUser.MobileNumber,
		TeamsID:      teamIDs,
		CreatedAt:    dbUser.CreatedAt,
	}, nil
}

// Update обновляет имя и номер телефона пользователя.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	_, err := r.queries.UpdateUser(ctx, database.UpdateUserParams{
		UserID:       user.ID,
		Username:     user.Username,
		MobileNumber: user.MobileNumber,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Delete удаляет пользователя.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	if err := r.queries.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// List возвращает пользователей, отсортированных по дате создания.
func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	dbUsers, err := r.queries.ListUsers(ctx, database.ListUsersParams{
		Skip:  int32(skip),
		Limit: int32(limit),
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*domain.User, 0, len(dbUsers))
	for _, dbUser := range dbUsers {
		users = append(users, &domain.User{
			ID:           dbUser.UserID,
			Username:     dbUser.Username,
			MobileNumber: dbUser.MobileNumber,
			CreatedAt:    dbUser.CreatedAt,
		})
	}

	return users, nil
}

// ExistsUsername проверяет занятость имени пользователя.
func (r *UserRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	count, err := r.queries.UserExistsByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return count > 0, nil
}
