package domain

import (
	"context"
	"time"
)

// User представляет сущность пользователя в системе.
// TeamsID содержит команды, в которых пользователь состоит.
type User struct {
	ID           string
	Username     string
	MobileNumber string
	TeamsID      []string
	CreatedAt    time.Time
}

// IsMemberOf проверяет членство пользователя в команде.
func (u *User) IsMemberOf(teamID string) bool {
	for _, id := range u.TeamsID {
		if id == teamID {
			return true
		}
	}
	return false
}

// UserRepository определяет контракт для работы с хранилищем пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID string) error
	List(ctx context.Context, skip, limit int) ([]*User, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
}
