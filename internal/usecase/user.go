package usecase

import (
	"context"

	"standup-report-service/internal/domain"

	"github.com/google/uuid"
)

// UserUseCase реализует бизнес-логику для работы с пользователями.
type UserUseCase struct {
	userRepo domain.UserRepository
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo domain.UserRepository) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// CreateUser создает пользователя с уникальным именем.
func (uc *UserUseCase) CreateUser(ctx context.Context, username, mobileNumber string) (*domain.User, error) {
	// Валидация
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}

	// Проверяем, что имя не занято
	exists, err := uc.userRepo.ExistsUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		MobileNumber: mobileNumber,
		TeamsID:      []string{},
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser возвращает пользователя по ID.
func (uc *UserUseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateUser обновляет имя и номер телефона пользователя.
func (uc *UserUseCase) UpdateUser(ctx context.Context, userID, username, mobileNumber string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Username = username
	user.MobileNumber = mobileNumber
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser удаляет пользователя.
func (uc *UserUseCase) DeleteUser(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrInvalidUserID
	}

	// Проверяем, что пользователь существует
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	return uc.userRepo.Delete(ctx, userID)
}

// ListUsers возвращает пользователей, отсортированных по дате создания.
func (uc *UserUseCase) ListUsers(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	return uc.userRepo.List(ctx, skip, limit)
}
