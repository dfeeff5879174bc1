package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tasktracker/internal/domain"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already in use")
)

// UserRepositoryInterface — only the methods the profile service uses
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmailExcept(ctx context.Context, email, userID string) (bool, error)
	Update(ctx context.Context, u *domain.User) error
}

type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.users.ExistsByEmailExcept(ctx, *req.Email, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
