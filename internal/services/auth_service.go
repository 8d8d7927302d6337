package services

import (
	"context"
	"errors"
	"log"

	"bankingBack/internal/models"
)

// UserStore loads a user by id and returns models.ErrUserNotFound when absent.
type UserStore interface {
	GetUserByID(ctx context.Context, id int64) (models.User, error)
}

// UserCache is an optional read-through cache in front of UserStore.
type UserCache interface {
	Get(ctx context.Context, id int64) (models.User, bool, error)
	Set(ctx context.Context, user models.User) error
}

type AuthService struct {
	Users    UserStore
	Cache    UserCache
	ErrorLog *log.Logger
}

// GetUserByID returns nil without an error when the user does not exist.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if s.Cache != nil {
		user, ok, err := s.Cache.Get(ctx, id)
		if err != nil {
			s.logf("user cache get %d: %v", id, err)
		} else if ok {
			return &user, nil
		}
	}

	user, err := s.Users.GetUserByID(ctx, id)
	if errors.Is(err, models.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, user); err != nil {
			s.logf("user cache set %d: %v", id, err)
		}
	}
	return &user, nil
}

func (s *AuthService) logf(format string, args ...interface{}) {
	if s.ErrorLog != nil {
		s.ErrorLog.Printf(format, args...)
	}
}
