package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gamehub-backend/internal/models"
)

// UserService is the registration subsystem. It works against any Store and
// is usable on its own, with or without the facade.
type UserService struct {
	store Store
}

func NewUserService(store Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Register(username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username must not be empty")
	}

	if _, err := s.store.GetUser(username); err == nil {
		return nil, fmt.Errorf("user %s: %w", username, ErrAlreadyExists)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check user: %v", err)
	}

	user := &models.User{
		ID:        username,
		CreatedAt: time.Now(),
	}

	if err := s.store.SaveUser(user); err != nil {
		return nil, fmt.Errorf("failed to save user: %v", err)
	}

	return user, nil
}

func (s *UserService) Get(userID string) (*models.User, error) {
	return s.store.GetUser(userID)
}
