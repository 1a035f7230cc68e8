package users

import (
	"context"
	"log/slog"
	"strings"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

// Service handles user business logic. Role existence is enforced by the repository on create.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService builds Service instance.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return User{}, s.fail(err)
	}
	return user, nil
}

func (s *Service) Create(ctx context.Context, user User) (User, error) {
	if err := shared.RequireID("id", user.ID); err != nil {
		return User{}, err
	}
	user.Email = strings.TrimSpace(user.Email)
	if err := shared.Validate(user); err != nil {
		return User{}, err
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return User{}, s.fail(err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, user User) error {
	user.Email = strings.TrimSpace(user.Email)
	if err := shared.Validate(user); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, user); err != nil {
		return s.fail(err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(err)
	}
	return nil
}

func (s *Service) fail(err error) error {
	shared.LogStorage(s.logger, err)
	return err
}
