package roles

import (
	"context"
	"log/slog"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

// Service handles role business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService builds Service instance.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns all roles.
func (s *Service) List(ctx context.Context) ([]Role, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return roles, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Role, error) {
	role, err := s.repo.Get(ctx, id)
	if err != nil {
		return Role{}, s.fail(err)
	}
	return role, nil
}

// Create stores a role under the next free id. Any id on the payload is discarded.
func (s *Service) Create(ctx context.Context, role Role) (Role, error) {
	role.ID = 0
	if err := validateRole(role); err != nil {
		return Role{}, err
	}
	created, err := s.repo.Create(ctx, role)
	if err != nil {
		return Role{}, s.fail(err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, role Role) error {
	if err := validateRole(role); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, role); err != nil {
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
