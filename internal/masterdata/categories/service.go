package categories

import (
	"context"
	"log/slog"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return categories, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Category, error) {
	category, err := s.repo.Get(ctx, id)
	if err != nil {
		return Category{}, s.fail(err)
	}
	return category, nil
}

func (s *Service) Create(ctx context.Context, category Category) (Category, error) {
	if err := shared.RequireID("id", category.ID); err != nil {
		return Category{}, err
	}
	if err := s.validate(category); err != nil {
		return Category{}, err
	}
	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return Category{}, s.fail(err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, category Category) error {
	if err := s.validate(category); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, category); err != nil {
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
