package products

import (
	"context"
	"log/slog"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

type Service struct {
	repo     Repository
	logger   *slog.Logger
	notifier shared.ChangeNotifier
}

// NewService wires the product service. notifier may be nil.
func NewService(repo Repository, logger *slog.Logger, notifier shared.ChangeNotifier) *Service {
	return &Service{repo: repo, logger: logger, notifier: notifier}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, s.fail(err)
	}
	return product, nil
}

func (s *Service) Create(ctx context.Context, product Product) (Product, error) {
	if err := shared.RequireID("id", product.ID); err != nil {
		return Product{}, err
	}
	if err := s.validate(product); err != nil {
		return Product{}, err
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return Product{}, s.fail(err)
	}
	s.changed(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, product Product) error {
	if err := s.validate(product); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, product); err != nil {
		return s.fail(err)
	}
	s.changed(ctx)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(err)
	}
	s.changed(ctx)
	return nil
}

func (s *Service) fail(err error) error {
	shared.LogStorage(s.logger, err)
	return err
}

func (s *Service) changed(ctx context.Context) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Bump(ctx); err != nil && s.logger != nil {
		s.logger.Warn("report cache bump failed", slog.String("entity", entity), slog.Any("error", err))
	}
}
