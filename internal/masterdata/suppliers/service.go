package suppliers

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

// NewService wires the supplier service. notifier may be nil.
func NewService(repo Repository, logger *slog.Logger, notifier shared.ChangeNotifier) *Service {
	return &Service{repo: repo, logger: logger, notifier: notifier}
}

func (s *Service) List(ctx context.Context) ([]Supplier, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return suppliers, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Supplier, error) {
	supplier, err := s.repo.Get(ctx, id)
	if err != nil {
		return Supplier{}, s.fail(err)
	}
	return supplier, nil
}

func (s *Service) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	if err := shared.RequireID("id", supplier.ID); err != nil {
		return Supplier{}, err
	}
	if err := shared.Validate(supplier); err != nil {
		return Supplier{}, err
	}
	created, err := s.repo.Create(ctx, supplier)
	if err != nil {
		return Supplier{}, s.fail(err)
	}
	s.changed(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, supplier Supplier) error {
	if err := shared.Validate(supplier); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, supplier); err != nil {
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
