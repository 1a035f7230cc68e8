package orders

import (
	"context"
	"log/slog"
	"time"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

// StatusPending is assigned to orders created without a status.
const StatusPending = "Pending"

// Service validates orders and keeps the inventory report in step with order changes.
type Service struct {
	repo     Repository
	logger   *slog.Logger
	notifier shared.ChangeNotifier
	now      func() time.Time
}

func NewService(repo Repository, logger *slog.Logger, notifier shared.ChangeNotifier) *Service {
	return &Service{repo: repo, logger: logger, notifier: notifier, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(err)
	}
	return orders, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Order, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return Order{}, s.fail(err)
	}
	return order, nil
}

func (s *Service) Create(ctx context.Context, order Order) (Order, error) {
	if err := shared.RequireID("id", order.ID); err != nil {
		return Order{}, err
	}
	order = s.normalize(order)
	if err := validateOrder(order); err != nil {
		return Order{}, err
	}
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return Order{}, s.fail(err)
	}
	s.changed(ctx)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, order Order) error {
	order = s.normalize(order)
	if err := validateOrder(order); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, order); err != nil {
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
