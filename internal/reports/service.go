package reports

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

// ErrNoReportData is returned when the join yields no rows.
var ErrNoReportData = fmt.Errorf("%w: no report data available", shared.ErrNotFound)

const inventoryKey = "inventory"

// Service coordinates report query execution with the cache layer.
type Service struct {
	repo   Repository
	cache  *Cache
	logger *slog.Logger
	group  singleflight.Group
	// gen advances on every Bump so a caller never joins a query started before its own write.
	gen atomic.Int64
}

// NewService wires a Repository with an optional Cache.
func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// Bump invalidates cached reports. Services that mutate report inputs call it after each write.
func (s *Service) Bump(ctx context.Context) error {
	s.gen.Add(1)
	return s.cache.Bump(ctx)
}

// GetInventoryReport returns every supplier/product/order combination. Concurrent
// callers share one query.
func (s *Service) GetInventoryReport(ctx context.Context) ([]Row, error) {
	flight := inventoryKey + ":" + strconv.FormatInt(s.gen.Load(), 10)
	resultChan := s.group.DoChan(flight, func() (interface{}, error) {
		return s.load(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return nil, res.Err
		}
		rows := res.Val.([]Row)
		if len(rows) == 0 {
			return nil, ErrNoReportData
		}
		return rows, nil
	}
}

func (s *Service) load(ctx context.Context) ([]Row, error) {
	key, err := s.cache.BuildKey(ctx, "reports", inventoryKey)
	if err != nil {
		s.warn("report cache key", err)
		return s.query(ctx)
	}
	rows, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.warn("report cache read", err)
	}
	if ok {
		return rows, nil
	}
	rows, err = s.query(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, rows); err != nil {
		s.warn("report cache write", err)
	}
	return rows, nil
}

func (s *Service) query(ctx context.Context) ([]Row, error) {
	rows, err := s.repo.InventoryReport(ctx)
	if err != nil {
		shared.LogStorage(s.logger, err)
		return nil, err
	}
	return rows, nil
}

func (s *Service) warn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, slog.Any("error", err))
	}
}
