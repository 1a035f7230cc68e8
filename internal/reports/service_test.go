package reports

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

type mockRepo struct {
	rows  []Row
	err   error
	calls atomic.Int32
	gate  chan struct{}
}

func (m *mockRepo) InventoryReport(ctx context.Context) ([]Row, error) {
	m.calls.Add(1)
	if m.gate != nil {
		<-m.gate
	}
	if m.err != nil {
		return nil, m.err
	}
	return append([]Row(nil), m.rows...), nil
}

var acmeRow = Row{SupplierID: 1, SupplierName: "Acme", ProductID: 10, StockLevel: 5, ReorderLevel: 2, Quantity: 3}

func newCachedService(t *testing.T, repo Repository) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(repo, NewCache(client, time.Minute), nil)
}

func TestGetInventoryReportWithoutCache(t *testing.T) {
	repo := &mockRepo{rows: []Row{acmeRow}}
	svc := NewService(repo, nil, nil)

	rows, err := svc.GetInventoryReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Row{acmeRow}, rows)

	_, err = svc.GetInventoryReport(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, repo.calls.Load())
}

func TestGetInventoryReportEmpty(t *testing.T) {
	svc := NewService(&mockRepo{}, nil, nil)

	_, err := svc.GetInventoryReport(context.Background())
	require.ErrorIs(t, err, ErrNoReportData)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGetInventoryReportStorageError(t *testing.T) {
	storageErr := &shared.StorageError{Op: "report", Entity: "inventory", Err: errors.New("timeout")}
	svc := NewService(&mockRepo{err: storageErr}, nil, nil)

	_, err := svc.GetInventoryReport(context.Background())
	require.ErrorIs(t, err, storageErr)
	require.False(t, errors.Is(err, shared.ErrNotFound))
}

func TestGetInventoryReportCachesUntilBump(t *testing.T) {
	repo := &mockRepo{rows: []Row{acmeRow}}
	svc := newCachedService(t, repo)
	ctx := context.Background()

	_, err := svc.GetInventoryReport(ctx)
	require.NoError(t, err)
	rows, err := svc.GetInventoryReport(ctx)
	require.NoError(t, err)
	require.Equal(t, []Row{acmeRow}, rows)
	require.EqualValues(t, 1, repo.calls.Load())

	second := Row{SupplierID: 1, SupplierName: "Acme", ProductID: 10, StockLevel: 5, ReorderLevel: 2, Quantity: 7}
	repo.rows = append(repo.rows, second)
	require.NoError(t, svc.Bump(ctx))

	rows, err = svc.GetInventoryReport(ctx)
	require.NoError(t, err)
	require.Equal(t, []Row{acmeRow, second}, rows)
	require.EqualValues(t, 2, repo.calls.Load())
}

func TestGetInventoryReportSharesInFlightQuery(t *testing.T) {
	repo := &mockRepo{rows: []Row{acmeRow}, gate: make(chan struct{})}
	svc := NewService(repo, nil, nil)

	const callers = 8
	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GetInventoryReport(context.Background())
			results <- err
		}()
	}

	require.Eventually(t, func() bool { return repo.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(repo.gate)
	wg.Wait()
	close(results)

	for err := range results {
		require.NoError(t, err)
	}
	require.EqualValues(t, 1, repo.calls.Load())
}

func TestGetInventoryReportHonoursCallerCancellation(t *testing.T) {
	repo := &mockRepo{rows: []Row{acmeRow}, gate: make(chan struct{})}
	defer close(repo.gate)
	svc := NewService(repo, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.GetInventoryReport(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCacheNilIsNoop(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	key, err := c.BuildKey(ctx, "reports", "inventory")
	require.NoError(t, err)
	require.Equal(t, "reports:inventory", key)

	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoError(t, c.Set(ctx, key, []Row{acmeRow}))
	require.NoError(t, c.Bump(ctx))
}

func TestCacheVersionedKeys(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	c := NewCache(client, time.Minute)
	ctx := context.Background()

	key, err := c.BuildKey(ctx, "reports", "inventory")
	require.NoError(t, err)
	require.Equal(t, "reports:inventory:1", key)

	require.NoError(t, c.Set(ctx, key, []Row{acmeRow}))
	rows, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []Row{acmeRow}, rows)
	require.Equal(t, time.Minute, mr.TTL(key))

	require.NoError(t, c.Bump(ctx))
	key, err = c.BuildKey(ctx, "reports", "inventory")
	require.NoError(t, err)
	require.Equal(t, "reports:inventory:2", key)
}
