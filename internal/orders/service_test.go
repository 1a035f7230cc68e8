package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

type memoryRepo struct {
	rows map[int64]Order
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[int64]Order)}
}

func (m *memoryRepo) List(context.Context) ([]Order, error) {
	out := make([]Order, 0, len(m.rows))
	for _, o := range m.rows {
		out = append(out, o)
	}
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, id int64) (Order, error) {
	o, ok := m.rows[id]
	if !ok {
		return Order{}, shared.ErrNotFound
	}
	return o, nil
}

func (m *memoryRepo) Create(_ context.Context, o Order) (Order, error) {
	m.rows[o.ID] = o
	return o, nil
}

func (m *memoryRepo) Update(_ context.Context, id int64, o Order) error {
	if _, ok := m.rows[id]; !ok {
		return shared.ErrNotFound
	}
	o.ID = id
	m.rows[id] = o
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func TestServiceCreateFillsDefaults(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	svc := NewService(newMemoryRepo(), nil, nil)
	svc.now = func() time.Time { return fixed }

	created, err := svc.Create(context.Background(), Order{ID: 100, ProductID: 10, Quantity: 3})
	require.NoError(t, err)
	require.Equal(t, fixed, created.OrderDate)
	require.Equal(t, StatusPending, created.Status)
}

func TestServiceCreateKeepsCallerValues(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil, nil)
	when := time.Date(2024, 12, 1, 8, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	created, err := svc.Create(context.Background(), Order{ID: 1, ProductID: 10, Quantity: 1, OrderDate: when, Status: " Shipped "})
	require.NoError(t, err)
	require.True(t, when.Equal(created.OrderDate))
	require.Equal(t, time.UTC, created.OrderDate.Location())
	require.Equal(t, "Shipped", created.Status)
}

func TestServiceRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil, nil)

	for _, qty := range []int32{0, -4} {
		_, err := svc.Create(context.Background(), Order{ID: 1, ProductID: 10, Quantity: qty})
		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "quantity")
	}
}

func TestServiceDeleteThenGet(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, Order{ID: 5, ProductID: 10, Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 5))

	_, err = svc.Get(ctx, 5)
	require.ErrorIs(t, err, shared.ErrNotFound)
	require.ErrorIs(t, svc.Update(ctx, 5, Order{ProductID: 10, Quantity: 1}), shared.ErrNotFound)
	require.Empty(t, repo.rows)
}
