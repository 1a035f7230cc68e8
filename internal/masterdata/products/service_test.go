package products

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

type memoryRepo struct {
	rows map[int64]Product
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[int64]Product)}
}

func (m *memoryRepo) List(context.Context) ([]Product, error) {
	out := make([]Product, 0, len(m.rows))
	for _, p := range m.rows {
		out = append(out, p)
	}
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, id int64) (Product, error) {
	p, ok := m.rows[id]
	if !ok {
		return Product{}, shared.ErrNotFound
	}
	return p, nil
}

func (m *memoryRepo) Create(_ context.Context, p Product) (Product, error) {
	m.rows[p.ID] = p
	return p, nil
}

func (m *memoryRepo) Update(_ context.Context, id int64, p Product) error {
	if _, ok := m.rows[id]; !ok {
		return shared.ErrNotFound
	}
	p.ID = id
	m.rows[id] = p
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type countingNotifier struct{ bumps int }

func (n *countingNotifier) Bump(context.Context) error {
	n.bumps++
	return nil
}

func supplierID(v int64) *int64 { return &v }

func TestServiceRoundTripKeepsOptionalSupplier(t *testing.T) {
	notifier := &countingNotifier{}
	svc := NewService(newMemoryRepo(), nil, notifier)
	ctx := context.Background()

	drill := Product{ID: 10, SKU: "HW-0010", Name: "Drill", Price: decimal.RequireFromString("129.99"), CategoryID: 1, StockLevel: 5, ReorderLevel: 2, SupplierID: supplierID(1)}
	towels := Product{ID: 12, SKU: "CN-0012", Name: "Towels", Price: decimal.RequireFromString("6.00"), CategoryID: 2, StockLevel: 120, ReorderLevel: 30}

	_, err := svc.Create(ctx, drill)
	require.NoError(t, err)
	_, err = svc.Create(ctx, towels)
	require.NoError(t, err)

	got, err := svc.Get(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, drill, got)

	got, err = svc.Get(ctx, 12)
	require.NoError(t, err)
	require.Nil(t, got.SupplierID)
	require.Equal(t, 2, notifier.bumps)
}

func TestServiceValidation(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil, nil)
	ctx := context.Background()

	cases := map[string]Product{
		"category_id":   {ID: 1, CategoryID: 0},
		"stock_level":   {ID: 1, CategoryID: 1, StockLevel: -1},
		"reorder_level": {ID: 1, CategoryID: 1, ReorderLevel: -1},
		"price":         {ID: 1, CategoryID: 1, Price: decimal.RequireFromString("-0.01")},
		"supplier_id":   {ID: 1, CategoryID: 1, SupplierID: supplierID(0)},
	}
	for field, p := range cases {
		_, err := svc.Create(ctx, p)
		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr, field)
		require.Contains(t, verr.Fields, field)
	}
}

func TestServiceUpdateMissing(t *testing.T) {
	notifier := &countingNotifier{}
	svc := NewService(newMemoryRepo(), nil, notifier)

	err := svc.Update(context.Background(), 5, Product{ID: 5, CategoryID: 1})
	require.ErrorIs(t, err, shared.ErrNotFound)
	require.Zero(t, notifier.bumps)
}
