package suppliers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

type memoryRepo struct {
	rows map[int64]Supplier
}

func (m *memoryRepo) List(context.Context) ([]Supplier, error) {
	out := make([]Supplier, 0, len(m.rows))
	for _, s := range m.rows {
		out = append(out, s)
	}
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, id int64) (Supplier, error) {
	s, ok := m.rows[id]
	if !ok {
		return Supplier{}, shared.ErrNotFound
	}
	return s, nil
}

func (m *memoryRepo) Create(_ context.Context, s Supplier) (Supplier, error) {
	m.rows[s.ID] = s
	return s, nil
}

func (m *memoryRepo) Update(_ context.Context, id int64, s Supplier) error {
	if _, ok := m.rows[id]; !ok {
		return shared.ErrNotFound
	}
	s.ID = id
	m.rows[id] = s
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type countingNotifier struct {
	bumps int
	err   error
}

func (n *countingNotifier) Bump(context.Context) error {
	n.bumps++
	return n.err
}

func TestServiceBumpsNotifierOnSuccessfulWrites(t *testing.T) {
	notifier := &countingNotifier{}
	svc := NewService(&memoryRepo{rows: map[int64]Supplier{}}, nil, notifier)
	ctx := context.Background()

	_, err := svc.Create(ctx, Supplier{ID: 1, Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, svc.Update(ctx, 1, Supplier{ID: 1, Name: "Acme Corp"}))
	require.NoError(t, svc.Delete(ctx, 1))
	require.Equal(t, 3, notifier.bumps)

	require.ErrorIs(t, svc.Delete(ctx, 1), shared.ErrNotFound)
	require.Equal(t, 3, notifier.bumps)
}

func TestServiceIgnoresNotifierFailure(t *testing.T) {
	notifier := &countingNotifier{err: errors.New("redis down")}
	svc := NewService(&memoryRepo{rows: map[int64]Supplier{}}, nil, notifier)

	created, err := svc.Create(context.Background(), Supplier{ID: 1, Name: "Acme"})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
}

func TestServiceRoundTrip(t *testing.T) {
	svc := NewService(&memoryRepo{rows: map[int64]Supplier{}}, nil, nil)
	ctx := context.Background()
	in := Supplier{ID: 4, Name: "Globex", ContactInfo: "orders@globex.example", Address: "42 Harbour Road"}

	_, err := svc.Create(ctx, in)
	require.NoError(t, err)
	got, err := svc.Get(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, in, got)

	_, err = svc.Get(ctx, 0)
	require.ErrorIs(t, err, shared.ErrNotFound)
}
