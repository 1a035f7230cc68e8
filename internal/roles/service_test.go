package roles

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

// memoryRepo mirrors the max(id)+1 policy of the SQL repository.
type memoryRepo struct {
	rows map[int64]Role
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[int64]Role)}
}

func (m *memoryRepo) List(context.Context) ([]Role, error) {
	out := make([]Role, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, id int64) (Role, error) {
	r, ok := m.rows[id]
	if !ok {
		return Role{}, shared.ErrNotFound
	}
	return r, nil
}

func (m *memoryRepo) Create(_ context.Context, r Role) (Role, error) {
	var highest int64
	for id := range m.rows {
		if id > highest {
			highest = id
		}
	}
	r.ID = highest + 1
	m.rows[r.ID] = r
	return r, nil
}

func (m *memoryRepo) Update(_ context.Context, id int64, r Role) error {
	if _, ok := m.rows[id]; !ok {
		return shared.ErrNotFound
	}
	r.ID = id
	m.rows[id] = r
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func TestServiceCreateAssignsNextID(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	ctx := context.Background()

	admin, err := svc.Create(ctx, Role{Name: "Administrator"})
	require.NoError(t, err)
	require.Equal(t, int64(1), admin.ID)

	clerk, err := svc.Create(ctx, Role{ID: 77, Name: "Clerk"})
	require.NoError(t, err)
	require.Equal(t, int64(2), clerk.ID, "payload id is ignored")

	got, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, Role{ID: 2, Name: "Clerk"}, got)
}

func TestServiceCreateAfterGapUsesMax(t *testing.T) {
	repo := newMemoryRepo()
	repo.rows[5] = Role{ID: 5, Name: "Auditor"}
	svc := NewService(repo, nil)

	created, err := svc.Create(context.Background(), Role{Name: "Viewer"})
	require.NoError(t, err)
	require.Equal(t, int64(6), created.ID)
}

func TestServiceCreateRequiresName(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), Role{Name: "  "})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "name")
	require.Empty(t, repo.rows)
}

func TestServiceUpdateDeleteMissing(t *testing.T) {
	repo := newMemoryRepo()
	repo.rows[1] = Role{ID: 1, Name: "Administrator"}
	svc := NewService(repo, nil)
	ctx := context.Background()

	require.ErrorIs(t, svc.Update(ctx, 2, Role{Name: "Clerk"}), shared.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, 2), shared.ErrNotFound)
	require.Equal(t, map[int64]Role{1: {ID: 1, Name: "Administrator"}}, repo.rows)
}
