package users

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

// memoryRepo enforces the role-exists rule the way the SQL repository does.
type memoryRepo struct {
	roles map[int64]bool
	rows  map[int64]User
}

func newMemoryRepo(roleIDs ...int64) *memoryRepo {
	m := &memoryRepo{roles: make(map[int64]bool), rows: make(map[int64]User)}
	for _, id := range roleIDs {
		m.roles[id] = true
	}
	return m
}

func (m *memoryRepo) List(context.Context) ([]User, error) {
	out := make([]User, 0, len(m.rows))
	for _, u := range m.rows {
		out = append(out, u)
	}
	return out, nil
}

func (m *memoryRepo) Get(_ context.Context, id int64) (User, error) {
	u, ok := m.rows[id]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return u, nil
}

func (m *memoryRepo) Create(_ context.Context, u User) (User, error) {
	if !m.roles[u.RoleID] {
		return User{}, shared.NewValidationError("role_id", fmt.Sprintf("role %d does not exist", u.RoleID))
	}
	m.rows[u.ID] = u
	return u, nil
}

func (m *memoryRepo) Update(_ context.Context, id int64, u User) error {
	if _, ok := m.rows[id]; !ok {
		return shared.ErrNotFound
	}
	u.ID = id
	m.rows[id] = u
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func TestServiceCreateWithKnownRole(t *testing.T) {
	svc := NewService(newMemoryRepo(1), nil)
	ctx := context.Background()

	in := User{ID: 1, FirstName: "Ada", LastName: "Admin", Email: "ada@inventory.example", PasswordHash: "hash", RoleID: 1}
	_, err := svc.Create(ctx, in)
	require.NoError(t, err)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestServiceCreateUnknownRoleWritesNothing(t *testing.T) {
	repo := newMemoryRepo(1)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), User{ID: 2, RoleID: 9})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "role_id")
	require.Empty(t, repo.rows)
}

func TestServiceEmailRules(t *testing.T) {
	svc := NewService(newMemoryRepo(1), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, User{ID: 1, RoleID: 1})
	require.NoError(t, err, "email is optional")

	_, err = svc.Create(ctx, User{ID: 2, RoleID: 1, Email: "not-an-email"})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "email")
}

func TestServiceRequiresRoleID(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)

	_, err := svc.Create(context.Background(), User{ID: 1})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "role_id")
}
