package roles

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/odyssey-erp/inventory-api/internal/platform/db"
	"github.com/odyssey-erp/inventory-api/internal/shared"
)

const entity = "role"

type Repository interface {
	List(ctx context.Context) ([]Role, error)
	Get(ctx context.Context, id int64) (Role, error)
	// Create assigns the next id and ignores role.ID.
	Create(ctx context.Context, role Role) (Role, error)
	Update(ctx context.Context, id int64, role Role) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

func (r *repository) List(ctx context.Context) ([]Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	defer rows.Close()

	roles := make([]Role, 0)
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, db.Wrap("list", entity, 0, err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	return roles, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Role, error) {
	var role Role
	err := r.db.QueryRow(ctx, `SELECT id, name FROM roles WHERE id = $1`, id).Scan(&role.ID, &role.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Role{}, shared.ErrNotFound
	}
	if err != nil {
		return Role{}, db.Wrap("get", entity, id, err)
	}
	return role, nil
}

// Create computes max(id)+1 in the same statement as the insert. Two concurrent
// creators can compute the same id; the loser gets a unique violation.
func (r *repository) Create(ctx context.Context, role Role) (Role, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO roles (id, name) SELECT COALESCE(MAX(id), 0) + 1, $1 FROM roles RETURNING id`,
		role.Name,
	).Scan(&role.ID)
	if err != nil {
		return Role{}, db.Wrap("create", entity, 0, err)
	}
	return role, nil
}

func (r *repository) Update(ctx context.Context, id int64, role Role) error {
	tag, err := r.db.Exec(ctx, `UPDATE roles SET name = $1 WHERE id = $2`, role.Name, id)
	if err != nil {
		return db.Wrap("update", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return db.Wrap("delete", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
