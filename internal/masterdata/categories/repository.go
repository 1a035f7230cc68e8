package categories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/odyssey-erp/inventory-api/internal/platform/db"
	"github.com/odyssey-erp/inventory-api/internal/shared"
)

const entity = "category"

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int64) (Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, id int64, category Category) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

func (r *repository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, type FROM categories ORDER BY id`)
	if err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, db.Wrap("list", entity, 0, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	return categories, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := r.db.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, shared.ErrNotFound
	}
	if err != nil {
		return Category{}, db.Wrap("get", entity, id, err)
	}
	return c, nil
}

// Create stores the caller-supplied id as-is.
func (r *repository) Create(ctx context.Context, category Category) (Category, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (id, type) VALUES ($1, $2) RETURNING id, type`,
		category.ID, category.Type,
	).Scan(&category.ID, &category.Type)
	if err != nil {
		return Category{}, db.Wrap("create", entity, category.ID, err)
	}
	return category, nil
}

func (r *repository) Update(ctx context.Context, id int64, category Category) error {
	tag, err := r.db.Exec(ctx, `UPDATE categories SET type = $1 WHERE id = $2`, category.Type, id)
	if err != nil {
		return db.Wrap("update", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return db.Wrap("delete", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
