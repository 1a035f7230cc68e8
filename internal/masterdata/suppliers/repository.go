package suppliers

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/odyssey-erp/inventory-api/internal/platform/db"
	"github.com/odyssey-erp/inventory-api/internal/shared"
)

const entity = "supplier"

type Repository interface {
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id int64) (Supplier, error)
	Create(ctx context.Context, supplier Supplier) (Supplier, error)
	Update(ctx context.Context, id int64, supplier Supplier) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

const selectSuppliers = `SELECT id, name, contact_info, address FROM suppliers`

func (r *repository) List(ctx context.Context) ([]Supplier, error) {
	rows, err := r.db.Query(ctx, selectSuppliers+` ORDER BY id`)
	if err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	defer rows.Close()

	suppliers := make([]Supplier, 0)
	for rows.Next() {
		var s Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactInfo, &s.Address); err != nil {
			return nil, db.Wrap("list", entity, 0, err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	return suppliers, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Supplier, error) {
	var s Supplier
	err := r.db.QueryRow(ctx, selectSuppliers+` WHERE id = $1`, id).Scan(&s.ID, &s.Name, &s.ContactInfo, &s.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return Supplier{}, shared.ErrNotFound
	}
	if err != nil {
		return Supplier{}, db.Wrap("get", entity, id, err)
	}
	return s, nil
}

func (r *repository) Create(ctx context.Context, supplier Supplier) (Supplier, error) {
	query := `INSERT INTO suppliers (id, name, contact_info, address) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, query, supplier.ID, supplier.Name, supplier.ContactInfo, supplier.Address); err != nil {
		return Supplier{}, db.Wrap("create", entity, supplier.ID, err)
	}
	return supplier, nil
}

func (r *repository) Update(ctx context.Context, id int64, supplier Supplier) error {
	query := `UPDATE suppliers SET name = $1, contact_info = $2, address = $3 WHERE id = $4`
	tag, err := r.db.Exec(ctx, query, supplier.Name, supplier.ContactInfo, supplier.Address, id)
	if err != nil {
		return db.Wrap("update", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return db.Wrap("delete", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
