package products

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/odyssey-erp/inventory-api/internal/platform/db"
	"github.com/odyssey-erp/inventory-api/internal/shared"
)

const entity = "product"

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Create(ctx context.Context, product Product) (Product, error)
	Update(ctx context.Context, id int64, product Product) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

const selectProducts = `SELECT id, sku, name, description, price, category_id, stock_level, reorder_level, supplier_id FROM products`

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.StockLevel, &p.ReorderLevel, &p.SupplierID)
	return p, err
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, selectProducts+` ORDER BY id`)
	if err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, db.Wrap("list", entity, 0, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	return products, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, selectProducts+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, shared.ErrNotFound
	}
	if err != nil {
		return Product{}, db.Wrap("get", entity, id, err)
	}
	return p, nil
}

func (r *repository) Create(ctx context.Context, product Product) (Product, error) {
	query := `INSERT INTO products (id, sku, name, description, price, category_id, stock_level, reorder_level, supplier_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.Description, product.Price,
		product.CategoryID, product.StockLevel, product.ReorderLevel, product.SupplierID,
	)
	if err != nil {
		return Product{}, db.Wrap("create", entity, product.ID, err)
	}
	return product, nil
}

func (r *repository) Update(ctx context.Context, id int64, product Product) error {
	query := `UPDATE products SET sku = $1, name = $2, description = $3, price = $4, category_id = $5,
	          stock_level = $6, reorder_level = $7, supplier_id = $8 WHERE id = $9`
	tag, err := r.db.Exec(ctx, query,
		product.SKU, product.Name, product.Description, product.Price,
		product.CategoryID, product.StockLevel, product.ReorderLevel, product.SupplierID, id,
	)
	if err != nil {
		return db.Wrap("update", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return db.Wrap("delete", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
