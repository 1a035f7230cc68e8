package orders

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/odyssey-erp/inventory-api/internal/platform/db"
	"github.com/odyssey-erp/inventory-api/internal/shared"
)

const entity = "order"

// Repository persists orders. Implementations must return shared.ErrNotFound for unknown ids.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id int64) (Order, error)
	Create(ctx context.Context, order Order) (Order, error)
	Update(ctx context.Context, id int64, order Order) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

// column order must follow the Order struct for RowToStructByPos.
const selectOrders = `SELECT id, product_id, quantity, order_date, status FROM orders`

func (r *repository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, selectOrders+` ORDER BY id`)
	if err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	orders, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Order])
	if err != nil {
		return nil, db.Wrap("list", entity, 0, err)
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Order, error) {
	rows, err := r.db.Query(ctx, selectOrders+` WHERE id = $1`, id)
	if err != nil {
		return Order{}, db.Wrap("get", entity, id, err)
	}
	order, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByPos[Order])
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, shared.ErrNotFound
	}
	if err != nil {
		return Order{}, db.Wrap("get", entity, id, err)
	}
	return order, nil
}

func (r *repository) Create(ctx context.Context, order Order) (Order, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO orders (id, product_id, quantity, order_date, status) VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, product_id, quantity, order_date, status`,
		order.ID, order.ProductID, order.Quantity, order.OrderDate, order.Status,
	).Scan(&order.ID, &order.ProductID, &order.Quantity, &order.OrderDate, &order.Status)
	if err != nil {
		return Order{}, db.Wrap("create", entity, order.ID, err)
	}
	return order, nil
}

func (r *repository) Update(ctx context.Context, id int64, order Order) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET product_id = $1, quantity = $2, order_date = $3, status = $4 WHERE id = $5`,
		order.ProductID, order.Quantity, order.OrderDate, order.Status, id,
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
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return db.Wrap("delete", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
