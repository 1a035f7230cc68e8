package reports

import (
	"context"

	"github.com/odyssey-erp/inventory-api/internal/platform/db"
)

// Repository runs the report query.
type Repository interface {
	InventoryReport(ctx context.Context) ([]Row, error)
}

type repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) Repository {
	return &repository{db: conn}
}

// Inner joins: products without a supplier or without orders are excluded.
const inventoryReportSQL = `
SELECT s.id, s.name, p.id, p.stock_level, p.reorder_level, o.quantity
FROM suppliers s
JOIN products p ON s.id = p.supplier_id
JOIN orders o ON p.id = o.product_id
ORDER BY s.id, p.id, o.id`

func (r *repository) InventoryReport(ctx context.Context) ([]Row, error) {
	rows, err := r.db.Query(ctx, inventoryReportSQL)
	if err != nil {
		return nil, db.Wrap("report", "inventory", 0, err)
	}
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.SupplierID, &row.SupplierName, &row.ProductID, &row.StockLevel, &row.ReorderLevel, &row.Quantity); err != nil {
			return nil, db.Wrap("report", "inventory", 0, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Wrap("report", "inventory", 0, err)
	}
	return out, nil
}
