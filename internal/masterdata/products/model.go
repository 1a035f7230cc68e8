package products

import "github.com/shopspring/decimal"

func init() {
	// Prices are JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a stocked item. CategoryID is mandatory, SupplierID optional.
type Product struct {
	ID           int64           `json:"id"`
	SKU          string          `json:"sku" validate:"max=64"`
	Name         string          `json:"name" validate:"max=200"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   int64           `json:"category_id" validate:"gt=0"`
	StockLevel   int32           `json:"stock_level" validate:"gte=0"`
	ReorderLevel int32           `json:"reorder_level" validate:"gte=0"`
	SupplierID   *int64          `json:"supplier_id" validate:"omitempty,gt=0"`
}
