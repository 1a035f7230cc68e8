package reports

// Row is one supplier/product/order combination in the inventory report.
type Row struct {
	SupplierID   int64  `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	ProductID    int64  `json:"product_id"`
	StockLevel   int32  `json:"stock_level"`
	ReorderLevel int32  `json:"reorder_level"`
	Quantity     int32  `json:"quantity"`
}
