package orders

import "time"

// Order records a quantity of a single product ordered at a point in time.
type Order struct {
	ID        int64     `json:"id" yaml:"id"`
	ProductID int64     `json:"product_id" yaml:"product_id" validate:"gt=0"`
	Quantity  int32     `json:"quantity" yaml:"quantity" validate:"gt=0"`
	OrderDate time.Time `json:"order_date" yaml:"order_date"`
	Status    string    `json:"status" yaml:"status" validate:"max=50"`
}
