package orders

import (
	"strings"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

// normalize trims the status and fills date and status defaults.
func (s *Service) normalize(o Order) Order {
	o.Status = strings.TrimSpace(o.Status)
	if o.Status == "" {
		o.Status = StatusPending
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = s.now()
	}
	o.OrderDate = o.OrderDate.UTC()
	return o
}

func validateOrder(o Order) error {
	return shared.Validate(o)
}
