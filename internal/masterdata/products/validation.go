package products

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

// priceLimit is the first value NUMERIC(18,2) cannot hold.
var priceLimit = decimal.New(1, 16)

// validate checks field constraints; referential checks on category and supplier are left to the foreign keys.
func (s *Service) validate(p Product) error {
	fields := map[string]string{}
	if err := shared.Validate(p); err != nil {
		var verr *shared.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		fields = verr.Fields
	}
	if msg := checkPrice(p.Price); msg != "" {
		fields["price"] = msg
	}
	if len(fields) == 0 {
		return nil
	}
	return &shared.ValidationError{Fields: fields}
}

func checkPrice(price decimal.Decimal) string {
	switch {
	case price.IsNegative():
		return "must be at least 0"
	case !price.Equal(price.Round(2)):
		return "must have at most two fractional digits"
	case price.GreaterThanOrEqual(priceLimit):
		return "must be less than " + priceLimit.String()
	}
	return ""
}
