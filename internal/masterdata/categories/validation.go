package categories

import (
	"strings"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

func (s *Service) validate(c Category) error {
	if strings.TrimSpace(c.Type) == "" {
		return shared.NewValidationError("type", "is required")
	}
	return shared.Validate(c)
}
