package roles

import (
	"strings"

	"github.com/odyssey-erp/inventory-api/internal/shared"
)

func validateRole(role Role) error {
	if strings.TrimSpace(role.Name) == "" {
		return shared.NewValidationError("name", "is required")
	}
	return shared.Validate(role)
}
