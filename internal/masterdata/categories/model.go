package categories

// Category represents a product category.
type Category struct {
	ID   int64  `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type" validate:"required,max=100"`
}
