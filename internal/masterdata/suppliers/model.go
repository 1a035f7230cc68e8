package suppliers

// Supplier represents a supplier entity.
type Supplier struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name" validate:"max=200"`
	ContactInfo string `json:"contact_info" yaml:"contact_info" validate:"max=200"`
	Address     string `json:"address" yaml:"address" validate:"max=500"`
}
