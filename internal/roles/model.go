package roles

// Role is a named permission group. Its id is assigned on create.
type Role struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name" validate:"required,max=100"`
}
