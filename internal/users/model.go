package users

// User is an account holder assigned to exactly one role.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name" validate:"max=100"`
	LastName     string `json:"last_name" validate:"max=100"`
	Email        string `json:"email" validate:"omitempty,email,max=254"`
	PasswordHash string `json:"password_hash"`
	RoleID       int64  `json:"role_id" validate:"gt=0"`
}
