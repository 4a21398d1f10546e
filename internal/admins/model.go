package admins

import "time"

// Mirrors DB columns from the table `admins`.
type Admin struct {
	ID string `json:"id"`

	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt
	Role         string `json:"role"` // admin | user

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
