package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin account. Everyone who can log in can edit the whole
// catalog; there are no roles.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
