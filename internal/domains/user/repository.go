package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)

	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	GetByEmail(ctx context.Context, email string) (*User, error)
}
