package user

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	// Refresh exchanges a valid refresh token for a fresh token pair.
	Refresh(ctx context.Context, req RefreshRequest) (*TokenPair, error)

	Me(ctx context.Context, id uuid.UUID) (*User, error)
}
