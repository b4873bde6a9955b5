package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"collection-backend/internal/domains/user"
	"collection-backend/pkg/jwt"
	"collection-backend/pkg/logger"
)

type userService struct {
	repo user.Repository
	jwt  *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo: repo,
		jwt:  jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	entity := &user.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(created)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", map[string]interface{}{"userId": created.ID})
	return &user.AuthResponse{User: created, Tokens: *tokens}, nil
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrValidation, err)
	}

	found, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(found)
	if err != nil {
		return nil, err
	}

	return &user.AuthResponse{User: found, Tokens: *tokens}, nil
}

func (s *userService) Refresh(ctx context.Context, req user.RefreshRequest) (*user.TokenPair, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrValidation, err)
	}

	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	return s.issueTokens(found)
}

func (s *userService) Me(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) issueTokens(u *user.User) (*user.TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &user.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
