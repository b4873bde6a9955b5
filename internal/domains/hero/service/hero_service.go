package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"collection-backend/internal/domains/hero"
	"collection-backend/pkg/logger"
)

type heroService struct {
	repo hero.Repository
}

func NewHeroService(repo hero.Repository) hero.Service {
	return &heroService{repo: repo}
}

func (s *heroService) Get(ctx context.Context) *hero.Settings {
	settings, err := s.repo.GetFirst(ctx)
	if err != nil {
		logger.Error("Hero settings unavailable, serving defaults", err)
		return hero.DefaultSettings()
	}
	if settings == nil {
		return hero.DefaultSettings()
	}
	return settings
}

func (s *heroService) Update(ctx context.Context, userID uuid.UUID, req hero.UpdateSettingsRequest) (*hero.Settings, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", hero.ErrValidation, err)
	}

	return s.repo.Upsert(ctx, userID, &hero.Settings{
		HeadingLine1: req.HeadingLine1,
		HeadingLine2: req.HeadingLine2,
		Paragraph:    req.Paragraph,
	})
}
