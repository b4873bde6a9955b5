package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"collection-backend/internal/domains/hero"
	"collection-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) hero.Repository {
	return &postgresRepository{pool: pool}
}

const settingsColumns = ` id, heading_line1, heading_line2, paragraph, user_id, updated_at`

func (r *postgresRepository) GetFirst(ctx context.Context) (*hero.Settings, error) {
	const query = `SELECT` + settingsColumns + ` FROM hero_settings ORDER BY updated_at DESC LIMIT 1`

	s := &hero.Settings{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.HeadingLine1,
		&s.HeadingLine2,
		&s.Paragraph,
		&s.UserID,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error("Get hero settings: database error", err)
		return nil, fmt.Errorf("failed to get hero settings: %w", err)
	}

	return s, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, userID uuid.UUID, settings *hero.Settings) (*hero.Settings, error) {
	const query = `
		INSERT INTO hero_settings (id, heading_line1, heading_line2, paragraph, user_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET heading_line1 = EXCLUDED.heading_line1,
		    heading_line2 = EXCLUDED.heading_line2,
		    paragraph = EXCLUDED.paragraph,
		    updated_at = EXCLUDED.updated_at
		RETURNING` + settingsColumns

	now := time.Now()
	s := &hero.Settings{}
	err := r.pool.QueryRow(ctx, query,
		uuid.New(),
		settings.HeadingLine1,
		settings.HeadingLine2,
		settings.Paragraph,
		userID,
		now,
	).Scan(
		&s.ID,
		&s.HeadingLine1,
		&s.HeadingLine2,
		&s.Paragraph,
		&s.UserID,
		&s.UpdatedAt,
	)
	if err != nil {
		logger.Error("Upsert hero settings: database error", err)
		return nil, fmt.Errorf("failed to save hero settings: %w", err)
	}

	return s, nil
}
