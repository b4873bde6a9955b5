package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"collection-backend/internal/domains/category"
	"collection-backend/internal/domains/item"
	"collection-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

const categoryColumns = `
	id, name, description, image, cloudflare_id,
	parent_id, user_id, created_at, updated_at`

func scanCategory(row pgx.Row) (*category.Category, error) {
	c := &category.Category{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Image,
		&c.AssetID,
		&c.ParentID,
		&c.UserID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *category.Category) (*category.Category, error) {
	const query = `
		INSERT INTO categories (
			id, name, description, image, cloudflare_id,
			parent_id, user_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING` + categoryColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.Image,
		entity.AssetID,
		entity.ParentID,
		entity.UserID,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanCategory(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "categories_parent_id_fkey" {
			return nil, category.ErrParentNotFound
		}
		logger.Error("Create category: database error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	const query = `SELECT` + categoryColumns + ` FROM categories WHERE id = $1`

	c, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		logger.Error("Get category: database error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]category.Category, error) {
	const query = `SELECT` + categoryColumns + ` FROM categories ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List categories: database error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return categories, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *category.Category) (*category.Category, error) {
	const query = `
		UPDATE categories
		SET name = $1, description = $2, image = $3, cloudflare_id = $4,
		    parent_id = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8
		RETURNING` + categoryColumns

	row := r.pool.QueryRow(ctx, query,
		entity.Name,
		entity.Description,
		entity.Image,
		entity.AssetID,
		entity.ParentID,
		entity.UpdatedAt,
		entity.ID,
		entity.UserID,
	)

	updated, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		logger.Error("Update category: database error", err)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) DeleteWithItems(ctx context.Context, id uuid.UUID, userID uuid.UUID) ([]item.Item, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Only the columns asset cleanup reads; a full item scan is not
	// needed for rows that are going away.
	const itemsQuery = `
		DELETE FROM items
		WHERE category_id = $1 AND user_id = $2
		RETURNING id, cloudflare_id, cloudflare_ids`

	rows, err := tx.Query(ctx, itemsQuery, id, userID)
	if err != nil {
		logger.Error("Delete category items: database error", err)
		return nil, fmt.Errorf("failed to delete items: %w", err)
	}

	var items []item.Item
	for rows.Next() {
		var i item.Item
		if err := rows.Scan(&i.ID, &i.AssetID, &i.AssetIDs); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan deleted item: %w", err)
		}
		items = append(items, i)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deleted items: %w", err)
	}

	const categoryQuery = `DELETE FROM categories WHERE id = $1 AND user_id = $2`

	tag, err := tx.Exec(ctx, categoryQuery, id, userID)
	if err != nil {
		logger.Error("Delete category: database error", err)
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, category.ErrCategoryNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return items, nil
}
