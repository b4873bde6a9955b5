package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"collection-backend/internal/domains/item"
	"collection-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) item.Repository {
	return &postgresRepository{pool: pool}
}

const itemColumns = `
	id, name, description, category_id, stock_status, rating,
	valuation, bought_for, image, images, cloudflare_id, cloudflare_ids,
	manufacturer, year_manufactured, afa_number, afa_grade, variations,
	user_id, created_at, updated_at`

func scanItem(row pgx.Row) (*item.Item, error) {
	i := &item.Item{}
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.CategoryID,
		&i.StockStatus,
		&i.Rating,
		&i.Valuation,
		&i.BoughtFor,
		&i.Image,
		&i.Images,
		&i.AssetID,
		&i.AssetIDs,
		&i.Manufacturer,
		&i.YearManufactured,
		&i.AFANumber,
		&i.AFAGrade,
		&i.Variations,
		&i.UserID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func collectItems(rows pgx.Rows) ([]item.Item, error) {
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *item.Item) (*item.Item, error) {
	const query = `
		INSERT INTO items (
			id, name, description, category_id, stock_status, rating,
			valuation, bought_for, image, images, cloudflare_id, cloudflare_ids,
			manufacturer, year_manufactured, afa_number, afa_grade, variations,
			user_id, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		RETURNING` + itemColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.CategoryID,
		entity.StockStatus,
		entity.Rating,
		entity.Valuation,
		entity.BoughtFor,
		entity.Image,
		entity.Images,
		entity.AssetID,
		entity.AssetIDs,
		entity.Manufacturer,
		entity.YearManufactured,
		entity.AFANumber,
		entity.AFAGrade,
		entity.Variations,
		entity.UserID,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanItem(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "items_category_id_fkey" {
			return nil, item.ErrCategoryNotFound
		}
		logger.Error("Create item: database error", err)
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	const query = `SELECT` + itemColumns + ` FROM items WHERE id = $1`

	i, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrItemNotFound
		}
		logger.Error("Get item: database error", err)
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return i, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]item.Item, error) {
	const query = `SELECT` + itemColumns + ` FROM items ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List items: database error", err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return collectItems(rows)
}

func (r *postgresRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]item.Item, error) {
	const query = `SELECT` + itemColumns + ` FROM items WHERE category_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		logger.Error("List items by category: database error", err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return collectItems(rows)
}

func (r *postgresRepository) Update(ctx context.Context, entity *item.Item) (*item.Item, error) {
	const query = `
		UPDATE items
		SET name = $1, description = $2, category_id = $3, stock_status = $4,
		    rating = $5, valuation = $6, bought_for = $7, image = $8,
		    images = $9, cloudflare_id = $10, cloudflare_ids = $11,
		    manufacturer = $12, year_manufactured = $13, afa_number = $14,
		    afa_grade = $15, variations = $16, updated_at = $17
		WHERE id = $18 AND user_id = $19
		RETURNING` + itemColumns

	row := r.pool.QueryRow(ctx, query,
		entity.Name,
		entity.Description,
		entity.CategoryID,
		entity.StockStatus,
		entity.Rating,
		entity.Valuation,
		entity.BoughtFor,
		entity.Image,
		entity.Images,
		entity.AssetID,
		entity.AssetIDs,
		entity.Manufacturer,
		entity.YearManufactured,
		entity.AFANumber,
		entity.AFAGrade,
		entity.Variations,
		entity.UpdatedAt,
		entity.ID,
		entity.UserID,
	)

	updated, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, item.ErrItemNotFound
		}
		logger.Error("Update item: database error", err)
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	const query = `DELETE FROM items WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		logger.Error("Delete item: database error", err)
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return item.ErrItemNotFound
	}

	return nil
}

func (r *postgresRepository) DistinctManufacturers(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT manufacturer
		FROM items
		WHERE manufacturer IS NOT NULL AND manufacturer <> ''
		ORDER BY manufacturer ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("List manufacturers: database error", err)
		return nil, fmt.Errorf("failed to list manufacturers: %w", err)
	}
	defer rows.Close()

	var manufacturers []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("failed to scan manufacturer: %w", err)
		}
		manufacturers = append(manufacturers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manufacturers: %w", err)
	}

	return manufacturers, nil
}
