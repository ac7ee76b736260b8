package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-backend/internal/domains/category"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.CategoryRepository {
	return &postgresRepository{pool: pool}
}

const categoryColumns = `
	id, name, description, parent_category_id, icon,
	meta_title, meta_description, meta_keywords,
	is_active, is_visible, slug, sort_order,
	created_at, updated_at`

func scanCategory(row pgx.Row) (*category.Category, error) {
	entity := &category.Category{}
	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Description,
		&entity.ParentCategoryID,
		&entity.Icon,
		&entity.MetaTitle,
		&entity.MetaDescription,
		&entity.MetaKeywords,
		&entity.IsActive,
		&entity.IsVisible,
		&entity.Slug,
		&entity.Order,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY sort_order`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	entities := make([]*category.Category, 0)
	for rows.Next() {
		entity, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	entity, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return entity, nil
}

// FindByName matches by field equality under the case-insensitive
// collation. Returns (nil, nil) when no record matches.
func (r *postgresRepository) FindByName(ctx context.Context, name string) (*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE LOWER(name) = LOWER($1) LIMIT 1`

	entity, err := scanCategory(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}

	return entity, nil
}

// FindByParentID matches any category under the given parent, nil
// meaning the root level. IS NOT DISTINCT FROM makes NULL compare equal.
func (r *postgresRepository) FindByParentID(ctx context.Context, parentID *uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories
		WHERE parent_category_id IS NOT DISTINCT FROM $1 LIMIT 1`

	entity, err := scanCategory(r.pool.QueryRow(ctx, query, parentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by parent: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) FindBySlug(ctx context.Context, slug string) (*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE LOWER(slug) = LOWER($1) LIMIT 1`

	entity, err := scanCategory(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category by slug: %w", err)
	}

	return entity, nil
}

// NextOrder bumps the per-entity-type counter in one atomic statement.
func (r *postgresRepository) NextOrder(ctx context.Context) (int64, error) {
	const query = `
		INSERT INTO entity_counters (entity, value)
		VALUES ('category', 1)
		ON CONFLICT (entity)
		DO UPDATE SET value = entity_counters.value + 1
		RETURNING value`

	var order int64
	if err := r.pool.QueryRow(ctx, query).Scan(&order); err != nil {
		return 0, fmt.Errorf("failed to advance category order counter: %w", err)
	}

	return order, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *category.Category) (*category.Category, error) {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + categoryColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.ParentCategoryID,
		entity.Icon,
		entity.MetaTitle,
		entity.MetaDescription,
		entity.MetaKeywords,
		entity.IsActive,
		entity.IsVisible,
		entity.Slug,
		entity.Order,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *category.Category) (*category.Category, error) {
	query := `
		UPDATE categories SET
			name = $2, description = $3, parent_category_id = $4, icon = $5,
			meta_title = $6, meta_description = $7, meta_keywords = $8,
			is_active = $9, is_visible = $10, slug = $11, sort_order = $12,
			updated_at = $13
		WHERE id = $1
		RETURNING ` + categoryColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.ParentCategoryID,
		entity.Icon,
		entity.MetaTitle,
		entity.MetaDescription,
		entity.MetaKeywords,
		entity.IsActive,
		entity.IsVisible,
		entity.Slug,
		entity.Order,
		entity.UpdatedAt,
	)

	updated, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}
