package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-backend/internal/domains/product"
	"catalog-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// foreignKeyViolation is the PostgreSQL error code raised when a write
// references a category that does not exist.
const foreignKeyViolation = "23503"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) product.ProductRepository {
	return &postgresRepository{pool: pool}
}

const productColumns = `
	id, name, description, price, category_id, images,
	stock, low_stock_threshold, brand, rating, num_of_reviews,
	is_active, sort_order, created_at, updated_at`

func scanProduct(row pgx.Row) (*product.Product, error) {
	entity := &product.Product{}
	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Description,
		&entity.Price,
		&entity.CategoryID,
		&entity.Images,
		&entity.Stock,
		&entity.LowStockThreshold,
		&entity.Brand,
		&entity.Ratings.Rating,
		&entity.Ratings.NumOfReviews,
		&entity.IsActive,
		&entity.Order,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *postgresRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*product.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	entities := make([]*product.Product, 0)
	for rows.Next() {
		entity, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY sort_order`)
}

func (r *postgresRepository) GetActive(ctx context.Context) ([]*product.Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE is_active = true ORDER BY sort_order`)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	entity, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return entity, nil
}

// FindByNameInCategory matches by field equality under the
// case-insensitive collation, scoped to one category.
func (r *postgresRepository) FindByNameInCategory(ctx context.Context, name string, categoryID uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE LOWER(name) = LOWER($1) AND category_id = $2 LIMIT 1`

	entity, err := scanProduct(r.pool.QueryRow(ctx, query, name, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by name: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) ExistsByCategoryID(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM products WHERE category_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check products by category: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) NextOrder(ctx context.Context) (int64, error) {
	const query = `
		INSERT INTO entity_counters (entity, value)
		VALUES ('product', 1)
		ON CONFLICT (entity)
		DO UPDATE SET value = entity_counters.value + 1
		RETURNING value`

	var order int64
	if err := r.pool.QueryRow(ctx, query).Scan(&order); err != nil {
		return 0, fmt.Errorf("failed to advance product order counter: %w", err)
	}

	return order, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *product.Product) (*product.Product, error) {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.Price,
		entity.CategoryID,
		entity.Images,
		entity.Stock,
		entity.LowStockThreshold,
		entity.Brand,
		entity.Ratings.Rating,
		entity.Ratings.NumOfReviews,
		entity.IsActive,
		entity.Order,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanProduct(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			logger.Error("product Create: category reference rejected", err)
			return nil, product.ErrInvalidProductData
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *product.Product) (*product.Product, error) {
	query := `
		UPDATE products SET
			name = $2, description = $3, price = $4, category_id = $5,
			images = $6, stock = $7, low_stock_threshold = $8, brand = $9,
			rating = $10, num_of_reviews = $11, is_active = $12,
			sort_order = $13, updated_at = $14
		WHERE id = $1
		RETURNING ` + productColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.Price,
		entity.CategoryID,
		entity.Images,
		entity.Stock,
		entity.LowStockThreshold,
		entity.Brand,
		entity.Ratings.Rating,
		entity.Ratings.NumOfReviews,
		entity.IsActive,
		entity.Order,
		entity.UpdatedAt,
	)

	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			logger.Error("product Update: category reference rejected", err)
			return nil, product.ErrInvalidProductData
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}

	return nil
}
