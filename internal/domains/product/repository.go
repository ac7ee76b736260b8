package product

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository is the entity-store port for products.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]*Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByNameInCategory matches at most one product by name
	// (case-insensitive) within a single category, (nil, nil) when none.
	FindByNameInCategory(ctx context.Context, name string, categoryID uuid.UUID) (*Product, error)

	// ExistsByCategoryID backs the category delete guard.
	ExistsByCategoryID(ctx context.Context, categoryID uuid.UUID) (bool, error)

	// GetActive returns every product with isActive true; the stock
	// scanner iterates this set.
	GetActive(ctx context.Context) ([]*Product, error)

	// NextOrder atomically increments and returns the product order
	// counter.
	NextOrder(ctx context.Context) (int64, error)

	Create(ctx context.Context, entity *Product) (*Product, error)
	Update(ctx context.Context, entity *Product) (*Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
