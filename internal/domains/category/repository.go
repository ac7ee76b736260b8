package category

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository is the entity-store port for categories.
//
// The Find* probes back the uniqueness checks: they match at most one
// record by field equality under the store's case-insensitive collation
// and return (nil, nil) when nothing matches. FindByParentID treats a
// nil parent as a match dimension of its own (root categories).
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)

	FindByName(ctx context.Context, name string) (*Category, error)
	FindByParentID(ctx context.Context, parentID *uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// NextOrder atomically increments and returns the category order
	// counter. Never implemented as read-max-then-add.
	NextOrder(ctx context.Context) (int64, error)

	Create(ctx context.Context, entity *Category) (*Category, error)
	Update(ctx context.Context, entity *Category) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
