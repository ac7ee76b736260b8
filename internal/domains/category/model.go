package category

import (
	"time"

	"github.com/google/uuid"
)

// Category is a catalog grouping. Categories form a tree through
// ParentCategoryID; a nil parent means a root category. Order is a
// per-collection display sequence assigned once at creation from the
// entity counter.
type Category struct {
	ID               uuid.UUID
	Name             string
	Description      string
	ParentCategoryID *uuid.UUID
	Icon             *string
	MetaTitle        *string
	MetaDescription  *string
	MetaKeywords     []string
	IsActive         bool
	IsVisible        bool
	Slug             string
	Order            int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
