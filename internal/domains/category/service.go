package category

import (
	"context"

	"github.com/google/uuid"
)

// CategoryService sequences validation, the uniqueness checks, the
// integrity guard and persistence for every category mutation.
type CategoryService interface {
	GetAll(ctx context.Context) ([]*CategoryResp, error)
	Create(ctx context.Context, req *CreateCategoryReq) (*CategoryResp, error)
	Update(ctx context.Context, req *UpdateCategoryReq) (*CategoryResp, error)
	Delete(ctx context.Context, id uuid.UUID) (*CategoryResp, error)
}

// ProductChecker is the slice of the product store the category delete
// guard needs: whether any product still references a category.
type ProductChecker interface {
	ExistsByCategoryID(ctx context.Context, categoryID uuid.UUID) (bool, error)
}
