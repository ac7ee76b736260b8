package product

import (
	"context"

	"github.com/google/uuid"
)

// ProductService sequences validation, the uniqueness check and
// persistence for every product mutation.
type ProductService interface {
	GetAll(ctx context.Context) ([]*ProductResp, error)
	Create(ctx context.Context, req *CreateProductReq) (*ProductResp, error)
	Update(ctx context.Context, req *UpdateProductReq) (*ProductResp, error)
	Delete(ctx context.Context, id uuid.UUID) (*ProductResp, error)
}
