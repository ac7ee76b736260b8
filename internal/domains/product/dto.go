package product

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateProductReq carries the POST /products body. Price and stock are
// required and must be non-zero; a free product or an out-of-stock
// create is rejected as missing fields.
type CreateProductReq struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	CategoryID        string   `json:"categoryId"`
	Images            []string `json:"images"`
	Stock             int      `json:"stock"`
	LowStockThreshold int      `json:"lowStockThreshold"`
	Brand             *string  `json:"brand"`
	Ratings           *Ratings `json:"ratings"`
	IsActive          *bool    `json:"isActive"`
}

func (r CreateProductReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&r.CategoryID, validation.Required, is.UUID),
		validation.Field(&r.Stock, validation.Required, validation.Min(0)),
		validation.Field(&r.LowStockThreshold, validation.Min(0)),
	)
}

// UpdateProductReq carries the PATCH /products body (full replace).
type UpdateProductReq struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	CategoryID        string   `json:"categoryId"`
	Images            []string `json:"images"`
	Stock             int      `json:"stock"`
	LowStockThreshold int      `json:"lowStockThreshold"`
	Brand             *string  `json:"brand"`
	Ratings           *Ratings `json:"ratings"`
	IsActive          *bool    `json:"isActive"`
	Order             int64    `json:"order"`
}

func (r UpdateProductReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, is.UUID),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Price, validation.Required, validation.Min(0.0)),
		validation.Field(&r.CategoryID, validation.Required, is.UUID),
		validation.Field(&r.Images, validation.NotNil),
		validation.Field(&r.Stock, validation.Required, validation.Min(0)),
		validation.Field(&r.LowStockThreshold, validation.Min(0)),
		validation.Field(&r.IsActive, validation.NotNil),
		validation.Field(&r.Order, validation.Required),
	)
}

// DeleteProductReq carries the DELETE /products body.
type DeleteProductReq struct {
	ID string `json:"id"`
}

func (r DeleteProductReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, is.UUID),
	)
}

// ProductResp is the representation returned by GET /products.
type ProductResp struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             float64   `json:"price"`
	CategoryID        string    `json:"categoryId"`
	Images            []string  `json:"images"`
	Stock             int       `json:"stock"`
	LowStockThreshold int       `json:"lowStockThreshold"`
	Brand             *string   `json:"brand,omitempty"`
	Ratings           Ratings   `json:"ratings"`
	IsActive          bool      `json:"isActive"`
	Order             int64     `json:"order"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func ProductToResp(entity *Product) *ProductResp {
	return &ProductResp{
		ID:                entity.ID.String(),
		Name:              entity.Name,
		Description:       entity.Description,
		Price:             entity.Price.InexactFloat64(),
		CategoryID:        entity.CategoryID.String(),
		Images:            entity.Images,
		Stock:             entity.Stock,
		LowStockThreshold: entity.LowStockThreshold,
		Brand:             entity.Brand,
		Ratings:           entity.Ratings,
		IsActive:          entity.IsActive,
		Order:             entity.Order,
		CreatedAt:         entity.CreatedAt,
		UpdatedAt:         entity.UpdatedAt,
	}
}

func ProductsToResp(entities []*Product) []*ProductResp {
	resps := make([]*ProductResp, 0, len(entities))
	for _, entity := range entities {
		resps = append(resps, ProductToResp(entity))
	}
	return resps
}
