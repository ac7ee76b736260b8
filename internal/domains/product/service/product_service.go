package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-backend/internal/domains/product"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/logger"

	"github.com/google/uuid"
)

type productServiceImpl struct {
	repository product.ProductRepository
}

func NewProductService(repo product.ProductRepository) product.ProductService {
	return &productServiceImpl{repository: repo}
}

func (s *productServiceImpl) GetAll(ctx context.Context) ([]*product.ProductResp, error) {
	entities, err := s.repository.GetAll(ctx)
	if err != nil {
		logger.Error("product GetAll: repository failed", err)
		return nil, fmt.Errorf("get products: failed to fetch")
	}

	return product.ProductsToResp(entities), nil
}

func (s *productServiceImpl) Create(ctx context.Context, req *product.CreateProductReq) (*product.ProductResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create product: invalid request")
	}

	categoryID := utils.ParseStringToUUID(req.CategoryID)
	if categoryID == uuid.Nil {
		return nil, product.ErrInvalidProductData
	}

	// ========== Uniqueness check (scoped to the category) ==========
	if err := s.checkDuplicate(ctx, req.Name, categoryID, nil); err != nil {
		return nil, err
	}

	// ========== Order assignment ==========
	order, err := s.repository.NextOrder(ctx)
	if err != nil {
		logger.Error("product Create: next order failed", err)
		return nil, fmt.Errorf("create product: failed to assign order")
	}

	now := time.Now()
	entity := &product.Product{
		ID:                uuid.New(),
		Name:              req.Name,
		Description:       req.Description,
		Price:             utils.ParseFloatToDecimal(req.Price),
		CategoryID:        categoryID,
		Images:            req.Images,
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		Brand:             req.Brand,
		Ratings:           ratingsOrZero(req.Ratings),
		IsActive:          isActiveOrDefault(req.IsActive),
		Order:             order,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		if errors.Is(err, product.ErrInvalidProductData) {
			return nil, product.ErrInvalidProductData
		}
		logger.Error("product Create: repository create failed", err)
		return nil, fmt.Errorf("create product: failed to save")
	}

	logger.Info("product created", map[string]interface{}{
		"id":    created.ID.String(),
		"name":  created.Name,
		"order": created.Order,
	})
	return product.ProductToResp(created), nil
}

func (s *productServiceImpl) Update(ctx context.Context, req *product.UpdateProductReq) (*product.ProductResp, error) {
	if req == nil {
		return nil, fmt.Errorf("update product: invalid request")
	}

	id := utils.ParseStringToUUID(req.ID)
	if id == uuid.Nil {
		return nil, product.ErrProductNotFound
	}

	categoryID := utils.ParseStringToUUID(req.CategoryID)
	if categoryID == uuid.Nil {
		return nil, product.ErrInvalidProductData
	}

	// ========== Load existing record ==========
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, product.ErrProductNotFound
		}
		logger.Error("product Update: repository get failed", err)
		return nil, fmt.Errorf("update product: failed to fetch")
	}

	// ========== Uniqueness check (self-match excluded) ==========
	// The check runs against the submitted (name, categoryId) pair, so
	// moving a product into a category that already holds that name is
	// a conflict.
	if err := s.checkDuplicate(ctx, req.Name, categoryID, &id); err != nil {
		return nil, err
	}

	// ========== Full replace of mutable fields ==========
	entity.Name = req.Name
	entity.Description = req.Description
	entity.Price = utils.ParseFloatToDecimal(req.Price)
	entity.CategoryID = categoryID
	entity.Images = req.Images
	entity.Stock = req.Stock
	entity.LowStockThreshold = req.LowStockThreshold
	entity.Brand = req.Brand
	entity.Ratings = ratingsOrZero(req.Ratings)
	entity.IsActive = *req.IsActive
	entity.Order = req.Order
	entity.UpdatedAt = time.Now()

	updated, err := s.repository.Update(ctx, entity)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) || errors.Is(err, product.ErrInvalidProductData) {
			return nil, err
		}
		logger.Error("product Update: repository update failed", err)
		return nil, fmt.Errorf("update product: failed to save")
	}

	return product.ProductToResp(updated), nil
}

func (s *productServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*product.ProductResp, error) {
	if id == uuid.Nil {
		return nil, product.ErrProductNotFound
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, product.ErrProductNotFound
		}
		logger.Error("product Delete: repository get failed", err)
		return nil, fmt.Errorf("delete product: failed to fetch")
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, product.ErrProductNotFound
		}
		logger.Error("product Delete: repository delete failed", err)
		return nil, fmt.Errorf("delete product: failed to delete")
	}

	logger.Info("product deleted", map[string]interface{}{
		"id":   entity.ID.String(),
		"name": entity.Name,
	})
	return product.ProductToResp(entity), nil
}

// checkDuplicate enforces (name, categoryId) uniqueness. On update, a
// match on the record being updated is not a conflict.
func (s *productServiceImpl) checkDuplicate(ctx context.Context, name string, categoryID uuid.UUID, excludeID *uuid.UUID) error {
	dup, err := s.repository.FindByNameInCategory(ctx, name, categoryID)
	if err != nil {
		logger.Error("product checkDuplicate: lookup failed", err)
		return fmt.Errorf("check product: failed to verify name")
	}

	if dup != nil && (excludeID == nil || dup.ID != *excludeID) {
		return product.ErrDuplicateProduct
	}

	return nil
}

func ratingsOrZero(r *product.Ratings) product.Ratings {
	if r == nil {
		return product.Ratings{}
	}
	return *r
}

func isActiveOrDefault(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}
