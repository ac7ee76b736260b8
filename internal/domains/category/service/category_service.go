package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/logger"

	"github.com/google/uuid"
)

type categoryServiceImpl struct {
	repository category.CategoryRepository
	products   category.ProductChecker
}

func NewCategoryService(repo category.CategoryRepository, products category.ProductChecker) category.CategoryService {
	return &categoryServiceImpl{
		repository: repo,
		products:   products,
	}
}

func (s *categoryServiceImpl) GetAll(ctx context.Context) ([]*category.CategoryResp, error) {
	entities, err := s.repository.GetAll(ctx)
	if err != nil {
		logger.Error("category GetAll: repository failed", err)
		return nil, fmt.Errorf("get categories: failed to fetch")
	}

	return category.CategoriesToResp(entities), nil
}

func (s *categoryServiceImpl) Create(ctx context.Context, req *category.CreateCategoryReq) (*category.CategoryResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create category: invalid request")
	}

	parentID := parseOptionalID(req.ParentCategoryID)

	// ========== Uniqueness check (no exclusion: new record) ==========
	if err := s.checkDuplicate(ctx, req.Name, parentID, req.Slug, nil); err != nil {
		return nil, err
	}

	// ========== Order assignment ==========
	// Atomic counter at the store layer; two concurrent creates can
	// never observe the same value.
	order, err := s.repository.NextOrder(ctx)
	if err != nil {
		logger.Error("category Create: next order failed", err)
		return nil, fmt.Errorf("create category: failed to assign order")
	}

	now := time.Now()
	entity := &category.Category{
		ID:               uuid.New(),
		Name:             req.Name,
		Description:      req.Description,
		ParentCategoryID: parentID,
		Icon:             req.Icon,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		MetaKeywords:     req.MetaKeywords,
		IsActive:         boolOrDefault(req.IsActive, true),
		IsVisible:        boolOrDefault(req.IsVisible, true),
		Slug:             req.Slug,
		Order:            order,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		logger.Error("category Create: repository create failed", err)
		return nil, fmt.Errorf("create category: failed to save")
	}

	logger.Info("category created", map[string]interface{}{
		"id":    created.ID.String(),
		"name":  created.Name,
		"order": created.Order,
	})
	return category.CategoryToResp(created), nil
}

func (s *categoryServiceImpl) Update(ctx context.Context, req *category.UpdateCategoryReq) (*category.CategoryResp, error) {
	if req == nil {
		return nil, fmt.Errorf("update category: invalid request")
	}

	id := utils.ParseStringToUUID(req.ID)
	if id == uuid.Nil {
		return nil, category.ErrCategoryNotFound
	}

	// ========== Load existing record ==========
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		logger.Error("category Update: repository get failed", err)
		return nil, fmt.Errorf("update category: failed to fetch")
	}

	parentID := parseOptionalID(req.ParentCategoryID)

	// ========== Uniqueness check (self-match excluded) ==========
	if err := s.checkDuplicate(ctx, req.Name, parentID, req.Slug, &id); err != nil {
		return nil, err
	}

	// ========== Full replace of mutable fields ==========
	// Absent optional fields overwrite previous values with their zero
	// form; this is a replace, not a patch.
	entity.Name = req.Name
	entity.Description = req.Description
	entity.Icon = req.Icon
	entity.MetaTitle = req.MetaTitle
	entity.MetaDescription = req.MetaDescription
	entity.MetaKeywords = req.MetaKeywords
	entity.IsActive = *req.IsActive
	entity.IsVisible = *req.IsVisible
	entity.Slug = req.Slug
	entity.Order = req.Order
	entity.UpdatedAt = time.Now()

	// Self-parent guard: a category can never become its own parent.
	// Any other submitted value, including none, replaces the parent.
	if parentID == nil || *parentID != entity.ID {
		entity.ParentCategoryID = parentID
	}

	updated, err := s.repository.Update(ctx, entity)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		logger.Error("category Update: repository update failed", err)
		return nil, fmt.Errorf("update category: failed to save")
	}

	return category.CategoryToResp(updated), nil
}

func (s *categoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*category.CategoryResp, error) {
	if id == uuid.Nil {
		return nil, category.ErrCategoryNotFound
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		logger.Error("category Delete: repository get failed", err)
		return nil, fmt.Errorf("delete category: failed to fetch")
	}

	// ========== Integrity guard ==========
	// A category cannot be deleted while products reference it.
	hasProducts, err := s.products.ExistsByCategoryID(ctx, id)
	if err != nil {
		logger.Error("category Delete: product reference check failed", err)
		return nil, fmt.Errorf("delete category: failed to verify products")
	}
	if hasProducts {
		return nil, category.ErrHasProducts
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		logger.Error("category Delete: repository delete failed", err)
		return nil, fmt.Errorf("delete category: failed to delete")
	}

	logger.Info("category deleted", map[string]interface{}{
		"id":   entity.ID.String(),
		"name": entity.Name,
	})
	return category.CategoryToResp(entity), nil
}

// checkDuplicate applies the two-tier category duplicate policy.
//
// Tier 1: a name match (case-insensitive) is always a conflict.
// Tier 2: a record under the same parent AND a record with the same slug
// (possibly two different records) together form a conflict. A slug
// match with no record under the same parent passes. On update, a
// matched record only counts when it is not the record being updated.
//
// The two-query, two-condition structure is a behavioral invariant: it
// intentionally does not enforce global slug uniqueness.
func (s *categoryServiceImpl) checkDuplicate(
	ctx context.Context,
	name string,
	parentID *uuid.UUID,
	slug string,
	excludeID *uuid.UUID,
) error {
	dupName, err := s.repository.FindByName(ctx, name)
	if err != nil {
		logger.Error("category checkDuplicate: name lookup failed", err)
		return fmt.Errorf("check category: failed to verify name")
	}
	if dupName != nil && (excludeID == nil || dupName.ID != *excludeID) {
		return category.ErrDuplicateName
	}

	dupParent, err := s.repository.FindByParentID(ctx, parentID)
	if err != nil {
		logger.Error("category checkDuplicate: parent lookup failed", err)
		return fmt.Errorf("check category: failed to verify parent")
	}

	dupSlug, err := s.repository.FindBySlug(ctx, slug)
	if err != nil {
		logger.Error("category checkDuplicate: slug lookup failed", err)
		return fmt.Errorf("check category: failed to verify slug")
	}

	if dupParent != nil && dupSlug != nil {
		if excludeID == nil || (dupParent.ID != *excludeID && dupSlug.ID != *excludeID) {
			return category.ErrDuplicateCategory
		}
	}

	return nil
}

func parseOptionalID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id := utils.ParseStringToUUID(*s)
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
