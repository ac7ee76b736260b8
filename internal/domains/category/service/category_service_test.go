package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/domains/category/service"
	"catalog-backend/internal/shared/collate"
)

// fakeCategoryRepo is an in-memory CategoryRepository. Lookups use the
// same case-insensitive collation the Postgres implementation gets from
// LOWER() comparisons.
type fakeCategoryRepo struct {
	items   []*category.Category
	counter int64
}

func (f *fakeCategoryRepo) GetAll(_ context.Context) ([]*category.Category, error) {
	return f.items, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*category.Category, error) {
	for _, it := range f.items {
		if collate.Equal(it.Name, name) {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByParentID(_ context.Context, parentID *uuid.UUID) (*category.Category, error) {
	for _, it := range f.items {
		if parentID == nil && it.ParentCategoryID == nil {
			return it, nil
		}
		if parentID != nil && it.ParentCategoryID != nil && *it.ParentCategoryID == *parentID {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*category.Category, error) {
	for _, it := range f.items {
		if collate.Equal(it.Slug, slug) {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) NextOrder(_ context.Context) (int64, error) {
	f.counter++
	return f.counter, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, entity *category.Category) (*category.Category, error) {
	f.items = append(f.items, entity)
	return entity, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, entity *category.Category) (*category.Category, error) {
	for i, it := range f.items {
		if it.ID == entity.ID {
			f.items[i] = entity
			return entity, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return category.ErrCategoryNotFound
}

// fakeProductChecker reports product references per category.
type fakeProductChecker struct {
	withProducts map[uuid.UUID]bool
}

func (f *fakeProductChecker) ExistsByCategoryID(_ context.Context, categoryID uuid.UUID) (bool, error) {
	return f.withProducts[categoryID], nil
}

func newTestService() (category.CategoryService, *fakeCategoryRepo, *fakeProductChecker) {
	repo := &fakeCategoryRepo{}
	products := &fakeProductChecker{withProducts: map[uuid.UUID]bool{}}
	return service.NewCategoryService(repo, products), repo, products
}

func createReq(name, slug string) *category.CreateCategoryReq {
	return &category.CreateCategoryReq{
		Name:        name,
		Description: "desc",
		Slug:        slug,
	}
}

func TestCreateAssignsSequentialOrder(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	parent := uuid.New().String()

	first, err := svc.Create(ctx, createReq("Books", "books"))
	require.NoError(t, err)

	second, err := svc.Create(ctx, &category.CreateCategoryReq{
		Name:             "Music",
		Description:      "desc",
		Slug:             "music",
		ParentCategoryID: &parent,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Order)
	assert.Equal(t, int64(2), second.Order)
}

func TestCreateDefaultsFlagsToTrue(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Create(context.Background(), createReq("Books", "books"))
	require.NoError(t, err)

	assert.True(t, resp.IsActive)
	assert.True(t, resp.IsVisible)
}

func TestCreateRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq("Books", "books"))
	require.NoError(t, err)

	other := uuid.New().String()
	_, err = svc.Create(ctx, &category.CreateCategoryReq{
		Name:             "BOOKS",
		Description:      "desc",
		Slug:             "books-2",
		ParentCategoryID: &other,
	})
	assert.ErrorIs(t, err, category.ErrDuplicateName)
}

func TestCreateRejectsSameParentAndSlug(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Both conflicting records are roots with the same slug.
	_, err := svc.Create(ctx, createReq("Books", "shared-slug"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createReq("Music", "shared-slug"))
	assert.ErrorIs(t, err, category.ErrDuplicateCategory)
}

func TestCreateAllowsSlugReuseUnderDifferentParent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq("Books", "shared-slug"))
	require.NoError(t, err)

	// Same slug, but no sibling under the new parent: passes.
	parent := uuid.New().String()
	_, err = svc.Create(ctx, &category.CreateCategoryReq{
		Name:             "Music",
		Description:      "desc",
		Slug:             "shared-slug",
		ParentCategoryID: &parent,
	})
	assert.NoError(t, err)
}

func TestCreateAllowsSiblingWithDistinctSlug(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq("Books", "books"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createReq("Music", "music"))
	assert.NoError(t, err)
}

func updateReqFrom(resp *category.CategoryResp) *category.UpdateCategoryReq {
	isActive := resp.IsActive
	isVisible := resp.IsVisible
	keywords := resp.MetaKeywords
	if keywords == nil {
		keywords = []string{}
	}
	return &category.UpdateCategoryReq{
		ID:               resp.ID,
		Name:             resp.Name,
		Description:      resp.Description,
		ParentCategoryID: resp.ParentCategoryID,
		MetaKeywords:     keywords,
		IsActive:         &isActive,
		IsVisible:        &isVisible,
		Slug:             resp.Slug,
		Order:            resp.Order,
	}
}

func TestUpdateExcludesSelfFromDuplicateCheck(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq("Books", "books"))
	require.NoError(t, err)

	// Unchanged name, parent and slug all match the record itself.
	req := updateReqFrom(created)
	req.Description = "updated desc"

	updated, err := svc.Update(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "updated desc", updated.Description)
}

func TestUpdateIsFullReplace(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	icon := "icon.png"
	created, err := svc.Create(ctx, &category.CreateCategoryReq{
		Name:        "Books",
		Description: "desc",
		Slug:        "books",
		Icon:        &icon,
	})
	require.NoError(t, err)

	// Icon absent from the update body: it is cleared, not kept.
	req := updateReqFrom(created)
	falseVal := false
	req.IsActive = &falseVal

	updated, err := svc.Update(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, updated.Icon)
	assert.False(t, updated.IsActive)
}

func TestUpdateIgnoresSelfAsParent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq("Books", "books"))
	require.NoError(t, err)

	req := updateReqFrom(created)
	req.ParentCategoryID = &created.ID

	updated, err := svc.Update(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, updated.ParentCategoryID)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	req := updateReqFrom(&category.CategoryResp{
		ID:           uuid.New().String(),
		Name:         "Books",
		Description:  "desc",
		Slug:         "books",
		Order:        1,
		MetaKeywords: []string{},
	})

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestDeleteBlockedWhileProductsReferenceCategory(t *testing.T) {
	svc, _, products := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq("Books", "books"))
	require.NoError(t, err)

	id := uuid.MustParse(created.ID)
	products.withProducts[id] = true

	_, err = svc.Delete(ctx, id)
	assert.ErrorIs(t, err, category.ErrHasProducts)

	// The guard clears once the products are gone.
	products.withProducts[id] = false

	resp, err := svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "Books", resp.Name)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteUnknownIDReturnsNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestGetAllReturnsCreatedCategories(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	now := time.Now()
	repo.items = append(repo.items, &category.Category{
		ID:        uuid.New(),
		Name:      "Seeded",
		Slug:      "seeded",
		Order:     7,
		CreatedAt: now,
		UpdatedAt: now,
	})

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Seeded", all[0].Name)
	assert.Equal(t, int64(7), all[0].Order)
}
