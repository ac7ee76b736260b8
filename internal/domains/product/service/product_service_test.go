package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/product"
	"catalog-backend/internal/domains/product/service"
	"catalog-backend/internal/shared/collate"
)

// fakeProductRepo is an in-memory ProductRepository with the store's
// case-insensitive name matching.
type fakeProductRepo struct {
	items   []*product.Product
	counter int64
}

func (f *fakeProductRepo) GetAll(_ context.Context) ([]*product.Product, error) {
	return f.items, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, product.ErrProductNotFound
}

func (f *fakeProductRepo) FindByNameInCategory(_ context.Context, name string, categoryID uuid.UUID) (*product.Product, error) {
	for _, it := range f.items {
		if it.CategoryID == categoryID && collate.Equal(it.Name, name) {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ExistsByCategoryID(_ context.Context, categoryID uuid.UUID) (bool, error) {
	for _, it := range f.items {
		if it.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) GetActive(_ context.Context) ([]*product.Product, error) {
	active := make([]*product.Product, 0, len(f.items))
	for _, it := range f.items {
		if it.IsActive {
			active = append(active, it)
		}
	}
	return active, nil
}

func (f *fakeProductRepo) NextOrder(_ context.Context) (int64, error) {
	f.counter++
	return f.counter, nil
}

func (f *fakeProductRepo) Create(_ context.Context, entity *product.Product) (*product.Product, error) {
	f.items = append(f.items, entity)
	return entity, nil
}

func (f *fakeProductRepo) Update(_ context.Context, entity *product.Product) (*product.Product, error) {
	for i, it := range f.items {
		if it.ID == entity.ID {
			f.items[i] = entity
			return entity, nil
		}
	}
	return nil, product.ErrProductNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return product.ErrProductNotFound
}

func newTestService() (product.ProductService, *fakeProductRepo) {
	repo := &fakeProductRepo{}
	return service.NewProductService(repo), repo
}

func createReq(name string, categoryID uuid.UUID) *product.CreateProductReq {
	return &product.CreateProductReq{
		Name:        name,
		Description: "desc",
		Price:       9.99,
		CategoryID:  categoryID.String(),
		Stock:       10,
	}
}

func TestCreateAssignsSequentialOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	categoryID := uuid.New()

	first, err := svc.Create(ctx, createReq("Widget", categoryID))
	require.NoError(t, err)

	second, err := svc.Create(ctx, createReq("Gadget", categoryID))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Order)
	assert.Equal(t, int64(2), second.Order)
}

func TestCreateRejectsDuplicateNameInCategory(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	categoryID := uuid.New()

	_, err := svc.Create(ctx, createReq("Widget", categoryID))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createReq("WIDGET", categoryID))
	assert.ErrorIs(t, err, product.ErrDuplicateProduct)
}

func TestCreateAllowsSameNameInDifferentCategory(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq("Widget", uuid.New()))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createReq("Widget", uuid.New()))
	assert.NoError(t, err)
}

func TestCreateDefaultsActiveAndRatings(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Create(context.Background(), createReq("Widget", uuid.New()))
	require.NoError(t, err)

	assert.True(t, resp.IsActive)
	assert.Zero(t, resp.Ratings.Rating)
	assert.Zero(t, resp.Ratings.NumOfReviews)
}

func updateReqFrom(resp *product.ProductResp) *product.UpdateProductReq {
	isActive := resp.IsActive
	images := resp.Images
	if images == nil {
		images = []string{}
	}
	return &product.UpdateProductReq{
		ID:          resp.ID,
		Name:        resp.Name,
		Description: resp.Description,
		Price:       resp.Price,
		CategoryID:  resp.CategoryID,
		Images:      images,
		Stock:       resp.Stock,
		IsActive:    &isActive,
		Order:       resp.Order,
	}
}

func TestUpdateExcludesSelfFromDuplicateCheck(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq("Widget", uuid.New()))
	require.NoError(t, err)

	req := updateReqFrom(created)
	req.Price = 19.99

	updated, err := svc.Update(ctx, req)
	require.NoError(t, err)
	assert.InDelta(t, 19.99, updated.Price, 0.001)
}

func TestUpdateIntoOccupiedCategoryConflicts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	source := uuid.New()
	target := uuid.New()

	_, err := svc.Create(ctx, createReq("Widget", target))
	require.NoError(t, err)

	moved, err := svc.Create(ctx, createReq("Widget", source))
	require.NoError(t, err)

	// Moving the product into target, where the name is taken.
	req := updateReqFrom(moved)
	req.CategoryID = target.String()

	_, err = svc.Update(ctx, req)
	assert.ErrorIs(t, err, product.ErrDuplicateProduct)
}

func TestUpdateIsFullReplace(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	brand := "Acme"
	categoryID := uuid.New()
	created, err := svc.Create(ctx, &product.CreateProductReq{
		Name:        "Widget",
		Description: "desc",
		Price:       9.99,
		CategoryID:  categoryID.String(),
		Stock:       10,
		Brand:       &brand,
	})
	require.NoError(t, err)

	// Brand absent from the update body: cleared, not kept.
	updated, err := svc.Update(ctx, updateReqFrom(created))
	require.NoError(t, err)
	assert.Nil(t, updated.Brand)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc, _ := newTestService()

	req := updateReqFrom(&product.ProductResp{
		ID:         uuid.New().String(),
		Name:       "Widget",
		CategoryID: uuid.New().String(),
		Price:      9.99,
		Stock:      10,
		Order:      1,
		Images:     []string{},
	})
	req.Description = "desc"

	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestDeleteReturnsDeletedProduct(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq("Widget", uuid.New()))
	require.NoError(t, err)

	resp, err := svc.Delete(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "Widget", resp.Name)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteUnknownIDReturnsNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}
