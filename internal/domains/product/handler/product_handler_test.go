package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/product"
	"catalog-backend/internal/domains/product/handler"
	"catalog-backend/internal/domains/product/service"
	"catalog-backend/internal/shared/collate"
)

type memoryProductRepo struct {
	items   []*product.Product
	counter int64
}

func (f *memoryProductRepo) GetAll(_ context.Context) ([]*product.Product, error) {
	return f.items, nil
}

func (f *memoryProductRepo) GetByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, product.ErrProductNotFound
}

func (f *memoryProductRepo) FindByNameInCategory(_ context.Context, name string, categoryID uuid.UUID) (*product.Product, error) {
	for _, it := range f.items {
		if it.CategoryID == categoryID && collate.Equal(it.Name, name) {
			return it, nil
		}
	}
	return nil, nil
}

func (f *memoryProductRepo) ExistsByCategoryID(_ context.Context, categoryID uuid.UUID) (bool, error) {
	for _, it := range f.items {
		if it.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (f *memoryProductRepo) GetActive(_ context.Context) ([]*product.Product, error) {
	return f.items, nil
}

func (f *memoryProductRepo) NextOrder(_ context.Context) (int64, error) {
	f.counter++
	return f.counter, nil
}

func (f *memoryProductRepo) Create(_ context.Context, entity *product.Product) (*product.Product, error) {
	f.items = append(f.items, entity)
	return entity, nil
}

func (f *memoryProductRepo) Update(_ context.Context, entity *product.Product) (*product.Product, error) {
	for i, it := range f.items {
		if it.ID == entity.ID {
			f.items[i] = entity
			return entity, nil
		}
	}
	return nil, product.ErrProductNotFound
}

func (f *memoryProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return product.ErrProductNotFound
}

func setupRouter() (*gin.Engine, *memoryProductRepo) {
	gin.SetMode(gin.TestMode)

	repo := &memoryProductRepo{}
	svc := service.NewProductService(repo)
	h := handler.NewProductHandler(svc)

	router := gin.New()
	products := router.Group("/products")
	{
		products.GET("", h.GetAll)
		products.POST("", h.Create)
		products.PATCH("", h.Update)
		products.DELETE("", h.Delete)
	}
	return router, repo
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateProduct(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(router, http.MethodPost, "/products",
		`{"name":"Widget","description":"d","price":9.99,"categoryId":"`+uuid.New().String()+`","stock":10}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"New product created"}`, w.Body.String())
}

func TestCreateProductMissingFields(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(router, http.MethodPost, "/products", `{"name":"Widget"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Missing required fields"}`, w.Body.String())
}

func TestCreateProductDuplicateInCategory(t *testing.T) {
	router, _ := setupRouter()
	categoryID := uuid.New().String()

	w := doJSON(router, http.MethodPost, "/products",
		`{"name":"Widget","description":"d","price":9.99,"categoryId":"`+categoryID+`","stock":10}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/products",
		`{"name":"widget","description":"d","price":4.99,"categoryId":"`+categoryID+`","stock":3}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Duplicate product"}`, w.Body.String())
}

func TestDeleteProductUnknownIDIsNotFound(t *testing.T) {
	router, _ := setupRouter()

	// Products answer 404 for unknown ids where categories and users
	// answer 400.
	w := doJSON(router, http.MethodDelete, "/products", `{"id":"`+uuid.New().String()+`"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, w.Body.String())
}

func TestDeleteProductReplyPhrasing(t *testing.T) {
	router, repo := setupRouter()

	w := doJSON(router, http.MethodPost, "/products",
		`{"name":"Widget","description":"d","price":9.99,"categoryId":"`+uuid.New().String()+`","stock":10}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.items, 1)

	id := repo.items[0].ID.String()
	w = doJSON(router, http.MethodDelete, "/products", `{"id":"`+id+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"Name Widget with ID `+id+` deleted"`, w.Body.String())
}

func TestGetProductsSerializesPriceAsNumber(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(router, http.MethodPost, "/products",
		`{"name":"Widget","description":"d","price":9.99,"categoryId":"`+uuid.New().String()+`","stock":10}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/products", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":9.99`)
}
