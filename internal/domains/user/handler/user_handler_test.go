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
	"golang.org/x/crypto/bcrypt"

	"catalog-backend/internal/domains/user"
	"catalog-backend/internal/domains/user/handler"
	"catalog-backend/internal/domains/user/service"
	"catalog-backend/internal/shared/collate"
)

type memoryUserRepo struct {
	items []*user.User
}

func (f *memoryUserRepo) GetAll(_ context.Context) ([]*user.User, error) {
	return f.items, nil
}

func (f *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *memoryUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, it := range f.items {
		if collate.Equal(it.Email, email) {
			return it, nil
		}
	}
	return nil, nil
}

func (f *memoryUserRepo) Create(_ context.Context, entity *user.User) (*user.User, error) {
	f.items = append(f.items, entity)
	return entity, nil
}

func (f *memoryUserRepo) Update(_ context.Context, entity *user.User) (*user.User, error) {
	for i, it := range f.items {
		if it.ID == entity.ID {
			f.items[i] = entity
			return entity, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *memoryUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return user.ErrUserNotFound
}

func setupRouter() (*gin.Engine, *memoryUserRepo) {
	gin.SetMode(gin.TestMode)

	repo := &memoryUserRepo{}
	svc := service.NewUserService(repo, bcrypt.MinCost)
	h := handler.NewUserHandler(svc)

	router := gin.New()
	users := router.Group("/users")
	{
		users.GET("", h.GetAll)
		users.POST("", h.Create)
		users.PATCH("", h.Update)
		users.DELETE("", h.Delete)
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

func TestCreateUserThenDuplicateEmailConflicts(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(router, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"New user Alice created"}`, w.Body.String())

	// Same email, different case: still a conflict.
	w = doJSON(router, http.MethodPost, "/users",
		`{"name":"Other Alice","email":"ALICE@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Duplicate email"}`, w.Body.String())
}

func TestCreateUserMissingFields(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(router, http.MethodPost, "/users", `{"name":"Alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"All fields are required"}`, w.Body.String())
}

func TestGetUsersEmptyCollection(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(router, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"No users found"}`, w.Body.String())
}

func TestGetUsersReturnsBareArrayWithoutPasswords(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(router, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "["))
	assert.Contains(t, body, `"alice@example.com"`)
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "secret123")
}

func TestDeleteUserReplyPhrasing(t *testing.T) {
	router, repo := setupRouter()

	w := doJSON(router, http.MethodPost, "/users",
		`{"name":"Alice","email":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.items, 1)

	id := repo.items[0].ID.String()
	w = doJSON(router, http.MethodDelete, "/users", `{"id":"`+id+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"Email Alice with ID `+id+` deleted"`, w.Body.String())
}

func TestDeleteUserUnknownIDIsBadRequest(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(router, http.MethodDelete, "/users", `{"id":"`+uuid.New().String()+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
}

func TestUpdateUserMissingFields(t *testing.T) {
	router, _ := setupRouter()

	w := doJSON(router, http.MethodPatch, "/users", `{"id":"not-a-uuid","name":"A","email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"All fields except password are required"}`, w.Body.String())
}
