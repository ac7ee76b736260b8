package handler

import (
	"fmt"
	"net/http"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/shared/response"
	"catalog-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service category.CategoryService
}

func NewCategoryHandler(svc category.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// GetAll handles GET /categories.
func (h *CategoryHandler) GetAll(c *gin.Context) {
	resps, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, category.GetErrorMessage(err))
		return
	}

	response.List(c, http.StatusOK, resps)
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), &req); err != nil {
		response.Message(c, category.GetHTTPStatusCode(err), category.GetErrorMessage(err))
		return
	}

	response.Message(c, http.StatusCreated, "New category created")
}

// Update handles PATCH /categories. The id travels in the body.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req category.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		response.Message(c, category.GetHTTPStatusCode(err), category.GetErrorMessage(err))
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("%s updated", resp.Name))
}

// Delete handles DELETE /categories. Replies with a bare confirmation
// string combining the display name and id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	var req category.DeleteCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Category ID Required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Category ID Required")
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), utils.ParseStringToUUID(req.ID))
	if err != nil {
		response.Message(c, category.GetHTTPStatusCode(err), category.GetErrorMessage(err))
		return
	}

	response.Reply(c, http.StatusOK, fmt.Sprintf("Name %s with ID %s deleted", resp.Name, resp.ID))
}
