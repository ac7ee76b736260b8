package handler

import (
	"fmt"
	"net/http"

	"catalog-backend/internal/domains/product"
	"catalog-backend/internal/shared/response"
	"catalog-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service product.ProductService
}

func NewProductHandler(svc product.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

// GetAll handles GET /products.
func (h *ProductHandler) GetAll(c *gin.Context) {
	resps, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, product.GetErrorMessage(err))
		return
	}

	response.List(c, http.StatusOK, resps)
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req product.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), &req); err != nil {
		response.Message(c, product.GetHTTPStatusCode(err), product.GetErrorMessage(err))
		return
	}

	response.Message(c, http.StatusCreated, "New product created")
}

// Update handles PATCH /products. The id travels in the body.
func (h *ProductHandler) Update(c *gin.Context) {
	var req product.UpdateProductReq
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
		response.Message(c, product.GetHTTPStatusCode(err), product.GetErrorMessage(err))
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("%s updated", resp.Name))
}

// Delete handles DELETE /products.
func (h *ProductHandler) Delete(c *gin.Context) {
	var req product.DeleteProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Product ID Required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, "Product ID Required")
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), utils.ParseStringToUUID(req.ID))
	if err != nil {
		response.Message(c, product.GetHTTPStatusCode(err), product.GetErrorMessage(err))
		return
	}

	response.Reply(c, http.StatusOK, fmt.Sprintf("Name %s with ID %s deleted", resp.Name, resp.ID))
}
