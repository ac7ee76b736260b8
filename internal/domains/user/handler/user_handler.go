package handler

import (
	"fmt"
	"net/http"

	"catalog-backend/internal/domains/user"
	"catalog-backend/internal/shared/response"
	"catalog-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// GetAll handles GET /users. Responses never include the password hash;
// an empty collection answers 400.
func (h *UserHandler) GetAll(c *gin.Context) {
	resps, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Message(c, user.GetHTTPStatusCode(err), user.GetErrorMessage(err))
		return
	}

	response.List(c, http.StatusOK, resps)
}

// Create handles POST /users.
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Message(c, user.GetHTTPStatusCode(err), user.GetErrorMessage(err))
		return
	}

	response.Message(c, http.StatusCreated, fmt.Sprintf("New user %s created", resp.Name))
}

// Update handles PATCH /users. Password is optional; everything else in
// the mutable set is required.
func (h *UserHandler) Update(c *gin.Context) {
	var req user.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields except password are required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, "All fields except password are required")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		response.Message(c, user.GetHTTPStatusCode(err), user.GetErrorMessage(err))
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("%s updated", resp.Name))
}

// Delete handles DELETE /users. The confirmation keeps the historical
// "Email <name>" phrasing.
func (h *UserHandler) Delete(c *gin.Context) {
	var req user.DeleteUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "User ID Required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, "User ID Required")
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), utils.ParseStringToUUID(req.ID))
	if err != nil {
		response.Message(c, user.GetHTTPStatusCode(err), user.GetErrorMessage(err))
		return
	}

	response.Reply(c, http.StatusOK, fmt.Sprintf("Email %s with ID %s deleted", resp.Name, resp.ID))
}
