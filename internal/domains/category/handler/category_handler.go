package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collection-backend/internal/domains/category"
	"collection-backend/internal/shared/response"
	"collection-backend/internal/shared/utils"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// ========== LIST: GET /v1/categories ==========
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// ========== READ: GET /v1/categories/:id ==========
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== CREATE: POST /v1/categories ==========
func (h *CategoryHandler) Create(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req category.CreateCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ========== UPDATE: PUT /v1/categories/:id ==========
func (h *CategoryHandler) Update(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var req category.UpdateCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== DELETE: DELETE /v1/categories/:id ==========
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
