package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"collection-backend/internal/domains/item"
	"collection-backend/internal/shared/response"
	"collection-backend/internal/shared/utils"
)

type ItemHandler struct {
	service item.Service
}

func NewItemHandler(svc item.Service) *ItemHandler {
	return &ItemHandler{service: svc}
}

// ========== LIST: GET /v1/items ==========
// Optional ?category_id= filters to one category.
func (h *ItemHandler) List(c *gin.Context) {
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "invalid category_id")
			return
		}
		items, err := h.service.ListByCategory(c.Request.Context(), categoryID)
		if err != nil {
			response.InternalServerError(c, err.Error())
			return
		}
		response.Success(c, http.StatusOK, items)
		return
	}

	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, items)
}

// ========== READ: GET /v1/items/:id ==========
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	resp, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, item.GetHTTPStatusCode(err), "ITEM_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== CREATE: POST /v1/items ==========
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req item.CreateItemRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.ErrorResponse(c, item.GetHTTPStatusCode(err), "ITEM_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ========== UPDATE: PUT /v1/items/:id ==========
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	var req item.UpdateItemRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		response.ErrorResponse(c, item.GetHTTPStatusCode(err), "ITEM_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== DELETE: DELETE /v1/items/:id ==========
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		response.ErrorResponse(c, item.GetHTTPStatusCode(err), "ITEM_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
