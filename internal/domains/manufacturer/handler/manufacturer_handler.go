package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collection-backend/internal/domains/manufacturer"
	"collection-backend/internal/shared/response"
)

type ManufacturerHandler struct {
	service manufacturer.Service
}

func NewManufacturerHandler(svc manufacturer.Service) *ManufacturerHandler {
	return &ManufacturerHandler{service: svc}
}

// ========== GET /v1/manufacturers ==========
func (h *ManufacturerHandler) List(c *gin.Context) {
	manufacturers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, manufacturers)
}
