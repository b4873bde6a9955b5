package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collection-backend/internal/domains/hero"
	"collection-backend/internal/shared/response"
	"collection-backend/internal/shared/utils"
)

type HeroHandler struct {
	service hero.Service
}

func NewHeroHandler(svc hero.Service) *HeroHandler {
	return &HeroHandler{service: svc}
}

// ========== GET /v1/hero ==========
func (h *HeroHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Get(c.Request.Context()))
}

// ========== PUT /v1/hero ==========
func (h *HeroHandler) Update(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req hero.UpdateSettingsRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), userID, req)
	if err != nil {
		response.ErrorResponse(c, hero.GetHTTPStatusCode(err), "HERO_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}
