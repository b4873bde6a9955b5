package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collection-backend/internal/domains/user"
	"collection-backend/internal/shared/response"
	"collection-backend/internal/shared/utils"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// ========== POST /v1/auth/register ==========
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ========== POST /v1/auth/login ==========
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== POST /v1/auth/refresh ==========
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== GET /v1/auth/me ==========
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	resp, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "AUTH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}
