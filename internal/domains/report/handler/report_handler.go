package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"collection-backend/internal/collection"
	"collection-backend/internal/config"
	"collection-backend/internal/domains/report"
	"collection-backend/internal/shared/response"
	"collection-backend/internal/shared/utils"
)

type ReportHandler struct {
	store *collection.Store
	cfg   config.CollectionConfig
}

func NewReportHandler(store *collection.Store, cfg config.CollectionConfig) *ReportHandler {
	return &ReportHandler{
		store: store,
		cfg:   cfg,
	}
}

// ========== GET /v1/reports/category-sums ==========
func (h *ReportHandler) CategorySums(c *gin.Context) {
	response.Success(c, http.StatusOK, report.CategorySums(h.store.Snapshot()))
}

// ========== GET /v1/reports/top ==========
// Optional ?limit= overrides the default of 10.
func (h *ReportHandler) TopItems(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	response.Success(c, http.StatusOK, report.TopItems(h.store.Snapshot(), limit))
}

// ========== GET /v1/reports/wishlist ==========
func (h *ReportHandler) Wishlist(c *gin.Context) {
	response.Success(c, http.StatusOK, report.Wishlist(h.store.Snapshot()))
}

// ========== GET /v1/reports/valuation ==========
func (h *ReportHandler) Valuation(c *gin.Context) {
	response.Success(c, http.StatusOK, report.Valuation(h.store.Snapshot()))
}

// ========== GET /v1/reports/valuation/export ==========
// Streams the valuation report as an .xlsx download.
func (h *ReportHandler) ExportValuation(c *gin.Context) {
	data, err := report.ExportValuationXLSX(report.Valuation(h.store.Snapshot()))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	filename := fmt.Sprintf("valuation-report-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ========== GET /v1/reports/categories/:id/rollup ==========
func (h *ReportHandler) CategoryRollup(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	response.Success(c, http.StatusOK, report.CategoryRollup(h.store.Snapshot(), id))
}

// ========== GET /v1/reports/home ==========
func (h *ReportHandler) Home(c *gin.Context) {
	result := report.HomeReport(h.store.Snapshot(), h.cfg.HomeCategoryName, h.cfg.HomeSubcategory)
	response.Success(c, http.StatusOK, result)
}

// ========== GET /v1/reports/stats ==========
func (h *ReportHandler) Stats(c *gin.Context) {
	response.Success(c, http.StatusOK, report.CollectionStats(h.store.Snapshot()))
}
