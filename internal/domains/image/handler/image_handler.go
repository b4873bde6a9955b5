package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"collection-backend/internal/domains/image"
	"collection-backend/internal/shared/response"
)

type ImageHandler struct {
	service image.Service
}

func NewImageHandler(svc image.Service) *ImageHandler {
	return &ImageHandler{service: svc}
}

// ========== POST /v1/images ==========
// Multipart form, field "files" repeated up to 4 times. Returns one
// outcome per file in submission order.
func (h *ImageHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "expected multipart form")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		// Single-file clients use the "file" field.
		files = form.File["file"]
	}

	var uploads []image.Upload
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			response.BadRequest(c, "unreadable file: "+header.Filename)
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, image.MaxFileSize+1))
		f.Close()
		if err != nil {
			response.BadRequest(c, "unreadable file: "+header.Filename)
			return
		}

		uploads = append(uploads, image.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	outcomes, err := h.service.UploadBatch(c.Request.Context(), uploads)
	if err != nil {
		response.ErrorResponse(c, image.GetHTTPStatusCode(err), "IMAGE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": outcomes})
}

// ========== DELETE /v1/images ==========
// Body: {"image_id": "..."}. Not-found assets count as deleted.
func (h *ImageHandler) Delete(c *gin.Context) {
	var req struct {
		ImageID string `json:"image_id"`
	}
	if err := c.BindJSON(&req); err != nil || req.ImageID == "" {
		response.BadRequest(c, "image_id is required")
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ImageID); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": req.ImageID})
}
