// Package image mediates between multipart uploads and the CDN. A
// batch of files produces one independent outcome per file; deletion
// treats already-gone assets as success.
package image

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"collection-backend/internal/infrastructure/images"
	"collection-backend/pkg/logger"
)

const (
	// MaxBatchSize matches the per-item gallery limit.
	MaxBatchSize = 4

	// MaxFileSize caps a single upload at 10 MB.
	MaxFileSize = 10 << 20
)

var (
	ErrEmptyBatch    = errors.New("no files in upload batch")
	ErrBatchTooLarge = errors.New("upload batch exceeds 4 files")
	ErrFileTooLarge  = errors.New("file exceeds 10MB limit")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrEmptyBatch), errors.Is(err, ErrBatchTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Upload is one file handed to UploadBatch.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Outcome is the per-file result. Exactly one of URL/AssetID or Error
// is populated.
type Outcome struct {
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
	AssetID  string `json:"asset_id,omitempty"`
	Error    string `json:"error,omitempty"`
}

type Service interface {
	// UploadBatch uploads up to MaxBatchSize files in parallel. A
	// failed file never aborts its siblings; callers inspect each
	// outcome.
	UploadBatch(ctx context.Context, uploads []Upload) ([]Outcome, error)

	// Delete removes one CDN asset. Not-found counts as success.
	Delete(ctx context.Context, assetID string) error
}

type imageService struct {
	store images.Store
}

func NewImageService(store images.Store) Service {
	return &imageService{store: store}
}

func (s *imageService) UploadBatch(ctx context.Context, uploads []Upload) ([]Outcome, error) {
	if len(uploads) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(uploads) > MaxBatchSize {
		return nil, ErrBatchTooLarge
	}

	outcomes := make([]Outcome, len(uploads))

	var wg sync.WaitGroup
	for idx := range uploads {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			outcomes[idx] = s.uploadOne(ctx, uploads[idx])
		}(idx)
	}
	wg.Wait()

	return outcomes, nil
}

func (s *imageService) uploadOne(ctx context.Context, upload Upload) Outcome {
	outcome := Outcome{Filename: upload.Filename}

	if len(upload.Data) > MaxFileSize {
		outcome.Error = ErrFileTooLarge.Error()
		return outcome
	}

	data, contentType, err := images.Process(upload.Data, upload.ContentType)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}

	asset, err := s.store.Upload(ctx, upload.Filename, data, contentType)
	if err != nil {
		logger.Error("Image upload failed", err)
		outcome.Error = err.Error()
		return outcome
	}

	outcome.URL = asset.URL
	outcome.AssetID = asset.ID
	return outcome
}

func (s *imageService) Delete(ctx context.Context, assetID string) error {
	if err := s.store.Delete(ctx, assetID); err != nil {
		logger.Error("Image delete failed", err)
		return err
	}
	return nil
}
