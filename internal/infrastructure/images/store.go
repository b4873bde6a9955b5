package images

import (
	"context"
	"fmt"

	"collection-backend/internal/config"
)

// Asset is the result of uploading an image: the public delivery URL and
// the opaque id used to address the asset for deletion later.
type Asset struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

// Store abstracts the image CDN. Delete must treat "already gone" as
// success so record cleanup is never blocked by a missing asset.
type Store interface {
	Upload(ctx context.Context, filename string, data []byte, contentType string) (*Asset, error)
	Delete(ctx context.Context, assetID string) error
}

// NewStore builds the configured backend.
func NewStore(cfg config.ImagesConfig) (Store, error) {
	switch cfg.Provider {
	case "cloudflare":
		return NewCloudflareStore(cfg), nil
	case "minio":
		return NewMinIOStore(cfg)
	default:
		return nil, fmt.Errorf("unknown images provider %q", cfg.Provider)
	}
}
