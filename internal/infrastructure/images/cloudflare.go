package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"collection-backend/internal/config"
)

// CloudflareStore uploads to and deletes from Cloudflare Images. The API
// token and account hash stay server-side; clients only ever see the
// imagedelivery.net URL and the asset id.
type CloudflareStore struct {
	accountID   string
	apiToken    string
	accountHash string
	baseURL     string
	client      *http.Client
}

func NewCloudflareStore(cfg config.ImagesConfig) *CloudflareStore {
	return &CloudflareStore{
		accountID:   cfg.CloudflareAccountID,
		apiToken:    cfg.CloudflareAPIToken,
		accountHash: cfg.CloudflareAccountHash,
		baseURL:     "https://api.cloudflare.com/client/v4",
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

type cloudflareResult struct {
	Success bool `json:"success"`
	Result  struct {
		ID string `json:"id"`
	} `json:"result"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (s *CloudflareStore) Upload(ctx context.Context, filename string, data []byte, contentType string) (*Asset, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	url := fmt.Sprintf("%s/accounts/%s/images/v1", s.baseURL, s.accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload to cloudflare: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("cloudflare upload failed: %d - %s", resp.StatusCode, msg)
	}

	var result cloudflareResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode cloudflare response: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("cloudflare rejected upload")
	}

	return &Asset{
		URL: fmt.Sprintf("https://imagedelivery.net/%s/%s/public", s.accountHash, result.Result.ID),
		ID:  result.Result.ID,
	}, nil
}

// Delete removes an asset. A 404 means the image is already gone and is
// treated as success.
func (s *CloudflareStore) Delete(ctx context.Context, assetID string) error {
	url := fmt.Sprintf("%s/accounts/%s/images/v1/%s", s.baseURL, s.accountID, assetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete from cloudflare: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("cloudflare delete failed: %d - %s", resp.StatusCode, msg)
	}

	var result cloudflareResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode cloudflare response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("cloudflare rejected delete")
	}

	return nil
}
