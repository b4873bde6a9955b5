package images

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCloudflareStore(serverURL string) *CloudflareStore {
	return &CloudflareStore{
		accountID:   "test-account",
		apiToken:    "test-token",
		accountHash: "test-hash",
		baseURL:     serverURL,
		client:      http.DefaultClient,
	}
}

func TestCloudflareStore_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accounts/test-account/images/v1", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		err := r.ParseMultipartForm(1 << 20)
		require.NoError(t, err)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "vader.jpg", header.Filename)

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"result":  map[string]any{"id": "abc-123"},
		})
	}))
	defer server.Close()

	store := newTestCloudflareStore(server.URL)
	asset, err := store.Upload(context.Background(), "vader.jpg", []byte("jpeg-bytes"), "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "abc-123", asset.ID)
	assert.Equal(t, "https://imagedelivery.net/test-hash/abc-123/public", asset.URL)
}

func TestCloudflareStore_UploadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false,"errors":[{"message":"bad token"}]}`))
	}))
	defer server.Close()

	store := newTestCloudflareStore(server.URL)
	_, err := store.Upload(context.Background(), "vader.jpg", []byte("jpeg-bytes"), "image/jpeg")

	assert.Error(t, err)
}

func TestCloudflareStore_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/accounts/test-account/images/v1/abc-123", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	store := newTestCloudflareStore(server.URL)
	err := store.Delete(context.Background(), "abc-123")

	assert.NoError(t, err)
}

func TestCloudflareStore_DeleteMissingIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	store := newTestCloudflareStore(server.URL)
	err := store.Delete(context.Background(), "gone-already")

	assert.NoError(t, err)
}
