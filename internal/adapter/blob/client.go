package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// ErrNotConfigured indicates the blob store address or token is unset.
// Uploads are disabled but callers are expected to degrade, not fail.
var ErrNotConfigured = errors.New("blob store not configured")

// Uploader stores raw file bytes externally and returns a retrievable URL.
type Uploader interface {
	Store(ctx context.Context, name string, data []byte) (string, error)
}

// HTTPUploader implements Uploader against an HTTP object store.
type HTTPUploader struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the JSON payload returned by the blob store.
type response struct {
	URL string `json:"url"`
}

// NewHTTPUploader creates an HTTP blob client with default timeout.
func NewHTTPUploader(baseURL, token string, logger *slog.Logger) (*HTTPUploader, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse blob store url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("blob store url must be absolute")
	}
	return &HTTPUploader{
		baseURL: parsed,
		token:   token,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Store uploads bytes under the given name and returns the public URL.
func (u *HTTPUploader) Store(ctx context.Context, name string, data []byte) (string, error) {
	endpoint := *u.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/files/", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint.String(), bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+u.token)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return "", err
		}
		return data.URL, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		u.logger.Error("blob upload failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("blob store error: %s", resp.Status)
	}
}

// Disabled is the Uploader used when no blob store is configured.
type Disabled struct{}

// Store always reports the store as not configured.
func (Disabled) Store(context.Context, string, []byte) (string, error) {
	return "", ErrNotConfigured
}
