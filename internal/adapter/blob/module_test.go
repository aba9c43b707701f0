package blob

import (
	"io"
	"log/slog"
	"testing"

	"github.com/inkpress/printshop/internal/config"
)

func TestNewUploaderUsesConfig(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	uploader, err := newUploader(uploaderParams{
		Config: &config.Config{BlobStoreAddress: "http://example.com", BlobStoreToken: "secret"},
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := uploader.(*HTTPUploader); !ok {
		t.Fatalf("expected http uploader, got %T", uploader)
	}
}

func TestNewUploaderDisabledWithoutConfig(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	uploader, err := newUploader(uploaderParams{Config: &config.Config{}, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := uploader.(Disabled); !ok {
		t.Fatalf("expected disabled uploader, got %T", uploader)
	}
}
