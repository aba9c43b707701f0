package blob

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPUploader(t *testing.T) {
	if _, err := NewHTTPUploader("://bad", "token", discardLogger()); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := NewHTTPUploader("/relative", "token", discardLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewHTTPUploader("https://files.local", "token", discardLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHTTPUploaderStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/files/123_poster.png" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected authorization header %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "png bytes" {
			t.Errorf("unexpected body %q", body)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"url":"https://cdn.local/123_poster.png"}`))
	}))
	defer server.Close()

	uploader, err := NewHTTPUploader(server.URL, "secret", discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	url, err := uploader.Store(context.Background(), "123_poster.png", []byte("png bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://cdn.local/123_poster.png" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestHTTPUploaderStoreFailures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "disk full", http.StatusInsufficientStorage)
		}))
		defer server.Close()

		uploader, err := NewHTTPUploader(server.URL, "secret", discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uploader.Store(context.Background(), "a.png", nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		uploader, err := NewHTTPUploader(server.URL, "secret", discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uploader.Store(context.Background(), "a.png", nil); err == nil {
			t.Fatal("expected decode error")
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		uploader, err := NewHTTPUploader("http://127.0.0.1:1", "secret", discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uploader.Store(context.Background(), "a.png", nil); err == nil {
			t.Fatal("expected connection error")
		}
	})
}

func TestDisabledStore(t *testing.T) {
	if _, err := (Disabled{}).Store(context.Background(), "a.png", nil); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
