package usecase

import (
	"fmt"
	"regexp"
	"time"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFileName strips characters outside alphanumerics, dot, underscore
// and hyphen from an uploaded filename.
func SanitizeFileName(name string) string {
	return unsafeFileChars.ReplaceAllString(name, "_")
}

// NewOrderNumber derives an order number from the current wall clock.
// Two orders created within the same millisecond would collide; the unique
// index on order_number turns that into a surfaced insert error.
func NewOrderNumber() string {
	return fmt.Sprintf("ORD-%d", time.Now().UnixMilli())
}

// StoredFileName prefixes the sanitized name with a millisecond timestamp
// to avoid collisions in the blob store.
func StoredFileName(name string) string {
	return fmt.Sprintf("%d_%s", time.Now().UnixMilli(), SanitizeFileName(name))
}
