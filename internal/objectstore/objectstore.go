package objectstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_store.go -package=mocks github.com/Fid-Wiz/timecapsule/internal/objectstore Store

import (
	"context"
	"io"
)

// Store persists binary payloads and returns a URL to retrieve them. The
// ingestion pipeline keeps only the URL, mime type and size; the bytes
// themselves never touch the metadata store.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}
