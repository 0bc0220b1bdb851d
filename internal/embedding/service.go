package embedding

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_embedder.go -package=mocks github.com/Fid-Wiz/timecapsule/internal/embedding Embedder

import (
	"context"
	"log/slog"

	"github.com/Fid-Wiz/timecapsule/internal/contextutil"
)

// Embedder turns text into a Dim-length vector. Embed is total: it never
// fails, it degrades. Ingestion and search depend on that.
type Embedder interface {
	Embed(ctx context.Context, text string) []float32
}

// Service wraps the provider client behind the total Embed contract: any
// provider failure (missing configuration, network error, malformed or
// wrong-length response) yields the all-zero vector instead of an error.
// It implements the Embedder interface.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService creates a new embedding service. A nil client means the provider
// is not configured; every call then returns the degraded zero vector.
func NewService(client *Client) *Service {
	return &Service{
		client: client,
		logger: slog.Default(),
	}
}

// Embed returns the embedding for the given text, or the zero vector when the
// provider is unavailable or misbehaves. It never returns an error.
func (s *Service) Embed(ctx context.Context, text string) []float32 {
	logger := contextutil.LoggerFromContext(ctx)

	if s.client == nil {
		logger.WarnContext(ctx, "embedding provider not configured, using zero vector")
		return ZeroVector()
	}

	vec, err := s.client.EmbedText(ctx, text)
	if err != nil {
		logger.WarnContext(ctx, "embedding degraded to zero vector", "error", err, "text_length", len(text))
		return ZeroVector()
	}

	return vec
}

// ZeroVector returns the degraded all-zero embedding of length Dim.
func ZeroVector() []float32 {
	return make([]float32, Dim)
}

// IsZero reports whether a vector is the degraded all-zero embedding.
func IsZero(vec []float32) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}
