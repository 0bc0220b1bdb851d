package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks github.com/Fid-Wiz/timecapsule/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a search result from vector search. Score is the
// backend's cosine similarity (higher is closer); the search engine converts
// it to a distance at its boundary.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations. Search is
// deliberately unfiltered: scope filtering happens in-process on the bounded
// candidate set, so the index never needs to be scope-aware.
type VectorStore interface {
	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search returns the top-k points by cosine similarity to the query.
	Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error)

	// Delete removes points by their IDs.
	Delete(ctx context.Context, collection string, ids []string) error

	// CollectionExists reports whether a collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)

	// EnsureCollection ensures a collection exists with the given vector size.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error
}
