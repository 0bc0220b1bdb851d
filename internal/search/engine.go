package search

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine.go -package=mocks github.com/Fid-Wiz/timecapsule/internal/search Engine

import (
	"context"
	"sort"
	"strings"

	"github.com/Fid-Wiz/timecapsule/internal/contextutil"
	"github.com/Fid-Wiz/timecapsule/internal/embedding"
	"github.com/Fid-Wiz/timecapsule/internal/service"
	"github.com/Fid-Wiz/timecapsule/internal/vectorstore"
)

const (
	// CandidateLimit bounds stage 1: how many nearest items are pulled from
	// the vector index across the whole corpus, regardless of corpus size.
	CandidateLimit = 50
	// ResultLimit bounds stage 2: how many items a query can return after
	// exact filtering and reranking.
	ResultLimit = 10
)

// Engine answers semantic queries over the item corpus.
type Engine interface {
	// Search runs the two-stage retrieval for a query.
	Search(ctx context.Context, req Request) (Response, error)
}

// engine implements the Engine interface.
type engine struct {
	embedder   embedding.Embedder
	vectors    vectorstore.VectorStore
	collection string
}

// NewEngine creates a new search engine.
func NewEngine(embedder embedding.Embedder, vectors vectorstore.VectorStore, collection string) Engine {
	return &engine{
		embedder:   embedder,
		vectors:    vectors,
		collection: collection,
	}
}

// candidate is a stage-1 result: an item and its exact cosine distance to the
// query, in the order the index returned it.
type candidate struct {
	id          string
	capsuleID   string
	textContent string
	mediaURL    string
	distance    float64
}

// Search embeds the query, generates a bounded candidate set and applies the
// exact filter and rerank. The embedding step never fails (degraded queries
// search with the zero vector); vector store failures surface to the caller.
func (e *engine) Search(ctx context.Context, req Request) (Response, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.Query) == "" {
		return Response{}, &service.ValidationError{Field: "query", Message: "cannot be empty"}
	}

	queryVector := e.embedder.Embed(ctx, req.Query)
	if embedding.IsZero(queryVector) {
		// Known ranking artifact: a degraded query collides at distance zero
		// with any items whose own embedding degraded.
		logger.DebugContext(ctx, "searching with degraded query embedding", "query_length", len(req.Query))
	}

	candidates, err := e.fetchCandidates(ctx, queryVector)
	if err != nil {
		return Response{}, service.WrapError(err, "candidate generation failed")
	}

	results := filterAndRerank(candidates, req.CapsuleID)

	logger.InfoContext(ctx, "search completed",
		"candidates", len(candidates),
		"results", len(results),
		"scoped", req.CapsuleID != "",
	)

	return Response{Results: results}, nil
}

// fetchCandidates is stage 1: the top CandidateLimit items across the entire
// corpus by ascending cosine distance. The backend computes the distance; the
// similarity score it reports is converted here so lower always means closer.
func (e *engine) fetchCandidates(ctx context.Context, queryVector []float32) ([]candidate, error) {
	hits, err := e.vectors.Search(ctx, e.collection, queryVector, CandidateLimit)
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate, 0, len(hits))
	for _, hit := range hits {
		capsuleID, _ := hit.Meta["capsule_id"].(string)
		textContent, _ := hit.Meta["text_content"].(string)
		mediaURL, _ := hit.Meta["media_url"].(string)

		candidates = append(candidates, candidate{
			id:          hit.PointID,
			capsuleID:   capsuleID,
			textContent: textContent,
			mediaURL:    mediaURL,
			distance:    1 - float64(hit.Score),
		})
	}

	return candidates, nil
}

// filterAndRerank is stage 2: drop candidates outside the capsule scope, then
// re-sort by ascending distance with ties keeping their stage-1 order, and
// truncate to ResultLimit.
func filterAndRerank(candidates []candidate, capsuleID string) []Result {
	filtered := candidates
	if capsuleID != "" {
		filtered = make([]candidate, 0, len(candidates))
		for _, c := range candidates {
			if c.capsuleID == capsuleID {
				filtered = append(filtered, c)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].distance < filtered[j].distance
	})

	if len(filtered) > ResultLimit {
		filtered = filtered[:ResultLimit]
	}

	results := make([]Result, 0, len(filtered))
	for _, c := range filtered {
		results = append(results, Result{
			ID:          c.id,
			CapsuleID:   c.capsuleID,
			TextContent: c.textContent,
			MediaURL:    c.mediaURL,
			Score:       c.distance,
		})
	}
	return results
}
