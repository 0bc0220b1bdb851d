package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Fid-Wiz/timecapsule/internal/embedding"
	embeddingmocks "github.com/Fid-Wiz/timecapsule/internal/embedding/mocks"
	"github.com/Fid-Wiz/timecapsule/internal/service"
	"github.com/Fid-Wiz/timecapsule/internal/vectorstore"
	vectormocks "github.com/Fid-Wiz/timecapsule/internal/vectorstore/mocks"
)

const testCollection = "items"

func testVector() []float32 {
	vec := make([]float32, embedding.Dim)
	vec[0] = 1
	return vec
}

func hit(id, capsuleID string, score float32) vectorstore.SearchResult {
	return vectorstore.SearchResult{
		PointID: id,
		Score:   score,
		Meta: map[string]any{
			"capsule_id":   capsuleID,
			"text_content": "memory " + id,
		},
	}
}

func TestEngine_Search_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := NewEngine(embeddingmocks.NewMockEmbedder(ctrl), vectormocks.NewMockVectorStore(ctrl), testCollection)

	for _, query := range []string{"", "   ", "\n\t"} {
		_, err := engine.Search(context.Background(), Request{Query: query})
		var vErr *service.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("Search(%q) error = %v, want ValidationError", query, err)
		}
	}
}

func TestEngine_Search_VectorStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := embeddingmocks.NewMockEmbedder(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)

	embedder.EXPECT().Embed(gomock.Any(), "beach").Return(testVector())
	vectors.EXPECT().Search(gomock.Any(), testCollection, gomock.Any(), CandidateLimit).
		Return(nil, errors.New("connection refused"))

	engine := NewEngine(embedder, vectors, testCollection)

	if _, err := engine.Search(context.Background(), Request{Query: "beach"}); err == nil {
		t.Error("Search() error = nil, want error from vector store")
	}
}

func TestEngine_Search_OrderAndDistanceConversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := embeddingmocks.NewMockEmbedder(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)

	embedder.EXPECT().Embed(gomock.Any(), "beach").Return(testVector())
	// Backend returns by similarity; the engine must re-sort by distance.
	vectors.EXPECT().Search(gomock.Any(), testCollection, gomock.Any(), CandidateLimit).
		Return([]vectorstore.SearchResult{
			hit("a", "cap1", 0.9),
			hit("b", "cap1", 0.95),
			hit("c", "cap2", 0.5),
		}, nil)

	engine := NewEngine(embedder, vectors, testCollection)

	resp, err := engine.Search(context.Background(), Request{Query: "beach"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("Search() len = %d, want 3", len(resp.Results))
	}

	// Most similar first: similarity 0.95 is distance 0.05.
	wantOrder := []string{"b", "a", "c"}
	for i, want := range wantOrder {
		if resp.Results[i].ID != want {
			t.Errorf("Results[%d].ID = %q, want %q", i, resp.Results[i].ID, want)
		}
	}

	for i := 1; i < len(resp.Results); i++ {
		if resp.Results[i].Score < resp.Results[i-1].Score {
			t.Errorf("Results not in non-decreasing distance order at %d", i)
		}
	}

	if got, want := resp.Results[0].Score, 1-0.95; got < want-1e-6 || got > want+1e-6 {
		t.Errorf("Results[0].Score = %v, want %v", got, want)
	}
}

func TestEngine_Search_CapsuleScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := embeddingmocks.NewMockEmbedder(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)

	embedder.EXPECT().Embed(gomock.Any(), "beach").Return(testVector())
	vectors.EXPECT().Search(gomock.Any(), testCollection, gomock.Any(), CandidateLimit).
		Return([]vectorstore.SearchResult{
			hit("a", "cap1", 0.9),
			hit("b", "cap2", 0.95),
			hit("c", "cap1", 0.8),
		}, nil)

	engine := NewEngine(embedder, vectors, testCollection)

	resp, err := engine.Search(context.Background(), Request{Query: "beach", CapsuleID: "cap1"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Search() len = %d, want 2", len(resp.Results))
	}
	for _, r := range resp.Results {
		if r.CapsuleID != "cap1" {
			t.Errorf("Result %q has capsule %q, want cap1", r.ID, r.CapsuleID)
		}
	}
}

func TestEngine_Search_TruncatesToResultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := embeddingmocks.NewMockEmbedder(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)

	hits := make([]vectorstore.SearchResult, CandidateLimit)
	for i := range hits {
		hits[i] = hit(fmt.Sprintf("item-%02d", i), "cap1", float32(i)/float32(CandidateLimit))
	}

	embedder.EXPECT().Embed(gomock.Any(), "beach").Return(testVector())
	vectors.EXPECT().Search(gomock.Any(), testCollection, gomock.Any(), CandidateLimit).
		Return(hits, nil)

	engine := NewEngine(embedder, vectors, testCollection)

	resp, err := engine.Search(context.Background(), Request{Query: "beach"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != ResultLimit {
		t.Errorf("Search() len = %d, want %d", len(resp.Results), ResultLimit)
	}
	// Highest similarity was the last hit.
	if resp.Results[0].ID != fmt.Sprintf("item-%02d", CandidateLimit-1) {
		t.Errorf("Results[0].ID = %q", resp.Results[0].ID)
	}
}

func TestEngine_Search_StableTies(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := embeddingmocks.NewMockEmbedder(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)

	// All candidates tie at the same distance; the index order must survive.
	embedder.EXPECT().Embed(gomock.Any(), "beach").Return(testVector())
	vectors.EXPECT().Search(gomock.Any(), testCollection, gomock.Any(), CandidateLimit).
		Return([]vectorstore.SearchResult{
			hit("first", "cap1", 0.5),
			hit("second", "cap1", 0.5),
			hit("third", "cap1", 0.5),
		}, nil)

	engine := NewEngine(embedder, vectors, testCollection)

	resp, err := engine.Search(context.Background(), Request{Query: "beach"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	wantOrder := []string{"first", "second", "third"}
	for i, want := range wantOrder {
		if resp.Results[i].ID != want {
			t.Errorf("Results[%d].ID = %q, want %q", i, resp.Results[i].ID, want)
		}
	}
}

func TestEngine_Search_DegradedQueryStillSearches(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := embeddingmocks.NewMockEmbedder(ctrl)
	vectors := vectormocks.NewMockVectorStore(ctrl)

	embedder.EXPECT().Embed(gomock.Any(), "beach").Return(embedding.ZeroVector())
	vectors.EXPECT().Search(gomock.Any(), testCollection, gomock.Any(), CandidateLimit).
		Return([]vectorstore.SearchResult{hit("a", "cap1", 0.1)}, nil)

	engine := NewEngine(embedder, vectors, testCollection)

	resp, err := engine.Search(context.Background(), Request{Query: "beach"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != 1 {
		t.Errorf("Search() len = %d, want 1", len(resp.Results))
	}
}
