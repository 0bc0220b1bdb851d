package ingest

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/Fid-Wiz/timecapsule/internal/contextutil"
	"github.com/Fid-Wiz/timecapsule/internal/embedding"
	"github.com/Fid-Wiz/timecapsule/internal/objectstore"
	"github.com/Fid-Wiz/timecapsule/internal/service"
	"github.com/Fid-Wiz/timecapsule/internal/storage"
	"github.com/Fid-Wiz/timecapsule/internal/vectorstore"
)

// Pipeline orchestrates item ingestion: validate, store binaries, embed and
// persist. The embedding is computed synchronously before anything is
// persisted, so an item is searchable the instant ingestion returns.
type Pipeline struct {
	capsules   storage.CapsuleStore
	items      storage.ItemStore
	embedder   embedding.Embedder
	vectors    vectorstore.VectorStore
	objects    objectstore.Store // nil when object storage is not configured
	collection string
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	capsules storage.CapsuleStore,
	items storage.ItemStore,
	embedder embedding.Embedder,
	vectors vectorstore.VectorStore,
	objects objectstore.Store,
	collection string,
) *Pipeline {
	return &Pipeline{
		capsules:   capsules,
		items:      items,
		embedder:   embedder,
		vectors:    vectors,
		objects:    objects,
		collection: collection,
	}
}

// Input is a structured item: a text memory or a reference to external media.
// The kind determines which fields may be set; invalid combinations are
// rejected before any side effect.
type Input struct {
	CapsuleID   string `json:"capsule_id"`
	Kind        string `json:"kind,omitempty"`
	TextContent string `json:"text_content,omitempty"`
	MediaURL    string `json:"media_url,omitempty"`
	Author      string `json:"author,omitempty"`
}

func (in *Input) validate() error {
	if strings.TrimSpace(in.CapsuleID) == "" {
		return &service.ValidationError{Field: "capsule_id", Message: "is required"}
	}
	if in.Kind == "" {
		in.Kind = storage.KindText
	}
	switch in.Kind {
	case storage.KindText:
		if in.MediaURL != "" {
			return &service.ValidationError{Field: "media_url", Message: "not allowed for text items"}
		}
	case storage.KindImage, storage.KindAudio:
		if in.MediaURL == "" {
			return &service.ValidationError{Field: "media_url", Message: "is required for media items"}
		}
		if in.TextContent != "" {
			return &service.ValidationError{Field: "text_content", Message: "not allowed for media items"}
		}
	default:
		return &service.ValidationError{Field: "kind", Message: "must be text, image or audio"}
	}
	return nil
}

// Upload is a binary item attached to a capsule.
type Upload struct {
	CapsuleID string
	FileName  string
	Data      []byte
	Author    string
}

// IngestStructured ingests a structured item.
func (p *Pipeline) IngestStructured(ctx context.Context, in Input) (*storage.ItemRecord, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := p.checkCapsule(ctx, in.CapsuleID); err != nil {
		return nil, err
	}

	record := &storage.ItemRecord{
		ID:          uuid.New().String(),
		CapsuleID:   in.CapsuleID,
		Author:      in.Author,
		Kind:        in.Kind,
		TextContent: in.TextContent,
		MediaURL:    in.MediaURL,
	}

	embedText := embedding.TextForItem(in.TextContent, in.MediaURL, "")
	return record, p.persist(ctx, record, embedText)
}

// IngestUpload stores an uploaded binary in the object store, derives the
// item kind from the sniffed mime type and ingests the resulting media item.
func (p *Pipeline) IngestUpload(ctx context.Context, up Upload) (*storage.ItemRecord, error) {
	if strings.TrimSpace(up.CapsuleID) == "" {
		return nil, &service.ValidationError{Field: "capsule_id", Message: "is required"}
	}
	if len(up.Data) == 0 {
		return nil, &service.ValidationError{Field: "file", Message: "is required"}
	}
	if err := p.checkCapsule(ctx, up.CapsuleID); err != nil {
		return nil, err
	}
	if p.objects == nil {
		return nil, service.WrapError(service.ErrNotConfigured, "object storage")
	}

	mime := mimetype.Detect(up.Data).String()
	kind := storage.KindImage
	if strings.HasPrefix(mime, "audio") {
		kind = storage.KindAudio
	}

	id := uuid.New().String()
	key := objectKey(id, up.FileName)
	url, err := p.objects.Put(ctx, key, bytes.NewReader(up.Data), int64(len(up.Data)), mime)
	if err != nil {
		return nil, service.WrapError(err, "failed to store upload")
	}

	record := &storage.ItemRecord{
		ID:        id,
		CapsuleID: up.CapsuleID,
		Author:    up.Author,
		Kind:      kind,
		MediaURL:  url,
		MimeType:  mime,
		SizeBytes: int64(len(up.Data)),
	}

	embedText := embedding.TextForItem("", url, up.FileName)
	return record, p.persist(ctx, record, embedText)
}

// checkCapsule validates that the owning capsule exists.
func (p *Pipeline) checkCapsule(ctx context.Context, capsuleID string) error {
	_, err := p.capsules.GetByID(ctx, capsuleID)
	if err == storage.ErrNotFound {
		return service.WrapError(service.ErrNotFound, "capsule")
	}
	if err != nil {
		return service.WrapError(err, "failed to look up capsule")
	}
	return nil
}

// persist writes the item row and its vector point. The embedding never
// fails (a degraded provider yields the zero vector); a storage or vector
// store failure surfaces to the caller, and a failed vector write removes the
// row again so search and metadata never disagree.
func (p *Pipeline) persist(ctx context.Context, record *storage.ItemRecord, embedText string) error {
	logger := contextutil.LoggerFromContext(ctx)

	vec := p.embedder.Embed(ctx, embedText)

	if err := p.items.Insert(ctx, record); err != nil {
		return service.WrapError(err, "failed to persist item")
	}

	point := vectorstore.Point{
		ID:  record.ID,
		Vec: vec,
		Meta: map[string]any{
			"capsule_id":   record.CapsuleID,
			"kind":         record.Kind,
			"text_content": record.TextContent,
			"media_url":    record.MediaURL,
		},
	}
	if err := p.vectors.Upsert(ctx, p.collection, []vectorstore.Point{point}); err != nil {
		// Roll the row back so the item does not exist half-ingested.
		if delErr := p.items.Delete(ctx, record.ID); delErr != nil {
			logger.ErrorContext(ctx, "failed to roll back item after vector write failure",
				"item_id", record.ID, "error", delErr)
		}
		return service.WrapError(err, "failed to index item")
	}

	logger.InfoContext(ctx, "item ingested",
		"item_id", record.ID,
		"capsule_id", record.CapsuleID,
		"kind", record.Kind,
		"degraded_embedding", embedding.IsZero(vec),
	)
	return nil
}

// objectKey builds a collision-free object store key, keeping the original
// extension so stored media stays recognizable.
func objectKey(id, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("items/%s%s", id, ext)
}
