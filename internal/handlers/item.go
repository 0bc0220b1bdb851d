package handlers

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/Fid-Wiz/timecapsule/internal/contextutil"
	"github.com/Fid-Wiz/timecapsule/internal/ingest"
	"github.com/Fid-Wiz/timecapsule/internal/service"
)

// ItemHandler handles item creation. The same endpoint accepts a structured
// JSON body or a multipart upload; any other encoding is rejected before any
// side effect occurs.
type ItemHandler struct {
	pipeline       *ingest.Pipeline
	maxUploadBytes int64
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(pipeline *ingest.Pipeline, maxUploadBytes int64) *ItemHandler {
	return &ItemHandler{pipeline: pipeline, maxUploadBytes: maxUploadBytes}
}

// CreateItemResponse represents the HTTP response payload for item creation.
//
// swagger:model CreateItemResponse
type CreateItemResponse struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

// ServeHTTP dispatches POST /api/items by request encoding.
//
// swagger:route POST /api/items createItem
//
// # Create an item
//
// Accepts either a structured JSON item (text memory or external media
// reference) or a multipart form with a binary file. The item's embedding is
// computed synchronously before it is persisted, so it is searchable as soon
// as the request returns.
//
// ---
// consumes:
// - application/json
// - multipart/form-data
// produces:
// - application/json
// responses:
//
//	'201':
//	  description: Item created
//	  schema:
//	    "$ref": "#/definitions/CreateItemResponse"
//	'400':
//	  description: Validation error
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'415':
//	  description: Unsupported request encoding
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *ItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		writeJSON(ctx, w, http.StatusUnsupportedMediaType, ErrorResponse{Error: "unsupported content type"})
		return
	}

	switch {
	case mediaType == "application/json":
		h.createStructured(w, r)
	case mediaType == "multipart/form-data":
		h.createUpload(w, r)
	default:
		logger.WarnContext(ctx, "unsupported item encoding", "content_type", mediaType)
		writeJSON(ctx, w, http.StatusUnsupportedMediaType, ErrorResponse{Error: "unsupported content type"})
	}
}

func (h *ItemHandler) createStructured(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in ingest.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(ctx, w, &service.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	item, err := h.pipeline.IngestStructured(ctx, in)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, CreateItemResponse{ID: item.ID})
}

func (h *ItemHandler) createUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(ctx, w, &service.ValidationError{Field: "file", Message: "invalid or oversized multipart body"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(ctx, w, &service.ValidationError{Field: "file", Message: "is required"})
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to read upload"))
		return
	}

	item, err := h.pipeline.IngestUpload(ctx, ingest.Upload{
		CapsuleID: strings.TrimSpace(r.FormValue("capsule_id")),
		FileName:  header.Filename,
		Data:      data,
		Author:    r.FormValue("author"),
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, CreateItemResponse{ID: item.ID, URL: item.MediaURL})
}
