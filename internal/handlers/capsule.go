package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Fid-Wiz/timecapsule/internal/contextutil"
	"github.com/Fid-Wiz/timecapsule/internal/service"
	"github.com/Fid-Wiz/timecapsule/internal/storage"
)

// CapsuleHandler handles capsule creation and reads.
type CapsuleHandler struct {
	capsules storage.CapsuleStore
	items    storage.ItemStore
}

// NewCapsuleHandler creates a new CapsuleHandler.
func NewCapsuleHandler(capsules storage.CapsuleStore, items storage.ItemStore) *CapsuleHandler {
	return &CapsuleHandler{capsules: capsules, items: items}
}

// CreateCapsuleRequest represents the HTTP request payload for capsule creation.
//
// swagger:model CreateCapsuleRequest
type CreateCapsuleRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// UnlockAt is an RFC3339 timestamp; absent or past means the capsule is
	// created already unlocked.
	UnlockAt   string `json:"unlock_at,omitempty"`
	Visibility string `json:"visibility,omitempty"`
}

// CreateCapsuleResponse represents the HTTP response payload for capsule creation.
//
// swagger:model CreateCapsuleResponse
type CreateCapsuleResponse struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

// CapsuleResponse represents a capsule read, including the display-only
// countdown. Gating always follows the persisted state, never the countdown.
type CapsuleResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	Visibility       string `json:"visibility"`
	State            string `json:"state"`
	UnlockAt         string `json:"unlock_at,omitempty"`
	RemainingSeconds *int64 `json:"remaining_seconds,omitempty"`
	CreatedAt        string `json:"created_at"`
}

// Create handles POST /api/capsules.
func (h *CapsuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateCapsuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, &service.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		writeError(ctx, w, &service.ValidationError{Field: "title", Message: "is required"})
		return
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = storage.VisibilityGroup
	}
	switch visibility {
	case storage.VisibilityPrivate, storage.VisibilityGroup, storage.VisibilityPublic:
	default:
		writeError(ctx, w, &service.ValidationError{Field: "visibility", Message: "must be private, group or public"})
		return
	}

	var unlockAt *time.Time
	if req.UnlockAt != "" {
		t, err := time.Parse(time.RFC3339, req.UnlockAt)
		if err != nil {
			writeError(ctx, w, &service.ValidationError{Field: "unlock_at", Message: "must be an RFC3339 timestamp"})
			return
		}
		unlockAt = &t
	}

	capsule := &storage.CapsuleRecord{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Visibility:  visibility,
		UnlockAt:    unlockAt,
	}
	if err := h.capsules.Create(ctx, capsule); err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to create capsule"))
		return
	}

	logger.InfoContext(ctx, "capsule created", "capsule_id", capsule.ID, "state", capsule.State, "visibility", capsule.Visibility)
	writeJSON(ctx, w, http.StatusCreated, CreateCapsuleResponse{ID: capsule.ID, State: capsule.State})
}

// Get handles GET /api/capsules/{id}.
func (h *CapsuleHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	capsule, err := h.capsules.GetByID(ctx, id)
	if err == storage.ErrNotFound {
		writeError(ctx, w, service.WrapError(service.ErrNotFound, "capsule"))
		return
	}
	if err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to load capsule"))
		return
	}

	resp := CapsuleResponse{
		ID:          capsule.ID,
		Title:       capsule.Title,
		Description: capsule.Description,
		Visibility:  capsule.Visibility,
		State:       capsule.State,
		CreatedAt:   capsule.CreatedAt.UTC().Format(time.RFC3339),
	}
	if capsule.UnlockAt != nil {
		resp.UnlockAt = capsule.UnlockAt.UTC().Format(time.RFC3339)
	}
	if capsule.State == storage.StateLocked {
		remaining := int64(storage.TimeRemaining(capsule.UnlockAt, time.Now()).Seconds())
		resp.RemainingSeconds = &remaining
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

// CapsuleItemsResponse represents a page of a capsule's items.
type CapsuleItemsResponse struct {
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Total    int            `json:"total"`
	Items    []ItemResponse `json:"items"`
}

// ItemResponse represents one item in list responses.
type ItemResponse struct {
	ID          string `json:"id"`
	CapsuleID   string `json:"capsule_id"`
	Author      string `json:"author"`
	Kind        string `json:"kind"`
	TextContent string `json:"text_content,omitempty"`
	MediaURL    string `json:"media_url,omitempty"`
	MimeType    string `json:"mime_type,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty"`
	CreatedAt   string `json:"created_at"`
}

func itemResponse(item storage.ItemRecord) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		CapsuleID:   item.CapsuleID,
		Author:      item.Author,
		Kind:        item.Kind,
		TextContent: item.TextContent,
		MediaURL:    item.MediaURL,
		MimeType:    item.MimeType,
		SizeBytes:   item.SizeBytes,
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ListItems handles GET /api/capsules/{id}/items.
func (h *CapsuleHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if _, err := h.capsules.GetByID(ctx, id); err != nil {
		if err == storage.ErrNotFound {
			writeError(ctx, w, service.WrapError(service.ErrNotFound, "capsule"))
			return
		}
		writeError(ctx, w, service.WrapError(err, "failed to load capsule"))
		return
	}

	page, pageSize := pagination(r, 20, 50)
	items, total, err := h.items.ListByCapsule(ctx, id, page, pageSize)
	if err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to list items"))
		return
	}

	resp := CapsuleItemsResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Items:    make([]ItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, itemResponse(item))
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
