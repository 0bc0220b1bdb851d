package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Fid-Wiz/timecapsule/internal/service"
	"github.com/Fid-Wiz/timecapsule/internal/storage"
)

// EngagementHandler handles like and comment operations on items.
type EngagementHandler struct {
	items      storage.ItemStore
	engagement storage.EngagementStore
}

// NewEngagementHandler creates a new EngagementHandler.
func NewEngagementHandler(items storage.ItemStore, engagement storage.EngagementStore) *EngagementHandler {
	return &EngagementHandler{items: items, engagement: engagement}
}

// LikeRequest identifies who is liking an item.
type LikeRequest struct {
	UserHandle string `json:"user_handle"`
}

// LikeResponse reports the like count after the operation.
type LikeResponse struct {
	Likes int `json:"likes"`
}

// Like handles POST /api/items/{id}/likes.
func (h *EngagementHandler) Like(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "id")

	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, &service.ValidationError{Field: "body", Message: "invalid JSON body"})
		return
	}
	handle := strings.TrimSpace(req.UserHandle)
	if handle == "" {
		writeError(ctx, w, &service.ValidationError{Field: "user_handle", Message: "user_handle is required"})
		return
	}

	if err := h.checkItem(ctx, itemID, w); err != nil {
		return
	}

	count, err := h.engagement.Like(ctx, itemID, handle)
	if err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to like item"))
		return
	}
	writeJSON(ctx, w, http.StatusOK, LikeResponse{Likes: count})
}

// Unlike handles DELETE /api/items/{id}/likes.
func (h *EngagementHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "id")

	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, &service.ValidationError{Field: "body", Message: "invalid JSON body"})
		return
	}
	handle := strings.TrimSpace(req.UserHandle)
	if handle == "" {
		writeError(ctx, w, &service.ValidationError{Field: "user_handle", Message: "user_handle is required"})
		return
	}

	if err := h.checkItem(ctx, itemID, w); err != nil {
		return
	}

	count, err := h.engagement.Unlike(ctx, itemID, handle)
	if err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to unlike item"))
		return
	}
	writeJSON(ctx, w, http.StatusOK, LikeResponse{Likes: count})
}

// CommentRequest carries a new comment.
type CommentRequest struct {
	UserHandle string `json:"user_handle"`
	Text       string `json:"text"`
}

// CommentResponse is the API representation of a comment.
type CommentResponse struct {
	ID         int64  `json:"id"`
	UserHandle string `json:"user_handle"`
	Text       string `json:"text"`
	CreatedAt  string `json:"created_at"`
}

// CommentListResponse is a page of comments for an item.
type CommentListResponse struct {
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Total    int               `json:"total"`
	Comments []CommentResponse `json:"comments"`
}

// AddComment handles POST /api/items/{id}/comments.
func (h *EngagementHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "id")

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, &service.ValidationError{Field: "body", Message: "invalid JSON body"})
		return
	}
	handle := strings.TrimSpace(req.UserHandle)
	text := strings.TrimSpace(req.Text)
	if handle == "" {
		writeError(ctx, w, &service.ValidationError{Field: "user_handle", Message: "user_handle is required"})
		return
	}
	if text == "" {
		writeError(ctx, w, &service.ValidationError{Field: "text", Message: "text is required"})
		return
	}

	if err := h.checkItem(ctx, itemID, w); err != nil {
		return
	}

	if err := h.engagement.AddComment(ctx, itemID, handle, text); err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to add comment"))
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ListComments handles GET /api/items/{id}/comments.
func (h *EngagementHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	itemID := chi.URLParam(r, "id")

	if err := h.checkItem(ctx, itemID, w); err != nil {
		return
	}

	page, pageSize := pagination(r, 20, 100)
	comments, total, err := h.engagement.ListComments(ctx, itemID, page, pageSize)
	if err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to list comments"))
		return
	}

	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentResponse{
			ID:         c.ID,
			UserHandle: c.UserHandle,
			Text:       c.Text,
			CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(ctx, w, http.StatusOK, CommentListResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Comments: out,
	})
}

func (h *EngagementHandler) checkItem(ctx context.Context, itemID string, w http.ResponseWriter) error {
	if _, err := h.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(ctx, w, service.ErrNotFound)
			return err
		}
		writeError(ctx, w, service.WrapError(err, "failed to load item"))
		return err
	}
	return nil
}
