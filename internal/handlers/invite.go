package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Fid-Wiz/timecapsule/internal/service"
	"github.com/Fid-Wiz/timecapsule/internal/storage"
)

// InviteHandler handles capsule invitation operations.
type InviteHandler struct {
	capsules storage.CapsuleStore
	invites  storage.InviteStore
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(capsules storage.CapsuleStore, invites storage.InviteStore) *InviteHandler {
	return &InviteHandler{capsules: capsules, invites: invites}
}

// InviteeRequest identifies a person to invite.
type InviteeRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// CreateInvitesRequest is a batch of invitees for one capsule.
type CreateInvitesRequest struct {
	Invitees []InviteeRequest `json:"invitees"`
}

// CreateInvitesResponse reports how many invites were recorded.
type CreateInvitesResponse struct {
	Created int `json:"created"`
}

// Create handles POST /api/capsules/{id}/invites.
func (h *InviteHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	capsuleID := chi.URLParam(r, "id")

	var req CreateInvitesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, &service.ValidationError{Field: "body", Message: "invalid JSON body"})
		return
	}
	if len(req.Invitees) == 0 {
		writeError(ctx, w, &service.ValidationError{Field: "invitees", Message: "at least one invitee is required"})
		return
	}

	if err := h.checkCapsule(ctx, capsuleID, w); err != nil {
		return
	}

	invitees := make([]storage.Invitee, 0, len(req.Invitees))
	for _, inv := range req.Invitees {
		invitees = append(invitees, storage.Invitee{Email: inv.Email, Username: inv.Username})
	}

	created, err := h.invites.CreateBatch(ctx, capsuleID, invitees)
	if err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to create invites"))
		return
	}
	writeJSON(ctx, w, http.StatusCreated, CreateInvitesResponse{Created: created})
}

// InviteResponse is the API representation of an invite.
type InviteResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// InviteListResponse lists the invites for a capsule.
type InviteListResponse struct {
	Invites []InviteResponse `json:"invites"`
}

// List handles GET /api/capsules/{id}/invites.
func (h *InviteHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	capsuleID := chi.URLParam(r, "id")

	if err := h.checkCapsule(ctx, capsuleID, w); err != nil {
		return
	}

	invites, err := h.invites.ListByCapsule(ctx, capsuleID)
	if err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to list invites"))
		return
	}

	out := make([]InviteResponse, 0, len(invites))
	for _, inv := range invites {
		out = append(out, InviteResponse{
			ID:        inv.ID,
			Email:     inv.InviteeEmail,
			Username:  inv.InviteeUsername,
			Status:    inv.Status,
			CreatedAt: inv.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(ctx, w, http.StatusOK, InviteListResponse{Invites: out})
}

func (h *InviteHandler) checkCapsule(ctx context.Context, capsuleID string, w http.ResponseWriter) error {
	if _, err := h.capsules.GetByID(ctx, capsuleID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(ctx, w, service.ErrNotFound)
			return err
		}
		writeError(ctx, w, service.WrapError(err, "failed to load capsule"))
		return err
	}
	return nil
}
