package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/Fid-Wiz/timecapsule/internal/storage"
	storagemocks "github.com/Fid-Wiz/timecapsule/internal/storage/mocks"
)

func newInviteRouter(h *InviteHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/capsules/{id}/invites", h.Create)
	r.Get("/api/capsules/{id}/invites", h.List)
	return r
}

func TestInviteHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	capsules := storagemocks.NewMockCapsuleStore(ctrl)
	invites := storagemocks.NewMockInviteStore(ctrl)

	capsules.EXPECT().GetByID(gomock.Any(), "cap1").Return(&storage.CapsuleRecord{ID: "cap1"}, nil)
	invites.EXPECT().CreateBatch(gomock.Any(), "cap1", []storage.Invitee{
		{Email: "ana@example.com"},
		{Username: "ben"},
	}).Return(2, nil)

	router := newInviteRouter(NewInviteHandler(capsules, invites))
	body := `{"invitees":[{"email":"ana@example.com"},{"username":"ben"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/capsules/cap1/invites", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var resp CreateInvitesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Created != 2 {
		t.Errorf("created = %d, want 2", resp.Created)
	}
}

func TestInviteHandler_Create_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	capsules := storagemocks.NewMockCapsuleStore(ctrl)
	invites := storagemocks.NewMockInviteStore(ctrl)

	router := newInviteRouter(NewInviteHandler(capsules, invites))
	req := httptest.NewRequest(http.MethodPost, "/api/capsules/cap1/invites", strings.NewReader(`{"invitees":[]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestInviteHandler_Create_CapsuleNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	capsules := storagemocks.NewMockCapsuleStore(ctrl)
	invites := storagemocks.NewMockInviteStore(ctrl)

	capsules.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	router := newInviteRouter(NewInviteHandler(capsules, invites))
	body := `{"invitees":[{"email":"ana@example.com"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/capsules/ghost/invites", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestInviteHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	capsules := storagemocks.NewMockCapsuleStore(ctrl)
	invites := storagemocks.NewMockInviteStore(ctrl)

	capsules.EXPECT().GetByID(gomock.Any(), "cap1").Return(&storage.CapsuleRecord{ID: "cap1"}, nil)
	invites.EXPECT().ListByCapsule(gomock.Any(), "cap1").Return([]storage.InviteRecord{
		{ID: 2, CapsuleID: "cap1", InviteeUsername: "ben", Status: "pending", CreatedAt: time.Now()},
		{ID: 1, CapsuleID: "cap1", InviteeEmail: "ana@example.com", Status: "pending", CreatedAt: time.Now()},
	}, nil)

	router := newInviteRouter(NewInviteHandler(capsules, invites))
	req := httptest.NewRequest(http.MethodGet, "/api/capsules/cap1/invites", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp InviteListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Invites) != 2 {
		t.Fatalf("invites len = %d, want 2", len(resp.Invites))
	}
	if resp.Invites[0].Username != "ben" || resp.Invites[1].Email != "ana@example.com" {
		t.Errorf("invites = %+v", resp.Invites)
	}
}
