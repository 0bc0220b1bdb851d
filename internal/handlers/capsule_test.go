package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/Fid-Wiz/timecapsule/internal/service"
	"github.com/Fid-Wiz/timecapsule/internal/storage"
	storagemocks "github.com/Fid-Wiz/timecapsule/internal/storage/mocks"
)

// newCapsuleRouter mounts the handler the way the real router does, so URL
// parameters resolve in tests.
func newCapsuleRouter(h *CapsuleHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/capsules", h.Create)
	r.Get("/api/capsules/{id}", h.Get)
	r.Get("/api/capsules/{id}/items", h.ListItems)
	return r
}

func TestCapsuleHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(capsules *storagemocks.MockCapsuleStore)
		wantStatus int
		wantState  string
	}{
		{
			name: "future unlock creates locked capsule",
			body: `{"title":"Graduation","unlock_at":"2030-01-01T00:00:00Z"}`,
			setup: func(capsules *storagemocks.MockCapsuleStore) {
				capsules.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *storage.CapsuleRecord) error {
						c.ID = "cap1"
						c.State = storage.StateLocked
						return nil
					})
			},
			wantStatus: http.StatusCreated,
			wantState:  storage.StateLocked,
		},
		{
			name: "no unlock time creates unlocked capsule",
			body: `{"title":"Scrapbook"}`,
			setup: func(capsules *storagemocks.MockCapsuleStore) {
				capsules.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *storage.CapsuleRecord) error {
						c.ID = "cap2"
						c.State = storage.StateUnlocked
						return nil
					})
			},
			wantStatus: http.StatusCreated,
			wantState:  storage.StateUnlocked,
		},
		{
			name:       "missing title",
			body:       `{"unlock_at":"2030-01-01T00:00:00Z"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid visibility",
			body:       `{"title":"x","visibility":"friends"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed unlock time",
			body:       `{"title":"x","unlock_at":"tomorrow"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid JSON",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			capsules := storagemocks.NewMockCapsuleStore(ctrl)
			items := storagemocks.NewMockItemStore(ctrl)
			if tt.setup != nil {
				tt.setup(capsules)
			}

			router := newCapsuleRouter(NewCapsuleHandler(capsules, items))
			req := httptest.NewRequest(http.MethodPost, "/api/capsules", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus == http.StatusCreated {
				var resp CreateCapsuleResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.ID == "" {
					t.Error("response missing id")
				}
				if resp.State != tt.wantState {
					t.Errorf("state = %q, want %q", resp.State, tt.wantState)
				}
			}
		})
	}
}

func TestCapsuleHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	capsules := storagemocks.NewMockCapsuleStore(ctrl)
	items := storagemocks.NewMockItemStore(ctrl)

	unlockAt := time.Now().UTC().Add(time.Hour)
	capsules.EXPECT().GetByID(gomock.Any(), "cap1").Return(&storage.CapsuleRecord{
		ID:         "cap1",
		Title:      "Graduation",
		Visibility: storage.VisibilityGroup,
		State:      storage.StateLocked,
		UnlockAt:   &unlockAt,
		CreatedAt:  time.Now().UTC(),
	}, nil)

	router := newCapsuleRouter(NewCapsuleHandler(capsules, items))
	req := httptest.NewRequest(http.MethodGet, "/api/capsules/cap1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp CapsuleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.State != storage.StateLocked {
		t.Errorf("state = %q, want locked", resp.State)
	}
	if resp.RemainingSeconds == nil {
		t.Fatal("locked capsule response missing remaining_seconds")
	}
	if *resp.RemainingSeconds <= 0 || *resp.RemainingSeconds > 3600 {
		t.Errorf("remaining_seconds = %d, want within the hour", *resp.RemainingSeconds)
	}
}

func TestCapsuleHandler_Get_UnlockedOmitsCountdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	capsules := storagemocks.NewMockCapsuleStore(ctrl)
	items := storagemocks.NewMockItemStore(ctrl)

	capsules.EXPECT().GetByID(gomock.Any(), "cap1").Return(&storage.CapsuleRecord{
		ID:         "cap1",
		Title:      "Scrapbook",
		Visibility: storage.VisibilityGroup,
		State:      storage.StateUnlocked,
		CreatedAt:  time.Now().UTC(),
	}, nil)

	router := newCapsuleRouter(NewCapsuleHandler(capsules, items))
	req := httptest.NewRequest(http.MethodGet, "/api/capsules/cap1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp CapsuleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RemainingSeconds != nil {
		t.Errorf("remaining_seconds = %d, want omitted for unlocked capsule", *resp.RemainingSeconds)
	}
}

func TestCapsuleHandler_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	capsules := storagemocks.NewMockCapsuleStore(ctrl)
	items := storagemocks.NewMockItemStore(ctrl)

	capsules.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	router := newCapsuleRouter(NewCapsuleHandler(capsules, items))
	req := httptest.NewRequest(http.MethodGet, "/api/capsules/ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCapsuleHandler_ListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	capsules := storagemocks.NewMockCapsuleStore(ctrl)
	items := storagemocks.NewMockItemStore(ctrl)

	capsules.EXPECT().GetByID(gomock.Any(), "cap1").Return(&storage.CapsuleRecord{ID: "cap1"}, nil)
	items.EXPECT().ListByCapsule(gomock.Any(), "cap1", 1, 20).Return([]storage.ItemRecord{
		{ID: "i1", CapsuleID: "cap1", Kind: storage.KindText, TextContent: "memory", CreatedAt: time.Now()},
	}, 1, nil)

	router := newCapsuleRouter(NewCapsuleHandler(capsules, items))
	req := httptest.NewRequest(http.MethodGet, "/api/capsules/cap1/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp CapsuleItemsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Errorf("total = %d len = %d, want 1 and 1", resp.Total, len(resp.Items))
	}
	if resp.Items[0].ID != "i1" {
		t.Errorf("item id = %q, want i1", resp.Items[0].ID)
	}
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: &service.ValidationError{Field: "x", Message: "bad"}, wantStatus: http.StatusBadRequest},
		{name: "not found", err: service.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "unauthorized", err: service.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "not configured", err: service.WrapError(service.ErrNotConfigured, "object storage"), wantStatus: http.StatusServiceUnavailable},
		{name: "internal", err: service.WrapError(http.ErrBodyNotAllowed, "boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(httptest.NewRequest(http.MethodGet, "/", nil).Context(), rec, tt.err)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
