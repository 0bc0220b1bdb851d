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

func newEngagementRouter(h *EngagementHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/items/{id}/likes", h.Like)
	r.Delete("/api/items/{id}/likes", h.Unlike)
	r.Post("/api/items/{id}/comments", h.AddComment)
	r.Get("/api/items/{id}/comments", h.ListComments)
	return r
}

func TestEngagementHandler_Like(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := storagemocks.NewMockItemStore(ctrl)
	engagement := storagemocks.NewMockEngagementStore(ctrl)

	items.EXPECT().GetByID(gomock.Any(), "i1").Return(&storage.ItemRecord{ID: "i1"}, nil)
	engagement.EXPECT().Like(gomock.Any(), "i1", "ana").Return(3, nil)

	router := newEngagementRouter(NewEngagementHandler(items, engagement))
	req := httptest.NewRequest(http.MethodPost, "/api/items/i1/likes", strings.NewReader(`{"user_handle":"ana"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp LikeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Likes != 3 {
		t.Errorf("likes = %d, want 3", resp.Likes)
	}
}

func TestEngagementHandler_Like_MissingHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := storagemocks.NewMockItemStore(ctrl)
	engagement := storagemocks.NewMockEngagementStore(ctrl)

	router := newEngagementRouter(NewEngagementHandler(items, engagement))
	req := httptest.NewRequest(http.MethodPost, "/api/items/i1/likes", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEngagementHandler_Like_ItemNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := storagemocks.NewMockItemStore(ctrl)
	engagement := storagemocks.NewMockEngagementStore(ctrl)

	items.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	router := newEngagementRouter(NewEngagementHandler(items, engagement))
	req := httptest.NewRequest(http.MethodPost, "/api/items/ghost/likes", strings.NewReader(`{"user_handle":"ana"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestEngagementHandler_Unlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := storagemocks.NewMockItemStore(ctrl)
	engagement := storagemocks.NewMockEngagementStore(ctrl)

	items.EXPECT().GetByID(gomock.Any(), "i1").Return(&storage.ItemRecord{ID: "i1"}, nil)
	engagement.EXPECT().Unlike(gomock.Any(), "i1", "ana").Return(2, nil)

	router := newEngagementRouter(NewEngagementHandler(items, engagement))
	req := httptest.NewRequest(http.MethodDelete, "/api/items/i1/likes", strings.NewReader(`{"user_handle":"ana"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp LikeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Likes != 2 {
		t.Errorf("likes = %d, want 2", resp.Likes)
	}
}

func TestEngagementHandler_AddComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := storagemocks.NewMockItemStore(ctrl)
	engagement := storagemocks.NewMockEngagementStore(ctrl)

	items.EXPECT().GetByID(gomock.Any(), "i1").Return(&storage.ItemRecord{ID: "i1"}, nil)
	engagement.EXPECT().AddComment(gomock.Any(), "i1", "ana", "lovely").Return(nil)

	router := newEngagementRouter(NewEngagementHandler(items, engagement))
	req := httptest.NewRequest(http.MethodPost, "/api/items/i1/comments",
		strings.NewReader(`{"user_handle":"ana","text":"lovely"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
}

func TestEngagementHandler_AddComment_EmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := storagemocks.NewMockItemStore(ctrl)
	engagement := storagemocks.NewMockEngagementStore(ctrl)

	router := newEngagementRouter(NewEngagementHandler(items, engagement))
	req := httptest.NewRequest(http.MethodPost, "/api/items/i1/comments",
		strings.NewReader(`{"user_handle":"ana","text":"   "}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEngagementHandler_ListComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := storagemocks.NewMockItemStore(ctrl)
	engagement := storagemocks.NewMockEngagementStore(ctrl)

	items.EXPECT().GetByID(gomock.Any(), "i1").Return(&storage.ItemRecord{ID: "i1"}, nil)
	engagement.EXPECT().ListComments(gomock.Any(), "i1", 1, 20).Return([]storage.CommentRecord{
		{ID: 1, ItemID: "i1", UserHandle: "ana", Text: "first", CreatedAt: time.Now()},
		{ID: 2, ItemID: "i1", UserHandle: "ben", Text: "second", CreatedAt: time.Now()},
	}, 2, nil)

	router := newEngagementRouter(NewEngagementHandler(items, engagement))
	req := httptest.NewRequest(http.MethodGet, "/api/items/i1/comments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var resp CommentListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 2 || len(resp.Comments) != 2 {
		t.Fatalf("total = %d len = %d, want 2 and 2", resp.Total, len(resp.Comments))
	}
	if resp.Comments[0].Text != "first" {
		t.Errorf("first comment = %q, want first", resp.Comments[0].Text)
	}
}
