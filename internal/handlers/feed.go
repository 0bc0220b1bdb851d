package handlers

import (
	"net/http"

	"github.com/Fid-Wiz/timecapsule/internal/service"
	"github.com/Fid-Wiz/timecapsule/internal/storage"
)

// FeedHandler handles the public feed read.
type FeedHandler struct {
	items storage.ItemStore
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(items storage.ItemStore) *FeedHandler {
	return &FeedHandler{items: items}
}

// FeedItemResponse is one feed entry: an item plus its capsule's title.
type FeedItemResponse struct {
	ItemResponse
	CapsuleTitle string `json:"capsule_title"`
	Visibility   string `json:"visibility"`
}

// FeedResponse represents a page of the public feed.
type FeedResponse struct {
	Page     int                `json:"page"`
	PageSize int                `json:"pageSize"`
	Total    int                `json:"total"`
	Items    []FeedItemResponse `json:"items"`
}

// ServeHTTP handles GET /api/feed. Only items whose owning capsule has
// reached the unlocked state and is not private ever appear here.
func (h *FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	page, pageSize := pagination(r, 20, 50)
	items, total, err := h.items.Feed(ctx, page, pageSize)
	if err != nil {
		writeError(ctx, w, service.WrapError(err, "failed to read feed"))
		return
	}

	resp := FeedResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Items:    make([]FeedItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, FeedItemResponse{
			ItemResponse: itemResponse(item.ItemRecord),
			CapsuleTitle: item.CapsuleTitle,
			Visibility:   item.CapsuleVisibility,
		})
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
