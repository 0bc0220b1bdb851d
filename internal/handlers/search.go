package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Fid-Wiz/timecapsule/internal/contextutil"
	"github.com/Fid-Wiz/timecapsule/internal/search"
	"github.com/Fid-Wiz/timecapsule/internal/service"
)

// SearchHandler handles semantic search requests.
type SearchHandler struct {
	engine search.Engine
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(engine search.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// ServeHTTP handles POST /api/search.
//
// swagger:route POST /api/search searchItems
//
// # Semantic search
//
// Embeds the query and runs two-stage retrieval: a bounded nearest-neighbor
// candidate fetch over the whole corpus, then exact capsule-scope filtering
// and reranking. Scores are cosine distances; lower is more similar.
//
// ---
// consumes:
// - application/json
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: Ranked results, at most ten
//	'400':
//	  description: Missing or empty query
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  description: Vector store failure
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req search.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, &service.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	resp, err := h.engine.Search(ctx, req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}
