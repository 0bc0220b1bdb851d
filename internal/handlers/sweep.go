package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Fid-Wiz/timecapsule/internal/contextutil"
	"github.com/Fid-Wiz/timecapsule/internal/service"
)

// SweepRunner is the slice of the sweeper the trigger endpoint needs.
type SweepRunner interface {
	SweepOnce(ctx context.Context, now time.Time) (int64, error)
}

// SweepHandler handles the external scheduling trigger for the unlock sweep.
type SweepHandler struct {
	sweeper SweepRunner
	secret  string // empty means the trigger is unprotected
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(sweeper SweepRunner, secret string) *SweepHandler {
	return &SweepHandler{sweeper: sweeper, secret: secret}
}

// SweepResponse reports how many capsules this invocation transitioned.
type SweepResponse struct {
	Unlocked int64 `json:"unlocked"`
}

// ServeHTTP handles GET /api/cron/unlock. The shared-secret check, when
// configured, accepts the x-cron-secret header or the secret query parameter
// and fails distinctly from validation and server faults.
func (h *SweepHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if h.secret != "" {
		provided := r.Header.Get("x-cron-secret")
		if provided == "" {
			provided = r.URL.Query().Get("secret")
		}
		if provided != h.secret {
			writeError(ctx, w, service.ErrUnauthorized)
			return
		}
	}

	unlocked, err := h.sweeper.SweepOnce(ctx, time.Now())
	if err != nil {
		writeError(ctx, w, service.WrapError(err, "sweep failed"))
		return
	}

	logger.InfoContext(ctx, "sweep triggered", "unlocked", unlocked)
	writeJSON(ctx, w, http.StatusOK, SweepResponse{Unlocked: unlocked})
}
