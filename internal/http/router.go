package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Fid-Wiz/timecapsule/internal/handlers"
	"github.com/Fid-Wiz/timecapsule/internal/ingest"
	"github.com/Fid-Wiz/timecapsule/internal/search"
	"github.com/Fid-Wiz/timecapsule/internal/storage"
	"github.com/Fid-Wiz/timecapsule/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	DB             *sql.DB
	Capsules       storage.CapsuleStore
	Items          storage.ItemStore
	Engagement     storage.EngagementStore
	Invites        storage.InviteStore
	Pipeline       *ingest.Pipeline
	SearchEngine   search.Engine
	Sweeper        handlers.SweepRunner
	VectorStore    vectorstore.VectorStore
	CollectionName string
	CronSecret     string
	MaxUploadBytes int64
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)

	// Add CORS middleware
	r.Use(CORS)

	capsuleHandler := handlers.NewCapsuleHandler(deps.Capsules, deps.Items)
	itemHandler := handlers.NewItemHandler(deps.Pipeline, deps.MaxUploadBytes)
	searchHandler := handlers.NewSearchHandler(deps.SearchEngine)
	feedHandler := handlers.NewFeedHandler(deps.Items)
	sweepHandler := handlers.NewSweepHandler(deps.Sweeper, deps.CronSecret)
	engagementHandler := handlers.NewEngagementHandler(deps.Items, deps.Engagement)
	inviteHandler := handlers.NewInviteHandler(deps.Capsules, deps.Invites)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.VectorStore, deps.CollectionName)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/capsules", capsuleHandler.Create)
		r.Get("/capsules/{id}", capsuleHandler.Get)
		r.Get("/capsules/{id}/items", capsuleHandler.ListItems)
		r.Post("/capsules/{id}/invites", inviteHandler.Create)
		r.Get("/capsules/{id}/invites", inviteHandler.List)

		// Accepts both JSON and multipart bodies on the same path.
		r.Method(http.MethodPost, "/items", itemHandler)
		r.Post("/items/{id}/likes", engagementHandler.Like)
		r.Delete("/items/{id}/likes", engagementHandler.Unlike)
		r.Post("/items/{id}/comments", engagementHandler.AddComment)
		r.Get("/items/{id}/comments", engagementHandler.ListComments)

		r.Method(http.MethodPost, "/search", searchHandler)
		r.Method(http.MethodGet, "/feed", feedHandler)
		r.Method(http.MethodGet, "/cron/unlock", sweepHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
