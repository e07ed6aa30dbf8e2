package rest

import (
	"net/http"

	"github.com/heartmarshall/insight-calendar/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Insights *InsightHandler
	Notes    *NoteHandler
	Health   *HealthHandler
}

// Guards are per-route middleware. A nil guard lets every request through.
type Guards struct {
	Cron          middleware.Middleware // POST /api/insights/generate
	Preview       middleware.Middleware // GET /api/insights/generate
	Seed          middleware.Middleware // GET /api/insights/seed
	GenerateLimit middleware.Middleware
	SeedLimit     middleware.Middleware
}

// NewRouter registers every route on a new ServeMux. Cross-cutting
// middleware (request id, logging, recovery, CORS) is applied by the caller.
func NewRouter(h Handlers, g Guards) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/insights/{date}", h.Insights.GetByDate)
	mux.HandleFunc("GET /api/insights/month/{year}/{month}", h.Insights.GetByMonth)
	mux.HandleFunc("GET /api/insights/recent", h.Insights.Recent)
	mux.Handle("POST /api/insights/generate", guarded(h.Insights.Generate, g.GenerateLimit, g.Cron))
	mux.Handle("GET /api/insights/generate", guarded(h.Insights.Preview, g.Preview))
	mux.Handle("GET /api/insights/seed", guarded(h.Insights.Seed, g.Seed, g.SeedLimit))

	mux.HandleFunc("GET /api/notes", h.Notes.List)
	mux.HandleFunc("GET /api/notes/{date}", h.Notes.Get)
	mux.HandleFunc("PUT /api/notes/{date}", h.Notes.Put)
	mux.HandleFunc("DELETE /api/notes/{id}", h.Notes.Delete)

	return mux
}

func guarded(fn http.HandlerFunc, mws ...middleware.Middleware) http.Handler {
	return middleware.Chain(mws...)(fn)
}
