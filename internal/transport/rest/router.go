package rest

import (
	"net/http"

	"github.com/vncorpora/bicorpus-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health *HealthHandler
	Auth   *AuthHandler
	Corpus *CorpusHandler
	Pairs  *PairsHandler
	Ingest *IngestHandler
}

// NewRouter mounts all REST routes under /api/v1 and applies the shared
// middleware chain.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /livez", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/v1/auth/me", h.Auth.Me)

	mux.HandleFunc("GET /api/v1/corpus/words", h.Corpus.ListWords)
	mux.HandleFunc("GET /api/v1/corpus/alignment", h.Corpus.AlignmentView)
	mux.HandleFunc("GET /api/v1/corpus/sentences/spans", h.Corpus.SentenceSpans)
	mux.HandleFunc("GET /api/v1/corpus/sentences/{id}/alignment", h.Corpus.SentenceAlignment)
	mux.HandleFunc("GET /api/v1/corpus/search/word", h.Corpus.SearchWord)
	mux.HandleFunc("GET /api/v1/corpus/search/phrase", h.Corpus.SearchPhrase)
	mux.HandleFunc("GET /api/v1/corpus/tags/{field}/values", h.Corpus.TagValues)

	mux.HandleFunc("POST /api/v1/corpus/import", h.Ingest.Import)
	mux.HandleFunc("GET /api/v1/corpus/export", h.Ingest.Export)

	mux.HandleFunc("POST /api/v1/pairs", h.Pairs.Create)
	mux.HandleFunc("GET /api/v1/pairs", h.Pairs.ListMine)
	mux.HandleFunc("GET /api/v1/pairs/pending", h.Pairs.ListPending)
	mux.HandleFunc("GET /api/v1/pairs/{id}", h.Pairs.Get)
	mux.HandleFunc("PUT /api/v1/pairs/{id}/analysis", h.Pairs.SaveAnalysis)
	mux.HandleFunc("POST /api/v1/pairs/{id}/approve", h.Pairs.Approve)
	mux.HandleFunc("POST /api/v1/pairs/{id}/reject", h.Pairs.Reject)
	mux.HandleFunc("DELETE /api/v1/pairs/{id}", h.Pairs.Delete)
	mux.HandleFunc("PUT /api/v1/words/{id}", h.Pairs.UpdateWord)

	return middleware.Chain(mws...)(mux)
}
