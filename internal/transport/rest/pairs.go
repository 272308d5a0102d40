package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
	"github.com/vncorpora/bicorpus-backend/internal/service/curation"
)

// curationService defines the minimal interface needed by PairsHandler.
type curationService interface {
	CreatePair(ctx context.Context, input curation.CreatePairInput) (*domain.SentencePair, error)
	SaveAnalysis(ctx context.Context, input curation.SaveAnalysisInput) (*domain.SentencePair, error)
	GetPair(ctx context.Context, pairID string) (*domain.SentencePair, error)
	ListMine(ctx context.Context) ([]domain.SentencePair, error)
	ListPending(ctx context.Context, input curation.ListPendingInput) (*curation.PendingPage, error)
	Approve(ctx context.Context, pairID string) (*domain.SentencePair, error)
	Reject(ctx context.Context, pairID string) (*domain.SentencePair, error)
	DeletePair(ctx context.Context, pairID string) error
	UpdateWord(ctx context.Context, input curation.UpdateWordInput) (*domain.WordRecord, error)
}

// PairsHandler serves the sentence-pair curation endpoints.
type PairsHandler struct {
	svc curationService
	log *slog.Logger
}

// NewPairsHandler creates a PairsHandler.
func NewPairsHandler(svc curationService, logger *slog.Logger) *PairsHandler {
	return &PairsHandler{svc: svc, log: logger.With("handler", "pairs")}
}

// Create handles POST /pairs.
func (h *PairsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input curation.CreatePairInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.svc.CreatePair(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, pair)
}

// Get handles GET /pairs/{id}.
func (h *PairsHandler) Get(w http.ResponseWriter, r *http.Request) {
	pair, err := h.svc.GetPair(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// ListMine handles GET /pairs.
func (h *PairsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": pairs})
}

// ListPending handles GET /pairs/pending.
func (h *PairsHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListPending(r.Context(), curation.ListPendingInput{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", domain.DefaultPageLimit),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

type saveAnalysisRequest struct {
	Rows []curation.AnalysisRow `json:"rows"`
}

// SaveAnalysis handles PUT /pairs/{id}/analysis.
func (h *PairsHandler) SaveAnalysis(w http.ResponseWriter, r *http.Request) {
	var req saveAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := h.svc.SaveAnalysis(r.Context(), curation.SaveAnalysisInput{
		PairID: r.PathValue("id"),
		Rows:   req.Rows,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// Approve handles POST /pairs/{id}/approve.
func (h *PairsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	pair, err := h.svc.Approve(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// Reject handles POST /pairs/{id}/reject.
func (h *PairsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	pair, err := h.svc.Reject(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// UpdateWord handles PUT /words/{id}.
func (h *PairsHandler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	var input curation.UpdateWordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	input.ID = r.PathValue("id")

	rec, err := h.svc.UpdateWord(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /pairs/{id}.
func (h *PairsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePair(r.Context(), r.PathValue("id")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
