package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vncorpora/bicorpus-backend/internal/corpus/align"
	"github.com/vncorpora/bicorpus-backend/internal/corpus/sentence"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
	"github.com/vncorpora/bicorpus-backend/internal/service/query"
)

// corpusService defines the minimal interface needed by CorpusHandler.
type corpusService interface {
	ListWords(ctx context.Context, input query.ListWordsInput) (*query.WordPage, error)
	AlignmentView(ctx context.Context, input query.AlignmentViewInput) (*query.AlignmentPage, error)
	SentenceAlignment(ctx context.Context, input query.SentenceAlignmentInput) (*align.PairAlignment, error)
	SearchWord(ctx context.Context, input query.SearchInput) (*query.SearchResult, error)
	SearchPhrase(ctx context.Context, input query.SearchInput) (*query.PhraseResult, error)
	SentenceSpans(ctx context.Context, src domain.RecordSource, langPair, langCode string) (map[string]sentence.Span, error)
	TagValues(ctx context.Context, input query.TagValuesInput) ([]string, error)
}

// CorpusHandler serves read-side corpus endpoints.
type CorpusHandler struct {
	svc corpusService
	log *slog.Logger
}

// NewCorpusHandler creates a CorpusHandler.
func NewCorpusHandler(svc corpusService, logger *slog.Logger) *CorpusHandler {
	return &CorpusHandler{svc: svc, log: logger.With("handler", "corpus")}
}

// sourceParam reads the storage tier selector, defaulting to master.
func sourceParam(r *http.Request) domain.RecordSource {
	if v := r.URL.Query().Get("source"); v != "" {
		return domain.RecordSource(v)
	}
	return domain.SourceMaster
}

// ListWords handles GET /corpus/words.
func (h *CorpusHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.WordFilter{
		LangPair: q.Get("lang_pair"),
		LangCode: q.Get("lang_code"),
		TagValue: q.Get("tag_value"),
		Page:     queryInt(r, "page", 1),
		Limit:    queryInt(r, "limit", domain.DefaultPageLimit),
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}
	if v := q.Get("word"); v != "" {
		filter.ExactWord = &v
	}
	if v := q.Get("morph"); v != "" {
		filter.ExactMorph = &v
	}
	if v := q.Get("tag"); v != "" {
		tag := domain.TagField(v)
		filter.Tag = &tag
	}

	page, err := h.svc.ListWords(r.Context(), query.ListWordsInput{
		Source: sourceParam(r),
		Filter: filter,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// AlignmentView handles GET /corpus/alignment.
func (h *CorpusHandler) AlignmentView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.svc.AlignmentView(r.Context(), query.AlignmentViewInput{
		LangPair:   q.Get("lang_pair"),
		SourceLang: q.Get("source_lang"),
		TargetLang: q.Get("target_lang"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", domain.DefaultPageLimit),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// SentenceAlignment handles GET /corpus/sentences/{id}/alignment.
func (h *CorpusHandler) SentenceAlignment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := h.svc.SentenceAlignment(r.Context(), query.SentenceAlignmentInput{
		LangPair:   q.Get("lang_pair"),
		SentenceID: r.PathValue("id"),
		SourceLang: q.Get("source_lang"),
		TargetLang: q.Get("target_lang"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func searchInput(r *http.Request) query.SearchInput {
	q := r.URL.Query()
	return query.SearchInput{
		Source:     sourceParam(r),
		LangPair:   q.Get("lang_pair"),
		SourceLang: q.Get("source_lang"),
		TargetLang: q.Get("target_lang"),
		Query:      q.Get("q"),
		IsMorph:    q.Get("is_morph") == "true",
		Limit:      queryInt(r, "limit", domain.DefaultPageLimit),
	}
}

// SearchWord handles GET /corpus/search/word.
func (h *CorpusHandler) SearchWord(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SearchWord(r.Context(), searchInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SearchPhrase handles GET /corpus/search/phrase.
func (h *CorpusHandler) SearchPhrase(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.SearchPhrase(r.Context(), searchInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SentenceSpans handles GET /corpus/sentences/spans.
func (h *CorpusHandler) SentenceSpans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	spans, err := h.svc.SentenceSpans(r.Context(), sourceParam(r), q.Get("lang_pair"), q.Get("lang_code"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, spans)
}

// TagValues handles GET /corpus/tags/{field}/values.
func (h *CorpusHandler) TagValues(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	values, err := h.svc.TagValues(r.Context(), query.TagValuesInput{
		Source:   sourceParam(r),
		LangPair: q.Get("lang_pair"),
		LangCode: q.Get("lang_code"),
		Field:    r.PathValue("field"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"values": values})
}
