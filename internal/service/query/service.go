// Package query implements the read side of the corpus: word listing,
// aligned reading views, word and phrase search, sentence maps and tag
// inventories.
package query

import (
	"context"
	"log/slog"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// wordRepo is the word-row storage interface common to the draft and master
// tiers.
type wordRepo interface {
	GetByID(ctx context.Context, id string) (*domain.WordRecord, error)
	Find(ctx context.Context, f domain.WordFilter) ([]domain.WordRecord, int, error)
	ListByLang(ctx context.Context, langPair, langCode string) ([]domain.WordRecord, error)
	ListBySentenceIDs(ctx context.Context, langPair string, langCodes, sentenceIDs []string) ([]domain.WordRecord, error)
	DistinctTagValues(ctx context.Context, langPair, langCode string, field domain.TagField) ([]string, error)
}

// masterRepo extends wordRepo with the sentence paging that drives the
// reading view. Only the approved tier supports it.
type masterRepo interface {
	wordRepo
	PageSentenceIDs(ctx context.Context, langPair, langCode string, page, limit int) ([]string, int, error)
}

// Service implements corpus read operations.
type Service struct {
	log    *slog.Logger
	draft  wordRepo
	master masterRepo
}

// NewService creates a new query service instance.
func NewService(logger *slog.Logger, draft wordRepo, master masterRepo) *Service {
	return &Service{
		log:    logger.With("service", "query"),
		draft:  draft,
		master: master,
	}
}

// repoFor selects the storage tier for the given source.
func (s *Service) repoFor(src domain.RecordSource) wordRepo {
	if src == domain.SourceDraft {
		return s.draft
	}
	return s.master
}
