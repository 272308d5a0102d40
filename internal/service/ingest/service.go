// Package ingest implements TSV import and export of word-aligned corpus
// rows. The wire format is one word per line, ten tab-separated fields:
//
//	identifier  word  lemma  links  morph  pos  phrase  grm  ner  semantic
package ingest

import (
	"context"
	"log/slog"

	"github.com/vncorpora/bicorpus-backend/internal/config"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// rowStore defines the word-row repository interface needed by the ingest
// service. Both the draft and master repositories satisfy it.
type rowStore interface {
	BulkInsert(ctx context.Context, recs []domain.WordRecord) (int64, error)
	ListByLang(ctx context.Context, langPair, langCode string) ([]domain.WordRecord, error)
}

// Service implements corpus import/export operations.
type Service struct {
	log    *slog.Logger
	cfg    config.CorpusConfig
	draft  rowStore
	master rowStore
}

// NewService creates a new ingest service instance.
func NewService(logger *slog.Logger, cfg config.CorpusConfig, draft, master rowStore) *Service {
	return &Service{
		log:    logger.With("service", "ingest"),
		cfg:    cfg,
		draft:  draft,
		master: master,
	}
}

func (s *Service) storeFor(src domain.RecordSource) rowStore {
	if src == domain.SourceMaster {
		return s.master
	}
	return s.draft
}
