package query

import (
	"context"
	"fmt"

	"github.com/vncorpora/bicorpus-backend/internal/corpus/align"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// SentenceAlignment returns the word-level alignment of one approved
// sentence pair. Returns ErrNotFound when the sentence has no source-side
// rows.
func (s *Service) SentenceAlignment(ctx context.Context, input SentenceAlignmentInput) (*align.PairAlignment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.master.ListBySentenceIDs(ctx, input.LangPair,
		[]string{input.SourceLang, input.TargetLang}, []string{input.SentenceID})
	if err != nil {
		return nil, fmt.Errorf("query.SentenceAlignment: %w", err)
	}

	var src, tgt []domain.WordRecord
	for _, r := range rows {
		switch r.LangCode {
		case input.SourceLang:
			src = append(src, r)
		case input.TargetLang:
			tgt = append(tgt, r)
		}
	}

	if len(src) == 0 {
		return nil, fmt.Errorf("query.SentenceAlignment sentence %s: %w", input.SentenceID, domain.ErrNotFound)
	}

	pair, err := align.Pair(src, tgt)
	if err != nil {
		return nil, fmt.Errorf("query.SentenceAlignment sentence %s: %w", input.SentenceID, err)
	}
	return &pair, nil
}
