package query

import (
	"context"
	"fmt"

	"github.com/vncorpora/bicorpus-backend/internal/corpus/sentence"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// SentenceSpans returns the sentence map of one language in one corpus
// batch: sentence id → contiguous span of row offsets. The rows arrive from
// storage already ordered by (sentence_id, position), so the sort step is
// skipped.
func (s *Service) SentenceSpans(ctx context.Context, src domain.RecordSource, langPair, langCode string) (map[string]sentence.Span, error) {
	var errs []domain.FieldError
	if !src.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be draft or master"})
	}
	if langPair == "" {
		errs = append(errs, domain.FieldError{Field: "lang_pair", Message: "required"})
	}
	if langCode == "" {
		errs = append(errs, domain.FieldError{Field: "lang_code", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	rows, err := s.repoFor(src).ListByLang(ctx, langPair, langCode)
	if err != nil {
		return nil, fmt.Errorf("query.SentenceSpans: %w", err)
	}

	return sentence.Index(sentence.AssumeSorted(rows)), nil
}
