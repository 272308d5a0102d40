package query

import (
	"context"
	"fmt"
)

// ListWords returns one page of word rows from the selected tier.
func (s *Service) ListWords(ctx context.Context, input ListWordsInput) (*WordPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := input.Filter
	f.Normalize()

	items, total, err := s.repoFor(input.Source).Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("query.ListWords: %w", err)
	}

	return &WordPage{
		Items:      items,
		Total:      total,
		Page:       f.Page,
		TotalPages: totalPages(total, f.Limit),
	}, nil
}
