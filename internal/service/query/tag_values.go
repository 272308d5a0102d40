package query

import (
	"context"
	"fmt"
)

// TagValues returns the distinct non-empty values of one annotation column
// for one language of one corpus batch.
func (s *Service) TagValues(ctx context.Context, input TagValuesInput) ([]string, error) {
	field, err := input.Validate()
	if err != nil {
		return nil, err
	}

	values, err := s.repoFor(input.Source).DistinctTagValues(ctx, input.LangPair, input.LangCode, field)
	if err != nil {
		return nil, fmt.Errorf("query.TagValues: %w", err)
	}
	return values, nil
}
