package curation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// CreatePair opens a new draft sentence pair owned by the calling user.
func (s *Service) CreatePair(ctx context.Context, input CreatePairInput) (*domain.SentencePair, error) {
	userID, _, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.pairs.GetBySentenceID(ctx, input.LangPair, input.SentenceID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing pair: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("sentence %s already has a pair: %w", input.SentenceID, domain.ErrAlreadyExists)
	}

	pair, err := s.pairs.Create(ctx, &domain.SentencePair{
		SentenceID: input.SentenceID,
		SourceText: strings.TrimSpace(input.SourceText),
		TargetText: strings.TrimSpace(input.TargetText),
		LangPair:   input.LangPair,
		Status:     domain.PairStatusDraft,
		CreatedBy:  userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create sentence pair: %w", err)
	}

	s.log.InfoContext(ctx, "sentence pair created",
		slog.String("pair_id", pair.ID.String()),
		slog.String("sentence_id", pair.SentenceID),
		slog.String("lang_pair", pair.LangPair),
	)
	return pair, nil
}
