package query

import (
	"context"
	"fmt"

	"github.com/vncorpora/bicorpus-backend/internal/corpus/sentence"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

const searchSentenceCap = 50

// SearchWord finds sentences containing the searched word and renders the
// first occurrence per sentence with both context views. Multi-word input is
// normalized to the underscore-joined stored form before matching.
func (s *Service) SearchWord(ctx context.Context, input SearchInput) (*SearchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repo := s.repoFor(input.Source)
	token := domain.NormalizeToken(input.Query)
	limit := input.Limit
	if limit <= 0 || limit > searchSentenceCap {
		limit = searchSentenceCap
	}

	filter := domain.WordFilter{
		LangPair: input.LangPair,
		LangCode: input.SourceLang,
		Page:     1,
		Limit:    domain.MaxPageLimit,
	}
	if input.IsMorph {
		filter.ExactMorph = &token
	} else {
		filter.ExactWord = &token
	}

	matches, total, err := repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query.SearchWord: %w", err)
	}

	// First occurrence per sentence, capped.
	firstPerSentence := make([]domain.WordRecord, 0, limit)
	seen := make(map[string]struct{}, limit)
	for _, m := range matches {
		if _, ok := seen[m.SentenceID]; ok {
			continue
		}
		seen[m.SentenceID] = struct{}{}
		firstPerSentence = append(firstPerSentence, m)
		if len(firstPerSentence) == limit {
			break
		}
	}

	sentenceIDs := make([]string, 0, len(firstPerSentence))
	for _, m := range firstPerSentence {
		sentenceIDs = append(sentenceIDs, m.SentenceID)
	}

	rows, err := repo.ListBySentenceIDs(ctx, input.LangPair,
		[]string{input.SourceLang, input.TargetLang}, sentenceIDs)
	if err != nil {
		return nil, fmt.Errorf("query.SearchWord load context: %w", err)
	}

	srcSorted, srcSpans, tgtSorted, tgtSpans := splitByLang(rows, input.SourceLang, input.TargetLang)

	items := make([]WordEntry, 0, len(firstPerSentence))
	for _, focus := range firstPerSentence {
		entry, err := buildEntry(focus,
			sentence.SentenceRows(srcSorted, srcSpans, focus.SentenceID),
			sentence.SentenceRows(tgtSorted, tgtSpans, focus.SentenceID))
		if err != nil {
			return nil, fmt.Errorf("query.SearchWord sentence %s: %w", focus.SentenceID, err)
		}
		items = append(items, entry)
	}

	return &SearchResult{Query: input.Query, Items: items, Total: total}, nil
}
