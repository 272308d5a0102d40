package query

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vncorpora/bicorpus-backend/internal/corpus/align"
	"github.com/vncorpora/bicorpus-backend/internal/corpus/phrase"
	"github.com/vncorpora/bicorpus-backend/internal/corpus/sentence"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// SearchPhrase finds sentences containing the searched phrase, in either
// its spelled-out form or any adjacent-pair merged form, and renders the
// matched span with its target-side projection.
func (s *Service) SearchPhrase(ctx context.Context, input SearchInput) (*PhraseResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	repo := s.repoFor(input.Source)
	key := strings.TrimSpace(input.Query)
	limit := input.Limit
	if limit <= 0 || limit > searchSentenceCap {
		limit = searchSentenceCap
	}

	// Candidate sentences: any sentence containing the phrase's first word
	// or any merged compound of it.
	anchors := []string{strings.Fields(key)[0]}
	anchors = append(anchors, phrase.MergedTokens(key)...)

	candidateIDs, err := s.candidateSentences(ctx, repo, input, anchors)
	if err != nil {
		return nil, fmt.Errorf("query.SearchPhrase: %w", err)
	}

	rows, err := repo.ListBySentenceIDs(ctx, input.LangPair,
		[]string{input.SourceLang, input.TargetLang}, candidateIDs)
	if err != nil {
		return nil, fmt.Errorf("query.SearchPhrase load context: %w", err)
	}

	srcSorted, srcSpans, tgtSorted, tgtSpans := splitByLang(rows, input.SourceLang, input.TargetLang)

	items := make([]PhraseMatch, 0, limit)
	for _, id := range candidateIDs {
		srcRows := sentence.SentenceRows(srcSorted, srcSpans, id)
		matched, ok := phrase.FindInSentence(key, srcRows)
		if !ok {
			continue
		}

		tgtRows := sentence.SentenceRows(tgtSorted, tgtSpans, id)
		match, err := buildPhraseMatch(id, matched, srcRows, tgtRows)
		if err != nil {
			return nil, fmt.Errorf("query.SearchPhrase sentence %s: %w", id, err)
		}

		items = append(items, match)
		if len(items) == limit {
			break
		}
	}

	return &PhraseResult{Query: input.Query, Items: items, Total: len(items)}, nil
}

// candidateSentences collects, in sentence-id order, the ids of sentences
// containing any anchor token.
func (s *Service) candidateSentences(ctx context.Context, repo wordRepo, input SearchInput, anchors []string) ([]string, error) {
	seen := make(map[string]struct{})
	var ids []string

	for _, anchor := range anchors {
		token := domain.NormalizeToken(anchor)
		matches, _, err := repo.Find(ctx, domain.WordFilter{
			LangPair:  input.LangPair,
			LangCode:  input.SourceLang,
			ExactWord: &token,
			Page:      1,
			Limit:     domain.MaxPageLimit,
		})
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if _, ok := seen[m.SentenceID]; ok {
				continue
			}
			seen[m.SentenceID] = struct{}{}
			ids = append(ids, m.SentenceID)
		}
	}

	sort.Strings(ids)
	return ids, nil
}

// buildPhraseMatch renders a matched span: the span words as Center of the
// source view, and the union of the span's links projected onto the target
// sentence.
func buildPhraseMatch(sentenceID string, matched, srcRows, tgtRows []domain.WordRecord) (PhraseMatch, error) {
	first := matched[0]
	last := matched[len(matched)-1]

	var left, center, right strings.Builder
	for _, r := range srcRows {
		switch {
		case r.Position < first.Position:
			left.WriteString(r.Word)
			left.WriteByte(' ')
		case r.Position > last.Position:
			right.WriteString(r.Word)
			right.WriteByte(' ')
		default:
			center.WriteString(r.Word)
			center.WriteByte(' ')
		}
	}

	source := align.SourceView{
		SentenceID: sentenceID,
		Left:       strings.TrimRight(left.String(), " "),
		Center:     strings.TrimRight(center.String(), " "),
		Right:      strings.TrimRight(right.String(), " "),
		Position:   first.Position,
	}

	links, err := spanLinks(matched)
	if err != nil {
		return PhraseMatch{}, err
	}

	// Synthetic focus carrying the span's combined links, so the target
	// projection treats the whole span as one unit.
	focus := domain.WordRecord{
		SentenceID: sentenceID,
		Links:      links,
	}
	target, err := align.Target(focus, tgtRows)
	if err != nil {
		return PhraseMatch{}, err
	}

	return PhraseMatch{
		SentenceID: sentenceID,
		Matched:    matched,
		Source:     source,
		Target:     target,
	}, nil
}

// spanLinks unions the links of the matched records into one ascending
// comma-joined list, or the unaligned sentinel when no record is aligned.
func spanLinks(matched []domain.WordRecord) (string, error) {
	seen := make(map[int]struct{})
	var all []int
	for _, m := range matched {
		links, err := align.ParseLinks(m.Links)
		if err != nil {
			return "", err
		}
		for _, l := range links {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			all = append(all, l)
		}
	}

	if len(all) == 0 {
		return domain.UnalignedLinks, nil
	}

	sort.Ints(all)
	parts := make([]string, len(all))
	for i, l := range all {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, ","), nil
}
