package query

import (
	"context"
	"fmt"

	"github.com/vncorpora/bicorpus-backend/internal/corpus/align"
	"github.com/vncorpora/bicorpus-backend/internal/corpus/sentence"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// AlignmentView returns one page of the reading view: a page of approved
// sentences, each source-language word rendered with its own-sentence
// context and the aligned target-sentence spans.
func (s *Service) AlignmentView(ctx context.Context, input AlignmentViewInput) (*AlignmentPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit <= 0 {
		input.Limit = 10
	}

	ids, totalSentences, err := s.master.PageSentenceIDs(ctx, input.LangPair, input.SourceLang, input.Page, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("query.AlignmentView page sentences: %w", err)
	}

	rows, err := s.master.ListBySentenceIDs(ctx, input.LangPair,
		[]string{input.SourceLang, input.TargetLang}, ids)
	if err != nil {
		return nil, fmt.Errorf("query.AlignmentView load rows: %w", err)
	}

	srcSorted, srcSpans, tgtSorted, tgtSpans := splitByLang(rows, input.SourceLang, input.TargetLang)

	items := make([]WordEntry, 0, len(srcSorted.Rows()))
	for _, id := range ids {
		srcRows := sentence.SentenceRows(srcSorted, srcSpans, id)
		tgtRows := sentence.SentenceRows(tgtSorted, tgtSpans, id)

		for _, focus := range srcRows {
			entry, err := buildEntry(focus, srcRows, tgtRows)
			if err != nil {
				return nil, fmt.Errorf("query.AlignmentView sentence %s: %w", id, err)
			}
			items = append(items, entry)
		}
	}

	return &AlignmentPage{
		LangPair:   input.LangPair,
		SourceLang: input.SourceLang,
		TargetLang: input.TargetLang,
		Items:      items,
		Page:       input.Page,
		TotalPages: totalPages(totalSentences, input.Limit),
		Sentences:  totalSentences,
	}, nil
}

// splitByLang partitions mixed-language rows into per-language sorted
// sequences with their sentence indexes.
func splitByLang(rows []domain.WordRecord, sourceLang, targetLang string) (sentence.Sorted, map[string]sentence.Span, sentence.Sorted, map[string]sentence.Span) {
	var src, tgt []domain.WordRecord
	for _, r := range rows {
		switch r.LangCode {
		case sourceLang:
			src = append(src, r)
		case targetLang:
			tgt = append(tgt, r)
		}
	}

	srcSorted := sentence.Sort(src)
	tgtSorted := sentence.Sort(tgt)
	return srcSorted, sentence.Index(srcSorted), tgtSorted, sentence.Index(tgtSorted)
}

// buildEntry renders one focus word against its own sentence and the
// aligned sentence.
func buildEntry(focus domain.WordRecord, sameSentence, otherSentence []domain.WordRecord) (WordEntry, error) {
	target, err := align.Target(focus, otherSentence)
	if err != nil {
		return WordEntry{}, err
	}

	return WordEntry{
		ID:       focus.ID,
		Word:     focus.Word,
		Lemma:    focus.Lemma,
		Links:    focus.Links,
		Morph:    focus.Morph,
		POS:      focus.POS,
		Phrase:   focus.Phrase,
		Grm:      focus.Grm,
		NER:      focus.NER,
		Semantic: focus.Semantic,
		Source:   align.Source(focus, sameSentence),
		Target:   target,
	}, nil
}
