// Package sentence partitions a sorted word stream into contiguous
// per-sentence spans. The span index is ephemeral: it is computed fresh per
// query against one materialized row list and is stale as soon as that list
// changes.
package sentence

import (
	"sort"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// Span is a contiguous range of inclusive offsets into a sorted row list,
// covering exactly one sentence.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Sorted is a word sequence known to be ordered by (sentence id, position).
// It can only be obtained through Sort or AssumeSorted, so the ordering
// invariant the indexer relies on is carried by the type, not by convention.
type Sorted struct {
	rows []domain.WordRecord
}

// Sort copies rows, orders them by (sentence id, position), and returns the
// sorted sequence.
func Sort(rows []domain.WordRecord) Sorted {
	sorted := make([]domain.WordRecord, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SentenceID != sorted[j].SentenceID {
			return sorted[i].SentenceID < sorted[j].SentenceID
		}
		return sorted[i].Position < sorted[j].Position
	})
	return Sorted{rows: sorted}
}

// AssumeSorted wraps rows that are already ordered by (sentence id,
// position), e.g. rows read with ORDER BY sentence_id, position. The caller
// vouches for the ordering.
func AssumeSorted(rows []domain.WordRecord) Sorted {
	return Sorted{rows: rows}
}

// Rows returns the underlying ordered slice. Callers must not reorder it.
func (s Sorted) Rows() []domain.WordRecord { return s.rows }

// Len returns the number of rows.
func (s Sorted) Len() int { return len(s.rows) }

// Index maps each sentence id to the span of offsets its words occupy.
// Single forward scan: a span closes when the sentence id changes or the
// scan reaches the final row. Empty input yields an empty map.
func Index(s Sorted) map[string]Span {
	spans := make(map[string]Span, 16)
	rows := s.rows
	if len(rows) == 0 {
		return spans
	}

	current := rows[0].SentenceID
	start := 0
	for i := range rows {
		if rows[i].SentenceID != current {
			spans[current] = Span{Start: start, End: i - 1}
			current = rows[i].SentenceID
			start = i
		}
		if i == len(rows)-1 {
			spans[current] = Span{Start: start, End: i}
		}
	}
	return spans
}

// SentenceRows returns the rows of one sentence, or nil if the sentence id
// is absent from the index.
func SentenceRows(s Sorted, spans map[string]Span, sentenceID string) []domain.WordRecord {
	span, ok := spans[sentenceID]
	if !ok {
		return nil
	}
	return s.rows[span.Start : span.End+1]
}
