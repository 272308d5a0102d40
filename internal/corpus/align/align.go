// Package align projects a focus word's cross-language links onto
// contiguous left/center/right spans of the aligned sentence. All functions
// are pure: given the same rows they produce byte-identical output.
package align

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// SourceView is the contextual rendering of the focus word inside its own
// sentence.
type SourceView struct {
	SentenceID string `json:"id_sen"`
	Left       string `json:"left"`
	Center     string `json:"center"`
	Right      string `json:"right"`
	Position   int    `json:"position"`
}

// TargetView is the aligned rendering on the other language's side. For an
// aligned focus word, Center covers the contiguous span between the first
// and last link; StartCenter/EndCenter echo those boundary positions. For an
// unaligned word Center is the "-" sentinel and the span boundaries are zero.
type TargetView struct {
	SentenceID  string `json:"id_sen"`
	Left        string `json:"left"`
	Center      string `json:"center"`
	Right       string `json:"right"`
	StartCenter int    `json:"start_center"`
	EndCenter   int    `json:"end_center"`
}

// Source renders the focus word against the words of its own sentence:
// words at lower positions become Left, the focus word Center, words at
// higher positions Right.
func Source(focus domain.WordRecord, sameSentence []domain.WordRecord) SourceView {
	rows := byPosition(sameSentence)

	var left, right strings.Builder
	for _, r := range rows {
		switch {
		case r.Position < focus.Position:
			left.WriteString(r.Word)
			left.WriteByte(' ')
		case r.Position > focus.Position:
			right.WriteString(r.Word)
			right.WriteByte(' ')
		}
	}

	return SourceView{
		SentenceID: focus.SentenceID,
		Left:       strings.TrimRight(left.String(), " "),
		Center:     focus.Word,
		Right:      strings.TrimRight(right.String(), " "),
		Position:   focus.Position,
	}
}

// Target renders the sentence aligned to the focus word. otherSentence is
// the full set of other-language records sharing the focus word's sentence
// id (and lang pair).
//
// The span boundaries are the FIRST and LAST entries of the links list, not
// its numeric min/max: callers have historically stored links pre-sorted and
// several consumers rely on the literal boundary entries.
func Target(focus domain.WordRecord, otherSentence []domain.WordRecord) (TargetView, error) {
	links, err := ParseLinks(focus.Links)
	if err != nil {
		return TargetView{}, err
	}

	rows := byPosition(otherSentence)

	// Unaligned (sentinel or empty list): no left context, the whole
	// target sentence rendered as right.
	if len(links) == 0 {
		var right strings.Builder
		for _, r := range rows {
			right.WriteString(strings.TrimSpace(r.Word))
			right.WriteByte(' ')
		}
		return TargetView{
			SentenceID: focus.SentenceID,
			Left:       "",
			Center:     domain.UnalignedLinks,
			Right:      strings.TrimRight(right.String(), " "),
		}, nil
	}

	first := links[0]
	last := links[len(links)-1]

	var left, center, right strings.Builder
	for _, r := range rows {
		switch {
		case r.Position < first:
			left.WriteString(r.Word)
			left.WriteByte(' ')
		case r.Position > last:
			right.WriteString(r.Word)
			right.WriteByte(' ')
		default:
			center.WriteString(r.Word)
			center.WriteByte(' ')
		}
	}

	return TargetView{
		SentenceID:  focus.SentenceID,
		Left:        strings.TrimRight(left.String(), " "),
		Center:      strings.TrimRight(center.String(), " "),
		Right:       strings.TrimRight(right.String(), " "),
		StartCenter: first,
		EndCenter:   last,
	}, nil
}

// ParseLinks splits a links value into 1-based target positions. The "-"
// sentinel and the empty string yield an empty list (unaligned). A
// non-numeric entry is ill-formed input and fails fast.
func ParseLinks(links string) ([]int, error) {
	if links == "" || links == domain.UnalignedLinks {
		return nil, nil
	}

	parts := strings.Split(links, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("links %q: entry %q is not a position: %w", links, p, domain.ErrValidation)
		}
		out = append(out, n)
	}
	return out, nil
}

// byPosition returns a copy of rows ordered by intra-sentence position.
func byPosition(rows []domain.WordRecord) []domain.WordRecord {
	sorted := make([]domain.WordRecord, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return sorted
}
