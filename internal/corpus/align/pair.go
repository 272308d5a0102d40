package align

import (
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// Token is one word of a sentence in a pairwise alignment, with its 0-based
// sentence-local index. TargetIndices lists the 0-based indices of the
// other-language tokens this token aligns to (source side only).
type Token struct {
	Index         int    `json:"id"`
	Word          string `json:"word"`
	POS           string `json:"tag_pos"`
	TargetIndices []int  `json:"id_target,omitempty"`
}

// PairAlignment is the full word-level alignment of one sentence pair.
type PairAlignment struct {
	Source []Token `json:"sentence_1"`
	Target []Token `json:"sentence_2"`
}

// Pair builds the word-level alignment between the source and target
// renderings of one sentence. Links pointing outside the target sentence
// are dropped; a non-numeric link entry fails fast.
func Pair(source, target []domain.WordRecord) (PairAlignment, error) {
	src := byPosition(source)
	tgt := byPosition(target)

	out := PairAlignment{
		Source: make([]Token, 0, len(src)),
		Target: make([]Token, 0, len(tgt)),
	}

	for i, r := range tgt {
		out.Target = append(out.Target, Token{Index: i, Word: r.Word, POS: r.POS})
	}

	for i, r := range src {
		tok := Token{Index: i, Word: r.Word, POS: r.POS}
		links, err := ParseLinks(r.Links)
		if err != nil {
			return PairAlignment{}, err
		}
		for _, link := range links {
			idx := link - 1
			if idx >= 0 && idx < len(tgt) {
				tok.TargetIndices = append(tok.TargetIndices, idx)
			}
		}
		out.Source = append(out.Source, tok)
	}

	return out, nil
}
