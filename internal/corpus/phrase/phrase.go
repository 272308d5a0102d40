// Package phrase matches multi-word search phrases against the corpus.
// Annotators store compound tokens as single underscore-joined words
// ("một con" → "một_con"), so a naive space-based phrase search misses
// them. Variant generation recovers the plausible stored forms: only
// adjacent-pair merges are generated, never a full combinatorial expansion.
package phrase

import (
	"strings"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// Variants returns the candidate word sequences for a phrase: the
// unmodified word list first, then, for every adjacent pair (i, i+1), one
// variant with that pair replaced by the underscore-merged token. Variants
// are deduplicated. A phrase of fewer than two words yields only itself.
func Variants(key string) [][]string {
	words := strings.Fields(strings.TrimSpace(key))
	if len(words) == 0 {
		return nil
	}

	out := [][]string{words}
	if len(words) < 2 {
		return out
	}

	seen := map[string]struct{}{strings.Join(words, " "): {}}
	for i := 0; i < len(words)-1; i++ {
		variant := make([]string, 0, len(words)-1)
		variant = append(variant, words[:i]...)
		variant = append(variant, words[i]+"_"+words[i+1])
		variant = append(variant, words[i+2:]...)

		joined := strings.Join(variant, " ")
		if _, ok := seen[joined]; ok {
			continue
		}
		seen[joined] = struct{}{}
		out = append(out, variant)
	}
	return out
}

// MergedTokens extracts every underscore-containing token from the phrase's
// variants into a flat deduplicated candidate set, preserving generation
// order. These candidates are matched by equality against stored words.
func MergedTokens(key string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, variant := range Variants(key) {
		for _, tok := range variant {
			if !strings.Contains(tok, "_") {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return out
}

// FindInSentence slides each variant's window across the sentence's word
// list and tests case-insensitive equality term by term. The first match
// wins; variants are tried in generation order. Returns the matched record
// slice, or ok=false when no variant matches.
func FindInSentence(key string, sentenceRows []domain.WordRecord) ([]domain.WordRecord, bool) {
	for _, variant := range Variants(key) {
		if matched, ok := matchWindow(variant, sentenceRows); ok {
			return matched, true
		}
	}
	return nil, false
}

// matchWindow finds the first window of sentenceRows equal to the variant.
func matchWindow(variant []string, sentenceRows []domain.WordRecord) ([]domain.WordRecord, bool) {
	n := len(variant)
	if n == 0 || n > len(sentenceRows) {
		return nil, false
	}

	for i := 0; i+n <= len(sentenceRows); i++ {
		ok := true
		for j := 0; j < n; j++ {
			if !strings.EqualFold(sentenceRows[i+j].Word, variant[j]) {
				ok = false
				break
			}
		}
		if ok {
			return sentenceRows[i : i+n], true
		}
	}
	return nil, false
}
