package query

import (
	"github.com/vncorpora/bicorpus-backend/internal/corpus/align"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// WordPage is one page of raw word rows.
type WordPage struct {
	Items      []domain.WordRecord `json:"items"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"total_pages"`
}

// WordEntry is one word rendered with both context views: its own sentence
// and the aligned sentence on the other side.
type WordEntry struct {
	ID       string `json:"id"`
	Word     string `json:"word"`
	Lemma    string `json:"lemma,omitempty"`
	Links    string `json:"links"`
	Morph    string `json:"morph,omitempty"`
	POS      string `json:"pos,omitempty"`
	Phrase   string `json:"phrase,omitempty"`
	Grm      string `json:"grm,omitempty"`
	NER      string `json:"ner,omitempty"`
	Semantic string `json:"semantic,omitempty"`

	Source align.SourceView `json:"source"`
	Target align.TargetView `json:"target"`
}

// AlignmentPage is one page of the reading view: every source-language word
// of the page's sentences, each with its context views.
type AlignmentPage struct {
	LangPair   string      `json:"lang_pair"`
	SourceLang string      `json:"source_lang"`
	TargetLang string      `json:"target_lang"`
	Items      []WordEntry `json:"items"`
	Page       int         `json:"page"`
	TotalPages int         `json:"total_pages"`
	Sentences  int         `json:"sentences"`
}

// SearchResult is the outcome of a word search: one entry per sentence in
// which the word occurs (the first occurrence per sentence).
type SearchResult struct {
	Query string      `json:"query"`
	Items []WordEntry `json:"items"`
	Total int         `json:"total"`
}

// PhraseMatch is one sentence in which the searched phrase occurs: the
// matched span and the target-side rendering of that span.
type PhraseMatch struct {
	SentenceID string              `json:"id_sen"`
	Matched    []domain.WordRecord `json:"matched"`
	Source     align.SourceView    `json:"source"`
	Target     align.TargetView    `json:"target"`
}

// PhraseResult is the outcome of a phrase search.
type PhraseResult struct {
	Query string        `json:"query"`
	Items []PhraseMatch `json:"items"`
	Total int           `json:"total"`
}

// totalPages computes ceil(total/limit) with a floor of 1 page.
func totalPages(total, limit int) int {
	if limit <= 0 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}
