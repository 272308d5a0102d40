package curation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vncorpora/bicorpus-backend/internal/corpus/align"
	"github.com/vncorpora/bicorpus-backend/internal/corpus/ident"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// validSentenceNumber reports whether s is a bare 6-digit sentence number.
func validSentenceNumber(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// CreatePairInput contains the data to open a new draft sentence pair.
type CreatePairInput struct {
	SentenceID string `json:"sentence_id"`
	SourceText string `json:"source_text"`
	TargetText string `json:"target_text"`
	LangPair   string `json:"lang_pair"`
}

func (in *CreatePairInput) Validate() error {
	var errs []domain.FieldError

	if !validSentenceNumber(in.SentenceID) {
		errs = append(errs, domain.FieldError{Field: "sentence_id", Message: "must be a 6-digit sentence number"})
	}
	if strings.TrimSpace(in.SourceText) == "" {
		errs = append(errs, domain.FieldError{Field: "source_text", Message: "is required"})
	}
	if strings.TrimSpace(in.TargetText) == "" {
		errs = append(errs, domain.FieldError{Field: "target_text", Message: "is required"})
	}
	if in.LangPair == "" {
		errs = append(errs, domain.FieldError{Field: "lang_pair", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AnalysisRow is one annotated word as submitted by a curator. The raw
// identifier carries sentence and position; both are decoded server-side.
type AnalysisRow struct {
	ID       string `json:"id"`
	Word     string `json:"word"`
	Lemma    string `json:"lemma"`
	Links    string `json:"links"`
	Morph    string `json:"morph"`
	POS      string `json:"pos"`
	Phrase   string `json:"phrase"`
	Grm      string `json:"grm"`
	NER      string `json:"ner"`
	Semantic string `json:"semantic"`
	LangCode string `json:"lang_code"`
}

// SaveAnalysisInput replaces the full draft analysis for one pair: every
// word row of both languages, submitted together.
type SaveAnalysisInput struct {
	PairID string        `json:"pair_id"`
	Rows   []AnalysisRow `json:"rows"`
}

func (in *SaveAnalysisInput) Validate() error {
	var errs []domain.FieldError

	if in.PairID == "" {
		errs = append(errs, domain.FieldError{Field: "pair_id", Message: "is required"})
	}
	if len(in.Rows) == 0 {
		errs = append(errs, domain.FieldError{Field: "rows", Message: "must contain at least one row"})
	}
	for i, row := range in.Rows {
		field := fmt.Sprintf("rows[%d]", i)
		if _, err := ident.Parse(row.ID); err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "invalid identifier"})
			continue
		}
		if strings.TrimSpace(row.Word) == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "word is required"})
		}
		if row.LangCode == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "lang_code is required"})
		}
		if row.Links != "" {
			if _, err := align.ParseLinks(row.Links); err != nil {
				errs = append(errs, domain.FieldError{Field: field, Message: "malformed links"})
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListPendingInput pages through pairs awaiting review.
type ListPendingInput struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}
