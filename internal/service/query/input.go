package query

import (
	"strings"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// ListWordsInput holds parameters for paginated word listing.
type ListWordsInput struct {
	Source domain.RecordSource
	Filter domain.WordFilter
}

// Validate validates the listing input.
func (i ListWordsInput) Validate() error {
	var errs []domain.FieldError

	if !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be draft or master"})
	}
	if i.Filter.LangPair == "" {
		errs = append(errs, domain.FieldError{Field: "lang_pair", Message: "required"})
	}
	if i.Filter.Tag != nil && !i.Filter.Tag.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "unknown tag field"})
	}
	if i.Filter.Tag != nil && i.Filter.TagValue == "" {
		errs = append(errs, domain.FieldError{Field: "tag_value", Message: "required with tag"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AlignmentViewInput holds parameters for the paginated reading view.
type AlignmentViewInput struct {
	LangPair   string
	SourceLang string
	TargetLang string
	Page       int
	Limit      int
}

// Validate validates the reading-view input.
func (i AlignmentViewInput) Validate() error {
	var errs []domain.FieldError

	if i.LangPair == "" {
		errs = append(errs, domain.FieldError{Field: "lang_pair", Message: "required"})
	}
	if i.SourceLang == "" {
		errs = append(errs, domain.FieldError{Field: "source_lang", Message: "required"})
	}
	if i.TargetLang == "" {
		errs = append(errs, domain.FieldError{Field: "target_lang", Message: "required"})
	}
	if i.SourceLang != "" && i.SourceLang == i.TargetLang {
		errs = append(errs, domain.FieldError{Field: "target_lang", Message: "must differ from source_lang"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SentenceAlignmentInput holds parameters for one sentence's word-level
// alignment.
type SentenceAlignmentInput struct {
	LangPair   string
	SentenceID string
	SourceLang string
	TargetLang string
}

// Validate validates the sentence-alignment input.
func (i SentenceAlignmentInput) Validate() error {
	var errs []domain.FieldError

	if i.LangPair == "" {
		errs = append(errs, domain.FieldError{Field: "lang_pair", Message: "required"})
	}
	if i.SentenceID == "" {
		errs = append(errs, domain.FieldError{Field: "sentence_id", Message: "required"})
	}
	if i.SourceLang == "" {
		errs = append(errs, domain.FieldError{Field: "source_lang", Message: "required"})
	}
	if i.TargetLang == "" {
		errs = append(errs, domain.FieldError{Field: "target_lang", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchInput holds parameters for word and phrase search. When IsMorph is
// set the query matches the morphological form instead of the surface word.
type SearchInput struct {
	Source     domain.RecordSource
	LangPair   string
	SourceLang string
	TargetLang string
	Query      string
	IsMorph    bool
	Limit      int
}

// Validate validates the search input.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be draft or master"})
	}
	if i.LangPair == "" {
		errs = append(errs, domain.FieldError{Field: "lang_pair", Message: "required"})
	}
	if i.SourceLang == "" {
		errs = append(errs, domain.FieldError{Field: "source_lang", Message: "required"})
	}
	if i.TargetLang == "" {
		errs = append(errs, domain.FieldError{Field: "target_lang", Message: "required"})
	}
	if strings.TrimSpace(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TagValuesInput holds parameters for a tag inventory.
type TagValuesInput struct {
	Source   domain.RecordSource
	LangPair string
	LangCode string
	Field    string
}

// Validate validates the tag-inventory input and resolves the field.
func (i TagValuesInput) Validate() (domain.TagField, error) {
	var errs []domain.FieldError

	if !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be draft or master"})
	}
	if i.LangPair == "" {
		errs = append(errs, domain.FieldError{Field: "lang_pair", Message: "required"})
	}
	if i.LangCode == "" {
		errs = append(errs, domain.FieldError{Field: "lang_code", Message: "required"})
	}

	field := domain.TagField(i.Field)
	if !field.IsValid() {
		errs = append(errs, domain.FieldError{Field: "field", Message: "unknown tag field"})
	}

	if len(errs) > 0 {
		return "", &domain.ValidationError{Errors: errs}
	}
	return field, nil
}
