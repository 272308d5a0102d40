package curation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vncorpora/bicorpus-backend/internal/corpus/align"
	"github.com/vncorpora/bicorpus-backend/internal/corpus/ident"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// UpdateWordInput edits the annotation fields of a single draft row.
type UpdateWordInput struct {
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
}

func (in *UpdateWordInput) Validate() error {
	var errs []domain.FieldError

	if _, err := ident.Parse(in.ID); err != nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "invalid identifier"})
	}
	if strings.TrimSpace(in.Word) == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "is required"})
	}
	if in.Links != "" {
		if _, err := align.ParseLinks(in.Links); err != nil {
			errs = append(errs, domain.FieldError{Field: "links", Message: "malformed links"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateWord edits one draft row in place. The caller must own the row's
// sentence pair or be an admin; rows of an approved pair are immutable.
// Rows imported outside the pair workflow have no owner and take an admin.
func (s *Service) UpdateWord(ctx context.Context, input UpdateWordInput) (*domain.WordRecord, error) {
	userID, role, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id, err := ident.Parse(input.ID)
	if err != nil {
		return nil, err
	}
	cleanID := id.Prefix + id.MainID

	rec, err := s.draft.GetByID(ctx, cleanID)
	if err != nil {
		return nil, fmt.Errorf("get draft row: %w", err)
	}

	pair, err := s.pairs.GetBySentenceID(ctx, rec.LangPair, rec.SentenceID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if role != domain.UserRoleAdmin {
			return nil, fmt.Errorf("row has no owning pair: %w", domain.ErrForbidden)
		}
	case err != nil:
		return nil, fmt.Errorf("get sentence pair: %w", err)
	default:
		if pair.CreatedBy != userID && role != domain.UserRoleAdmin {
			return nil, domain.ErrForbidden
		}
		if pair.Status == domain.PairStatusApproved {
			return nil, fmt.Errorf("approved pair cannot be edited: %w", domain.ErrConflict)
		}
	}

	rec.Word = strings.TrimSpace(input.Word)
	rec.Lemma = strings.TrimSpace(input.Lemma)
	rec.Morph = strings.TrimSpace(input.Morph)
	rec.POS = strings.TrimSpace(input.POS)
	rec.Phrase = strings.TrimSpace(input.Phrase)
	rec.Grm = strings.TrimSpace(input.Grm)
	rec.NER = strings.TrimSpace(input.NER)
	rec.Semantic = strings.TrimSpace(input.Semantic)
	if input.Links == "" {
		rec.Links = domain.UnalignedLinks
	} else {
		rec.Links = input.Links
	}

	if err := s.draft.UpdateAnnotations(ctx, rec); err != nil {
		return nil, fmt.Errorf("update draft row: %w", err)
	}

	s.log.InfoContext(ctx, "draft row updated",
		slog.String("id", rec.ID),
		slog.String("lang_pair", rec.LangPair),
	)
	return rec, nil
}
