package curation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vncorpora/bicorpus-backend/internal/corpus/ident"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// SaveAnalysis replaces the draft word rows of a pair with the submitted
// analysis and moves the pair to PENDING review. The whole replacement
// runs in one transaction so reviewers never see a half-written sentence.
func (s *Service) SaveAnalysis(ctx context.Context, input SaveAnalysisInput) (*domain.SentencePair, error) {
	userID, role, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	pairID, err := uuid.Parse(input.PairID)
	if err != nil {
		return nil, domain.NewValidationError("pair_id", "must be a valid UUID")
	}

	pair, err := s.pairs.GetByID(ctx, pairID)
	if err != nil {
		return nil, fmt.Errorf("get sentence pair: %w", err)
	}
	if pair.CreatedBy != userID && role != domain.UserRoleAdmin {
		return nil, fmt.Errorf("pair belongs to another user: %w", domain.ErrForbidden)
	}
	if pair.Status == domain.PairStatusApproved {
		return nil, fmt.Errorf("pair already approved: %w", domain.ErrConflict)
	}

	recs, err := buildRecords(pair, input.Rows, userID)
	if err != nil {
		return nil, err
	}

	var updated *domain.SentencePair
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.draft.DeleteBySentenceID(ctx, pair.LangPair, pair.SentenceID); err != nil {
			return fmt.Errorf("clear draft rows: %w", err)
		}
		if _, err := s.draft.BulkInsert(ctx, recs); err != nil {
			return fmt.Errorf("insert draft rows: %w", err)
		}
		updated, err = s.pairs.UpdateStatus(ctx, pairID, domain.PairStatusPending, nil)
		if err != nil {
			return fmt.Errorf("update pair status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "analysis saved",
		slog.String("pair_id", pairID.String()),
		slog.Int("rows", len(recs)),
	)
	return updated, nil
}

// buildRecords decodes submitted rows into word records bound to the pair.
// Every identifier must resolve to the pair's sentence number.
func buildRecords(pair *domain.SentencePair, rows []AnalysisRow, userID uuid.UUID) ([]domain.WordRecord, error) {
	recs := make([]domain.WordRecord, 0, len(rows))
	for i, row := range rows {
		id, err := ident.Parse(row.ID)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("rows[%d]", i), "invalid identifier")
		}
		if id.SentenceID != pair.SentenceID {
			return nil, domain.NewValidationError(fmt.Sprintf("rows[%d]", i), "identifier belongs to another sentence")
		}

		links := row.Links
		if links == "" {
			links = domain.UnalignedLinks
		}
		creator := userID
		recs = append(recs, domain.WordRecord{
			ID:         id.Prefix + id.MainID,
			MainID:     id.MainID,
			SentenceID: id.SentenceID,
			Position:   id.Position,
			Word:       row.Word,
			Lemma:      row.Lemma,
			Links:      links,
			Morph:      row.Morph,
			POS:        row.POS,
			Phrase:     row.Phrase,
			Grm:        row.Grm,
			NER:        row.NER,
			Semantic:   row.Semantic,
			LangCode:   row.LangCode,
			LangPair:   pair.LangPair,
			CreatedBy:  &creator,
		})
	}
	return recs, nil
}
