package curation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// DeletePair removes a pair and its draft word rows. Owners may delete
// their own unapproved pairs; admins may delete any unapproved pair.
// Approved pairs are immutable history and cannot be deleted here.
func (s *Service) DeletePair(ctx context.Context, pairID string) error {
	userID, role, err := identity(ctx)
	if err != nil {
		return err
	}
	id, err := parsePairID(pairID)
	if err != nil {
		return err
	}

	pair, err := s.pairs.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get sentence pair: %w", err)
	}
	if pair.CreatedBy != userID && role != domain.UserRoleAdmin {
		return fmt.Errorf("pair belongs to another user: %w", domain.ErrForbidden)
	}
	if pair.Status == domain.PairStatusApproved {
		return fmt.Errorf("approved pair cannot be deleted: %w", domain.ErrConflict)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.draft.DeleteBySentenceID(ctx, pair.LangPair, pair.SentenceID); err != nil {
			return fmt.Errorf("delete draft rows: %w", err)
		}
		if err := s.pairs.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete pair: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "pair deleted",
		slog.String("pair_id", id.String()),
		slog.String("sentence_id", pair.SentenceID),
	)
	return nil
}
