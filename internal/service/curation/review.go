package curation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

func parsePairID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("pair_id", "must be a valid UUID")
	}
	return id, nil
}

// Approve promotes a pending pair's draft rows into the master tier and
// marks the pair APPROVED. Admin only. Promotion and the status change run
// in one transaction. Re-approving an already approved pair is a conflict.
func (s *Service) Approve(ctx context.Context, pairID string) (*domain.SentencePair, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parsePairID(pairID)
	if err != nil {
		return nil, err
	}

	pair, err := s.pairs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sentence pair: %w", err)
	}
	if pair.Status != domain.PairStatusPending {
		return nil, fmt.Errorf("pair is %s, not PENDING: %w", pair.Status, domain.ErrConflict)
	}

	var (
		updated  *domain.SentencePair
		promoted int64
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		promoted, err = s.master.InsertFromDraft(ctx, pair.SentenceID, pair.LangPair, adminID)
		if err != nil {
			return fmt.Errorf("promote draft rows: %w", err)
		}
		updated, err = s.pairs.UpdateStatus(ctx, id, domain.PairStatusApproved, &adminID)
		if err != nil {
			return fmt.Errorf("update pair status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pair approved",
		slog.String("pair_id", id.String()),
		slog.String("sentence_id", pair.SentenceID),
		slog.Int64("rows_promoted", promoted),
	)
	return updated, nil
}

// Reject sends a pending pair back to its creator and discards its draft
// rows. Admin only. The pair itself survives so the creator can redo the
// analysis from the same sentence.
func (s *Service) Reject(ctx context.Context, pairID string) (*domain.SentencePair, error) {
	adminID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parsePairID(pairID)
	if err != nil {
		return nil, err
	}

	pair, err := s.pairs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sentence pair: %w", err)
	}
	if pair.Status != domain.PairStatusPending {
		return nil, fmt.Errorf("pair is %s, not PENDING: %w", pair.Status, domain.ErrConflict)
	}

	var (
		updated *domain.SentencePair
		deleted int64
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		deleted, err = s.draft.DeleteBySentenceID(ctx, pair.LangPair, pair.SentenceID)
		if err != nil {
			return fmt.Errorf("delete draft rows: %w", err)
		}
		updated, err = s.pairs.UpdateStatus(ctx, id, domain.PairStatusRejected, &adminID)
		if err != nil {
			return fmt.Errorf("update pair status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pair rejected",
		slog.String("pair_id", id.String()),
		slog.Int64("rows_deleted", deleted),
	)
	return updated, nil
}
