package curation

import (
	"context"
	"fmt"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// PendingPage is one page of pairs awaiting review.
type PendingPage struct {
	Items      []domain.SentencePair `json:"items"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"total_pages"`
}

// ListMine returns the calling user's own sentence pairs, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.SentencePair, error) {
	userID, _, err := identity(ctx)
	if err != nil {
		return nil, err
	}

	pairs, err := s.pairs.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pairs by creator: %w", err)
	}
	return pairs, nil
}

// ListPending returns a page of pairs in PENDING status. Admin only.
func (s *Service) ListPending(ctx context.Context, input ListPendingInput) (*PendingPage, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = domain.DefaultPageLimit
	}
	if limit > domain.MaxPageLimit {
		limit = domain.MaxPageLimit
	}

	items, total, err := s.pairs.ListByStatus(ctx, domain.PairStatusPending, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list pending pairs: %w", err)
	}

	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	return &PendingPage{Items: items, Total: total, Page: page, TotalPages: totalPages}, nil
}

// GetPair returns one pair by id. Owners see their own pairs; admins see all.
func (s *Service) GetPair(ctx context.Context, pairID string) (*domain.SentencePair, error) {
	userID, role, err := identity(ctx)
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
	if pair.CreatedBy != userID && role != domain.UserRoleAdmin {
		return nil, fmt.Errorf("pair belongs to another user: %w", domain.ErrForbidden)
	}
	return pair, nil
}
