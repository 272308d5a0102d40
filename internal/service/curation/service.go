// Package curation implements the draft sentence-pair workflow: create,
// annotate, submit, review, promote to master.
package curation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
	"github.com/vncorpora/bicorpus-backend/pkg/ctxutil"
)

// pairRepo defines the sentence-pair repository interface needed by the
// curation service.
type pairRepo interface {
	Create(ctx context.Context, p *domain.SentencePair) (*domain.SentencePair, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error)
	GetBySentenceID(ctx context.Context, langPair, sentenceID string) (*domain.SentencePair, error)
	ListByCreator(ctx context.Context, createdBy uuid.UUID) ([]domain.SentencePair, error)
	ListByStatus(ctx context.Context, status domain.PairStatus, limit, offset int) ([]domain.SentencePair, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PairStatus, actor *uuid.UUID) (*domain.SentencePair, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// draftRepo defines the draft word-row repository interface needed by the
// curation service.
type draftRepo interface {
	GetByID(ctx context.Context, id string) (*domain.WordRecord, error)
	BulkInsert(ctx context.Context, recs []domain.WordRecord) (int64, error)
	UpdateAnnotations(ctx context.Context, rec *domain.WordRecord) error
	DeleteBySentenceID(ctx context.Context, langPair, sentenceID string) (int64, error)
}

// masterRepo defines the master word-row repository interface needed by the
// curation service.
type masterRepo interface {
	InsertFromDraft(ctx context.Context, sentenceID, langPair string, approvedBy uuid.UUID) (int64, error)
}

// txManager defines the transaction manager interface needed by the
// curation service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements curation operations.
type Service struct {
	log    *slog.Logger
	pairs  pairRepo
	draft  draftRepo
	master masterRepo
	tx     txManager
}

// NewService creates a new curation service instance.
func NewService(logger *slog.Logger, pairs pairRepo, draft draftRepo, master masterRepo, tx txManager) *Service {
	return &Service{
		log:    logger.With("service", "curation"),
		pairs:  pairs,
		draft:  draft,
		master: master,
		tx:     tx,
	}
}

// identity extracts the acting user from the context. Returns
// ErrUnauthorized when the context carries no user.
func identity(ctx context.Context) (uuid.UUID, domain.UserRole, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, domain.UserRole(ctxutil.UserRoleFromCtx(ctx)), nil
}

// requireAdmin extracts the acting user and rejects non-admins.
func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, role, err := identity(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if role != domain.UserRoleAdmin {
		return uuid.Nil, fmt.Errorf("admin role required: %w", domain.ErrForbidden)
	}
	return userID, nil
}
