// Package pair implements the sentence-pair curation repository using
// PostgreSQL.
package pair

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/vncorpora/bicorpus-backend/internal/adapter/postgres"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

const table = "sentence_pairs"

var columns = []string{
	"id", "sentence_id", "source_text", "target_text", "lang_pair",
	"status", "created_by", "approved_by", "created_at", "updated_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides sentence-pair persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sentence-pair repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts a new sentence pair and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.SentencePair) (*domain.SentencePair, error) {
	sql, args, err := psql.Insert(table).
		Columns("sentence_id", "source_text", "target_text", "lang_pair", "status", "created_by").
		Values(p.SentenceID, p.SourceText, p.TargetText, p.LangPair, p.Status, p.CreatedBy).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var created domain.SentencePair
	if err := pgxscan.Get(ctx, r.q(ctx), &created, sql, args...); err != nil {
		return nil, postgres.MapError(err, "sentence_pair", p.SentenceID)
	}
	return &created, nil
}

// GetByID returns one sentence pair by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
	sql, args, err := psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p domain.SentencePair
	if err := pgxscan.Get(ctx, r.q(ctx), &p, sql, args...); err != nil {
		return nil, postgres.MapError(err, "sentence_pair", id.String())
	}
	return &p, nil
}

// GetBySentenceID returns the pair of one sentence in one corpus batch.
func (r *Repo) GetBySentenceID(ctx context.Context, langPair, sentenceID string) (*domain.SentencePair, error) {
	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"lang_pair": langPair, "sentence_id": sentenceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p domain.SentencePair
	if err := pgxscan.Get(ctx, r.q(ctx), &p, sql, args...); err != nil {
		return nil, postgres.MapError(err, "sentence_pair", sentenceID)
	}
	return &p, nil
}

// ListByCreator returns every pair created by one user, newest first.
func (r *Repo) ListByCreator(ctx context.Context, createdBy uuid.UUID) ([]domain.SentencePair, error) {
	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"created_by": createdBy}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var pairs []domain.SentencePair
	if err := pgxscan.Select(ctx, r.q(ctx), &pairs, sql, args...); err != nil {
		return nil, postgres.MapError(err, "sentence_pair", createdBy.String())
	}
	return pairs, nil
}

// ListByStatus returns one page of pairs in the given status, oldest first
// so reviewers see the longest-waiting pairs at the top.
func (r *Repo) ListByStatus(ctx context.Context, status domain.PairStatus, limit, offset int) ([]domain.SentencePair, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	countSQL, countArgs, err := psql.Select("count(*)").From(table).
		Where(squirrel.Eq{"status": status}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := pgxscan.Get(ctx, r.q(ctx), &total, countSQL, countArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "sentence_pair", string(status))
	}

	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build page query: %w", err)
	}

	var pairs []domain.SentencePair
	if err := pgxscan.Select(ctx, r.q(ctx), &pairs, sql, args...); err != nil {
		return nil, 0, postgres.MapError(err, "sentence_pair", string(status))
	}
	return pairs, total, nil
}

// UpdateStatus moves a pair to a new status, stamping the actor when the
// transition is a review decision.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PairStatus, actor *uuid.UUID) (*domain.SentencePair, error) {
	update := psql.Update(table).
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())
	if actor != nil {
		update = update.Set("approved_by", *actor)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p domain.SentencePair
	if err := pgxscan.Get(ctx, r.q(ctx), &p, sql, args...); err != nil {
		return nil, postgres.MapError(err, "sentence_pair", id.String())
	}
	return &p, nil
}

// Delete removes one pair by primary key.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "sentence_pair", id.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "sentence_pair", id.String())
	}
	return nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
