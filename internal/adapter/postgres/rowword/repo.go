// Package rowword implements the draft word-row repository using PostgreSQL.
package rowword

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/vncorpora/bicorpus-backend/internal/adapter/postgres"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

const table = "row_words"

var columns = []string{
	"id", "main_id", "sentence_id", "position",
	"word", "lemma", "links", "morph", "pos", "phrase", "grm", "ner", "semantic",
	"lang_code", "lang_pair",
	"created_by", "approved_by", "created_at", "updated_at",
}

// copyColumns excludes created_at/updated_at, which default in the schema.
var copyColumns = []string{
	"id", "main_id", "sentence_id", "position",
	"word", "lemma", "links", "morph", "pos", "phrase", "grm", "ner", "semantic",
	"lang_code", "lang_pair", "created_by",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides draft word-row persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new draft word-row repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns one word row by its full identifier.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.WordRecord, error) {
	query := psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rec domain.WordRecord
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "row_word", id)
	}
	return &rec, nil
}

// Find returns one page of word rows matching the filter, plus the total
// match count for pagination.
func (r *Repo) Find(ctx context.Context, f domain.WordFilter) ([]domain.WordRecord, int, error) {
	f.Normalize()
	where := filterConditions(f)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := pgxscan.Get(ctx, r.q(ctx), &total, countSQL, countArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "row_word", "count")
	}

	pageSQL, pageArgs, err := psql.Select(columns...).From(table).
		Where(where).
		OrderBy("sentence_id", "position").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build page query: %w", err)
	}

	var recs []domain.WordRecord
	if err := pgxscan.Select(ctx, r.q(ctx), &recs, pageSQL, pageArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "row_word", "page")
	}
	return recs, total, nil
}

// ListByLang returns every row of one language in one corpus batch, ordered
// by sentence then position. Used by the sentence indexer and the exporter.
func (r *Repo) ListByLang(ctx context.Context, langPair, langCode string) ([]domain.WordRecord, error) {
	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{"lang_pair": langPair, "lang_code": langCode}).
		OrderBy("sentence_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var recs []domain.WordRecord
	if err := pgxscan.Select(ctx, r.q(ctx), &recs, sql, args...); err != nil {
		return nil, postgres.MapError(err, "row_word", langPair+"/"+langCode)
	}
	return recs, nil
}

// ListBySentenceIDs returns all rows of the given languages belonging to the
// given sentences, ordered by language, sentence and position.
func (r *Repo) ListBySentenceIDs(ctx context.Context, langPair string, langCodes, sentenceIDs []string) ([]domain.WordRecord, error) {
	if len(sentenceIDs) == 0 {
		return []domain.WordRecord{}, nil
	}

	sql, args, err := psql.Select(columns...).From(table).
		Where(squirrel.Eq{
			"lang_pair":   langPair,
			"lang_code":   langCodes,
			"sentence_id": sentenceIDs,
		}).
		OrderBy("lang_code", "sentence_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var recs []domain.WordRecord
	if err := pgxscan.Select(ctx, r.q(ctx), &recs, sql, args...); err != nil {
		return nil, postgres.MapError(err, "row_word", langPair)
	}
	return recs, nil
}

// BulkInsert copies rows into the draft table via the COPY protocol.
// Returns the number of rows written.
func (r *Repo) BulkInsert(ctx context.Context, recs []domain.WordRecord) (int64, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	src := pgx.CopyFromSlice(len(recs), func(i int) ([]any, error) {
		w := recs[i]
		return []any{
			w.ID, w.MainID, w.SentenceID, w.Position,
			w.Word, w.Lemma, w.Links, w.Morph, w.POS, w.Phrase, w.Grm, w.NER, w.Semantic,
			w.LangCode, w.LangPair, w.CreatedBy,
		}, nil
	})

	n, err := r.q(ctx).CopyFrom(ctx, pgx.Identifier{table}, copyColumns, src)
	if err != nil {
		return 0, postgres.MapError(err, "row_word", "bulk")
	}
	return n, nil
}

// UpdateAnnotations overwrites the mutable annotation columns of one row.
func (r *Repo) UpdateAnnotations(ctx context.Context, rec *domain.WordRecord) error {
	sql, args, err := psql.Update(table).
		Set("word", rec.Word).
		Set("lemma", rec.Lemma).
		Set("links", rec.Links).
		Set("morph", rec.Morph).
		Set("pos", rec.POS).
		Set("phrase", rec.Phrase).
		Set("grm", rec.Grm).
		Set("ner", rec.NER).
		Set("semantic", rec.Semantic).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "row_word", rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "row_word", rec.ID)
	}
	return nil
}

// DeleteBySentenceID removes every draft row of one sentence in one batch,
// both languages.
func (r *Repo) DeleteBySentenceID(ctx context.Context, langPair, sentenceID string) (int64, error) {
	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{"lang_pair": langPair, "sentence_id": sentenceID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "row_word", sentenceID)
	}
	return tag.RowsAffected(), nil
}

// DistinctTagValues returns the sorted distinct non-empty values of one
// annotation column.
func (r *Repo) DistinctTagValues(ctx context.Context, langPair, langCode string, field domain.TagField) ([]string, error) {
	col := field.Column()

	sql, args, err := psql.Select("DISTINCT " + col).From(table).
		Where(squirrel.Eq{"lang_pair": langPair, "lang_code": langCode}).
		Where(squirrel.NotEq{col: ""}).
		OrderBy(col).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var values []string
	if err := pgxscan.Select(ctx, r.q(ctx), &values, sql, args...); err != nil {
		return nil, postgres.MapError(err, "row_word", col)
	}
	return values, nil
}

// filterConditions translates a WordFilter into squirrel conditions.
func filterConditions(f domain.WordFilter) squirrel.And {
	cond := squirrel.And{}

	if f.LangPair != "" {
		cond = append(cond, squirrel.Eq{"lang_pair": f.LangPair})
	}
	if f.LangCode != "" {
		cond = append(cond, squirrel.Eq{"lang_code": f.LangCode})
	}
	if f.Search != nil && *f.Search != "" {
		cond = append(cond, squirrel.ILike{"word": "%" + *f.Search + "%"})
	}
	if f.ExactWord != nil && *f.ExactWord != "" {
		cond = append(cond, squirrel.Eq{"word": *f.ExactWord})
	}
	if f.ExactMorph != nil && *f.ExactMorph != "" {
		cond = append(cond, squirrel.Eq{"morph": *f.ExactMorph})
	}
	if f.Tag != nil {
		cond = append(cond, squirrel.Eq{f.Tag.Column(): f.TagValue})
	}

	return cond
}
