// Package masterrow implements the approved (master) word-row repository
// using PostgreSQL.
package masterrow

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/vncorpora/bicorpus-backend/internal/adapter/postgres"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

const table = "master_row_words"

var columns = []string{
	"id", "main_id", "sentence_id", "position",
	"word", "lemma", "links", "morph", "pos", "phrase", "grm", "ner", "semantic",
	"lang_code", "lang_pair",
	"created_by", "approved_by", "created_at", "updated_at",
}

var copyColumns = []string{
	"id", "main_id", "sentence_id", "position",
	"word", "lemma", "links", "morph", "pos", "phrase", "grm", "ner", "semantic",
	"lang_code", "lang_pair", "created_by", "approved_by",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides master word-row persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new master word-row repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetByID returns one master row by its full identifier.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.WordRecord, error) {
	sql, args, err := psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rec domain.WordRecord
	if err := pgxscan.Get(ctx, r.q(ctx), &rec, sql, args...); err != nil {
		return nil, postgres.MapError(err, "master_row_word", id)
	}
	return &rec, nil
}

// Find returns one page of master rows matching the filter, plus the total
// match count.
func (r *Repo) Find(ctx context.Context, f domain.WordFilter) ([]domain.WordRecord, int, error) {
	f.Normalize()
	where := filterConditions(f)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := pgxscan.Get(ctx, r.q(ctx), &total, countSQL, countArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "master_row_word", "count")
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
		return nil, 0, postgres.MapError(err, "master_row_word", "page")
	}
	return recs, total, nil
}

// PageSentenceIDs returns one page of distinct sentence ids for one language
// of one corpus batch, ordered, plus the total sentence count. This drives
// the word-list page of the reading view.
func (r *Repo) PageSentenceIDs(ctx context.Context, langPair, langCode string, page, limit int) ([]string, int, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	where := squirrel.Eq{"lang_pair": langPair, "lang_code": langCode}

	countSQL, countArgs, err := psql.Select("count(DISTINCT sentence_id)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := pgxscan.Get(ctx, r.q(ctx), &total, countSQL, countArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "master_row_word", "sentence count")
	}

	pageSQL, pageArgs, err := psql.Select("DISTINCT sentence_id").From(table).
		Where(where).
		OrderBy("sentence_id").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build page query: %w", err)
	}

	var ids []string
	if err := pgxscan.Select(ctx, r.q(ctx), &ids, pageSQL, pageArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "master_row_word", "sentence page")
	}
	return ids, total, nil
}

// ListByLang returns every master row of one language in one corpus batch,
// ordered by sentence then position.
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
		return nil, postgres.MapError(err, "master_row_word", langPair+"/"+langCode)
	}
	return recs, nil
}

// ListBySentenceIDs returns all master rows of the given languages belonging
// to the given sentences, ordered by language, sentence and position.
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
		return nil, postgres.MapError(err, "master_row_word", langPair)
	}
	return recs, nil
}

// BulkInsert copies rows into the master table via the COPY protocol.
func (r *Repo) BulkInsert(ctx context.Context, recs []domain.WordRecord) (int64, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	src := pgx.CopyFromSlice(len(recs), func(i int) ([]any, error) {
		w := recs[i]
		return []any{
			w.ID, w.MainID, w.SentenceID, w.Position,
			w.Word, w.Lemma, w.Links, w.Morph, w.POS, w.Phrase, w.Grm, w.NER, w.Semantic,
			w.LangCode, w.LangPair, w.CreatedBy, w.ApprovedBy,
		}, nil
	})

	n, err := r.q(ctx).CopyFrom(ctx, pgx.Identifier{table}, copyColumns, src)
	if err != nil {
		return 0, postgres.MapError(err, "master_row_word", "bulk")
	}
	return n, nil
}

// insertFromDraftSQL copies every draft row of one sentence into the master
// table, stamping the approver. Re-approving overwrites the previous master
// copy of the same rows.
const insertFromDraftSQL = `
INSERT INTO master_row_words (
    id, main_id, sentence_id, position,
    word, lemma, links, morph, pos, phrase, grm, ner, semantic,
    lang_code, lang_pair, created_by, approved_by
)
SELECT
    id, main_id, sentence_id, position,
    word, lemma, links, morph, pos, phrase, grm, ner, semantic,
    lang_code, lang_pair, created_by, $3
FROM row_words
WHERE sentence_id = $1 AND lang_pair = $2
ON CONFLICT (lang_pair, id) DO UPDATE SET
    word        = EXCLUDED.word,
    lemma       = EXCLUDED.lemma,
    links       = EXCLUDED.links,
    morph       = EXCLUDED.morph,
    pos         = EXCLUDED.pos,
    phrase      = EXCLUDED.phrase,
    grm         = EXCLUDED.grm,
    ner         = EXCLUDED.ner,
    semantic    = EXCLUDED.semantic,
    approved_by = EXCLUDED.approved_by,
    updated_at  = now()`

// InsertFromDraft promotes every draft row of one sentence to the master
// table. Returns the number of rows promoted.
func (r *Repo) InsertFromDraft(ctx context.Context, sentenceID, langPair string, approvedBy uuid.UUID) (int64, error) {
	tag, err := r.q(ctx).Exec(ctx, insertFromDraftSQL, sentenceID, langPair, approvedBy)
	if err != nil {
		return 0, postgres.MapError(err, "master_row_word", sentenceID)
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
		return nil, postgres.MapError(err, "master_row_word", col)
	}
	return values, nil
}

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
