package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnalignedLinks is the sentinel Links value for a word that takes part in
// no alignment link (e.g. punctuation dropped in translation).
const UnalignedLinks = "-"

// WordRecord is one annotated word occurrence in one language, at one
// position in one sentence. The raw identifier is the canonical source of
// SentenceID and Position; both are decoded once at ingestion time and
// stored alongside it, so downstream algorithms never re-parse strings.
type WordRecord struct {
	ID         string `db:"id"`          // full identifier, e.g. "VD01821301"
	MainID     string `db:"main_id"`     // 8-digit main id, e.g. "01821301"
	SentenceID string `db:"sentence_id"` // 6-digit sentence number, e.g. "018213"
	Position   int    `db:"position"`    // 1-based intra-sentence ordinal

	Word     string `db:"word"`
	Lemma    string `db:"lemma"`
	Links    string `db:"links"` // comma-separated 1-based positions in the other language, or "-"
	Morph    string `db:"morph"`
	POS      string `db:"pos"`
	Phrase   string `db:"phrase"`
	Grm      string `db:"grm"`
	NER      string `db:"ner"`
	Semantic string `db:"semantic"`

	LangCode string `db:"lang_code"`
	LangPair string `db:"lang_pair"`

	CreatedBy  *uuid.UUID `db:"created_by"`
	ApprovedBy *uuid.UUID `db:"approved_by"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// IsAligned reports whether the record carries at least one alignment link.
func (w *WordRecord) IsAligned() bool {
	return w.Links != "" && w.Links != UnalignedLinks
}

// SentencePair is a draft curation unit: one source/target sentence pair
// going through the draft → pending → approved/rejected workflow. Draft
// bookkeeping lives in PostgreSQL, never in process memory.
type SentencePair struct {
	ID         uuid.UUID  `db:"id"`
	SentenceID string     `db:"sentence_id"`
	SourceText string     `db:"source_text"`
	TargetText string     `db:"target_text"`
	LangPair   string     `db:"lang_pair"`
	Status     PairStatus `db:"status"`
	CreatedBy  uuid.UUID  `db:"created_by"`
	ApprovedBy *uuid.UUID `db:"approved_by"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// User is an account that uploads and curates corpus data.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         UserRole  `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// IsAdmin reports whether the user may approve pairs and import master data.
func (u *User) IsAdmin() bool { return u.Role == UserRoleAdmin }
