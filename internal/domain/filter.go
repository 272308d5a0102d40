package domain

// WordFilter contains filtering/pagination parameters for word queries.
type WordFilter struct {
	// LangCode filters by language ("vi", "en"). Empty means all languages.
	LangCode string

	// LangPair restricts the query to one parallel-corpus batch. Records
	// from different pairs are never cross-matched.
	LangPair string

	// Search performs a substring match on the word column.
	Search *string

	// ExactWord matches the word column exactly (spaces already replaced
	// by underscores by the caller).
	ExactWord *string

	// ExactMorph matches the morph column case-insensitively.
	ExactMorph *string

	// Tag filters on one annotation column; TagField is a closed enum.
	Tag      *TagField
	TagValue string

	// Page is 1-based; Limit is the page size.
	Page  int
	Limit int
}

// DefaultPageLimit and MaxPageLimit bound page sizes across all word
// queries.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 200
)

// Normalize applies defaults and clamps values.
func (f *WordFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
}

// Offset returns the row offset for the current page.
func (f *WordFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
