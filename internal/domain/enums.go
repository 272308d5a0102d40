package domain

// PairStatus represents the curation state of a sentence pair.
type PairStatus string

const (
	PairStatusDraft    PairStatus = "DRAFT"
	PairStatusPending  PairStatus = "PENDING"
	PairStatusApproved PairStatus = "APPROVED"
	PairStatusRejected PairStatus = "REJECTED"
)

func (s PairStatus) String() string { return string(s) }

func (s PairStatus) IsValid() bool {
	switch s {
	case PairStatusDraft, PairStatusPending, PairStatusApproved, PairStatusRejected:
		return true
	}
	return false
}

// UserRole distinguishes regular annotators from curators.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// TagField is the closed set of annotation columns a query may filter on.
// An unknown field is a validation error, never a silent no-op.
type TagField string

const (
	TagFieldPOS      TagField = "pos"
	TagFieldNER      TagField = "ner"
	TagFieldSemantic TagField = "semantic"
	TagFieldPhrase   TagField = "phrase"
	TagFieldGrm      TagField = "grm"
)

func (f TagField) String() string { return string(f) }

func (f TagField) IsValid() bool {
	switch f {
	case TagFieldPOS, TagFieldNER, TagFieldSemantic, TagFieldPhrase, TagFieldGrm:
		return true
	}
	return false
}

// Column returns the storage column backing the tag field.
func (f TagField) Column() string {
	return string(f)
}

// RecordSource selects which storage tier a query reads from.
type RecordSource string

const (
	SourceDraft  RecordSource = "draft"
	SourceMaster RecordSource = "master"
)

func (s RecordSource) IsValid() bool {
	return s == SourceDraft || s == SourceMaster
}
