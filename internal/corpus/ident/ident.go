// Package ident decodes the structured word identifiers used throughout the
// corpus: a 2-letter document-type prefix followed by an 8-digit main id,
// whose first 6 digits are the sentence number and last 2 digits the 1-based
// intra-sentence position ("VD01821301" → sentence "018213", position 1).
//
// The identifier is the canonical source of sentence id and position.
// Stored columns are a cache decoded through this package at ingestion time.
package ident

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// recognizedPrefixes are the document-type prefixes the corpus uses.
var recognizedPrefixes = map[string]struct{}{
	"VD": {},
	"ED": {},
	"KR": {},
}

const bom = "\uFEFF"

// Identifier is a decoded word identifier.
type Identifier struct {
	Prefix     string // document-type prefix, e.g. "VD"
	MainID     string // 8-digit main id
	SentenceID string // 6-digit sentence number
	Position   int    // 1-based intra-sentence ordinal
}

// clean strips byte-order-mark artifacts and surrounding whitespace.
func clean(raw string) string {
	raw = strings.ReplaceAll(raw, bom, "")
	return strings.TrimSpace(raw)
}

// validate checks the length/prefix contract shared by all extractors.
func validate(id string) error {
	if len(id) < 10 {
		return fmt.Errorf("%q: too short: %w", id, domain.ErrInvalidIdentifier)
	}
	if _, ok := recognizedPrefixes[id[:2]]; !ok {
		return fmt.Errorf("%q: unknown prefix: %w", id, domain.ErrInvalidIdentifier)
	}
	return nil
}

// Parse decodes a raw identifier into its (prefix, sentence, position)
// triple. It fails closed: any malformed input yields ErrInvalidIdentifier.
func Parse(raw string) (Identifier, error) {
	id := clean(raw)
	if err := validate(id); err != nil {
		return Identifier{}, err
	}

	mainID := id[2:10]
	pos, err := Position(mainID)
	if err != nil {
		return Identifier{}, err
	}

	return Identifier{
		Prefix:     id[:2],
		MainID:     mainID,
		SentenceID: id[2 : len(id)-2],
		Position:   pos,
	}, nil
}

// SentenceID returns the middle 6 digits of the identifier, the sentence
// number ("VD01821301" → "018213").
func SentenceID(raw string) (string, error) {
	id := clean(raw)
	if err := validate(id); err != nil {
		return "", err
	}
	return id[2 : len(id)-2], nil
}

// MainID returns the 8-digit unique word id ("VD01821301" → "01821301").
func MainID(raw string) (string, error) {
	id := clean(raw)
	if err := validate(id); err != nil {
		return "", err
	}
	return id[2:10], nil
}

// Position parses the trailing 2 digits of an 8+-digit main id as the
// 1-based within-sentence ordinal ("01821301" → 1).
func Position(mainID string) (int, error) {
	id := clean(mainID)
	if len(id) < 8 {
		return 0, fmt.Errorf("main id %q: too short: %w", id, domain.ErrInvalidIdentifier)
	}
	n, err := strconv.Atoi(id[len(id)-2:])
	if err != nil {
		return 0, fmt.Errorf("main id %q: non-numeric position: %w", id, domain.ErrInvalidIdentifier)
	}
	return n, nil
}
