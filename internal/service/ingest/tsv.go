package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/vncorpora/bicorpus-backend/internal/corpus/align"
	"github.com/vncorpora/bicorpus-backend/internal/corpus/ident"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// fieldCount is the number of fields per line.
const fieldCount = 10

// Format selects the line encoding of an import file.
type Format string

const (
	FormatTSV Format = "tsv"
	FormatCSV Format = "csv"
)

func (f Format) IsValid() bool { return f == FormatTSV || f == FormatCSV }

// splitFields splits one line into its ten fields. TSV is a bare tab
// split with no quoting; CSV goes through encoding/csv because the links
// field holds commas and must arrive quoted.
func splitFields(line string, format Format) ([]string, error) {
	if format == FormatCSV {
		rd := csv.NewReader(strings.NewReader(line))
		rd.FieldsPerRecord = fieldCount
		fields, err := rd.Read()
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, domain.ErrValidation)
		}
		return fields, nil
	}
	return strings.Split(line, "\t"), nil
}

// parseLine decodes one import line into a word record. The identifier
// field is the canonical source of sentence id and position; both are
// decoded here so nothing downstream re-parses strings.
func parseLine(line string, format Format) (domain.WordRecord, error) {
	fields, err := splitFields(line, format)
	if err != nil {
		return domain.WordRecord{}, err
	}
	if len(fields) != fieldCount {
		return domain.WordRecord{}, fmt.Errorf("%d fields, want %d: %w", len(fields), fieldCount, domain.ErrValidation)
	}

	id, err := ident.Parse(fields[0])
	if err != nil {
		return domain.WordRecord{}, err
	}

	word := strings.TrimSpace(fields[1])
	if word == "" {
		return domain.WordRecord{}, fmt.Errorf("empty word field: %w", domain.ErrValidation)
	}

	links := strings.TrimSpace(fields[3])
	if links == "" {
		links = domain.UnalignedLinks
	} else if _, err := align.ParseLinks(links); err != nil {
		return domain.WordRecord{}, err
	}

	return domain.WordRecord{
		ID:         id.Prefix + id.MainID,
		MainID:     id.MainID,
		SentenceID: id.SentenceID,
		Position:   id.Position,
		Word:       word,
		Lemma:      strings.TrimSpace(fields[2]),
		Links:      links,
		Morph:      strings.TrimSpace(fields[4]),
		POS:        strings.TrimSpace(fields[5]),
		Phrase:     strings.TrimSpace(fields[6]),
		Grm:        strings.TrimSpace(fields[7]),
		NER:        strings.TrimSpace(fields[8]),
		Semantic:   strings.TrimSpace(fields[9]),
	}, nil
}

// formatLine renders a word record back into the TSV wire format.
func formatLine(rec *domain.WordRecord) string {
	return strings.Join([]string{
		rec.ID,
		rec.Word,
		rec.Lemma,
		rec.Links,
		rec.Morph,
		rec.POS,
		rec.Phrase,
		rec.Grm,
		rec.NER,
		rec.Semantic,
	}, "\t")
}
