package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// ExportInput describes one TSV export: one language of one pair from one
// storage tier.
type ExportInput struct {
	Source   domain.RecordSource
	LangPair string
	LangCode string
}

func (in *ExportInput) Validate() error {
	var errs []domain.FieldError

	if !in.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be draft or master"})
	}
	if in.LangPair == "" {
		errs = append(errs, domain.FieldError{Field: "lang_pair", Message: "is required"})
	}
	if in.LangCode == "" {
		errs = append(errs, domain.FieldError{Field: "lang_code", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Export writes the selected rows to w in the TSV wire format, ordered by
// sentence and position, capped at the configured export limit. Returns
// the number of rows written.
func (s *Service) Export(ctx context.Context, w io.Writer, input ExportInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	rows, err := s.storeFor(input.Source).ListByLang(ctx, input.LangPair, input.LangCode)
	if err != nil {
		return 0, fmt.Errorf("list rows: %w", err)
	}
	if max := s.cfg.ExportMaxRows; max > 0 && len(rows) > max {
		rows = rows[:max]
	}

	bw := bufio.NewWriter(w)
	for i := range rows {
		if _, err := bw.WriteString(formatLine(&rows[i])); err != nil {
			return 0, fmt.Errorf("write row: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return 0, fmt.Errorf("write row: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("flush export: %w", err)
	}

	s.log.InfoContext(ctx, "export finished",
		slog.String("source", string(input.Source)),
		slog.String("lang_pair", input.LangPair),
		slog.String("lang_code", input.LangCode),
		slog.Int("rows", len(rows)),
	)
	return len(rows), nil
}
