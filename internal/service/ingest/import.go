package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

// maxLineBytes bounds a single TSV line; corpus lines are short but user
// uploads are not trusted.
const maxLineBytes = 1 << 20

// ImportInput describes one import run. A file carries one language of
// one language pair; the language tags apply to every line.
type ImportInput struct {
	Target     domain.RecordSource
	Format     Format
	LangCode   string
	LangPair   string
	DryRun     bool
	ImportedBy *uuid.UUID
}

func (in *ImportInput) Validate() error {
	var errs []domain.FieldError

	if !in.Target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must be draft or master"})
	}
	if in.Format == "" {
		in.Format = FormatTSV
	} else if !in.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "must be tsv or csv"})
	}
	if in.LangCode == "" {
		errs = append(errs, domain.FieldError{Field: "lang_code", Message: "is required"})
	}
	if in.LangPair == "" {
		errs = append(errs, domain.FieldError{Field: "lang_pair", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportReport summarizes one import run.
type ImportReport struct {
	Lines    int   `json:"lines"`
	Inserted int64 `json:"inserted"`
	Skipped  int64 `json:"skipped"`
	DryRun   bool  `json:"dry_run"`
}

// Import streams TSV or CSV lines from r into the target tier. Lines are decoded
// by a pool of workers and written in CopyFrom batches. Malformed lines
// either abort the run or are skipped and counted, per configuration.
func (s *Service) Import(ctx context.Context, r io.Reader, input ImportInput) (*ImportReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	store := s.storeFor(input.Target)

	workers := s.cfg.ImportWorkers
	if workers < 1 {
		workers = 1
	}
	batchSize := s.cfg.ImportBatchSize
	if batchSize < 1 {
		batchSize = 1000
	}

	g, gctx := errgroup.WithContext(ctx)

	lines := make(chan string, batchSize)
	recs := make(chan domain.WordRecord, batchSize)

	var (
		lineCount int
		skipped   atomic.Int64
		inserted  int64
	)

	g.Go(func() error {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			lineCount++
			select {
			case lines <- line:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return scanner.Err()
	})

	parsers, pctx := errgroup.WithContext(gctx)
	for i := 0; i < workers; i++ {
		parsers.Go(func() error {
			for line := range lines {
				rec, err := parseLine(line, input.Format)
				if err != nil {
					if s.cfg.SkipMalformed {
						skipped.Add(1)
						continue
					}
					return fmt.Errorf("line %q: %w", truncate(line, 60), err)
				}
				rec.LangCode = input.LangCode
				rec.LangPair = input.LangPair
				rec.CreatedBy = input.ImportedBy
				select {
				case recs <- rec:
				case <-pctx.Done():
					return pctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(recs)
		return parsers.Wait()
	})

	g.Go(func() error {
		batch := make([]domain.WordRecord, 0, batchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if !input.DryRun {
				n, err := store.BulkInsert(gctx, batch)
				if err != nil {
					return fmt.Errorf("bulk insert: %w", err)
				}
				inserted += n
			} else {
				inserted += int64(len(batch))
			}
			batch = batch[:0]
			return nil
		}

		for rec := range recs {
			batch = append(batch, rec)
			if len(batch) >= batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &ImportReport{
		Lines:    lineCount,
		Inserted: inserted,
		Skipped:  skipped.Load(),
		DryRun:   input.DryRun,
	}
	s.log.InfoContext(ctx, "import finished",
		slog.String("target", string(input.Target)),
		slog.String("lang_pair", input.LangPair),
		slog.String("lang_code", input.LangCode),
		slog.Int("lines", report.Lines),
		slog.Int64("inserted", report.Inserted),
		slog.Int64("skipped", report.Skipped),
		slog.Bool("dry_run", report.DryRun),
	)
	return report, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
