// Command importer loads word-aligned TSV or CSV corpus files into the
// database.
//
// Usage:
//
//	importer --file=corpus_vi.tsv --lang-code=vi --lang-pair=vi-en [--target=master] [--dry-run]
//
// Requires DATABASE_DSN environment variable to be set. Import settings
// (batch size, worker count, malformed-line policy) come from the normal
// application configuration.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/vncorpora/bicorpus-backend/internal/adapter/postgres"
	"github.com/vncorpora/bicorpus-backend/internal/adapter/postgres/masterrow"
	"github.com/vncorpora/bicorpus-backend/internal/adapter/postgres/rowword"
	"github.com/vncorpora/bicorpus-backend/internal/app"
	"github.com/vncorpora/bicorpus-backend/internal/config"
	"github.com/vncorpora/bicorpus-backend/internal/domain"
	"github.com/vncorpora/bicorpus-backend/internal/service/ingest"
)

func main() {
	file := flag.String("file", "", "path to the TSV file to import")
	langCode := flag.String("lang-code", "", "language of the file (vi, en)")
	langPair := flag.String("lang-pair", "", "parallel-corpus batch (vi-en)")
	target := flag.String("target", "draft", "storage tier: draft or master")
	format := flag.String("format", "", "file format: tsv or csv (default by extension)")
	dryRun := flag.Bool("dry-run", false, "parse and report without writing")
	flag.Parse()

	if *file == "" || *langCode == "" || *langPair == "" {
		fmt.Fprintln(os.Stderr, "Usage: importer --file=corpus_vi.tsv --lang-code=vi --lang-pair=vi-en [--target=master] [--dry-run]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open file: %v", err)
	}
	defer f.Close()

	svc := ingest.NewService(logger, cfg.Corpus, rowword.New(pool), masterrow.New(pool))

	if *format == "" && strings.EqualFold(filepath.Ext(*file), ".csv") {
		*format = string(ingest.FormatCSV)
	}

	report, err := svc.Import(ctx, f, ingest.ImportInput{
		Target:   domain.RecordSource(*target),
		Format:   ingest.Format(*format),
		LangCode: *langCode,
		LangPair: *langPair,
		DryRun:   *dryRun,
	})
	if err != nil {
		log.Fatalf("import: %v", err)
	}

	fmt.Printf("Lines: %d, inserted: %d, skipped: %d", report.Lines, report.Inserted, report.Skipped)
	if report.DryRun {
		fmt.Print(" (dry run)")
	}
	fmt.Println()
}
