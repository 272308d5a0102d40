package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
	"github.com/vncorpora/bicorpus-backend/internal/service/ingest"
	"github.com/vncorpora/bicorpus-backend/pkg/ctxutil"
)

// ingestService defines the minimal interface needed by IngestHandler.
type ingestService interface {
	Import(ctx context.Context, r io.Reader, input ingest.ImportInput) (*ingest.ImportReport, error)
	Export(ctx context.Context, w io.Writer, input ingest.ExportInput) (int, error)
}

// IngestHandler serves TSV import/export endpoints.
type IngestHandler struct {
	svc ingestService
	log *slog.Logger
}

// NewIngestHandler creates an IngestHandler.
func NewIngestHandler(svc ingestService, logger *slog.Logger) *IngestHandler {
	return &IngestHandler{svc: svc, log: logger.With("handler", "ingest")}
}

// Import handles POST /corpus/import. The request body is the raw TSV or
// CSV stream, selected by the format query param. Importing into the
// draft tier requires a signed-in user; importing straight into master
// requires admin.
func (h *IngestHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	input := ingest.ImportInput{
		Target:     domain.RecordSource(q.Get("target")),
		Format:     ingest.Format(q.Get("format")),
		LangCode:   q.Get("lang_code"),
		LangPair:   q.Get("lang_pair"),
		DryRun:     q.Get("dry_run") == "true",
		ImportedBy: &userID,
	}
	if input.Target == "" {
		input.Target = domain.SourceDraft
	}
	if input.Target == domain.SourceMaster &&
		ctxutil.UserRoleFromCtx(r.Context()) != domain.UserRoleAdmin.String() {
		writeError(w, http.StatusForbidden, "master import requires admin")
		return
	}

	report, err := h.svc.Import(r.Context(), r.Body, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Export handles GET /corpus/export and streams TSV.
func (h *IngestHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := ingest.ExportInput{
		Source:   domain.RecordSource(q.Get("source")),
		LangPair: q.Get("lang_pair"),
		LangCode: q.Get("lang_code"),
	}
	if input.Source == "" {
		input.Source = domain.SourceMaster
	}

	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", exportFilename(input)))

	if _, err := h.svc.Export(r.Context(), w, input); err != nil {
		// Headers may already be out; still try to surface the error.
		handleError(h.log, w, r, err)
		return
	}
}

func exportFilename(input ingest.ExportInput) string {
	return fmt.Sprintf("%s_%s_%s.tsv", input.Source, input.LangPair, input.LangCode)
}
