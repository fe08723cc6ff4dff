package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/matchtag/internal/export"
)

// ExportDependencies defines the export operations used by ExportHandler.
type ExportDependencies interface {
	ExportCSV(ctx context.Context, sessionID string) ([]byte, error)
	ExportXML(ctx context.Context, sessionID string) ([]byte, error)
	ExportZIP(ctx context.Context, sessionID, base string) ([]byte, error)
}

// ExportHandler serves ledger downloads.
type ExportHandler struct {
	deps    ExportDependencies
	zipBase string
}

// NewExportHandler creates a new export handler. zipBase names ZIP downloads
// when the request has no filename query.
func NewExportHandler(deps ExportDependencies, zipBase string) *ExportHandler {
	if zipBase == "" {
		zipBase = export.DefaultZIPBase
	}
	return &ExportHandler{deps: deps, zipBase: zipBase}
}

// HandleCSV handles POST /api/export/csv?filename=.
func (h *ExportHandler) HandleCSV(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_csv"
	name := export.CleanName(r.URL.Query().Get("filename"), export.DefaultCSVName)
	data, err := h.deps.ExportCSV(r.Context(), SessionFrom(r.Context()))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeAttachment(w, "text/csv; charset=utf-8", name, data)
}

// HandleXML handles POST /api/export/xml?filename=.
func (h *ExportHandler) HandleXML(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_xml"
	name := export.CleanName(r.URL.Query().Get("filename"), export.DefaultXMLName)
	data, err := h.deps.ExportXML(r.Context(), SessionFrom(r.Context()))
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeAttachment(w, "application/xml", name, data)
}

// HandleZIP handles POST /api/export/zip?filename=. The filename is the base
// name of the archive and of both entries.
func (h *ExportHandler) HandleZIP(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_zip"
	base := export.CleanName(r.URL.Query().Get("filename"), h.zipBase)
	base = strings.TrimSuffix(base, ".zip")
	if base == "" {
		base = h.zipBase
	}
	data, err := h.deps.ExportZIP(r.Context(), SessionFrom(r.Context()), base)
	if err != nil {
		writeFailure(r.Context(), w, op, err)
		return
	}
	writeAttachment(w, "application/zip", base+".zip", data)
}

func writeAttachment(w http.ResponseWriter, contentType, name string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
