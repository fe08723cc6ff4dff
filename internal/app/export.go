package service

import (
	"context"
	"errors"

	"github.com/okian/matchtag/internal/domain/model"
	"github.com/okian/matchtag/internal/export"
	"github.com/okian/matchtag/pkg/logger"
	"github.com/okian/matchtag/pkg/metrics"
)

// Export formats.
const (
	FormatCSV = "csv"
	FormatXML = "xml"
	FormatZIP = "zip"
)

// ExportCSV renders the session ledger as CSV.
func (s *Service) ExportCSV(ctx context.Context, sessionID string) ([]byte, error) {
	return s.export(ctx, sessionID, FormatCSV, s.exporter.CSV)
}

// ExportXML renders the session ledger in the LiveTagPRO XML layout.
func (s *Service) ExportXML(ctx context.Context, sessionID string) ([]byte, error) {
	return s.export(ctx, sessionID, FormatXML, s.exporter.XML)
}

// ExportZIP bundles the CSV and XML renderings under the given base name.
func (s *Service) ExportZIP(ctx context.Context, sessionID, base string) ([]byte, error) {
	return s.export(ctx, sessionID, FormatZIP, func(events []model.Event) ([]byte, error) {
		return s.exporter.ZIP(base, events)
	})
}

// export snapshots the ledger under the store lock and renders it outside.
func (s *Service) export(ctx context.Context, sessionID, format string, render func([]model.Event) ([]byte, error)) ([]byte, error) {
	events, err := s.ListEvents(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	data, err := render(events)
	if errors.Is(err, export.ErrEmptyLedger) {
		return nil, ErrEmptyState
	}
	if err != nil {
		s.logger.Error(ctx, "export failed", logger.String("session", sessionID), logger.String("format", format), logger.Error(err))
		return nil, err
	}

	metrics.RecordExport(format, len(data))
	s.logger.Info(ctx, "ledger exported",
		logger.String("session", sessionID),
		logger.String("format", format),
		logger.Int("events", len(events)),
		logger.Int("bytes", len(data)),
	)
	return data, nil
}
