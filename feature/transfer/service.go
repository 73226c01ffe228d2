package transfer

import (
	"context"
	"fmt"
	"io"

	"github.com/goliatone/core.io-data-manager/core/codec"
	"github.com/goliatone/core.io-data-manager/core/export"
	"github.com/goliatone/core.io-data-manager/core/storage"
	"github.com/goliatone/core.io-data-manager/core/sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ImportSummary is what a completed import reports back.
type ImportSummary struct {
	// Total is the number of parsed records.
	Total int `json:"total"`

	// Imported is the number of successfully persisted records.
	Imported int `json:"imported"`

	// Failed is the number of records that errored.
	Failed int `json:"failed"`

	// Records holds the persisted records in processing order.
	Records []any `json:"records,omitempty"`

	// Errors holds the drained per-record errors.
	Errors []ImportIssue `json:"errors,omitempty"`
}

// ImportIssue is the wire form of one drained import error.
type ImportIssue struct {
	ID       string `json:"id"`
	Strategy string `json:"strategy"`
	Criteria string `json:"criteria"`
	Message  string `json:"message"`
}

// Service handles import and export operations.
type Service struct {
	engine   *sync.Engine
	pipeline *export.Pipeline
	codecs   *codec.Registry
	session  *sync.Session
	emitter  sync.Emitter
	logger   *zap.Logger
}

// NewService creates a new transfer service. The emitter may be nil when
// nothing subscribes to import events.
func NewService(engine *sync.Engine, pipeline *export.Pipeline, codecs *codec.Registry, session *sync.Session, emitter sync.Emitter, logger *zap.Logger) *Service {
	if emitter == nil {
		emitter = sync.NopEmitter{}
	}
	return &Service{
		engine:   engine,
		pipeline: pipeline,
		codecs:   codecs,
		session:  session,
		emitter:  emitter,
		logger:   logger,
	}
}

// Session exposes the service's reconciliation session, so callers can
// inspect outstanding errors without importing.
func (s *Service) Session() *sync.Session {
	return s.session
}

// ImportData parses content in the given format, emits the record and
// batch events, runs a reconciliation pass and drains its errors into the
// returned summary.
func (s *Service) ImportData(ctx context.Context, identity, format string, content []byte, opts sync.Options) (*ImportSummary, error) {
	records, err := s.codecs.Parse(format, content, nil)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		s.emitter.Emit("record."+format, rec)
	}
	s.emitter.Emit("records."+format, records)

	out, err := s.engine.ImportModel(ctx, s.session, identity, records, opts)
	if err != nil {
		return nil, err
	}

	summary := &ImportSummary{
		Total:    len(records),
		Imported: len(out),
	}
	for _, rec := range out {
		summary.Records = append(summary.Records, rec)
	}
	for _, impErr := range s.session.Drain(identity) {
		summary.Errors = append(summary.Errors, ImportIssue{
			ID:       impErr.ID,
			Strategy: impErr.Strategy,
			Criteria: impErr.Criteria.String(),
			Message:  impErr.Err.Error(),
		})
	}
	summary.Failed = len(summary.Errors)

	s.logger.Info("import finished",
		zap.String("identity", identity),
		zap.String("format", format),
		zap.Int("total", summary.Total),
		zap.Int("imported", summary.Imported),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// ImportFromStorage reads the import payload from object storage and runs
// ImportData on it.
func (s *Service) ImportFromStorage(ctx context.Context, client storage.Client, bucket, objectName, identity, format string, opts sync.Options) (*ImportSummary, error) {
	reader, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", bucket, objectName, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", bucket, objectName, err)
	}
	return s.ImportData(ctx, identity, format, content, opts)
}

// ExportData serializes the query result in the given format.
func (s *Service) ExportData(ctx context.Context, identity string, q export.Query, format string, opts codec.Options) ([]byte, error) {
	return s.pipeline.Models(ctx, identity, q, format, opts)
}

// ExportToFile persists the query result, returning the file name used.
func (s *Service) ExportToFile(ctx context.Context, identity string, q export.Query, format string, opts export.FileOptions) (string, error) {
	return s.pipeline.ToFile(ctx, identity, q, format, opts)
}

// ExportToStorage uploads the query result to object storage, returning
// the object name used.
func (s *Service) ExportToStorage(ctx context.Context, client storage.Client, bucket, identity string, q export.Query, format, objectName string) (string, error) {
	return s.pipeline.ToStorage(ctx, client, bucket, identity, q, format, objectName, nil)
}
