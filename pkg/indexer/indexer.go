package indexer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"readings-index/pkg/domain"
)

// Extractor turns a file on disk into text and a page count.
type Extractor interface {
	Extract(path string) (*domain.ExtractionResult, error)
}

// Publisher writes a record to the content store, replacing any record with
// the same id.
type Publisher interface {
	UpsertReadingContent(ctx context.Context, rc *domain.ReadingContent) error
}

// Config wires the indexer dependencies.
type Config struct {
	// ReadingsDir is the directory catalog file paths are relative to.
	ReadingsDir string
	Extractor   Extractor
	Publisher   Publisher
	// Logger receives one progress line per reading. Nil means no logging.
	Logger *zap.Logger
	// Now stamps UpdatedAt. Defaults to time.Now.
	Now func() time.Time
}

// Indexer extracts each catalog reading and publishes it, one at a time.
type Indexer struct {
	readingsDir string
	extractor   Extractor
	publisher   Publisher
	logger      *zap.Logger
	now         func() time.Time
}

// New validates cfg and returns an Indexer.
func New(cfg Config) (*Indexer, error) {
	if cfg.Extractor == nil {
		return nil, fmt.Errorf("extractor is required")
	}
	if cfg.Publisher == nil {
		return nil, fmt.Errorf("publisher is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Indexer{
		readingsDir: cfg.ReadingsDir,
		extractor:   cfg.Extractor,
		publisher:   cfg.Publisher,
		logger:      logger,
		now:         now,
	}, nil
}

// outcome of processing one entry
type outcome int

const (
	indexed outcome = iota
	missing
	failed
)

// Run processes entries sequentially. A failing entry is logged and counted
// and never stops the run. The returned error is non-nil only when ctx is
// cancelled before every entry was processed; the partial summary is still
// returned in that case.
func (ix *Indexer) Run(ctx context.Context, entries []domain.ReadingEntry) (Summary, error) {
	summary := Summary{Total: len(entries)}

	ix.logger.Info("Starting PDF indexing", zap.Int("readings", len(entries)), zap.String("dir", ix.readingsDir))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			ix.logger.Warn("Indexing cancelled", zap.Int("processed", summary.Success+summary.Errors), zap.Error(err))
			return summary, err
		}

		switch ix.processEntry(ctx, entry) {
		case indexed:
			summary.Success++
		case missing:
			summary.Errors++
			summary.Missing = append(summary.Missing, entry.ID)
		case failed:
			summary.Errors++
			summary.Failed = append(summary.Failed, entry.ID)
		}
	}

	return summary, nil
}

// processEntry resolves, extracts and publishes a single reading.
func (ix *Indexer) processEntry(ctx context.Context, entry domain.ReadingEntry) outcome {
	path := filepath.Join(ix.readingsDir, entry.File)

	if info, err := os.Stat(path); err != nil || info.IsDir() {
		fields := []zap.Field{zap.String("id", entry.ID), zap.String("file", entry.File)}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		ix.logger.Warn("File not found", fields...)
		return missing
	}

	ix.logger.Info("Processing", zap.String("id", entry.ID), zap.String("title", entry.Title))

	extracted, err := ix.extractor.Extract(path)
	if err != nil {
		ix.logger.Error("Error extracting text", zap.String("id", entry.ID), zap.String("path", path), zap.Error(err))
		return failed
	}

	record := domain.NewReadingContent(entry, extracted, ix.now())
	if err := ix.publisher.UpsertReadingContent(ctx, record); err != nil {
		ix.logger.Error("Error uploading", zap.String("id", entry.ID), zap.Error(err))
		return failed
	}

	ix.logger.Info("Indexed",
		zap.String("id", entry.ID),
		zap.Int("pages", extracted.PageCount),
		zap.Int("chars", utf8.RuneCountInString(extracted.Text)))
	return indexed
}
