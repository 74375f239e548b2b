package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"zoteroconv/internal/domain"
	"zoteroconv/internal/normalize"
	"zoteroconv/internal/ports"
)

// Fatal condition sentinels; the CLI maps them to exit codes.
var (
	ErrInputNotFound = errors.New("input report not found")
	ErrParseFailure  = errors.New("input is not decodable as text")
	ErrWrite         = errors.New("cannot write output")
)

// PipelineDeps wires the locator and writer adapters into the pipeline.
type PipelineDeps struct {
	Locator ports.Locator
	Writer  ports.Writer
	Logger  *slog.Logger
}

// Pipeline implements the one-shot report conversion workflow:
// load, parse, locate, normalize, write.
type Pipeline struct {
	locator ports.Locator
	writer  ports.Writer
	logger  *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		locator: deps.Locator,
		writer:  deps.Writer,
		logger:  deps.Logger,
	}
}

// Convert runs the full transform over one report file and returns the
// number of records written. The output file is only touched after every
// entry has been extracted and normalized.
func (p *Pipeline) Convert(ctx context.Context, inputPath string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return 0, fmt.Errorf("read %s: %w", inputPath, err)
	}
	p.debug("report loaded", "path", inputPath, "bytes", len(raw))

	if !utf8.Valid(raw) {
		return 0, fmt.Errorf("%w: %s", ErrParseFailure, inputPath)
	}

	// Malformed-but-decodable markup still yields a best-effort tree here;
	// only reader failures surface as errors.
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	entries := p.locator.Locate(doc)
	records := make([]domain.Record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, buildRecord(entry))
	}
	p.debug("entries normalized", "count", len(records))

	if err := p.writer.Write(records); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	return len(records), nil
}

func buildRecord(entry domain.Entry) domain.Record {
	return domain.Record{
		Title:    normalize.Clean(entry.Title),
		Authors:  normalize.FormatAuthors(entry.Authors),
		Year:     normalize.ExtractYear(entry.Date),
		Journal:  normalize.Clean(entry.Journal),
		Abstract: normalize.Clean(entry.Abstract),
	}
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
