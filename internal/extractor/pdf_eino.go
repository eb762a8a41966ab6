package extractor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	einoParser "github.com/cloudwego/eino/components/document/parser"

	"ats-checker/internal/logger"
	"ats-checker/internal/tracing"
)

// PDFExtractor extracts text from PDF files with the eino PDF parser.
type PDFExtractor struct {
	parser  *pdf.PDFParser
	timeout time.Duration
}

// PDFOption configures a PDFExtractor.
type PDFOption func(*PDFExtractor)

// WithParseTimeout bounds a single parse. Zero disables the bound.
func WithParseTimeout(d time.Duration) PDFOption {
	return func(e *PDFExtractor) {
		e.timeout = d
	}
}

// NewPDFExtractor builds the extractor. ToPages is off so the whole
// document comes back as one continuous string.
func NewPDFExtractor(ctx context.Context, options ...PDFOption) (*PDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, fmt.Errorf("create eino PDF parser: %w", err)
	}

	extractor := &PDFExtractor{
		parser:  p,
		timeout: 30 * time.Second,
	}
	for _, option := range options {
		option(extractor)
	}
	return extractor, nil
}

// Extract reads the PDF at path and returns its full text.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	ctx, span := tracer.Start(ctx, "PDFExtractor.Extract")
	defer span.End()

	file, err := os.Open(path)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		return "", fmt.Errorf("open PDF file %s: %w", path, err)
	}
	defer file.Close()

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	docs, err := e.parser.Parse(ctx, file, einoParser.WithURI(path))
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		return "", fmt.Errorf("eino PDF parse failed for %s: %w", path, err)
	}
	if len(docs) == 0 {
		err := fmt.Errorf("eino PDF parser returned no documents for %s", path)
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		return "", err
	}

	var text string
	for i, doc := range docs {
		text += doc.Content
		if i < len(docs)-1 {
			text += "\n\n"
		}
	}

	logger.Debug().
		Str("path", path).
		Int("chars", len(text)).
		Dur("duration", time.Since(start)).
		Msg("PDF text extracted")
	return text, nil
}
