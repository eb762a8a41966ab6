// Package extractor turns uploaded resume files into plain text. Extraction
// is best-effort: callers treat an error as "no text" and let the analysis
// guard reject the empty result.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"

	"ats-checker/internal/constants"
)

var tracer = otel.Tracer("ats-checker/extractor")

// ErrUnsupportedFileType is returned when no extractor handles the declared type.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// Extractor pulls plain text out of one file format.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Set holds one extractor per supported format and dispatches on the
// declared file type.
type Set struct {
	pdf   Extractor
	docx  Extractor
	plain Extractor
}

// SetOption customizes a Set.
type SetOption func(*setOptions)

type setOptions struct {
	pdfTimeout time.Duration
}

// WithPDFTimeout bounds how long a single PDF parse may run.
func WithPDFTimeout(d time.Duration) SetOption {
	return func(o *setOptions) {
		o.pdfTimeout = d
	}
}

// NewSet builds the default extractor set. The eino PDF parser is
// constructed eagerly so a broken runtime surfaces at startup, not on the
// first upload.
func NewSet(ctx context.Context, options ...SetOption) (*Set, error) {
	opts := &setOptions{pdfTimeout: 30 * time.Second}
	for _, option := range options {
		option(opts)
	}

	pdfExtractor, err := NewPDFExtractor(ctx, WithParseTimeout(opts.pdfTimeout))
	if err != nil {
		return nil, fmt.Errorf("create PDF extractor: %w", err)
	}

	return &Set{
		pdf:   pdfExtractor,
		docx:  NewDocxExtractor(),
		plain: NewPlainTextExtractor(),
	}, nil
}

// ForType returns the extractor for the declared file type, or
// ErrUnsupportedFileType. DOC files go through the DOCX reader; older
// binary .doc payloads fail there and degrade to empty text upstream.
func (s *Set) ForType(fileType string) (Extractor, error) {
	switch fileType {
	case constants.FileTypePDF:
		return s.pdf, nil
	case constants.FileTypeDOCX, constants.FileTypeDOC:
		return s.docx, nil
	case constants.FileTypeTXT:
		return s.plain, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, fileType)
	}
}
