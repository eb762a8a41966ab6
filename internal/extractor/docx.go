package extractor

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"ats-checker/internal/logger"
	"ats-checker/internal/tracing"
)

// The docx library returns raw WordprocessingML; paragraph and break tags
// become newlines before the remaining markup is stripped.
var (
	docxParagraphRe = regexp.MustCompile(`</w:p>|<w:br[^>]*/?>`)
	docxTagRe       = regexp.MustCompile(`<[^>]+>`)
)

var docxEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// DocxExtractor extracts text from DOCX (and best-effort DOC) files.
type DocxExtractor struct{}

// NewDocxExtractor returns a ready extractor; the library is stateless.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// Extract reads the document at path and returns its visible text.
func (e *DocxExtractor) Extract(ctx context.Context, path string) (string, error) {
	_, span := tracer.Start(ctx, "DocxExtractor.Extract")
	defer span.End()

	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		return "", fmt.Errorf("open docx file %s: %w", path, err)
	}
	defer reader.Close()

	text := stripDocxMarkup(reader.Editable().GetContent())
	logger.Debug().
		Str("path", path).
		Int("chars", len(text)).
		Msg("DOCX text extracted")
	return text, nil
}

// stripDocxMarkup flattens WordprocessingML into plain text.
func stripDocxMarkup(content string) string {
	text := docxParagraphRe.ReplaceAllString(content, "\n")
	text = docxTagRe.ReplaceAllString(text, "")
	text = docxEntityReplacer.Replace(text)
	return strings.TrimSpace(text)
}
