package extractor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"ats-checker/internal/tracing"
)

// PlainTextExtractor reads TXT uploads as-is.
type PlainTextExtractor struct{}

// NewPlainTextExtractor returns a ready extractor.
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// Extract reads the file at path. Invalid UTF-8 sequences are replaced so
// downstream keyword matching never sees broken runes.
func (e *PlainTextExtractor) Extract(ctx context.Context, path string) (string, error) {
	_, span := tracer.Start(ctx, "PlainTextExtractor.Extract")
	defer span.End()

	data, err := os.ReadFile(path)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeExtraction)
		return "", fmt.Errorf("read text file %s: %w", path, err)
	}

	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	return text, nil
}
