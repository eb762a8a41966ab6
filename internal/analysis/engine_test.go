package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// fullResumeText builds a realistic mid-length resume: all mandatory
// sections, a healthy skill list, and quantified experience bullets.
func fullResumeText() string {
	var b strings.Builder
	b.WriteString("Jane Smith\nSenior Software Engineer\nEmail: jane.smith@example.com | Phone: 555-0100\n\n")
	b.WriteString("Summary\nBackend engineer with nine years of experience building distributed systems.\n\n")
	b.WriteString("Experience\n")
	for i := 0; i < 18; i++ {
		b.WriteString("Built and operated microservices in golang and python, cutting p99 latency by 40% during 2021.\n")
	}
	b.WriteString("\nEducation\nBS Computer Science, State University, 2014\n\n")
	b.WriteString("Skills\npython, golang, sql, docker, kubernetes, aws, terraform, git, linux, rest, leadership, communication\n\n")
	b.WriteString("References available on request.\n")
	return b.String()
}

// invoiceText is long enough to clear the content-length guard but is
// clearly not a resume.
func invoiceText() string {
	return strings.Repeat("invoice number 1042 amount due balance payment terms net 30 subtotal tax id remittance ", 15)
}

func newTestEngine(t *testing.T, options ...Option) (*Engine, *Parser) {
	t.Helper()
	rules := DefaultRules()
	engine, err := NewEngine(rules, options...)
	require.NoError(t, err)
	return engine, NewParser(rules)
}

func TestNewEngineRejectsBadWeights(t *testing.T) {
	t.Run("weights do not sum to 1", func(t *testing.T) {
		rules := DefaultRules()
		rules.Weights[ComponentKeywords] = 0.5
		_, err := NewEngine(rules)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sum to 1.0")
	})

	t.Run("missing component weight", func(t *testing.T) {
		rules := DefaultRules()
		delete(rules.Weights, ComponentReadability)
		_, err := NewEngine(rules)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing weight")
	})

	t.Run("weight out of range", func(t *testing.T) {
		rules := DefaultRules()
		rules.Weights[ComponentStructure] = -0.25
		rules.Weights[ComponentKeywords] = 0.80
		_, err := NewEngine(rules)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}

func TestScoreFullResume(t *testing.T) {
	engine, parser := newTestEngine(t)
	parsed := parser.Parse(fullResumeText())

	result, err := engine.Score(parsed, "", "")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.OverallScore, 60)
	assert.LessOrEqual(t, result.OverallScore, 100)
	assert.Len(t, result.Components, 5)
	for name, cs := range result.Components {
		assert.Equal(t, name, cs.Name)
		assert.GreaterOrEqual(t, cs.Score, 0)
		assert.LessOrEqual(t, cs.Score, 100)
	}

	// Healthy resume: strengths fire, weaknesses do not.
	assert.Empty(t, result.Weaknesses)
	titles := findingTitles(result.Strengths)
	assert.Contains(t, titles, "Complete Core Structure")
	assert.Contains(t, titles, "Strong Skill Coverage")
	assert.Contains(t, titles, "Good Length")

	assert.Nil(t, result.JobMatch, "no job description given")
	assert.Empty(t, result.Suggestions)
}

func TestScoreComponentValues(t *testing.T) {
	engine, parser := newTestEngine(t)
	parsed := parser.Parse(fullResumeText())

	result, err := engine.Score(parsed, "", "")
	require.NoError(t, err)

	// 4 mandatory sections found: base 70 + 4*8 caps at 100.
	assert.Equal(t, 100, result.Components[ComponentStructure].Score)
	// Years and metrics in the evidence, plus the length bonus, max it out.
	assert.Equal(t, 100, result.Components[ComponentExperience].Score)
	// ~300 words lands in the best readability band.
	assert.Equal(t, 90, result.Components[ComponentReadability].Score)
}

func TestScoreIsDeterministic(t *testing.T) {
	engine, parser := newTestEngine(t)
	parsed := parser.Parse(fullResumeText())

	first, err := engine.Score(parsed, "Backend Engineer", "golang kubernetes experience required")
	require.NoError(t, err)
	second, err := engine.Score(parsed, "Backend Engineer", "golang kubernetes experience required")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScoreRejectsInsufficientContent(t *testing.T) {
	engine, parser := newTestEngine(t)
	parsed := parser.Parse("too short")

	_, err := engine.Score(parsed, "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientContent))
}

func TestScoreRejectsNonResume(t *testing.T) {
	engine, parser := newTestEngine(t)
	parsed := parser.Parse(invoiceText())

	_, err := engine.Score(parsed, "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAResume))
}

func TestWithoutClassifierScoresAnything(t *testing.T) {
	engine, parser := newTestEngine(t, WithoutClassifier())
	parsed := parser.Parse(invoiceText())

	result, err := engine.Score(parsed, "", "")
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestScoreShortResumeFindings(t *testing.T) {
	engine, parser := newTestEngine(t, WithoutClassifier())
	parsed := parser.Parse(shortResumeText)

	result, err := engine.Score(parsed, "", "")
	require.NoError(t, err)

	assert.Equal(t, 20, result.Components[ComponentReadability].Score)

	weaknesses := findingTitles(result.Weaknesses)
	assert.Contains(t, weaknesses, "Resume Too Short")
	for _, w := range result.Weaknesses {
		if w.Title == "Resume Too Short" {
			assert.Equal(t, SeverityCritical, w.Severity)
		}
	}
	assert.Contains(t, weaknesses, "Few Recognized Skills")

	suggestions := suggestionTitles(result.Suggestions)
	assert.Contains(t, suggestions, "Expand Your Content")
	assert.Contains(t, suggestions, "Broaden Your Skills Section")
	assert.NotContains(t, suggestions, "Add Missing Sections")
}

func TestScoreMissingSectionWeaknesses(t *testing.T) {
	engine, parser := newTestEngine(t, WithoutClassifier())
	parsed := parser.Parse("A plain paragraph about nothing in particular, long enough to pass the length guard.")

	result, err := engine.Score(parsed, "", "")
	require.NoError(t, err)

	weaknesses := findingTitles(result.Weaknesses)
	assert.Contains(t, weaknesses, "Missing Contact Section")
	assert.Contains(t, weaknesses, "Missing Experience Section")
	assert.Contains(t, weaknesses, "Missing Education Section")
	assert.Contains(t, weaknesses, "Missing Skills Section")

	suggestions := suggestionTitles(result.Suggestions)
	assert.Contains(t, suggestions, "Add Missing Sections")
}

func TestScoreTextWrapsParseAndScore(t *testing.T) {
	engine, parser := newTestEngine(t)

	parsed, result, err := engine.ScoreText(context.Background(), parser, fullResumeText(), "", "")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	require.NotNil(t, result)
	// Contact, summary, experience, education, skills.
	assert.Equal(t, 5, parsed.SectionsFound())
}

func TestScoreTextReturnsParsedOnGuardError(t *testing.T) {
	engine, parser := newTestEngine(t)

	parsed, result, err := engine.ScoreText(context.Background(), parser, "tiny", "", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientContent))
	assert.NotNil(t, parsed)
	assert.Nil(t, result)
}

func TestScoreTextRecordsGuardErrorOnSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(context.Background())
	})

	engine, parser := newTestEngine(t)
	_, _, err := engine.ScoreText(context.Background(), parser, "tiny", "", "")
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.NotEmpty(t, spans)
	span := spans[0]
	assert.Equal(t, "Engine.ScoreText", span.Name)
	assert.Equal(t, codes.Error, span.Status.Code)
	assert.Contains(t, span.Attributes, attribute.String("error.type", "analysis"))
	require.NotEmpty(t, span.Events, "the error must be recorded as a span event")
}

func findingTitles(findings []Finding) []string {
	titles := make([]string, 0, len(findings))
	for _, f := range findings {
		titles = append(titles, f.Title)
	}
	return titles
}

func suggestionTitles(suggestions []Suggestion) []string {
	titles := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		titles = append(titles, s.Title)
	}
	return titles
}
