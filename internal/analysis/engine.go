package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"ats-checker/internal/tracing"
)

var tracer = otel.Tracer("ats-checker/analysis")

// weightTolerance is the float slack allowed when checking that component
// weights sum to 1.0.
const weightTolerance = 1e-9

// Engine combines a ParsedResume into the overall score, findings, and
// suggestions. It holds only read-only rule tables and is safe for
// concurrent use across requests.
type Engine struct {
	rules           *Ruleset
	classifier      *Classifier
	classifyGuard   bool
	weaknessRules   []findingRule
	strengthRules   []findingRule
	suggestionRules []suggestionRule
}

// Option customizes engine construction.
type Option func(*Engine)

// WithoutClassifier disables the resume-vs-non-resume guard, scoring any
// document that clears the minimum content length.
func WithoutClassifier() Option {
	return func(e *Engine) {
		e.classifyGuard = false
	}
}

// NewEngine validates the rule tables and builds the engine. It fails when
// a component weight is missing, out of range, or the weights do not sum
// to 1.0.
func NewEngine(rules *Ruleset, options ...Option) (*Engine, error) {
	components := []string{
		ComponentStructure,
		ComponentKeywords,
		ComponentExperience,
		ComponentEducation,
		ComponentReadability,
	}

	sum := 0.0
	for _, name := range components {
		weight, ok := rules.Weights[name]
		if !ok {
			return nil, fmt.Errorf("missing weight for component %q", name)
		}
		if weight < 0 || weight > 1 {
			return nil, fmt.Errorf("weight for component %q out of range: %v", name, weight)
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return nil, fmt.Errorf("component weights must sum to 1.0, got %v", sum)
	}

	engine := &Engine{
		rules:           rules,
		classifier:      NewClassifier(rules),
		classifyGuard:   true,
		weaknessRules:   buildWeaknessRules(rules),
		strengthRules:   buildStrengthRules(rules),
		suggestionRules: buildSuggestionRules(rules),
	}
	for _, option := range options {
		option(engine)
	}
	return engine, nil
}

// Score produces the ScoringResult for one parsed resume. It is a pure
// function: identical inputs always yield an identical result. The only
// errors returned are ErrInsufficientContent, ErrNotAResume, and
// ErrAnalysisFailed wrappers.
func (e *Engine) Score(parsed *ParsedResume, jobTitle, jobDescription string) (result *ScoringResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = NewAnalysisFailedError("score", fmt.Sprintf("panic: %v", r))
		}
	}()

	// Guards run before any scoring arithmetic.
	trimmed := strings.TrimSpace(parsed.RawText)
	if len(trimmed) < e.rules.Policy.MinContentLength {
		return nil, NewInsufficientContentError(
			fmt.Sprintf("got %d characters, need at least %d", len(trimmed), e.rules.Policy.MinContentLength))
	}
	if e.classifyGuard && !e.classifier.IsResume(parsed.RawText) {
		return nil, NewNotAResumeError("document failed the resume indicator checks")
	}

	components := map[string]ComponentScore{
		ComponentStructure:   e.component(ComponentStructure, e.scoreStructure(parsed)),
		ComponentKeywords:    e.component(ComponentKeywords, e.scoreKeywords(parsed)),
		ComponentExperience:  e.component(ComponentExperience, e.scoreExperience(parsed)),
		ComponentEducation:   e.component(ComponentEducation, e.scoreEducation(parsed)),
		ComponentReadability: e.component(ComponentReadability, e.scoreReadability(parsed)),
	}

	// Floor, never round up: a 79.9 weighted sum reports as 79.
	weighted := 0.0
	for _, cs := range components {
		weighted += float64(cs.Score) * cs.Weight
	}
	overall := int(math.Floor(weighted))

	var jobMatch *JobMatchAnalysis
	if strings.TrimSpace(jobDescription) != "" {
		jobMatch = e.analyzeJobMatch(parsed, jobTitle, jobDescription)
	}

	return &ScoringResult{
		OverallScore: overall,
		Components:   components,
		Strengths:    applyFindingRules(e.strengthRules, parsed),
		Weaknesses:   applyFindingRules(e.weaknessRules, parsed),
		Suggestions:  e.applySuggestionRules(parsed, jobMatch),
		JobMatch:     jobMatch,
	}, nil
}

// ScoreText is the convenience entry point used by the HTTP handler and
// the CLI: parse then score, under one span.
func (e *Engine) ScoreText(ctx context.Context, parser *Parser, rawText, jobTitle, jobDescription string) (*ParsedResume, *ScoringResult, error) {
	_, span := tracer.Start(ctx, "Engine.ScoreText")
	defer span.End()

	parsed := parser.Parse(rawText)
	result, err := e.Score(parsed, jobTitle, jobDescription)
	if err != nil {
		tracing.RecordError(span, err, tracing.ErrorTypeAnalysis)
		return parsed, nil, err
	}
	span.SetAttributes(
		attribute.Int("resume.word_count", parsed.Readability.WordCount),
		attribute.Int("resume.overall_score", result.OverallScore),
	)
	return parsed, result, nil
}

func (e *Engine) component(name string, score int) ComponentScore {
	return ComponentScore{
		Name:   name,
		Score:  clampScore(score),
		Weight: e.rules.Weights[name],
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
