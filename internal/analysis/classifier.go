package analysis

import "strings"

// Classifier decides whether a document is a resume at all. It is a pure
// function over two fixed indicator lists; thresholds come from the policy
// table.
type Classifier struct {
	rules *Ruleset
}

// NewClassifier builds a classifier over the given rule tables.
func NewClassifier(rules *Ruleset) *Classifier {
	return &Classifier{rules: rules}
}

// IsResume classifies rawText. A document passes when it carries enough
// positive resume indicators, fewer negative (billing-style) indicators
// than positive ones, enough words, and an email signal.
func (c *Classifier) IsResume(rawText string) bool {
	lower := strings.ToLower(rawText)

	resumeScore := countPresent(lower, c.rules.ResumeIndicators)
	nonResumeScore := countPresent(lower, c.rules.NonResumeIndicators)
	wordCount := len(strings.Fields(rawText))

	return resumeScore >= c.rules.Policy.MinResumeIndicators &&
		nonResumeScore < resumeScore &&
		wordCount >= c.rules.Policy.MinResumeWords &&
		(strings.Contains(lower, "@") || strings.Contains(lower, "email"))
}

func countPresent(lower string, indicators []string) int {
	n := 0
	for _, indicator := range indicators {
		if strings.Contains(lower, indicator) {
			n++
		}
	}
	return n
}
