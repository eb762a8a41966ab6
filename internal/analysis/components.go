package analysis

import (
	"regexp"
	"strings"
)

// Signals that an experience section carries substance rather than a bare
// heading: calendar years and quantified results.
var (
	yearRe   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	metricRe = regexp.MustCompile(`\d+\s*%|\d+\+|\$\s*\d+`)
)

// scoreStructure starts from the base value and adds a fixed bonus for
// every mandatory section found, capped at 100.
func (e *Engine) scoreStructure(parsed *ParsedResume) int {
	score := e.rules.Policy.StructureBase
	for _, section := range e.rules.MandatorySections {
		if parsed.Sections[section].Found {
			score += e.rules.Policy.SectionBonus
		}
	}
	return score
}

// scoreKeywords is the matched share of the skills vocabulary, scaled to
// [0,100].
func (e *Engine) scoreKeywords(parsed *ParsedResume) int {
	vocabSize := len(e.rules.SkillsVocabulary)
	if vocabSize == 0 {
		return 0
	}
	score := parsed.Skills.Count * 100 / vocabSize
	if score > 100 {
		score = 100
	}
	return score
}

// scoreExperience inspects the experience section's content, not just its
// presence: longer evidence, calendar years, and quantified results all
// raise the score.
func (e *Engine) scoreExperience(parsed *ParsedResume) int {
	info := parsed.Sections[SectionExperience]
	if !info.Found {
		return 25
	}

	score := 55
	evidenceWords := len(strings.Fields(info.Evidence))
	lengthBonus := evidenceWords / 8
	if lengthBonus > 25 {
		lengthBonus = 25
	}
	score += lengthBonus

	if yearRe.MatchString(info.Evidence) {
		score += 10
	}
	if metricRe.MatchString(info.Evidence) {
		score += 10
	}
	return score
}

// scoreEducation rewards a present education section with content.
func (e *Engine) scoreEducation(parsed *ParsedResume) int {
	info := parsed.Sections[SectionEducation]
	if !info.Found {
		return 35
	}

	score := 75
	evidenceWords := len(strings.Fields(info.Evidence))
	lengthBonus := evidenceWords / 6
	if lengthBonus > 25 {
		lengthBonus = 25
	}
	return score + lengthBonus
}

// scoreReadability passes the parser's precomputed score through; it is
// already bounded to [0,100].
func (e *Engine) scoreReadability(parsed *ParsedResume) int {
	return int(parsed.Readability.Score)
}
