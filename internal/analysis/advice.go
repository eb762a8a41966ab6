package analysis

import (
	"fmt"
	"strings"
)

// findingRule is one deterministic threshold check. Rules are evaluated in
// declaration order so the emitted findings have a stable order; callers
// may surface only the first N.
type findingRule struct {
	severity Severity
	title    string
	applies  func(p *ParsedResume) bool
	describe func(p *ParsedResume) string
}

// suggestionRule is one advisory recommendation with a point-impact
// estimate. The impact is metadata for the caller; the engine never adds
// it to any score. Emission order is declaration order, not impact order.
type suggestionRule struct {
	title    string
	impact   int
	applies  func(p *ParsedResume, jm *JobMatchAnalysis) bool
	describe func(p *ParsedResume, jm *JobMatchAnalysis) string
}

func applyFindingRules(rules []findingRule, parsed *ParsedResume) []Finding {
	findings := make([]Finding, 0, len(rules))
	for _, rule := range rules {
		if rule.applies(parsed) {
			findings = append(findings, Finding{
				Severity:    rule.severity,
				Title:       rule.title,
				Description: rule.describe(parsed),
			})
		}
	}
	return findings
}

func (e *Engine) applySuggestionRules(parsed *ParsedResume, jobMatch *JobMatchAnalysis) []Suggestion {
	suggestions := make([]Suggestion, 0, len(e.suggestionRules))
	for _, rule := range e.suggestionRules {
		if rule.applies(parsed, jobMatch) {
			suggestions = append(suggestions, Suggestion{
				Title:       rule.title,
				Description: rule.describe(parsed, jobMatch),
				Impact:      rule.impact,
			})
		}
	}
	return suggestions
}

// buildWeaknessRules assembles the weakness table: word-count bounds first,
// then one rule per mandatory section (so an absent section yields exactly
// one weakness), then the skills floor.
func buildWeaknessRules(rules *Ruleset) []findingRule {
	policy := rules.Policy

	table := []findingRule{
		{
			severity: SeverityCritical,
			title:    "Resume Too Short",
			applies: func(p *ParsedResume) bool {
				return p.Readability.WordCount < policy.ShortWordBound
			},
			describe: func(p *ParsedResume) string {
				return fmt.Sprintf("Your resume has only %d words. Aim for at least %d words so ATS systems have enough content to evaluate.",
					p.Readability.WordCount, policy.ShortWordBound)
			},
		},
		{
			severity: SeverityWarning,
			title:    "Resume Too Long",
			applies: func(p *ParsedResume) bool {
				return p.Readability.WordCount > policy.LongWordBound
			},
			describe: func(p *ParsedResume) string {
				return fmt.Sprintf("Your resume has %d words. Consider trimming it below %d words; long documents dilute keyword density.",
					p.Readability.WordCount, policy.LongWordBound)
			},
		},
	}

	sectionSeverity := map[string]Severity{
		SectionContact:    SeverityCritical,
		SectionExperience: SeverityCritical,
		SectionEducation:  SeverityWarning,
		SectionSkills:     SeverityWarning,
	}
	for _, section := range rules.MandatorySections {
		section := section
		severity, ok := sectionSeverity[section]
		if !ok {
			severity = SeverityWarning
		}
		table = append(table, findingRule{
			severity: severity,
			title:    fmt.Sprintf("Missing %s Section", titleCase(section)),
			applies: func(p *ParsedResume) bool {
				return !p.Sections[section].Found
			},
			describe: func(p *ParsedResume) string {
				return fmt.Sprintf("No %s section was detected. ATS systems expect a clearly labeled %s section.",
					section, section)
			},
		})
	}

	table = append(table, findingRule{
		severity: SeverityWarning,
		title:    "Few Recognized Skills",
		applies: func(p *ParsedResume) bool {
			return p.Skills.Count < policy.MinHealthySkills
		},
		describe: func(p *ParsedResume) string {
			return fmt.Sprintf("Only %d recognizable skill keywords were found. List at least %d concrete skills.",
				p.Skills.Count, policy.MinHealthySkills)
		},
	})

	return table
}

// buildStrengthRules assembles the strength table, mirroring the healthy
// side of the weakness checks.
func buildStrengthRules(rules *Ruleset) []findingRule {
	policy := rules.Policy

	return []findingRule{
		{
			severity: SeverityInfo,
			title:    "Complete Core Structure",
			applies: func(p *ParsedResume) bool {
				for _, section := range rules.MandatorySections {
					if !p.Sections[section].Found {
						return false
					}
				}
				return true
			},
			describe: func(p *ParsedResume) string {
				return "All core resume sections (contact, experience, education, skills) were detected."
			},
		},
		{
			severity: SeverityInfo,
			title:    "Strong Skill Coverage",
			applies: func(p *ParsedResume) bool {
				return p.Skills.Count >= policy.StrongSkills
			},
			describe: func(p *ParsedResume) string {
				return fmt.Sprintf("%d recognizable skill keywords were found, which helps keyword-based screening.",
					p.Skills.Count)
			},
		},
		{
			severity: SeverityInfo,
			title:    "Good Length",
			applies: func(p *ParsedResume) bool {
				wc := p.Readability.WordCount
				return wc >= policy.ShortWordBound && wc <= policy.LongWordBound
			},
			describe: func(p *ParsedResume) string {
				return fmt.Sprintf("At %d words, your resume sits in the range ATS systems handle best.",
					p.Readability.WordCount)
			},
		},
	}
}

// buildSuggestionRules assembles the recommendation table. Impact values
// are policy estimates, kept static per rule.
func buildSuggestionRules(rules *Ruleset) []suggestionRule {
	policy := rules.Policy

	return []suggestionRule{
		{
			title:  "Add Missing Sections",
			impact: 12,
			applies: func(p *ParsedResume, _ *JobMatchAnalysis) bool {
				for _, section := range rules.MandatorySections {
					if !p.Sections[section].Found {
						return true
					}
				}
				return false
			},
			describe: func(p *ParsedResume, _ *JobMatchAnalysis) string {
				missing := make([]string, 0, len(rules.MandatorySections))
				for _, section := range rules.MandatorySections {
					if !p.Sections[section].Found {
						missing = append(missing, section)
					}
				}
				return fmt.Sprintf("Add clearly labeled sections for: %s.", strings.Join(missing, ", "))
			},
		},
		{
			title:  "Expand Your Content",
			impact: 10,
			applies: func(p *ParsedResume, _ *JobMatchAnalysis) bool {
				return p.Readability.WordCount < policy.ShortWordBound
			},
			describe: func(p *ParsedResume, _ *JobMatchAnalysis) string {
				return fmt.Sprintf("Grow your resume from %d towards %d-800 words with concrete accomplishments.",
					p.Readability.WordCount, policy.ShortWordBound)
			},
		},
		{
			title:  "Tighten Your Content",
			impact: 6,
			applies: func(p *ParsedResume, _ *JobMatchAnalysis) bool {
				return p.Readability.WordCount > policy.LongWordBound
			},
			describe: func(p *ParsedResume, _ *JobMatchAnalysis) string {
				return "Cut filler and keep the most recent, most relevant accomplishments."
			},
		},
		{
			title:  "Broaden Your Skills Section",
			impact: 8,
			applies: func(p *ParsedResume, _ *JobMatchAnalysis) bool {
				return p.Skills.Count < policy.MinHealthySkills
			},
			describe: func(p *ParsedResume, _ *JobMatchAnalysis) string {
				return "List the tools, languages, and methodologies you actually use, one per keyword."
			},
		},
		{
			title:  "Quantify Your Achievements",
			impact: 10,
			applies: func(p *ParsedResume, _ *JobMatchAnalysis) bool {
				info := p.Sections[SectionExperience]
				return info.Found && !metricRe.MatchString(info.Evidence)
			},
			describe: func(p *ParsedResume, _ *JobMatchAnalysis) string {
				return "Add numbers and percentages to your experience bullets (team size, revenue, latency, growth)."
			},
		},
		{
			title:  "Mirror the Job Description",
			impact: 15,
			applies: func(_ *ParsedResume, jm *JobMatchAnalysis) bool {
				return jm != nil && len(jm.MissingKeywords) > 0
			},
			describe: func(_ *ParsedResume, jm *JobMatchAnalysis) string {
				return fmt.Sprintf("Work these job description keywords into your resume where truthful: %s.",
					strings.Join(jm.MissingKeywords, ", "))
			},
		},
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
