package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shortResumeText = "John Doe\nSoftware Engineer\nemail: john@x.com\nExperience: 5 years at Acme...\nEducation: BS Computer Science\nSkills: Python, SQL, Leadership"

func TestParseDetectsSections(t *testing.T) {
	p := NewParser(DefaultRules())
	parsed := p.Parse(shortResumeText)

	assert.True(t, parsed.Sections[SectionContact].Found, "contact should be detected via email/@")
	assert.True(t, parsed.Sections[SectionExperience].Found)
	assert.True(t, parsed.Sections[SectionEducation].Found)
	assert.True(t, parsed.Sections[SectionSkills].Found)
	assert.False(t, parsed.Sections[SectionSummary].Found)
	assert.False(t, parsed.Sections[SectionCertifications].Found)
	assert.Equal(t, 4, parsed.SectionsFound())
}

func TestParseRecordsEvidence(t *testing.T) {
	p := NewParser(DefaultRules())
	parsed := p.Parse(shortResumeText)

	evidence := parsed.Sections[SectionExperience].Evidence
	require.NotEmpty(t, evidence)
	assert.Contains(t, evidence, "Experience: 5 years at Acme")
}

func TestParseSkillsInventory(t *testing.T) {
	p := NewParser(DefaultRules())
	parsed := p.Parse(shortResumeText)

	assert.Equal(t, parsed.Skills.Count, len(parsed.Skills.Matched))
	assert.Contains(t, parsed.Skills.Matched, "python")
	assert.Contains(t, parsed.Skills.Matched, "sql")
	assert.Contains(t, parsed.Skills.Matched, "leadership")
}

// Substring matching is preserved source behavior: "java" also matches
// inside "javascript".
func TestParseSkillsSubstringSemantics(t *testing.T) {
	p := NewParser(DefaultRules())
	parsed := p.Parse("I write javascript every day. Contact: dev@example.com")

	assert.Contains(t, parsed.Skills.Matched, "javascript")
	assert.Contains(t, parsed.Skills.Matched, "java")
}

func TestParseEmptyInput(t *testing.T) {
	p := NewParser(DefaultRules())
	parsed := p.Parse("")

	assert.Equal(t, 0, parsed.SectionsFound())
	assert.Equal(t, 0, parsed.Skills.Count)
	assert.Equal(t, 0, parsed.Readability.WordCount)
	assert.Equal(t, 0.0, parsed.Readability.Score)
}

func TestParseWordCount(t *testing.T) {
	p := NewParser(DefaultRules())
	parsed := p.Parse("one two\tthree\n four  five")

	assert.Equal(t, 5, parsed.Readability.WordCount)
}

func TestReadabilityScoreBands(t *testing.T) {
	policy := DefaultRules().Policy

	tests := []struct {
		name      string
		wordCount int
		want      float64
	}{
		{"empty", 0, 0},
		{"very short", 50, 20},
		{"short", 150, 55},
		{"band low edge", 200, 90},
		{"band high edge", 800, 90},
		{"long", 900, 70},
		{"very long", 1500, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.ReadabilityScore(tt.wordCount))
		})
	}
}

func TestParseEvidenceStopsAtNextHeading(t *testing.T) {
	text := strings.Join([]string{
		"Jane Roe",
		"jane@roe.dev",
		"Experience",
		"Senior engineer at Initech, 2019-2024",
		"Led a platform team of 6",
		"Education",
		"MS Software Engineering",
	}, "\n")

	p := NewParser(DefaultRules())
	parsed := p.Parse(text)

	evidence := parsed.Sections[SectionExperience].Evidence
	assert.Contains(t, evidence, "Initech")
	assert.NotContains(t, evidence, "MS Software Engineering")
}
