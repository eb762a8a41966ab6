package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-checker/internal/analysis"
)

func sampleParsed() *analysis.ParsedResume {
	return &analysis.ParsedResume{
		RawText: "sample",
		Sections: map[string]analysis.SectionInfo{
			analysis.SectionContact:    {Found: true},
			analysis.SectionExperience: {Found: true},
			analysis.SectionEducation:  {Found: true},
		},
		Skills:      analysis.SkillsInventory{Count: 7, Matched: []string{"python", "sql"}},
		Readability: analysis.Readability{WordCount: 350, Score: 90},
	}
}

func sampleResult() *analysis.ScoringResult {
	return &analysis.ScoringResult{
		OverallScore: 74,
		Components: map[string]analysis.ComponentScore{
			analysis.ComponentStructure:   {Name: analysis.ComponentStructure, Score: 86, Weight: 0.25},
			analysis.ComponentKeywords:    {Name: analysis.ComponentKeywords, Score: 40, Weight: 0.30},
			analysis.ComponentExperience:  {Name: analysis.ComponentExperience, Score: 80, Weight: 0.20},
			analysis.ComponentEducation:   {Name: analysis.ComponentEducation, Score: 75, Weight: 0.10},
			analysis.ComponentReadability: {Name: analysis.ComponentReadability, Score: 90, Weight: 0.15},
		},
		Strengths: []analysis.Finding{
			{Severity: analysis.SeverityInfo, Title: "Good Length", Description: "At 350 words, your resume sits in the best range."},
		},
		Weaknesses: []analysis.Finding{
			{Severity: analysis.SeverityWarning, Title: "Missing Skills Section", Description: "No skills section was detected."},
		},
		Suggestions: []analysis.Suggestion{
			{Title: "Add Missing Sections", Description: "Add a skills section.", Impact: 12},
		},
	}
}

func TestBuildReportMapsComponents(t *testing.T) {
	report := BuildReport("report-1", sampleParsed(), sampleResult())

	assert.Equal(t, "report-1", report.ReportID)
	assert.Equal(t, 74, report.OverallScore)
	assert.Equal(t, 86, report.FormatScore)
	assert.Equal(t, 80, report.ExperienceScore)
	assert.Equal(t, 75, report.EducationScore)
	assert.Equal(t, 90, report.ReadabilityScore)
	assert.Equal(t, 350, report.WordCount)
	assert.Equal(t, 3, report.SectionsCount)
	assert.Equal(t, 7, report.TotalKeywords)
}

func TestBuildReportKeywordFallbackWithoutJobMatch(t *testing.T) {
	report := BuildReport("", sampleParsed(), sampleResult())

	// Without a job description both keyword fields track the skills
	// component, and no match fields are emitted.
	assert.Equal(t, 40, report.SkillsScore)
	assert.Equal(t, 40, report.KeywordScore)
	assert.Nil(t, report.MatchRatio)
	assert.Nil(t, report.MatchedKeywords)
	assert.Nil(t, report.MissingKeywords)
}

func TestBuildReportWithJobMatch(t *testing.T) {
	result := sampleResult()
	result.JobMatch = &analysis.JobMatchAnalysis{
		MatchedKeywords: []string{"python", "golang", "react"},
		MissingKeywords: []string{"kubernetes", "docker"},
		MatchRatio:      0.3,
	}

	report := BuildReport("", sampleParsed(), result)

	assert.Equal(t, 30, report.KeywordScore)
	assert.Equal(t, 40, report.SkillsScore, "skills score still tracks the vocabulary component")
	require.NotNil(t, report.MatchRatio)
	assert.InDelta(t, 0.3, *report.MatchRatio, 1e-9)
	assert.Equal(t, []string{"python", "golang", "react"}, report.MatchedKeywords)
	assert.Equal(t, []string{"kubernetes", "docker"}, report.MissingKeywords)
}

func TestBuildReportRenamesStrengths(t *testing.T) {
	report := BuildReport("", sampleParsed(), sampleResult())

	require.Len(t, report.Strengths, 1)
	assert.Equal(t, "Strength Identified", report.Strengths[0].Title)
	assert.Equal(t, string(analysis.SeverityInfo), report.Strengths[0].Severity)
	assert.Contains(t, report.Strengths[0].Description, "350 words")
}

func TestBuildReportPreservesIssueSeverity(t *testing.T) {
	report := BuildReport("", sampleParsed(), sampleResult())

	require.Len(t, report.Issues, 1)
	assert.Equal(t, "warning", report.Issues[0].Severity)
	assert.Equal(t, "Missing Skills Section", report.Issues[0].Title)

	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, 12, report.Recommendations[0].Impact)
}

func TestBuildReportEncodesEmptyListsAsArrays(t *testing.T) {
	result := sampleResult()
	result.Strengths = nil
	result.Weaknesses = nil
	result.Suggestions = nil

	data, err := json.Marshal(BuildReport("", sampleParsed(), result))
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"issues":[]`)
	assert.Contains(t, body, `"strengths":[]`)
	assert.Contains(t, body, `"recommendations":[]`)
	assert.NotContains(t, body, "match_ratio")
}
