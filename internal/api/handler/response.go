package handler

import (
	"ats-checker/internal/analysis"
)

// Issue is one user-facing finding with structured severity. Severity is
// assigned inside the engine; nothing here parses markers out of strings.
type Issue struct {
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Recommendation carries an advisory suggestion. Impact is a bare signed
// point estimate; the client renders the unit.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      int    `json:"impact"`
}

// Report is the JSON body returned to the web client for a successful
// analysis.
type Report struct {
	ReportID         string  `json:"report_id"`
	OverallScore     int     `json:"overall_score"`
	FormatScore      int     `json:"format_score"`
	KeywordScore     int     `json:"keyword_score"`
	SkillsScore      int     `json:"skills_score"`
	ExperienceScore  int     `json:"experience_score"`
	EducationScore   int     `json:"education_score"`
	ReadabilityScore int     `json:"readability_score"`
	WordCount        int     `json:"word_count"`
	SectionsCount    int     `json:"sections_count"`
	TotalKeywords    int     `json:"total_keywords"`

	Issues          []Issue          `json:"issues"`
	Strengths       []Issue          `json:"strengths"`
	Recommendations []Recommendation `json:"recommendations"`

	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MissingKeywords []string `json:"missing_keywords,omitempty"`
	MatchRatio      *float64 `json:"match_ratio,omitempty"`
}

// BuildReport reshapes a ScoringResult into the HTTP contract. When no job
// description was provided the keyword score falls back to the skills
// component and the match fields stay absent.
func BuildReport(reportID string, parsed *analysis.ParsedResume, result *analysis.ScoringResult) *Report {
	skillsScore := result.Components[analysis.ComponentKeywords].Score
	keywordScore := skillsScore
	report := &Report{
		ReportID:         reportID,
		OverallScore:     result.OverallScore,
		FormatScore:      result.Components[analysis.ComponentStructure].Score,
		KeywordScore:     keywordScore,
		SkillsScore:      skillsScore,
		ExperienceScore:  result.Components[analysis.ComponentExperience].Score,
		EducationScore:   result.Components[analysis.ComponentEducation].Score,
		ReadabilityScore: result.Components[analysis.ComponentReadability].Score,
		WordCount:        parsed.Readability.WordCount,
		SectionsCount:    parsed.SectionsFound(),
		TotalKeywords:    parsed.Skills.Count,
		Issues:           make([]Issue, 0, len(result.Weaknesses)),
		Strengths:        make([]Issue, 0, len(result.Strengths)),
		Recommendations:  make([]Recommendation, 0, len(result.Suggestions)),
	}

	for _, weakness := range result.Weaknesses {
		report.Issues = append(report.Issues, Issue{
			Severity:    string(weakness.Severity),
			Title:       weakness.Title,
			Description: weakness.Description,
		})
	}
	for _, strength := range result.Strengths {
		report.Strengths = append(report.Strengths, Issue{
			Severity:    string(analysis.SeverityInfo),
			Title:       "Strength Identified",
			Description: strength.Description,
		})
	}
	for _, suggestion := range result.Suggestions {
		report.Recommendations = append(report.Recommendations, Recommendation{
			Title:       suggestion.Title,
			Description: suggestion.Description,
			Impact:      suggestion.Impact,
		})
	}

	if result.JobMatch != nil {
		ratio := result.JobMatch.MatchRatio
		report.KeywordScore = int(ratio * 100)
		report.MatchedKeywords = result.JobMatch.MatchedKeywords
		report.MissingKeywords = result.JobMatch.MissingKeywords
		report.MatchRatio = &ratio
	}
	report.KeywordScore = clamp(report.KeywordScore)

	return report
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
