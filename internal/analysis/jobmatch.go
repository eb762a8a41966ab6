package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// Token splitter for job descriptions. '+', '#', and '.' survive so terms
// like "c++", "c#", and "node.js" stay intact.
var jobTokenSplitRe = regexp.MustCompile(`[^a-z0-9+#.]+`)

// analyzeJobMatch extracts a candidate keyword set from the job title and
// description, checks which keywords the resume text covers, and reports
// the top missing keywords ranked by how often the job description repeats
// them (ties keep first-appearance order; ranking by frequency is a policy
// choice, see DESIGN.md).
func (e *Engine) analyzeJobMatch(parsed *ParsedResume, jobTitle, jobDescription string) *JobMatchAnalysis {
	resumeLower := strings.ToLower(parsed.RawText)
	source := strings.ToLower(jobTitle + "\n" + jobDescription)

	frequency := make(map[string]int)
	order := make([]string, 0)
	for _, token := range jobTokenSplitRe.Split(source, -1) {
		token = strings.Trim(token, ".")
		if len(token) < 3 {
			continue
		}
		if _, stop := e.rules.Stopwords[token]; stop {
			continue
		}
		if _, seen := frequency[token]; !seen {
			order = append(order, token)
		}
		frequency[token]++
	}

	if len(order) == 0 {
		return &JobMatchAnalysis{
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
			MatchRatio:      0,
		}
	}

	matched := make([]string, 0, len(order))
	missing := make([]string, 0, len(order))
	for _, token := range order {
		if strings.Contains(resumeLower, token) {
			matched = append(matched, token)
		} else {
			missing = append(missing, token)
		}
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return frequency[missing[i]] > frequency[missing[j]]
	})
	if limit := e.rules.Policy.TopMissingKeywords; limit > 0 && len(missing) > limit {
		missing = missing[:limit]
	}

	return &JobMatchAnalysis{
		MatchedKeywords: matched,
		MissingKeywords: missing,
		MatchRatio:      float64(len(matched)) / float64(len(order)),
	}
}
