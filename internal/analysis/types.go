// Package analysis holds the resume analysis core: the structural parser,
// the resume classifier, and the scoring engine. Everything in here is a
// pure function of its inputs plus the read-only rule tables injected at
// construction time.
package analysis

// Severity tags a finding at generation time. The HTTP layer serializes it
// directly; no marker parsing happens anywhere.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Section names recognized by the structural parser.
const (
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
)

// Component names contributing to the overall score.
const (
	ComponentStructure   = "structure"
	ComponentKeywords    = "keywords"
	ComponentExperience  = "experience"
	ComponentEducation   = "education"
	ComponentReadability = "readability"
)

// SectionInfo records whether a section was detected and the text span that
// triggered the detection.
type SectionInfo struct {
	Found    bool
	Evidence string
}

// SkillsInventory is the result of matching the text against the skills
// vocabulary.
type SkillsInventory struct {
	Count   int
	Matched []string
}

// Readability carries the word count and the derived readability score.
type Readability struct {
	WordCount int
	Score     float64 // in [0,100]
}

// ParsedResume is the structural parser's output. It is built once per
// request and never mutated afterwards.
type ParsedResume struct {
	RawText     string
	Sections    map[string]SectionInfo
	Skills      SkillsInventory
	Readability Readability
}

// SectionsFound counts detected sections.
func (p *ParsedResume) SectionsFound() int {
	n := 0
	for _, info := range p.Sections {
		if info.Found {
			n++
		}
	}
	return n
}

// ComponentScore is one weighted sub-score of the overall result.
type ComponentScore struct {
	Name   string
	Score  int     // in [0,100]
	Weight float64 // in [0,1]; all weights sum to 1.0
}

// Finding is a single strength or weakness with structured severity.
type Finding struct {
	Severity    Severity
	Title       string
	Description string
}

// Suggestion is advisory metadata for the caller. Impact is an estimate in
// score points, signed; the engine never applies it to any score.
type Suggestion struct {
	Title       string
	Description string
	Impact      int
}

// JobMatchAnalysis compares resume content against a job description's
// keyword set.
type JobMatchAnalysis struct {
	MatchedKeywords []string
	MissingKeywords []string
	MatchRatio      float64
}

// ScoringResult is the terminal artifact of one analysis. It is built fresh
// per request and never persisted.
type ScoringResult struct {
	OverallScore int
	Components   map[string]ComponentScore
	Strengths    []Finding
	Weaknesses   []Finding
	Suggestions  []Suggestion
	JobMatch     *JobMatchAnalysis // nil when no job description was given
}
