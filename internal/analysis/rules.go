package analysis

// Policy groups the tunable thresholds so they can be adjusted (or swapped
// for test fixtures) without touching the rule logic.
type Policy struct {
	MinContentLength    int // below this many characters scoring refuses to run
	MinResumeIndicators int // positive indicators required by the classifier
	MinResumeWords      int // word count required by the classifier

	StructureBase int // structure score before section bonuses
	SectionBonus  int // added per mandatory section found

	ShortWordBound   int // below this word count the resume is "too short"
	LongWordBound    int // above this word count the resume is "too long"
	MinHealthySkills int // fewer matched skills than this is a weakness
	StrongSkills     int // at least this many matched skills is a strength

	TopMissingKeywords int // job-match report caps missing keywords here
	EvidenceLines      int // max lines captured as section evidence
}

// Ruleset is the read-only configuration of the analysis core: keyword
// tables, vocabulary, weights, and policy thresholds. It is loaded once at
// startup and shared across requests without mutation.
type Ruleset struct {
	// SectionOrder fixes iteration order; map iteration must never leak
	// into output ordering.
	SectionOrder      []string
	SectionKeywords   map[string][]string
	MandatorySections []string

	SkillsVocabulary []string

	ResumeIndicators    []string
	NonResumeIndicators []string

	Stopwords map[string]struct{}

	Weights map[string]float64

	Policy Policy
}

// DefaultRules returns the production rule tables.
func DefaultRules() *Ruleset {
	return &Ruleset{
		SectionOrder: []string{
			SectionContact,
			SectionSummary,
			SectionExperience,
			SectionEducation,
			SectionSkills,
			SectionCertifications,
		},
		SectionKeywords: map[string][]string{
			SectionContact:        {"email", "phone", "linkedin", "contact"},
			SectionSummary:        {"summary", "objective", "profile", "about me"},
			SectionExperience:     {"experience", "employment", "work history", "career"},
			SectionEducation:      {"education", "university", "college", "degree", "academic"},
			SectionSkills:         {"skills", "technologies", "competencies", "proficiencies"},
			SectionCertifications: {"certification", "certificate", "licensed", "credential"},
		},
		MandatorySections: []string{
			SectionContact,
			SectionExperience,
			SectionEducation,
			SectionSkills,
		},
		SkillsVocabulary: []string{
			"python", "java", "javascript", "typescript", "golang", "c++", "c#",
			"sql", "nosql", "html", "css", "react", "angular", "vue", "node.js",
			"django", "spring", "docker", "kubernetes", "terraform", "aws",
			"azure", "gcp", "linux", "git", "ci/cd", "rest", "graphql",
			"microservices", "machine learning", "data analysis", "excel",
			"tableau", "agile", "scrum", "project management", "leadership",
			"communication", "teamwork", "problem solving", "testing",
			"automation", "security", "networking", "devops",
		},
		ResumeIndicators: []string{
			"experience", "education", "skills", "employment", "resume",
			"curriculum vitae", "objective", "summary", "references",
			"internship", "achievements", "career", "qualifications",
			"work history", "certifications",
		},
		NonResumeIndicators: []string{
			"invoice", "amount due", "balance", "payment terms", "receipt",
			"purchase order", "subtotal", "tax id", "bill to", "remittance",
		},
		Stopwords: toSet([]string{
			"the", "and", "for", "with", "you", "your", "our", "are", "will",
			"have", "has", "this", "that", "from", "they", "their", "who",
			"what", "when", "where", "which", "must", "should", "can", "all",
			"any", "not", "but", "about", "into", "than", "then", "them",
			"were", "was", "been", "being", "also", "such", "more", "most",
			"other", "some", "these", "those", "per", "via", "including",
			"ability", "years", "work", "working", "team", "role", "job",
			"candidate", "ideal", "required", "preferred", "strong",
			"excellent", "knowledge", "plus", "etc",
		}),
		Weights: map[string]float64{
			ComponentStructure:   0.25,
			ComponentKeywords:    0.30,
			ComponentExperience:  0.20,
			ComponentEducation:   0.10,
			ComponentReadability: 0.15,
		},
		Policy: Policy{
			MinContentLength:    50,
			MinResumeIndicators: 3,
			MinResumeWords:      100,
			StructureBase:       70,
			SectionBonus:        8,
			ShortWordBound:      200,
			LongWordBound:       1000,
			MinHealthySkills:    5,
			StrongSkills:        10,
			TopMissingKeywords:  10,
			EvidenceLines:       40,
		},
	}
}

// ReadabilityScore maps a word count onto [0,100]. The 200-800 word band
// scores highest; very short and very long documents are penalized.
func (p Policy) ReadabilityScore(wordCount int) float64 {
	switch {
	case wordCount == 0:
		return 0
	case wordCount < 100:
		return 20
	case wordCount < 200:
		return 55
	case wordCount <= 800:
		return 90
	case wordCount <= 1000:
		return 70
	default:
		return 45
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
