package analysis

import (
	"strings"
)

// Parser splits raw resume text into sections and computes the readability
// metrics and skills inventory. It never fails: empty input yields a
// ParsedResume with nothing found, which the engine guard then rejects.
type Parser struct {
	rules *Ruleset
}

// NewParser builds a parser over the given rule tables.
func NewParser(rules *Ruleset) *Parser {
	return &Parser{rules: rules}
}

// Parse produces the ParsedResume for rawText.
func (p *Parser) Parse(rawText string) *ParsedResume {
	lower := strings.ToLower(rawText)
	lines := strings.Split(rawText, "\n")
	lowerLines := make([]string, len(lines))
	for i, line := range lines {
		lowerLines[i] = strings.ToLower(line)
	}

	sections := make(map[string]SectionInfo, len(p.rules.SectionOrder))
	for _, section := range p.rules.SectionOrder {
		sections[section] = p.detectSection(section, lower, lines, lowerLines)
	}

	matched := make([]string, 0)
	for _, skill := range p.rules.SkillsVocabulary {
		// Substring match, so "java" also hits inside "javascript". This
		// mirrors the historical matching semantics; see DESIGN.md.
		if strings.Contains(lower, skill) {
			matched = append(matched, skill)
		}
	}

	wordCount := len(strings.Fields(rawText))

	return &ParsedResume{
		RawText:  rawText,
		Sections: sections,
		Skills: SkillsInventory{
			Count:   len(matched),
			Matched: matched,
		},
		Readability: Readability{
			WordCount: wordCount,
			Score:     p.rules.Policy.ReadabilityScore(wordCount),
		},
	}
}

// detectSection tests the section's keyword list (case-insensitive
// substring) against the text. Contact additionally accepts a literal '@'
// as an email signal. Evidence is the first matching line plus the span up
// to the next recognizable heading or the evidence window, whichever comes
// first.
func (p *Parser) detectSection(section, lower string, lines, lowerLines []string) SectionInfo {
	keywords := p.rules.SectionKeywords[section]

	found := false
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			found = true
			break
		}
	}
	if !found && section == SectionContact && strings.Contains(lower, "@") {
		found = true
	}
	if !found {
		return SectionInfo{}
	}

	start := -1
	for i, line := range lowerLines {
		if section == SectionContact && strings.Contains(line, "@") {
			start = i
			break
		}
		for _, kw := range keywords {
			if strings.Contains(line, kw) {
				start = i
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return SectionInfo{Found: true}
	}

	end := start + 1
	limit := start + p.rules.Policy.EvidenceLines
	if limit > len(lines) {
		limit = len(lines)
	}
	for end < limit {
		if other := p.headingFor(lowerLines[end]); other != "" && other != section {
			break
		}
		end++
	}

	return SectionInfo{
		Found:    true,
		Evidence: strings.TrimSpace(strings.Join(lines[start:end], "\n")),
	}
}

// headingFor reports which section, if any, the line looks like a heading
// of. Short lines containing a section keyword are treated as headings.
func (p *Parser) headingFor(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > 48 {
		return ""
	}
	for _, section := range p.rules.SectionOrder {
		for _, kw := range p.rules.SectionKeywords[section] {
			if strings.Contains(trimmed, kw) {
				return section
			}
		}
	}
	return ""
}
