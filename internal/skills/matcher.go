// Package skills extracts a skill/requirement profile from free-text
// job descriptions by matching annotated candidates against the static
// taxonomy.
package skills

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/y123ash/Job-apply-AI-agent/internal/annotate"
	"github.com/y123ash/Job-apply-AI-agent/internal/taxonomy"

	"go.uber.org/zap"
)

// requirementKeywords flag a sentence as a requirement independently of
// its grammar.
var requirementKeywords = []string{"required", "must", "should", "need", "essential", "necessary"}

// titleCategories maps job-title keywords to the categories seeded when
// a description yields no matches at all.
var titleCategories = []struct {
	keyword    string
	categories []string
}{
	{"developer", []string{"Programming Languages", "Frameworks & Libraries"}},
	{"engineer", []string{"Programming Languages", "Cloud & DevOps"}},
	{"data", []string{"Business & Analytics", "Programming Languages"}},
	{"analyst", []string{"Business & Analytics", "Databases"}},
	{"manager", []string{"Methodologies", "Soft Skills"}},
	{"designer", []string{"Tools & Platforms", "Soft Skills"}},
	{"marketing", []string{"Business & Analytics", "Soft Skills"}},
	{"sales", []string{"Business & Analytics", "Soft Skills"}},
	{"support", []string{"Soft Skills", "Tools & Platforms"}},
	{"admin", []string{"Tools & Platforms", "Business & Analytics"}},
}

const (
	titleSeedTerms     = 3
	terminalSeedTerms  = 5
	minCandidateLength = 2

	// minSubstringTermLength keeps one- and two-letter terms ("r",
	// "go") out of the substring pass; they only match exactly.
	minSubstringTermLength = 3
)

var punctRe = regexp.MustCompile(`[^\w\s]`)

// Match is the profile extracted from one description: the matched-term
// set, the per-category term lists (first-seen order, deduplicated) and
// the sentences flagged as requirements.
type Match struct {
	Categories    map[string][]string
	CategoryOrder []string
	Requirements  []string

	terms map[string]struct{}
}

func newMatch() *Match {
	return &Match{
		Categories: make(map[string][]string),
		terms:      make(map[string]struct{}),
	}
}

// Has reports whether a term was matched.
func (m *Match) Has(term string) bool {
	_, ok := m.terms[term]
	return ok
}

// Terms returns the matched terms. The overall set carries no defined
// order; this returns first-seen order for stable output.
func (m *Match) Terms() []string {
	out := make([]string, 0, len(m.terms))
	for _, category := range m.CategoryOrder {
		out = append(out, m.Categories[category]...)
	}
	return out
}

// Len returns the number of distinct matched terms.
func (m *Match) Len() int {
	return len(m.terms)
}

func (m *Match) add(term, category string) {
	if _, dup := m.terms[term]; !dup {
		m.terms[term] = struct{}{}
	}
	if _, known := m.Categories[category]; !known {
		m.CategoryOrder = append(m.CategoryOrder, category)
	}
	for _, existing := range m.Categories[category] {
		if existing == term {
			return
		}
	}
	m.Categories[category] = append(m.Categories[category], term)
}

// Matcher buckets description candidates into taxonomy categories. The
// taxonomy is read-only, so one Matcher is safe for concurrent use as
// long as the annotator is.
type Matcher struct {
	annotator annotate.Annotator
	taxonomy  *taxonomy.Taxonomy
	logger    *zap.Logger
}

// New creates a matcher over the given annotator and taxonomy.
func New(annotator annotate.Annotator, tax *taxonomy.Taxonomy, logger *zap.Logger) *Matcher {
	return &Matcher{
		annotator: annotator,
		taxonomy:  tax,
		logger:    logger,
	}
}

// Extract returns the skill profile of a job description. jobTitle is
// optional out-of-band context consumed only by the title-based
// fallback. The match set is never empty: the fallback chain ends by
// seeding the Soft Skills category unconditionally.
func (m *Matcher) Extract(description, jobTitle string) (*Match, error) {
	match := newMatch()

	if strings.TrimSpace(description) == "" {
		m.logger.Warn("empty job description provided")
		m.seedFallback(match, jobTitle)
		return match, nil
	}

	ann, err := m.annotator.Annotate(strings.ToLower(description))
	if err != nil {
		return nil, fmt.Errorf("annotating description: %w", err)
	}

	m.matchCandidates(match, candidates(ann))
	match.Requirements = requirementSentences(ann)

	if match.Len() == 0 {
		m.logger.Warn("no skills matched using standard approach, trying aggressive matching")
		m.matchTokensExact(match, ann.Tokens)
	}

	if match.Len() == 0 {
		m.seedFallback(match, jobTitle)
	}

	m.logger.Debug("extracted skills",
		zap.Int("terms", match.Len()),
		zap.Int("categories", len(match.CategoryOrder)),
		zap.Int("requirement_sentences", len(match.Requirements)),
	)

	return match, nil
}

// candidates collects noun phrases plus individual noun tokens, strips
// punctuation and drops anything shorter than two characters.
func candidates(ann *annotate.Annotation) []string {
	raw := make([]string, 0, len(ann.NounPhrases)+len(ann.Tokens))
	raw = append(raw, ann.NounPhrases...)
	for _, tok := range ann.Tokens {
		if tok.IsNoun() {
			raw = append(raw, tok.Text)
		}
	}

	cleaned := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(punctRe.ReplaceAllString(c, ""))
		if utf8.RuneCountInString(c) >= minCandidateLength {
			cleaned = append(cleaned, c)
		}
	}
	return cleaned
}

// matchCandidates runs the exact pass and, per unmatched candidate, the
// substring fallback. The substring direction is term-in-candidate so
// "python experience" matches "python"; the first taxonomy term that
// matches wins the candidate. Terms shorter than three characters are
// excluded from the substring pass, otherwise "r" would match inside
// almost any candidate.
func (m *Matcher) matchCandidates(match *Match, cands []string) {
	for _, cand := range cands {
		if category, ok := m.taxonomy.CategoryOf(cand); ok {
			match.add(cand, category)
			continue
		}

		m.taxonomy.Each(func(term, category string) bool {
			if utf8.RuneCountInString(term) >= minSubstringTermLength && strings.Contains(cand, term) {
				match.add(term, category)
				return false
			}
			return true
		})
	}
}

// matchTokensExact is the aggressive fallback: every individual token
// against the flat index, phrase boundaries ignored.
func (m *Matcher) matchTokensExact(match *Match, tokens []annotate.Token) {
	for _, tok := range tokens {
		text := strings.ToLower(tok.Text)
		if category, ok := m.taxonomy.CategoryOf(text); ok {
			match.add(text, category)
		}
	}
}

// seedFallback guarantees a non-empty match set: title keywords map to
// predetermined categories seeded with their first terms; failing that,
// Soft Skills is seeded unconditionally.
func (m *Matcher) seedFallback(match *Match, jobTitle string) {
	if title := strings.ToLower(jobTitle); title != "" {
		for _, tc := range titleCategories {
			if !strings.Contains(title, tc.keyword) {
				continue
			}
			for _, category := range tc.categories {
				for _, term := range firstN(m.taxonomy.Terms(category), titleSeedTerms) {
					match.add(term, category)
				}
			}
		}
		if match.Len() > 0 {
			m.logger.Warn("no skills matched, seeded generic skills from job title",
				zap.String("job_title", jobTitle),
			)
			return
		}
	}

	m.logger.Warn("no skills matched, seeding generic soft skills")
	for _, term := range firstN(m.taxonomy.Terms(taxonomy.SoftSkills), terminalSeedTerms) {
		match.add(term, taxonomy.SoftSkills)
	}
}

// requirementSentences flags sentences containing a modal auxiliary or
// one of the requirement keywords.
func requirementSentences(ann *annotate.Annotation) []string {
	var out []string
	for _, sent := range ann.Sentences {
		if isRequirement(sent) {
			out = append(out, sent.Text)
		}
	}
	return out
}

func isRequirement(sent annotate.Sentence) bool {
	for _, tok := range sent.Tokens {
		if tok.IsModal() {
			return true
		}
	}
	lower := strings.ToLower(sent.Text)
	for _, kw := range requirementKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func firstN(terms []string, n int) []string {
	if len(terms) < n {
		return terms
	}
	return terms[:n]
}
