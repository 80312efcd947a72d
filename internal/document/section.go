package document

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// HeaderSection absorbs any content appearing before the first
	// detected heading.
	HeaderSection = "HEADER"

	// headingMaxLen is the length bound of the heading heuristic.
	// Section headings in the supported templates are short, fully
	// upper-case lines ("SKILLS", "WORK EXPERIENCE").
	headingMaxLen = 30
)

// IsHeading reports whether a block's text marks a section boundary:
// trimmed, fully upper-case, shorter than headingMaxLen, and not the
// synthetic HEADER label. Parse and all edit operations share this
// predicate so the read and write paths cannot desynchronize.
func IsHeading(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" || utf8.RuneCountInString(t) >= headingMaxLen || t == HeaderSection {
		return false
	}

	hasLetter := false
	for _, r := range t {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// Sections is the logical view of an arena: section name to the ordered
// non-empty content block texts belonging to it. Names preserves the
// order sections appear in the document.
type Sections struct {
	Names   []string
	Content map[string][]string
}

// Get returns the content of a named section, or nil when absent.
func (s *Sections) Get(name string) []string {
	return s.Content[name]
}

// Has reports whether a section was detected.
func (s *Sections) Has(name string) bool {
	_, ok := s.Content[name]
	return ok
}

// first returns the content of the first present name, or nil.
func (s *Sections) first(names ...string) []string {
	for _, name := range names {
		if content, ok := s.Content[name]; ok {
			return content
		}
	}
	return nil
}

// Parse builds the logical section view of an arena. Every block
// belongs to exactly one section; leading content before the first
// heading lands in the synthetic HEADER section. Empty and
// whitespace-only blocks are skipped. When two headings carry the same
// text the first occurrence wins: later content is appended to the
// section opened first.
func Parse(blocks []Block) *Sections {
	sections := &Sections{
		Names:   []string{HeaderSection},
		Content: map[string][]string{HeaderSection: {}},
	}

	current := HeaderSection
	for _, b := range blocks {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}

		if IsHeading(text) {
			current = text
			if _, seen := sections.Content[current]; !seen {
				sections.Names = append(sections.Names, current)
				sections.Content[current] = []string{}
			}
			continue
		}

		sections.Content[current] = append(sections.Content[current], text)
	}

	return sections
}

// Locate finds the block range of a named section: start is the index
// of the first block whose trimmed text equals name, end is the index
// of the next heading block or len(blocks). The heading predicate is
// the same one Parse uses, so Locate succeeds for every non-synthetic
// name Parse reports.
func Locate(blocks []Block, name string) (start, end int, ok bool) {
	start = -1
	for i, b := range blocks {
		if strings.TrimSpace(b.Text) == name {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, 0, false
	}

	end = len(blocks)
	for i := start + 1; i < len(blocks); i++ {
		if IsHeading(blocks[i].Text) {
			end = i
			break
		}
	}
	return start, end, true
}

// ReplaceSection returns a new arena in which the content of the named
// section is exactly newContent, one fresh unstyled block per entry.
// Blocks outside the section's range are carried over untouched,
// formatting descriptors included. When the section does not exist the
// operation degrades to AppendSection so it is always completable.
func ReplaceSection(blocks []Block, name string, newContent []string) []Block {
	start, end, ok := Locate(blocks, name)
	if !ok {
		return AppendSection(blocks, name, newContent)
	}

	out := make([]Block, 0, start+1+len(newContent)+len(blocks)-end)
	out = append(out, blocks[:start+1]...)
	for _, text := range newContent {
		out = append(out, NewBlock(text))
	}
	out = append(out, blocks[end:]...)
	return out
}

// AppendSection returns a new arena with a fresh heading block named
// name plus one content block per entry appended at the end of the
// document. This is the explicit section-creation path; like all
// structural inserts it emits unstyled blocks.
func AppendSection(blocks []Block, name string, content []string) []Block {
	out := make([]Block, 0, len(blocks)+1+len(content))
	out = append(out, blocks...)
	out = append(out, NewBlock(name))
	for _, text := range content {
		out = append(out, NewBlock(text))
	}
	return out
}
