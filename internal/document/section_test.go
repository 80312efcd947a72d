package document

import (
	"reflect"
	"testing"
)

// loadedBlocks fabricates an arena the way a parsed document produces
// it: every block carries its original paragraph index.
func loadedBlocks(texts ...string) []Block {
	blocks := make([]Block, len(texts))
	for i, text := range texts {
		blocks[i] = Block{Text: text, Origin: i}
	}
	return blocks
}

func TestIsHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect bool
	}{
		{name: "plain section heading", input: "SKILLS", expect: true},
		{name: "two word heading", input: "WORK EXPERIENCE", expect: true},
		{name: "heading with surrounding space", input: "  EDUCATION  ", expect: true},
		{name: "heading with punctuation", input: "SKILLS & TOOLS", expect: true},
		{name: "mixed case", input: "Skills", expect: false},
		{name: "lower case", input: "skills", expect: false},
		{name: "empty", input: "", expect: false},
		{name: "whitespace only", input: "   ", expect: false},
		{name: "synthetic header label", input: "HEADER", expect: false},
		{name: "no letters", input: "12345", expect: false},
		{name: "too long", input: "THIS UPPER CASE LINE IS WAY TOO LONG TO BE A HEADING", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsHeading(tt.input); got != tt.expect {
				t.Fatalf("IsHeading(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	blocks := loadedBlocks(
		"John Doe",
		"john.doe@example.com | +1 555 0100",
		"",
		"PROFILE",
		"Seasoned backend developer.",
		"SKILLS",
		"Python",
		"   ",
		"Go",
		"EXPERIENCE",
		"Acme Corp, 2019-2024",
	)

	sections := Parse(blocks)

	wantNames := []string{HeaderSection, "PROFILE", "SKILLS", "EXPERIENCE"}
	if !reflect.DeepEqual(sections.Names, wantNames) {
		t.Fatalf("unexpected section order: %v", sections.Names)
	}

	if got := sections.Get(HeaderSection); len(got) != 2 {
		t.Fatalf("expected 2 header blocks, got %v", got)
	}

	if got := sections.Get("SKILLS"); !reflect.DeepEqual(got, []string{"Python", "Go"}) {
		t.Fatalf("unexpected skills content: %v", got)
	}

	if sections.Has("MISSING") {
		t.Fatalf("did not expect a MISSING section")
	}
}

func TestParseDuplicateHeadingKeepsFirst(t *testing.T) {
	t.Parallel()

	blocks := loadedBlocks(
		"SKILLS", "Python",
		"EDUCATION", "BSc",
		"SKILLS", "Go",
	)

	sections := Parse(blocks)

	count := 0
	for _, name := range sections.Names {
		if name == "SKILLS" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected SKILLS to appear once in names, got %d", count)
	}

	if got := sections.Get("SKILLS"); !reflect.DeepEqual(got, []string{"Python", "Go"}) {
		t.Fatalf("expected later content appended to the first occurrence, got %v", got)
	}
}

func TestLocate(t *testing.T) {
	t.Parallel()

	blocks := loadedBlocks("intro", "SKILLS", "Python", "Go", "EDUCATION", "BSc")

	start, end, ok := Locate(blocks, "SKILLS")
	if !ok {
		t.Fatalf("expected SKILLS to be located")
	}
	if start != 1 || end != 4 {
		t.Fatalf("unexpected range [%d, %d)", start, end)
	}

	// The last section runs to the end of the document.
	start, end, ok = Locate(blocks, "EDUCATION")
	if !ok || start != 4 || end != len(blocks) {
		t.Fatalf("unexpected trailing range [%d, %d) ok=%v", start, end, ok)
	}

	if _, _, ok := Locate(blocks, "MISSING"); ok {
		t.Fatalf("did not expect MISSING to be located")
	}
}

func TestLocateFindsEveryParsedSection(t *testing.T) {
	t.Parallel()

	blocks := loadedBlocks(
		"Jane Doe",
		"PROFILE", "Engineer.",
		"SKILLS", "Go",
		"WORK EXPERIENCE", "Acme",
		"EDUCATION", "MSc",
	)

	for _, name := range Parse(blocks).Names {
		if name == HeaderSection {
			continue
		}
		if _, _, ok := Locate(blocks, name); !ok {
			t.Fatalf("parsed section %q not locatable", name)
		}
	}
}

func TestReplaceSection(t *testing.T) {
	t.Parallel()

	blocks := loadedBlocks("intro", "SKILLS", "Python", "Go", "EDUCATION", "BSc")

	updated := ReplaceSection(blocks, "SKILLS", []string{"Rust", "Kubernetes", "Terraform"})

	if len(updated) != 7 {
		t.Fatalf("unexpected arena length %d", len(updated))
	}

	// Blocks outside the replaced range carry over untouched, origin
	// indices included.
	if !reflect.DeepEqual(updated[0], blocks[0]) || !reflect.DeepEqual(updated[1], blocks[1]) {
		t.Fatalf("prefix blocks changed: %v", updated[:2])
	}
	if !reflect.DeepEqual(updated[5], blocks[4]) || !reflect.DeepEqual(updated[6], blocks[5]) {
		t.Fatalf("suffix blocks changed: %v", updated[5:])
	}

	for i := 2; i < 5; i++ {
		if updated[i].Origin != NewBlockOrigin {
			t.Fatalf("expected fresh block at %d, got origin %d", i, updated[i].Origin)
		}
	}

	if got := Parse(updated).Get("SKILLS"); !reflect.DeepEqual(got, []string{"Rust", "Kubernetes", "Terraform"}) {
		t.Fatalf("unexpected replaced content: %v", got)
	}

	// The input arena is never mutated.
	if blocks[2].Text != "Python" {
		t.Fatalf("input arena mutated: %v", blocks)
	}
}

func TestReplaceSectionIsIdempotent(t *testing.T) {
	t.Parallel()

	blocks := loadedBlocks("SKILLS", "Python", "EDUCATION", "BSc")
	content := []string{"Go", "Rust"}

	once := ReplaceSection(blocks, "SKILLS", content)
	twice := ReplaceSection(once, "SKILLS", content)

	if !reflect.DeepEqual(Parse(once), Parse(twice)) {
		t.Fatalf("second replacement changed the section view")
	}
}

func TestReplaceSectionAppendsWhenAbsent(t *testing.T) {
	t.Parallel()

	blocks := loadedBlocks("intro", "EDUCATION", "BSc")

	updated := ReplaceSection(blocks, "SKILLS", []string{"Go"})

	if len(updated) != 5 {
		t.Fatalf("unexpected arena length %d", len(updated))
	}
	if updated[3].Text != "SKILLS" || updated[4].Text != "Go" {
		t.Fatalf("expected appended section, got %v", updated[3:])
	}
	if !Parse(updated).Has("SKILLS") {
		t.Fatalf("appended section not parsed back")
	}
}

func TestReplaceSkillsWithCategoryHeadings(t *testing.T) {
	t.Parallel()

	blocks := loadedBlocks(
		"Jane Doe",
		"PROFILE", "Engineer.",
		"SKILLS", "Excel",
		"EXPERIENCE", "Acme Corp",
	)

	updated := ReplaceSection(blocks, "SKILLS", []string{"Programming Languages", "python"})
	sections := Parse(updated)

	if got := sections.Get("SKILLS"); !reflect.DeepEqual(got, []string{"Programming Languages", "python"}) {
		t.Fatalf("unexpected skills content: %v", got)
	}
	if got := sections.Get("PROFILE"); !reflect.DeepEqual(got, []string{"Engineer."}) {
		t.Fatalf("profile changed: %v", got)
	}
	if got := sections.Get("EXPERIENCE"); !reflect.DeepEqual(got, []string{"Acme Corp"}) {
		t.Fatalf("experience changed: %v", got)
	}
}

func TestAppendSection(t *testing.T) {
	t.Parallel()

	updated := AppendSection(nil, "SKILLS", []string{"Go", "Rust"})

	if len(updated) != 3 {
		t.Fatalf("unexpected arena length %d", len(updated))
	}
	if got := Parse(updated).Get("SKILLS"); !reflect.DeepEqual(got, []string{"Go", "Rust"}) {
		t.Fatalf("unexpected content: %v", got)
	}
}
