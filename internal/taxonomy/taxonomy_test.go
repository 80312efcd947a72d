package taxonomy

import (
	"strings"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	t.Parallel()

	tax := Default()

	categories := tax.Categories()
	if len(categories) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(categories))
	}

	for _, c := range categories {
		if len(c.Terms) == 0 {
			t.Fatalf("category %q has no terms", c.Name)
		}
		for _, term := range c.Terms {
			if term != strings.ToLower(term) {
				t.Fatalf("term %q in %q is not lower case", term, c.Name)
			}
		}
	}

	if terms := tax.Terms(SoftSkills); len(terms) < 5 {
		t.Fatalf("soft skills must carry enough terms for terminal seeding, got %d", len(terms))
	}
}

func TestCategoryOf(t *testing.T) {
	t.Parallel()

	tax := Default()

	tests := []struct {
		term     string
		category string
		ok       bool
	}{
		{term: "python", category: "Programming Languages", ok: true},
		{term: "aws", category: "Cloud & DevOps", ok: true},
		{term: "communication", category: SoftSkills, ok: true},
		{term: "Python", ok: false},
		{term: "cobol", ok: false},
	}

	for _, tt := range tests {
		category, ok := tax.CategoryOf(tt.term)
		if ok != tt.ok || category != tt.category {
			t.Fatalf("CategoryOf(%q) = (%q, %v), want (%q, %v)", tt.term, category, ok, tt.category, tt.ok)
		}
	}
}

func TestNewFirstCategoryWinsDuplicates(t *testing.T) {
	t.Parallel()

	tax := New([]Category{
		{Name: "First", Terms: []string{"shared", "alpha"}},
		{Name: "Second", Terms: []string{"shared", "beta"}},
	})

	if category, _ := tax.CategoryOf("shared"); category != "First" {
		t.Fatalf("expected duplicate term to keep its first category, got %q", category)
	}
}

func TestEachStopsEarly(t *testing.T) {
	t.Parallel()

	tax := Default()

	visited := 0
	tax.Each(func(term, category string) bool {
		visited++
		return false
	})

	if visited != 1 {
		t.Fatalf("expected the walk to stop after one pair, visited %d", visited)
	}
}

func TestTermsUnknownCategory(t *testing.T) {
	t.Parallel()

	if terms := Default().Terms("Unknown"); terms != nil {
		t.Fatalf("expected nil terms, got %v", terms)
	}
}
