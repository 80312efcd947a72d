package document

import (
	"reflect"
	"testing"
)

func TestBodyRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		texts     []string
		wantStart int
		wantEnd   int
	}{
		{
			name: "greeting and closing",
			texts: []string{
				"Name: John Doe",
				"Date: 2026-01-15",
				"Dear Hiring Manager,",
				"I am writing to apply.",
				"My experience fits well.",
				"Sincerely,",
				"John Doe",
			},
			wantStart: 3,
			wantEnd:   5,
		},
		{
			name: "no greeting starts after contact labels",
			texts: []string{
				"Name: John Doe",
				"Email: john@example.com",
				"I am writing to apply.",
				"Kind regards,",
				"John",
			},
			wantStart: 2,
			wantEnd:   3,
		},
		{
			name: "no closing ends before signature block",
			texts: []string{
				"Dear Sir or Madam,",
				"First paragraph.",
				"Second paragraph.",
				"Phone: 555-0100",
			},
			wantStart: 1,
			wantEnd:   2,
		},
		{
			name:      "single plain block covers itself",
			texts:     []string{"Just one paragraph."},
			wantStart: 0,
			wantEnd:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, end := BodyRange(loadedBlocks(tt.texts...))
			if start != tt.wantStart || end != tt.wantEnd {
				t.Fatalf("BodyRange = [%d, %d), want [%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestBodyRangeSingleBlockNote(t *testing.T) {
	t.Parallel()

	// A lone greeting line yields start=1, end forced to the last index.
	start, end := BodyRange(loadedBlocks("Dear Team,"))
	if start != 1 || end != 0 {
		t.Fatalf("unexpected degenerate range [%d, %d)", start, end)
	}
}

func TestReplaceBody(t *testing.T) {
	t.Parallel()

	blocks := loadedBlocks(
		"Dear Hiring Manager,",
		"Old first paragraph.",
		"Old second paragraph.",
		"Sincerely,",
		"John Doe",
	)

	updated := ReplaceBody(blocks, "New opening.\n\nNew evidence paragraph.\n\nNew close.")

	want := []string{
		"Dear Hiring Manager,",
		"New opening.",
		"New evidence paragraph.",
		"New close.",
		"Sincerely,",
		"John Doe",
	}
	got := make([]string, len(updated))
	for i, b := range updated {
		got[i] = b.Text
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected arena: %v", got)
	}

	// Carried-over blocks keep their origin; generated ones are fresh.
	if updated[0].Origin != 0 || updated[len(updated)-1].Origin != 4 {
		t.Fatalf("boundary blocks lost their origins: %v", updated)
	}
	for i := 1; i <= 3; i++ {
		if updated[i].Origin != NewBlockOrigin {
			t.Fatalf("expected fresh block at %d, got origin %d", i, updated[i].Origin)
		}
	}
}

func TestReplaceBodyWithoutDelimiters(t *testing.T) {
	t.Parallel()

	// No greeting, no closing, no contact or signature lines: the body
	// spans from the first block up to the last one.
	blocks := loadedBlocks("First old.", "Second old.", "Last line.")

	updated := ReplaceBody(blocks, "New one.\n\nNew two.")

	got := make([]string, len(updated))
	for i, b := range updated {
		got[i] = b.Text
	}
	if !reflect.DeepEqual(got, []string{"New one.", "New two.", "Last line."}) {
		t.Fatalf("unexpected arena: %v", got)
	}
	if updated[0].Origin != NewBlockOrigin || updated[1].Origin != NewBlockOrigin {
		t.Fatalf("expected two fresh body blocks: %v", updated)
	}
	if updated[2].Origin != 2 {
		t.Fatalf("end block lost its origin: %v", updated[2])
	}
}

func TestSplitParagraphs(t *testing.T) {
	t.Parallel()

	got := SplitParagraphs("First.\r\n\r\nSecond.\n\n\n\n  Third.  \n\n")
	want := []string{"First.", "Second.", "Third."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected paragraphs: %v", got)
	}

	if got := SplitParagraphs("   \n\n  "); got != nil {
		t.Fatalf("expected no paragraphs, got %v", got)
	}
}
