package annotate

import (
	"reflect"
	"testing"
)

func TestTokenPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag   string
		noun  bool
		modal bool
	}{
		{tag: "NN", noun: true},
		{tag: "NNS", noun: true},
		{tag: "NNP", noun: true},
		{tag: "MD", modal: true},
		{tag: "VB"},
		{tag: "JJ"},
	}

	for _, tt := range tests {
		tok := Token{Text: "x", Tag: tt.tag}
		if tok.IsNoun() != tt.noun {
			t.Fatalf("IsNoun for tag %q = %v, want %v", tt.tag, tok.IsNoun(), tt.noun)
		}
		if tok.IsModal() != tt.modal {
			t.Fatalf("IsModal for tag %q = %v, want %v", tt.tag, tok.IsModal(), tt.modal)
		}
	}
}

func TestNounPhrases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []Token
		expect []string
	}{
		{
			name: "adjective noun run",
			tokens: []Token{
				{Text: "strong", Tag: "JJ"},
				{Text: "python", Tag: "NN"},
				{Text: "skills", Tag: "NNS"},
				{Text: "are", Tag: "VBP"},
				{Text: "required", Tag: "VBN"},
			},
			expect: []string{"strong python skills"},
		},
		{
			name: "multiple runs",
			tokens: []Token{
				{Text: "the", Tag: "DT"},
				{Text: "cloud", Tag: "NN"},
				{Text: "team", Tag: "NN"},
				{Text: "uses", Tag: "VBZ"},
				{Text: "5", Tag: "CD"},
				{Text: "aws", Tag: "NNP"},
				{Text: "services", Tag: "NNS"},
			},
			expect: []string{"the cloud team", "5 aws services"},
		},
		{
			name: "run without a noun is dropped",
			tokens: []Token{
				{Text: "very", Tag: "JJ"},
				{Text: "good", Tag: "JJ"},
				{Text: "runs", Tag: "VBZ"},
			},
			expect: nil,
		},
		{
			name: "single token run is dropped",
			tokens: []Token{
				{Text: "python", Tag: "NN"},
				{Text: "runs", Tag: "VBZ"},
				{Text: "fast", Tag: "RB"},
			},
			expect: nil,
		},
		{
			name:   "no tokens",
			tokens: nil,
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NounPhrases(tt.tokens); !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("NounPhrases = %v, want %v", got, tt.expect)
			}
		})
	}
}
