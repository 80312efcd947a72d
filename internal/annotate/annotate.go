// Package annotate defines the linguistic-annotation contract the skill
// matcher consumes: part-of-speech tagged tokens, noun-phrase spans and
// sentence boundaries. Implementations must be deterministic for
// identical input so matching stays reproducible.
package annotate

import "strings"

// Token is one tagged token. Tags follow the Penn Treebank set.
type Token struct {
	Text string
	Tag  string
}

// IsNoun reports whether the token is a noun or proper noun (NN, NNS,
// NNP, NNPS).
func (t Token) IsNoun() bool {
	return strings.HasPrefix(t.Tag, "NN")
}

// IsModal reports whether the token is a modal auxiliary (MD).
func (t Token) IsModal() bool {
	return t.Tag == "MD"
}

// Sentence is one segmented sentence with its tagged tokens.
type Sentence struct {
	Text   string
	Tokens []Token
}

// Annotation is the full output for one text.
type Annotation struct {
	Tokens      []Token
	NounPhrases []string
	Sentences   []Sentence
}

// Annotator produces annotations for plain text.
type Annotator interface {
	Annotate(text string) (*Annotation, error)
}

// nounPhraseTags are the tags a noun-phrase span may contain. A span
// only counts when at least one of its tokens is a noun.
func inNounPhrase(tag string) bool {
	return strings.HasPrefix(tag, "NN") ||
		strings.HasPrefix(tag, "JJ") ||
		tag == "DT" || tag == "CD"
}

// NounPhrases groups maximal runs of determiner/adjective/noun tokens
// into phrase candidates. Runs without a noun are dropped, as are
// single-token runs (those already surface as individual candidates).
func NounPhrases(tokens []Token) []string {
	var phrases []string
	var run []Token

	flush := func() {
		defer func() { run = run[:0] }()
		if len(run) < 2 {
			return
		}
		hasNoun := false
		words := make([]string, 0, len(run))
		for _, t := range run {
			if t.IsNoun() {
				hasNoun = true
			}
			words = append(words, t.Text)
		}
		if hasNoun {
			phrases = append(phrases, strings.Join(words, " "))
		}
	}

	for _, t := range tokens {
		if inNounPhrase(t.Tag) {
			run = append(run, t)
			continue
		}
		flush()
	}
	flush()

	return phrases
}
