package annotate

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Prose annotates text with the prose NLP library. The library's
// segmenter and tagger are pure functions of their input, which keeps
// the Annotator contract's determinism guarantee.
type Prose struct{}

// NewProse returns a prose-backed annotator.
func NewProse() *Prose {
	return &Prose{}
}

// Annotate segments the text into sentences, tags each sentence's
// tokens, and derives noun-phrase spans from the tag runs. Named-entity
// extraction is disabled; the matcher only needs tags and boundaries.
func (p *Prose) Annotate(text string) (*Annotation, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false),
	)
	if err != nil {
		return nil, fmt.Errorf("segmenting text: %w", err)
	}

	ann := &Annotation{}
	for _, sent := range doc.Sentences() {
		tokens, err := tagSentence(sent.Text)
		if err != nil {
			return nil, err
		}
		ann.Sentences = append(ann.Sentences, Sentence{Text: sent.Text, Tokens: tokens})
		ann.Tokens = append(ann.Tokens, tokens...)
	}

	ann.NounPhrases = NounPhrases(ann.Tokens)
	return ann, nil
}

// tagSentence runs tokenization and tagging on a single sentence so
// tokens stay aligned with the sentence they came from.
func tagSentence(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tagging sentence: %w", err)
	}

	raw := doc.Tokens()
	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		tokens = append(tokens, Token{Text: t.Text, Tag: t.Tag})
	}
	return tokens, nil
}
