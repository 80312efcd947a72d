// Package docio loads and saves .docx files as block arenas. It is the
// only package that touches the underlying file format; the section
// model works purely on blocks.
package docio

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/y123ash/Job-apply-AI-agent/internal/document"

	"github.com/fumiama/go-docx"
)

// Outcome reports what happened to one block's formatting during Save.
// Formatting reapplication is best effort per block: a skipped block
// still has its text written, only the cosmetics are reset.
type Outcome struct {
	Index   int
	Applied bool
	Reason  string
}

// File is one loaded document: the parsed underlying document plus the
// block arena extracted from it. Each Load call owns an independent
// copy, so concurrent workers must each load their own File.
type File struct {
	doc   *docx.Docx
	paras []*docx.Paragraph

	// preItems holds the non-paragraph body items (tables, section
	// breaks) that appear before the paragraph with the same index;
	// tail holds items after the last paragraph. They ride along with
	// their following paragraph on save.
	preItems map[int][]interface{}
	tail     []interface{}

	blocks []document.Block
}

// Load parses a .docx file into a block arena. The whole file is read
// into memory up front: the parser keeps reading source parts from its
// reader until the document is written back out, so the reader has to
// outlive Load.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening document %q: %w", path, err)
	}

	doc, err := docx.Parse(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("parsing document %q: %w", path, err)
	}

	f := &File{
		doc:      doc,
		preItems: make(map[int][]interface{}),
	}

	var pending []interface{}
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			pending = append(pending, item)
			continue
		}

		idx := len(f.paras)
		if len(pending) > 0 {
			f.preItems[idx] = pending
			pending = nil
		}

		f.paras = append(f.paras, para)
		f.blocks = append(f.blocks, document.Block{
			Text:   paragraphText(para),
			Format: paragraphFormat(para),
			Origin: idx,
		})
	}
	f.tail = pending

	return f, nil
}

// Blocks returns a copy of the arena. Edits operate on the copy and are
// handed back through Save.
func (f *File) Blocks() []document.Block {
	return document.Clone(f.blocks)
}

// Save writes the edited arena to path. Blocks carrying an origin index
// reuse the loaded paragraph unchanged, so their text and formatting
// survive byte for byte; fresh blocks become new unstyled paragraphs.
// An origin-backed block whose text was edited in place gets a rebuilt
// paragraph with a best-effort formatting outcome.
func (f *File) Save(blocks []document.Block, path string) ([]Outcome, error) {
	items := make([]interface{}, 0, len(blocks)+len(f.tail))
	outcomes := make([]Outcome, 0, len(blocks))

	for i, b := range blocks {
		if b.Origin >= 0 && b.Origin < len(f.paras) {
			if pre, ok := f.preItems[b.Origin]; ok {
				items = append(items, pre...)
			}
			if para := f.paras[b.Origin]; b.Text == paragraphText(para) {
				items = append(items, para)
				outcomes = append(outcomes, Outcome{Index: i, Applied: true})
				continue
			}
			para, outcome := f.rebuildParagraph(i, b)
			items = append(items, para)
			outcomes = append(outcomes, outcome)
			continue
		}

		items = append(items, f.newParagraph(b.Text))
		outcomes = append(outcomes, Outcome{Index: i, Applied: true})
	}
	items = append(items, f.tail...)

	f.doc.Document.Body.Items = items

	out, err := os.Create(path)
	if err != nil {
		return outcomes, fmt.Errorf("creating document %q: %w", path, err)
	}
	defer out.Close()

	if _, err := f.doc.WriteTo(out); err != nil {
		return outcomes, fmt.Errorf("writing document %q: %w", path, err)
	}

	return outcomes, nil
}

// newParagraph appends a plain paragraph to the underlying document.
// AddParagraph grows Body.Items, but Save rebuilds the item list
// wholesale afterwards so the append position does not matter.
func (f *File) newParagraph(text string) *docx.Paragraph {
	para := f.doc.AddParagraph()
	if text != "" {
		para.AddText(text)
	}
	return para
}

// rebuildParagraph replaces the text of an origin-backed block and
// reapplies as much of its recorded run formatting as fits. A run-count
// mismatch between the descriptor and the rebuilt paragraph resets the
// cosmetics and reports the skip; the text is still written.
func (f *File) rebuildParagraph(index int, b document.Block) (*docx.Paragraph, Outcome) {
	para := f.doc.AddParagraph()
	var run *docx.Run
	if b.Text != "" {
		run = para.AddText(b.Text)
	}

	if b.Format.Alignment != "" {
		para.Justification(b.Format.Alignment)
	}

	if len(b.Format.Runs) > 1 {
		return para, Outcome{
			Index:  index,
			Reason: fmt.Sprintf("formatting reset: descriptor has %d runs, rebuilt paragraph has 1", len(b.Format.Runs)),
		}
	}

	if run != nil && len(b.Format.Runs) == 1 {
		styleRun(run, b.Format.Runs[0])
	}

	return para, Outcome{Index: index, Applied: true}
}

func styleRun(r *docx.Run, rf document.RunFormat) {
	if rf.Bold {
		r.Bold()
	}
	if rf.Italic {
		r.Italic()
	}
	if rf.Underline {
		r.Underline("single")
	}
	if rf.FontSize != "" {
		r.Size(rf.FontSize)
	}
}

// paragraphText concatenates the paragraph's run texts.
func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return buf.String()
}

// paragraphFormat extracts the formatting descriptor the arena carries
// for a paragraph. Only the attributes the underlying library exposes
// reliably are read; everything else stays zero.
func paragraphFormat(para *docx.Paragraph) document.Formatting {
	var format document.Formatting

	if para.Properties != nil && para.Properties.Style != nil {
		format.Style = para.Properties.Style.Val
	}

	for _, child := range para.Children {
		if _, ok := child.(*docx.Run); ok {
			format.Runs = append(format.Runs, document.RunFormat{})
		}
	}

	return format
}
