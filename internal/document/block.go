package document

// NewBlockOrigin marks a block that was created by an edit operation
// rather than loaded from a source document.
const NewBlockOrigin = -1

// RunFormat captures the run-level attributes of one text run.
type RunFormat struct {
	Bold      bool
	Italic    bool
	Underline bool
	FontName  string
	FontSize  string
}

// Formatting is the descriptor attached to every block. Edit operations
// never modify the descriptors of blocks they do not touch.
type Formatting struct {
	Style     string
	Alignment string
	Runs      []RunFormat
}

// Block is one paragraph-equivalent unit of document text. Blocks are
// addressed by their position in the arena; Origin points back at the
// paragraph index in the loaded source document, or NewBlockOrigin for
// blocks produced by an edit.
type Block struct {
	Text   string
	Format Formatting
	Origin int
}

// NewBlock returns an unstyled block, the kind every structural edit
// inserts.
func NewBlock(text string) Block {
	return Block{Text: text, Origin: NewBlockOrigin}
}

// Clone returns a deep copy of the arena. Batch processing clones the
// template once per job so workers never share a block sequence.
func Clone(blocks []Block) []Block {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	for i := range out {
		if len(blocks[i].Format.Runs) > 0 {
			out[i].Format.Runs = append([]RunFormat(nil), blocks[i].Format.Runs...)
		}
	}
	return out
}
