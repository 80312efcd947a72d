package document

import "strings"

// Salutation and sign-off prefixes delimiting a cover letter body.
// Greetings are matched case-sensitively (a letter opens with a
// capitalized salutation), closings case-insensitively.
var (
	greetingPrefixes = []string{
		"Dear ", "To ", "Hi ", "Hello ", "Dear Sir", "Dear Madam",
		"Dear Hiring", "Dear Recruitment", "Dear HR",
	}

	closingPrefixes = []string{
		"sincerely", "best regards", "kind regards", "yours sincerely",
		"best", "regards", "thank you", "yours faithfully", "yours truly",
	}

	// Contact-field labels a letter header may start with; used when no
	// greeting is detected.
	contactLabels = []string{"name:", "address:", "phone:", "email:", "date:"}

	// Tokens opening a signature block; used when no closing is detected.
	signatureTokens = []string{"phone", "email", "address", "mobile", "tel", "website"}
)

// BodyRange determines the half-open block range [start, end) holding a
// cover letter's body: the run of paragraphs between the greeting line
// and the closing line.
//
// Greeting: the first block starting with a salutation prefix; the body
// starts at the following block. Without one, the body starts at the
// first block not starting with a contact-field label, or at 0.
//
// Closing: the first block at or after the greeting whose text starts
// (case-insensitively) with a sign-off prefix. Without one, the last
// non-empty block from the end that does not open a signature block.
// An end at or before start is forced to the last block index.
func BodyRange(blocks []Block) (start, end int) {
	start = -1
	end = -1

	for i, b := range blocks {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}

		if startsWithAny(text, greetingPrefixes) {
			start = i + 1
			continue
		}

		if startsWithAny(strings.ToLower(text), closingPrefixes) {
			end = i
			break
		}
	}

	if start < 0 {
		for i, b := range blocks {
			if !startsWithAny(strings.ToLower(strings.TrimSpace(b.Text)), contactLabels) {
				start = i
				break
			}
		}
	}
	if start < 0 {
		start = 0
	}

	if end < 0 {
		for i := len(blocks) - 1; i >= 0; i-- {
			text := strings.ToLower(strings.TrimSpace(blocks[i].Text))
			if text != "" && !startsWithAny(text, signatureTokens) {
				end = i
				break
			}
		}
	}

	if end < 0 || end <= start {
		end = len(blocks) - 1
		if end < 0 {
			end = 0
		}
	}

	return start, end
}

// ReplaceBody returns a new arena in which the blocks strictly inside
// the detected body range are replaced by one fresh unstyled block per
// paragraph of body (split on blank lines). Everything before the body
// start and from the body end onward is carried over verbatim, text and
// formatting alike.
func ReplaceBody(blocks []Block, body string) []Block {
	start, end := BodyRange(blocks)
	paragraphs := SplitParagraphs(body)

	out := make([]Block, 0, start+len(paragraphs)+len(blocks)-end)
	out = append(out, blocks[:start]...)
	for _, text := range paragraphs {
		out = append(out, NewBlock(text))
	}
	if end < len(blocks) {
		out = append(out, blocks[end:]...)
	}
	return out
}

// SplitParagraphs breaks generated prose into trimmed, non-empty
// paragraphs on blank-line separators.
func SplitParagraphs(text string) []string {
	var out []string
	for _, part := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func startsWithAny(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
