package skills

// SectionContent renders the matched categories as the block texts of a
// skills section: each category name as a sub-heading line followed by
// one line per matched term, in first-seen order. Categories without
// terms are skipped.
func (m *Match) SectionContent() []string {
	var out []string
	for _, category := range m.CategoryOrder {
		terms := m.Categories[category]
		if len(terms) == 0 {
			continue
		}
		out = append(out, category)
		out = append(out, terms...)
	}
	return out
}
