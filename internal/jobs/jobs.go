// Package jobs defines the posting record the pipeline consumes and the
// batch-file loader. Where a description came from (network, file,
// clipboard) is the source collaborator's business; here it is a plain
// string.
package jobs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Posting is one job record: what to tailor a document against.
type Posting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// Label returns a human-readable identifier for logs and reports.
func (p *Posting) Label() string {
	title := strings.TrimSpace(p.Title)
	company := strings.TrimSpace(p.Company)
	switch {
	case title != "" && company != "":
		return fmt.Sprintf("%s at %s", title, company)
	case title != "":
		return title
	case company != "":
		return company
	default:
		return "untitled posting"
	}
}

// FromFile loads a batch of postings from a JSON file holding either a
// single object or an array of them.
func FromFile(path string) ([]*Posting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs file: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, errors.New("jobs file is empty")
	}
	if strings.HasPrefix(trimmed, "{") {
		var one Posting
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, fmt.Errorf("decoding jobs file: %w", err)
		}
		return []*Posting{&one}, nil
	}

	var many []*Posting
	if err := json.Unmarshal(data, &many); err != nil {
		return nil, fmt.Errorf("decoding jobs file: %w", err)
	}
	return many, nil
}
