// Package jobsource resolves a single posting reference (URL or local
// file) into a plain posting record.
package jobsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/y123ash/Job-apply-AI-agent/internal/jobs"
	"github.com/y123ash/Job-apply-AI-agent/internal/scrape"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Source turns posting references into records. URLs go through the
// scraper; .txt and .pdf files are read locally.
type Source struct {
	scraper *scrape.Client
	logger  *zap.Logger
}

func New(scraper *scrape.Client, logger *zap.Logger) *Source {
	return &Source{scraper: scraper, logger: logger}
}

// Resolve fetches or reads the referenced posting. Explicit title and
// company override whatever the source provides; for file sources the
// title falls back to the file name with dashes turned into spaces.
func (s *Source) Resolve(ctx context.Context, ref, title, company string) (*jobs.Posting, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, errors.New("a posting url or file is required")
	}

	var (
		posting *jobs.Posting
		err     error
	)

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		posting, err = s.scraper.Fetch(ctx, ref)
	} else {
		posting, err = s.fromFile(ref)
	}
	if err != nil {
		return nil, err
	}

	if title != "" {
		posting.Title = title
	}
	if company != "" {
		posting.Company = company
	}
	if strings.TrimSpace(posting.Description) == "" {
		return nil, fmt.Errorf("posting %s has an empty description", posting.Label())
	}

	return posting, nil
}

func (s *Source) fromFile(path string) (*jobs.Posting, error) {
	var (
		description string
		err         error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		description, err = readPDF(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		description = string(data)
	}
	if err != nil {
		return nil, fmt.Errorf("reading job description from %q: %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	title := strings.ReplaceAll(base, "-", " ")

	s.logger.Debug("loaded job description from file",
		zap.String("path", path),
		zap.Int("length", len(description)),
	)

	return &jobs.Posting{
		Title:       title,
		Description: description,
		Link:        "file://" + path,
	}, nil
}

func readPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", err
	}
	return buf.String(), nil
}
