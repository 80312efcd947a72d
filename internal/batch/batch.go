// Package batch tailors the resume template against many postings.
// Every posting gets its own freshly loaded template copy; one
// posting's failure never aborts the rest of the batch.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/y123ash/Job-apply-AI-agent/internal/docio"
	"github.com/y123ash/Job-apply-AI-agent/internal/document"
	"github.com/y123ash/Job-apply-AI-agent/internal/history"
	"github.com/y123ash/Job-apply-AI-agent/internal/jobs"
	"github.com/y123ash/Job-apply-AI-agent/internal/skills"
	"github.com/y123ash/Job-apply-AI-agent/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Extractor produces a skill profile for one description. Implemented
// by skills.Matcher; faked in tests.
type Extractor interface {
	Extract(description, jobTitle string) (*skills.Match, error)
}

// Template is one independently loaded copy of the resume template.
type Template interface {
	Blocks() []document.Block
	Save(blocks []document.Block, path string) ([]docio.Outcome, error)
}

// LoadTemplate opens a fresh template copy. Called once per posting so
// workers never share a document.
type LoadTemplate func(path string) (Template, error)

// Config holds the batch settings.
type Config struct {
	TemplatePath string
	OutputDir    string
	Workers      int
}

// Deps aggregates the collaborators the batch needs.
type Deps struct {
	Matcher Extractor
	Load    LoadTemplate
	History *history.Store
	Logger  *zap.Logger
}

// Result is one successfully generated document.
type Result struct {
	Posting    *jobs.Posting
	OutputPath string
	Terms      int
}

// Failure records one posting the batch could not process.
type Failure struct {
	Posting *jobs.Posting
	Err     error
}

// Report enumerates what the batch produced and what it skipped.
type Report struct {
	RunID     string
	Generated []Result
	Failed    []Failure
}

// Run processes every posting. Workers run concurrently up to
// cfg.Workers, each owning its own template copy; the taxonomy behind
// the matcher is read-only, so sharing the matcher is safe.
func Run(ctx context.Context, cfg Config, deps Deps, postings []*jobs.Posting) (*Report, error) {
	if cfg.TemplatePath == "" {
		return nil, fmt.Errorf("template path is required")
	}
	if deps.Load == nil {
		deps.Load = func(path string) (Template, error) { return docio.Load(path) }
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	report := &Report{RunID: uuid.NewString()}
	date := time.Now().Format("2006-01-02")

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, cfg.Workers)
	)

	for _, posting := range postings {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(posting *jobs.Posting) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := processOne(cfg, deps, posting, date)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				deps.Logger.Warn("posting failed",
					zap.String("job", posting.Label()),
					zap.Error(err),
				)
				report.Failed = append(report.Failed, Failure{Posting: posting, Err: err})
				return
			}

			deps.Logger.Info("generated tailored resume",
				zap.String("job", posting.Label()),
				zap.String("output", result.OutputPath),
				zap.Int("terms", result.Terms),
			)
			report.Generated = append(report.Generated, *result)

			if recordErr := deps.History.Record(ctx, history.Entry{
				RunID:      report.RunID,
				Link:       posting.Link,
				Company:    posting.Company,
				Title:      posting.Title,
				Terms:      result.Terms,
				OutputPath: result.OutputPath,
			}); recordErr != nil {
				deps.Logger.Warn("recording history failed", zap.Error(recordErr))
			}
		}(posting)
	}

	wg.Wait()
	return report, ctx.Err()
}

func processOne(cfg Config, deps Deps, posting *jobs.Posting, date string) (*Result, error) {
	match, err := deps.Matcher.Extract(posting.Description, posting.Title)
	if err != nil {
		return nil, fmt.Errorf("extracting skills: %w", err)
	}

	tpl, err := deps.Load(cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	blocks := tpl.Blocks()
	section := document.SkillsSectionName(blocks)
	updated := document.ReplaceSection(blocks, section, match.SectionContent())

	outputPath := filepath.Join(cfg.OutputDir, OutputFilename(date, posting))
	outcomes, err := tpl.Save(updated, outputPath)
	if err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	for _, o := range outcomes {
		if !o.Applied {
			deps.Logger.Debug("block formatting skipped",
				zap.String("job", posting.Label()),
				zap.Int("block", o.Index),
				zap.String("reason", o.Reason),
			)
		}
	}

	return &Result{Posting: posting, OutputPath: outputPath, Terms: match.Len()}, nil
}

// OutputFilename names one generated document after the run date,
// company and title.
func OutputFilename(date string, posting *jobs.Posting) string {
	company := sanitize(posting.Company, "Company")
	title := sanitize(posting.Title, "Job")
	return fmt.Sprintf("CV_%s_%s_%s.docx", date, company, title)
}

func sanitize(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return utils.SanitizeFilename(utils.FormatCompanyName(s))
}
