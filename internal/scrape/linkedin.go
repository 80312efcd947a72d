// Package scrape fetches job postings from public listing pages. It is
// a description source: downstream code only ever sees the plain-text
// posting it produces.
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/y123ash/Job-apply-AI-agent/internal/jobs"
	"github.com/y123ash/Job-apply-AI-agent/internal/utils"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	defaultRetries    = 2
	defaultRetryDelay = 2 * time.Second
)

var collapseRe = regexp.MustCompile(`\s+`)

// Client fetches and extracts postings from LinkedIn job pages.
// Transport errors are retried with a fixed delay; non-200 responses
// are not, the board is telling us something.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	Retries    int
	RetryDelay time.Duration
	logger     *zap.Logger
}

// New creates a scraping client with a bounded request timeout.
func New(logger *zap.Logger) *Client {
	return &Client{
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		UserAgent:  defaultUserAgent,
		Retries:    defaultRetries,
		RetryDelay: defaultRetryDelay,
		logger:     logger,
	}
}

// Fetch downloads a job page and extracts title, company and
// description. The page markup is consulted selector-first with a
// generic fallback, so a partially extracted posting still carries a
// usable description.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*jobs.Posting, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return nil, fmt.Errorf("invalid posting url %q", rawURL)
	}

	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching posting: unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing posting page: %w", err)
	}

	posting := &jobs.Posting{
		Link:        rawURL,
		Title:       cleanText(doc.Find("h1.top-card-layout__title").First().Text()),
		Company:     cleanText(doc.Find("a.topcard__org-name-link").First().Text()),
		Description: cleanText(doc.Find("div.show-more-less-html__markup").First().Text()),
	}

	if posting.Description == "" {
		posting.Description = cleanText(doc.Find("div.description__text").First().Text())
	}
	if posting.Title == "" {
		posting.Title = cleanText(doc.Find("h1").First().Text())
	}
	if posting.Description == "" {
		return nil, fmt.Errorf("no job description found at %s", rawURL)
	}

	c.logger.Debug("fetched posting",
		zap.String("url", rawURL),
		zap.String("title", posting.Title),
		zap.String("company", posting.Company),
		zap.Int("description_length", len(posting.Description)),
	)

	return posting, nil
}

func (c *Client) get(ctx context.Context, rawURL string) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.Retries; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying posting fetch",
				zap.String("url", rawURL),
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := utils.WaitFor(ctx, c.RetryDelay); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}
		req.Header.Set("User-Agent", c.UserAgent)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		return resp, nil
	}

	return nil, fmt.Errorf("fetching posting: %w", lastErr)
}

func cleanText(s string) string {
	return strings.TrimSpace(collapseRe.ReplaceAllString(s, " "))
}
