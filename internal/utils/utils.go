package utils

import (
	"context"
	"regexp"
	"strings"
	"time"
)

var sleep = time.Sleep

func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sleep(d)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

var (
	invalidFilenameRe = regexp.MustCompile(`[\\/*?:"<>|]`)
	whitespaceRe      = regexp.MustCompile(`\s+`)
)

// SanitizeFilename replaces characters that are invalid in filenames
// with underscores.
func SanitizeFilename(name string) string {
	return invalidFilenameRe.ReplaceAllString(name, "_")
}

// FormatCompanyName collapses whitespace and replaces spaces with
// underscores for filename use.
func FormatCompanyName(company string) string {
	company = whitespaceRe.ReplaceAllString(strings.TrimSpace(company), " ")
	return strings.ReplaceAll(company, " ", "_")
}
