package ai

import (
	"context"
	"strings"

	"github.com/y123ash/Job-apply-AI-agent/internal/jobs"
)

// GenerationFailurePrefix marks a produced string as a propagated
// failure rather than usable prose. Any collaborator output starting
// with it must not be spliced into a document.
const GenerationFailurePrefix = "Error generating cover letter:"

// LetterRequest carries everything the prose generator needs to compose
// a cover letter body.
type LetterRequest struct {
	Posting    *jobs.Posting
	LetterText string
	ResumeText string
}

// Writer composes the body of a cover letter tailored to one posting.
type Writer interface {
	ComposeLetterBody(ctx context.Context, req *LetterRequest) (string, error)
}

// IsGenerationFailure reports whether a produced string is a propagated
// failure signal.
func IsGenerationFailure(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), GenerationFailurePrefix)
}
