package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/y123ash/Job-apply-AI-agent/internal/ai"
	"github.com/y123ash/Job-apply-AI-agent/internal/utils"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Writer composes tailored cover-letter bodies with Gemini. The model
// returns plain prose (no JSON envelope); anything it cannot produce
// surfaces as an error, never as content.
type Writer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewWriter(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Writer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Writer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// ComposeLetterBody generates body paragraphs for the posting. The
// returned text is checked against the propagated-failure prefix so a
// model echoing an upstream error message is treated as a failure.
func (w *Writer) ComposeLetterBody(ctx context.Context, req *ai.LetterRequest) (string, error) {
	if req == nil || req.Posting == nil {
		return "", fmt.Errorf("letter request with a posting is required")
	}

	prompt := buildPrompt(req)

	w.logger.Debug("gemini generate content request",
		zap.String("job", req.Posting.Label()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, w.maxLogLen)),
	)

	raw, err := w.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s %w", ai.GenerationFailurePrefix, err)
	}

	w.logger.Debug("gemini generate content response",
		zap.String("job", req.Posting.Label()),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, w.maxLogLen)),
	)

	body := stripFences(raw)
	if body == "" || ai.IsGenerationFailure(body) {
		return "", fmt.Errorf("%s model returned no usable prose", ai.GenerationFailurePrefix)
	}

	return body, nil
}

func buildPrompt(req *ai.LetterRequest) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Job description:\n{{JOB_DESCRIPTION}}\n\nCurrent letter:\n{{LETTER}}\n\nResume:\n{{RESUME}}\n\nTailored body:"
	}

	prompt := strings.ReplaceAll(template, "{{JOB_TITLE}}", req.Posting.Title)
	prompt = strings.ReplaceAll(prompt, "{{COMPANY}}", req.Posting.Company)
	prompt = strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", req.Posting.Description)
	prompt = strings.ReplaceAll(prompt, "{{LETTER}}", req.LetterText)
	prompt = strings.ReplaceAll(prompt, "{{RESUME}}", req.ResumeText)
	return prompt
}

// stripFences removes a markdown code fence the model may wrap its
// output in.
func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```text")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
