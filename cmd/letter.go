package cmd

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/y123ash/Job-apply-AI-agent/internal/ai"
	"github.com/y123ash/Job-apply-AI-agent/internal/ai/gemini"
	"github.com/y123ash/Job-apply-AI-agent/internal/docio"
	"github.com/y123ash/Job-apply-AI-agent/internal/document"
	"github.com/y123ash/Job-apply-AI-agent/internal/logger"
	"github.com/y123ash/Job-apply-AI-agent/internal/secrets"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var letterCmd = &cobra.Command{
	Use:   "letter <posting url or file>",
	Short: "Rewrite the cover letter body for one posting with Gemini",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		letter(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(letterCmd)

	letterCmd.Flags().StringP("letter", "l", "", "cover letter template (.docx)")
	letterCmd.Flags().String("resume", "", "tailored resume (.docx) to draw facts from")
	letterCmd.Flags().String("title", "", "job title override")
	letterCmd.Flags().String("company", "", "company name override")
	letterCmd.Flags().StringP("output", "o", "", "output path (default is Letter_<date>_<company>.docx in the output directory)")
}

func letter(cmd *cobra.Command, ref string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	letterPath := cmd.Flag("letter").Value.String()
	if letterPath == "" {
		letterPath = config.Letter
	}
	if letterPath == "" {
		logger.Fatal("cover letter template is required", zap.String("hint", "set --letter or the 'letter' key in the configuration file"))
	}

	posting, err := newJobSource(config, logger).Resolve(ctx,
		ref,
		cmd.Flag("title").Value.String(),
		cmd.Flag("company").Value.String(),
	)
	if err != nil {
		logger.Fatal("resolving the posting", zap.Error(err))
	}

	writer, err := newLetterWriter(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the letter writer", zap.Error(err))
	}

	tpl, err := docio.Load(letterPath)
	if err != nil {
		logger.Fatal("loading the letter template", zap.Error(err))
	}
	blocks := tpl.Blocks()

	req := &ai.LetterRequest{
		Posting:    posting,
		LetterText: document.AllText(blocks),
	}

	if resumePath := resolveResumePath(cmd, config); resumePath != "" {
		resume, err := docio.Load(resumePath)
		if err != nil {
			logger.Fatal("loading the resume", zap.Error(err))
		}
		req.ResumeText = document.AllText(resume.Blocks())
	}

	logger.Info("composing cover letter", zap.String("job", posting.Label()))

	body, err := writer.ComposeLetterBody(ctx, req)
	if err != nil {
		logger.Fatal("composing the letter body", zap.Error(err))
	}

	updated := document.ReplaceBody(blocks, body)

	outputPath := cmd.Flag("output").Value.String()
	if outputPath == "" {
		if config.OutputDir != "" {
			if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
				logger.Fatal("creating the output directory", zap.Error(err))
			}
		}
		date := time.Now().Format("2006-01-02")
		name := "Letter_" + date
		if posting.Company != "" {
			name += "_" + strings.ReplaceAll(posting.Company, " ", "_")
		}
		outputPath = filepath.Join(config.OutputDir, name+".docx")
	}

	if _, err := tpl.Save(updated, outputPath); err != nil {
		logger.Fatal("saving the letter", zap.Error(err))
	}

	color.Green("Cover letter written to %s", outputPath)
}

func newLetterWriter(ctx context.Context, config *Config, logger *zap.Logger) (ai.Writer, error) {
	gcfg := &GeminiConfig{}
	if config.AI != nil && config.AI.Gemini != nil {
		gcfg = config.AI.Gemini
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: gcfg.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model)
	if err != nil {
		return nil, err
	}

	writerLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewWriter(generator, writerLogger, gcfg.MaxLogLength), nil
}

func resolveResumePath(cmd *cobra.Command, config *Config) string {
	if p := cmd.Flag("resume").Value.String(); p != "" {
		return p
	}
	return config.Template
}
