package cmd

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/y123ash/Job-apply-AI-agent/internal/batch"
	"github.com/y123ash/Job-apply-AI-agent/internal/docio"
	"github.com/y123ash/Job-apply-AI-agent/internal/document"
	"github.com/y123ash/Job-apply-AI-agent/internal/history"
	"github.com/y123ash/Job-apply-AI-agent/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor <posting url or file>",
	Short: "Generate a resume with the skills section tailored to one posting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tailor(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(tailorCmd)

	tailorCmd.Flags().StringP("template", "t", "", "resume template (.docx) to tailor")
	tailorCmd.Flags().String("title", "", "job title override")
	tailorCmd.Flags().String("company", "", "company name override")
	tailorCmd.Flags().StringP("output", "o", "", "output path (default is CV_<date>_<company>_<title>.docx in the output directory)")
}

func tailor(cmd *cobra.Command, ref string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	template := cmd.Flag("template").Value.String()
	if template == "" {
		template = config.Template
	}
	if template == "" {
		logger.Fatal("resume template is required", zap.String("hint", "set --template or the 'template' key in the configuration file"))
	}

	posting, err := newJobSource(config, logger).Resolve(ctx,
		ref,
		cmd.Flag("title").Value.String(),
		cmd.Flag("company").Value.String(),
	)
	if err != nil {
		logger.Fatal("resolving the posting", zap.Error(err))
	}

	logger.Info("tailoring resume", zap.String("job", posting.Label()))

	match, err := newMatcher(logger).Extract(posting.Description, posting.Title)
	if err != nil {
		logger.Fatal("extracting skills", zap.Error(err))
	}

	tpl, err := docio.Load(template)
	if err != nil {
		logger.Fatal("loading the template", zap.Error(err))
	}

	blocks := tpl.Blocks()
	section := document.SkillsSectionName(blocks)
	updated := document.ReplaceSection(blocks, section, match.SectionContent())

	outputPath := cmd.Flag("output").Value.String()
	if outputPath == "" {
		if config.OutputDir != "" {
			if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
				logger.Fatal("creating the output directory", zap.Error(err))
			}
		}
		date := time.Now().Format("2006-01-02")
		outputPath = filepath.Join(config.OutputDir, batch.OutputFilename(date, posting))
	}

	outcomes, err := tpl.Save(updated, outputPath)
	if err != nil {
		logger.Fatal("saving the document", zap.Error(err))
	}
	for _, o := range outcomes {
		if !o.Applied {
			logger.Debug("block formatting skipped", zap.Int("block", o.Index), zap.String("reason", o.Reason))
		}
	}

	store := openHistory(config, logger)
	defer store.Close()

	if err := store.Record(ctx, history.Entry{
		Link:       posting.Link,
		Company:    posting.Company,
		Title:      posting.Title,
		Terms:      match.Len(),
		OutputPath: outputPath,
	}); err != nil {
		logger.Warn("recording history failed", zap.Error(err))
	}

	color.Green("Tailored resume written to %s", outputPath)
	color.Cyan("Matched %d skill terms across %d categories", match.Len(), len(match.CategoryOrder))
}
