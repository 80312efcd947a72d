package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/y123ash/Job-apply-AI-agent/internal/batch"
	"github.com/y123ash/Job-apply-AI-agent/internal/jobs"
	"github.com/y123ash/Job-apply-AI-agent/internal/logger"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var confirmPrompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptYes, PromptNo},
}

var batchCmd = &cobra.Command{
	Use:   "batch <jobs.json>",
	Short: "Tailor the resume template against every posting in a jobs file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBatch(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before generating documents")
	batchCmd.Flags().StringP("template", "t", "", "resume template (.docx) to tailor")
	batchCmd.Flags().IntP("workers", "w", 0, "number of concurrent workers")
}

func runBatch(cmd *cobra.Command, jobsFile string) {
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

	workers, _ := cmd.Flags().GetInt("workers")
	if workers <= 0 {
		workers = config.Workers
	}

	postings, err := jobs.FromFile(jobsFile)
	if err != nil {
		logger.Fatal("reading the jobs file", zap.Error(err))
	}

	if len(postings) == 0 {
		logger.Info("exiting", zap.String("reason", "no postings in the jobs file"))
		return
	}

	logger.Info("loaded postings", zap.Int("count", len(postings)))
	for _, posting := range postings {
		fmt.Println(" -", posting.Label())
	}

	if cmd.Flag("auto-approve").Value.String() == "false" {
		_, action, err := confirmPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if action != PromptYes {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	store := openHistory(config, logger)
	defer store.Close()

	report, err := batch.Run(ctx, batch.Config{
		TemplatePath: template,
		OutputDir:    config.OutputDir,
		Workers:      workers,
	}, batch.Deps{
		Matcher: newMatcher(logger),
		History: store,
		Logger:  logger,
	}, postings)
	if err != nil {
		logger.Fatal("running the batch", zap.Error(err))
	}

	color.Cyan("Run %s finished", report.RunID)
	for _, r := range report.Generated {
		color.Green("generated %s (%d terms)", r.OutputPath, r.Terms)
	}
	for _, f := range report.Failed {
		color.Red("failed %s: %v", f.Posting.Label(), f.Err)
	}
	color.Cyan("%d generated, %d failed", len(report.Generated), len(report.Failed))
}
