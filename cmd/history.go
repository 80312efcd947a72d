package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/y123ash/Job-apply-AI-agent/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently generated documents",
	Run: func(cmd *cobra.Command, _ []string) {
		showHistory(cmd)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of entries to show")
}

func showHistory(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	store := openHistory(config, logger)
	if store == nil {
		logger.Fatal("history store is not configured", zap.String("hint", "set history.dsn in the configuration file or the HISTORY_DSN environment variable"))
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")

	entries, err := store.Recent(ctx, limit)
	if err != nil {
		logger.Fatal("listing history", zap.Error(err))
	}

	if len(entries) == 0 {
		logger.Info("no generated documents recorded yet")
		return
	}

	for _, e := range entries {
		fmt.Printf("%s  %-40s  %d terms  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%s / %s", e.Company, e.Title),
			e.Terms,
			e.OutputPath,
		)
	}
}
