package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/y123ash/Job-apply-AI-agent/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <posting url>",
	Short: "Fetch a posting and print it as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fetch(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("title", "", "job title override")
	fetchCmd.Flags().String("company", "", "company name override")
}

func fetch(cmd *cobra.Command, ref string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	posting, err := newJobSource(config, logger).Resolve(ctx,
		ref,
		cmd.Flag("title").Value.String(),
		cmd.Flag("company").Value.String(),
	)
	if err != nil {
		logger.Fatal("fetching the posting", zap.Error(err))
	}

	pretty, err := json.MarshalIndent(posting, "", "  ")
	if err != nil {
		logger.Fatal("encoding the posting", zap.Error(err))
	}

	fmt.Println(string(pretty))
}
