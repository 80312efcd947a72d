package cmd

import (
	"errors"
	"log"

	"github.com/y123ash/Job-apply-AI-agent/internal/annotate"
	"github.com/y123ash/Job-apply-AI-agent/internal/history"
	"github.com/y123ash/Job-apply-AI-agent/internal/jobsource"
	"github.com/y123ash/Job-apply-AI-agent/internal/scrape"
	"github.com/y123ash/Job-apply-AI-agent/internal/skills"
	"github.com/y123ash/Job-apply-AI-agent/internal/taxonomy"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "job-apply"
)

type Config struct {
	Template  string         `mapstructure:"template"`
	OutputDir string         `mapstructure:"output-dir"`
	Letter    string         `mapstructure:"letter"`
	Workers   int            `mapstructure:"workers"`
	UserAgent string         `mapstructure:"user-agent"`
	AI        *AIConfig      `mapstructure:"ai"`
	History   *HistoryConfig `mapstructure:"history"`
}

type AIConfig struct {
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type HistoryConfig struct {
	DSN string `mapstructure:"dsn"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "job-apply tailors a resume template and writes cover letters for job postings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional: local .env files carry the history DSN and key paths.
	_ = godotenv.Load()

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("history.dsn", "HISTORY_DSN"); err != nil {
		log.Fatalf("binding HISTORY_DSN environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is job-apply.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// A missing default config is fine; flags and env cover everything.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}
	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// newMatcher wires the default taxonomy behind a prose-backed matcher.
func newMatcher(logger *zap.Logger) *skills.Matcher {
	return skills.New(annotate.NewProse(), taxonomy.Default(), logger)
}

func newJobSource(config *Config, logger *zap.Logger) *jobsource.Source {
	scraper := scrape.New(logger)
	if config.UserAgent != "" {
		scraper.UserAgent = config.UserAgent
	}

	return jobsource.New(scraper, logger)
}

// openHistory returns a nil store when no DSN is configured; a nil
// store records nothing.
func openHistory(config *Config, logger *zap.Logger) *history.Store {
	if config.History == nil || config.History.DSN == "" {
		return nil
	}

	store, err := history.Open(config.History.DSN)
	if err != nil {
		logger.Warn("history store unavailable", zap.Error(err))
		return nil
	}

	return store
}
