package cmd

import (
	"context"
	"errors"
	"log"

	"github.com/ykarpov/negobot/internal/ai"
	"github.com/ykarpov/negobot/internal/ai/gemini"
	"github.com/ykarpov/negobot/internal/negotiation"
	"github.com/ykarpov/negobot/internal/offers"
	"github.com/ykarpov/negobot/internal/secrets"
	"github.com/ykarpov/negobot/internal/templates"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "negobot"
)

type Config struct {
	// Seed fixes the offer generator's randomness; zero seeds from the clock.
	Seed     int64         `mapstructure:"seed"`
	Server   *ServerConfig `mapstructure:"server"`
	Defaults *struct {
		Strategy     string `mapstructure:"strategy"`
		TargetSalary int    `mapstructure:"target-salary"`
	} `mapstructure:"defaults"`
	AI *AIConfig `mapstructure:"ai"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "negobot is a salary negotiation simulator: a synthetic candidate argues against a synthetic recruiter",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is negobot.yaml in current directory)")
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

	// The simulator runs fine with defaults, so a missing config file is not
	// an error unless one was named explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
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

// newGenerator builds the language service client when one is configured.
// A nil return with no error means every component runs on its local
// fallback path.
func newGenerator(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Generator, error) {
	if cfg == nil || !cfg.Enabled || cfg.Gemini == nil {
		return nil, nil
	}

	apiKey, err := secrets.LoadOptional(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}
	if apiKey == "" {
		logger.Warn("language service enabled but no api key configured, running on fallback paths",
			zap.String("hint", "set ai.gemini.api-key-file or GEMINI_API_KEY_FILE"),
		)
		return nil, nil
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
	)

	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
}

// newEngine wires the full negotiation stack from configuration.
func newEngine(ctx context.Context, config *Config, logger *zap.Logger) (*negotiation.Engine, error) {
	generator, err := newGenerator(ctx, config.AI, logger)
	if err != nil {
		return nil, err
	}

	library, err := templates.Load()
	if err != nil {
		return nil, err
	}

	return negotiation.NewEngine(
		offers.NewGenerator(offers.NewCatalog(), config.Seed, logger),
		library,
		negotiation.NewEnhancer(generator, 0, logger),
		negotiation.NewEvaluator(generator, 0, logger),
		negotiation.NewAnalyzer(generator, logger),
		logger,
	)
}
