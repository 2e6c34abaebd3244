package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vicheka.dev/internal/api"
	"vicheka.dev/internal/config"
	"vicheka.dev/internal/handlers"
)

var (
	cfgFile string
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a personal portfolio site: a project gallery, a
categorised tutorial browser and a contact page, all read from a JSON
backend. It can also export the pages as static HTML.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with PORTFOLIO_* variables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadConfig reads and validates the configuration for a command
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile, envFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Dev {
		zcfg = zap.NewDevelopmentConfig()
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		zcfg.Level = lvl
	}
	return zcfg.Build()
}

// setup loads config, logger and the site handler shared by serve and export
func setup() (*config.Config, *zap.Logger, http.Handler, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := api.New(api.Config{
		BaseURL:    cfg.API.BaseURL,
		StorageURL: cfg.API.StorageURL,
		Timeout:    cfg.API.Timeout,
		UserAgent:  cfg.API.UserAgent,
	}, api.WithLogger(logger.Named("api")))
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, fmt.Errorf("creating api client: %w", err)
	}

	h, err := handlers.SetupRoutes(cfg, client, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, err
	}
	return cfg, logger, h, nil
}
