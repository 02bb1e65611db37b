// Package main is the entry point for the venturelens CLI. Subcommands run
// startup idea analyses, serve the web interface, and browse the report
// archive.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/venturelens/venturelens/internal/config"
	"github.com/venturelens/venturelens/internal/llm"
	"github.com/venturelens/venturelens/internal/logging"
	"github.com/venturelens/venturelens/internal/pipeline"
	"github.com/venturelens/venturelens/internal/tools"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	appConfig *config.Config
	appLogger *slog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "venturelens",
	Short: "LLM-driven research pipeline for startup ideas",
	Long: `venturelens researches a startup idea in five stages: market research,
competitor analysis, social trends, viability scoring, and final
recommendations. Stages that lose their data source degrade to defaults
instead of failing the run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is a convenience for local development; a missing file is fine.
		_ = godotenv.Load()

		cfgPath := viper.GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if level := viper.GetString("log-level"); level != "" {
			cfg.Log.Level = level
		}
		appConfig = cfg

		logger, closer := logging.New(cfg.Log.Level, cfg.Log.File)
		appLogger = logger
		logCloser = closer
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "config/config.toml", "path to TOML config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("VENTURELENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// checkCredentials fails on missing required keys and warns about optional
// ones, whose tools will simply be unavailable.
func checkCredentials(cfg *config.Config, logger *slog.Logger) error {
	if missing := cfg.MissingRequired(); len(missing) > 0 {
		return fmt.Errorf("missing required credentials: %s", strings.Join(missing, ", "))
	}
	for _, name := range cfg.MissingOptional() {
		logger.Warn("optional credential not set, related tools unavailable", "credential", name)
	}
	return nil
}

// buildWorkflow wires the LLM client and tool registry into a pipeline.
// The returned close function releases the LLM client.
func buildWorkflow(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pipeline.Workflow, func(), error) {
	client, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing LLM client: %w", err)
	}
	closeFn := func() {
		if c, ok := client.(io.Closer); ok {
			c.Close()
		}
	}

	registry := tools.Build(cfg, logger)
	wf := pipeline.New(client, registry, cfg.Prompts, logger)
	return wf, closeFn, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
