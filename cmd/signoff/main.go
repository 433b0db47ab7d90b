// Package main provides the entry point for the site sign-off CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/jonathan/site-signoff/internal/checklist"
	"github.com/jonathan/site-signoff/internal/config"
	"github.com/jonathan/site-signoff/internal/rendering"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logFileName is the log written to the work directory while the form owns the terminal.
const logFileName = "signoff.log"

var (
	// Global flags
	configPath string
	outputDir  string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "signoff",
	Short: "Site installation sign-off sheets",
	Long: `signoff walks a site foreman through an installation checklist, captures the
subcontractor and foreman signatures and saves a Word sign-off sheet.

Configuration is read from --config, then SIGNOFF_* environment variables, then flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		resolved, err := resolveConfig()
		if err != nil {
			return err
		}
		cfg = resolved

		logPath := ""
		if cmd.Name() == "fill" {
			if err := os.MkdirAll(cfg.WorkDir, 0755); err != nil {
				return fmt.Errorf("failed to create work directory %s: %w", cfg.WorkDir, err)
			}
			logPath = filepath.Join(cfg.WorkDir, logFileName)
		}

		logger, err = newLogger(cfg.Verbose, logPath)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "Directory receiving sign-off documents (overrides "+config.EnvOutputDir+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

// resolveConfig layers flags over environment over config file over defaults.
func resolveConfig() (config.Config, error) {
	file := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		file = *loaded
	}

	flags := config.Config{OutputDir: outputDir, Verbose: verbose}
	env := config.FromEnv()

	merged := flags.MergeWithDefaults(env)
	merged = merged.MergeWithDefaults(file)
	return merged.MergeWithDefaults(config.Defaults()), nil
}

// newLogger builds the production logger, at debug level when verbose.
// A non-empty path sends every log line to that file instead of stderr.
func newLogger(verbose bool, path string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if path != "" {
		zcfg.OutputPaths = []string{path}
		zcfg.ErrorOutputPaths = []string{path}
	}
	return zcfg.Build()
}

// prepareOutput validates the configuration and checks the output directory
// before any rendering work begins.
func prepareOutput() error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return cfg.PrepareOutputDir()
}

func loadCatalog() (*checklist.Catalog, error) {
	if cfg.CatalogPath == "" {
		return checklist.Default()
	}
	return checklist.Load(cfg.CatalogPath)
}

func newRenderer() *rendering.Renderer {
	return rendering.NewRenderer(rendering.Options{
		OutputDir: cfg.OutputDir,
		LogoPath:  cfg.LogoPath,
		Collision: rendering.CollisionPolicy(cfg.Collision),
		Logger:    logger,
	})
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
