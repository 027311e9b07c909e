package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/potfield/config"
	"github.com/katalvlaran/potfield/internal/telemetry"
)

// app carries the state every subcommand shares once the root pre-run has loaded it.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "potnav",
		Short: "Synthesize potential fields and navigate them to their global minimum",
		Long: `potnav builds smooth random potential fields from Gaussian features,
then walks them greedily (or with A*) from a start cell to the lowest cell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "override log format (text, json)")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newSearchCmd(a),
		newServeCmd(a),
	)

	return rootCmd
}

// load reads the config file (or defaults), applies flag overrides and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := telemetry.NewLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.cfg = cfg
	a.log = logger

	return nil
}

// fieldFlags are the synthesis overrides shared by generate and search.
type fieldFlags struct {
	size       int
	complexity int
	seed       uint64
}

func (f *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.size, "size", "n", 0, "field side length (default from config)")
	cmd.Flags().IntVarP(&f.complexity, "complexity", "k", -1, "feature complexity (default from config)")
	cmd.Flags().Uint64VarP(&f.seed, "seed", "s", 0, "random seed, 0 for a fresh field")
}

// apply copies explicitly set flags onto cfg.
func (f *fieldFlags) apply(cmd *cobra.Command, cfg *config.FieldConfig) {
	if cmd.Flags().Changed("size") {
		cfg.Size = f.size
	}
	if cmd.Flags().Changed("complexity") {
		cfg.Complexity = f.complexity
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
}
