package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pokeql/pokeql/internal/config"
	"github.com/pokeql/pokeql/internal/dataset"
	"github.com/pokeql/pokeql/internal/dexcore"
)

var (
	core        *dexcore.Core
	cfg         *config.Config
	configPath  string
	datasetPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "pokeql",
	Short: "A GraphQL server for Pokémon data",
	Long: `pokeql serves a Pokédex over GraphQL. Records are loaded into memory at
startup from the embedded dataset, a local JSON/YAML file, or an s3:// object,
and can be queried, searched, and extended at runtime.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init writes the config file, so it must not require one
		if cmd.Name() == "init" {
			setupLogging(config.Default().Log, verbose)
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if datasetPath != "" {
			cfg.Dataset.Source = datasetPath
		}

		setupLogging(cfg.Log, verbose)

		core, err = loadCore(cmd.Context(), cfg)
		return err
	},
}

// setupLogging configures the global zerolog logger. It replaces log.Logger and
// must only run before other goroutines log; reloads go through reloadLogging.
func setupLogging(lc config.LogConfig, verbose bool) {
	zerolog.SetGlobalLevel(logLevel(lc, verbose))

	if lc.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// reloadLogging applies a reloaded config while the server is running. Only the
// level changes; the output format is fixed at startup.
func reloadLogging(lc config.LogConfig, verbose bool) {
	zerolog.SetGlobalLevel(logLevel(lc, verbose))
}

func logLevel(lc config.LogConfig, verbose bool) zerolog.Level {
	if verbose {
		return zerolog.DebugLevel
	}
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// loadCore reads the configured dataset into a fresh store.
func loadCore(ctx context.Context, cfg *config.Config) (*dexcore.Core, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	src := dataset.Source{
		Location: cfg.Dataset.Source,
		S3: dataset.S3Options{
			Region:    cfg.Dataset.S3.Region,
			Endpoint:  cfg.Dataset.S3.Endpoint,
			PathStyle: cfg.Dataset.S3.PathStyle,
		},
	}

	records, err := dataset.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	c := dexcore.New()
	if cfg.Search.Enabled {
		if err := c.EnableSearch(); err != nil {
			return nil, fmt.Errorf("building search index: %w", err)
		}
	}
	if err := c.Load(records); err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	location := src.Location
	if src.IsEmbedded() {
		location = "embedded"
	}
	log.Debug().
		Str("source", location).
		Int("records", len(records)).
		Bool("search", cfg.Search.Enabled).
		Msg("dataset loaded")

	return c, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.ConfigFile, "Path to the config file (or a directory containing "+config.ConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "Dataset to load: a JSON/YAML file or s3://bucket/key (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
