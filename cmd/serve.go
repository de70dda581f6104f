package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pokeql/pokeql/internal/config"
	"github.com/pokeql/pokeql/internal/metrics"
	"github.com/pokeql/pokeql/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the GraphQL server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST, GET, and websocket subscriptions)
  - GraphQL Playground at / (when enabled in the config)
  - Health check at /health
  - Prometheus metrics at /metrics

Examples:
  # Start server on the configured port (default 4000)
  pokeql serve

  # Start server on a custom port
  pokeql serve --port 3000

  # Serve a dataset from object storage
  pokeql serve --dataset s3://pokedex/gen1.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		defer core.Close()

		prometheus.MustRegister(metrics.NewStoreCollector(core))

		if path := configFilePath(configPath); fileExists(path) {
			startup := cfg.Log
			err := config.Watch(ctx, path, func(c *config.Config) {
				onConfigReload(startup, c)
			})
			if err != nil {
				log.Warn().Err(err).Msg("config file will not be watched")
			}
		}

		return server.New(cfg, core).Start(ctx)
	},
}

// onConfigReload applies the parts of a reloaded config that can change while
// serving. Everything else needs a restart.
func onConfigReload(current config.LogConfig, next *config.Config) {
	reloadLogging(next.Log, verbose)
	if next.Log.Format != current.Format {
		log.Warn().Str("format", next.Log.Format).Msg("log format changes apply on restart")
	}
	log.Info().Str("level", next.Log.Level).Msg("config reloaded")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
