package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pokeql/pokeql/internal/config"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    zerolog.Level
	}{
		{"configured", "warn", false, zerolog.WarnLevel},
		{"verbose wins", "error", true, zerolog.DebugLevel},
		{"unknown", "chatty", false, zerolog.InfoLevel},
		{"empty", "", false, zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logLevel(config.LogConfig{Level: tt.level}, tt.verbose)
			if got != tt.want {
				t.Errorf("logLevel(%q, %v) = %v, want %v", tt.level, tt.verbose, got, tt.want)
			}
		})
	}
}

// Reloads run on the watcher's timer goroutine while request handlers keep
// logging. Run with -race.
func TestConfigReloadWhileLogging(t *testing.T) {
	origLogger, origLevel, origVerbose := log.Logger, zerolog.GlobalLevel(), verbose
	log.Logger = zerolog.New(io.Discard)
	verbose = false
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
		verbose = origVerbose
	})

	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFile)
	if err := config.Default().Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startup := config.Default().Log
	reloaded := make(chan string, 8)
	err := config.Watch(ctx, path, func(c *config.Config) {
		onConfigReload(startup, c)
		reloaded <- c.Log.Level
	})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				log.Debug().Str("op", "AllPokemons").Msg("request")
				log.Info().Msg("request")
			}
		}
	}()
	defer func() {
		close(stop)
		wg.Wait()
	}()

	levels := []string{"debug", "warn", "error", "debug", "warn"}
	for _, level := range levels {
		content := fmt.Sprintf("[log]\nlevel = %q\nformat = \"json\"\n", level)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		// A single write can surface as more than one reload.
		timeout := time.After(5 * time.Second)
		for got := ""; got != level; {
			select {
			case got = <-reloaded:
			case <-timeout:
				t.Fatalf("timed out waiting for reload to %s", level)
			}
		}
	}

	if got := zerolog.GlobalLevel(); got != zerolog.WarnLevel {
		t.Errorf("GlobalLevel() = %v, want warn", got)
	}
}
