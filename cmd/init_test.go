package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pokeql/pokeql/internal/config"
)

func TestConfigFilePath(t *testing.T) {
	dir := t.TempDir()

	if got := configFilePath(""); got != config.ConfigFile {
		t.Errorf("configFilePath(\"\") = %q", got)
	}
	if got, want := configFilePath(dir), filepath.Join(dir, config.ConfigFile); got != want {
		t.Errorf("configFilePath(dir) = %q, want %q", got, want)
	}
	file := filepath.Join(dir, "custom.toml")
	if got := configFilePath(file); got != file {
		t.Errorf("configFilePath(file) = %q, want %q", got, file)
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	oldPath := configPath
	configPath = dir
	t.Cleanup(func() {
		configPath = oldPath
		initForce = false
	})

	if _, err := runCommand(t, initCmd); err != nil {
		t.Fatalf("init error = %v", err)
	}

	path := filepath.Join(dir, config.ConfigFile)
	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.Port != config.Default().Server.Port {
		t.Errorf("port = %d, want default", loaded.Server.Port)
	}

	// --force overwrites without prompting
	if err := os.WriteFile(path, []byte("[server]\nport = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	initForce = true
	if _, err := runCommand(t, initCmd); err != nil {
		t.Fatalf("init --force error = %v", err)
	}
	loaded, err = config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Server.Port != config.Default().Server.Port {
		t.Errorf("port = %d after --force, want default", loaded.Server.Port)
	}
}
