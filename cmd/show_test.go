package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pokeql/pokeql/internal/pokemon"
)

func TestShowCommand(t *testing.T) {
	setupTestCore(t, false)
	t.Cleanup(func() { showJSON, showRaw = false, false })

	t.Run("json", func(t *testing.T) {
		showJSON, showRaw = true, false

		out, err := runCommand(t, showCmd, "Charmander")
		if err != nil {
			t.Fatalf("show error = %v", err)
		}
		var got pokemon.Pokemon
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, out)
		}
		if got.ID != "004" || got.ClassificationString() != "Lizard Pokémon" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("raw", func(t *testing.T) {
		showJSON, showRaw = false, true

		out, err := runCommand(t, showCmd, "Squirtle")
		if err != nil {
			t.Fatalf("show error = %v", err)
		}
		if !strings.HasPrefix(out, "# Squirtle") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("exact name only", func(t *testing.T) {
		showJSON, showRaw = false, false

		if _, err := runCommand(t, showCmd, "squirtle"); err == nil {
			t.Error("expected error for case-mismatched name")
		}
	})
}
