package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/pokeql/pokeql/internal/config"
	"github.com/pokeql/pokeql/internal/dexcore"
	"github.com/pokeql/pokeql/internal/pokemon"
)

func ptr[T any](v T) *T {
	return &v
}

func testRecords() []*pokemon.Pokemon {
	return []*pokemon.Pokemon{
		{
			ID:             "001",
			Name:           "Bulbasaur",
			Classification: ptr("Seed Pokémon"),
			Types:          []pokemon.Type{pokemon.Grass, pokemon.Poison},
			Weaknesses:     []string{"Fire", "Ice"},
			Resistant:      []string{"Water"},
			Height:         &pokemon.PhysicalSpecs{Minimum: "0.61m", Maximum: "0.79m"},
			FleeRate:       ptr(0.1),
			MaxCP:          ptr(951),
			EvolutionRequirements: &pokemon.EvolutionRequirements{
				Amount: 25,
				Name:   "Bulbasaur candies",
			},
			Evolutions: []*pokemon.Pokemon{
				{ID: "002", Name: "Ivysaur"},
				{ID: "003", Name: "Venusaur"},
			},
			Attacks: &pokemon.Attacks{
				Fast:    []*pokemon.Attack{{Name: "Tackle", Type: "Normal", Damage: 12}},
				Special: []*pokemon.Attack{{Name: "Power Whip", Type: "Grass", Damage: 70}},
			},
		},
		{
			ID:             "004",
			Name:           "Charmander",
			Classification: ptr("Lizard Pokémon"),
			Types:          []pokemon.Type{pokemon.Fire},
			Weaknesses:     []string{"Water"},
			MaxCP:          ptr(841),
			Attacks: &pokemon.Attacks{
				Fast: []*pokemon.Attack{{Name: "Ember", Type: "Fire", Damage: 10}},
			},
		},
		{
			ID:             "007",
			Name:           "Squirtle",
			Classification: ptr("Tiny Turtle Pokémon"),
			Types:          []pokemon.Type{pokemon.Water},
			Weaknesses:     []string{"Electric"},
			Resistant:      []string{"Fire"},
			MaxCP:          ptr(891),
		},
	}
}

// setupTestCore swaps the package-level store and config for the duration of t.
func setupTestCore(t *testing.T, withSearch bool) *dexcore.Core {
	t.Helper()

	testCore := dexcore.New()
	if withSearch {
		if err := testCore.EnableSearch(); err != nil {
			t.Fatalf("EnableSearch() error = %v", err)
		}
	}
	if err := testCore.Load(testRecords()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	oldCore, oldCfg := core, cfg
	core = testCore
	cfg = config.Default()
	cfg.Search.Enabled = withSearch

	t.Cleanup(func() {
		testCore.Close()
		core, cfg = oldCore, oldCfg
	})
	return testCore
}

// runCommand invokes c's RunE directly and captures what it writes.
func runCommand(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetContext(context.Background())
	t.Cleanup(func() { c.SetOut(nil) })

	err := c.RunE(c, args)
	return buf.String(), err
}
