package ui

import (
	"strings"
	"testing"

	"github.com/pokeql/pokeql/internal/pokemon"
)

func TestDetailsMarkdown(t *testing.T) {
	flee, cp := 0.1, 951
	p := &pokemon.Pokemon{
		ID:         "001",
		Name:       "Bulbasaur",
		Weaknesses: []string{"Fire", "Ice"},
		Resistant:  []string{"Water"},
		Height:     &pokemon.PhysicalSpecs{Minimum: "0.61m", Maximum: "0.79m"},
		FleeRate:   &flee,
		MaxCP:      &cp,
		EvolutionRequirements: &pokemon.EvolutionRequirements{
			Amount: 25,
			Name:   "Bulbasaur candies",
		},
	}

	md := DetailsMarkdown(p)

	for _, want := range []string{
		"# Bulbasaur",
		"| Height | 0.61m - 0.79m |",
		"| Max CP | 951 |",
		"| Flee rate | 10% |",
		"| Evolves with | 25 Bulbasaur candies |",
		"**Weak to:** Fire, Ice",
		"**Resistant to:** Water",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Weight") || strings.Contains(md, "Max HP") {
		t.Errorf("markdown should omit unset fields:\n%s", md)
	}
}

func TestDetailsMarkdownPartialRecord(t *testing.T) {
	md := DetailsMarkdown(&pokemon.Pokemon{ID: "abc", Name: "Newcomer"})

	if md != "# Newcomer\n\n" {
		t.Errorf("DetailsMarkdown() = %q", md)
	}
}

func TestFormatSpecs(t *testing.T) {
	tests := []struct {
		specs pokemon.PhysicalSpecs
		want  string
	}{
		{pokemon.PhysicalSpecs{Minimum: "6.04kg", Maximum: "7.76kg"}, "6.04kg - 7.76kg"},
		{pokemon.PhysicalSpecs{Minimum: "6.04kg"}, "6.04kg"},
		{pokemon.PhysicalSpecs{Maximum: "7.76kg"}, "7.76kg"},
		{pokemon.PhysicalSpecs{}, "-"},
	}
	for _, tt := range tests {
		if got := formatSpecs(&tt.specs); got != tt.want {
			t.Errorf("formatSpecs(%+v) = %q, want %q", tt.specs, got, tt.want)
		}
	}
}

func TestRenderAttackList(t *testing.T) {
	out := RenderAttackList([]*pokemon.Attack{
		{Name: "Ember", Type: "Fire", Damage: 10},
		nil,
		{Name: "Flamethrower", Type: "Fire", Damage: 55},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Ember") || !strings.Contains(lines[1], "Flamethrower") {
		t.Errorf("unexpected lines: %q", lines)
	}
}
