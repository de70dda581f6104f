package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/pokeql/pokeql/internal/pokemon"
)

func TestTypeColors(t *testing.T) {
	for _, typ := range pokemon.AllTypes {
		if _, ok := TypeColors[typ]; !ok {
			t.Errorf("missing color for %s", typ)
		}
	}
	if TypeColor("Dark") != ColorMuted {
		t.Error("unknown type should fall back to muted")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Pikachu", 10, "Pikachu"},
		{"Charmeleon", 10, "Charmeleon"},
		{"Fletchinder", 8, "Fletc..."},
		{"Flabébé", 6, "Fla..."},
		{"Mew", 2, "Me"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := truncateString(tt.in, tt.max); got != tt.want {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestRenderTable(t *testing.T) {
	classification := "Seed Pokémon"
	out := RenderTable([]*pokemon.Pokemon{
		{ID: "1", Name: "Bulbasaur", Classification: &classification, Types: []pokemon.Type{pokemon.Grass, pokemon.Poison}},
		{ID: "x1", Name: "Missingno"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4 (header, divider, 2 rows)", len(lines))
	}
	for _, want := range []string{"#001", "Bulbasaur", "Grass", "Poison", "Seed Pokémon"} {
		if !strings.Contains(lines[2], want) {
			t.Errorf("row %q missing %q", lines[2], want)
		}
	}
	if !strings.Contains(lines[3], "x1") {
		t.Errorf("non-numeric ID should be shown as-is, got %q", lines[3])
	}
}

func TestRenderEvolutions(t *testing.T) {
	p := &pokemon.Pokemon{
		ID:   "133",
		Name: "Eevee",
		Evolutions: []*pokemon.Pokemon{
			{ID: "134", Name: "Vaporeon"},
			{ID: "135", Name: "Jolteon"},
		},
	}

	out := RenderEvolutions(p)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], treeBranch) || !strings.Contains(lines[1], "Vaporeon") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], treeLastBranch) || !strings.Contains(lines[2], "#135") {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestRenderTypesWidth(t *testing.T) {
	out := RenderTypes([]pokemon.Type{pokemon.Fire, pokemon.Flying})
	if w := lipgloss.Width(out); w != len("Fire/Flying") {
		t.Errorf("visible width = %d, want %d", w, len("Fire/Flying"))
	}
}
