package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pokeql/pokeql/internal/pokemon"
)

// DetailsMarkdown renders the scalar facts of p as a markdown document for
// glamour. Fields the record does not carry are left out.
func DetailsMarkdown(p *pokemon.Pokemon) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", p.Name)

	var rows [][2]string
	if p.Height != nil {
		rows = append(rows, [2]string{"Height", formatSpecs(p.Height)})
	}
	if p.Weight != nil {
		rows = append(rows, [2]string{"Weight", formatSpecs(p.Weight)})
	}
	if p.MaxCP != nil {
		rows = append(rows, [2]string{"Max CP", itoa(*p.MaxCP)})
	}
	if p.MaxHP != nil {
		rows = append(rows, [2]string{"Max HP", itoa(*p.MaxHP)})
	}
	if p.FleeRate != nil {
		rows = append(rows, [2]string{"Flee rate", strconv.FormatFloat(*p.FleeRate*100, 'f', -1, 64) + "%"})
	}
	if r := p.EvolutionRequirements; r != nil {
		rows = append(rows, [2]string{"Evolves with", fmt.Sprintf("%d %s", r.Amount, r.Name)})
	}

	if len(rows) > 0 {
		sb.WriteString("| Stat | Value |\n|---|---|\n")
		for _, r := range rows {
			fmt.Fprintf(&sb, "| %s | %s |\n", r[0], r[1])
		}
		sb.WriteString("\n")
	}

	if len(p.Weaknesses) > 0 {
		fmt.Fprintf(&sb, "**Weak to:** %s\n\n", strings.Join(p.Weaknesses, ", "))
	}
	if len(p.Resistant) > 0 {
		fmt.Fprintf(&sb, "**Resistant to:** %s\n\n", strings.Join(p.Resistant, ", "))
	}
	return sb.String()
}

func formatSpecs(s *pokemon.PhysicalSpecs) string {
	switch {
	case s.Minimum != "" && s.Maximum != "":
		return s.Minimum + " - " + s.Maximum
	case s.Minimum != "":
		return s.Minimum
	case s.Maximum != "":
		return s.Maximum
	}
	return "-"
}

// RenderAttackList renders each non-nil attack on its own indented line.
func RenderAttackList(attacks []*pokemon.Attack) string {
	var sb strings.Builder
	for _, a := range attacks {
		if a == nil {
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(RenderAttack(a))
		sb.WriteString("\n")
	}
	return sb.String()
}
