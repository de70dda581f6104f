package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pokeql/pokeql/internal/pokemon"
)

// Tree rendering constants
const (
	treeBranch     = "├─ "
	treeLastBranch = "└─ "
	treeIndent     = 3 // width of connector (├─  or └─ )
)

// Column widths for the Pokémon table.
const (
	numberWidth = 8
	nameWidth   = 16
	typesWidth  = 20
)

// RenderTable renders records as aligned rows: number, name, types, classification.
func RenderTable(pokemons []*pokemon.Pokemon) string {
	var sb strings.Builder

	numberStyle := lipgloss.NewStyle().Width(numberWidth)
	nameStyle := lipgloss.NewStyle().Width(nameWidth)
	typesStyle := lipgloss.NewStyle().Width(typesWidth)
	headerCol := lipgloss.NewStyle().Foreground(ColorMuted)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		numberStyle.Render(headerCol.Render("NO")),
		nameStyle.Render(headerCol.Render("NAME")),
		typesStyle.Render(headerCol.Render("TYPES")),
		headerCol.Render("CLASSIFICATION"),
	)
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(Muted.Render(strings.Repeat("─", numberWidth+nameWidth+typesWidth+24)))
	sb.WriteString("\n")

	for _, p := range pokemons {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			numberStyle.Render(ID.Render(truncateString(p.ID.FormatNumber(), numberWidth-1))),
			nameStyle.Render(Title.Render(truncateString(p.Name, nameWidth-1))),
			typesStyle.Render(RenderTypes(p.Types)),
			Secondary.Render(p.ClassificationString()),
		)
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderEvolutions renders the evolution chain of p as a tree rooted at p.
func RenderEvolutions(p *pokemon.Pokemon) string {
	var sb strings.Builder
	sb.WriteString(Title.Render(p.Name))
	sb.WriteString("\n")
	renderEvolutionNodes(&sb, p.Evolutions, 1)
	return sb.String()
}

// renderEvolutionNodes recursively renders evolutions with connectors.
// depth 1 = direct evolutions.
func renderEvolutionNodes(sb *strings.Builder, nodes []*pokemon.Pokemon, depth int) {
	for i, node := range nodes {
		if node == nil {
			continue
		}
		isLast := i == len(nodes)-1

		indent := strings.Repeat(strings.Repeat(" ", treeIndent), depth-1)
		connector := treeBranch
		if isLast {
			connector = treeLastBranch
		}

		sb.WriteString(TreeLine.Render(indent + connector))
		sb.WriteString(node.Name)
		if node.ID != "" {
			sb.WriteString(" ")
			sb.WriteString(Muted.Render(node.ID.FormatNumber()))
		}
		sb.WriteString("\n")

		renderEvolutionNodes(sb, node.Evolutions, depth+1)
	}
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
