package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pokeql/pokeql/internal/pokemon"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#6B7280") // Gray
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorDanger    = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#9CA3AF") // Light gray
	ColorBlue      = lipgloss.Color("#3B82F6") // Blue
)

// TypeColors maps each type tag to its badge color.
var TypeColors = map[pokemon.Type]lipgloss.Color{
	pokemon.Grass:    lipgloss.Color("#78C850"),
	pokemon.Poison:   lipgloss.Color("#A040A0"),
	pokemon.Fire:     lipgloss.Color("#F08030"),
	pokemon.Flying:   lipgloss.Color("#A890F0"),
	pokemon.Water:    lipgloss.Color("#6890F0"),
	pokemon.Bug:      lipgloss.Color("#A8B820"),
	pokemon.Normal:   lipgloss.Color("#A8A878"),
	pokemon.Electric: lipgloss.Color("#F8D030"),
	pokemon.Ground:   lipgloss.Color("#E0C068"),
	pokemon.Fairy:    lipgloss.Color("#EE99AC"),
	pokemon.Fighting: lipgloss.Color("#C03028"),
	pokemon.Psychic:  lipgloss.Color("#F85888"),
	pokemon.Rock:     lipgloss.Color("#B8A038"),
	pokemon.Steel:    lipgloss.Color("#B8B8D0"),
	pokemon.Ice:      lipgloss.Color("#98D8D8"),
	pokemon.Ghost:    lipgloss.Color("#705898"),
	pokemon.Dragon:   lipgloss.Color("#7038F8"),
}

// TypeColor returns the color for a type name. Attack types are free text, so
// unknown names fall back to muted.
func TypeColor(name string) lipgloss.Color {
	if c, ok := TypeColors[pokemon.Type(name)]; ok {
		return c
	}
	return ColorMuted
}

// Text styles
var (
	Bold      = lipgloss.NewStyle().Bold(true)
	Muted     = lipgloss.NewStyle().Foreground(ColorMuted)
	Primary   = lipgloss.NewStyle().Foreground(ColorPrimary)
	Success   = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning   = lipgloss.NewStyle().Foreground(ColorWarning)
	Danger    = lipgloss.NewStyle().Foreground(ColorDanger)
	Secondary = lipgloss.NewStyle().Foreground(ColorSecondary)
)

// ID style - distinctive for Pokédex numbers
var ID = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true)

// Title style
var Title = lipgloss.NewStyle().Bold(true)

// TreeLine styles evolution tree connectors.
var TreeLine = lipgloss.NewStyle().Foreground(ColorSecondary)

// Header style for section headers
var Header = lipgloss.NewStyle().
	Foreground(ColorPrimary).
	Bold(true).
	MarginBottom(1)

// RenderType returns a styled type badge.
func RenderType(name string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fff")).
		Background(TypeColor(name)).
		Padding(0, 1).
		Bold(true).
		Render(name)
}

// RenderTypeText returns styled type text (for tables, no background).
func RenderTypeText(name string) string {
	return lipgloss.NewStyle().Foreground(TypeColor(name)).Bold(true).Render(name)
}

// RenderTypes joins type texts with a slash.
func RenderTypes(types []pokemon.Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = RenderTypeText(string(t))
	}
	return strings.Join(parts, Muted.Render("/"))
}

// RenderAttack renders one attack as "Name (Type, damage)".
func RenderAttack(a *pokemon.Attack) string {
	return Bold.Render(a.Name) + " " +
		Muted.Render("(") + RenderTypeText(a.Type) + Muted.Render(", ") +
		Warning.Render(itoa(a.Damage)) + Muted.Render(")")
}
