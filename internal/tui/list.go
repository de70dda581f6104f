package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pokeql/pokeql/internal/dexcore"
	"github.com/pokeql/pokeql/internal/pokemon"
	"github.com/pokeql/pokeql/internal/ui"
)

// pokemonItem wraps a record to implement list.Item
type pokemonItem struct {
	pokemon *pokemon.Pokemon
}

func (i pokemonItem) Title() string       { return i.pokemon.Name }
func (i pokemonItem) Description() string { return i.pokemon.ClassificationString() }

// FilterValue lets "/" match on name, types and classification.
func (i pokemonItem) FilterValue() string {
	parts := []string{i.pokemon.Name, i.pokemon.ClassificationString()}
	for _, t := range i.pokemon.Types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, " ")
}

// itemDelegate handles rendering of list items
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(pokemonItem)
	if !ok {
		return
	}
	p := item.pokemon

	idWidth := 8
	nameWidth := 16

	idCol := lipgloss.NewStyle().Width(idWidth).Render(ui.ID.Render(p.ID.FormatNumber()))

	name := p.Name
	if len([]rune(name)) > nameWidth-1 {
		name = string([]rune(name)[:nameWidth-4]) + "..."
	}

	var nameCol string
	if index == m.Index() {
		cursor := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Render("▌")
		nameCol = cursor + " " + idCol + lipgloss.NewStyle().Width(nameWidth).Bold(true).Foreground(ui.ColorPrimary).Render(name)
	} else {
		nameCol = "  " + idCol + lipgloss.NewStyle().Width(nameWidth).Render(name)
	}

	fmt.Fprint(w, nameCol+ui.RenderTypes(p.Types))
}

// listModel is the model for the Pokédex list view
type listModel struct {
	list   list.Model
	core   *dexcore.Core
	width  int
	height int
}

func newListModel(core *dexcore.Core) listModel {
	l := list.New([]list.Item{}, itemDelegate{}, 0, 0)
	l.Title = "Pokédex"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.Styles.Title = listTitleStyle
	l.Styles.TitleBar = lipgloss.NewStyle().Padding(0, 0, 1, 2)
	l.Styles.FilterPrompt = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
	l.Styles.FilterCursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	return listModel{
		list: l,
		core: core,
	}
}

// pokemonsLoadedMsg is sent when records are read from the store
type pokemonsLoadedMsg struct {
	pokemons []*pokemon.Pokemon
}

// selectPokemonMsg is sent when a record is selected
type selectPokemonMsg struct {
	pokemon *pokemon.Pokemon
}

func (m listModel) Init() tea.Cmd {
	return m.loadPokemons
}

func (m listModel) loadPokemons() tea.Msg {
	return pokemonsLoadedMsg{m.core.All()}
}

func (m listModel) filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve space for border and footer
		m.list.SetSize(msg.Width-2, msg.Height-4)

	case pokemonsLoadedMsg:
		items := make([]list.Item, len(msg.pokemons))
		for i, p := range msg.pokemons {
			items[i] = pokemonItem{pokemon: p}
		}
		cmd = m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if !m.filtering() && msg.String() == "enter" {
			if item, ok := m.list.SelectedItem().(pokemonItem); ok {
				return m, func() tea.Msg {
					return selectPokemonMsg{pokemon: item.pokemon}
				}
			}
		}
	}

	// Always forward to the list component
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m listModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Width(m.width - 2).
		Height(m.height - 4)

	content := border.Render(m.list.View())

	help := helpKeyStyle.Render("enter") + " " + helpStyle.Render("view") + "  " +
		helpKeyStyle.Render("/") + " " + helpStyle.Render("filter") + "  " +
		helpKeyStyle.Render("?") + " " + helpStyle.Render("help") + "  " +
		helpKeyStyle.Render("q") + " " + helpStyle.Render("quit")

	return content + "\n" + help
}
