// Package tui implements the interactive Pokédex browser.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pokeql/pokeql/internal/dexcore"
	"github.com/pokeql/pokeql/internal/ui"
)

var (
	listTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ui.ColorPrimary).
			Bold(true).
			Padding(0, 1)
	detailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
	helpKeyStyle     = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true)
	helpStyle        = lipgloss.NewStyle().Foreground(ui.ColorMuted)
)

// viewState represents which view is currently active
type viewState int

const (
	viewList viewState = iota
	viewDetail
	viewHelp
)

// App is the main TUI application model
type App struct {
	state     viewState
	prevState viewState
	list      listModel
	detail    detailModel
	help      helpOverlayModel
	core      *dexcore.Core
	width     int
	height    int
}

// New creates a new TUI application
func New(core *dexcore.Core) *App {
	return &App{
		state: viewList,
		core:  core,
		list:  newListModel(core),
	}
}

func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "q":
			if a.state == viewDetail {
				return a, tea.Quit
			}
			// For list, only quit if not filtering
			if a.state == viewList && !a.list.filtering() {
				return a, tea.Quit
			}
		case "?":
			if a.state != viewHelp && !a.list.filtering() {
				a.prevState = a.state
				a.state = viewHelp
				a.help = newHelpOverlayModel(a.width, a.height)
				return a, nil
			}
		}

	case selectPokemonMsg:
		a.state = viewDetail
		a.detail = newDetailModel(msg.pokemon, a.width, a.height)
		return a, a.detail.Init()

	case backToListMsg:
		a.state = viewList
		return a, nil

	case closeHelpMsg:
		a.state = a.prevState
		return a, nil
	}

	// Forward all messages to the current view
	switch a.state {
	case viewList:
		a.list, cmd = a.list.Update(msg)
	case viewDetail:
		a.detail, cmd = a.detail.Update(msg)
	case viewHelp:
		a.help, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.state {
	case viewList:
		return a.list.View()
	case viewDetail:
		return a.detail.View()
	case viewHelp:
		return a.help.View()
	}
	return ""
}

// Run starts the TUI application
func Run(core *dexcore.Core) error {
	p := tea.NewProgram(New(core), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
