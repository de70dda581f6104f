package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pokeql/pokeql/internal/pokemon"
	"github.com/pokeql/pokeql/internal/ui"
)

// Cached glamour renderer - initialized once
var (
	glamourRenderer     *glamour.TermRenderer
	glamourRendererOnce sync.Once
)

func getGlamourRenderer() *glamour.TermRenderer {
	glamourRendererOnce.Do(func() {
		var err error
		glamourRenderer, err = glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err != nil {
			glamourRenderer = nil
		}
	})
	return glamourRenderer
}

// backToListMsg signals navigation back to the list
type backToListMsg struct{}

// detailModel displays a single record's details
type detailModel struct {
	viewport viewport.Model
	pokemon  *pokemon.Pokemon
	width    int
	height   int
	ready    bool
}

const (
	detailHeaderHeight = 5
	detailFooterHeight = 2
)

func newDetailModel(p *pokemon.Pokemon, width, height int) detailModel {
	m := detailModel{
		pokemon: p,
		width:   width,
		height:  height,
		ready:   true,
	}

	vpWidth := width - 4
	vpHeight := max(1, height-detailHeaderHeight-detailFooterHeight)

	m.viewport = viewport.New(vpWidth, vpHeight)
	m.viewport.SetContent(m.renderBody())
	return m
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpWidth := msg.Width - 4
		vpHeight := max(1, msg.Height-detailHeaderHeight-detailFooterHeight)

		if !m.ready {
			m.viewport = viewport.New(vpWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = vpWidth
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.renderBody())

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg {
				return backToListMsg{}
			}
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m detailModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	bodyBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Width(m.width - 4)
	body := bodyBorder.Render(m.viewport.View())

	scrollPct := int(m.viewport.ScrollPercent() * 100)
	footer := helpStyle.Render(fmt.Sprintf("%d%%", scrollPct)) + "  " +
		helpKeyStyle.Render("j/k") + " " + helpStyle.Render("scroll") + "  " +
		helpKeyStyle.Render("esc") + " " + helpStyle.Render("back") + "  " +
		helpKeyStyle.Render("q") + " " + helpStyle.Render("quit")

	return m.renderHeader() + "\n" + body + "\n" + footer
}

func (m detailModel) renderHeader() string {
	p := m.pokemon

	var header strings.Builder
	header.WriteString(detailTitleStyle.Render(p.Name))
	header.WriteString("\n")
	header.WriteString(ui.ID.Render(p.ID.FormatNumber()))
	if len(p.Types) > 0 {
		header.WriteString("  ")
		header.WriteString(ui.RenderTypes(p.Types))
	}
	if c := p.ClassificationString(); c != "" {
		header.WriteString("  ")
		header.WriteString(ui.Muted.Render(c))
	}

	headerBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1).
		Width(m.width - 4)

	return headerBox.Render(header.String())
}

// renderBody renders the stats markdown followed by attacks and evolutions.
func (m detailModel) renderBody() string {
	p := m.pokemon
	md := ui.DetailsMarkdown(p)

	var body strings.Builder
	if r := getGlamourRenderer(); r != nil {
		rendered, err := r.Render(md)
		if err != nil {
			body.WriteString(md)
		} else {
			body.WriteString(rendered)
		}
	} else {
		body.WriteString(md)
	}

	if attacks := p.AllAttacks(); len(attacks) > 0 {
		body.WriteString(ui.Header.Render("Attacks"))
		body.WriteString("\n")
		body.WriteString(ui.RenderAttackList(attacks))
		body.WriteString("\n")
	}

	if len(p.Evolutions) > 0 {
		body.WriteString(ui.Header.Render("Evolutions"))
		body.WriteString("\n")
		body.WriteString(ui.RenderEvolutions(p))
	}

	return body.String()
}
