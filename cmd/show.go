package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pokeql/pokeql/internal/ui"
)

var (
	showJSON bool
	showRaw  bool
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a Pokémon's details",
	Long:  `Displays everything known about a Pokémon, looked up by exact name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		p, err := newResolver().Query().Pokemon(cmd.Context(), &name)
		if err != nil {
			return fmt.Errorf("failed to find pokemon: %w", err)
		}
		if p == nil {
			return fmt.Errorf("no pokemon named %q", name)
		}

		out := cmd.OutOrStdout()
		if showJSON {
			return printJSON(out, p)
		}

		details := ui.DetailsMarkdown(p)
		if showRaw {
			fmt.Fprint(out, details)
			return nil
		}

		var header strings.Builder
		header.WriteString(ui.ID.Render(p.ID.FormatNumber()))
		header.WriteString(" ")
		header.WriteString(ui.Title.Render(p.Name))
		if len(p.Types) > 0 {
			header.WriteString("  ")
			header.WriteString(ui.RenderTypes(p.Types))
		}
		if c := p.ClassificationString(); c != "" {
			header.WriteString("\n")
			header.WriteString(ui.Muted.Render(c))
		}

		headerBox := lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ui.ColorMuted).
			Width(60)
		fmt.Fprintln(out, headerBox.Render(header.String()))

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		rendered, err := renderer.Render(details)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		fmt.Fprint(out, rendered)

		if attacks := p.AllAttacks(); len(attacks) > 0 {
			fmt.Fprintln(out, ui.Header.Render("Attacks"))
			fmt.Fprintln(out, ui.RenderAttackList(attacks))
		}

		if len(p.Evolutions) > 0 {
			fmt.Fprintln(out, ui.Header.Render("Evolutions"))
			fmt.Fprint(out, ui.RenderEvolutions(p))
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Output the details as unrendered markdown")
	showCmd.MarkFlagsMutuallyExclusive("json", "raw")
	rootCmd.AddCommand(showCmd)
}
