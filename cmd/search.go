package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pokeql/pokeql/internal/ui"
)

var (
	searchJSON  bool
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over Pokémon",
	Long: `Runs a full-text query against the search index. The query uses Bleve
query string syntax, so fields can be targeted directly.

Examples:
  pokeql search seed
  pokeql search 'types:fire attacks:ember'
  pokeql search 'weaknesses:water' --limit 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.Search.Enabled {
			return fmt.Errorf("search is disabled (set search.enabled in %s)", configPath)
		}

		limit := searchLimit
		if limit <= 0 {
			limit = cfg.Search.Limit
		}

		query := strings.Join(args, " ")
		pokemons, err := newResolver().Query().SearchPokemons(cmd.Context(), query, &limit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if searchJSON {
			return printJSON(out, pokemons)
		}
		if len(pokemons) == 0 {
			fmt.Fprintln(out, ui.Muted.Render("No matches."))
			return nil
		}
		fmt.Fprintln(out, ui.RenderTable(pokemons))
		return nil
	},
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output as JSON")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum number of results (default from config)")
	rootCmd.AddCommand(searchCmd)
}
