package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pokeql/pokeql/internal/pokemon"
	"github.com/pokeql/pokeql/internal/ui"
)

var attacksJSON bool

var attacksCmd = &cobra.Command{
	Use:   "attacks [name]",
	Short: "List attacks, or show a single attack",
	Long: `Without an argument, lists every distinct attack across all Pokémon.
With a name, shows the first attack of that name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := newResolver().Query()
		out := cmd.OutOrStdout()

		var attacks []*pokemon.Attack
		if len(args) == 1 {
			a, err := q.Attack(cmd.Context(), &args[0])
			if err != nil {
				return fmt.Errorf("failed to find attack: %w", err)
			}
			if a == nil {
				return fmt.Errorf("no attack named %q", args[0])
			}
			if attacksJSON {
				return printJSON(out, a)
			}
			attacks = []*pokemon.Attack{a}
		} else {
			var err error
			attacks, err = q.Attacks(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list attacks: %w", err)
			}
			if attacksJSON {
				return printJSON(out, attacks)
			}
		}

		for _, a := range attacks {
			fmt.Fprintln(out, ui.RenderAttack(a))
		}
		return nil
	},
}

func init() {
	attacksCmd.Flags().BoolVar(&attacksJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(attacksCmd)
}
