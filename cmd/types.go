package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pokeql/pokeql/internal/ui"
)

var typesJSON bool

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the types present in the Pokédex",
	Long:  `Lists every distinct type carried by a loaded Pokémon, in first-seen order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := newResolver().Query().PokemonTypes(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list types: %w", err)
		}

		out := cmd.OutOrStdout()
		if typesJSON {
			return printJSON(out, types)
		}
		for _, t := range types {
			fmt.Fprintln(out, ui.RenderType(t))
		}
		return nil
	},
}

func init() {
	typesCmd.Flags().BoolVar(&typesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(typesCmd)
}
