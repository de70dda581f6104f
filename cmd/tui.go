package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pokeql/pokeql/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the Pokédex interactively",
	Long:  `Opens an interactive terminal user interface for browsing and filtering the loaded Pokémon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(core)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
