package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pokeql/pokeql/internal/graph/model"
	"github.com/pokeql/pokeql/internal/ui"
)

var (
	createID             string
	createClassification string
	createJSON           bool
)

var createCmd = &cobra.Command{
	Use:     "create [name]",
	Aliases: []string{"c", "new"},
	Short:   "Add a Pokémon to the store",
	Long: `Adds a Pokémon through the createPokemon mutation. Only the id, name and
classification are set; a random id is generated when none is given.

The store lives in memory, so the record is visible for the rest of this
process only. Run the mutation against 'pokeql serve' to keep it around.

When no name is given and stdin is a terminal, an interactive form is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := model.PokemonInput{Name: strings.Join(args, " ")}

		if input.Name == "" {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("a name is required")
			}
			if err := promptPokemonInput(&input); err != nil {
				return err
			}
		} else if createClassification != "" {
			input.Classification = &createClassification
		}
		if createID != "" {
			input.ID = &createID
		}

		p, err := newResolver().Mutation().CreatePokemon(cmd.Context(), &input)
		if err != nil {
			return fmt.Errorf("failed to create pokemon: %w", err)
		}

		out := cmd.OutOrStdout()
		if createJSON {
			return printJSON(out, p)
		}
		fmt.Fprintln(out, ui.Success.Render("Created ")+ui.ID.Render(string(p.ID))+" "+ui.Title.Render(p.Name))
		return nil
	},
}

func promptPokemonInput(input *model.PokemonInput) error {
	classification := createClassification
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&input.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Classification").
				Placeholder("Seed Pokémon").
				Value(&classification),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	input.Name = strings.TrimSpace(input.Name)
	if classification != "" {
		input.Classification = &classification
	}
	return nil
}

func init() {
	createCmd.Flags().StringVar(&createID, "id", "", "Record id (generated when omitted)")
	createCmd.Flags().StringVarP(&createClassification, "classification", "k", "", "Classification, e.g. \"Seed Pokémon\"")
	createCmd.Flags().BoolVar(&createJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(createCmd)
}
