package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pokeql/pokeql/internal/pokemon"
	"github.com/pokeql/pokeql/internal/ui"
)

var (
	listJSON      bool
	listType      string
	listWeakness  string
	listResistant string
	listQuiet     bool
	listSort      string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List Pokémon",
	Long: `Lists the loaded Pokémon. Filters match a record when ANY of them applies,
the same way the Pokemons query does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := parseTypeFlag(listType)
		if err != nil {
			return err
		}
		if err := validateSort(listSort); err != nil {
			return err
		}

		q := newResolver().Query()
		var pokemons []*pokemon.Pokemon
		if typ == nil && listWeakness == "" && listResistant == "" {
			pokemons, err = q.AllPokemons(cmd.Context())
		} else {
			pokemons, err = q.Pokemons(cmd.Context(), typ, optionalString(listResistant), optionalString(listWeakness))
		}
		if err != nil {
			return fmt.Errorf("failed to list pokemon: %w", err)
		}

		sortPokemons(pokemons, listSort)

		out := cmd.OutOrStdout()
		if listJSON {
			return printJSON(out, pokemons)
		}

		if listQuiet {
			for _, p := range pokemons {
				fmt.Fprintln(out, p.Name)
			}
			return nil
		}

		if len(pokemons) == 0 {
			fmt.Fprintln(out, ui.Muted.Render("No Pokémon found."))
			return nil
		}
		fmt.Fprintln(out, ui.RenderTable(pokemons))
		return nil
	},
}

// parseTypeFlag converts a --type value. Empty means no filter.
func parseTypeFlag(s string) (*pokemon.Type, error) {
	if s == "" {
		return nil, nil
	}
	t, err := pokemon.ParseType(s)
	if err != nil {
		return nil, fmt.Errorf("%w (must be one of: %s)", err, typeList())
	}
	return &t, nil
}

func typeList() string {
	names := make([]string, len(pokemon.AllTypes))
	for i, t := range pokemon.AllTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var sortOrders = []string{"dex", "name", "cp"}

func validateSort(by string) error {
	for _, s := range sortOrders {
		if s == by {
			return nil
		}
	}
	return fmt.Errorf("invalid sort %q (must be one of: %s)", by, strings.Join(sortOrders, ", "))
}

// sortPokemons orders pokemons in place. "dex" keeps store order, which is
// also the fallback for ties.
func sortPokemons(pokemons []*pokemon.Pokemon, by string) {
	switch by {
	case "name":
		sort.SliceStable(pokemons, func(i, j int) bool {
			return strings.ToLower(pokemons[i].Name) < strings.ToLower(pokemons[j].Name)
		})
	case "cp":
		sort.SliceStable(pokemons, func(i, j int) bool {
			return maxCP(pokemons[i]) > maxCP(pokemons[j])
		})
	}
}

func maxCP(p *pokemon.Pokemon) int {
	if p.MaxCP == nil {
		return -1
	}
	return *p.MaxCP
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "Filter by type ("+typeList()+")")
	listCmd.Flags().StringVarP(&listWeakness, "weakness", "w", "", "Filter by weakness")
	listCmd.Flags().StringVarP(&listResistant, "resistant", "r", "", "Filter by resistance")
	listCmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Only output names (one per line)")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "dex", "Sort by: dex, name, cp")
	listCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.AddCommand(listCmd)
}
