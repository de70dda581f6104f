package cmd

import (
	"context"
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

func TestExecuteQuery(t *testing.T) {
	setupTestCore(t, false)
	ctx := context.Background()

	t.Run("data only", func(t *testing.T) {
		got, err := executeQuery(ctx, `{ Pokemons(type: Water) { name } }`, nil, "")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}
		if want := `{"Pokemons":[{"name":"Squirtle"}]}`; string(got) != want {
			t.Errorf("executeQuery() = %s, want %s", got, want)
		}
	})

	t.Run("variables and operation name", func(t *testing.T) {
		query := `
			query A { PokemonTypes }
			query B($name: String) { Pokemon(name: $name) { id } }`
		got, err := executeQuery(ctx, query, map[string]any{"name": "Bulbasaur"}, "B")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}
		if want := `{"Pokemon":{"id":"001"}}`; string(got) != want {
			t.Errorf("executeQuery() = %s, want %s", got, want)
		}
	})

	t.Run("mutation goes through the store", func(t *testing.T) {
		_, err := executeQuery(ctx, `mutation { createPokemon(input: {id: "151", name: "Mew"}) { id } }`, nil, "")
		if err != nil {
			t.Fatalf("executeQuery() error = %v", err)
		}
		if core.Len() != 4 {
			t.Errorf("store length = %d, want 4", core.Len())
		}
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := executeQuery(ctx, `{ Pokemon(name: "Mew") { nickname } }`, nil, "")
		if err == nil || !strings.HasPrefix(err.Error(), "graphql: ") {
			t.Errorf("executeQuery() error = %v, want graphql error", err)
		}
	})
}

func TestFormatGraphQLErrors(t *testing.T) {
	if err := formatGraphQLErrors(nil); err != nil {
		t.Errorf("formatGraphQLErrors(nil) = %v", err)
	}

	err := formatGraphQLErrors(gqlerror.List{{Message: "boom"}})
	if err == nil || err.Error() != "graphql: boom" {
		t.Errorf("single error = %v", err)
	}

	err = formatGraphQLErrors(gqlerror.List{{Message: "one"}, {Message: "two"}})
	if err == nil || err.Error() != "graphql errors:\n  one\n  two" {
		t.Errorf("multiple errors = %q", err)
	}
}

func TestGetGraphQLSchema(t *testing.T) {
	setupTestCore(t, false)

	schema := GetGraphQLSchema()
	for _, want := range []string{"type Pokemon", "enum PokemonType", "input PokemonInput", "createPokemon"} {
		if !strings.Contains(schema, want) {
			t.Errorf("schema missing %q", want)
		}
	}
}
