package graph

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/99designs/gqlgen/graphql"

	"github.com/pokeql/pokeql/internal/graph/model"
	"github.com/pokeql/pokeql/internal/pokemon"
)

func resolvePokemonField(field graphql.CollectedField, p *pokemon.Pokemon) (any, error) {
	switch field.Name {
	case "id":
		return p.ID, nil
	case "name":
		return p.Name, nil
	case "classification":
		return p.Classification, nil
	case "types":
		return p.Types, nil
	case "resistant":
		return p.Resistant, nil
	case "weaknesses":
		return p.Weaknesses, nil
	case "weight":
		return p.Weight, nil
	case "height":
		return p.Height, nil
	case "fleeRate":
		return p.FleeRate, nil
	case "evolutionRequirements":
		return p.EvolutionRequirements, nil
	case "evolutions":
		return p.Evolutions, nil
	case "maxCP":
		return p.MaxCP, nil
	case "maxHP":
		return p.MaxHP, nil
	case "attacks":
		return p.Attacks, nil
	}
	return nil, fmt.Errorf("unknown field Pokemon.%s", field.Name)
}

// fast and special are non-null lists; a record that carries attacks but omits
// one group reports it as empty.
func resolveAttacksField(field graphql.CollectedField, a *pokemon.Attacks) (any, error) {
	switch field.Name {
	case "fast":
		if a.Fast == nil {
			return []*pokemon.Attack{}, nil
		}
		return a.Fast, nil
	case "special":
		if a.Special == nil {
			return []*pokemon.Attack{}, nil
		}
		return a.Special, nil
	}
	return nil, fmt.Errorf("unknown field Attacks.%s", field.Name)
}

func resolveAttackField(field graphql.CollectedField, a *pokemon.Attack) (any, error) {
	switch field.Name {
	case "name":
		return a.Name, nil
	case "type":
		return a.Type, nil
	case "damage":
		return a.Damage, nil
	}
	return nil, fmt.Errorf("unknown field Attack.%s", field.Name)
}

func resolvePhysicalSpecsField(field graphql.CollectedField, s *pokemon.PhysicalSpecs) (any, error) {
	switch field.Name {
	case "minimum":
		return s.Minimum, nil
	case "maximum":
		return s.Maximum, nil
	}
	return nil, fmt.Errorf("unknown field PhysicalSpecs.%s", field.Name)
}

func resolveEvolutionRequirementsField(field graphql.CollectedField, r *pokemon.EvolutionRequirements) (any, error) {
	switch field.Name {
	case "amount":
		return r.Amount, nil
	case "name":
		return r.Name, nil
	}
	return nil, fmt.Errorf("unknown field EvolutionRequirements.%s", field.Name)
}

// Argument coercion. Values arrive either from literals in the document
// (int64, float64, string) or from request variables (json.Number, float64).

func argString(args map[string]any, name string) (*string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	s, err := coerceString(v)
	if err != nil {
		return nil, fmt.Errorf("argument %s: %w", name, err)
	}
	return &s, nil
}

func argInt(args map[string]any, name string) (*int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	n, err := coerceInt(v)
	if err != nil {
		return nil, fmt.Errorf("argument %s: %w", name, err)
	}
	return &n, nil
}

func argType(args map[string]any, name string) (*pokemon.Type, error) {
	s, err := argString(args, name)
	if err != nil || s == nil {
		return nil, err
	}
	t, err := pokemon.ParseType(*s)
	if err != nil {
		return nil, fmt.Errorf("argument %s: %w", name, err)
	}
	return &t, nil
}

func argPokemonInput(args map[string]any, name string) (*model.PokemonInput, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("argument %s: expected an object, got %T", name, v)
	}

	input := &model.PokemonInput{}
	var err error
	if input.ID, err = argString(m, "id"); err != nil {
		return nil, err
	}
	if input.Classification, err = argString(m, "classification"); err != nil {
		return nil, err
	}
	n, err := argString(m, "name")
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("argument %s: name is required", name)
	}
	input.Name = *n
	return input, nil
}

func coerceString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("expected a string, got %T", v)
}

func coerceInt(v any) (int, error) {
	switch v := v.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, err
		}
		return int(n), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	}
	return 0, fmt.Errorf("expected an integer, got %T", v)
}
