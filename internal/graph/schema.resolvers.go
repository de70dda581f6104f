package graph

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/pokeql/pokeql/internal/dexcore"
	"github.com/pokeql/pokeql/internal/graph/model"
	"github.com/pokeql/pokeql/internal/pokemon"
)

// AllPokemons is the resolver for the AllPokemons field.
func (r *queryResolver) AllPokemons(ctx context.Context) ([]*pokemon.Pokemon, error) {
	return r.Core.All(), nil
}

// Pokemons is the resolver for the Pokemons field.
func (r *queryResolver) Pokemons(ctx context.Context, typeArg *pokemon.Type, resistant *string, weaknesses *string) ([]*pokemon.Pokemon, error) {
	return FilterPokemons(r.Core.All(), typeArg, resistant, weaknesses), nil
}

// Pokemon is the resolver for the Pokemon field.
func (r *queryResolver) Pokemon(ctx context.Context, name *string) (*pokemon.Pokemon, error) {
	return FindByName(r.Core.All(), name), nil
}

// PokemonTypes is the resolver for the PokemonTypes field.
func (r *queryResolver) PokemonTypes(ctx context.Context) ([]string, error) {
	return DistinctTypes(r.Core.All()), nil
}

// Attacks is the resolver for the Attacks field.
func (r *queryResolver) Attacks(ctx context.Context) ([]*pokemon.Attack, error) {
	return DistinctAttacks(r.Core.All()), nil
}

// Attack is the resolver for the Attack field.
func (r *queryResolver) Attack(ctx context.Context, name *string) (*pokemon.Attack, error) {
	return FindAttack(r.Core.All(), name), nil
}

// SearchPokemons is the resolver for the searchPokemons field.
func (r *queryResolver) SearchPokemons(ctx context.Context, query string, limit *int) ([]*pokemon.Pokemon, error) {
	n := 0
	if limit != nil {
		n = *limit
	}
	return r.Core.Search(query, n)
}

// CreatePokemon is the resolver for the createPokemon field.
// The new record carries only id, name and classification.
func (r *mutationResolver) CreatePokemon(ctx context.Context, input *model.PokemonInput) (*pokemon.Pokemon, error) {
	if input == nil {
		return nil, nil
	}

	p := &pokemon.Pokemon{
		Name:           input.Name,
		Classification: input.Classification,
	}
	if input.ID != nil {
		p.ID = pokemon.ID(*input.ID)
	} else {
		p.ID = pokemon.NewID(r.IDLength)
	}

	r.Core.Append(p)

	log.Info().Str("id", string(p.ID)).Str("name", p.Name).Msg("pokemon created")
	return p, nil
}

// UpdatePokemon is the resolver for the updatePokemon field.
// It merges name and classification into the first record with the given id.
func (r *mutationResolver) UpdatePokemon(ctx context.Context, id string, input *model.PokemonInput) (*pokemon.Pokemon, error) {
	if input == nil {
		return FindByID(r.Core.All(), pokemon.ID(id)), nil
	}

	updated, ok := r.Core.Update(pokemon.ID(id), func(p *pokemon.Pokemon) {
		p.Name = input.Name
		if input.Classification != nil {
			p.Classification = input.Classification
		}
	})
	if !ok {
		return nil, nil
	}

	log.Info().Str("id", id).Str("name", updated.Name).Msg("pokemon updated")
	return updated, nil
}

// PokemonCreated is the resolver for the pokemonCreated field.
func (r *subscriptionResolver) PokemonCreated(ctx context.Context) (<-chan *pokemon.Pokemon, error) {
	events := r.Core.Subscribe(ctx)
	out := make(chan *pokemon.Pokemon, 1)

	go func() {
		defer close(out)
		for ev := range events {
			if ev.Type != dexcore.EventCreated {
				continue
			}
			select {
			case out <- ev.Pokemon:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
