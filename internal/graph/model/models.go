// Package model holds GraphQL input types that have no domain counterpart.
package model

// PokemonInput is the input shape of createPokemon and updatePokemon.
type PokemonInput struct {
	ID             *string `json:"id,omitempty"`
	Name           string  `json:"name"`
	Classification *string `json:"classification,omitempty"`
}
