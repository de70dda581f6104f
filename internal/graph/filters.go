package graph

import "github.com/pokeql/pokeql/internal/pokemon"

// FilterPokemons returns the records whose types contain typ, OR whose weaknesses
// contain weakness, OR whose resistant list contains resistant. Each test is a
// single-value membership check and a nil argument never matches, so calling it
// with no arguments yields an empty (non-nil) slice.
func FilterPokemons(pokemons []*pokemon.Pokemon, typ *pokemon.Type, resistant, weakness *string) []*pokemon.Pokemon {
	result := []*pokemon.Pokemon{}
	for _, p := range pokemons {
		if matchesType(p, typ) || matchesWeakness(p, weakness) || matchesResistance(p, resistant) {
			result = append(result, p)
		}
	}
	return result
}

func matchesType(p *pokemon.Pokemon, typ *pokemon.Type) bool {
	return typ != nil && p.HasType(*typ)
}

func matchesWeakness(p *pokemon.Pokemon, weakness *string) bool {
	return weakness != nil && p.HasWeakness(*weakness)
}

func matchesResistance(p *pokemon.Pokemon, resistant *string) bool {
	return resistant != nil && p.HasResistance(*resistant)
}

// FindByName returns the first record with the given name, or nil.
func FindByName(pokemons []*pokemon.Pokemon, name *string) *pokemon.Pokemon {
	if name == nil {
		return nil
	}
	for _, p := range pokemons {
		if p.Name == *name {
			return p
		}
	}
	return nil
}

// FindByID returns the first record with the given id, or nil.
func FindByID(pokemons []*pokemon.Pokemon, id pokemon.ID) *pokemon.Pokemon {
	for _, p := range pokemons {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// DistinctTypes flattens every record's types and drops repeats, keeping
// first-occurrence order.
func DistinctTypes(pokemons []*pokemon.Pokemon) []string {
	seen := make(map[pokemon.Type]bool)
	result := []string{}
	for _, p := range pokemons {
		for _, t := range p.Types {
			if seen[t] {
				continue
			}
			seen[t] = true
			result = append(result, string(t))
		}
	}
	return result
}

// DistinctAttacks flattens fast then special attacks per record, records in store
// order, and keeps the first attack seen for each name.
func DistinctAttacks(pokemons []*pokemon.Pokemon) []*pokemon.Attack {
	seen := make(map[string]bool)
	result := []*pokemon.Attack{}
	for _, p := range pokemons {
		for _, a := range p.AllAttacks() {
			if a == nil || seen[a.Name] {
				continue
			}
			seen[a.Name] = true
			result = append(result, a)
		}
	}
	return result
}

// FindAttack returns the first attack with the given name in the same traversal
// order as DistinctAttacks, or nil.
func FindAttack(pokemons []*pokemon.Pokemon, name *string) *pokemon.Attack {
	if name == nil {
		return nil
	}
	for _, p := range pokemons {
		for _, a := range p.AllAttacks() {
			if a != nil && a.Name == *name {
				return a
			}
		}
	}
	return nil
}
