// Package dexcore provides the thread-safe in-memory store of Pokémon records
// with optional full-text indexing and change notifications.
package dexcore

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pokeql/pokeql/internal/pokemon"
	"github.com/pokeql/pokeql/internal/search"
)

// Core holds the authoritative ordered sequence of records. Insertion order is
// the only ordering; records are never removed.
type Core struct {
	mu       sync.RWMutex
	pokemons []*pokemon.Pokemon

	index *search.Index // nil when search is disabled

	subMu       sync.RWMutex
	subscribers map[uint64]*subscription
	nextSubID   uint64

	done      chan struct{}
	closeOnce sync.Once
}

// New creates an empty Core.
func New() *Core {
	return &Core{
		subscribers: make(map[uint64]*subscription),
		done:        make(chan struct{}),
	}
}

// EnableSearch attaches a full-text index and indexes the current records.
func (c *Core) EnableSearch() error {
	idx, err := search.NewIndex()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := idx.IndexAll(c.pokemons); err != nil {
		idx.Close()
		return err
	}
	c.index = idx
	return nil
}

// SearchEnabled reports whether a full-text index is attached.
func (c *Core) SearchEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index != nil
}

// Load appends the initial dataset. It is meant to be called once at startup.
// When search is enabled the records are indexed first, so a failed index leaves
// the store unchanged.
func (c *Core) Load(records []*pokemon.Pokemon) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index != nil {
		if err := c.index.IndexFrom(len(c.pokemons), records); err != nil {
			return err
		}
	}
	c.pokemons = append(c.pokemons, records...)
	return nil
}

// All returns the records in store order. The returned slice shares its backing
// array with the store; callers must not modify it or its elements. Records
// appended later are not visible through a previously returned slice.
func (c *Core) All() []*pokemon.Pokemon {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pokemons[:len(c.pokemons):len(c.pokemons)]
}

// Len returns the number of records.
func (c *Core) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pokemons)
}

// Append adds p to the end of the store and returns its position. It never
// rejects a record: no uniqueness or validation checks are made.
func (c *Core) Append(p *pokemon.Pokemon) int {
	c.mu.Lock()
	pos := len(c.pokemons)
	c.pokemons = append(c.pokemons, p)
	if c.index != nil {
		if err := c.index.IndexPokemon(pos, p); err != nil {
			log.Warn().Err(err).Str("id", string(p.ID)).Msg("failed to index pokemon")
		}
	}
	c.mu.Unlock()

	c.fanOut(Event{Type: EventCreated, Pokemon: p})
	return pos
}

// Update applies patch to a copy of the first record whose ID equals id and
// replaces it in the store. Readers holding an earlier slice keep seeing the
// old record. Returns false when no record has the id.
func (c *Core) Update(id pokemon.ID, patch func(*pokemon.Pokemon)) (*pokemon.Pokemon, bool) {
	c.mu.Lock()

	pos := -1
	for i, p := range c.pokemons {
		if p.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		c.mu.Unlock()
		return nil, false
	}

	updated := c.pokemons[pos].Clone()
	patch(updated)

	next := make([]*pokemon.Pokemon, len(c.pokemons), cap(c.pokemons))
	copy(next, c.pokemons)
	next[pos] = updated
	c.pokemons = next

	if c.index != nil {
		if err := c.index.IndexPokemon(pos, updated); err != nil {
			log.Warn().Err(err).Str("id", string(id)).Msg("failed to reindex pokemon")
		}
	}
	c.mu.Unlock()

	c.fanOut(Event{Type: EventUpdated, Pokemon: updated})
	return updated, true
}

// Search runs a full-text query and returns matching records in relevance order.
// It returns ErrSearchDisabled when no index is attached.
func (c *Core) Search(query string, limit int) ([]*pokemon.Pokemon, error) {
	c.mu.RLock()
	idx := c.index
	records := c.pokemons[:len(c.pokemons):len(c.pokemons)]
	c.mu.RUnlock()

	if idx == nil {
		return nil, ErrSearchDisabled
	}

	positions, err := idx.Search(query, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*pokemon.Pokemon, 0, len(positions))
	for _, pos := range positions {
		if pos >= 0 && pos < len(records) {
			result = append(result, records[pos])
		}
	}
	return result, nil
}

// Close releases the search index and closes all subscriber channels.
func (c *Core) Close() error {
	c.closeOnce.Do(func() { close(c.done) })

	c.subMu.Lock()
	for id, sub := range c.subscribers {
		close(sub.ch)
		delete(c.subscribers, id)
	}
	c.subMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index != nil {
		err := c.index.Close()
		c.index = nil
		return err
	}
	return nil
}
