package dexcore

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/pokeql/pokeql/internal/pokemon"
)

var ErrSearchDisabled = errors.New("search is not enabled")

// EventType represents the kind of change made to the store.
type EventType int

const (
	// EventCreated indicates a record was appended.
	EventCreated EventType = iota
	// EventUpdated indicates a record was replaced by updatePokemon.
	EventUpdated
)

// String returns a human-readable representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// Event describes a single change.
type Event struct {
	Type    EventType
	Pokemon *pokemon.Pokemon
}

type subscription struct {
	ch chan Event
	id uint64
}

// subscriptionBuffer bounds how far a subscriber may fall behind before events
// are dropped for it.
const subscriptionBuffer = 16

// Subscribe registers for change events. The channel is closed when ctx is done
// or the Core is closed.
func (c *Core) Subscribe(ctx context.Context) <-chan Event {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	ch := make(chan Event, subscriptionBuffer)
	select {
	case <-c.done:
		close(ch)
		return ch
	default:
	}

	id := atomic.AddUint64(&c.nextSubID, 1)
	c.subscribers[id] = &subscription{ch: ch, id: id}

	go func() {
		select {
		case <-ctx.Done():
			c.unsubscribe(id)
		case <-c.done:
		}
	}()

	return ch
}

func (c *Core) unsubscribe(id uint64) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	if sub, ok := c.subscribers[id]; ok {
		close(sub.ch)
		delete(c.subscribers, id)
	}
}

// SubscriberCount returns the number of active subscriptions.
func (c *Core) SubscriberCount() int {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	return len(c.subscribers)
}

// fanOut sends an event to all subscribers without blocking.
// Slow subscribers have events dropped rather than blocking writers.
func (c *Core) fanOut(ev Event) {
	c.subMu.RLock()
	defer c.subMu.RUnlock()

	for _, sub := range c.subscribers {
		select {
		case sub.ch <- ev:
		default:
		}
	}
}
