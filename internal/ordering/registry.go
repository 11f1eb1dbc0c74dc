// Package ordering names the card comparators the dealer can sort hands with.
package ordering

import (
	"slices"

	"carddeck/pkg/playingcard"
)

// Less reports whether a sorts before b.
type Less func(a, b playingcard.Card) bool

// Factory builds a comparator for the requested direction.
type Factory func(ascending bool) Less

// Registry maps comparator names to factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Default returns a registry holding the built-in orders: "default" (aces
// low) and "aces-high", both with the default suit order.
func Default() *Registry {
	r := NewRegistry()
	r.Register("default", func(ascending bool) Less {
		return playingcard.Order(playingcard.DefaultRankOrder(), playingcard.DefaultSuitOrder(), ascending)
	})
	r.Register("aces-high", func(ascending bool) Less {
		return playingcard.Order(playingcard.AcesHigh(), playingcard.DefaultSuitOrder(), ascending)
	})
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

func (r *Registry) Lookup(name string, ascending bool) (Less, bool) {
	f, ok := r.factories[name]
	if !ok {
		return nil, false
	}
	return f(ascending), true
}

func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
