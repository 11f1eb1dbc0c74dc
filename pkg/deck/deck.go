// Package deck provides Deck, a generic ordered collection of cards.
//
// A Deck behaves like a physical stack: order is significant, duplicates are
// allowed, and the last element is the top of the deck. Cards are dealt from
// the top so removal is O(1).
//
// Deck is not safe for concurrent use.
package deck

import (
	"iter"
	"slices"
)

// Card is the capability a type needs to be stored in a Deck. Comparable
// types have value equality and can key a map, which the set-style helpers
// rely on.
type Card interface {
	comparable
}

// Deck is an ordered sequence of cards. The zero value is an empty deck.
//
// Deck is a value: after b := a, changes made through either variable are
// not visible through the other. Mutators never write into storage another
// Deck may still be reading.
type Deck[T Card] struct {
	cards []T
	// extent is the longest length any Deck sharing the backing array of
	// cards has had. Slots past it are unseen by every copy, so Append may
	// fill them in place.
	extent *int
}

func owned[T Card](cards []T) Deck[T] {
	n := len(cards)
	return Deck[T]{cards: cards, extent: &n}
}

// New returns a deck holding a copy of cards, in order.
func New[T Card](cards ...T) Deck[T] {
	return owned(slices.Clone(cards))
}

// Empty returns a deck with no cards.
func Empty[T Card]() Deck[T] {
	return Deck[T]{}
}

// own replaces the contents with cards, which nothing else may reference.
func (d *Deck[T]) own(cards []T) {
	*d = owned(cards)
}

// detach gives d a private copy of its cards before an in-place write.
func (d *Deck[T]) detach() {
	d.own(slices.Clone(d.cards))
}

func (d Deck[T]) Len() int {
	return len(d.cards)
}

func (d Deck[T]) IsEmpty() bool {
	return len(d.cards) == 0
}

// At returns the card at position i. It panics if i is out of range.
func (d Deck[T]) At(i int) T {
	return d.cards[i]
}

// Set replaces the card at position i. It panics if i is out of range.
func (d *Deck[T]) Set(i int, card T) {
	_ = d.cards[i]
	d.detach()
	d.cards[i] = card
}

// Append puts cards on top of the deck, in order.
func (d *Deck[T]) Append(cards ...T) {
	if len(cards) == 0 {
		return
	}
	n := len(d.cards)
	if d.extent != nil && *d.extent == n && cap(d.cards)-n >= len(cards) {
		d.cards = append(d.cards, cards...)
		*d.extent = len(d.cards)
		return
	}
	d.own(append(slices.Clip(d.cards), cards...))
}

// Insert places cards at position i, shifting later cards up.
// i may equal Len. It panics if i is out of range.
func (d *Deck[T]) Insert(i int, cards ...T) {
	_ = d.cards[i:]
	if len(cards) == 0 {
		return
	}
	d.own(slices.Concat(d.cards[:i], cards, d.cards[i:]))
}

// Remove takes out and returns the card at position i.
// It panics if i is out of range.
func (d *Deck[T]) Remove(i int) T {
	card := d.cards[i]
	switch i {
	case 0:
		d.cards = d.cards[1:]
	case len(d.cards) - 1:
		d.cards = d.cards[:i]
	default:
		d.own(slices.Concat(d.cards[:i], d.cards[i+1:]))
	}
	return card
}

// RemoveFirst takes out and returns the bottom card. It panics on an empty deck.
func (d *Deck[T]) RemoveFirst() T {
	return d.Remove(0)
}

// RemoveLast takes out and returns the top card. It panics on an empty deck.
func (d *Deck[T]) RemoveLast() T {
	return d.Remove(len(d.cards) - 1)
}

// PopLast takes the top card. ok is false if the deck is empty.
func (d *Deck[T]) PopLast() (card T, ok bool) {
	n := len(d.cards)
	if n == 0 {
		return card, false
	}
	card = d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, true
}

// ReplaceRange replaces the cards in [lo, hi) with cards.
// It panics if the range is invalid.
func (d *Deck[T]) ReplaceRange(lo, hi int, cards ...T) {
	_ = d.cards[lo:hi]
	d.own(slices.Concat(d.cards[:lo], cards, d.cards[hi:]))
}

// Slice returns a new deck holding the cards in [lo, hi).
func (d Deck[T]) Slice(lo, hi int) Deck[T] {
	return owned(slices.Clone(d.cards[lo:hi]))
}

// Index returns the position of the first occurrence of card, or -1.
func (d Deck[T]) Index(card T) int {
	return slices.Index(d.cards, card)
}

func (d Deck[T]) Contains(card T) bool {
	return slices.Contains(d.cards, card)
}

// Cards returns a copy of the deck's contents, bottom first.
func (d Deck[T]) Cards() []T {
	return slices.Clone(d.cards)
}

// All iterates from the bottom of the deck to the top.
func (d Deck[T]) All() iter.Seq2[int, T] {
	return slices.All(d.cards)
}

// Backward iterates from the top of the deck to the bottom.
func (d Deck[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(d.cards)
}

func (d Deck[T]) Clone() Deck[T] {
	return owned(slices.Clone(d.cards))
}

// Equal reports whether both decks hold the same cards in the same order.
func (d Deck[T]) Equal(other Deck[T]) bool {
	return slices.Equal(d.cards, other.cards)
}

// Concat returns a new deck with the receiver's cards followed by the cards
// of each deck in others.
func (d Deck[T]) Concat(others ...Deck[T]) Deck[T] {
	return Concat(append([]Deck[T]{d}, others...)...)
}

// Concat joins decks in order into a new deck.
func Concat[T Card](decks ...Deck[T]) Deck[T] {
	n := 0
	for _, d := range decks {
		n += len(d.cards)
	}
	out := make([]T, 0, n)
	for _, d := range decks {
		out = append(out, d.cards...)
	}
	return owned(out)
}

// Shuffle puts the deck in uniformly random order using crypto/rand.
func (d *Deck[T]) Shuffle() {
	d.ShuffleWith(&cryptoSource{})
}

// ShuffleWith shuffles the deck in place drawing from src.
func (d *Deck[T]) ShuffleWith(src Source) {
	d.detach()
	fisherYates(d.cards, src)
}

// Shuffled returns a shuffled copy and leaves the receiver untouched.
func (d Deck[T]) Shuffled() Deck[T] {
	return d.ShuffledWith(&cryptoSource{})
}

func (d Deck[T]) ShuffledWith(src Source) Deck[T] {
	out := d.Clone()
	fisherYates(out.cards, src)
	return out
}

// Sort orders the deck in place. less must be a strict weak order.
// Cards that compare equal keep their relative order.
func (d *Deck[T]) Sort(less func(a, b T) bool) {
	d.detach()
	slices.SortStableFunc(d.cards, compareFunc(less))
}

// Sorted returns a sorted copy and leaves the receiver untouched.
func (d Deck[T]) Sorted(less func(a, b T) bool) Deck[T] {
	out := d.Clone()
	slices.SortStableFunc(out.cards, compareFunc(less))
	return out
}

func compareFunc[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Deal moves cards from the top of d into recipients, round robin.
//
// It runs count rounds; in each round every recipient, in order, receives
// the current top card of d. Once d is empty the remaining turns are
// skipped, so recipients later in the rotation may end up with one card
// fewer. Deal never fails: callers that need a full deal compare recipient
// lengths against count themselves.
func (d *Deck[T]) Deal(count int, recipients ...*Deck[T]) {
	for range count {
		for _, r := range recipients {
			card, ok := d.PopLast()
			if !ok {
				return
			}
			r.Append(card)
		}
	}
}
