package deck

// Distinct returns the set of cards in the deck.
func (d Deck[T]) Distinct() map[T]struct{} {
	set := make(map[T]struct{}, len(d.cards))
	for _, c := range d.cards {
		set[c] = struct{}{}
	}
	return set
}

// IsDisjoint reports whether the two decks share no card.
func (d Deck[T]) IsDisjoint(other Deck[T]) bool {
	small, large := d, other
	if len(small.cards) > len(large.cards) {
		small, large = large, small
	}
	set := large.Distinct()
	for _, c := range small.cards {
		if _, ok := set[c]; ok {
			return false
		}
	}
	return true
}

// ContainsAll reports whether every card of other is in d, counting
// duplicates: a card appearing twice in other must appear at least twice in d.
func (d Deck[T]) ContainsAll(other Deck[T]) bool {
	counts := make(map[T]int, len(d.cards))
	for _, c := range d.cards {
		counts[c]++
	}
	for _, c := range other.cards {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

// SameCards reports whether both decks hold the same multiset of cards,
// ignoring order.
func (d Deck[T]) SameCards(other Deck[T]) bool {
	return len(d.cards) == len(other.cards) && d.ContainsAll(other)
}
