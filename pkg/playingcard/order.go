package playingcard

import "slices"

// Order builds a comparator for Deck.Sort and Deck.Sorted.
//
// Cards compare by the position of their suit in suitOrder; only cards of
// the same suit position compare by the position of their rank in rankOrder.
// A suit or rank missing from its order list takes position 0. With
// ascending false both comparisons are reversed.
func Order(rankOrder []Rank, suitOrder []Suit, ascending bool) func(a, b Card) bool {
	rankOrder = slices.Clone(rankOrder)
	suitOrder = slices.Clone(suitOrder)
	return func(a, b Card) bool {
		s1, s2 := position(suitOrder, a.Suit), position(suitOrder, b.Suit)
		if s1 != s2 {
			if ascending {
				return s1 < s2
			}
			return s1 > s2
		}
		r1, r2 := position(rankOrder, a.Rank), position(rankOrder, b.Rank)
		if ascending {
			return r1 < r2
		}
		return r1 > r2
	}
}

func position[E comparable](order []E, v E) int {
	if i := slices.Index(order, v); i >= 0 {
		return i
	}
	return 0
}

// DefaultAscendingOrder sorts aces low, suits in DefaultSuitOrder.
func DefaultAscendingOrder() func(a, b Card) bool {
	return Order(DefaultRankOrder(), DefaultSuitOrder(), true)
}

func DefaultDescendingOrder() func(a, b Card) bool {
	return Order(DefaultRankOrder(), DefaultSuitOrder(), false)
}
