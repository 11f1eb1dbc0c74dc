package playingcard

import "slices"

// Rank is a card rank. The numeric value of a pip rank is its pip count;
// Ace is 1 and the court cards are 11 through 13.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank in declaration order. FullDeck iterates it.
var Ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// DefaultRankOrder returns the ranks with aces low.
func DefaultRankOrder() []Rank {
	return slices.Clone(Ranks[:])
}

// AcesHigh returns the default rank order with Ace moved to the end.
func AcesHigh() []Rank {
	order := DefaultRankOrder()
	return append(order[1:], order[0])
}

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the short rank code used in card display:
// A, 2 through 10, J, Q or K.
func (r Rank) String() string {
	if r >= Two && r <= Ten {
		return rankNumerals[r]
	}
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}

func (r Rank) Name() string {
	if !r.Valid() {
		return "unknown"
	}
	return rankNames[r]
}

var rankNumerals = [...]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6",
	Seven: "7", Eight: "8", Nine: "9", Ten: "10",
}

var rankNames = [...]string{
	Ace: "ace", Two: "two", Three: "three", Four: "four", Five: "five",
	Six: "six", Seven: "seven", Eight: "eight", Nine: "nine", Ten: "ten",
	Jack: "jack", Queen: "queen", King: "king",
}
