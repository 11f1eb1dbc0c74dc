package playingcard

// Suit is one of the four French suits.
type Suit int

const (
	Spade Suit = iota + 1
	Diamond
	Club
	Heart
)

// Suits lists every suit in declaration order. FullDeck iterates it.
var Suits = [...]Suit{Spade, Diamond, Club, Heart}

// DefaultSuitOrder returns the default display order for suits.
func DefaultSuitOrder() []Suit {
	return []Suit{Spade, Diamond, Club, Heart}
}

func (s Suit) Valid() bool {
	return s >= Spade && s <= Heart
}

// String returns the suit symbol, e.g. "♠".
func (s Suit) String() string {
	switch s {
	case Spade:
		return "♠"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	case Heart:
		return "♥"
	default:
		return "?"
	}
}

// Name returns the singular lower-case name, e.g. "spade".
func (s Suit) Name() string {
	switch s {
	case Spade:
		return "spade"
	case Diamond:
		return "diamond"
	case Club:
		return "club"
	case Heart:
		return "heart"
	default:
		return "unknown"
	}
}
