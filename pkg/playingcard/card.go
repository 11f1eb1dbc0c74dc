// Package playingcard implements the standard 52-card French deck on top of
// package deck.
package playingcard

import "carddeck/pkg/deck"

// Card is a playing card. Two cards are equal when suit and rank match.
type Card struct {
	Suit Suit
	Rank Rank
}

func New(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// FullDeck returns all 52 cards, grouped by suit in Suits order and by rank
// in Ranks order within each suit.
func FullDeck() deck.Deck[Card] {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return deck.New(cards...)
}

func EmptyDeck() deck.Deck[Card] {
	return deck.Empty[Card]()
}

// String returns the short form: rank code followed by suit symbol, "A♠".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrInvalidCard
	}
	return []byte(c.String()), nil
}

// UnmarshalText accepts any form Parse does.
func (c *Card) UnmarshalText(text []byte) error {
	card, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}
