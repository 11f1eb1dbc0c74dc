package playingcard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"carddeck/pkg/deck"

	"golang.org/x/text/cases"
)

// separator splits the long form, "Ace of Spades".
const separator = " of "

// emojiStyle (U+FE0F) follows a suit symbol to request emoji presentation,
// as in "♠️". It belongs to the symbol's character.
const emojiStyle = "\uFE0F"

var suitTokens = map[string]Suit{
	"♠": Spade, "spades": Spade, "spade": Spade, "s": Spade,
	"♦": Diamond, "diamonds": Diamond, "diamond": Diamond, "d": Diamond,
	"♣": Club, "clubs": Club, "club": Club, "c": Club,
	"♥": Heart, "hearts": Heart, "heart": Heart, "h": Heart,
}

var rankTokens = map[string]Rank{
	"ace": Ace, "1": Ace, "a": Ace,
	"two": Two, "2": Two,
	"three": Three, "3": Three,
	"four": Four, "4": Four,
	"five": Five, "5": Five,
	"six": Six, "6": Six,
	"seven": Seven, "7": Seven,
	"eight": Eight, "8": Eight,
	"nine": Nine, "9": Nine,
	"ten": Ten, "10": Ten, "t": Ten,
	"jack": Jack, "j": Jack,
	"queen": Queen, "q": Queen,
	"king": King, "k": King,
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// ParseSuit matches a suit symbol, name or letter, ignoring case.
func ParseSuit(s string) (Suit, error) {
	if suit, ok := suitTokens[fold(strings.TrimSuffix(s, emojiStyle))]; ok {
		return suit, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSuit, s)
}

// ParseRank matches a rank name, numeral or letter, ignoring case.
func ParseRank(s string) (Rank, error) {
	if rank, ok := rankTokens[fold(s)]; ok {
		return rank, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownRank, s)
}

// Parse reads a card in one of two forms:
//
//	Ace of Spades   rank token, " of ", suit token
//	A♠              rank token followed by a one-character suit token
//
// A suit symbol may carry the emoji presentation selector, "A♠️".
// Input without exactly one " of " is read in the second form. Errors wrap
// ErrInvalidCard and one of ErrUnknownRank or ErrUnknownSuit.
func Parse(s string) (Card, error) {
	var rankStr, suitStr string
	if parts := strings.Split(s, separator); len(parts) == 2 {
		rankStr, suitStr = parts[0], parts[1]
	} else {
		body := strings.TrimSuffix(s, emojiStyle)
		r, size := utf8.DecodeLastRuneInString(body)
		if r == utf8.RuneError && size == 0 {
			return Card{}, fmt.Errorf("%w %q: no suit", ErrInvalidCard, s)
		}
		rankStr, suitStr = body[:len(body)-size], s[len(body)-size:]
	}

	rank, err := ParseRank(rankStr)
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %w", ErrInvalidCard, s, err)
	}
	suit, err := ParseSuit(suitStr)
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %w", ErrInvalidCard, s, err)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(s string) Card {
	card, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("playingcard: MustParse(%q): %v", s, err))
	}
	return card
}

// MustParseDeck builds a deck from card literals, bottom first.
// It panics if any literal does not parse.
func MustParseDeck(cards ...string) deck.Deck[Card] {
	d := EmptyDeck()
	for _, s := range cards {
		d.Append(MustParse(s))
	}
	return d
}
