package ordering

import (
	"fmt"
	"testing"

	"carddeck/pkg/playingcard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{"aces-high", "default"}, r.Names())

	hand := playingcard.MustParseDeck("K♠", "A♠", "2♦")

	less, ok := r.Lookup("default", true)
	require.True(t, ok)
	assert.Equal(t, "[A♠ K♠ 2♦]", cardsString(hand.Sorted(less).Cards()))

	less, ok = r.Lookup("aces-high", true)
	require.True(t, ok)
	assert.Equal(t, "[K♠ A♠ 2♦]", cardsString(hand.Sorted(less).Cards()))

	less, ok = r.Lookup("aces-high", false)
	require.True(t, ok)
	assert.Equal(t, "[2♦ A♠ K♠]", cardsString(hand.Sorted(less).Cards()))
}

func TestLookupUnknown(t *testing.T) {
	r := Default()

	less, ok := r.Lookup("bridge", true)
	assert.False(t, ok)
	assert.Nil(t, less)
	assert.False(t, r.Has("bridge"))
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Register("x", func(bool) Less { calls = 1; return nil })
	r.Register("x", func(bool) Less { calls = 2; return nil })

	_, ok := r.Lookup("x", true)
	require.True(t, ok)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"x"}, r.Names())
}

func cardsString(cards []playingcard.Card) string {
	return fmt.Sprint(cards)
}
