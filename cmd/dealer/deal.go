package main

import (
	"context"
	"fmt"
	mrand "math/rand/v2"

	"carddeck/internal/config"
	"carddeck/internal/ordering"
	"carddeck/internal/tracing"
	"carddeck/pkg/deck"
	"carddeck/pkg/playingcard"

	"go.opentelemetry.io/otel/attribute"
)

type table struct {
	Hands []deck.Deck[playingcard.Card]
	Stock deck.Deck[playingcard.Card]
}

// deal builds a full deck, shuffles it, deals cfg.HandSize cards to each of
// cfg.Players hands and sorts every hand with the configured order.
func deal(ctx context.Context, cfg config.Config, orders *ordering.Registry) (table, error) {
	ctx, span := tracing.StartSpan(ctx, "dealer.deal",
		attribute.Int("players", cfg.Players),
		attribute.Int("hand_size", cfg.HandSize),
	)
	defer span.End()

	less, ok := orders.Lookup(cfg.Order, !cfg.Descending)
	if !ok {
		return table{}, fmt.Errorf("unknown order %q", cfg.Order)
	}

	stock := playingcard.FullDeck()

	_, shuffleSpan := tracing.StartSpan(ctx, "deck.shuffle",
		attribute.Int("cards", stock.Len()),
		attribute.Bool("seeded", cfg.Seeded()),
	)
	if cfg.Seeded() {
		stock.ShuffleWith(mrand.New(mrand.NewPCG(cfg.Seed, cfg.Seed+1)))
	} else {
		stock.Shuffle()
	}
	shuffleSpan.End()

	hands := make([]deck.Deck[playingcard.Card], cfg.Players)
	recipients := make([]*deck.Deck[playingcard.Card], len(hands))
	for i := range hands {
		recipients[i] = &hands[i]
	}

	_, dealSpan := tracing.StartSpan(ctx, "deck.deal", attribute.Int("count", cfg.HandSize))
	stock.Deal(cfg.HandSize, recipients...)
	dealSpan.SetAttributes(attribute.Int("stock_remaining", stock.Len()))
	dealSpan.End()

	_, sortSpan := tracing.StartSpan(ctx, "deck.sort", attribute.String("order", cfg.Order))
	for i := range hands {
		hands[i].Sort(less)
	}
	sortSpan.End()

	return table{Hands: hands, Stock: stock}, nil
}

// check verifies the table still holds exactly one full deck with no card in
// two places.
func (t table) check() error {
	for i, h := range t.Hands {
		if !h.IsDisjoint(t.Stock) {
			return fmt.Errorf("hand %d shares cards with the stock", i+1)
		}
		for j := i + 1; j < len(t.Hands); j++ {
			if !h.IsDisjoint(t.Hands[j]) {
				return fmt.Errorf("hands %d and %d share cards", i+1, j+1)
			}
		}
	}
	all := deck.Concat(t.Hands...).Concat(t.Stock)
	if !all.SameCards(playingcard.FullDeck()) {
		return fmt.Errorf("table holds %d cards, not a full deck", all.Len())
	}
	return nil
}

// short returns the indices of hands holding fewer than want cards.
func (t table) short(want int) []int {
	var idx []int
	for i, h := range t.Hands {
		if h.Len() < want {
			idx = append(idx, i)
		}
	}
	return idx
}
