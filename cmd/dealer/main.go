package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"carddeck/internal/config"
	"carddeck/internal/ordering"
	"carddeck/internal/tracing"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := run(context.Background(), cfg, ordering.Default()); err != nil {
		log.Fatalf("dealer: %v", err)
	}
}

// run deals one table and logs it. Tracing is shut down before it returns.
func run(ctx context.Context, cfg config.Config, orders *ordering.Registry) error {
	shutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:  "carddeck-dealer",
		Environment:  cfg.AppEnv,
		PrettyPrint:  cfg.TracePretty,
		TracesExport: cfg.TracesExport,
	})
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Printf("tracing shutdown error: %v", err)
		}
	}()

	t, err := deal(ctx, cfg, orders)
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}

	for i, h := range t.Hands {
		log.Printf("hand %d (%d): %v", i+1, h.Len(), h.Cards())
	}
	log.Printf("stock: %d cards", t.Stock.Len())

	if idx := t.short(cfg.HandSize); len(idx) > 0 {
		log.Printf("WARNING: deck ran out, %d hand(s) short of %d cards", len(idx), cfg.HandSize)
	}
	return t.check()
}
