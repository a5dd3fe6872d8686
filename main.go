package main

import (
	auctionsvc "auction-house/internal/auctionService"
	bidding "auction-house/internal/biddingService"
	"auction-house/internal/notifier"
	ordersvc "auction-house/internal/orderService"
	"auction-house/internal/repository"
	"auction-house/internal/scheduler"
	"auction-house/internal/server"
	handler "auction-house/services/auction/handler"
	"context"
	"fmt"
	"os"
	"time"
)

func main() {
	repo := repository.NewMemoryLedger()

	hub := notifier.NewHub()
	go hub.Run()

	auctions := auctionsvc.NewService(repo)
	bids := bidding.NewBiddingService(repo, hub)
	orders := ordersvc.NewService(repo)

	sched := scheduler.New(repo, hub, schedulerConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched.Start(ctx)

	h := handler.NewMarketplaceHandler(auctions, bids, orders)
	router := server.SetupRouter(h, hub)

	port := getPort()
	fmt.Printf("Starting auction marketplace server on %s...\n", port)
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// schedulerConfig builds the sweep configuration from env, falling back to
// the defaults (minute sweeps, 48h payment window)
func schedulerConfig() scheduler.Config {
	cfg := scheduler.DefaultConfig()
	cfg.CloseInterval = getDuration("CLOSE_SWEEP_INTERVAL", cfg.CloseInterval)
	cfg.FallbackInterval = getDuration("FALLBACK_SWEEP_INTERVAL", cfg.FallbackInterval)
	cfg.GraceWindow = getDuration("PAYMENT_GRACE_WINDOW", cfg.GraceWindow)
	return cfg
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid %s %q, using %s\n", key, v, fallback)
		return fallback
	}
	return d
}
