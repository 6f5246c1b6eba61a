package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"StockSentry/internal/analyzer"
	"StockSentry/internal/cache"
	"StockSentry/internal/config"
	"StockSentry/internal/fetcher"
	"StockSentry/internal/indicator"
	"StockSentry/internal/ratelimit"
	"StockSentry/internal/report"
	"StockSentry/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockSentry starting...")

	once := flag.Bool("once", false, "run one analysis pass and exit")
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init cache store
	store := openStore(cfg)
	defer store.Close()

	// Init fetch client
	av := fetcher.NewAlphaVantageFetcher(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Proxy)
	log.Printf("[INFO] data source: %s", av.Name())
	limiter := ratelimit.New(cfg.RateLimitDelay())
	client := fetcher.NewClient(av, store, limiter, cfg.CacheTTL())

	// Init analyzer
	indCfg := indicator.Config{
		ShortSMAPeriod:  cfg.Analysis.ShortSMAPeriod,
		LongSMAPeriod:   cfg.Analysis.LongSMAPeriod,
		RSIPeriod:       cfg.Analysis.RSIPeriod,
		BollingerPeriod: cfg.Analysis.BollingerPeriod,
		MACDMinPoints:   cfg.Analysis.MACDMinPoints,
	}
	a := analyzer.New(client, indCfg, cfg.Analysis.StaleAfterDays)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *once || cfg.Schedule.DailyCron == "" {
		results := a.Run(ctx, cfg.Tickers)
		fmt.Fprint(os.Stdout, report.FormatRun(results))
		return
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, a, cfg.Tickers)
	if err := sched.RegisterDaily(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] StockSentry is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockSentry stopped")
}

// openStore builds the configured cache backend, falling back to the
// in-memory store when a persistent backend cannot be opened.
func openStore(cfg *config.Config) cache.Store {
	switch cfg.Cache.Backend {
	case "sqlite":
		s, err := cache.NewSQLiteStore(cfg.Cache.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite cache failed, using memory: %v", err)
			return cache.NewMemoryStore()
		}
		return s
	case "redis":
		s, err := cache.NewRedisStore(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB, cfg.CacheTTL())
		if err != nil {
			log.Printf("[WARN] init redis cache failed, using memory: %v", err)
			return cache.NewMemoryStore()
		}
		return s
	default:
		return cache.NewMemoryStore()
	}
}
