package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"StockScout/internal/collector"
	"StockScout/internal/config"
	"StockScout/internal/notifier"
	"StockScout/internal/recorder"
	"StockScout/internal/scanner"
	"StockScout/internal/scheduler"
	"StockScout/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScout starting...")

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file, using process environment")
	}

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

	tickers, err := cfg.LoadTickers()
	if err != nil {
		log.Fatalf("[FATAL] load tickers: %v", err)
	}
	log.Printf("[INFO] %d tickers loaded", len(tickers))

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.APIKey != "" {
		fetcher = collector.NewAlphaVantageFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector and scanner
	col := collector.NewCollector(fetcher, cfg.DataSource.Interval,
		cfg.Strategy.EMAPeriod, cfg.Strategy.SMAPeriod, cfg.Strategy.RSIPeriod, cfg.Strategy.VolumeWindow)
	params := strategy.Params{
		RSIMax:                 cfg.Strategy.RSIMax,
		VolumeWindow:           cfg.Strategy.VolumeWindow,
		IncludeLatestInAverage: cfg.Strategy.IncludeLatestInAverage,
	}
	sc := scanner.New(col, params)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init notifiers: console always, Telegram when configured
	notifiers := []notifier.Notifier{notifier.NewConsoleNotifier()}
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		notifiers = append(notifiers, tn)
	}
	sink := &notifier.MultiNotifier{Notifiers: notifiers}

	// Context for graceful shutdown; cancelling aborts in-flight sends
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, sc, tickers, sink, rec)

	// One-shot mode: no cron expression configured
	if cfg.Schedule.DailyCron == "" {
		log.Println("[INFO] no schedule configured, running one-shot scan")
		sched.RunScanNow()
		return
	}

	// Bot mode
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing scan now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] StockScout is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockScout stopped")
}
