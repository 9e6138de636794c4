package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockPulse/internal/analyzer"
	"StockPulse/internal/collector"
	"StockPulse/internal/config"
	"StockPulse/internal/model"
	"StockPulse/internal/notifier"
	"StockPulse/internal/recorder"
	"StockPulse/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockPulse starting...")

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

	horizon, _ := model.ParseHorizon(cfg.Instrument.Horizon)
	mode, _ := model.ParsePredictionMode(cfg.Instrument.PredictionMode)

	// Init provider
	var provider collector.Provider
	if cfg.DataSource.BaseURL != "" {
		provider = collector.NewRESTProvider(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		provider = collector.NewYahooProvider(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", provider.Name())

	// Init collector with TTL cache
	cache := collector.NewCache(cfg.Cache.Size, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	col := collector.NewCollector(provider, cache)

	// Init analyzer
	a := analyzer.New(col, mode)
	a.IndicatorCfg.BollingerStd = cfg.Indicators.BollingerStd
	a.PriceBandPct = cfg.Instrument.PriceBandPct

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

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

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, a, cfg.Instrument.Ticker, horizon, tn, rec)
	sched.CSVPath = cfg.Export.CSVPath
	if err := sched.Register(cfg.Schedule.AnalysisCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] StockPulse is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] StockPulse stopped")
}
