package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"SignalScout/internal/collector"
	"SignalScout/internal/config"
	"SignalScout/internal/plot"
	"SignalScout/internal/report"
	"SignalScout/internal/scheduler"
	"SignalScout/internal/strategy"
)

const (
	defaultPeriod   = "6mo"
	defaultInterval = "1d"
	tickerTimeout   = 45 * time.Second
	batchWorkers    = 4
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: scout <TICKER | tickers.yaml>")
		os.Exit(1)
	}

	arg := os.Args[1]
	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		runBatch(arg)
		return
	}
	runSingle(strings.ToUpper(arg))
}

func runSingle(ticker string) {
	fetcher := collector.NewYahooFetcher(os.Getenv("HTTPS_PROXY"))
	col := collector.NewCollector(fetcher, nil, defaultPeriod, defaultInterval)
	renderer := &plot.Renderer{Show: os.Getenv("SHOW_PLOT") == "true"}

	if err := scanTicker(context.Background(), col, renderer, ticker); err != nil {
		fmt.Printf("❌ %v\n", err)
	}
}

func runBatch(cfgPath string) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s, %d tickers", fetcher.Name(), len(cfg.Tickers))

	var cache *collector.BarCache
	if cfg.CachePath != "" {
		c, err := collector.NewBarCache(cfg.CachePath)
		if err != nil {
			log.Printf("[WARN] init bar cache failed, continuing without: %v", err)
		} else {
			cache = c
			defer c.Close()
		}
	}

	col := collector.NewCollector(fetcher, cache, cfg.Period, cfg.Interval)
	renderer := &plot.Renderer{OutputDir: cfg.OutputDir, Show: os.Getenv("SHOW_PLOT") == "true"}

	scan := func() { scanAll(col, renderer, cfg.Tickers) }

	if cfg.Schedule == "" {
		scan()
		return
	}

	// Watch mode: scan once now, then on every cron tick until interrupted.
	sched := scheduler.New()
	if err := sched.Register(cfg.Schedule, scan); err != nil {
		log.Fatalf("[FATAL] register schedule %q: %v", cfg.Schedule, err)
	}
	sched.Start()
	defer sched.Stop()
	scan()

	log.Printf("[INFO] watching on schedule %q, press Ctrl+C to stop", cfg.Schedule)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping")
}

// scanAll evaluates every ticker on a bounded worker pool. One ticker's
// failure is reported and never aborts the others.
func scanAll(col *collector.Collector, renderer *plot.Renderer, tickers []string) {
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchWorkers)

	for _, t := range tickers {
		ticker := strings.ToUpper(t)
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := scanTicker(context.Background(), col, renderer, ticker); err != nil {
				log.Printf("[ERROR] %s: %v", ticker, err)
				fmt.Printf("❌ %s: %v\n", ticker, err)
			}
		}()
	}
	wg.Wait()
}

// scanTicker runs the fetch → compute → evaluate → report → render pipeline
// for one ticker.
func scanTicker(ctx context.Context, col *collector.Collector, renderer *plot.Renderer, ticker string) error {
	ctx, cancel := context.WithTimeout(ctx, tickerTimeout)
	defer cancel()

	rows, err := col.Collect(ctx, ticker)
	if err != nil {
		return err
	}

	decision := strategy.Evaluate(rows)
	if decision.Triggered {
		fmt.Print(report.Triggered(ticker, decision))
	} else {
		fmt.Println(report.NoSignal(ticker))
	}

	signalAt := time.Time{}
	if decision.Triggered {
		signalAt = decision.AsOf
	}
	path, err := renderer.Render(rows, ticker, signalAt)
	if err != nil {
		return err
	}
	fmt.Printf("📁 Plot with RSI saved to %s\n", path)
	return nil
}
