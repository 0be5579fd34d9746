package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/collector"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/config"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/enrich"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/scheduler"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/tui"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

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

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := tea.LogToFile(cfg.LogFile, "dashboard")
	if err != nil {
		log.Fatalf("[FATAL] open log file: %v", err)
	}
	defer logFile.Close()
	log.Println("[INFO] dashboard starting...")

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.Mock {
		fetcher = &collector.MockFetcher{}
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init enricher with a time-seeded jitter source
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	enricher := enrich.NewEnricher(enrich.UniformNoise(rng))

	// Presenter is attached to the program after it exists
	presenter := tui.NewProgramPresenter()

	sched := scheduler.NewScheduler(fetcher, enricher, presenter, scheduler.Settings{
		Symbol:         cfg.Ticker,
		Interval:       cfg.ParsedInterval(),
		AlertThreshold: cfg.AlertThreshold,
	})
	if err := sched.Register(cfg.RefreshSeconds); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}

	m := tui.NewModel(cfg, sched)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	presenter.Attach(prog)

	sched.Start()
	defer sched.Stop()

	// First render immediately, then every refresh period.
	sched.RunNow()

	if _, err := prog.Run(); err != nil {
		log.Fatalf("[FATAL] run ui: %v", err)
	}
	log.Println("[INFO] dashboard stopped")
}
