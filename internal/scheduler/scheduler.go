// Package scheduler drives the refresh cycle: fetch, enrich, extract,
// classify, present. One tick runs start to finish before the next begins.
package scheduler

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/collector"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/enrich"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/insight"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/news"
)

// Presenter consumes one tick's results. The core never holds UI handles;
// the TUI implements this by forwarding messages into its event loop.
type Presenter interface {
	UpdateMetrics(ins *model.Insights)
	RenderChart(s *model.Series)
	RenderFundamentals(sum *model.Summary)
	RenderNews(items []model.NewsItem)
	ShowAlert(symbol string, threshold, price float64)
	ShowWarning(msg string)
	ShowError(msg string)
}

// Settings are the per-tick inputs the user can change between refreshes.
type Settings struct {
	Symbol         string
	Interval       model.Interval
	AlertThreshold float64
}

// Scheduler runs the refresh tick on a fixed period.
type Scheduler struct {
	cron      *cron.Cron
	fetcher   collector.Fetcher
	enricher  *enrich.Enricher
	presenter Presenter

	mu       sync.Mutex
	settings Settings
	entryID  cron.EntryID
}

// NewScheduler creates a Scheduler. The cron instance has seconds enabled
// so the refresh period can sit inside a minute.
func NewScheduler(fetcher collector.Fetcher, enricher *enrich.Enricher, presenter Presenter, settings Settings) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		fetcher:   fetcher,
		enricher:  enricher,
		presenter: presenter,
		settings:  settings,
	}
}

// Register schedules the refresh tick every refreshSeconds seconds.
func (s *Scheduler) Register(refreshSeconds int) error {
	if refreshSeconds <= 0 {
		return fmt.Errorf("refresh period must be positive, got %d", refreshSeconds)
	}
	id, err := s.cron.AddFunc(fmt.Sprintf("@every %ds", refreshSeconds), s.Tick)
	if err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	s.mu.Lock()
	s.entryID = id
	s.mu.Unlock()
	return nil
}

// Reschedule replaces the refresh period. Used by the controls panel.
func (s *Scheduler) Reschedule(refreshSeconds int) error {
	s.mu.Lock()
	old := s.entryID
	s.mu.Unlock()
	if err := s.Register(refreshSeconds); err != nil {
		return err
	}
	s.cron.Remove(old)
	log.Printf("[INFO] refresh period set to %ds", refreshSeconds)
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// Settings returns a copy of the current settings.
func (s *Scheduler) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetSymbol switches the watched ticker starting with the next tick.
func (s *Scheduler) SetSymbol(symbol string) {
	s.mu.Lock()
	s.settings.Symbol = symbol
	s.mu.Unlock()
	log.Printf("[INFO] symbol set to %s", symbol)
}

// SetInterval switches the bar interval starting with the next tick.
func (s *Scheduler) SetInterval(iv model.Interval) {
	s.mu.Lock()
	s.settings.Interval = iv
	s.mu.Unlock()
	log.Printf("[INFO] interval set to %s", iv)
}

// SetAlertThreshold updates the price alert threshold. Zero disables it.
func (s *Scheduler) SetAlertThreshold(threshold float64) {
	s.mu.Lock()
	s.settings.AlertThreshold = threshold
	s.mu.Unlock()
	log.Printf("[INFO] alert threshold set to %.2f", threshold)
}

// RunNow executes a tick immediately (initial render on startup, or a
// manual refresh from the controls panel).
func (s *Scheduler) RunNow() { go s.Tick() }

// Tick executes one full refresh cycle. Provider failures abort rendering
// for this tick only; the process survives to the next scheduled tick.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	st := s.settings
	s.mu.Unlock()

	series, err := s.fetcher.FetchIntraday(st.Symbol, st.Interval)
	if err != nil {
		if errors.Is(err, collector.ErrNoData) {
			log.Printf("[WARN] no data for %s", st.Symbol)
			s.presenter.ShowWarning(fmt.Sprintf("No data found for ticker %s.", st.Symbol))
		} else {
			log.Printf("[ERROR] fetch intraday %s: %v", st.Symbol, err)
			s.presenter.ShowError(fmt.Sprintf("Error fetching data: %v", err))
		}
		return
	}

	s.enricher.Enrich(series)

	// Metadata and news failures degrade to placeholders; the chart and
	// metrics still render from what we have.
	summary, err := s.fetcher.FetchSummary(st.Symbol)
	if err != nil {
		log.Printf("[WARN] fetch summary %s: %v", st.Symbol, err)
		summary = &model.Summary{}
	}

	ins := insight.Extract(series, summary)

	items, err := s.fetcher.FetchNews(st.Symbol)
	if err != nil {
		log.Printf("[WARN] fetch news %s: %v", st.Symbol, err)
		items = nil
	}
	items = news.ClassifyAll(news.Filter(items))

	s.presenter.UpdateMetrics(ins)
	s.presenter.RenderChart(series)
	s.presenter.RenderFundamentals(summary)
	s.presenter.RenderNews(items)

	if insight.AlertTriggered(st.AlertThreshold, ins.CurrentPrice) {
		log.Printf("[INFO] price alert: %s at %.2f crossed %.2f", st.Symbol, ins.CurrentPrice, st.AlertThreshold)
		s.presenter.ShowAlert(st.Symbol, st.AlertThreshold, ins.CurrentPrice)
	}
}
