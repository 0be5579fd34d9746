package collector

import (
	"time"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Any field left nil falls back to generated data around BasePrice.
type MockFetcher struct {
	BasePrice float64
	Bars      []model.Bar
	Summary   *model.Summary
	News      []model.NewsItem

	IntradayErr error
	SummaryErr  error
	NewsErr     error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchIntraday(symbol string, interval model.Interval) (*model.Series, error) {
	if m.IntradayErr != nil {
		return nil, m.IntradayErr
	}
	bars := m.Bars
	if bars == nil {
		bars = GenerateBars(m.basePrice(), 78, time.Minute)
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	return &model.Series{
		Symbol:    symbol,
		Interval:  interval,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}

func (m *MockFetcher) FetchSummary(symbol string) (*model.Summary, error) {
	if m.SummaryErr != nil {
		return nil, m.SummaryErr
	}
	if m.Summary != nil {
		return m.Summary, nil
	}
	base := m.basePrice()
	return &model.Summary{
		High52w: base * 1.25,
		Low52w:  base * 0.75,
		Fundamentals: model.Fundamentals{
			PreviousClose: base * 0.998,
			Open:          base * 0.999,
			DayLow:        base * 0.99,
			DayHigh:       base * 1.01,
			MarketCap:     3.1e12,
			PERatio:       34.2,
			EPS:           base / 34.2,
			DividendYield: 0.0072,
			Sector:        "Technology",
			Industry:      "Software - Infrastructure",
		},
	}, nil
}

func (m *MockFetcher) FetchNews(symbol string) ([]model.NewsItem, error) {
	if m.NewsErr != nil {
		return nil, m.NewsErr
	}
	if m.News != nil {
		return m.News, nil
	}
	now := time.Now()
	return []model.NewsItem{
		{Title: "Shares surge after earnings beat expectations", Link: "https://example.com/1", Publisher: "Newswire", PublishedAt: now.Add(-30 * time.Minute)},
		{Title: "Analysts see profit growth ahead", Link: "https://example.com/2", Publisher: "Finance Daily", PublishedAt: now.Add(-2 * time.Hour)},
		{Title: "Company announces new chief executive", Link: "https://example.com/3", Publisher: "Business Desk", PublishedAt: now.Add(-5 * time.Hour)},
		{Title: "Sector stocks drop on rate concerns", Link: "https://example.com/4", Publisher: "Market Watcher", PublishedAt: now.Add(-8 * time.Hour)},
	}, nil
}

func (m *MockFetcher) basePrice() float64 {
	if m.BasePrice > 0 {
		return m.BasePrice
	}
	return 400
}

// GenerateBars builds a deterministic intraday series around basePrice,
// one bar per step ending now.
func GenerateBars(basePrice float64, count int, step time.Duration) []model.Bar {
	bars := make([]model.Bar, count)
	start := time.Now().Add(-time.Duration(count) * step)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.0008)
		bars[i] = model.Bar{
			Time:   start.Add(time.Duration(i) * step),
			Open:   p * 0.999,
			High:   p * 1.003,
			Low:    p * 0.997,
			Close:  p,
			Volume: 500000 + float64((i%7)*40000),
		}
	}
	return bars
}
