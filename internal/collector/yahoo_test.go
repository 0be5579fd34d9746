package collector

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

func newTestFetcher(handler http.HandlerFunc) (*YahooFetcher, func()) {
	srv := httptest.NewServer(handler)
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return f, srv.Close
}

func TestFetchIntraday_ParsesChart(t *testing.T) {
	body := `{"chart":{"result":[{
		"timestamp":[1717400000,1717400060,1717400120],
		"indicators":{"quote":[{
			"open":[100.0,null,101.0],
			"high":[101.0,null,102.5],
			"low":[99.5,null,100.5],
			"close":[100.5,null,102.0],
			"volume":[12000,null,15000]
		}]}
	}],"error":null}}`
	f, done := newTestFetcher(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("interval"); got != "5m" {
			t.Errorf("expected interval=5m, got %q", got)
		}
		if got := r.URL.Query().Get("range"); got != "1d" {
			t.Errorf("expected range=1d, got %q", got)
		}
		w.Write([]byte(body))
	})
	defer done()

	s, err := f.FetchIntraday("MSFT", model.Interval5m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The null bar must be skipped.
	if s.Len() != 2 {
		t.Fatalf("expected 2 bars, got %d", s.Len())
	}
	if s.Bars[0].Close != 100.5 || s.Bars[1].Close != 102.0 {
		t.Errorf("unexpected closes: %f, %f", s.Bars[0].Close, s.Bars[1].Close)
	}
	if s.Bars[1].Volume != 15000 {
		t.Errorf("expected volume 15000, got %f", s.Bars[1].Volume)
	}
	if !s.Bars[0].Time.Before(s.Bars[1].Time) {
		t.Error("bars must be ordered by ascending timestamp")
	}
}

func TestFetchIntraday_EmptyResult(t *testing.T) {
	f, done := newTestFetcher(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	})
	defer done()

	_, err := f.FetchIntraday("NOPE", model.Interval1m)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestFetchIntraday_AllNullBars(t *testing.T) {
	body := `{"chart":{"result":[{
		"timestamp":[1717400000],
		"indicators":{"quote":[{"open":[null],"high":[null],"low":[null],"close":[null],"volume":[null]}]}
	}],"error":null}}`
	f, done := newTestFetcher(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	defer done()

	_, err := f.FetchIntraday("HALT", model.Interval1m)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData when every bar is null, got %v", err)
	}
}

func TestFetchIntraday_ServerError(t *testing.T) {
	f, done := newTestFetcher(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	defer done()

	_, err := f.FetchIntraday("MSFT", model.Interval1m)
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
	if provErr.Provider != "yahoo" || provErr.Op != "chart" {
		t.Errorf("unexpected error metadata: %+v", provErr)
	}
}

func TestFetchIntraday_APIError(t *testing.T) {
	f, done := newTestFetcher(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	})
	defer done()

	_, err := f.FetchIntraday("GONE", model.Interval1m)
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *ProviderError, got %v", err)
	}
}

func TestFetchSummary_ParsesModules(t *testing.T) {
	body := `{"quoteSummary":{"result":[{
		"summaryDetail":{
			"fiftyTwoWeekHigh":{"raw":468.35},
			"fiftyTwoWeekLow":{"raw":309.45},
			"previousClose":{"raw":425.52},
			"open":{"raw":426.10},
			"dayLow":{"raw":423.00},
			"dayHigh":{"raw":428.70},
			"marketCap":{"raw":3160000000000},
			"trailingPE":{"raw":36.4},
			"dividendYield":{"raw":0.0072}
		},
		"defaultKeyStatistics":{"trailingEps":{"raw":11.8}},
		"assetProfile":{"sector":"Technology","industry":"Software - Infrastructure"}
	}],"error":null}}`
	f, done := newTestFetcher(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	defer done()

	sum, err := f.FetchSummary("MSFT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.High52w != 468.35 || sum.Low52w != 309.45 {
		t.Errorf("unexpected 52w range: [%f,%f]", sum.Low52w, sum.High52w)
	}
	if sum.Fundamentals.PERatio != 36.4 || sum.Fundamentals.EPS != 11.8 {
		t.Errorf("unexpected ratios: %+v", sum.Fundamentals)
	}
	if sum.Fundamentals.Sector != "Technology" {
		t.Errorf("expected sector Technology, got %q", sum.Fundamentals.Sector)
	}
}

func TestFetchSummary_MissingFieldsTolerated(t *testing.T) {
	f, done := newTestFetcher(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteSummary":{"result":[{"summaryDetail":{"fiftyTwoWeekHigh":{"raw":200.0}}}],"error":null}}`))
	})
	defer done()

	sum, err := f.FetchSummary("MSFT")
	if err != nil {
		t.Fatalf("missing fields must not fail: %v", err)
	}
	if sum.High52w != 200 {
		t.Errorf("expected high 200, got %f", sum.High52w)
	}
	if sum.Fundamentals.PERatio != 0 || sum.Fundamentals.Sector != "" {
		t.Error("absent fields must decode to zero values")
	}
}

func TestFetchNews_FiltersPartialRecords(t *testing.T) {
	body := `{"news":[
		{"title":"Shares surge on earnings","link":"https://example.com/a","publisher":"Wire","providerPublishTime":1717400000},
		{"title":"","link":"https://example.com/b"},
		{"title":"No link at all"},
		{"title":"Quiet day for tech","link":"https://example.com/c","publisher":""}
	]}`
	f, done := newTestFetcher(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	defer done()

	items, err := f.FetchNews("MSFT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items after filtering, got %d", len(items))
	}
	if items[0].Publisher != "Wire" {
		t.Errorf("expected publisher Wire, got %q", items[0].Publisher)
	}
	if items[0].PublishedAt.IsZero() {
		t.Error("expected publish time to be set")
	}
	if !items[1].PublishedAt.IsZero() {
		t.Error("missing publish time must stay zero")
	}
}
