package collector

import (
	"errors"
	"fmt"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// Fetcher defines the interface for fetching market data and news.
type Fetcher interface {
	// FetchIntraday returns the current trading day's bars. An empty
	// provider result is reported as ErrNoData; transport or provider-side
	// failures are reported as *ProviderError.
	FetchIntraday(symbol string, interval model.Interval) (*model.Series, error)
	// FetchSummary returns the 52-week range and fundamentals. Fields the
	// provider omits are left zero rather than reported as errors.
	FetchSummary(symbol string) (*model.Summary, error)
	// FetchNews returns recent headlines, possibly empty.
	FetchNews(symbol string) ([]model.NewsItem, error)
	Name() string
}

// ErrNoData is returned when the provider answers successfully but has no
// bars for the symbol. Callers should surface a warning, not abort.
var ErrNoData = errors.New("no data found for this ticker")

// ProviderError wraps a network or provider-side failure. The tick that hit
// it is abandoned; the next scheduled tick retries naturally.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
