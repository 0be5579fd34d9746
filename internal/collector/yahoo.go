package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

const defaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: defaultYahooBaseURL,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []interface{} `json:"open"`
					High   []interface{} `json:"high"`
					Low    []interface{} `json:"low"`
					Close  []interface{} `json:"close"`
					Volume []interface{} `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) get(op, u string, out interface{}) error {
	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return &ProviderError{Provider: "yahoo", Op: op, Err: err}
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return &ProviderError{Provider: "yahoo", Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Provider: "yahoo", Op: op, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return &ProviderError{Provider: "yahoo", Op: op, Err: fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ProviderError{Provider: "yahoo", Op: op, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// FetchIntraday fetches the current trading day's bars at the given interval.
func (f *YahooFetcher) FetchIntraday(symbol string, interval model.Interval) (*model.Series, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=1d",
		f.BaseURL, url.PathEscape(symbol), interval)

	var chart yahooChart
	if err := f.get("chart", u, &chart); err != nil {
		return nil, err
	}
	if chart.Chart.Error != nil {
		return nil, &ProviderError{Provider: "yahoo", Op: "chart",
			Err: fmt.Errorf("api error: %s", chart.Chart.Error.Description)}
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, ErrNoData
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]model.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (halts, pre-open gaps)
		}
		bars = append(bars, model.Bar{
			Time:   time.Unix(ts, 0),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: toFloat(quote.Volume[i]),
		})
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return &model.Series{
		Symbol:    symbol,
		Interval:  interval,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}

// yahooValue is Yahoo's wrapped numeric field ({"raw": ..., "fmt": ...}).
type yahooValue struct {
	Raw float64 `json:"raw"`
}

type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			SummaryDetail struct {
				FiftyTwoWeekHigh yahooValue `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow  yahooValue `json:"fiftyTwoWeekLow"`
				PreviousClose    yahooValue `json:"previousClose"`
				Open             yahooValue `json:"open"`
				DayLow           yahooValue `json:"dayLow"`
				DayHigh          yahooValue `json:"dayHigh"`
				MarketCap        yahooValue `json:"marketCap"`
				TrailingPE       yahooValue `json:"trailingPE"`
				DividendYield    yahooValue `json:"dividendYield"`
			} `json:"summaryDetail"`
			KeyStatistics struct {
				TrailingEps yahooValue `json:"trailingEps"`
			} `json:"defaultKeyStatistics"`
			AssetProfile struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// FetchSummary fetches the 52-week range and fundamentals. Missing fields
// decode to zero values and are tolerated.
func (f *YahooFetcher) FetchSummary(symbol string) (*model.Summary, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=summaryDetail,defaultKeyStatistics,assetProfile",
		f.BaseURL, url.PathEscape(symbol))

	var qs yahooQuoteSummary
	if err := f.get("quoteSummary", u, &qs); err != nil {
		return nil, err
	}
	if qs.QuoteSummary.Error != nil {
		return nil, &ProviderError{Provider: "yahoo", Op: "quoteSummary",
			Err: fmt.Errorf("api error: %s", qs.QuoteSummary.Error.Description)}
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return &model.Summary{}, nil
	}

	r := qs.QuoteSummary.Result[0]
	return &model.Summary{
		High52w: r.SummaryDetail.FiftyTwoWeekHigh.Raw,
		Low52w:  r.SummaryDetail.FiftyTwoWeekLow.Raw,
		Fundamentals: model.Fundamentals{
			PreviousClose: r.SummaryDetail.PreviousClose.Raw,
			Open:          r.SummaryDetail.Open.Raw,
			DayLow:        r.SummaryDetail.DayLow.Raw,
			DayHigh:       r.SummaryDetail.DayHigh.Raw,
			MarketCap:     r.SummaryDetail.MarketCap.Raw,
			PERatio:       r.SummaryDetail.TrailingPE.Raw,
			EPS:           r.KeyStatistics.TrailingEps.Raw,
			DividendYield: r.SummaryDetail.DividendYield.Raw,
			Sector:        r.AssetProfile.Sector,
			Industry:      r.AssetProfile.Industry,
		},
	}, nil
}

type yahooSearch struct {
	News []struct {
		Title               string `json:"title"`
		Link                string `json:"link"`
		Publisher           string `json:"publisher"`
		ProviderPublishTime int64  `json:"providerPublishTime"`
	} `json:"news"`
}

// FetchNews fetches recent headlines for the symbol. Items without a title
// or link are dropped here so downstream never sees them.
func (f *YahooFetcher) FetchNews(symbol string) ([]model.NewsItem, error) {
	u := fmt.Sprintf("%s/v1/finance/search?q=%s&newsCount=10&quotesCount=0",
		f.BaseURL, url.QueryEscape(symbol))

	var search yahooSearch
	if err := f.get("search", u, &search); err != nil {
		return nil, err
	}

	items := make([]model.NewsItem, 0, len(search.News))
	for _, n := range search.News {
		if n.Title == "" || n.Link == "" {
			continue
		}
		item := model.NewsItem{
			Title:     n.Title,
			Link:      n.Link,
			Publisher: n.Publisher,
		}
		if n.ProviderPublishTime > 0 {
			item.PublishedAt = time.Unix(n.ProviderPublishTime, 0)
		}
		items = append(items, item)
	}
	return items, nil
}
