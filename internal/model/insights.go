package model

// Trend is the short-term trend label derived from the two moving averages.
type Trend string

const (
	TrendUp           Trend = "Uptrend"
	TrendDown         Trend = "Downtrend"
	TrendInsufficient Trend = "Insufficient Data"
)

// Insights is the per-tick snapshot shown in the metrics panel. It is
// recomputed from scratch every refresh and never persisted.
type Insights struct {
	Symbol       string
	CurrentPrice float64
	DayChangePct float64
	Volume       float64
	High52w      float64
	Low52w       float64
	Trend        Trend
}
