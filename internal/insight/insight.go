// Package insight derives the scalar metrics panel values from an enriched
// series and provider metadata.
package insight

import (
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// Extract builds the Insights snapshot from an enriched series and the
// symbol's summary metadata. summary may be nil when the metadata lookup
// failed; the 52-week fields then stay zero (tolerated, not an error).
func Extract(s *model.Series, summary *model.Summary) *model.Insights {
	ins := &model.Insights{Symbol: s.Symbol, Trend: model.TrendInsufficient}
	last := s.Last()
	if last == nil {
		return ins
	}

	ins.CurrentPrice = last.Close
	ins.Volume = last.Volume
	if v, ok := s.PctChange.At(s.Len() - 1); ok {
		ins.DayChangePct = v
	}
	if summary != nil {
		ins.High52w = summary.High52w
		ins.Low52w = summary.Low52w
	}

	ins.Trend = trend(s)
	return ins
}

// trend compares the latest MA20 and MA50. Uptrend iff MA20 > MA50, else
// Downtrend. While either window is still filling the comparison is
// meaningless, so an explicit insufficient-data label is reported instead.
func trend(s *model.Series) model.Trend {
	last := s.Len() - 1
	ma20, ok20 := s.MA20.At(last)
	ma50, ok50 := s.MA50.At(last)
	if !ok20 || !ok50 {
		return model.TrendInsufficient
	}
	if ma20 > ma50 {
		return model.TrendUp
	}
	return model.TrendDown
}

// AlertTriggered reports whether the price alert fires this tick. A zero
// threshold disables the alert. The check is stateless and re-fires on
// every tick the condition holds.
func AlertTriggered(threshold, price float64) bool {
	return threshold > 0 && price >= threshold
}
