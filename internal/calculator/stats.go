package calculator

import (
	"math"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// FieldStats summarizes one numeric field of the session.
type FieldStats struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

// SummaryStats holds descriptive statistics for each bar field.
type SummaryStats struct {
	Open   FieldStats
	High   FieldStats
	Low    FieldStats
	Close  FieldStats
	Volume FieldStats
}

// Describe computes per-field descriptive statistics over the session's bars.
func Describe(bars []model.Bar) SummaryStats {
	pick := func(f func(model.Bar) float64) []float64 {
		vals := make([]float64, len(bars))
		for i, b := range bars {
			vals[i] = f(b)
		}
		return vals
	}
	return SummaryStats{
		Open:   describeField(pick(func(b model.Bar) float64 { return b.Open })),
		High:   describeField(pick(func(b model.Bar) float64 { return b.High })),
		Low:    describeField(pick(func(b model.Bar) float64 { return b.Low })),
		Close:  describeField(pick(func(b model.Bar) float64 { return b.Close })),
		Volume: describeField(pick(func(b model.Bar) float64 { return b.Volume })),
	}
}

func describeField(vals []float64) FieldStats {
	st := FieldStats{Count: len(vals)}
	if len(vals) == 0 {
		return st
	}
	st.Min = vals[0]
	st.Max = vals[0]
	sum := 0.0
	for _, v := range vals {
		sum += v
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
	}
	st.Mean = sum / float64(len(vals))
	if len(vals) > 1 {
		// Sample standard deviation (n-1 divisor).
		var ss float64
		for _, v := range vals {
			d := v - st.Mean
			ss += d * d
		}
		st.Std = math.Sqrt(ss / float64(len(vals)-1))
	}
	return st
}
