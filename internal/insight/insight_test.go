package insight

import (
	"math"
	"testing"
	"time"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/enrich"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

func seriesFromCloses(closes []float64) *model.Series {
	bars := make([]model.Bar, len(closes))
	base := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.Bar{
			Time:   base.Add(time.Duration(i) * time.Minute),
			Open:   c,
			High:   c * 1.001,
			Low:    c * 0.999,
			Close:  c,
			Volume: float64(1000 + i),
		}
	}
	return &model.Series{Symbol: "TEST", Interval: model.Interval1m, Bars: bars}
}

func TestExtract_TrendLabels(t *testing.T) {
	tests := []struct {
		name string
		ma20 float64
		ma50 float64
		want model.Trend
	}{
		{"ma20 above ma50", 105, 100, model.TrendUp},
		{"ma20 below ma50", 95, 100, model.TrendDown},
		{"equal averages", 100, 100, model.TrendDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seriesFromCloses([]float64{100, 101})
			s.PctChange = model.NewColumn(2)
			s.MA20 = model.NewColumn(2)
			s.MA50 = model.NewColumn(2)
			s.MA20.Set(1, tt.ma20)
			s.MA50.Set(1, tt.ma50)

			ins := Extract(s, &model.Summary{})
			if ins.Trend != tt.want {
				t.Errorf("expected %q, got %q", tt.want, ins.Trend)
			}
		})
	}
}

func TestExtract_InsufficientHistory(t *testing.T) {
	// 30 bars: MA20 is defined but MA50 is not. The trend must report the
	// explicit insufficient-data label, never a comparison of undefined values.
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	s := seriesFromCloses(closes)
	enrich.NewEnricher(enrich.NoNoise).Enrich(s)

	ins := Extract(s, &model.Summary{})
	if ins.Trend != model.TrendInsufficient {
		t.Errorf("expected %q, got %q", model.TrendInsufficient, ins.Trend)
	}
}

func TestExtract_ReadsLastBar(t *testing.T) {
	s := seriesFromCloses([]float64{100, 110, 120})
	enrich.NewEnricher(enrich.NoNoise).Enrich(s)

	ins := Extract(s, &model.Summary{High52w: 150, Low52w: 80})
	if ins.CurrentPrice != 120 {
		t.Errorf("expected current price 120, got %f", ins.CurrentPrice)
	}
	if ins.Volume != 1002 {
		t.Errorf("expected latest volume 1002, got %f", ins.Volume)
	}
	// Session baseline: (120-100)/100*100 = 20%.
	if math.Abs(ins.DayChangePct-20) > 1e-9 {
		t.Errorf("expected day change 20%%, got %f", ins.DayChangePct)
	}
	if ins.High52w != 150 || ins.Low52w != 80 {
		t.Errorf("expected 52w range [80,150], got [%f,%f]", ins.Low52w, ins.High52w)
	}
}

func TestExtract_NilSummary(t *testing.T) {
	s := seriesFromCloses([]float64{100, 110})
	enrich.NewEnricher(enrich.NoNoise).Enrich(s)

	ins := Extract(s, nil)
	if ins.High52w != 0 || ins.Low52w != 0 {
		t.Error("missing metadata must stay zero, not fail")
	}
	if ins.CurrentPrice != 110 {
		t.Errorf("expected current price 110, got %f", ins.CurrentPrice)
	}
}

func TestAlertTriggered(t *testing.T) {
	tests := []struct {
		threshold float64
		price     float64
		want      bool
	}{
		{150, 155, true},
		{150, 150, true},
		{150, 149.99, false},
		{0, 1e9, false}, // zero threshold disables the alert
		{0, 0, false},
	}
	for _, tt := range tests {
		if got := AlertTriggered(tt.threshold, tt.price); got != tt.want {
			t.Errorf("AlertTriggered(%.2f, %.2f): expected %v, got %v",
				tt.threshold, tt.price, tt.want, got)
		}
	}
}

func TestRisingSessionEndToEnd(t *testing.T) {
	// 60 bars rising monotonically from 100 to 160.
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)*60/59
	}
	s := seriesFromCloses(closes)
	enrich.NewEnricher(enrich.NoNoise).Enrich(s)

	ins := Extract(s, &model.Summary{High52w: 170, Low52w: 90})
	if ins.Trend != model.TrendUp {
		t.Errorf("rising session: expected %q, got %q", model.TrendUp, ins.Trend)
	}
	if !AlertTriggered(150, ins.CurrentPrice) {
		t.Errorf("expected alert at price %.2f with threshold 150", ins.CurrentPrice)
	}
}
