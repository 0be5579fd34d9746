package calculator

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateSMA(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}

	sma, err := CalculateSMA(prices, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(sma, 3) {
		t.Errorf("expected SMA 3, got %f", sma)
	}

	if _, err := CalculateSMA(prices, 6); err == nil {
		t.Error("expected error for insufficient data")
	}
	if _, err := CalculateSMA(prices, 0); err == nil {
		t.Error("expected error for non-positive period")
	}
}

func TestRollingSMA_DefinedOnlyAfterWindowFills(t *testing.T) {
	prices := make([]float64, 25)
	for i := range prices {
		prices[i] = float64(i + 1) // 1..25
	}

	col := RollingSMA(prices, 20)
	if col.Len() != 25 {
		t.Fatalf("expected column of 25, got %d", col.Len())
	}
	for i := 0; i < 19; i++ {
		if col.Valid(i) {
			t.Errorf("position %d: expected undefined before window fills", i)
		}
	}
	for i := 19; i < 25; i++ {
		if !col.Valid(i) {
			t.Errorf("position %d: expected defined", i)
		}
	}

	// mean(1..20) = 10.5
	if v, _ := col.At(19); !almostEqual(v, 10.5) {
		t.Errorf("position 19: expected 10.5, got %f", v)
	}
	// mean(6..25) = 15.5
	if v, _ := col.At(24); !almostEqual(v, 15.5) {
		t.Errorf("position 24: expected 15.5, got %f", v)
	}
}

func TestRollingSMA_MatchesTrailingMean(t *testing.T) {
	prices := []float64{10, 12, 11, 15, 14, 13, 17, 16, 18, 20}
	period := 4

	col := RollingSMA(prices, period)
	for i := period - 1; i < len(prices); i++ {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += prices[j]
		}
		want := sum / float64(period)
		got, ok := col.At(i)
		if !ok {
			t.Fatalf("position %d: expected defined", i)
		}
		if !almostEqual(got, want) {
			t.Errorf("position %d: expected %f, got %f", i, want, got)
		}
	}
}

func TestPercentChange(t *testing.T) {
	prices := []float64{100, 110, 99}

	col := PercentChange(prices)
	if col.Valid(0) {
		t.Error("position 0: expected undefined (no previous bar)")
	}
	if v, _ := col.At(1); !almostEqual(v, 10) {
		t.Errorf("position 1: expected 10%%, got %f", v)
	}
	if v, _ := col.At(2); !almostEqual(v, -10) {
		t.Errorf("position 2: expected -10%%, got %f", v)
	}
}

func TestPercentChange_SingleBar(t *testing.T) {
	col := PercentChange([]float64{100})
	if col.Len() != 1 || col.Valid(0) {
		t.Error("single bar: expected one undefined position")
	}
}
