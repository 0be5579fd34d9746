package calculator

import (
	"testing"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

func TestDescribe(t *testing.T) {
	bars := []model.Bar{
		{Open: 10, High: 12, Low: 9, Close: 1, Volume: 100},
		{Open: 11, High: 13, Low: 10, Close: 2, Volume: 200},
		{Open: 12, High: 14, Low: 11, Close: 3, Volume: 300},
	}

	st := Describe(bars)

	if st.Close.Count != 3 {
		t.Fatalf("expected count 3, got %d", st.Close.Count)
	}
	if !almostEqual(st.Close.Mean, 2) {
		t.Errorf("close mean: expected 2, got %f", st.Close.Mean)
	}
	// Sample std of 1,2,3 is exactly 1.
	if !almostEqual(st.Close.Std, 1) {
		t.Errorf("close std: expected 1, got %f", st.Close.Std)
	}
	if st.Close.Min != 1 || st.Close.Max != 3 {
		t.Errorf("close range: expected [1,3], got [%f,%f]", st.Close.Min, st.Close.Max)
	}
	if !almostEqual(st.Volume.Mean, 200) {
		t.Errorf("volume mean: expected 200, got %f", st.Volume.Mean)
	}
	if st.High.Max != 14 || st.Low.Min != 9 {
		t.Errorf("unexpected high/low extremes: %f / %f", st.High.Max, st.Low.Min)
	}
}

func TestDescribe_Empty(t *testing.T) {
	st := Describe(nil)
	if st.Close.Count != 0 || st.Close.Mean != 0 || st.Close.Std != 0 {
		t.Error("empty input: expected zero stats")
	}
}

func TestDescribe_SingleBar(t *testing.T) {
	st := Describe([]model.Bar{{Close: 5}})
	if st.Close.Count != 1 || !almostEqual(st.Close.Mean, 5) {
		t.Errorf("expected count 1 mean 5, got %d %f", st.Close.Count, st.Close.Mean)
	}
	if st.Close.Std != 0 {
		t.Errorf("single sample: expected std 0, got %f", st.Close.Std)
	}
}
