package calculator

import (
	"errors"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// RollingSMA computes the trailing simple moving average at every position.
// Positions before the window fills are left undefined, so the result at
// position i is defined iff i >= period-1.
func RollingSMA(prices []float64, period int) model.Column {
	col := model.NewColumn(len(prices))
	if period <= 0 {
		return col
	}
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			col.Set(i, sum/float64(period))
		}
	}
	return col
}

// PercentChange computes the bar-over-bar close change in percent.
// Position 0 has no previous bar and stays undefined.
func PercentChange(prices []float64) model.Column {
	col := model.NewColumn(len(prices))
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			continue
		}
		col.Set(i, (prices[i]-prices[i-1])/prices[i-1]*100)
	}
	return col
}
