// Package enrich attaches the derived columns to a fetched series and
// applies the simulated live tick to the latest close.
package enrich

import (
	"math/rand"

	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/calculator"
	"github.com/shivikatandon/RealTime-Stock-Dashboard/internal/model"
)

// JitterBound is the maximum relative perturbation of the latest close.
const JitterBound = 0.001

// NoiseFunc draws the relative jitter applied to the latest close. It must
// return a value in [-JitterBound, JitterBound].
type NoiseFunc func() float64

// UniformNoise draws uniformly from [-JitterBound, JitterBound] using rng.
func UniformNoise(rng *rand.Rand) NoiseFunc {
	return func() float64 {
		return (rng.Float64()*2 - 1) * JitterBound
	}
}

// NoNoise is a NoiseFunc that leaves the latest close untouched.
func NoNoise() float64 { return 0 }

// Enricher computes derived columns over a series and perturbs the latest
// close to simulate a live tick between provider refreshes.
type Enricher struct {
	noise NoiseFunc
}

// NewEnricher creates an Enricher with the given noise source.
func NewEnricher(noise NoiseFunc) *Enricher {
	return &Enricher{noise: noise}
}

// Enrich populates the percent-change and MA20/MA50 columns, then replaces
// the final close with close*(1+u) for a fresh draw u.
//
// The moving averages are computed from the pre-jitter closes and are not
// recomputed afterwards. The final position's percent change is measured
// against the session's first close, not the previous bar; every earlier
// position is bar-over-bar.
func (e *Enricher) Enrich(s *model.Series) {
	if s.Len() == 0 {
		return
	}

	closes := s.Closes()
	s.PctChange = calculator.PercentChange(closes)
	s.MA20 = calculator.RollingSMA(closes, 20)
	s.MA50 = calculator.RollingSMA(closes, 50)

	last := s.Len() - 1
	jittered := s.Bars[last].Close * (1 + e.noise())
	s.Bars[last].Close = jittered

	// Session-to-date change for the live tick. With a single bar the
	// baseline is the jittered close itself and this degrades to zero.
	first := s.Bars[0].Close
	if first != 0 {
		s.PctChange.Set(last, (jittered-first)/first*100)
	}
}
