package analysis

import (
	"errors"
	"math"

	"ecosim/internal/sim"
)

// Stability is the qualitative label derived from the coefficient of
// variation of both populations.
type Stability string

const (
	StabilityStable   Stability = "stable equilibrium"
	StabilityModerate Stability = "moderate fluctuations"
	StabilityStrong   Stability = "strong cyclical patterns"
)

// Classification thresholds. Fixed design constants, strict on the lower
// side: a CV of exactly 0.3 is already "moderate".
const (
	stableCV   = 0.3
	moderateCV = 0.5
)

var ErrEmptySeries = errors.New("analysis: empty series")

// Insights is the fixed-shape statistics record derived from one series.
type Insights struct {
	MaxPrey     float64
	MinPrey     float64
	MaxPredator float64
	MinPredator float64

	PreyPeaks       int
	PredatorPeaks   int
	PreyTroughs     int
	PredatorTroughs int

	// Periods and phase lag are zero unless both species show at least
	// two peaks. That is the documented degenerate case, not an error.
	AvgPreyPeriod     float64
	AvgPredatorPeriod float64
	PhaseLag          float64

	FinalPrey     float64
	FinalPredator float64

	Stability Stability
}

// Analyze derives oscillation metrics and a stability class from a series.
// Pure; the series is not modified.
func Analyze(s *sim.Series) (Insights, error) {
	if s == nil || s.Len() == 0 {
		return Insights{}, ErrEmptySeries
	}

	preyPeaks := Peaks(s.Prey)
	predatorPeaks := Peaks(s.Predator)
	preyTroughs := Troughs(s.Prey)
	predatorTroughs := Troughs(s.Predator)

	in := Insights{
		MaxPrey:         maxOf(s.Prey),
		MinPrey:         minOf(s.Prey),
		MaxPredator:     maxOf(s.Predator),
		MinPredator:     minOf(s.Predator),
		PreyPeaks:       len(preyPeaks),
		PredatorPeaks:   len(predatorPeaks),
		PreyTroughs:     len(preyTroughs),
		PredatorTroughs: len(predatorTroughs),
	}
	in.FinalPrey, in.FinalPredator = s.Final()

	if len(preyPeaks) > 1 && len(predatorPeaks) > 1 {
		in.AvgPreyPeriod = meanPeriod(s.Time, preyPeaks)
		in.AvgPredatorPeriod = meanPeriod(s.Time, predatorPeaks)
		in.PhaseLag = s.Time[predatorPeaks[0]] - s.Time[preyPeaks[0]]
	}

	in.Stability = Classify(CV(s.Prey), CV(s.Predator))

	return in, nil
}

// Peaks returns the indices of strict local maxima: every interior i with
// value[i] > value[i-1] and value[i] > value[i+1]. No smoothing, no
// prominence or distance filter; endpoints never qualify.
func Peaks(vals []float64) []int {
	var idx []int
	for i := 1; i < len(vals)-1; i++ {
		if vals[i] > vals[i-1] && vals[i] > vals[i+1] {
			idx = append(idx, i)
		}
	}
	return idx
}

// Troughs returns the indices of strict local minima, i.e. the peaks of
// the negated sequence.
func Troughs(vals []float64) []int {
	var idx []int
	for i := 1; i < len(vals)-1; i++ {
		if vals[i] < vals[i-1] && vals[i] < vals[i+1] {
			idx = append(idx, i)
		}
	}
	return idx
}

// Classify maps the two coefficients of variation onto a stability label.
func Classify(cvPrey, cvPredator float64) Stability {
	switch {
	case cvPrey < stableCV && cvPredator < stableCV:
		return StabilityStable
	case cvPrey < moderateCV && cvPredator < moderateCV:
		return StabilityModerate
	default:
		return StabilityStrong
	}
}

// CV is the coefficient of variation, population stddev over mean. A
// population whose mean is exactly zero is flat at extinction; its CV is
// defined as 0 by convention so the degenerate case classifies as a
// stable equilibrium instead of faulting.
func CV(vals []float64) float64 {
	m := mean(vals)
	if m == 0 {
		return 0
	}
	return stddev(vals, m) / m
}

func meanPeriod(times []float64, peaks []int) float64 {
	sum := 0.0
	for i := 1; i < len(peaks); i++ {
		sum += times[peaks[i]] - times[peaks[i-1]]
	}
	return sum / float64(len(peaks)-1)
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func stddev(vals []float64, m float64) float64 {
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)))
}

func maxOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minOf(vals []float64) float64 {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
