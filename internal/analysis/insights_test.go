package analysis

import (
	"math"
	"testing"

	"ecosim/internal/sim"
)

func makeSeries(time, prey, predator []float64) *sim.Series {
	return &sim.Series{Time: time, Prey: prey, Predator: predator}
}

func TestPeaks_StrictExtrema(t *testing.T) {
	vals := []float64{0, 1, 0, 2, 2, 1, 3}

	peaks := Peaks(vals)

	// Index 1 is a strict local max. The plateau at 2 is not (no strict
	// drop on both sides), and the final 3 is an endpoint.
	if len(peaks) != 1 || peaks[0] != 1 {
		t.Errorf("peaks = %v, want [1]", peaks)
	}
}

func TestTroughs_AreNegatedPeaks(t *testing.T) {
	vals := []float64{3, 1, 2, 0, 4}

	troughs := Troughs(vals)

	if len(troughs) != 2 || troughs[0] != 1 || troughs[1] != 3 {
		t.Errorf("troughs = %v, want [1 3]", troughs)
	}
}

func TestAnalyze_SinusoidalCycles(t *testing.T) {
	n := 2001
	time := make([]float64, n)
	prey := make([]float64, n)
	predator := make([]float64, n)

	// Predator trails prey by 1 time unit; both have period 2*pi.
	for i := 0; i < n; i++ {
		tt := 20.0 * float64(i) / float64(n-1)
		time[i] = tt
		prey[i] = 2 + math.Sin(tt)
		predator[i] = 2 + math.Sin(tt-1)
	}

	in, err := Analyze(makeSeries(time, prey, predator))
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if in.PreyPeaks != 3 || in.PredatorPeaks != 3 {
		t.Fatalf("peak counts = %d, %d, want 3, 3", in.PreyPeaks, in.PredatorPeaks)
	}
	if math.Abs(in.AvgPreyPeriod-2*math.Pi) > 0.05 {
		t.Errorf("prey period = %f, want ~%f", in.AvgPreyPeriod, 2*math.Pi)
	}
	if math.Abs(in.AvgPredatorPeriod-2*math.Pi) > 0.05 {
		t.Errorf("predator period = %f, want ~%f", in.AvgPredatorPeriod, 2*math.Pi)
	}
	if math.Abs(in.PhaseLag-1.0) > 0.05 {
		t.Errorf("phase lag = %f, want ~1.0", in.PhaseLag)
	}
}

func TestAnalyze_DegenerateDecay(t *testing.T) {
	n := 101
	time := make([]float64, n)
	prey := make([]float64, n)
	predator := make([]float64, n)

	for i := 0; i < n; i++ {
		tt := 10.0 * float64(i) / float64(n-1)
		time[i] = tt
		prey[i] = 100 * math.Exp(-tt)
		predator[i] = 50 * math.Exp(-tt)
	}

	in, err := Analyze(makeSeries(time, prey, predator))
	if err != nil {
		t.Fatalf("degenerate series must not be an error: %v", err)
	}

	if in.PreyPeaks != 0 || in.PredatorPeaks != 0 {
		t.Errorf("peak counts = %d, %d, want 0, 0", in.PreyPeaks, in.PredatorPeaks)
	}
	if in.AvgPreyPeriod != 0 || in.AvgPredatorPeriod != 0 {
		t.Errorf("periods = %f, %f, want 0, 0", in.AvgPreyPeriod, in.AvgPredatorPeriod)
	}
	if in.PhaseLag != 0 {
		t.Errorf("phase lag = %f, want 0", in.PhaseLag)
	}
}

func TestAnalyze_RecordsExtremesAndFinals(t *testing.T) {
	in, err := Analyze(makeSeries(
		[]float64{0, 1, 2, 3},
		[]float64{10, 30, 20, 15},
		[]float64{5, 4, 8, 6},
	))
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if in.MaxPrey != 30 || in.MinPrey != 10 {
		t.Errorf("prey extremes = %f, %f, want 30, 10", in.MaxPrey, in.MinPrey)
	}
	if in.MaxPredator != 8 || in.MinPredator != 4 {
		t.Errorf("predator extremes = %f, %f, want 8, 4", in.MaxPredator, in.MinPredator)
	}
	if in.FinalPrey != 15 || in.FinalPredator != 6 {
		t.Errorf("finals = %f, %f, want 15, 6", in.FinalPrey, in.FinalPredator)
	}
}

func TestClassify_BoundaryIsExclusive(t *testing.T) {
	// Alternating 13/7 has mean 10 and population stddev 3: CV of exactly
	// 0.3, which must already count as moderate.
	n := 10
	time := make([]float64, n)
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		time[i] = float64(i)
		if i%2 == 0 {
			vals[i] = 13
		} else {
			vals[i] = 7
		}
	}

	if cv := CV(vals); cv != 0.3 {
		t.Fatalf("CV = %v, want exactly 0.3", cv)
	}

	in, err := Analyze(makeSeries(time, vals, vals))
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if in.Stability != StabilityModerate {
		t.Errorf("stability = %q, want %q", in.Stability, StabilityModerate)
	}
}

func TestClassify_Labels(t *testing.T) {
	tests := []struct {
		cvPrey, cvPredator float64
		want               Stability
	}{
		{0.1, 0.2, StabilityStable},
		{0.29, 0.31, StabilityModerate},
		{0.45, 0.49, StabilityModerate},
		{0.5, 0.5, StabilityStrong},
		{0.2, 0.9, StabilityStrong},
	}

	for _, tt := range tests {
		if got := Classify(tt.cvPrey, tt.cvPredator); got != tt.want {
			t.Errorf("Classify(%g, %g) = %q, want %q", tt.cvPrey, tt.cvPredator, got, tt.want)
		}
	}
}

func TestCV_ZeroMeanConvention(t *testing.T) {
	if cv := CV([]float64{0, 0, 0, 0}); cv != 0 {
		t.Errorf("CV of extinct population = %f, want 0", cv)
	}

	// An all-extinct series classifies as stable rather than faulting.
	in, err := Analyze(makeSeries(
		[]float64{0, 1, 2},
		[]float64{0, 0, 0},
		[]float64{0, 0, 0},
	))
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if in.Stability != StabilityStable {
		t.Errorf("stability = %q, want %q", in.Stability, StabilityStable)
	}
}

func TestAnalyze_EmptySeries(t *testing.T) {
	if _, err := Analyze(makeSeries(nil, nil, nil)); err == nil {
		t.Error("expected error for empty series")
	}
}
