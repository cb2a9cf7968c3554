package analysis

import (
	"math"
	"math/cmplx"
)

func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum zero-pads data to a power-of-two length and returns the
// magnitude of the first half of its FFT.
func PowerSpectrum(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	fft := FFT(padded)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// DominantPeriod estimates the dominant cycle length of a column sampled
// at interval dt. The DC bin is skipped. Returns 0 when no oscillation
// stands out (fewer than two samples or an empty spectrum).
func DominantPeriod(data []float64, dt float64) float64 {
	if len(data) < 2 || dt <= 0 {
		return 0
	}

	// Remove the mean so slow trends do not leak into low bins.
	m := mean(data)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - m
	}

	ps := PowerSpectrum(centered)
	if len(ps) < 2 {
		return 0
	}

	maxIdx := 0
	maxPower := 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 {
		return 0
	}

	// Padded length determines the frequency resolution.
	n := 1
	for n < len(data) {
		n *= 2
	}
	freq := float64(maxIdx) / (float64(n) * dt)
	return 1.0 / freq
}
