package analysis

import "math"

// Correlation computes the Pearson correlation coefficient of two
// equal-length columns. Returns 0 when either column has zero variance.
// With predator cycles trailing prey by about a quarter period the
// coefficient tends toward zero; its sign flags which half of the cycle
// dominates the sampled window.
func Correlation(a, b []float64) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0
	}

	ma, mb := mean(a), mean(b)

	var cov, va, vb float64
	for i := 0; i < n; i++ {
		da, db := a[i]-ma, b[i]-mb
		cov += da * db
		va += da * da
		vb += db * db
	}

	if va == 0 || vb == 0 {
		return 0
	}
	return cov / math.Sqrt(va*vb)
}
