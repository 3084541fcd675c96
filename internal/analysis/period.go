package analysis

// DominantPeriod estimates the period, in samples, of the strongest
// oscillation in series. The series is truncated to the largest power of two
// and its mean removed. It returns 0 when fewer than 4 samples remain or the
// series is flat.
func DominantPeriod(series []float64) float64 {
	n := 1
	for n*2 <= len(series) {
		n *= 2
	}
	if n < 4 {
		return 0
	}

	mean := 0.0
	for _, v := range series[:n] {
		mean += v
	}
	mean /= float64(n)
	centered := make([]float64, n)
	for i, v := range series[:n] {
		centered[i] = v - mean
	}

	ps, err := PowerSpectrum(centered)
	if err != nil {
		return 0
	}
	peak := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[peak] || peak == 0 {
			peak = k
		}
	}
	if ps[peak] < 1e-9 {
		return 0
	}
	return float64(n) / float64(peak)
}
