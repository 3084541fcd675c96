package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

// ErrNotPowerOfTwo is returned for inputs the radix-2 transform cannot take.
var ErrNotPowerOfTwo = errors.New("analysis: length is not a power of two")

// FFT is an in-place iterative radix-2 transform of a real series. Empty
// input yields an empty spectrum.
func FFT(data []float64) ([]complex128, error) {
	n := len(data)
	if n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	out := make([]complex128, n)
	if n == 0 {
		return out, nil
	}

	shift := 64 - bits.TrailingZeros(uint(n))
	for i, v := range data {
		out[bits.Reverse64(uint64(i))>>shift] = complex(v, 0)
	}

	for size := 2; size <= n; size <<= 1 {
		step := cmplx.Exp(complex(0, -2*math.Pi/float64(size)))
		half := size / 2
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				a, b := out[start+k], w*out[start+k+half]
				out[start+k], out[start+k+half] = a+b, a-b
				w *= step
			}
		}
	}
	return out, nil
}

// PowerSpectrum returns the magnitudes of the non-negative frequency bins.
func PowerSpectrum(data []float64) ([]float64, error) {
	spec, err := FFT(data)
	if err != nil {
		return nil, err
	}
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps, nil
}
