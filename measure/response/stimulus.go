package response

import "math/rand"

// WhiteNoise returns n uniformly distributed samples in [-amplitude,
// amplitude). The same seed always yields the same record.
func WhiteNoise(seed int64, amplitude float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
