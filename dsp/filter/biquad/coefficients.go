package biquad

import (
	"math"

	"github.com/cwbudde/algo-sensorfilter/dsp/core"
)

// Coefficients holds normalized biquad coefficients (a0 = 1).
type Coefficients struct {
	B0, B1, B2 float32
	A1, A2     float32
}

// Passthrough returns coefficients with unity transfer.
func Passthrough() Coefficients {
	return Coefficients{B0: 1}
}

// Omega returns the normalized angular frequency 2*pi*hz*dt.
func Omega(hz, dt float32) float32 {
	return 2 * core.PiF * dt * hz
}

// LowPass returns second-order low-pass coefficients for cutoff hz at
// sample period dt. It panics if q is zero.
func LowPass(hz, dt, q float32) Coefficients {
	return lowPassFromOmega(Omega(hz, dt), twoQReciprocal(q))
}

// Notch returns notch coefficients centred on hz at sample period dt. It
// panics if q is zero.
func Notch(hz, dt, q float32) Coefficients {
	sin, cos := sincos(Omega(hz, dt))
	return notchFromSinCos(sin, 2*cos, twoQReciprocal(q))
}

// NotchFromSinCos returns notch coefficients from precomputed sin(omega) and
// 2*cos(omega). Callers that track a moving resonance can update both terms
// incrementally and skip the trigonometry. It panics if q is zero.
func NotchFromSinCos(sinOmega, twoCosOmega, q float32) Coefficients {
	return notchFromSinCos(sinOmega, twoCosOmega, twoQReciprocal(q))
}

// CalculateQ returns the quality factor of a notch centred on centerHz whose
// lower -3 dB edge is at lowerCutoffHz.
func CalculateQ(centerHz, lowerCutoffHz float32) float32 {
	return centerHz * lowerCutoffHz / (centerHz*centerHz - lowerCutoffHz*lowerCutoffHz)
}

func lowPassFromOmega(omega, twoQRecip float32) Coefficients {
	sin, cos := sincos(omega)
	alpha := sin * twoQRecip
	a0Recip := 1 / (1 + alpha)

	b1 := (1 - cos) * a0Recip
	return Coefficients{
		B0: b1 * 0.5,
		B1: b1,
		B2: b1 * 0.5,
		A1: -2 * cos * a0Recip,
		A2: (1 - alpha) * a0Recip,
	}
}

func notchFromSinCos(sinOmega, twoCosOmega, twoQRecip float32) Coefficients {
	alpha := sinOmega * twoQRecip
	a0Recip := 1 / (1 + alpha)

	b1 := -twoCosOmega * a0Recip
	return Coefficients{
		B0: a0Recip,
		B1: b1,
		B2: a0Recip,
		A1: b1,
		A2: (1 - alpha) * a0Recip,
	}
}

func twoQReciprocal(q float32) float32 {
	if q == 0 {
		panic("biquad: q cannot be zero")
	}
	return 1 / (2 * q)
}

func sincos(omega float32) (float32, float32) {
	s, c := math.Sincos(float64(omega))
	return float32(s), float32(c)
}
