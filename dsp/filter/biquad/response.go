package biquad

import (
	"math"
	"math/cmplx"
)

func (c Coefficients) float64s() (b0, b1, b2, a1, a2 float64) {
	return float64(c.B0), float64(c.B1), float64(c.B2), float64(c.A1), float64(c.A2)
}

// Response computes the complex frequency response H(e^jw) at freqHz for
// sample period dt.
func (c Coefficients) Response(freqHz, dt float64) complex128 {
	b0, b1, b2, a1, a2 := c.float64s()
	w := 2 * math.Pi * freqHz * dt
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(b0, 0) + complex(b1, 0)*ejw + complex(b2, 0)*ej2w
	den := complex(1, 0) + complex(a1, 0)*ejw + complex(a2, 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression that
// avoids complex exponentials.
func (c Coefficients) MagnitudeSquared(freqHz, dt float64) float64 {
	b0, b1, b2, a1, a2 := c.float64s()
	cw := 2 * math.Cos(2*math.Pi*freqHz*dt)

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c Coefficients) MagnitudeDB(freqHz, dt float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, dt))
}

// Phase returns the phase response in radians, in [-pi, pi].
func (c Coefficients) Phase(freqHz, dt float64) float64 {
	return cmplx.Phase(c.Response(freqHz, dt))
}

// DCGain returns H(1), the steady-state gain for a constant input.
func (c Coefficients) DCGain() float64 {
	b0, b1, b2, a1, a2 := c.float64s()
	return (b0 + b1 + b2) / (1 + a1 + a2)
}
