package powertransfer

import "github.com/cwbudde/algo-sensorfilter/dsp/core"

// GainFromFrequency returns the first-order gain for a cutoff frequency in Hz
// at sample period dt in seconds: omega/(omega+1) with omega = 2*pi*f*dt.
func GainFromFrequency(cutoffHz, dt float32) float32 {
	omega := 2 * core.PiF * cutoffHz * dt
	return omega / (omega + 1)
}

// GainFromDelay returns the first-order gain for a time constant, the time
// the filter needs to reach 63.2% of a step input. A non-positive delay
// yields a gain of 1 (no filtering).
func GainFromDelay(delay, dt float32) float32 {
	if delay <= 0 {
		return 1
	}
	omega := dt / delay
	return omega / (omega + 1)
}

// GainFromFrequency2 returns the per-stage gain of a second-order cascade
// with its -3 dB point at cutoffHz.
func GainFromFrequency2(cutoffHz, dt float32) float32 {
	return GainFromFrequency(cutoffHz*core.CutoffCorrection2, dt)
}

// GainFromDelay2 returns the per-stage gain of a second-order cascade for
// the given time constant.
func GainFromDelay2(delay, dt float32) float32 {
	return GainFromDelay(delay*core.CutoffCorrection2, dt)
}

// GainFromFrequency3 returns the per-stage gain of a third-order cascade
// with its -3 dB point at cutoffHz.
func GainFromFrequency3(cutoffHz, dt float32) float32 {
	return GainFromFrequency(cutoffHz*core.CutoffCorrection3, dt)
}

// GainFromDelay3 returns the per-stage gain of a third-order cascade for
// the given time constant.
func GainFromDelay3(delay, dt float32) float32 {
	return GainFromDelay(delay*core.CutoffCorrection3, dt)
}

func gainFromConfig(cfg core.FilterConfig, fromFrequency func(hz, dt float32) float32) float32 {
	if cfg.HasCutoff() {
		return fromFrequency(cfg.CutoffHz, cfg.SamplePeriod)
	}
	return cfg.Gain
}
