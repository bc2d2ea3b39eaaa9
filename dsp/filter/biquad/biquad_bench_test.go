package biquad

import (
	"testing"

	"github.com/cwbudde/algo-sensorfilter/dsp/core"
)

func BenchmarkFilterScalar(b *testing.B) {
	f := NewLowPass[core.Scalar](100, 0.001)
	x := core.Scalar(0.5)
	for b.Loop() {
		x = f.Filter(x)
	}
}

func BenchmarkFilterVec3Weighted(b *testing.B) {
	f := NewNotch[core.Vec3](150, 0.001, core.WithQ(3), core.WithWeight(0.5))
	v := core.Vec3{X: 0.1, Y: -0.2, Z: 0.3}
	for b.Loop() {
		v = f.FilterWeighted(v)
	}
}

func BenchmarkSetNotchFrequency(b *testing.B) {
	f := NewNotch[core.Vec3](150, 0.001, core.WithQ(3))
	hz := float32(100)
	for b.Loop() {
		f.SetNotchFrequency(hz)
	}
}
