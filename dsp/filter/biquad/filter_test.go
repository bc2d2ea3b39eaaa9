package biquad

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sensorfilter/dsp/core"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter"
	"github.com/cwbudde/algo-sensorfilter/internal/testutil"
)

const eps = 1e-12

var (
	_ filter.StepFilter[core.Scalar] = (*Filter[core.Scalar])(nil)
	_ filter.Resetter                = (*Filter[core.Vec3])(nil)
	_ filter.Passthrougher           = (*Filter[core.Vec3])(nil)
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func requireCoefficientsNear(t *testing.T, got, want Coefficients) {
	t.Helper()
	pairs := [][2]float32{
		{got.B0, want.B0}, {got.B1, want.B1}, {got.B2, want.B2},
		{got.A1, want.A1}, {got.A2, want.A2},
	}
	for _, p := range pairs {
		if !core.NearlyEqual(p[0], p[1], 1e-6) {
			t.Fatalf("coefficients = %+v, want %+v", got, want)
		}
	}
}

func TestDefaultIsPassthrough(t *testing.T) {
	f := NewPassthrough[core.Scalar]()

	for _, x := range []core.Scalar{1, 1, -1} {
		if got := f.Filter(x); got != x {
			t.Fatalf("Filter(%v) = %v, want passthrough", x, got)
		}
	}

	f.Reset()
	if got := f.Filter(4); got != 4 {
		t.Fatalf("after Reset Filter(4) = %v, want 4", got)
	}
}

func TestResetReplaysWeightedLowPass(t *testing.T) {
	f := NewLowPass[core.Scalar](40, 0.001, core.WithQ(0.8), core.WithWeight(0.6))
	in := testutil.DeterministicNoise[core.Scalar](21, 1, 128)

	run := func() []core.Scalar {
		out := make([]core.Scalar, len(in))
		for i, x := range in {
			out[i] = f.FilterWeighted(x)
		}
		return out
	}

	first := run()
	if f.State() == (State[core.Scalar]{}) {
		t.Fatal("state untouched by noisy input")
	}
	f.Reset()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("sample %d differs after Reset: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSetToPassthroughRestoresUnity(t *testing.T) {
	f := NewPassthrough[core.Scalar]()
	f.SetParameters(Coefficients{B0: 5, B1: 7, B2: 11, A1: 2, A2: 3}, 13)
	f.Filter(3)
	f.SetToPassthrough()

	if got := f.Filter(1); got != 1 {
		t.Fatalf("Filter(1) = %v, want 1", got)
	}
	if got := f.Filter(2); got != 2 {
		t.Fatalf("Filter(2) = %v, want 2", got)
	}
	if got := f.FilterWeighted(1); got != 1 {
		t.Fatalf("FilterWeighted(1) = %v, want 1", got)
	}
	if got := f.FilterWeighted(2); got != 2 {
		t.Fatalf("FilterWeighted(2) = %v, want 2", got)
	}
	if f.Weight() != 1 {
		t.Fatalf("weight = %v, want 1", f.Weight())
	}
}

func TestDirectFormIHistory(t *testing.T) {
	f := New[core.Scalar](Coefficients{B0: 1})
	f.Filter(3)
	f.Filter(5)

	want := State[core.Scalar]{X1: 5, X2: 3, Y1: 5, Y2: 3}
	if got := f.State(); got != want {
		t.Fatalf("state = %+v, want %+v", got, want)
	}

	f.Reset()
	if got := f.State(); got != (State[core.Scalar]{}) {
		t.Fatalf("state after Reset = %+v, want zero", got)
	}
}

func TestDirectFormIRecurrence(t *testing.T) {
	c := Coefficients{B0: 0.5, B1: 0.25, B2: 0.125, A1: -0.5, A2: 0.25}
	f := New[core.Scalar](c)

	// y0 = 0.5
	// y1 = 0.5*2 + 0.25*1 + 0.5*0.5 = 1.5
	// y2 = 0 + 0.25*2 + 0.125*1 + 0.5*1.5 - 0.25*0.5 = 1.25
	for i, tc := range []struct{ in, want core.Scalar }{{1, 0.5}, {2, 1.5}, {0, 1.25}} {
		if got := f.Filter(tc.in); got != tc.want {
			t.Fatalf("step %d: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestFilterWeighted(t *testing.T) {
	f := NewLowPass[core.Scalar](50, 0.001, core.WithWeight(0))
	for _, x := range []core.Scalar{1, -3, 7.5} {
		if got := f.FilterWeighted(x); got != x {
			t.Fatalf("weight 0: FilterWeighted(%v) = %v, want input", x, got)
		}
	}

	weighted := NewLowPass[core.Scalar](50, 0.001)
	weighted.SetWeight(0.5)
	plain := NewLowPass[core.Scalar](50, 0.001)
	for _, x := range []core.Scalar{1, 1, 1, 1} {
		got := weighted.FilterWeighted(x)
		y := plain.Filter(x)
		want := (y-x)*0.5 + x
		testutil.RequireNearlyEqual(t, float32(got), float32(want), 1e-6)
	}
}

func TestSetParametersAndCopy(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.3, A2: 0.1}
	src := NewPassthrough[core.Vec3]()
	src.SetParameters(c, 0.25)

	dst := NewPassthrough[core.Vec3]()
	dst.Filter(core.Vec3{X: 1})
	dst.CopyParameters(src)

	if dst.Coefficients() != c || dst.Weight() != 0.25 {
		t.Fatalf("copy = %+v w=%v, want %+v w=0.25", dst.Coefficients(), dst.Weight(), c)
	}
	if dst.State().X1 != (core.Vec3{X: 1}) {
		t.Fatal("CopyParameters touched the state")
	}

	dst.SetCoefficients(c)
	if dst.Weight() != 1 {
		t.Fatalf("SetCoefficients weight = %v, want 1", dst.Weight())
	}
}

func TestQ(t *testing.T) {
	f := NewPassthrough[core.Scalar]()
	if f.Q() != 0.5 {
		t.Fatalf("default Q = %v, want 0.5", f.Q())
	}
	f.SetQ(2)
	if f.Q() != 2 {
		t.Fatalf("Q = %v, want 2", f.Q())
	}

	f.SetQFromCutoff(100, 90)
	testutil.RequireNearlyEqual(t, f.Q(), 9000.0/1900.0, 1e-5)
}

func TestSetQZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("SetQ(0) did not panic")
		}
	}()
	NewPassthrough[core.Scalar]().SetQ(0)
}

func TestCalculateOmega(t *testing.T) {
	f := NewPassthrough[core.Scalar]()
	f.SetLooptime(0.001)
	testutil.RequireNearlyEqual(t, f.CalculateOmega(100), float32(2*math.Pi*0.1), 1e-6)
	testutil.RequireNearlyEqual(t, Omega(100, 0.001), f.CalculateOmega(100), 1e-7)
}

func TestLowPassSteadyState(t *testing.T) {
	f := NewLowPass[core.Scalar](20, 0.001)

	var y core.Scalar
	for range 2000 {
		y = f.Filter(1)
	}
	testutil.RequireNearlyEqual(t, float32(y), 1, 1e-4)
}

func TestLowPassRetuneKeepsState(t *testing.T) {
	f := NewLowPass[core.Scalar](20, 0.001)
	f.Filter(1)
	f.Filter(1)
	before := f.State()

	f.SetLowPassFrequencyWeighted(40, 0.5)
	if f.State() != before {
		t.Fatal("retune changed the state")
	}
	if f.Weight() != 0.5 {
		t.Fatalf("weight = %v, want 0.5", f.Weight())
	}
	requireCoefficientsNear(t, f.Coefficients(), LowPass(40, 0.001, core.DefaultQ))
}

func TestNotchSuppressesCentreFrequency(t *testing.T) {
	const (
		hz = 100
		dt = 0.001
	)
	f := NewNotch[core.Scalar](hz, dt, core.WithQ(1))
	in := testutil.DeterministicSine[float32](hz, dt, 1, 2000)

	var peak float64
	for i, x := range in {
		y := float64(f.Filter(core.Scalar(x)))
		if i >= 1800 {
			peak = math.Max(peak, math.Abs(y))
		}
	}
	if peak > 0.01 {
		t.Fatalf("residual at notch centre = %v, want < 0.01", peak)
	}
}

func TestNotchFromCutoffMatchesNotch(t *testing.T) {
	f := NewPassthrough[core.Scalar]()
	f.SetLooptime(0.001)
	f.SetNotchFrequencyFromCutoff(200, 160)

	requireCoefficientsNear(t, f.Coefficients(), Notch(200, 0.001, CalculateQ(200, 160)))
}

func TestNotchFromSinCos(t *testing.T) {
	omega := Omega(150, 0.001)
	s, c := math.Sincos(float64(omega))

	f := NewPassthrough[core.Scalar]()
	f.SetQ(3)
	f.SetNotchFrequencyFromSinCos(float32(s), float32(2*c), 0.75)

	requireCoefficientsNear(t, f.Coefficients(), NotchFromSinCos(float32(s), float32(2*c), 3))
	if f.Weight() != 0.75 {
		t.Fatalf("weight = %v, want 0.75", f.Weight())
	}
}

func TestVectorMatchesScalar(t *testing.T) {
	vf := NewLowPass[core.Vec3](30, 0.001)
	fx := NewLowPass[core.Scalar](30, 0.001)
	fz := NewLowPass[core.Scalar](30, 0.001)

	noise := testutil.DeterministicNoise[float32](7, 1, 64)
	for i, n := range noise {
		v := vf.Filter(core.Vec3{X: n, Y: 0, Z: -2 * n})
		x := fx.Filter(core.Scalar(n))
		z := fz.Filter(core.Scalar(-2 * n))
		if !core.NearlyEqual(v.X, float32(x), 1e-6) || !core.NearlyEqual(v.Z, float32(z), 1e-6) {
			t.Fatalf("sample %d: vec=%v scalar=(%v, %v)", i, v, x, z)
		}
		if v.Y != 0 {
			t.Fatalf("sample %d: idle axis moved to %v", i, v.Y)
		}
	}
}

func TestChainOfBiquads(t *testing.T) {
	notch := NewNotch[core.Scalar](100, 0.001, core.WithQ(1))
	lp := NewLowPass[core.Scalar](30, 0.001)
	chain := filter.NewChain[core.Scalar](notch, lp)

	var y core.Scalar
	for range 3000 {
		y = chain.Filter(2)
	}
	testutil.RequireNearlyEqual(t, float32(y), 2, 1e-3)

	chain.Reset()
	if notch.State() != (State[core.Scalar]{}) || lp.State() != (State[core.Scalar]{}) {
		t.Fatal("chain Reset did not reset stages")
	}
}
