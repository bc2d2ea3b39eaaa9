package filter_test

import (
	"slices"
	"testing"

	"github.com/cwbudde/algo-sensorfilter/dsp/core"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter/biquad"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter/movavg"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter/powertransfer"
)

var (
	_ filter.StepFilter[core.Vec3] = filter.Null[core.Vec3]{}
	_ filter.CutoffSetter          = filter.Null[core.Scalar]{}
	_ filter.CutoffSetter          = (*powertransfer.PT2[core.Scalar])(nil)
	_ filter.StepFilter[core.Vec2] = (*filter.Chain[core.Vec2])(nil)
)

func TestNullPassesInput(t *testing.T) {
	var f filter.Null[core.Scalar]
	f.Init(0.3)
	f.SetCutoffFrequencyAndReset(10, 0.001)

	for _, x := range []core.Scalar{1, 2, -3} {
		if got := f.Filter(x); got != x {
			t.Fatalf("Filter(%v) = %v", x, got)
		}
		if got := f.FilterStep(x, 0.01); got != x {
			t.Fatalf("FilterStep(%v) = %v", x, got)
		}
	}
}

func TestFuncAdapter(t *testing.T) {
	double := filter.Func[core.Scalar](func(x core.Scalar) core.Scalar { return 2 * x })
	if got := double.Filter(4); got != 8 {
		t.Fatalf("Filter(4) = %v, want 8", got)
	}
}

func TestEmptyChainIsIdentity(t *testing.T) {
	c := filter.NewChain[core.Scalar](nil)
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0 (nil stages skipped)", c.Len())
	}
	if got := c.Filter(3.5); got != 3.5 {
		t.Fatalf("Filter(3.5) = %v", got)
	}
}

func TestChainRunsStagesInOrder(t *testing.T) {
	add1 := filter.Func[core.Scalar](func(x core.Scalar) core.Scalar { return x + 1 })
	double := filter.Func[core.Scalar](func(x core.Scalar) core.Scalar { return 2 * x })

	c := filter.NewChain[core.Scalar](add1, double)
	if got := c.Filter(3); got != 8 {
		t.Fatalf("add1 then double: got %v, want 8", got)
	}

	c.Append(add1)
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if got := c.Filter(3); got != 9 {
		t.Fatalf("after Append: got %v, want 9", got)
	}
}

func TestHeterogeneousChain(t *testing.T) {
	avg, err := movavg.New[core.Scalar](4)
	if err != nil {
		t.Fatal(err)
	}
	pt := powertransfer.NewPT1[core.Scalar](core.WithCutoff(50, 0.001))
	notch := biquad.NewNotch[core.Scalar](120, 0.001)

	c := filter.NewChain[core.Scalar](avg, pt, notch, filter.Null[core.Scalar]{})
	if c.Stage(1) != filter.Filter[core.Scalar](pt) {
		t.Fatal("Stage(1) is not the PT1")
	}

	in := make([]core.Scalar, 64)
	for i := range in {
		in[i] = core.Scalar(i % 5)
	}
	first := slices.Clone(in)
	filter.ProcessBlock(c, first)

	c.Reset()
	second := make([]core.Scalar, len(in))
	filter.ProcessBlockTo(c, second, in)

	if !slices.Equal(first, second) {
		t.Fatal("chain output differs after Reset")
	}
	if avg.Len() != 4 {
		t.Fatalf("moving average holds %d samples, want 4", avg.Len())
	}
}

func TestChainSetToPassthrough(t *testing.T) {
	pt := powertransfer.NewPT3[core.Vec3](core.WithGain(0.1))
	bq := biquad.NewLowPass[core.Vec3](10, 0.001)
	c := filter.NewChain[core.Vec3](pt, bq)
	c.FilterStep(core.Vec3{X: 5}, 0.001)

	c.SetToPassthrough()
	v := core.Vec3{X: 1, Y: -2, Z: 3}
	if got := c.Filter(v); got != v {
		t.Fatalf("passthrough chain: got %v, want %v", got, v)
	}
}

func TestProcessBlockToEmpty(t *testing.T) {
	filter.ProcessBlockTo[core.Scalar](filter.Null[core.Scalar]{}, nil, nil)
}
