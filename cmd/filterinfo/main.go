// Command filterinfo prints measured characteristics of the sensor filters.
//
// Usage:
//
//	filterinfo [flags] [filter-name ...]
//
// Without arguments it prints info for all known filter kinds.
//
// Examples:
//
//	filterinfo pt1 pt2 pt3
//	filterinfo -cutoff 80 -dt 0.000125 biquad-lp
//	filterinfo -cutoff 150 -q 3 -probe 150 notch
//	filterinfo -window 16 movavg
//	filterinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sensorfilter/dsp/core"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter/biquad"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter/movavg"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter/powertransfer"
	"github.com/cwbudde/algo-sensorfilter/measure/response"
)

var errQZero = errors.New("q must be non-zero")

type params struct {
	cutoff float32
	dt     float32
	q      float32
	window int
}

type filterEntry struct {
	name  string
	build func(p params) (filter.Filter[core.Scalar], string, error)
}

var registry = []filterEntry{
	{"null", buildNull},
	{"pt1", buildPT1},
	{"pt2", buildPT2},
	{"pt3", buildPT3},
	{"biquad-lp", buildLowPass},
	{"notch", buildNotch},
	{"movavg", buildMovingAverage},
}

func buildNull(params) (filter.Filter[core.Scalar], string, error) {
	return filter.Null[core.Scalar]{}, "-", nil
}

func buildPT1(p params) (filter.Filter[core.Scalar], string, error) {
	f := powertransfer.NewPT1[core.Scalar](core.WithCutoff(p.cutoff, p.dt))
	return f, fmt.Sprintf("k=%.5f", f.Gain()), nil
}

func buildPT2(p params) (filter.Filter[core.Scalar], string, error) {
	f := powertransfer.NewPT2[core.Scalar](core.WithCutoff(p.cutoff, p.dt))
	return f, fmt.Sprintf("k=%.5f", f.Gain()), nil
}

func buildPT3(p params) (filter.Filter[core.Scalar], string, error) {
	f := powertransfer.NewPT3[core.Scalar](core.WithCutoff(p.cutoff, p.dt))
	return f, fmt.Sprintf("k=%.5f", f.Gain()), nil
}

func buildLowPass(p params) (filter.Filter[core.Scalar], string, error) {
	if p.q == 0 {
		return nil, "", errQZero
	}
	f := biquad.NewLowPass[core.Scalar](p.cutoff, p.dt, core.WithQ(p.q))
	return f, describeBiquad(f.Coefficients()), nil
}

func buildNotch(p params) (filter.Filter[core.Scalar], string, error) {
	if p.q == 0 {
		return nil, "", errQZero
	}
	f := biquad.NewNotch[core.Scalar](p.cutoff, p.dt, core.WithQ(p.q))
	return f, describeBiquad(f.Coefficients()), nil
}

func buildMovingAverage(p params) (filter.Filter[core.Scalar], string, error) {
	f, err := movavg.New[core.Scalar](p.window)
	if err != nil {
		return nil, "", err
	}
	return f, fmt.Sprintf("n=%d", f.Window()), nil
}

func describeBiquad(c biquad.Coefficients) string {
	stable := "stable"
	if !c.Stable() {
		stable = "UNSTABLE"
	}
	return fmt.Sprintf("b=[%.4g %.4g %.4g] a=[%.4g %.4g] %s", c.B0, c.B1, c.B2, c.A1, c.A2, stable)
}

func main() {
	cutoff := flag.Float64("cutoff", 20, "cutoff or notch centre frequency in Hz")
	dt := flag.Float64("dt", 0.001, "sample period (looptime) in seconds")
	q := flag.Float64("q", float64(core.DefaultQ), "quality factor for biquad kinds")
	window := flag.Int("window", 8, "moving-average window in samples")
	fftSize := flag.Int("fft", response.DefaultFFTSize, "FFT length for the frequency analysis (power of two)")
	probe := flag.Float64("probe", 0, "probe frequency in Hz (default: half Nyquist)")
	seed := flag.Int64("seed", 1, "seed of the white-noise record used for the noise ratio")
	all := flag.Bool("all", false, "show all filter kinds")
	list := flag.Bool("list", false, "list available filter names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags] [filter-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints measured characteristics of the sensor filters.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all kinds.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo pt1 pt2 pt3\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -cutoff 150 -q 3 -probe 150 notch\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	if *cutoff <= 0 || *dt <= 0 {
		fmt.Fprintf(os.Stderr, "error: -cutoff and -dt must be > 0\n")
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filter kinds\n")
		os.Exit(1)
	}

	p := params{
		cutoff: float32(*cutoff),
		dt:     float32(*dt),
		q:      float32(*q),
		window: *window,
	}
	opts := []response.Option{response.WithFFTSize(*fftSize), response.WithProbeFrequency(*probe)}
	noise := response.WhiteNoise(*seed, 1, *fftSize)

	if err := printAnalysis(entries, p, float64(p.dt), opts, noise); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []filterEntry {
	byName := make(map[string]filterEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []filterEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAnalysis(entries []filterEntry, p params, dt float64, opts []response.Option, noise []float64) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tParameters\tDC [dB]\tfc -3dB [Hz]\tProbe [Hz]\tProbe [dB]\tProbe gain\tNoise ratio\tSettle 1%% [samples]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----------\t-------\t------------\t----------\t----------\t----------\t-----------\t-------------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		f, desc, err := e.build(p)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		a, err := response.Analyze(f, dt, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		settle := response.SettlingIndex(response.StepResponse(f, len(noise)), 0.01)
		ratio := response.NoiseReduction(f, noise)

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.3f\t%s\t%.1f\t%.2f\t%.4f\t%.4f\t%d\n",
			e.name,
			desc,
			a.DCGainDB,
			formatCutoff(a.CutoffHz),
			a.ProbeHz,
			a.ProbeGainDB,
			probeGain(a),
			ratio,
			settle,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func formatCutoff(hz float64) string {
	if hz == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", hz)
}

// probeGain is the linear amplitude ratio at the probe frequency.
func probeGain(a response.Analysis) float64 {
	return core.DBToLinear(a.ProbeGainDB)
}
