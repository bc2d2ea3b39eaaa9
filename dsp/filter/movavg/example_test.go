package movavg_test

import (
	"fmt"

	"github.com/cwbudde/algo-sensorfilter/dsp/core"
	"github.com/cwbudde/algo-sensorfilter/dsp/filter/movavg"
)

func ExampleFilter() {
	f, err := movavg.New[core.Scalar](3)
	if err != nil {
		fmt.Println(err)
		return
	}
	var out []core.Scalar
	for _, x := range []core.Scalar{1, 2, 3, 4, 8} {
		out = append(out, f.Filter(x))
	}
	fmt.Println(out)
	fmt.Println(f.Len(), f.Sum())
	// Output:
	// [1 1.5 2 3 5]
	// 3 15
}
