// SPDX-License-Identifier: EPL-2.0

package cancellation_test

import (
	"fmt"

	"github.com/ik5/audpost/cancellation"
	"github.com/ik5/audpost/internal/audiotest"
)

func ExampleRatios() {
	for _, ratio := range []float64{0, 1, 2} {
		r1, r2, _ := cancellation.Ratios(ratio)
		fmt.Printf("ratio %.1f: main %.2f, aux %.2f\n", ratio, r1, r2)
	}

	// Output:
	// ratio 0.0: main 0.00, aux 1.00
	// ratio 1.0: main 0.50, aux 0.50
	// ratio 2.0: main 1.00, aux 0.00
}

func ExampleInvert() {
	inverted, _ := cancellation.Invert([]byte{0x00, 0x0F, 0xF0, 0xFF}, 4)
	fmt.Printf("%x\n", inverted)

	// Output:
	// fff00f00
}

func ExampleCanceller_ProcessSources() {
	c, _ := cancellation.New(cancellation.WithRatio(2))

	main := audiotest.NewInt16Source(8000, 1, []int16{100, -200, 300})
	aux := audiotest.NewInt16Source(8000, 1, []int16{5, 5})
	sink := audiotest.NewMockSink(8000, 2, 1)

	frames, _ := c.ProcessSources(main, aux, sink)
	fmt.Println(frames, audiotest.BytesInt16(sink.Data))

	// Output:
	// 2 [100 -200]
}
