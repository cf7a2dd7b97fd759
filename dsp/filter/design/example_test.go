package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterdesign/dsp/filter/design"
)

func ExampleButterworthLP() {
	chain, err := design.ButterworthLP(1000, 4, 48000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("sections=%d order=%d\n", chain.NumSections(), chain.Order())
	fmt.Printf("1000 Hz:  %.2f dB\n", chain.MagnitudeDB(1000, 48000))
	fmt.Printf("10000 Hz: %.2f dB\n", chain.MagnitudeDB(10000, 48000))
	// Output:
	// sections=2 order=4
	// 1000 Hz:  -3.01 dB
	// 10000 Hz: -85.48 dB
}

func ExampleSZXform() {
	// Two cascaded sections share one gain accumulator.
	gain := 1.0

	var q1, q2 design.Quad

	_ = design.SZXform(design.Analog{1, 0, 0}, design.Analog{1, 0.765367, 1}, 1, 1000, 48000, &gain, &q1)
	_ = design.SZXform(design.Analog{1, 0, 0}, design.Analog{1, 1.847759, 1}, 1, 1000, 48000, &gain, &q2)

	dc := gain
	for _, q := range []design.Quad{q1, q2} {
		dc *= (1 + q.Alpha1 + q.Alpha2) / (1 + q.Beta1 + q.Beta2)
	}

	fmt.Printf("alpha=(%.0f, %.0f)\n", q1.Alpha1, q1.Alpha2)
	fmt.Printf("dc gain=%.6f\n", dc)
	// Output:
	// alpha=(2, 1)
	// dc gain=1.000000
}
