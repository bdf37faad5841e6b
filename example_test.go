package transition_test

import (
	"fmt"

	"honnef.co/go/transition"
)

func ExampleLookup() {
	quad, err := transition.Lookup("Quad", transition.EaseInOut)
	if err != nil {
		panic(err)
	}
	for _, p := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Printf("%.4f\n", quad(p))
	}

	// Output:
	// 0.0000
	// 0.1250
	// 0.5000
	// 0.8750
	// 1.0000
}

func ExampleBind() {
	// Each use site can pick its own overshoot without affecting others.
	subtle := transition.Bind(transition.Back, 0.5)
	strong := transition.Bind(transition.Back, 3)

	fmt.Printf("%.4f %.4f\n", subtle.Ease(0.3), strong.Ease(0.3))
	fmt.Printf("%.4f\n", transition.Func(transition.Back).Ease(0.3))

	// Output:
	// -0.0045 -0.1620
	// -0.0749
}

func ExampleRegistry_RegisterFamily() {
	r := transition.NewRegistry()
	transition.RegisterBuiltins(r)

	// A slower elastic curve, registered as a family of its own.
	r.RegisterFamily("Wobble", transition.Bind(transition.Elastic, 0.5).Func())

	fn, err := r.LookupPath("Wobble.easeOut")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", fn(1))

	_, err = r.LookupPath("Wobble")
	fmt.Println(err)

	// Output:
	// 1.0005
	// transition: curve not found: "Wobble" has no mode bare
}

func ExampleSVG() {
	fmt.Println(transition.SVG(
		transition.Sample(transition.CSSEaseInOut, 4),
		transition.SVGOptions{MaxPrecision: 3, Scale: 100},
	))

	// Output:
	// M0,100 L25,87.084 L50,50 L75,12.916 L100,0
}
