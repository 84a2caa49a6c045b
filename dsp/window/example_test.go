package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHann, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleFade() {
	in, _ := Fade(TypeTriangle, 4, FadeIn)
	out, _ := Fade(TypeTriangle, 4, FadeOut)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", in[0], in[1], in[2], in[3])
	fmt.Printf("%.2f %.2f %.2f %.2f\n", out[0], out[1], out[2], out[3])
	// Output:
	// 0.00 0.25 0.50 0.75
	// 0.75 0.50 0.25 0.00
}
