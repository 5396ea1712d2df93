package vybiumpoly_test

import (
	"fmt"

	vybiumpoly "github.com/vybium/vybium-poly/pkg/vybium-poly"
)

func ExampleRing_Div() {
	ring := vybiumpoly.DefaultRing()

	a, _ := ring.Parse("-1 + X**2")
	b, _ := ring.FromCoefficients(vybiumpoly.Real(-1), vybiumpoly.Real(1))

	q, rem, _ := ring.Div(a, b)
	fmt.Println(q)
	fmt.Println(rem)
	// Output:
	// 1 + X
	// 0
}

func ExampleRing_Mul() {
	ring := vybiumpoly.DefaultRing()

	a, _ := ring.Parse("j + X")
	b, _ := ring.Parse("-j + X")

	product, _ := ring.Mul(a, b)
	fmt.Println(product)
	// Output: 1 + X**2
}

func ExampleRing_Derivative() {
	ring := vybiumpoly.DefaultRing()

	p, _ := ring.Parse("5 + 3 * X + (1+2j) * X**3")
	d, _ := ring.Derivative(p)
	fmt.Println(d)
	// Output: 3 + (3+6j) * X**2
}
