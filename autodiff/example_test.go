package autodiff_test

import (
	"fmt"

	"github.com/born-ml/micrograd/autodiff"
)

func Example() {
	a := autodiff.New(2)
	b := autodiff.New(-3)
	c := autodiff.New(10)
	f := autodiff.New(-2)

	loss := c.Add(a.Mul(b)).Mul(f)
	loss.Backward()

	fmt.Println(loss.Data(), a.Grad(), b.Grad(), c.Grad(), f.Grad())
	// Output: -8 6 -4 -2 4
}

func ExampleSoftmax() {
	probs := autodiff.Softmax([]autodiff.Valuable{autodiff.Const(0), autodiff.Const(0)})
	fmt.Println(probs[0].Data(), probs[1].Data())
	// Output: 0.5 0.5
}
