package autodiff

// Backward computes the gradient of v with respect to every value that
// contributed to it.
//
// After Backward returns, each reachable node's Grad holds d(v)/d(node),
// accumulated on top of whatever gradient it carried before. Call ZeroGrad on
// parameters between independent passes that share them.
//
// Example:
//
//	x := autodiff.New(3)
//	y := x.Mul(x) // y = x²
//	y.Backward()
//	x.Grad() // 6
func (v *Value) Backward() {
	Record(v).Backward()
}

// propagate adds this node's contribution to the gradients of its inputs.
func (v *Value) propagate() {
	if len(v.inputs) == 0 {
		return
	}

	in := make([]float64, len(v.inputs))
	for i, input := range v.inputs {
		in[i] = input.data
	}

	grads := v.op.Backward(in, v.data, v.grad)
	for i, input := range v.inputs {
		// += so that a node reached along several paths sums every contribution.
		input.grad += grads[i]
	}
}
