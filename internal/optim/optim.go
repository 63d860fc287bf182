// Package optim implements optimization algorithms for training.
//
// Optimizers consume the autodiff engine's external contract only: they
// read (value, gradient) pairs off parameter scalars after a backward pass
// and mutate values in place through SetValue. The engine never updates
// parameters itself.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.05})
//	for epoch := 0; epoch < epochs; epoch++ {
//	    sgd.ZeroGrad(model.Parameters())
//	    loss := nn.MSE(preds, targets)
//	    loss.Backward()
//	    sgd.Step(model.Parameters())
//	}
package optim

import "github.com/flint-ml/flint/internal/autodiff"

// Optimizer updates parameters from their accumulated gradients.
type Optimizer interface {
	// Step applies one gradient update to every parameter in place.
	Step(params []*autodiff.Scalar)

	// ZeroGrad clears every parameter's gradient. Call it before each
	// backward pass unless gradients should accumulate across passes.
	ZeroGrad(params []*autodiff.Scalar)

	// GetLR returns the current learning rate.
	GetLR() float64
}

// ZeroGrad clears the gradients of every given parameter.
func ZeroGrad(params []*autodiff.Scalar) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
