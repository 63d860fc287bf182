package optim

import "github.com/flint-ml/flint/internal/autodiff"

// SGD implements plain stochastic gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates an SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR}
}

// Step applies param -= lr * grad to every parameter.
func (s *SGD) Step(params []*autodiff.Scalar) {
	for _, p := range params {
		p.SetValue(p.Value() - s.lr*p.Grad())
	}
}

// ZeroGrad clears every parameter's gradient.
func (s *SGD) ZeroGrad(params []*autodiff.Scalar) {
	ZeroGrad(params)
}

// GetLR returns the learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}
