// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for optimization algorithms.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.05})
//	sgd.ZeroGrad(model.Parameters())
//	loss.Backward()
//	sgd.Step(model.Parameters())
package optim

import (
	"github.com/flint-ml/flint/internal/autodiff"
	"github.com/flint-ml/flint/internal/optim"
)

// Optimizer updates parameters from their accumulated gradients.
type Optimizer = optim.Optimizer

// SGD implements plain stochastic gradient descent.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates an SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// ZeroGrad clears the gradients of every given parameter.
func ZeroGrad(params []*autodiff.Scalar) {
	optim.ZeroGrad(params)
}
