// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for composing the autodiff engine into
// neurons, layers, and multi-layer perceptrons.
//
// Example:
//
//	model := nn.NewMLP([]int{3, 4, 4, 1}, autodiff.ActTanh)
//	pred := model.Forward(tensor.Row([]float64{2.0, 3.0, -1.0}))
//	loss := nn.MSE([]*tensor.Tensor{pred}, []*tensor.Tensor{target})
//	loss.Backward()
package nn

import (
	"github.com/flint-ml/flint/internal/autodiff"
	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/tensor"
)

// Neuron is a single affine unit followed by an activation.
type Neuron = nn.Neuron

// Layer is a fully connected collection of neurons sharing one input.
type Layer = nn.Layer

// MLP is a feed-forward network of fully connected layers.
type MLP = nn.MLP

// NewNeuron creates a neuron taking in inputs.
func NewNeuron(in int, act autodiff.Activation) *Neuron {
	return nn.NewNeuron(in, act)
}

// NewLayer creates a layer mapping in inputs to out outputs.
func NewLayer(in, out int, act autodiff.Activation) *Layer {
	return nn.NewLayer(in, out, act)
}

// NewMLP creates a perceptron from consecutive layer sizes.
func NewMLP(sizes []int, act autodiff.Activation) *MLP {
	return nn.NewMLP(sizes, act)
}

// MSE computes the summed squared error over paired prediction and target
// tensors as a single scalar graph root.
func MSE(preds, targets []*tensor.Tensor) *autodiff.Scalar {
	return nn.MSE(preds, targets)
}
