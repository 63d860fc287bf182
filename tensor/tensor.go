// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense rows×cols grids of
// differentiable scalars.
//
// A Tensor holds references to autodiff Scalars; tensor operations compose
// many scalar operations into one computation graph. Shapes must match
// exactly: a mismatch panics, there is no broadcasting.
//
// Example:
//
//	x := tensor.Row([]float64{2.0, 3.0, -1.0})
//	w := tensor.Xavier(4, 3)
//	y := x.MatMul(w.Transpose()).Tanh() // 1×4
package tensor

import (
	"github.com/flint-ml/flint/internal/tensor"
)

// Tensor is a rows×cols grid of Scalar references.
type Tensor = tensor.Tensor

// Zeros creates a rows×cols tensor of zero-valued leaf Scalars.
func Zeros(rows, cols int) *Tensor {
	return tensor.Zeros(rows, cols)
}

// Uniform creates a rows×cols tensor of leaves drawn uniformly from [-1, 1).
func Uniform(rows, cols int) *Tensor {
	return tensor.Uniform(rows, cols)
}

// Xavier creates a rows×cols tensor of uniform leaves scaled by 1/sqrt(rows).
func Xavier(rows, cols int) *Tensor {
	return tensor.Xavier(rows, cols)
}

// FromRows creates a tensor of leaves from row-major values.
func FromRows(values [][]float64) *Tensor {
	return tensor.FromRows(values)
}

// Row creates a 1×N tensor from a slice of values.
func Row(values []float64) *Tensor {
	return tensor.Row(values)
}

// Col creates an N×1 tensor from a slice of values.
func Col(values []float64) *Tensor {
	return tensor.Col(values)
}

// FromScalar creates a 1×1 tensor holding a single leaf value.
func FromScalar(value float64) *Tensor {
	return tensor.FromScalar(value)
}

// FloatSub returns a tensor whose every cell is f - cell.
func FloatSub(f float64, t *Tensor) *Tensor {
	return tensor.FloatSub(f, t)
}
