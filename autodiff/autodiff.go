// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the public API for the scalar reverse-mode
// automatic-differentiation engine.
//
// A Scalar is one vertex of a dynamically built computation graph. Applying
// an operation returns a new Scalar wired to its operands; calling Backward
// on a result populates the gradient of every Scalar it was computed from.
//
// Example:
//
//	a := autodiff.New(2.0)
//	b := autodiff.New(-3.0)
//	c := autodiff.New(10.0)
//	d := a.Mul(b).Add(c) // 4.0
//	d.Backward()
//	// a.Grad() == -3.0, b.Grad() == 2.0, c.Grad() == 1.0
package autodiff

import (
	"github.com/flint-ml/flint/internal/autodiff"
)

// Scalar is one differentiable value in a computation graph.
type Scalar = autodiff.Scalar

// Op identifies a binary arithmetic operation.
type Op = autodiff.Op

// Binary operations.
const (
	OpAdd Op = autodiff.OpAdd
	OpSub Op = autodiff.OpSub
	OpMul Op = autodiff.OpMul
	OpDiv Op = autodiff.OpDiv
)

// Activation identifies a unary nonlinearity.
type Activation = autodiff.Activation

// Unary activations.
const (
	ActExp     Activation = autodiff.ActExp
	ActTanh    Activation = autodiff.ActTanh
	ActSigmoid Activation = autodiff.ActSigmoid
	ActReLU    Activation = autodiff.ActReLU
)

// New creates a leaf Scalar with the given value and a zero gradient.
func New(value float64) *Scalar {
	return autodiff.New(value)
}

// FloatSub returns f - x for a float literal on the left-hand side.
func FloatSub(f float64, x *Scalar) *Scalar {
	return autodiff.FloatSub(f, x)
}

// FloatDiv returns f / x for a float literal on the left-hand side.
func FloatDiv(f float64, x *Scalar) *Scalar {
	return autodiff.FloatDiv(f, x)
}
