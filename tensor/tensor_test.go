// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/flint-ml/flint/autodiff"
	"github.com/flint-ml/flint/tensor"
)

// TestPublicAPI verifies the facade exposes the engine end to end: build
// leaves, compose a graph, run backward, read gradients.
func TestPublicAPI(t *testing.T) {
	x := tensor.Row([]float64{2.0, 3.0})
	w := tensor.Col([]float64{5.0, 7.0})

	y := x.MatMul(w)
	if got := y.At(0, 0).Value(); got != 31.0 {
		t.Fatalf("MatMul value = %v, want 31", got)
	}

	y.At(0, 0).Backward()
	if got := w.At(1, 0).Grad(); got != 3.0 {
		t.Errorf("grad = %v, want 3", got)
	}
}

// TestScalarHandleAlias verifies the facade Scalar is the engine's type, so
// handles from both packages interoperate.
func TestScalarHandleAlias(t *testing.T) {
	s := autodiff.New(4.0)
	m := tensor.FromScalar(1.0)
	sum := m.At(0, 0).Add(s)

	if got := sum.Value(); got != 5.0 {
		t.Errorf("Add value = %v, want 5", got)
	}
}
