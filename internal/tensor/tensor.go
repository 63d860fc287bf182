// Package tensor provides dense rows×cols grids of differentiable scalars.
//
// A Tensor holds references to autodiff.Scalar values, not copies:
// elementwise operations and matrix multiplication compose many scalar
// operations into one larger computation graph, and a transposed view
// shares the exact same Scalars as its source. Correctness therefore
// reduces to the scalar engine; this layer only handles shapes.
//
// Operations between two tensors require compatible shapes. A mismatch is
// an unrecoverable usage error and panics with a shape-mismatch error;
// there is no silent broadcasting or truncation.
package tensor

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/flint-ml/flint/internal/autodiff"
)

// Tensor is a rows×cols grid of Scalar references.
//
// Invariant: len(data) == rows and every row has exactly cols entries.
type Tensor struct {
	rows int
	cols int
	data [][]*autodiff.Scalar
}

// Rows returns the number of rows.
func (t *Tensor) Rows() int {
	return t.rows
}

// Cols returns the number of columns.
func (t *Tensor) Cols() int {
	return t.cols
}

// At returns the Scalar at cell (row, col).
func (t *Tensor) At(row, col int) *autodiff.Scalar {
	return t.data[row][col]
}

// Set replaces the reference at cell (row, col). The previous Scalar is not
// touched; any graph built from it keeps referencing it.
func (t *Tensor) Set(row, col int, s *autodiff.Scalar) {
	t.data[row][col] = s
}

// Transpose returns a cols×rows view sharing the same Scalars as t: no new
// graph nodes and no value copies. Gradients computed through the view
// accumulate into the exact same Scalars as the original orientation.
func (t *Tensor) Transpose() *Tensor {
	out := Zeros(t.cols, t.rows)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			out.data[col][row] = t.data[row][col]
		}
	}
	return out
}

// Backward runs the scalar backward pass from every cell, treating each as
// an independent root. For training, call Backward on the single scalar
// loss instead; per-cell backward on a non-loss tensor is rarely what you
// want.
func (t *Tensor) Backward() {
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			t.data[row][col].Backward()
		}
	}
}

// Scalars returns every cell in row-major order. Useful for collecting
// trainable parameters.
func (t *Tensor) Scalars() []*autodiff.Scalar {
	out := make([]*autodiff.Scalar, 0, t.rows*t.cols)
	for row := 0; row < t.rows; row++ {
		out = append(out, t.data[row]...)
	}
	return out
}

// String renders the grid one row per line, cells separated by pipes.
func (t *Tensor) String() string {
	var b strings.Builder
	for row := 0; row < t.rows; row++ {
		b.WriteString("| ")
		for col := 0; col < t.cols; col++ {
			b.WriteString(t.data[row][col].String())
			b.WriteString(" | ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// sameShape panics unless a and b have identical dimensions.
func sameShape(op string, a, b *Tensor) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(errors.Errorf("%s: shape mismatch %dx%d vs %dx%d",
			op, a.rows, a.cols, b.rows, b.cols))
	}
}
