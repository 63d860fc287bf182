package tensor

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/flint-ml/flint/internal/autodiff"
)

// Zeros creates a rows×cols tensor of independent zero-valued leaf Scalars.
func Zeros(rows, cols int) *Tensor {
	data := make([][]*autodiff.Scalar, rows)
	for row := range data {
		data[row] = make([]*autodiff.Scalar, cols)
		for col := range data[row] {
			data[row][col] = autodiff.New(0.0)
		}
	}
	return &Tensor{rows: rows, cols: cols, data: data}
}

// Uniform creates a rows×cols tensor of leaf Scalars drawn uniformly from
// [-1, 1).
func Uniform(rows, cols int) *Tensor {
	t := Zeros(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			//nolint:gosec // math/rand for weight initialization (not security-critical)
			t.data[row][col].SetValue(rand.Float64()*2.0 - 1.0)
		}
	}
	return t
}

// Xavier creates a rows×cols tensor of leaf Scalars drawn uniformly from
// [-1, 1) and scaled by 1/sqrt(rows). The scaling keeps activation variance
// stable across layers.
func Xavier(rows, cols int) *Tensor {
	scale := 1.0 / math.Sqrt(float64(rows))
	t := Zeros(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			//nolint:gosec // math/rand for weight initialization (not security-critical)
			t.data[row][col].SetValue((rand.Float64()*2.0 - 1.0) * scale)
		}
	}
	return t
}

// FromRows creates a tensor of leaf Scalars from row-major values. It
// panics if values is empty or ragged.
func FromRows(values [][]float64) *Tensor {
	if len(values) == 0 || len(values[0]) == 0 {
		panic(errors.New("tensor: FromRows requires at least one row and one column"))
	}

	rows, cols := len(values), len(values[0])
	data := make([][]*autodiff.Scalar, rows)
	for row := range values {
		if len(values[row]) != cols {
			panic(errors.Errorf("tensor: FromRows row %d has %d columns, want %d",
				row, len(values[row]), cols))
		}
		data[row] = make([]*autodiff.Scalar, cols)
		for col, v := range values[row] {
			data[row][col] = autodiff.New(v)
		}
	}
	return &Tensor{rows: rows, cols: cols, data: data}
}

// Row creates a 1×N tensor from a slice of values.
func Row(values []float64) *Tensor {
	return FromRows([][]float64{values})
}

// Col creates an N×1 tensor from a slice of values.
func Col(values []float64) *Tensor {
	return FromRows([][]float64{values}).Transpose()
}

// FromScalar creates a 1×1 tensor holding a single leaf value.
func FromScalar(value float64) *Tensor {
	return FromRows([][]float64{{value}})
}
