package tensor

import (
	"github.com/pkg/errors"

	"github.com/flint-ml/flint/internal/autodiff"
)

// Add returns the elementwise sum of t and other. The shapes must match
// exactly; there is no broadcasting.
func (t *Tensor) Add(other *Tensor) *Tensor {
	sameShape("tensor: Add", t, other)

	out := Zeros(t.rows, t.cols)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			out.data[row][col] = t.data[row][col].Add(other.data[row][col])
		}
	}
	return out
}

// Sub returns the elementwise difference of t and other. The shapes must
// match exactly.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	sameShape("tensor: Sub", t, other)

	out := Zeros(t.rows, t.cols)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			out.data[row][col] = t.data[row][col].Sub(other.data[row][col])
		}
	}
	return out
}

// MatMul returns the matrix product of t (m×k) and other (k×n), an m×n
// tensor. Each output cell is a left-to-right fold of scalar products
// combined with scalar Add, seeded with the first product so no dead
// constant-zero node inflates the graph. It panics when the inner
// dimensions disagree.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	if t.cols != other.rows {
		panic(errors.Errorf("tensor: MatMul %dx%d incompatible with %dx%d",
			t.rows, t.cols, other.rows, other.cols))
	}

	out := Zeros(t.rows, other.cols)
	for i := 0; i < t.rows; i++ {
		for j := 0; j < other.cols; j++ {
			sum := t.data[i][0].Mul(other.data[0][j])
			for k := 1; k < t.cols; k++ {
				sum = sum.Add(t.data[i][k].Mul(other.data[k][j]))
			}
			out.data[i][j] = sum
		}
	}
	return out
}

// AddFloat returns a tensor whose every cell is cell + f. The literal is
// wrapped into a fresh leaf per cell, like scalar float convenience ops.
func (t *Tensor) AddFloat(f float64) *Tensor {
	out := Zeros(t.rows, t.cols)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			out.data[row][col] = t.data[row][col].AddFloat(f)
		}
	}
	return out
}

// SubFloat returns a tensor whose every cell is cell - f.
func (t *Tensor) SubFloat(f float64) *Tensor {
	out := Zeros(t.rows, t.cols)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			out.data[row][col] = t.data[row][col].SubFloat(f)
		}
	}
	return out
}

// MulFloat returns a tensor whose every cell is cell * f (uniform scaling).
func (t *Tensor) MulFloat(f float64) *Tensor {
	out := Zeros(t.rows, t.cols)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			out.data[row][col] = t.data[row][col].MulFloat(f)
		}
	}
	return out
}

// FloatSub returns a tensor whose every cell is f - cell.
func FloatSub(f float64, t *Tensor) *Tensor {
	out := Zeros(t.rows, t.cols)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			out.data[row][col] = autodiff.FloatSub(f, t.data[row][col])
		}
	}
	return out
}

// Pow raises every cell to the given non-negative integer power through the
// scalar graph builder.
func (t *Tensor) Pow(n int) *Tensor {
	out := Zeros(t.rows, t.cols)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			out.data[row][col] = t.data[row][col].Pow(n)
		}
	}
	return out
}

// Nonlinear applies the given activation independently to every cell.
func Nonlinear(t *Tensor, act autodiff.Activation) *Tensor {
	out := Zeros(t.rows, t.cols)
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			out.data[row][col] = t.data[row][col].Activate(act)
		}
	}
	return out
}

// Exp applies e^x per cell.
func (t *Tensor) Exp() *Tensor {
	return Nonlinear(t, autodiff.ActExp)
}

// Tanh applies tanh per cell.
func (t *Tensor) Tanh() *Tensor {
	return Nonlinear(t, autodiff.ActTanh)
}

// Sigmoid applies the logistic function per cell.
func (t *Tensor) Sigmoid() *Tensor {
	return Nonlinear(t, autodiff.ActSigmoid)
}

// ReLU applies max(0, x) per cell.
func (t *Tensor) ReLU() *Tensor {
	return Nonlinear(t, autodiff.ActReLU)
}
