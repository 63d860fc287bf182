package autodiff

import "math"

// Op identifies a binary arithmetic operation. The set is closed; the
// backward rule table switches over it exhaustively.
type Op int

// Binary operations.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operator symbol.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Activation identifies a unary nonlinearity. Like Op, the set is closed.
type Activation int

// Unary activations.
const (
	ActExp Activation = iota
	ActTanh
	ActSigmoid
	ActReLU
)

// String returns the activation name.
func (a Activation) String() string {
	switch a {
	case ActExp:
		return "exp"
	case ActTanh:
		return "tanh"
	case ActSigmoid:
		return "sigmoid"
	case ActReLU:
		return "relu"
	}
	return "?"
}

// apply is the graph builder for binary operations: it computes the forward
// value under standard IEEE 754 semantics (division by zero propagates
// ±Inf/NaN; the engine does not guard) and wires a new Scalar to its two
// operands. The operands are never mutated.
func apply(lhs, rhs *Scalar, op Op) *Scalar {
	var value float64
	switch op {
	case OpAdd:
		value = lhs.value + rhs.value
	case OpSub:
		value = lhs.value - rhs.value
	case OpMul:
		value = lhs.value * rhs.value
	case OpDiv:
		value = lhs.value / rhs.value
	}
	return &Scalar{
		value: value,
		dep:   &dependency{lhs: lhs, rhs: rhs, op: op},
	}
}

// activate is the graph builder for unary activations.
func activate(x *Scalar, act Activation) *Scalar {
	var value float64
	switch act {
	case ActExp:
		value = math.Exp(x.value)
	case ActTanh:
		value = math.Tanh(x.value)
	case ActSigmoid:
		value = 1.0 / (1.0 + math.Exp(-x.value))
	case ActReLU:
		value = math.Max(0, x.value)
	}
	return &Scalar{
		value: value,
		dep:   &dependency{lhs: x, act: act},
	}
}

// Add returns a new Scalar holding s + other.
func (s *Scalar) Add(other *Scalar) *Scalar {
	return apply(s, other, OpAdd)
}

// Sub returns a new Scalar holding s - other.
func (s *Scalar) Sub(other *Scalar) *Scalar {
	return apply(s, other, OpSub)
}

// Mul returns a new Scalar holding s * other.
func (s *Scalar) Mul(other *Scalar) *Scalar {
	return apply(s, other, OpMul)
}

// Div returns a new Scalar holding s / other. Division by a zero-valued
// Scalar yields ±Inf or NaN and propagates through backward.
func (s *Scalar) Div(other *Scalar) *Scalar {
	return apply(s, other, OpDiv)
}

// Float-literal convenience: the literal is wrapped into a fresh leaf so
// mixed Scalar/float arithmetic extends the graph like any other operation.
// The wrapped leaf carries no semantic weight; its gradient is accumulated
// but never consumed.

// AddFloat returns s + f.
func (s *Scalar) AddFloat(f float64) *Scalar {
	return apply(s, New(f), OpAdd)
}

// SubFloat returns s - f.
func (s *Scalar) SubFloat(f float64) *Scalar {
	return apply(s, New(f), OpSub)
}

// MulFloat returns s * f.
func (s *Scalar) MulFloat(f float64) *Scalar {
	return apply(s, New(f), OpMul)
}

// DivFloat returns s / f.
func (s *Scalar) DivFloat(f float64) *Scalar {
	return apply(s, New(f), OpDiv)
}

// FloatSub returns f - x for a float literal on the left-hand side.
func FloatSub(f float64, x *Scalar) *Scalar {
	return apply(New(f), x, OpSub)
}

// FloatDiv returns f / x for a float literal on the left-hand side.
func FloatDiv(f float64, x *Scalar) *Scalar {
	return apply(New(f), x, OpDiv)
}

// Exp returns e^s.
func (s *Scalar) Exp() *Scalar {
	return activate(s, ActExp)
}

// Tanh returns tanh(s).
func (s *Scalar) Tanh() *Scalar {
	return activate(s, ActTanh)
}

// Sigmoid returns 1 / (1 + e^-s).
func (s *Scalar) Sigmoid() *Scalar {
	return activate(s, ActSigmoid)
}

// ReLU returns max(0, s).
func (s *Scalar) ReLU() *Scalar {
	return activate(s, ActReLU)
}

// Activate applies the given activation. It exists so tensor code can
// dispatch on an Activation value without switching per cell.
func (s *Scalar) Activate(act Activation) *Scalar {
	return activate(s, act)
}

// Pow raises s to a non-negative integer power by n-fold self-multiplication
// through the graph builder; backward recovers n·x^(n-1) through repeated
// chain-rule application with no dedicated rule.
//
// Pow(0) returns a fresh constant-1 leaf and Pow(1) returns s itself.
func (s *Scalar) Pow(n int) *Scalar {
	if n == 0 {
		return New(1.0)
	}
	out := s
	for i := 1; i < n; i++ {
		out = out.Mul(s)
	}
	return out
}
