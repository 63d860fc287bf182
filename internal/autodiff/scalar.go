// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Every Scalar is one vertex of a dynamically built computation graph: a
// value, an accumulated gradient, and an immutable record of how the value
// was derived (nil for leaves). Applying an operation never mutates its
// operands; it allocates a new Scalar whose dependency points back at them,
// so the graph is acyclic by construction.
//
// Usage:
//
//	a := autodiff.New(2.0)
//	b := autodiff.New(-3.0)
//	c := autodiff.New(10.0)
//	d := a.Mul(b).Add(c) // d = a*b + c = 4.0
//
//	d.Backward()
//	fmt.Println(a.Grad()) // ∂d/∂a = b = -3.0
//
// Gradients accumulate additively: calling Backward twice without zeroing
// gradients in between sums the contributions of both passes. Callers that
// want per-step gradients must call ZeroGrad on their parameters before
// each pass. This is a documented contract, not a defect; some composition
// patterns accumulate gradients over several passes before one optimizer
// step.
//
// The graph is not safe for concurrent use: construction and backward both
// perform unsynchronized read-modify-write on shared Scalar state.
package autodiff

import "fmt"

// dependency records how a derived Scalar was computed. It is set once at
// construction and never mutated afterwards.
//
// rhs is nil for unary activations, in which case act identifies the rule;
// otherwise op identifies the binary rule over lhs and rhs.
type dependency struct {
	lhs *Scalar
	rhs *Scalar
	op  Op
	act Activation
}

// Scalar is one differentiable value in a computation graph.
//
// Identity is pointer identity: two Scalars holding equal values are still
// distinct graph vertices, and two handles may alias the same Scalar (a
// transposed tensor view shares Scalars with its source). Value is mutated
// only by SetValue; Grad is only ever accumulated into, never overwritten,
// so a Scalar reachable through multiple paths sums every contribution.
type Scalar struct {
	value float64
	grad  float64
	dep   *dependency
}

// New creates a leaf Scalar with the given value and a zero gradient.
// Leaves have no dependency; they terminate the backward recursion.
func New(value float64) *Scalar {
	return &Scalar{value: value}
}

// Value returns the current numeric value.
func (s *Scalar) Value() float64 {
	return s.value
}

// SetValue overwrites the numeric value. This is the parameter-update entry
// point used by optimizers; the engine itself never mutates a value after
// construction.
func (s *Scalar) SetValue(value float64) {
	s.value = value
}

// Grad returns the accumulated gradient ∂root/∂s. It is meaningful only
// after a Backward pass from some root has reached s.
func (s *Scalar) Grad() float64 {
	return s.grad
}

// ZeroGrad resets the accumulated gradient to zero. Call it on every
// parameter before a Backward pass when per-step gradients are wanted.
func (s *Scalar) ZeroGrad() {
	s.grad = 0
}

// IsLeaf reports whether s has no dependency (an input or constant).
func (s *Scalar) IsLeaf() bool {
	return s.dep == nil
}

// accumulate adds delta to the gradient. Accumulation is commutative and
// never touches value, so interleaved accumulations and value reads during
// a backward pass cannot corrupt an in-flight local-derivative computation.
func (s *Scalar) accumulate(delta float64) {
	s.grad += delta
}

// String renders the value and accumulated gradient as "v [g]".
func (s *Scalar) String() string {
	return fmt.Sprintf("%.4f [%.4f]", s.value, s.grad)
}
