package autodiff

// sequence performs a depth-first traversal from root, visiting a Scalar's
// dependencies (left then right for binary, the single operand for unary)
// before appending the Scalar itself. Visited identities are tracked by
// pointer so a Scalar reachable through multiple paths appears exactly
// once. The result is a valid topological order: every dependency precedes
// every Scalar that depends on it.
func sequence(root *Scalar) []*Scalar {
	visited := make(map[*Scalar]struct{})
	var order []*Scalar

	var visit func(s *Scalar)
	visit = func(s *Scalar) {
		if _, ok := visited[s]; ok {
			return
		}
		visited[s] = struct{}{}

		if d := s.dep; d != nil {
			visit(d.lhs)
			if d.rhs != nil {
				visit(d.rhs)
			}
		}
		order = append(order, s)
	}

	visit(root)
	return order
}

// Backward runs reverse-mode differentiation from s: it computes the
// topological order once, seeds s's gradient with 1.0, and replays the
// local derivative rule at each derived Scalar in reverse order,
// accumulating into its dependencies. Afterwards every reachable Scalar's
// Grad holds ∂s/∂scalar.
//
// Gradients accumulate across repeated calls; see the package comment for
// the zeroing contract.
func (s *Scalar) Backward() {
	order := sequence(s)

	s.accumulate(1.0)

	for i := len(order) - 1; i >= 0; i-- {
		order[i].backwardStep()
	}
}

// backwardStep applies the chain rule at one derived Scalar, reading the
// upstream gradient and the already-computed forward values.
//
// When lhs and rhs are the identical Scalar (x+x, x-x, x*x, x/x) the two
// accumulations below still yield the correct combined derivative: value is
// read-only during backward and gradient accumulation is commutative and
// additive, so the partials simply sum (Add→2g, Sub→0, Mul→2g·x, Div→0).
func (s *Scalar) backwardStep() {
	d := s.dep
	if d == nil {
		return
	}

	g := s.grad

	if d.rhs == nil {
		x := d.lhs
		switch d.act {
		case ActExp:
			// f'(x) = e^x, which is s.value itself.
			x.accumulate(g * s.value)
		case ActTanh:
			// f'(x) = 1 - tanh(x)²
			x.accumulate(g * (1.0 - s.value*s.value))
		case ActSigmoid:
			// f'(x) = σ(x)(1 - σ(x))
			x.accumulate(g * s.value * (1.0 - s.value))
		case ActReLU:
			if x.value > 0 {
				x.accumulate(g)
			}
		}
		return
	}

	l, r := d.lhs, d.rhs
	switch d.op {
	case OpAdd:
		l.accumulate(g)
		r.accumulate(g)
	case OpSub:
		l.accumulate(g)
		r.accumulate(-g)
	case OpMul:
		// Read both values before accumulating so the aliased case
		// (l == r) uses forward values, not half-updated state.
		lv, rv := l.value, r.value
		l.accumulate(g * rv)
		r.accumulate(g * lv)
	case OpDiv:
		lv, rv := l.value, r.value
		l.accumulate(g / rv)
		r.accumulate(-g * lv / (rv * rv))
	}
}
