// Package nn composes the autodiff engine into neurons, layers, and
// multi-layer perceptrons.
//
// The package contains no differentiation logic of its own: forward passes
// build graphs through the tensor layer, and training reads (value,
// gradient) pairs off the parameters after a backward pass on the loss.
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
	"github.com/flint-ml/flint/internal/tensor"
)

// Neuron is a single affine unit followed by an activation. Weights are a
// 1×in row and the bias is 1×1, both Xavier-initialized.
type Neuron struct {
	Weights    *tensor.Tensor
	Bias       *tensor.Tensor
	activation autodiff.Activation
}

// NewNeuron creates a neuron taking in inputs.
func NewNeuron(in int, act autodiff.Activation) *Neuron {
	return &Neuron{
		Weights:    tensor.Xavier(1, in),
		Bias:       tensor.Xavier(1, 1),
		activation: act,
	}
}

// Forward applies act(input · weightsᵀ + bias) to a 1×in input, producing a
// 1×1 tensor.
func (n *Neuron) Forward(input *tensor.Tensor) *tensor.Tensor {
	out := input.MatMul(n.Weights.Transpose()).Add(n.Bias)
	return tensor.Nonlinear(out, n.activation)
}

// Parameters returns the neuron's trainable scalars (weights then bias).
func (n *Neuron) Parameters() []*autodiff.Scalar {
	params := n.Weights.Scalars()
	return append(params, n.Bias.Scalars()...)
}

// Layer is a fully connected collection of neurons sharing one input.
type Layer struct {
	Neurons []*Neuron
}

// NewLayer creates a layer mapping in inputs to out outputs.
func NewLayer(in, out int, act autodiff.Activation) *Layer {
	neurons := make([]*Neuron, out)
	for i := range neurons {
		neurons[i] = NewNeuron(in, act)
	}
	return &Layer{Neurons: neurons}
}

// Forward applies every neuron to the 1×in input and collects the outputs
// into a 1×len(neurons) row.
func (l *Layer) Forward(input *tensor.Tensor) *tensor.Tensor {
	out := tensor.Zeros(1, len(l.Neurons))
	for i, neuron := range l.Neurons {
		out.Set(0, i, neuron.Forward(input).At(0, 0))
	}
	return out
}

// Parameters returns the trainable scalars of every neuron.
func (l *Layer) Parameters() []*autodiff.Scalar {
	var params []*autodiff.Scalar
	for _, neuron := range l.Neurons {
		params = append(params, neuron.Parameters()...)
	}
	return params
}

// MLP is a feed-forward network of fully connected layers.
type MLP struct {
	Layers []*Layer
}

// NewMLP creates a perceptron from consecutive layer sizes: sizes[0] inputs
// through len(sizes)-1 layers. Every layer uses the same activation.
func NewMLP(sizes []int, act autodiff.Activation) *MLP {
	layers := make([]*Layer, 0, len(sizes)-1)
	for i := 0; i < len(sizes)-1; i++ {
		layers = append(layers, NewLayer(sizes[i], sizes[i+1], act))
	}
	return &MLP{Layers: layers}
}

// Forward chains every layer over a 1×sizes[0] input.
func (m *MLP) Forward(input *tensor.Tensor) *tensor.Tensor {
	out := input
	for _, layer := range m.Layers {
		out = layer.Forward(out)
	}
	return out
}

// Parameters returns the trainable scalars of every layer.
func (m *MLP) Parameters() []*autodiff.Scalar {
	var params []*autodiff.Scalar
	for _, layer := range m.Layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}
