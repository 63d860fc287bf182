package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-ml/flint/internal/autodiff"
	"github.com/flint-ml/flint/internal/nn"
	"github.com/flint-ml/flint/internal/optim"
	"github.com/flint-ml/flint/internal/tensor"
)

// setParams gives every parameter a deterministic small value so training
// tests do not depend on the random initializer.
func setParams(params []*autodiff.Scalar) {
	for i, p := range params {
		p.SetValue(0.1 + 0.01*float64(i%7))
	}
}

func TestNeuron_Forward(t *testing.T) {
	neuron := nn.NewNeuron(3, autodiff.ActTanh)
	out := neuron.Forward(tensor.Row([]float64{1.0, -2.0, 0.5}))

	assert.Equal(t, 1, out.Rows())
	assert.Equal(t, 1, out.Cols())
	// tanh output stays in (-1, 1).
	assert.Greater(t, out.At(0, 0).Value(), -1.0)
	assert.Less(t, out.At(0, 0).Value(), 1.0)
}

func TestNeuron_Parameters(t *testing.T) {
	neuron := nn.NewNeuron(3, autodiff.ActReLU)
	params := neuron.Parameters()

	// 3 weights + 1 bias.
	require.Len(t, params, 4)
	assert.Same(t, neuron.Weights.At(0, 0), params[0])
	assert.Same(t, neuron.Bias.At(0, 0), params[3])
}

func TestLayer_Forward(t *testing.T) {
	layer := nn.NewLayer(3, 5, autodiff.ActSigmoid)
	out := layer.Forward(tensor.Row([]float64{0.5, 0.25, -0.75}))

	assert.Equal(t, 1, out.Rows())
	assert.Equal(t, 5, out.Cols())
}

func TestMLP_ParameterCount(t *testing.T) {
	model := nn.NewMLP([]int{3, 4, 4, 1}, autodiff.ActTanh)

	require.Len(t, model.Layers, 3)
	// 4*(3+1) + 4*(4+1) + 1*(4+1)
	assert.Len(t, model.Parameters(), 41)
}

func TestMLP_Forward(t *testing.T) {
	model := nn.NewMLP([]int{3, 4, 4, 1}, autodiff.ActTanh)
	out := model.Forward(tensor.Row([]float64{2.0, 3.0, -1.0}))

	assert.Equal(t, 1, out.Rows())
	assert.Equal(t, 1, out.Cols())
}

func TestMSE_Value(t *testing.T) {
	preds := []*tensor.Tensor{tensor.Row([]float64{1.0, 2.0})}
	targets := []*tensor.Tensor{tensor.Row([]float64{0.0, 4.0})}

	loss := nn.MSE(preds, targets)
	// (1-0)² + (2-4)² = 5
	assert.InDelta(t, 5.0, loss.Value(), 1e-12)
}

func TestMSE_LengthMismatchPanics(t *testing.T) {
	preds := []*tensor.Tensor{tensor.FromScalar(1.0)}
	assert.Panics(t, func() { nn.MSE(preds, nil) })
}

// TestMSE_GradientFlow differentiates the loss back to a leaf prediction
// input: d((p-t)²)/dp = 2(p-t).
func TestMSE_GradientFlow(t *testing.T) {
	pred := tensor.FromScalar(3.0)
	target := tensor.FromScalar(1.0)

	loss := nn.MSE([]*tensor.Tensor{pred}, []*tensor.Tensor{target})
	loss.Backward()

	assert.InDelta(t, 4.0, pred.At(0, 0).Grad(), 1e-12)
	assert.InDelta(t, -4.0, target.At(0, 0).Grad(), 1e-12)
}

// TestTraining_LossDecreases runs the end-to-end gradient-descent loop on
// the four-sample dataset with deterministic parameters and expects the
// loss to fall.
func TestTraining_LossDecreases(t *testing.T) {
	model := nn.NewMLP([]int{3, 4, 4, 1}, autodiff.ActTanh)
	params := model.Parameters()
	setParams(params)

	xTrain := []*tensor.Tensor{
		tensor.Row([]float64{2.0, 3.0, -1.0}),
		tensor.Row([]float64{3.0, -1.0, 0.5}),
		tensor.Row([]float64{0.5, 1.0, 1.0}),
		tensor.Row([]float64{1.0, 1.0, -1.0}),
	}
	yTrain := []*tensor.Tensor{
		tensor.FromScalar(1.0),
		tensor.FromScalar(-1.0),
		tensor.FromScalar(-1.0),
		tensor.FromScalar(1.0),
	}

	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.05})

	step := func() float64 {
		preds := make([]*tensor.Tensor, 0, len(xTrain))
		for _, input := range xTrain {
			preds = append(preds, model.Forward(input))
		}
		loss := nn.MSE(preds, yTrain)

		sgd.ZeroGrad(params)
		loss.Backward()
		sgd.Step(params)
		return loss.Value()
	}

	first := step()
	var last float64
	for i := 0; i < 100; i++ {
		last = step()
	}

	assert.Less(t, last, first, "loss should decrease under gradient descent")
}
