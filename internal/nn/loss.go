package nn

import (
	"github.com/pkg/errors"

	"github.com/flint-ml/flint/internal/autodiff"
	"github.com/flint-ml/flint/internal/tensor"
)

// MSE computes the sum of squared differences between paired prediction and
// target tensors, pairwise and cell by cell, as a single scalar graph root.
// Calling Backward on the result populates gradients for everything the
// predictions were computed from.
//
// It panics when the slices have different lengths; per-pair shape checks
// are enforced by tensor.Sub.
func MSE(preds, targets []*tensor.Tensor) *autodiff.Scalar {
	if len(preds) != len(targets) {
		panic(errors.Errorf("nn: MSE got %d predictions and %d targets",
			len(preds), len(targets)))
	}

	loss := autodiff.New(0.0)
	for i, pred := range preds {
		diff := pred.Sub(targets[i]).Pow(2)
		for row := 0; row < diff.Rows(); row++ {
			for col := 0; col < diff.Cols(); col++ {
				loss = loss.Add(diff.At(row, col))
			}
		}
	}
	return loss
}
