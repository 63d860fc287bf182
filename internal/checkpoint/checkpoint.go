// Package checkpoint saves and restores model parameter values as JSON.
//
// A checkpoint captures only parameter values, in the order Parameters()
// yields them; graph structure and gradients are rebuilt by the program
// that loads the checkpoint.
package checkpoint

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/flint-ml/flint/internal/autodiff"
)

// Version identifies the checkpoint file layout.
const Version = "1"

// Checkpoint is the serialized form of a parameter set.
type Checkpoint struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Params    []float64 `json:"params"`
}

// Save writes the current values of params to path.
func Save(path string, params []*autodiff.Scalar) error {
	ckpt := Checkpoint{
		Version:   Version,
		CreatedAt: time.Now().UTC(),
		Params:    make([]float64, len(params)),
	}
	for i, p := range params {
		ckpt.Params[i] = p.Value()
	}

	data, err := json.MarshalIndent(ckpt, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "checkpoint: marshal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WithMessagef(err, "checkpoint: write %s", path)
	}
	return nil
}

// Load reads a checkpoint from path and applies its values to params in
// order. The parameter count must match the checkpoint exactly.
func Load(path string, params []*autodiff.Scalar) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WithMessagef(err, "checkpoint: read %s", path)
	}

	var ckpt Checkpoint
	if err := json.Unmarshal(data, &ckpt); err != nil {
		return errors.WithMessagef(err, "checkpoint: parse %s", path)
	}
	if ckpt.Version != Version {
		return errors.Errorf("checkpoint: unsupported version %q", ckpt.Version)
	}
	if len(ckpt.Params) != len(params) {
		return errors.Errorf("checkpoint: %d values for %d parameters",
			len(ckpt.Params), len(params))
	}

	for i, v := range ckpt.Params {
		params[i].SetValue(v)
	}
	return nil
}
