package checkpoint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flint-ml/flint/internal/autodiff"
	"github.com/flint-ml/flint/internal/checkpoint"
)

func params(values ...float64) []*autodiff.Scalar {
	out := make([]*autodiff.Scalar, len(values))
	for i, v := range values {
		out[i] = autodiff.New(v)
	}
	return out
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")

	src := params(0.5, -1.25, 3.0)
	require.NoError(t, checkpoint.Save(path, src))

	dst := params(0, 0, 0)
	require.NoError(t, checkpoint.Load(path, dst))

	for i := range src {
		assert.Equal(t, src[i].Value(), dst[i].Value())
	}
}

func TestLoad_CountMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, checkpoint.Save(path, params(1, 2)))

	err := checkpoint.Load(path, params(0, 0, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 values for 3 parameters")
}

func TestLoad_MissingFile(t *testing.T) {
	err := checkpoint.Load(filepath.Join(t.TempDir(), "absent.json"), nil)
	assert.Error(t, err)
}

func TestLoad_BadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"version":"99","params":[]}`), 0o644))

	err := checkpoint.Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	assert.Error(t, checkpoint.Load(path, nil))
}
