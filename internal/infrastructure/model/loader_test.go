package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"deepfake-detect/internal/domain/entity"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.onnx")
	require.NoError(t, os.WriteFile(path, []byte("onnx"), 0o644))

	require.NoError(t, Exists(path))
	require.ErrorIs(t, Exists(filepath.Join(dir, "missing.onnx")), entity.ErrModelNotFound)
	require.ErrorIs(t, Exists(dir), entity.ErrModelNotFound)
}

func TestLoader_Locate(t *testing.T) {
	log := logrus.New()
	loader := NewLoader(Options{ModelPath: filepath.Join(t.TempDir(), "nope.onnx")}, log)

	err := loader.Locate()
	require.ErrorIs(t, err, entity.ErrModelNotFound)
	require.Contains(t, err.Error(), "nope.onnx")
}
