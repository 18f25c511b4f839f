package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewImageTensor_Shape(t *testing.T) {
	tensor := NewImageTensor(128, 128)
	require.Equal(t, []int64{1, 128, 128, 3}, tensor.Shape)
	require.Len(t, tensor.Data, 128*128*3)
	require.NoError(t, tensor.Validate())
}

func TestTensor_SetPixelBGR(t *testing.T) {
	tensor := NewImageTensor(2, 2)
	tensor.SetPixel(1, 1, 255, 0, 51)

	i := (1*2 + 1) * Channels
	require.InDelta(t, 1.0, tensor.Data[i], 1e-6)
	require.InDelta(t, 0.0, tensor.Data[i+1], 1e-6)
	require.InDelta(t, 0.2, tensor.Data[i+2], 1e-6)
}

func TestTensor_ValidateMismatch(t *testing.T) {
	tensor := &Tensor{Shape: []int64{1, 4, 4, 3}, Data: make([]float32, 10)}
	err := tensor.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrPreprocessing))

	var nilTensor *Tensor
	require.Error(t, nilTensor.Validate())
}
