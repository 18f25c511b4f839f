//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"deepfake-detect/internal/domain/entity"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPreprocess_ShapeAndRange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solidImage(300, 200, color.NRGBA{R: 10, G: 120, B: 240, A: 255}), nil))

	p := NewPreprocessor(DefaultSize)
	tensor, err := p.Preprocess(context.Background(), buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, []int64{1, 128, 128, 3}, tensor.Shape)
	require.NoError(t, tensor.Validate())

	for _, v := range tensor.Data {
		require.GreaterOrEqual(t, v, float32(0))
		require.LessOrEqual(t, v, float32(1))
	}
}

func TestPreprocess_ChannelOrderIsBGR(t *testing.T) {
	data := encodePNG(t, solidImage(64, 48, color.NRGBA{R: 255, G: 102, B: 0, A: 255}))

	p := NewPreprocessor(16)
	tensor, err := p.Preprocess(context.Background(), data)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 16, 16, 3}, tensor.Shape)

	// центральный пиксель: B, G, R
	i := (8*16 + 8) * entity.Channels
	require.InDelta(t, 0.0, tensor.Data[i], 1.0/255)
	require.InDelta(t, 0.4, tensor.Data[i+1], 1.0/255)
	require.InDelta(t, 1.0, tensor.Data[i+2], 1.0/255)
}

func TestPreprocess_TransparentPixelsKeepColour(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{name: "nrgba", img: solidImage(32, 32, color.NRGBA{R: 200, G: 100, B: 50, A: 0})},
		{name: "nrgba64", img: func() image.Image {
			img := image.NewNRGBA64(image.Rect(0, 0, 32, 32))
			for y := 0; y < 32; y++ {
				for x := 0; x < 32; x++ {
					img.SetNRGBA64(x, y, color.NRGBA64{R: 200 << 8, G: 100 << 8, B: 50 << 8})
				}
			}
			return img
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tensor, err := NewPreprocessor(16).Preprocess(context.Background(), encodePNG(t, tt.img))
			require.NoError(t, err)

			i := (8*16 + 8) * entity.Channels
			require.InDelta(t, 50.0/255, tensor.Data[i], 1.0/255)
			require.InDelta(t, 100.0/255, tensor.Data[i+1], 1.0/255)
			require.InDelta(t, 200.0/255, tensor.Data[i+2], 1.0/255)
		})
	}
}

func TestOpaque_KeepsOpaqueImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	require.Same(t, img, opaque(img))
}

func TestPreprocess_Unreadable(t *testing.T) {
	p := NewPreprocessor(DefaultSize)

	_, err := p.Preprocess(context.Background(), nil)
	require.ErrorIs(t, err, entity.ErrImageUnreadable)

	_, err = p.Preprocess(context.Background(), []byte("definitely not an image"))
	require.ErrorIs(t, err, entity.ErrImageUnreadable)
}

func TestPreprocess_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPreprocessor(DefaultSize).Preprocess(ctx, []byte{1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewPreprocessor_DefaultSize(t *testing.T) {
	require.Equal(t, DefaultSize, NewPreprocessor(0).Size)
	require.Equal(t, 224, NewPreprocessor(224).Size)
}
