//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"deepfake-detect/internal/domain/entity"
)

// Preprocess декодирует изображение стандартными декодерами, масштабирует
// билинейно и раскладывает пиксели в BGR, как это делает OpenCV.
func (p *Preprocessor) Preprocess(ctx context.Context, imageData []byte) (tensor *entity.Tensor, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("%w: empty data", entity.ErrImageUnreadable)
	}

	// декодеры x/image иногда паникуют на битых файлах
	defer func() {
		if r := recover(); r != nil {
			tensor = nil
			err = fmt.Errorf("%w: %v", entity.ErrPreprocessing, r)
		}
	}()

	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrImageUnreadable, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("%w: %s image has zero size", entity.ErrPreprocessing, format)
	}

	resized := resize.Resize(uint(p.Size), uint(p.Size), opaque(img), resize.Bilinear)
	rb := resized.Bounds()

	tensor = entity.NewImageTensor(p.Size, p.Size)
	for y := 0; y < p.Size; y++ {
		for x := 0; x < p.Size; x++ {
			c := color.NRGBAModel.Convert(resized.At(rb.Min.X+x, rb.Min.Y+y)).(color.NRGBA)
			tensor.SetPixel(x, y, c.B, c.G, c.R)
		}
	}

	return tensor, nil
}

// opaque отбрасывает альфа-канал, сохраняя цвет как есть (как IMREAD_COLOR).
// resize работает с premultiplied-цветом, и без этого прозрачные пиксели
// превратились бы в чёрные.
func opaque(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var c color.NRGBA
			switch src := img.(type) {
			case *image.NRGBA64:
				c64 := src.NRGBA64At(x, y)
				c = color.NRGBA{R: uint8(c64.R >> 8), G: uint8(c64.G >> 8), B: uint8(c64.B >> 8)}
			default:
				c = color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			}
			c.A = 255
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
