//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"deepfake-detect/internal/domain/entity"
)

// Preprocess декодирует изображение через OpenCV (порядок каналов BGR),
// масштабирует билинейно и переводит в float32 с множителем 1/255.
func (p *Preprocessor) Preprocess(ctx context.Context, imageData []byte) (*entity.Tensor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("%w: empty data", entity.ErrImageUnreadable)
	}

	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil || mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("%w: decode failed", entity.ErrImageUnreadable)
	}
	defer mat.Close()

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Pt(p.Size, p.Size), 0, 0, gocv.InterpolationLinear)

	scaled := gocv.NewMat()
	defer scaled.Close()
	resized.ConvertToWithParams(&scaled, gocv.MatTypeCV32FC3, 1.0/255.0, 0)

	data, err := scaled.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrPreprocessing, err)
	}

	tensor := entity.NewImageTensor(p.Size, p.Size)
	if len(data) != len(tensor.Data) {
		return nil, fmt.Errorf("%w: got %d values after resize", entity.ErrPreprocessing, len(data))
	}
	copy(tensor.Data, data)

	return tensor, nil
}
