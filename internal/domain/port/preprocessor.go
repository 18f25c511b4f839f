package port

import (
	"context"

	"deepfake-detect/internal/domain/entity"
)

// Preprocessor приводит изображение к входному формату модели
type Preprocessor interface {
	// Preprocess декодирует изображение, масштабирует и нормирует его
	Preprocess(ctx context.Context, imageData []byte) (*entity.Tensor, error)
}
