package vision

import (
	"deepfake-detect/internal/domain/port"
)

// DefaultSize сторона квадратного входа модели.
const DefaultSize = 128

// Preprocessor готовит изображение для модели: resize до Size×Size,
// нормировка к [0,1] и batch-измерение. Реализация зависит от тега сборки:
// с тегом gocv используется OpenCV, иначе чистый Go.
type Preprocessor struct {
	Size int
}

// NewPreprocessor создаёт препроцессор для квадратного входа стороной size.
func NewPreprocessor(size int) *Preprocessor {
	if size <= 0 {
		size = DefaultSize
	}
	return &Preprocessor{Size: size}
}

var _ port.Preprocessor = (*Preprocessor)(nil)
