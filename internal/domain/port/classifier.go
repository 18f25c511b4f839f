package port

import (
	"context"

	"deepfake-detect/internal/domain/entity"
)

// Classifier обёртка над предобученной моделью
type Classifier interface {
	// Predict возвращает вероятность того, что изображение поддельное
	Predict(ctx context.Context, tensor *entity.Tensor) (float32, error)

	// Close освобождает ресурсы модели
	Close() error
}

// ModelLoader находит и загружает артефакт модели
type ModelLoader interface {
	// Locate проверяет наличие файла модели, возвращает entity.ErrModelNotFound
	Locate() error

	// Load загружает модель в память
	Load(ctx context.Context) (Classifier, error)
}
