package port

import "context"

// FilePicker выбор изображения пользователем
type FilePicker interface {
	// PickImage возвращает путь к файлу или entity.ErrNoImageSelected
	PickImage(ctx context.Context) (string, error)
}
