package entity

import "errors"

var (
	// ErrModelNotFound файл модели отсутствует по указанному пути.
	ErrModelNotFound = errors.New("model file not found")
	// ErrImageUnreadable изображение не удалось прочитать или декодировать.
	ErrImageUnreadable = errors.New("unable to read the image file")
	// ErrNoImageSelected пользователь закрыл диалог без выбора файла.
	ErrNoImageSelected = errors.New("no image selected")
	// ErrPreprocessing прочие ошибки подготовки изображения.
	ErrPreprocessing = errors.New("image preprocessing failed")
)
