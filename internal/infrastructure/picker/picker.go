// Package picker выбор изображения через системный диалог открытия файла.
package picker

import (
	"context"
	"strings"

	"deepfake-detect/internal/domain/entity"
	"deepfake-detect/internal/domain/port"
)

const (
	Title      = "Select an Image"
	FilterName = "Image Files"
)

// Patterns расширения, которые показывает диалог.
var Patterns = []string{"*.jpg", "*.png", "*.jpeg"}

// Dialog системный диалог выбора файла.
type Dialog struct{}

// NewDialog создаёт диалог для текущей платформы.
func NewDialog() *Dialog {
	return &Dialog{}
}

// Static возвращает заранее известный путь без диалога.
type Static string

// PickImage возвращает путь или ErrNoImageSelected для пустой строки.
func (s Static) PickImage(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return selected(string(s))
}

func selected(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", entity.ErrNoImageSelected
	}
	return path, nil
}

var (
	_ port.FilePicker = (*Dialog)(nil)
	_ port.FilePicker = Static("")
)
