package model

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"deepfake-detect/internal/domain/entity"
	"deepfake-detect/internal/domain/port"
)

// Exists проверяет, что по пути лежит обычный файл.
func Exists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", entity.ErrModelNotFound, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", entity.ErrModelNotFound, path)
	}
	return nil
}

// Loader загружает ONNX-модель по заданным параметрам.
type Loader struct {
	opts Options
	log  logrus.FieldLogger
}

// NewLoader создаёт загрузчик модели.
func NewLoader(opts Options, log logrus.FieldLogger) *Loader {
	return &Loader{opts: opts, log: log}
}

// Locate проверяет наличие файла модели.
func (l *Loader) Locate() error {
	return Exists(l.opts.ModelPath)
}

// Load открывает сессию ONNX Runtime.
func (l *Loader) Load(ctx context.Context) (port.Classifier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.log.WithFields(logrus.Fields{
		"model":  l.opts.ModelPath,
		"input":  l.opts.InputName,
		"output": l.opts.OutputName,
		"size":   l.opts.ImageSize,
	}).Debug("loading model")

	classifier, err := NewONNXClassifier(l.opts)
	if err != nil {
		return nil, err
	}
	return classifier, nil
}

var _ port.ModelLoader = (*Loader)(nil)
