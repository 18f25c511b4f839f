package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"deepfake-detect/internal/domain/entity"
	"deepfake-detect/internal/domain/port"
)

// Сообщения командной строки.
const (
	msgModelNotFound    = "Model file not found! Check the directory where it was saved."
	msgModelFound       = "Model file found! Loading model..."
	msgModelLoaded      = "Model loaded successfully!"
	msgNoImage          = "No image selected!"
	msgSelectedImage    = "Selected Image: %s"
	msgUnreadableImage  = "Error: Unable to read the image file!"
	msgProcessingError  = "Error processing image: %v"
	msgPreprocessFailed = "Image preprocessing failed! Please try another image."
)

// Runner однократная проверка: модель → выбор файла → подготовка → предсказание.
type Runner struct {
	Loader       port.ModelLoader
	Picker       port.FilePicker
	Preprocessor port.Preprocessor
	Threshold    float32
	Out          io.Writer
	Log          logrus.FieldLogger
}

// Run выполняет проверку и печатает результат в Out. Все ранние выходы
// возвращают ошибку, для которой Reported == true.
func (r *Runner) Run(ctx context.Context) (*entity.Verdict, error) {
	if err := r.Loader.Locate(); err != nil {
		r.println(msgModelNotFound)
		return nil, err
	}

	r.println(msgModelFound)
	classifier, err := r.Loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	defer func() {
		if err := classifier.Close(); err != nil {
			r.Log.WithError(err).Warn("failed to release model")
		}
	}()
	r.println(msgModelLoaded)

	path, err := r.Picker.PickImage(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrNoImageSelected) {
			r.println(msgNoImage)
		}
		return nil, err
	}
	r.println(fmt.Sprintf(msgSelectedImage, path))

	svc := NewDetectionService(classifier, r.Preprocessor, r.Threshold, r.Log)
	verdict, err := svc.CheckFile(ctx, path)
	switch {
	case err == nil:
	case errors.Is(err, entity.ErrImageUnreadable):
		r.println(msgUnreadableImage)
		r.println(msgPreprocessFailed)
		return nil, err
	case errors.Is(err, entity.ErrPreprocessing):
		r.println(fmt.Sprintf(msgProcessingError, err))
		r.println(msgPreprocessFailed)
		return nil, err
	default:
		return nil, err
	}

	r.Log.WithField("path", path).Info(verdict.String())
	r.println(verdict.Message())

	return verdict, nil
}

func (r *Runner) println(line string) {
	fmt.Fprintln(r.Out, line)
}

// Reported сообщает, что ошибка уже показана пользователю в Run.
func Reported(err error) bool {
	return errors.Is(err, entity.ErrModelNotFound) ||
		errors.Is(err, entity.ErrNoImageSelected) ||
		errors.Is(err, entity.ErrImageUnreadable) ||
		errors.Is(err, entity.ErrPreprocessing)
}
