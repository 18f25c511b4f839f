package model

import (
	"context"
	"errors"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"deepfake-detect/internal/domain/entity"
	"deepfake-detect/internal/domain/port"
)

// Options параметры загрузки модели.
type Options struct {
	ModelPath   string
	LibraryPath string // путь к libonnxruntime, пусто — поиск по умолчанию
	InputName   string
	OutputName  string
	ImageSize   int
}

// ONNXClassifier бинарный классификатор поверх ONNX Runtime.
// Входной и выходной тензоры выделяются один раз, поэтому Predict
// сериализуется мьютексом.
type ONNXClassifier struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

// NewONNXClassifier инициализирует окружение ONNX Runtime и открывает сессию.
func NewONNXClassifier(opts Options) (*ONNXClassifier, error) {
	if opts.LibraryPath != "" {
		ort.SetSharedLibraryPath(opts.LibraryPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
		}
	}

	size := int64(opts.ImageSize)
	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, size, size, entity.Channels))
	if err != nil {
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1))
	if err != nil {
		inputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(opts.ModelPath,
		[]string{opts.InputName}, []string{opts.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &ONNXClassifier{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Predict прогоняет тензор через модель и возвращает единственный выход.
func (c *ONNXClassifier) Predict(ctx context.Context, tensor *entity.Tensor) (float32, error) {
	if err := tensor.Validate(); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return 0, errors.New("classifier is closed")
	}

	input := c.inputTensor.GetData()
	if len(input) != len(tensor.Data) {
		return 0, fmt.Errorf("model expects %d values, got %d", len(input), len(tensor.Data))
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	copy(input, tensor.Data)
	if err := c.session.Run(); err != nil {
		return 0, fmt.Errorf("inference failed: %w", err)
	}

	output := c.outputTensor.GetData()
	if len(output) == 0 {
		return 0, errors.New("model returned empty output")
	}
	return output[0], nil
}

// Close освобождает сессию, тензоры и окружение.
func (c *ONNXClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	if c.inputTensor != nil {
		errs = append(errs, c.inputTensor.Destroy())
		c.inputTensor = nil
	}
	if c.outputTensor != nil {
		errs = append(errs, c.outputTensor.Destroy())
		c.outputTensor = nil
	}
	if c.session != nil {
		errs = append(errs, c.session.Destroy())
		c.session = nil
		errs = append(errs, ort.DestroyEnvironment())
	}
	return errors.Join(errs...)
}

var _ port.Classifier = (*ONNXClassifier)(nil)
