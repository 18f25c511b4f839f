package entity

import "fmt"

// Channels число каналов цвета во входном тензоре модели.
const Channels = 3

// Tensor входные данные модели: одно изображение с batch-измерением.
// Раскладка NHWC, порядок каналов BGR, значения в диапазоне [0,1].
type Tensor struct {
	Shape []int64
	Data  []float32
}

// NewImageTensor создаёт пустой тензор формы [1, height, width, 3].
func NewImageTensor(height, width int) *Tensor {
	return &Tensor{
		Shape: []int64{1, int64(height), int64(width), Channels},
		Data:  make([]float32, height*width*Channels),
	}
}

// SetPixel записывает 8-битный пиксель, нормируя его к [0,1].
func (t *Tensor) SetPixel(x, y int, b, g, r uint8) {
	width := int(t.Shape[2])
	i := (y*width + x) * Channels
	t.Data[i] = float32(b) / 255.0
	t.Data[i+1] = float32(g) / 255.0
	t.Data[i+2] = float32(r) / 255.0
}

// Size возвращает число элементов по форме тензора.
func (t *Tensor) Size() int {
	if len(t.Shape) == 0 {
		return 0
	}
	n := 1
	for _, dim := range t.Shape {
		n *= int(dim)
	}
	return n
}

// Validate проверяет, что данные соответствуют форме.
func (t *Tensor) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil tensor", ErrPreprocessing)
	}
	if len(t.Shape) != 4 || t.Shape[0] != 1 || t.Shape[3] != Channels {
		return fmt.Errorf("%w: unexpected shape %v", ErrPreprocessing, t.Shape)
	}
	if size := t.Size(); size != len(t.Data) {
		return fmt.Errorf("%w: shape %v expects %d values, got %d", ErrPreprocessing, t.Shape, size, len(t.Data))
	}
	return nil
}
