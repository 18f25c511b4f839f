package entity

import "fmt"

// DefaultThreshold порог, отделяющий поддельные изображения от настоящих.
const DefaultThreshold float32 = 0.5

// Label итоговый класс изображения.
type Label string

const (
	LabelFake Label = "fake"
	LabelReal Label = "real"
)

// Verdict результат классификации одного изображения.
type Verdict struct {
	Label     Label
	Score     float32 // сырой выход модели
	Threshold float32
}

// NewVerdict сравнивает выход модели с порогом.
// Значение, равное порогу, считается настоящим изображением.
func NewVerdict(score, threshold float32) Verdict {
	label := LabelReal
	if score > threshold {
		label = LabelFake
	}
	return Verdict{Label: label, Score: score, Threshold: threshold}
}

// IsFake сообщает, распознана ли подделка.
func (v Verdict) IsFake() bool {
	return v.Label == LabelFake
}

// Confidence уверенность в выбранном классе.
func (v Verdict) Confidence() float32 {
	if v.IsFake() {
		return v.Score
	}
	return 1 - v.Score
}

// Message строка для вывода пользователю.
func (v Verdict) Message() string {
	if v.IsFake() {
		return "Fake Image Detected!"
	}
	return "Real Image!"
}

func (v Verdict) String() string {
	return fmt.Sprintf("%s (score=%.4f, threshold=%.2f)", v.Label, v.Score, v.Threshold)
}
