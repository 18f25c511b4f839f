package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"deepfake-detect/internal/domain/entity"
	"deepfake-detect/internal/domain/port"
)

// DetectionService классифицирует изображение как поддельное или настоящее.
type DetectionService struct {
	classifier   port.Classifier
	preprocessor port.Preprocessor
	threshold    float32
	log          logrus.FieldLogger
}

// NewDetectionService создаёт сервис проверки изображений.
func NewDetectionService(classifier port.Classifier, preprocessor port.Preprocessor, threshold float32, log logrus.FieldLogger) *DetectionService {
	return &DetectionService{
		classifier:   classifier,
		preprocessor: preprocessor,
		threshold:    threshold,
		log:          log,
	}
}

// CheckFile читает изображение с диска и классифицирует его.
func (s *DetectionService) CheckFile(ctx context.Context, path string) (*entity.Verdict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrImageUnreadable, err)
	}
	return s.CheckBytes(ctx, data)
}

// CheckBytes классифицирует уже прочитанное изображение.
func (s *DetectionService) CheckBytes(ctx context.Context, data []byte) (*entity.Verdict, error) {
	if s.classifier == nil {
		return nil, errors.New("classifier is not configured")
	}

	tensor, err := s.preprocessor.Preprocess(ctx, data)
	if err != nil {
		return nil, err
	}

	score, err := s.classifier.Predict(ctx, tensor)
	if err != nil {
		return nil, fmt.Errorf("model prediction failed: %w", err)
	}

	verdict := entity.NewVerdict(score, s.threshold)
	s.log.WithFields(logrus.Fields{
		"bytes": len(data),
		"shape": tensor.Shape,
		"score": score,
		"label": verdict.Label,
	}).Debug("image classified")

	return &verdict, nil
}
