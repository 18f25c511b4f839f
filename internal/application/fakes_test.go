package app

import (
	"context"
	"errors"

	"deepfake-detect/internal/domain/entity"
	"deepfake-detect/internal/domain/port"
)

type fakeClassifier struct {
	score  float32
	err    error
	calls  int
	closed bool
}

func (c *fakeClassifier) Predict(ctx context.Context, tensor *entity.Tensor) (float32, error) {
	c.calls++
	if err := tensor.Validate(); err != nil {
		return 0, err
	}
	return c.score, c.err
}

func (c *fakeClassifier) Close() error {
	c.closed = true
	return nil
}

type fakePreprocessor struct {
	err error
}

func (p *fakePreprocessor) Preprocess(ctx context.Context, data []byte) (*entity.Tensor, error) {
	if p.err != nil {
		return nil, p.err
	}
	return entity.NewImageTensor(4, 4), nil
}

type fakeLoader struct {
	locateErr  error
	loadErr    error
	classifier *fakeClassifier
}

func (l *fakeLoader) Locate() error { return l.locateErr }

func (l *fakeLoader) Load(ctx context.Context) (port.Classifier, error) {
	if l.loadErr != nil {
		return nil, l.loadErr
	}
	return l.classifier, nil
}

type fakePicker struct {
	path string
	err  error
}

func (p fakePicker) PickImage(ctx context.Context) (string, error) {
	return p.path, p.err
}

var errBoom = errors.New("boom")
