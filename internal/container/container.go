package container

import (
	"github.com/sirupsen/logrus"

	app "deepfake-detect/internal/application"
	"deepfake-detect/internal/domain/port"
)

type Container struct {
	UserService      *app.UserService
	DetectionService *app.DetectionService
}

func New(userRepo port.UserRepository, classifier port.Classifier, preprocessor port.Preprocessor, threshold float32, log logrus.FieldLogger) *Container {
	userService := app.NewUserService(userRepo)
	detectionService := app.NewDetectionService(classifier, preprocessor, threshold, log)

	return &Container{
		UserService:      userService,
		DetectionService: detectionService,
	}
}
