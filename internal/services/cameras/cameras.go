package cameraservice

import (
	"fmt"
	"log/slog"

	"github.com/lithammer/shortuuid/v3"
	"github.com/zanzhit/camera_wall/internal/domain/models"
	"github.com/zanzhit/camera_wall/internal/lib/sl"
)

type CameraService struct {
	log          *slog.Logger
	cameraSaver  CameraSaver
	cameraLister CameraLister
}

type CameraSaver interface {
	SaveCamera(cam models.Camera) (models.Camera, error)
}

type CameraLister interface {
	CamerasList() ([]models.Camera, error)
}

func New(log *slog.Logger, cameraSaver CameraSaver, cameraLister CameraLister) *CameraService {
	return &CameraService{
		log:          log,
		cameraSaver:  cameraSaver,
		cameraLister: cameraLister,
	}
}

func (s *CameraService) SaveCamera(cam models.Camera) (models.Camera, error) {
	const op = "service.cameras.SaveCamera"

	log := s.log.With(
		slog.String("op", op),
		slog.String("name", cam.Name),
	)

	log.Info("save camera")

	cam.CameraID = shortuuid.New()

	cam, err := s.cameraSaver.SaveCamera(cam)
	if err != nil {
		log.Error("failed to save camera", sl.Err(err))

		return models.Camera{}, fmt.Errorf("%s: %w", op, err)
	}

	return cam, nil
}

// Cameras lists the registry. It satisfies the feed service's FeedProvider,
// so the registry can stand in for an upstream feed.
func (s *CameraService) Cameras() ([]models.Camera, error) {
	const op = "service.cameras.Cameras"

	cameras, err := s.cameraLister.CamerasList()
	if err != nil {
		s.log.Error("failed to list cameras", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cameras, nil
}
