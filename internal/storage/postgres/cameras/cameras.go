package camerastorage

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/zanzhit/camera_wall/internal/domain/errs"
	"github.com/zanzhit/camera_wall/internal/domain/models"
	"github.com/zanzhit/camera_wall/internal/storage/postgres"
)

type CameraStorage struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *CameraStorage {
	return &CameraStorage{
		db: db,
	}
}

func (s *CameraStorage) SaveCamera(cam models.Camera) (models.Camera, error) {
	const op = "storage.postgres.cameras.SaveCamera"

	query := fmt.Sprintf(`INSERT INTO %s (camera_id, name, stream_url, latitude, longitude) VALUES ($1, $2, $3, $4, $5) RETURNING *`, postgres.CamerasTable)

	err := s.db.QueryRowx(query, cam.CameraID, cam.Name, cam.StreamURL, cam.Latitude, cam.Longitude).StructScan(&cam)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return models.Camera{}, fmt.Errorf("%s: %w", op, errs.ErrCameraAlreadyExists)
		}

		return models.Camera{}, fmt.Errorf("%s: %w", op, err)
	}

	return cam, nil
}

func (s *CameraStorage) CamerasList() ([]models.Camera, error) {
	const op = "storage.postgres.cameras.CamerasList"

	query := fmt.Sprintf("SELECT camera_id, name, stream_url, latitude, longitude FROM %s ORDER BY name", postgres.CamerasTable)

	var cameras []models.Camera
	if err := s.db.Select(&cameras, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cameras, nil
}
