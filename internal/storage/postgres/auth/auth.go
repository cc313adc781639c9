package authstorage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/zanzhit/camera_wall/internal/domain/constants"
	"github.com/zanzhit/camera_wall/internal/domain/errs"
	"github.com/zanzhit/camera_wall/internal/domain/models"
	"github.com/zanzhit/camera_wall/internal/storage/postgres"
)

type AuthStorage struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *AuthStorage {
	return &AuthStorage{db: db}
}

func (s *AuthStorage) SaveUser(email, userType string, passHash []byte) (string, error) {
	const op = "storage.postgres.auth.SaveUser"

	query := fmt.Sprintf("INSERT INTO %s (email, password_hash, is_admin) VALUES ($1, $2, $3) RETURNING id", postgres.UsersTable)

	var id string
	err := s.db.QueryRow(query, email, passHash, userType == constants.Admin).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return "", fmt.Errorf("%s: %w", op, errs.ErrUserExists)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *AuthStorage) User(email string) (models.User, error) {
	const op = "storage.postgres.auth.User"

	query := fmt.Sprintf("SELECT id, email, password_hash, is_admin FROM %s WHERE email = $1", postgres.UsersTable)

	var user models.User
	if err := s.db.Get(&user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, errs.ErrInvalidCredentials)
		}

		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if user.IsAdmin {
		user.UserType = constants.Admin
	} else {
		user.UserType = constants.User
	}

	return user, nil
}
