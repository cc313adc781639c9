package errs

import "errors"

var (
	ErrUserType           = errors.New("wrong user type")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrCameraAlreadyExists = errors.New("camera already exists")

	ErrBadFeedFormat   = errors.New("feed is not a list of cameras")
	ErrSessionNotFound = errors.New("feed session not found")

	ErrNoForecast = errors.New("forecast is not available")
)
