package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrUserExists         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrSessionNotFound    = errors.New("session not found")

	ErrItemNotFound     = errors.New("item not found")
	ErrItemNotAvailable = errors.New("item is not available")
	ErrReportNotFound   = errors.New("report not found")
	ErrForbidden        = errors.New("access forbidden")
)
