package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrInvalidPlan        = errors.New("invalid plan")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidService     = errors.New("invalid service")
	ErrInvalidContent     = errors.New("invalid content")
)
