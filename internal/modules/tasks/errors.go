package tasks

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("assignment not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrAfterImagesRequired     = errors.New("completion requires at least one after image")
)
