package intake

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNoPhotos   = errors.New("at least one photo is required")
	ErrNotFound   = errors.New("request not found")
)
