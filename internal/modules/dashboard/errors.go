package dashboard

import "errors"

var (
	ErrUnknownRole = errors.New("unknown dashboard role")
	ErrNotFound    = errors.New("principal has no profile")
)
