package matching

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrRequestNotFound = errors.New("request not found")
	ErrVendorNotFound  = errors.New("vendor not found")
	ErrNotEligible     = errors.New("vendor is not approved for assignments")
	ErrAlreadyAssigned = errors.New("request already assigned")
)
