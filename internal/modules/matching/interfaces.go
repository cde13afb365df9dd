package matching

import (
	"context"

	"paintpro/internal/domain"
)

type RequestReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
}

// VendorRegistry is the eligibility gate: a vendor both has to exist
// and be approved before it can be bound to a request. IsEligible
// fails with the registry's not-found error for unknown vendors.
type VendorRegistry interface {
	IsEligible(ctx context.Context, vendorID int64) (bool, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByRequestID(ctx context.Context, requestID int64) (*domain.Assignment, error)
}
