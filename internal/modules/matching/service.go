package matching

import (
	"context"
	"errors"
	"time"

	"paintpro/internal/domain"
	"paintpro/internal/modules/vendor"
	"paintpro/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	requests    RequestReader
	registry    VendorRegistry
	assignments AssignmentRepository
}

func NewService(requests RequestReader, registry VendorRegistry, assignments AssignmentRepository) *Service {
	return &Service{requests: requests, registry: registry, assignments: assignments}
}

// Assign binds one approved vendor to one unassigned request.
// Preconditions run in a fixed order, first failure wins: request
// exists, vendor exists, vendor approved, request unassigned. The final
// check-then-create is made atomic by the unique index on
// assignments.request_id, so two concurrent calls on the same request
// cannot both succeed.
func (s *Service) Assign(ctx context.Context, requestID, vendorID int64, price float64) (*domain.Assignment, error) {
	if requestID == 0 || vendorID == 0 || price < 0 {
		return nil, ErrValidation
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	eligible, err := s.registry.IsEligible(ctx, vendorID)
	if err != nil {
		if errors.Is(err, vendor.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	if !eligible {
		return nil, ErrNotEligible
	}

	// fast pre-check; the unique index below is the real guard
	if req.Assignment != nil {
		return nil, ErrAlreadyAssigned
	}

	a := &domain.Assignment{
		RequestID:  requestID,
		VendorID:   vendorID,
		Price:      price,
		Status:     domain.AssignmentPending,
		AssignedAt: time.Now(),
	}
	if err := s.assignments.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicateRequest) {
			return nil, ErrAlreadyAssigned
		}
		return nil, err
	}
	return a, nil
}

// GetForRequest returns the assignment bound to a request, if any.
func (s *Service) GetForRequest(ctx context.Context, requestID int64) (*domain.Assignment, error) {
	a, err := s.assignments.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return a, nil
}
