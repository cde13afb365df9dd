package tasks

import (
	"context"
	"errors"

	"paintpro/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	assignments AssignmentRepository

	// requireAfterImages gates the final transition on at least one
	// "after" photo. Open product question, so it is a toggle.
	requireAfterImages bool
}

func NewService(assignments AssignmentRepository, requireAfterImages bool) *Service {
	return &Service{assignments: assignments, requireAfterImages: requireAfterImages}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	a, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Advance moves the assignment one step forward:
// pending -> in_progress -> completed. Backward or skipped transitions
// are refused, and completed is terminal.
func (s *Service) Advance(ctx context.Context, id int64, newStatus domain.AssignmentStatus) (*domain.Assignment, error) {
	switch newStatus {
	case domain.AssignmentPending, domain.AssignmentInProgress, domain.AssignmentCompleted:
	default:
		return nil, ErrValidation
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !a.Status.CanAdvanceTo(newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if newStatus == domain.AssignmentCompleted && s.requireAfterImages && len(a.AfterImages) == 0 {
		return nil, ErrAfterImagesRequired
	}

	if err := s.assignments.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	a.Status = newStatus
	return a, nil
}

// RecordImages appends before/after photo references. Allowed in any
// state before completed.
func (s *Service) RecordImages(ctx context.Context, id int64, slot domain.ImageSlot, urls []string) (*domain.Assignment, error) {
	if slot != domain.SlotBefore && slot != domain.SlotAfter {
		return nil, ErrValidation
	}
	if len(urls) == 0 {
		return nil, ErrValidation
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status == domain.AssignmentCompleted {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.assignments.AddImages(ctx, id, slot, urls); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ListByVendor returns a vendor's assigned tasks, newest first.
func (s *Service) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Assignment, error) {
	return s.assignments.ListByVendor(ctx, vendorID)
}
