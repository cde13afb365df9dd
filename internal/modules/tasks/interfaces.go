package tasks

import (
	"context"

	"paintpro/internal/domain"
)

type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AssignmentStatus) error
	AddImages(ctx context.Context, assignmentID int64, slot domain.ImageSlot, urls []string) error
	ListByVendor(ctx context.Context, vendorID int64) ([]domain.Assignment, error)
}
