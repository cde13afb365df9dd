package catalog

import (
	"context"
	"errors"

	"paintpro/internal/domain"

	"gorm.io/gorm"
)

var ErrDesignNotFound = errors.New("design not found")

type DesignRepository interface {
	ListDesigns(ctx context.Context) ([]domain.Design, error)
	GetDesign(ctx context.Context, id int64) (*domain.Design, error)
	IncrementDesignCounter(ctx context.Context, id int64, column string) error
}

// Service is the public design gallery. Designs are immutable after
// upload; only the view/like counters move.
type Service struct {
	designs DesignRepository
}

func NewService(designs DesignRepository) *Service {
	return &Service{designs: designs}
}

func (s *Service) ListDesigns(ctx context.Context) ([]domain.Design, error) {
	return s.designs.ListDesigns(ctx)
}

// ViewDesign returns the design and bumps its view counter.
func (s *Service) ViewDesign(ctx context.Context, id int64) (*domain.Design, error) {
	d, err := s.designs.GetDesign(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDesignNotFound
		}
		return nil, err
	}

	if err := s.designs.IncrementDesignCounter(ctx, id, "views"); err != nil {
		return nil, err
	}
	d.Views++
	return d, nil
}

func (s *Service) LikeDesign(ctx context.Context, id int64) error {
	err := s.designs.IncrementDesignCounter(ctx, id, "likes")
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrDesignNotFound
	}
	return err
}
