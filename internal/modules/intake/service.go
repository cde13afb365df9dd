package intake

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"paintpro/internal/domain"
	"paintpro/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	requests RequestRepository
	media    MediaStore
}

func NewService(requests RequestRepository, media MediaStore) *Service {
	return &Service{requests: requests, media: media}
}

// CreateRequest validates the intake form, stores the photo payloads
// through the media store and persists the request in pending. All
// validation happens before the first byte is stored.
func (s *Service) CreateRequest(ctx context.Context, customerID int64, form CreateRequestForm, photos []*multipart.FileHeader) (*domain.Request, error) {
	if errs := validator.Validate(form); errs != nil {
		return nil, ErrValidation
	}
	if len(photos) == 0 {
		return nil, ErrNoPhotos
	}

	height, err := parseOptionalDimension(form.Height)
	if err != nil {
		return nil, ErrValidation
	}
	width, err := parseOptionalDimension(form.Width)
	if err != nil {
		return nil, ErrValidation
	}
	length, err := parseOptionalDimension(form.Length)
	if err != nil {
		return nil, ErrValidation
	}

	req := &domain.Request{
		CustomerID: customerID,
		RoomInfo:   form.Rooms,
	}
	for _, fh := range photos {
		stored, err := s.media.Store(ctx, customerID, fh)
		if err != nil {
			return nil, err
		}
		req.Photos = append(req.Photos, domain.RequestPhoto{
			UploadID: stored.ID,
			URL:      stored.FileURL,
			Type:     form.Type,
			Height:   height,
			Width:    width,
			Length:   length,
		})
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

// ListRequests returns requests newest first. The status filter matches
// against the derived status, the only one that exists.
func (s *Service) ListRequests(ctx context.Context, f Filter) ([]domain.Request, error) {
	var (
		reqs []domain.Request
		err  error
	)
	if f.CustomerID != 0 {
		reqs, err = s.requests.ListByCustomer(ctx, f.CustomerID)
	} else {
		reqs, err = s.requests.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	if f.Status == "" {
		return reqs, nil
	}

	want := domain.RequestStatus(f.Status)
	out := make([]domain.Request, 0, len(reqs))
	for _, r := range reqs {
		if r.Status() == want {
			out = append(out, r)
		}
	}
	return out, nil
}

// dimension fields are optional but must parse as numbers when present
func parseOptionalDimension(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
