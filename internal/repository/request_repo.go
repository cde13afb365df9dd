package repository

import (
	"context"
	"errors"
	"time"

	"paintpro/internal/domain"

	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// requests carry no status column. Status is derived from the linked
// assignment on read, so it cannot drift.
type requestModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	CustomerID int64     `gorm:"column:customer_id;index"`
	RoomInfo   string    `gorm:"column:room_info"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (requestModel) TableName() string { return "requests" }

type requestPhotoModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	RequestID int64     `gorm:"column:request_id;index"`
	UploadID  string    `gorm:"column:upload_id"`
	URL       string    `gorm:"column:url"`
	Type      string    `gorm:"column:type"`
	Height    *float64  `gorm:"column:height"`
	Width     *float64  `gorm:"column:width"`
	Length    *float64  `gorm:"column:length"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (requestPhotoModel) TableName() string { return "request_photos" }

func toDomainRequest(m requestModel, photos []requestPhotoModel, a *domain.Assignment) *domain.Request {
	r := &domain.Request{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		RoomInfo:   m.RoomInfo,
		Photos:     []domain.RequestPhoto{},
		Assignment: a,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	for _, p := range photos {
		r.Photos = append(r.Photos, domain.RequestPhoto{
			ID:        p.ID,
			RequestID: p.RequestID,
			UploadID:  p.UploadID,
			URL:       p.URL,
			Type:      p.Type,
			Height:    p.Height,
			Width:     p.Width,
			Length:    p.Length,
			CreatedAt: p.CreatedAt,
		})
	}
	return r
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	m := requestModel{
		CustomerID: req.CustomerID,
		RoomInfo:   req.RoomInfo,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for i := range req.Photos {
			p := requestPhotoModel{
				RequestID: m.ID,
				UploadID:  req.Photos[i].UploadID,
				URL:       req.Photos[i].URL,
				Type:      req.Photos[i].Type,
				Height:    req.Photos[i].Height,
				Width:     req.Photos[i].Width,
				Length:    req.Photos[i].Length,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			req.Photos[i].ID = p.ID
			req.Photos[i].RequestID = p.RequestID
			req.Photos[i].CreatedAt = p.CreatedAt
		}
		return nil
	})
	if err != nil {
		return err
	}
	req.ID = m.ID
	req.CreatedAt = m.CreatedAt
	req.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	var m requestModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrate(ctx, m)
}

// List returns requests newest first, the only defined order.
func (r *RequestRepository) List(ctx context.Context) ([]domain.Request, error) {
	var ms []requestModel
	if tx := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrateAll(ctx, ms)
}

func (r *RequestRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Request, error) {
	var ms []requestModel
	tx := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return r.hydrateAll(ctx, ms)
}

func (r *RequestRepository) hydrateAll(ctx context.Context, ms []requestModel) ([]domain.Request, error) {
	out := make([]domain.Request, 0, len(ms))
	for _, m := range ms {
		req, err := r.hydrate(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, nil
}

func (r *RequestRepository) hydrate(ctx context.Context, m requestModel) (*domain.Request, error) {
	var photos []requestPhotoModel
	tx := r.db.WithContext(ctx).
		Where("request_id = ?", m.ID).
		Order("created_at ASC, id ASC").
		Find(&photos)
	if tx.Error != nil {
		return nil, tx.Error
	}

	var am assignmentModel
	var assignment *domain.Assignment
	err := r.db.WithContext(ctx).Where("request_id = ?", m.ID).First(&am).Error
	switch {
	case err == nil:
		var images []assignmentImageModel
		tx := r.db.WithContext(ctx).
			Where("assignment_id = ?", am.ID).
			Order("created_at ASC, id ASC").
			Find(&images)
		if tx.Error != nil {
			return nil, tx.Error
		}
		assignment = toDomainAssignment(am, images)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// unassigned, derived status stays pending
	default:
		return nil, err
	}

	return toDomainRequest(m, photos, assignment), nil
}
