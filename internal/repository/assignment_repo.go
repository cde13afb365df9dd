package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"paintpro/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateRequest is returned when an insert hits the unique index
// on assignments.request_id, i.e. the request is already assigned.
var ErrDuplicateRequest = errors.New("assignment already exists for request")

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

type assignmentModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	RequestID  int64     `gorm:"column:request_id;uniqueIndex:idx_assignments_request_id"`
	VendorID   int64     `gorm:"column:vendor_id;index"`
	Price      float64   `gorm:"column:price"`
	Status     string    `gorm:"column:status"`
	AssignedAt time.Time `gorm:"column:assigned_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (assignmentModel) TableName() string { return "assignments" }

type assignmentImageModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	AssignmentID int64     `gorm:"column:assignment_id;index"`
	Slot         string    `gorm:"column:slot"`
	URL          string    `gorm:"column:url"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (assignmentImageModel) TableName() string { return "assignment_images" }

func toDomainAssignment(m assignmentModel, images []assignmentImageModel) *domain.Assignment {
	a := &domain.Assignment{
		ID:           m.ID,
		RequestID:    m.RequestID,
		VendorID:     m.VendorID,
		Price:        m.Price,
		Status:       domain.AssignmentStatus(m.Status),
		BeforeImages: []domain.AssignmentImage{},
		AfterImages:  []domain.AssignmentImage{},
		AssignedAt:   m.AssignedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	for _, img := range images {
		di := domain.AssignmentImage{
			ID:           img.ID,
			AssignmentID: img.AssignmentID,
			Slot:         domain.ImageSlot(img.Slot),
			URL:          img.URL,
			CreatedAt:    img.CreatedAt,
		}
		if di.Slot == domain.SlotAfter {
			a.AfterImages = append(a.AfterImages, di)
		} else {
			a.BeforeImages = append(a.BeforeImages, di)
		}
	}
	return a
}

// Create inserts the assignment. The unique index on request_id is the
// serializing guard against double assignment: of two concurrent
// inserts for the same request exactly one lands, the other comes back
// as ErrDuplicateRequest.
func (r *AssignmentRepository) Create(ctx context.Context, a *domain.Assignment) error {
	m := assignmentModel{
		RequestID:  a.RequestID,
		VendorID:   a.VendorID,
		Price:      a.Price,
		Status:     string(a.Status),
		AssignedAt: a.AssignedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isDuplicateKey(tx.Error) {
			return ErrDuplicateRequest
		}
		return tx.Error
	}
	*a = *toDomainAssignment(m, nil)
	return nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	var m assignmentModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	images, err := r.imagesFor(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toDomainAssignment(m, images), nil
}

func (r *AssignmentRepository) GetByRequestID(ctx context.Context, requestID int64) (*domain.Assignment, error) {
	var m assignmentModel
	if tx := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&m); tx.Error != nil {
		return nil, tx.Error
	}
	images, err := r.imagesFor(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toDomainAssignment(m, images), nil
}

func (r *AssignmentRepository) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Assignment, error) {
	var ms []assignmentModel
	tx := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("assigned_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Assignment, 0, len(ms))
	for _, m := range ms {
		images, err := r.imagesFor(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDomainAssignment(m, images))
	}
	return out, nil
}

func (r *AssignmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AssignmentStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&assignmentModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AssignmentRepository) AddImages(ctx context.Context, assignmentID int64, slot domain.ImageSlot, urls []string) error {
	rows := make([]assignmentImageModel, 0, len(urls))
	for _, u := range urls {
		rows = append(rows, assignmentImageModel{
			AssignmentID: assignmentID,
			Slot:         string(slot),
			URL:          u,
		})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *AssignmentRepository) imagesFor(ctx context.Context, assignmentID int64) ([]assignmentImageModel, error) {
	var images []assignmentImageModel
	tx := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Order("created_at ASC, id ASC").
		Find(&images)
	return images, tx.Error
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// modernc sqlite reports constraint violations by message only
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
