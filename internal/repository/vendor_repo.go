package repository

import (
	"context"
	"time"

	"paintpro/internal/domain"

	"gorm.io/gorm"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

type vendorModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	UserID     int64     `gorm:"column:user_id"`
	Username   string    `gorm:"column:username"`
	Email      string    `gorm:"column:email;uniqueIndex"`
	Phone      string    `gorm:"column:phone"`
	Experience string    `gorm:"column:experience"`
	Approval   string    `gorm:"column:approval"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (vendorModel) TableName() string { return "vendors" }

type designModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	VendorID    int64     `gorm:"column:vendor_id;index"`
	ImageURL    string    `gorm:"column:image_url"`
	Title       string    `gorm:"column:title"`
	Category    string    `gorm:"column:category"`
	Description string    `gorm:"column:description"`
	Views       int64     `gorm:"column:views"`
	Likes       int64     `gorm:"column:likes"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (designModel) TableName() string { return "designs" }

func toDomainVendor(m vendorModel, designs []designModel) *domain.Vendor {
	v := &domain.Vendor{
		ID:         m.ID,
		UserID:     m.UserID,
		Username:   m.Username,
		Email:      m.Email,
		Phone:      m.Phone,
		Experience: m.Experience,
		Approval:   domain.ApprovalStatus(m.Approval),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	for _, d := range designs {
		v.Designs = append(v.Designs, *toDomainDesign(d))
	}
	return v
}

func toDomainDesign(m designModel) *domain.Design {
	return &domain.Design{
		ID:          m.ID,
		VendorID:    m.VendorID,
		ImageURL:    m.ImageURL,
		Title:       m.Title,
		Category:    m.Category,
		Description: m.Description,
		Views:       m.Views,
		Likes:       m.Likes,
		CreatedAt:   m.CreatedAt,
	}
}

// CreateWithUser inserts the login principal and the vendor profile in
// one transaction. A failed profile insert rolls back the user row, so
// registration never leaves an orphan login behind.
func (r *VendorRepository) CreateWithUser(ctx context.Context, u *domain.User, v *domain.Vendor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		um := toUserModel(u)
		if err := tx.Create(&um).Error; err != nil {
			return err
		}
		*u = *toDomainUser(um)

		vm := vendorModel{
			UserID:     u.ID,
			Username:   v.Username,
			Email:      v.Email,
			Phone:      v.Phone,
			Experience: v.Experience,
			Approval:   string(v.Approval),
		}
		if err := tx.Create(&vm).Error; err != nil {
			return err
		}
		*v = *toDomainVendor(vm, nil)
		return nil
	})
}

func (r *VendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	m := vendorModel{
		UserID:     v.UserID,
		Username:   v.Username,
		Email:      v.Email,
		Phone:      v.Phone,
		Experience: v.Experience,
		Approval:   string(v.Approval),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVendor(m, nil)
	return nil
}

func (r *VendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	var m vendorModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	designs, err := r.designsFor(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toDomainVendor(m, designs), nil
}

// GetByUserID resolves the vendor profile behind a session principal.
func (r *VendorRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Vendor, error) {
	var m vendorModel
	if tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m); tx.Error != nil {
		return nil, tx.Error
	}
	designs, err := r.designsFor(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return toDomainVendor(m, designs), nil
}

func (r *VendorRepository) designsFor(ctx context.Context, vendorID int64) ([]designModel, error) {
	var designs []designModel
	tx := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at ASC, id ASC").
		Find(&designs)
	return designs, tx.Error
}

// UpdateApproval writes the new approval state for a single vendor.
func (r *VendorRepository) UpdateApproval(ctx context.Context, id int64, approval domain.ApprovalStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&vendorModel{}).
		Where("id = ?", id).
		Update("approval", string(approval))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VendorRepository) List(ctx context.Context) ([]domain.Vendor, error) {
	var ms []vendorModel
	if tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Vendor, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainVendor(m, nil))
	}
	return out, nil
}

func (r *VendorRepository) AddDesign(ctx context.Context, d *domain.Design) error {
	m := designModel{
		VendorID:    d.VendorID,
		ImageURL:    d.ImageURL,
		Title:       d.Title,
		Category:    d.Category,
		Description: d.Description,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*d = *toDomainDesign(m)
	return nil
}

func (r *VendorRepository) ListDesigns(ctx context.Context) ([]domain.Design, error) {
	var ms []designModel
	if tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Design, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainDesign(m))
	}
	return out, nil
}

func (r *VendorRepository) GetDesign(ctx context.Context, id int64) (*domain.Design, error) {
	var m designModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDesign(m), nil
}

// IncrementDesignCounter bumps views or likes atomically in the database.
func (r *VendorRepository) IncrementDesignCounter(ctx context.Context, id int64, column string) error {
	tx := r.db.WithContext(ctx).
		Model(&designModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
