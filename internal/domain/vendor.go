package domain

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Vendor is a painter profile. Approval is the admin-controlled gate:
// only approved vendors may receive assignments. Approval is one-way
// once granted (reject after approve is refused).
type Vendor struct {
	ID         int64          `json:"id"`
	UserID     int64          `json:"user_id"`
	Username   string         `json:"username" validate:"required"`
	Email      string         `json:"email" validate:"required,email"`
	Phone      string         `json:"phone_number" validate:"required"`
	Experience string         `json:"experience,omitempty"`
	Approval   ApprovalStatus `json:"approval"`
	Designs    []Design       `json:"designs,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (v *Vendor) IsEligible() bool {
	return v.Approval == ApprovalApproved
}

// Design is one portfolio entry. Immutable after upload except the
// view/like counters.
type Design struct {
	ID          int64     `json:"id"`
	VendorID    int64     `json:"vendor_id"`
	ImageURL    string    `json:"image_url"`
	Title       string    `json:"title,omitempty"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description"`
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
}
