package domain

import "time"

type AssignmentStatus string

const (
	AssignmentPending    AssignmentStatus = "pending"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
)

// CanAdvanceTo reports whether next is the immediate successor of s.
// pending -> in_progress -> completed; completed is terminal.
func (s AssignmentStatus) CanAdvanceTo(next AssignmentStatus) bool {
	switch s {
	case AssignmentPending:
		return next == AssignmentInProgress
	case AssignmentInProgress:
		return next == AssignmentCompleted
	default:
		return false
	}
}

type ImageSlot string

const (
	SlotBefore ImageSlot = "before"
	SlotAfter  ImageSlot = "after"
)

type AssignmentImage struct {
	ID           int64     `json:"id"`
	AssignmentID int64     `json:"assignment_id"`
	Slot         ImageSlot `json:"slot"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Assignment binds exactly one vendor to exactly one request. At most
// one assignment may ever exist per request; the assignments table
// enforces this with a unique index on request_id. Once created it is
// permanent except for status progression and image attachments.
type Assignment struct {
	ID           int64             `json:"id"`
	RequestID    int64             `json:"request_id"`
	VendorID     int64             `json:"vendor_id"`
	Price        float64           `json:"price"`
	Status       AssignmentStatus  `json:"status"`
	BeforeImages []AssignmentImage `json:"before_images"`
	AfterImages  []AssignmentImage `json:"after_images"`
	AssignedAt   time.Time         `json:"assigned_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
