package domain

import "time"

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestAssigned   RequestStatus = "assigned"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
)

// RequestPhoto is a stored media reference plus the optional intake
// metadata. Dimensions are nil when the customer did not supply them.
type RequestPhoto struct {
	ID        int64     `json:"id"`
	RequestID int64     `json:"request_id"`
	UploadID  string    `json:"upload_id"`
	URL       string    `json:"url"`
	Type      string    `json:"type,omitempty"`
	Height    *float64  `json:"height,omitempty"`
	Width     *float64  `json:"width,omitempty"`
	Length    *float64  `json:"length,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Request is a customer's painting-job submission. It carries no status
// column of its own: Status() is always read off the linked assignment,
// so the two can never drift apart.
type Request struct {
	ID         int64          `json:"id"`
	CustomerID int64          `json:"customer_id"`
	RoomInfo   string         `json:"rooms"`
	Photos     []RequestPhoto `json:"photos"`
	Assignment *Assignment    `json:"assignment,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Status derives the request state from its assignment: pending until a
// vendor is bound, then it tracks the assignment's lifecycle exactly.
func (r *Request) Status() RequestStatus {
	if r.Assignment == nil {
		return RequestPending
	}
	switch r.Assignment.Status {
	case AssignmentInProgress:
		return RequestInProgress
	case AssignmentCompleted:
		return RequestCompleted
	default:
		return RequestAssigned
	}
}
