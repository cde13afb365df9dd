package dashboard

import (
	"time"

	"paintpro/internal/domain"
)

type PhotoView struct {
	URL      string `json:"url,omitempty"`
	Type     string `json:"type,omitempty"`
	Degraded bool   `json:"degraded,omitempty"`
}

type CustomerProjectView struct {
	RequestID    int64                    `json:"request_id"`
	Rooms        string                   `json:"rooms"`
	Status       domain.RequestStatus     `json:"status"`
	Photos       []PhotoView              `json:"photos"`
	VendorName   string                   `json:"vendor_name,omitempty"`
	Price        float64                  `json:"price,omitempty"`
	BeforeImages []domain.AssignmentImage `json:"before_images,omitempty"`
	AfterImages  []domain.AssignmentImage `json:"after_images,omitempty"`
	Degraded     bool                     `json:"degraded,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
}

type CustomerView struct {
	Projects []CustomerProjectView `json:"projects"`
}

type VendorView struct {
	VendorID      int64               `json:"vendor_id"`
	Username      string              `json:"username"`
	Approval      domain.ApprovalStatus `json:"approval"`
	Designs       []domain.Design     `json:"designs"`
	Assignments   []domain.Assignment `json:"assignments"`
	TotalDesigns  int                 `json:"total_designs"`
	TotalViews    int64               `json:"total_views"`
	TotalLikes    int64               `json:"total_likes"`
	TotalEarnings float64             `json:"total_earnings"`
	CompletedJobs int                 `json:"completed_jobs"`
}

type RequestSummary struct {
	RequestID  int64                `json:"request_id"`
	CustomerID int64                `json:"customer_id"`
	Rooms      string               `json:"rooms"`
	Status     domain.RequestStatus `json:"status"`
	PhotoCount int                  `json:"photo_count"`
	CreatedAt  time.Time            `json:"created_at"`
}

type AdminView struct {
	VendorsByApproval map[domain.ApprovalStatus][]domain.Vendor  `json:"vendors_by_approval"`
	RequestsByStatus  map[domain.RequestStatus][]RequestSummary  `json:"requests_by_status"`
	Stats             AdminStats                                 `json:"stats"`
}

type AdminStats struct {
	TotalVendors      int `json:"total_vendors"`
	PendingVendors    int `json:"pending_vendors"`
	TotalRequests     int `json:"total_requests"`
	CompletedProjects int `json:"completed_projects"`
}
