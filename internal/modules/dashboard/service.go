package dashboard

import (
	"context"
	"errors"

	"paintpro/internal/domain"

	"gorm.io/gorm"
)

// Service is the pure read side: it composes vendor, request and
// assignment state into per-role projections and keeps no state of its
// own. Metrics are recomputed on every read.
type Service struct {
	requests    RequestReader
	vendors     VendorReader
	assignments AssignmentReader
	media       MediaResolver
}

func NewService(requests RequestReader, vendors VendorReader, assignments AssignmentReader, media MediaResolver) *Service {
	return &Service{requests: requests, vendors: vendors, assignments: assignments, media: media}
}

// DashboardFor dispatches on the session role claim.
func (s *Service) DashboardFor(ctx context.Context, role string, principalID int64) (any, error) {
	switch domain.UserRole(role) {
	case domain.RoleCustomer:
		return s.CustomerView(ctx, principalID)
	case domain.RoleVendor:
		return s.VendorView(ctx, principalID)
	case domain.RoleAdmin:
		return s.AdminView(ctx)
	default:
		return nil, ErrUnknownRole
	}
}

func (s *Service) CustomerView(ctx context.Context, customerID int64) (*CustomerView, error) {
	reqs, err := s.requests.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	view := &CustomerView{Projects: make([]CustomerProjectView, 0, len(reqs))}
	for _, r := range reqs {
		p := CustomerProjectView{
			RequestID: r.ID,
			Rooms:     r.RoomInfo,
			Status:    r.Status(),
			Photos:    make([]PhotoView, 0, len(r.Photos)),
			CreatedAt: r.CreatedAt,
		}

		for _, photo := range r.Photos {
			url, err := s.media.ResolveURL(ctx, photo.UploadID)
			if err != nil {
				// media store unreachable for this photo: mark and move on
				p.Photos = append(p.Photos, PhotoView{Type: photo.Type, Degraded: true})
				p.Degraded = true
				continue
			}
			p.Photos = append(p.Photos, PhotoView{URL: url, Type: photo.Type})
		}

		if r.Assignment != nil {
			p.Price = r.Assignment.Price
			p.BeforeImages = r.Assignment.BeforeImages
			p.AfterImages = r.Assignment.AfterImages

			v, err := s.vendors.GetByID(ctx, r.Assignment.VendorID)
			if err != nil {
				p.Degraded = true
			} else {
				p.VendorName = v.Username
			}
		}

		view.Projects = append(view.Projects, p)
	}
	return view, nil
}

func (s *Service) VendorView(ctx context.Context, userID int64) (*VendorView, error) {
	v, err := s.vendors.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	assignments, err := s.assignments.ListByVendor(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	view := &VendorView{
		VendorID:    v.ID,
		Username:    v.Username,
		Approval:    v.Approval,
		Designs:     v.Designs,
		Assignments: assignments,
	}
	view.TotalDesigns = len(v.Designs)
	for _, d := range v.Designs {
		view.TotalViews += d.Views
		view.TotalLikes += d.Likes
	}
	// earnings include every assignment regardless of status; pending
	// work counts toward the total
	for _, a := range assignments {
		view.TotalEarnings += a.Price
		if a.Status == domain.AssignmentCompleted {
			view.CompletedJobs++
		}
	}
	return view, nil
}

func (s *Service) AdminView(ctx context.Context) (*AdminView, error) {
	vendors, err := s.vendors.List(ctx)
	if err != nil {
		return nil, err
	}
	reqs, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}

	view := &AdminView{
		VendorsByApproval: map[domain.ApprovalStatus][]domain.Vendor{},
		RequestsByStatus:  map[domain.RequestStatus][]RequestSummary{},
	}

	for _, v := range vendors {
		view.VendorsByApproval[v.Approval] = append(view.VendorsByApproval[v.Approval], v)
		view.Stats.TotalVendors++
		if v.Approval == domain.ApprovalPending {
			view.Stats.PendingVendors++
		}
	}

	for _, r := range reqs {
		status := r.Status()
		view.RequestsByStatus[status] = append(view.RequestsByStatus[status], RequestSummary{
			RequestID:  r.ID,
			CustomerID: r.CustomerID,
			Rooms:      r.RoomInfo,
			Status:     status,
			PhotoCount: len(r.Photos),
			CreatedAt:  r.CreatedAt,
		})
		view.Stats.TotalRequests++
		if status == domain.RequestCompleted {
			view.Stats.CompletedProjects++
		}
	}
	return view, nil
}
