package dashboard

import (
	"context"
	"errors"
	"testing"

	"paintpro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRequestReader struct {
	requests []domain.Request
}

func (m *mockRequestReader) List(ctx context.Context) ([]domain.Request, error) {
	return m.requests, nil
}

func (m *mockRequestReader) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Request, error) {
	var out []domain.Request
	for _, r := range m.requests {
		if r.CustomerID == customerID {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockVendorReader struct {
	vendors []domain.Vendor
}

func (m *mockVendorReader) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	for i := range m.vendors {
		if m.vendors[i].ID == id {
			return &m.vendors[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVendorReader) GetByUserID(ctx context.Context, userID int64) (*domain.Vendor, error) {
	for i := range m.vendors {
		if m.vendors[i].UserID == userID {
			return &m.vendors[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVendorReader) List(ctx context.Context) ([]domain.Vendor, error) {
	return m.vendors, nil
}

type mockAssignmentReader struct {
	assignments []domain.Assignment
}

func (m *mockAssignmentReader) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Assignment, error) {
	var out []domain.Assignment
	for _, a := range m.assignments {
		if a.VendorID == vendorID {
			out = append(out, a)
		}
	}
	return out, nil
}

type mockMediaResolver struct {
	broken map[string]bool
}

func (m *mockMediaResolver) ResolveURL(ctx context.Context, uploadID string) (string, error) {
	if m.broken[uploadID] {
		return "", errors.New("upload missing")
	}
	return "/static/uploads/" + uploadID + ".png", nil
}

func TestDashboardFor_UnknownRole(t *testing.T) {
	svc := NewService(&mockRequestReader{}, &mockVendorReader{}, &mockAssignmentReader{}, &mockMediaResolver{})

	_, err := svc.DashboardFor(context.Background(), "auditor", 1)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestCustomerView_ResolvesPhotosAndVendor(t *testing.T) {
	requests := &mockRequestReader{requests: []domain.Request{
		{
			ID:         1,
			CustomerID: 7,
			RoomInfo:   "Living Room",
			Photos:     []domain.RequestPhoto{{UploadID: "p1", Type: "interior"}},
			Assignment: &domain.Assignment{VendorID: 3, Price: 5000, Status: domain.AssignmentInProgress},
		},
	}}
	vendors := &mockVendorReader{vendors: []domain.Vendor{{ID: 3, Username: "Painter"}}}
	svc := NewService(requests, vendors, &mockAssignmentReader{}, &mockMediaResolver{})

	view, err := svc.CustomerView(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, view.Projects, 1)

	p := view.Projects[0]
	assert.Equal(t, domain.RequestInProgress, p.Status)
	assert.Equal(t, "Painter", p.VendorName)
	assert.Equal(t, 5000.0, p.Price)
	assert.False(t, p.Degraded)
	require.Len(t, p.Photos, 1)
	assert.Equal(t, "/static/uploads/p1.png", p.Photos[0].URL)
}

// One photo's media lookup fails; that photo and its project are marked
// degraded, the rest of the view is untouched.
func TestCustomerView_DegradedPhoto(t *testing.T) {
	requests := &mockRequestReader{requests: []domain.Request{
		{
			ID:         1,
			CustomerID: 7,
			Photos: []domain.RequestPhoto{
				{UploadID: "ok"},
				{UploadID: "gone"},
			},
		},
		{ID: 2, CustomerID: 7, Photos: []domain.RequestPhoto{{UploadID: "ok2"}}},
	}}
	media := &mockMediaResolver{broken: map[string]bool{"gone": true}}
	svc := NewService(requests, &mockVendorReader{}, &mockAssignmentReader{}, media)

	view, err := svc.CustomerView(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, view.Projects, 2)

	assert.True(t, view.Projects[0].Degraded)
	require.Len(t, view.Projects[0].Photos, 2)
	assert.False(t, view.Projects[0].Photos[0].Degraded)
	assert.True(t, view.Projects[0].Photos[1].Degraded)
	assert.Empty(t, view.Projects[0].Photos[1].URL)

	assert.False(t, view.Projects[1].Degraded)
}

func TestVendorView_Totals(t *testing.T) {
	vendors := &mockVendorReader{vendors: []domain.Vendor{{
		ID:       3,
		UserID:   20,
		Username: "Painter",
		Approval: domain.ApprovalApproved,
		Designs: []domain.Design{
			{ID: 1, Views: 10, Likes: 2},
			{ID: 2, Views: 5, Likes: 1},
		},
	}}}
	assignments := &mockAssignmentReader{assignments: []domain.Assignment{
		{ID: 1, VendorID: 3, Price: 5000, Status: domain.AssignmentCompleted},
		{ID: 2, VendorID: 3, Price: 3000, Status: domain.AssignmentPending},
		{ID: 3, VendorID: 99, Price: 9999, Status: domain.AssignmentCompleted},
	}}
	svc := NewService(&mockRequestReader{}, vendors, assignments, &mockMediaResolver{})

	view, err := svc.VendorView(context.Background(), 20)
	require.NoError(t, err)

	assert.Equal(t, 2, view.TotalDesigns)
	assert.Equal(t, int64(15), view.TotalViews)
	assert.Equal(t, int64(3), view.TotalLikes)
	// pending work counts toward earnings
	assert.Equal(t, 8000.0, view.TotalEarnings)
	assert.Equal(t, 1, view.CompletedJobs)
	assert.Len(t, view.Assignments, 2)
}

func TestVendorView_NoProfile(t *testing.T) {
	svc := NewService(&mockRequestReader{}, &mockVendorReader{}, &mockAssignmentReader{}, &mockMediaResolver{})

	_, err := svc.VendorView(context.Background(), 20)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminView_Partitions(t *testing.T) {
	vendors := &mockVendorReader{vendors: []domain.Vendor{
		{ID: 1, Approval: domain.ApprovalPending},
		{ID: 2, Approval: domain.ApprovalApproved},
		{ID: 3, Approval: domain.ApprovalRejected},
		{ID: 4, Approval: domain.ApprovalPending},
	}}
	requests := &mockRequestReader{requests: []domain.Request{
		{ID: 1, CustomerID: 7},
		{ID: 2, CustomerID: 7, Assignment: &domain.Assignment{Status: domain.AssignmentPending}},
		{ID: 3, CustomerID: 8, Assignment: &domain.Assignment{Status: domain.AssignmentCompleted}},
	}}
	svc := NewService(requests, vendors, &mockAssignmentReader{}, &mockMediaResolver{})

	view, err := svc.AdminView(context.Background())
	require.NoError(t, err)

	assert.Len(t, view.VendorsByApproval[domain.ApprovalPending], 2)
	assert.Len(t, view.VendorsByApproval[domain.ApprovalApproved], 1)
	assert.Len(t, view.VendorsByApproval[domain.ApprovalRejected], 1)

	assert.Len(t, view.RequestsByStatus[domain.RequestPending], 1)
	assert.Len(t, view.RequestsByStatus[domain.RequestAssigned], 1)
	assert.Len(t, view.RequestsByStatus[domain.RequestCompleted], 1)

	assert.Equal(t, 4, view.Stats.TotalVendors)
	assert.Equal(t, 2, view.Stats.PendingVendors)
	assert.Equal(t, 3, view.Stats.TotalRequests)
	assert.Equal(t, 1, view.Stats.CompletedProjects)
}
