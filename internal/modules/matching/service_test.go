package matching

import (
	"context"
	"sync"
	"testing"

	"paintpro/internal/domain"
	"paintpro/internal/modules/vendor"
	"paintpro/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRequestReader struct {
	requests map[int64]*domain.Request
}

func (m *mockRequestReader) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	r, ok := m.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

type mockRegistry struct {
	eligible map[int64]bool // absent key means unknown vendor
}

func (m *mockRegistry) IsEligible(ctx context.Context, vendorID int64) (bool, error) {
	ok, known := m.eligible[vendorID]
	if !known {
		return false, vendor.ErrNotFound
	}
	return ok, nil
}

// mockAssignmentRepo enforces the same one-assignment-per-request rule
// the real repository gets from its unique index.
type mockAssignmentRepo struct {
	mu     sync.Mutex
	byReq  map[int64]*domain.Assignment
	nextID int64
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{byReq: map[int64]*domain.Assignment{}}
}

func (m *mockAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byReq[a.RequestID]; exists {
		return repository.ErrDuplicateRequest
	}
	m.nextID++
	a.ID = m.nextID
	m.byReq[a.RequestID] = a
	return nil
}

func (m *mockAssignmentRepo) GetByRequestID(ctx context.Context, requestID int64) (*domain.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byReq[requestID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func fixture() (*Service, *mockRequestReader, *mockRegistry, *mockAssignmentRepo) {
	requests := &mockRequestReader{requests: map[int64]*domain.Request{
		1: {ID: 1, CustomerID: 7},
	}}
	registry := &mockRegistry{eligible: map[int64]bool{
		10: true,  // approved
		11: false, // pending or rejected
	}}
	repo := newMockAssignmentRepo()
	return NewService(requests, registry, repo), requests, registry, repo
}

func TestAssign_Succeeds(t *testing.T) {
	svc, _, _, repo := fixture()

	a, err := svc.Assign(context.Background(), 1, 10, 5000)
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.RequestID)
	assert.Equal(t, int64(10), a.VendorID)
	assert.Equal(t, 5000.0, a.Price)
	assert.Equal(t, domain.AssignmentPending, a.Status)
	assert.False(t, a.AssignedAt.IsZero())

	stored, err := repo.GetByRequestID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, a.ID, stored.ID)
}

func TestAssign_UnknownRequest(t *testing.T) {
	svc, _, _, _ := fixture()

	_, err := svc.Assign(context.Background(), 99, 10, 5000)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestAssign_UnknownVendor(t *testing.T) {
	svc, _, _, _ := fixture()

	_, err := svc.Assign(context.Background(), 1, 99, 5000)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestAssign_VendorNotEligible(t *testing.T) {
	svc, _, _, _ := fixture()

	_, err := svc.Assign(context.Background(), 1, 11, 5000)
	assert.ErrorIs(t, err, ErrNotEligible)
}

// Both the request and the vendor are missing; the request check must
// report first.
func TestAssign_RequestCheckedBeforeVendor(t *testing.T) {
	svc, _, _, _ := fixture()

	_, err := svc.Assign(context.Background(), 99, 98, 5000)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestAssign_AlreadyAssignedPreCheck(t *testing.T) {
	svc, requests, _, _ := fixture()
	requests.requests[1].Assignment = &domain.Assignment{ID: 5, RequestID: 1, VendorID: 12}

	_, err := svc.Assign(context.Background(), 1, 10, 5000)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestAssign_DuplicateFromStore(t *testing.T) {
	svc, _, _, repo := fixture()

	// a row exists but the reader's snapshot predates it
	require.NoError(t, repo.Create(context.Background(), &domain.Assignment{RequestID: 1, VendorID: 12}))

	_, err := svc.Assign(context.Background(), 1, 10, 5000)
	assert.ErrorIs(t, err, ErrAlreadyAssigned)
}

func TestAssign_RejectsNegativePrice(t *testing.T) {
	svc, _, _, _ := fixture()

	_, err := svc.Assign(context.Background(), 1, 10, -1)
	assert.ErrorIs(t, err, ErrValidation)
}

// Two concurrent assigns against the same request: exactly one wins,
// the other gets the conflict.
func TestAssign_ConcurrentDoubleAssign(t *testing.T) {
	svc, _, _, _ := fixture()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Assign(context.Background(), 1, 10, 5000)
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrAlreadyAssigned):
			conflicts++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)
}

func TestGetForRequest_Unassigned(t *testing.T) {
	svc, _, _, _ := fixture()

	_, err := svc.GetForRequest(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
