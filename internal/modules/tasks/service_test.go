package tasks

import (
	"context"
	"testing"
	"time"

	"paintpro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockAssignmentRepo struct {
	assignments map[int64]*domain.Assignment
	nextImageID int64
}

func newMockAssignmentRepo(as ...*domain.Assignment) *mockAssignmentRepo {
	m := &mockAssignmentRepo{assignments: map[int64]*domain.Assignment{}}
	for _, a := range as {
		m.assignments[a.ID] = a
	}
	return m
}

func (m *mockAssignmentRepo) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	a, ok := m.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockAssignmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AssignmentStatus) error {
	a, ok := m.assignments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}

func (m *mockAssignmentRepo) AddImages(ctx context.Context, assignmentID int64, slot domain.ImageSlot, urls []string) error {
	a, ok := m.assignments[assignmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, u := range urls {
		m.nextImageID++
		img := domain.AssignmentImage{ID: m.nextImageID, AssignmentID: assignmentID, Slot: slot, URL: u}
		if slot == domain.SlotBefore {
			a.BeforeImages = append(a.BeforeImages, img)
		} else {
			a.AfterImages = append(a.AfterImages, img)
		}
	}
	return nil
}

func (m *mockAssignmentRepo) ListByVendor(ctx context.Context, vendorID int64) ([]domain.Assignment, error) {
	var out []domain.Assignment
	for _, a := range m.assignments {
		if a.VendorID == vendorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func pendingAssignment() *domain.Assignment {
	return &domain.Assignment{ID: 1, RequestID: 1, VendorID: 10, Price: 5000, Status: domain.AssignmentPending}
}

func TestAdvance_HappyPath(t *testing.T) {
	repo := newMockAssignmentRepo(pendingAssignment())
	svc := NewService(repo, false)

	a, err := svc.Advance(context.Background(), 1, domain.AssignmentInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentInProgress, a.Status)

	a, err = svc.Advance(context.Background(), 1, domain.AssignmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentCompleted, a.Status)
}

func TestAdvance_RefusesSkippedAndBackwardTransitions(t *testing.T) {
	cases := []struct {
		name string
		from domain.AssignmentStatus
		to   domain.AssignmentStatus
	}{
		{"skip to completed", domain.AssignmentPending, domain.AssignmentCompleted},
		{"back to pending", domain.AssignmentInProgress, domain.AssignmentPending},
		{"repeat current", domain.AssignmentInProgress, domain.AssignmentInProgress},
		{"completed is terminal", domain.AssignmentCompleted, domain.AssignmentInProgress},
		{"completed stays completed", domain.AssignmentCompleted, domain.AssignmentCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := pendingAssignment()
			a.Status = tc.from
			svc := NewService(newMockAssignmentRepo(a), false)

			_, err := svc.Advance(context.Background(), 1, tc.to)
			assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		})
	}
}

func TestAdvance_UnknownStatusValue(t *testing.T) {
	svc := NewService(newMockAssignmentRepo(pendingAssignment()), false)

	_, err := svc.Advance(context.Background(), 1, domain.AssignmentStatus("cancelled"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdvance_UnknownAssignment(t *testing.T) {
	svc := NewService(newMockAssignmentRepo(), false)

	_, err := svc.Advance(context.Background(), 42, domain.AssignmentInProgress)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdvance_AfterImagesToggle(t *testing.T) {
	a := pendingAssignment()
	a.Status = domain.AssignmentInProgress
	repo := newMockAssignmentRepo(a)
	svc := NewService(repo, true)

	_, err := svc.Advance(context.Background(), 1, domain.AssignmentCompleted)
	assert.ErrorIs(t, err, ErrAfterImagesRequired)

	_, err = svc.RecordImages(context.Background(), 1, domain.SlotAfter, []string{"/static/uploads/after.png"})
	require.NoError(t, err)

	got, err := svc.Advance(context.Background(), 1, domain.AssignmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentCompleted, got.Status)
}

func TestRecordImages_AppendsPerSlot(t *testing.T) {
	repo := newMockAssignmentRepo(pendingAssignment())
	svc := NewService(repo, false)

	a, err := svc.RecordImages(context.Background(), 1, domain.SlotBefore, []string{"/b1.png", "/b2.png"})
	require.NoError(t, err)
	assert.Len(t, a.BeforeImages, 2)
	assert.Empty(t, a.AfterImages)

	a, err = svc.RecordImages(context.Background(), 1, domain.SlotAfter, []string{"/a1.png"})
	require.NoError(t, err)
	assert.Len(t, a.BeforeImages, 2)
	assert.Len(t, a.AfterImages, 1)
	assert.Equal(t, domain.SlotAfter, a.AfterImages[0].Slot)
}

func TestRecordImages_RejectsBadInput(t *testing.T) {
	svc := NewService(newMockAssignmentRepo(pendingAssignment()), false)

	_, err := svc.RecordImages(context.Background(), 1, domain.ImageSlot("during"), []string{"/x.png"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.RecordImages(context.Background(), 1, domain.SlotBefore, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordImages_CompletedIsFrozen(t *testing.T) {
	a := pendingAssignment()
	a.Status = domain.AssignmentCompleted
	svc := NewService(newMockAssignmentRepo(a), false)

	_, err := svc.RecordImages(context.Background(), 1, domain.SlotAfter, []string{"/late.png"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestListByVendor(t *testing.T) {
	mine := pendingAssignment()
	other := &domain.Assignment{ID: 2, RequestID: 2, VendorID: 99, Status: domain.AssignmentPending}
	svc := NewService(newMockAssignmentRepo(mine, other), false)

	got, err := svc.ListByVendor(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}
