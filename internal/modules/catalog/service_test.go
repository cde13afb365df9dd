package catalog

import (
	"context"
	"testing"

	"paintpro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockDesignRepo struct {
	designs map[int64]*domain.Design
}

func (m *mockDesignRepo) ListDesigns(ctx context.Context) ([]domain.Design, error) {
	out := make([]domain.Design, 0, len(m.designs))
	for _, d := range m.designs {
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockDesignRepo) GetDesign(ctx context.Context, id int64) (*domain.Design, error) {
	d, ok := m.designs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *mockDesignRepo) IncrementDesignCounter(ctx context.Context, id int64, column string) error {
	d, ok := m.designs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	switch column {
	case "views":
		d.Views++
	case "likes":
		d.Likes++
	}
	return nil
}

func TestViewDesign_BumpsCounter(t *testing.T) {
	repo := &mockDesignRepo{designs: map[int64]*domain.Design{
		1: {ID: 1, Title: "Accent wall", Views: 4},
	}}
	svc := NewService(repo)

	d, err := svc.ViewDesign(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.Views)
	assert.Equal(t, int64(5), repo.designs[1].Views)
}

func TestViewDesign_NotFound(t *testing.T) {
	svc := NewService(&mockDesignRepo{designs: map[int64]*domain.Design{}})

	_, err := svc.ViewDesign(context.Background(), 9)
	assert.ErrorIs(t, err, ErrDesignNotFound)
}

func TestLikeDesign(t *testing.T) {
	repo := &mockDesignRepo{designs: map[int64]*domain.Design{
		1: {ID: 1},
	}}
	svc := NewService(repo)

	require.NoError(t, svc.LikeDesign(context.Background(), 1))
	require.NoError(t, svc.LikeDesign(context.Background(), 1))
	assert.Equal(t, int64(2), repo.designs[1].Likes)

	assert.ErrorIs(t, svc.LikeDesign(context.Background(), 9), ErrDesignNotFound)
}
