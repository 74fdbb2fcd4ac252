package usecase

import (
	"context"
	"testing"

	"theater-showtime/internal/apperror"
	"theater-showtime/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTheaterService_GetTheaters(t *testing.T) {
	theaterID := uuid.New()

	repo := newTestRepository()
	repo.Theater = &mockTheaterRepo{
		FindAllFunc: func(ctx context.Context) ([]*entity.Theater, error) {
			return []*entity.Theater{
				{ID: theaterID, Name: "Cineplex", Location: "Downtown"},
			}, nil
		},
	}

	service := NewTheaterService(repo, zap.NewNop())

	got, err := service.GetTheaters(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, theaterID.String(), got[0].ID)
	assert.Equal(t, "Cineplex", got[0].Name)
	assert.Equal(t, "Downtown", got[0].Location)
}

func TestTheaterService_GetTheaters_StorageErrorPropagates(t *testing.T) {
	repo := newTestRepository()
	repo.Theater = &mockTheaterRepo{
		FindAllFunc: func(ctx context.Context) ([]*entity.Theater, error) {
			return nil, apperror.NewStorage(assert.AnError)
		},
	}

	service := NewTheaterService(repo, zap.NewNop())

	got, err := service.GetTheaters(context.Background())

	require.Error(t, err)
	assert.Nil(t, got)
}
