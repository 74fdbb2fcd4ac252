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

func TestSeatService_GetTakenSeats(t *testing.T) {
	showtimeID := uuid.New()

	tests := []struct {
		name            string
		showtimeID      string
		roomID          string
		repo            *mockTakenSeatRepo
		wantIdentifiers []string
		wantInvalidArg  bool
	}{
		{
			name:           "showtime id must be a uuid",
			showtimeID:     "S1",
			roomID:         "1",
			wantInvalidArg: true,
		},
		{
			name:           "room id must be an integer",
			showtimeID:     showtimeID.String(),
			roomID:         "first",
			wantInvalidArg: true,
		},
		{
			name:       "no reservations yields an empty set",
			showtimeID: showtimeID.String(),
			roomID:     "1",
			repo: &mockTakenSeatRepo{
				FindByShowtimeAndRoomFunc: func(ctx context.Context, id uuid.UUID, roomID int64) ([]*entity.TakenSeat, error) {
					return nil, nil
				},
			},
			wantIdentifiers: []string{},
		},
		{
			name:       "reserved seats are returned as identifiers",
			showtimeID: showtimeID.String(),
			roomID:     "2",
			repo: &mockTakenSeatRepo{
				FindByShowtimeAndRoomFunc: func(ctx context.Context, id uuid.UUID, roomID int64) ([]*entity.TakenSeat, error) {
					return []*entity.TakenSeat{
						{ID: 1, ShowtimeID: id, ShowtimeRoomID: roomID, SeatIdentifier: "A1"},
						{ID: 2, ShowtimeID: id, ShowtimeRoomID: roomID, SeatIdentifier: "A2"},
					}, nil
				},
			},
			wantIdentifiers: []string{"A1", "A2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository()
			if tt.repo != nil {
				repo.TakenSeat = tt.repo
			}

			service := NewSeatService(repo, zap.NewNop())

			got, err := service.GetTakenSeats(context.Background(), tt.showtimeID, tt.roomID)

			if tt.wantInvalidArg {
				require.Error(t, err)
				var invalidArg *apperror.InvalidArgumentError
				assert.ErrorAs(t, err, &invalidArg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.showtimeID, got.ShowtimeID)
			assert.Equal(t, tt.wantIdentifiers, got.SeatIdentifiers)
		})
	}
}

func TestSeatService_GetTakenSeats_NoStorageCallOnInvalidInput(t *testing.T) {
	called := false
	repo := newTestRepository()
	repo.TakenSeat = &mockTakenSeatRepo{
		FindByShowtimeAndRoomFunc: func(ctx context.Context, id uuid.UUID, roomID int64) ([]*entity.TakenSeat, error) {
			called = true
			return nil, nil
		},
	}

	service := NewSeatService(repo, zap.NewNop())

	_, err := service.GetTakenSeats(context.Background(), "not-a-uuid", "1")

	require.Error(t, err)
	assert.False(t, called, "invalid identifiers must be rejected before storage is touched")
}
