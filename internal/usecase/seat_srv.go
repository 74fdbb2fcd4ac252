package usecase

import (
	"context"
	"fmt"
	"strconv"

	"theater-showtime/internal/apperror"
	"theater-showtime/internal/data/repository"
	"theater-showtime/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatService interface {
	GetTakenSeats(ctx context.Context, showtimeID, roomID string) (*response.TakenSeatsResponse, error)
}

type seatService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatService(repo *repository.Repository, log *zap.Logger) SeatService {
	return &seatService{
		repo: repo,
		log:  log.With(zap.String("service", "seat")),
	}
}

// GetTakenSeats returns the seat identifiers already reserved for
// one showtime room. Identifier shapes are checked before touching
// storage; an unknown combination simply has no taken seats.
func (s *seatService) GetTakenSeats(ctx context.Context, showtimeID, roomID string) (*response.TakenSeatsResponse, error) {
	showtimeUUID, err := uuid.Parse(showtimeID)
	if err != nil {
		s.log.Warn("Invalid showtime ID format",
			zap.String("showtime_id", showtimeID),
			zap.Error(err),
		)
		return nil, apperror.NewInvalidArgument(showtimeID, "showtime ID must be a UUID")
	}

	roomIDInt, err := strconv.ParseInt(roomID, 10, 64)
	if err != nil {
		s.log.Warn("Invalid room ID format",
			zap.String("room_id", roomID),
			zap.Error(err),
		)
		return nil, apperror.NewInvalidArgument(roomID, "room ID must be an integer")
	}

	seats, err := s.repo.TakenSeat.FindByShowtimeAndRoom(ctx, showtimeUUID, roomIDInt)
	if err != nil {
		s.log.Error("Failed to get taken seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID),
			zap.Int64("room_id", roomIDInt),
		)
		return nil, fmt.Errorf("get taken seats for showtime %s room %d: %w", showtimeID, roomIDInt, err)
	}

	identifiers := make([]string, len(seats))
	for i, seat := range seats {
		identifiers[i] = seat.SeatIdentifier
	}

	s.log.Info("Taken seats retrieved",
		zap.String("showtime_id", showtimeID),
		zap.Int64("room_id", roomIDInt),
		zap.Int("count", len(identifiers)),
	)

	return &response.TakenSeatsResponse{
		ShowtimeID:      showtimeUUID.String(),
		RoomID:          roomIDInt,
		SeatIdentifiers: identifiers,
	}, nil
}
