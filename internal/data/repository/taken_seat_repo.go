package repository

import (
	"context"
	"fmt"

	"theater-showtime/internal/apperror"
	"theater-showtime/internal/data/entity"
	"theater-showtime/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TakenSeatRepository interface {
	FindByShowtimeAndRoom(ctx context.Context, showtimeID uuid.UUID, roomID int64) ([]*entity.TakenSeat, error)
}

type takenSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTakenSeatRepository(db database.PgxIface, log *zap.Logger) TakenSeatRepository {
	return &takenSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "taken_seat")),
	}
}

// FindByShowtimeAndRoom lists the seats already reserved for one
// showtime room. No rows is a valid result, not an error.
func (r *takenSeatRepository) FindByShowtimeAndRoom(ctx context.Context, showtimeID uuid.UUID, roomID int64) ([]*entity.TakenSeat, error) {
	query := `
		SELECT id, showtime_id, showtime_room_id, seat_identifier
		FROM taken_seat
		WHERE showtime_id = $1 AND showtime_room_id = $2
		ORDER BY seat_identifier
	`

	rows, err := r.db.Query(ctx, query, showtimeID, roomID)
	if err != nil {
		r.log.Error("Failed to find taken seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.Int64("room_id", roomID),
		)
		return nil, apperror.NewStorage(fmt.Errorf("find taken seats for showtime %s room %d: %w",
			showtimeID.String(), roomID, err))
	}
	defer rows.Close()

	var seats []*entity.TakenSeat
	for rows.Next() {
		var seat entity.TakenSeat
		err := rows.Scan(
			&seat.ID,
			&seat.ShowtimeID,
			&seat.ShowtimeRoomID,
			&seat.SeatIdentifier,
		)
		if err != nil {
			r.log.Error("Failed to scan taken seat row", zap.Error(err))
			return nil, apperror.NewStorage(fmt.Errorf("scan taken seat row: %w", err))
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate taken seat rows", zap.Error(err))
		return nil, apperror.NewStorage(fmt.Errorf("iterate taken seat rows: %w", err))
	}

	return seats, nil
}
