package entity

import "github.com/google/uuid"

// TakenSeat marks one reserved seat for a showtime room. Uniqueness
// of (showtime_id, showtime_room_id, seat_identifier) is enforced by
// the storage layer.
type TakenSeat struct {
	ID             int64     `db:"id"`
	ShowtimeID     uuid.UUID `db:"showtime_id"`
	ShowtimeRoomID int64     `db:"showtime_room_id"`
	SeatIdentifier string    `db:"seat_identifier"`
}
