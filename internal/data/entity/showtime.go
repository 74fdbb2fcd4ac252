package entity

import "time"

// Showtime is the aggregate built by collapsing denormalized join
// rows: one showtime carries one movie snapshot, the scheduled rooms
// it plays in, and the theaters those rooms belong to. It is a
// read-only projection, reconstructed per request; it does not map
// onto a single table.
type Showtime struct {
	ID            string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Movie         ShowtimeMovie
	ShowtimeRooms []ShowtimeRoom
	Theaters      []ShowtimeTheater
}

// ShowtimeMovie is the movie snapshot carried by a Showtime
// aggregate. Only the columns selected by the aggregation join are
// present.
type ShowtimeMovie struct {
	ID        string
	Title     string
	Rating    float64
	Genre     string
	PosterURL string
}

// ShowtimeRoom is one scheduled screening instance in one physical
// room. Price is in the smallest currency unit.
type ShowtimeRoom struct {
	ID       int64
	Time     time.Time
	Price    int64
	RoomID   string
	RoomName string
}

// ShowtimeTheater is a theater as seen through the aggregation join,
// derived transitively through rooms.
type ShowtimeTheater struct {
	ID       string
	Name     string
	Location string
}
