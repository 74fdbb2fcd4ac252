package repository

import (
	"theater-showtime/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie     MovieRepository
	Theater   TheaterRepository
	Showtime  ShowtimeRepository
	TakenSeat TakenSeatRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:     NewMovieRepository(db, log),
		Theater:   NewTheaterRepository(db, log),
		Showtime:  NewShowtimeRepository(db, log),
		TakenSeat: NewTakenSeatRepository(db, log),
	}
}
