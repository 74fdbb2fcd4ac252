package wire

import (
	"theater-showtime/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTheater(r chi.Router, theaterHandler *adaptor.TheaterHandler) {
	// GET /api/v1/theaters - List all theaters (public)
	r.Get("/api/v1/theaters", theaterHandler.GetTheaters)

	// GET /api/v1/theaters/{id}/showtime - Showtimes playing in one theater (public)
	r.Get("/api/v1/theaters/{id}/showtime", theaterHandler.GetTheaterShowtimes)
}
