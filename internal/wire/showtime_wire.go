package wire

import (
	"theater-showtime/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	// GET /api/v1/showtime - All showtime aggregates (public)
	r.Get("/api/v1/showtime", showtimeHandler.GetShowtimes)

	// GET /api/v1/showtime/{id}/rooms/{roomId}/taken-seats - Reserved seats of one showtime room (public)
	r.Get("/api/v1/showtime/{id}/rooms/{roomId}/taken-seats", showtimeHandler.GetTakenSeats)
}
