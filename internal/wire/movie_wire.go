package wire

import (
	"theater-showtime/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/v1/movies - Paginated movie list (public)
	// Supports query params: ?page=1&per_page=10&sort=rating-desc
	r.Get("/api/v1/movies", movieHandler.GetMovies)

	// GET /api/v1/movies/{id} - Single movie (public)
	r.Get("/api/v1/movies/{id}", movieHandler.GetMovieByID)
}
