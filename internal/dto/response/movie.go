package response

import (
	"theater-showtime/internal/data/entity"
)

type MovieResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Overview  string  `json:"overview"`
	Rating    float64 `json:"rating"`
	Genre     string  `json:"genre"`
	PosterURL string  `json:"posterUrl"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:        movie.ID.String(),
		Title:     movie.Title,
		Overview:  movie.Overview,
		Rating:    movie.Rating,
		Genre:     movie.Genre,
		PosterURL: movie.PosterURL,
	}
}
