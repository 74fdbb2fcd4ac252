package response

import (
	"theater-showtime/internal/data/entity"
)

type TheaterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:       theater.ID.String(),
		Name:     theater.Name,
		Location: theater.Location,
	}
}
