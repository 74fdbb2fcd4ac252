package response

import (
	"time"

	"theater-showtime/internal/data/entity"
)

type ShowtimeResponse struct {
	ID            string                 `json:"id"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
	Movie         ShowtimeMovieResponse  `json:"movie"`
	ShowtimeRooms []ShowtimeRoomResponse `json:"showtimeRooms"`
	Theaters      []ShowtimeTheaterResponse `json:"theaters"`
}

type ShowtimeMovieResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Rating    float64 `json:"rating"`
	Genre     string  `json:"genre"`
	PosterURL string  `json:"posterUrl"`
}

type ShowtimeRoomResponse struct {
	ID       int64     `json:"id"`
	Time     time.Time `json:"time"`
	Price    int64     `json:"price"`
	RoomID   string    `json:"roomId"`
	RoomName string    `json:"roomName"`
}

type ShowtimeTheaterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	rooms := make([]ShowtimeRoomResponse, len(showtime.ShowtimeRooms))
	for i, room := range showtime.ShowtimeRooms {
		rooms[i] = ShowtimeRoomResponse{
			ID:       room.ID,
			Time:     room.Time,
			Price:    room.Price,
			RoomID:   room.RoomID,
			RoomName: room.RoomName,
		}
	}

	theaters := make([]ShowtimeTheaterResponse, len(showtime.Theaters))
	for i, theater := range showtime.Theaters {
		theaters[i] = ShowtimeTheaterResponse{
			ID:       theater.ID,
			Name:     theater.Name,
			Location: theater.Location,
		}
	}

	return ShowtimeResponse{
		ID:        showtime.ID,
		CreatedAt: showtime.CreatedAt,
		UpdatedAt: showtime.UpdatedAt,
		Movie: ShowtimeMovieResponse{
			ID:        showtime.Movie.ID,
			Title:     showtime.Movie.Title,
			Rating:    showtime.Movie.Rating,
			Genre:     showtime.Movie.Genre,
			PosterURL: showtime.Movie.PosterURL,
		},
		ShowtimeRooms: rooms,
		Theaters:      theaters,
	}
}
