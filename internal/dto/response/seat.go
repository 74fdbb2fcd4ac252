package response

type TakenSeatsResponse struct {
	ShowtimeID      string   `json:"showtimeId"`
	RoomID          int64    `json:"roomId"`
	SeatIdentifiers []string `json:"seatIdentifiers"`
}
