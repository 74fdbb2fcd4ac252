package adaptor

import (
	"net/http"

	"theater-showtime/internal/usecase"
	"theater-showtime/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service     usecase.ShowtimeService
	seatService usecase.SeatService
	log         *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, seatService usecase.SeatService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service:     service,
		seatService: seatService,
		log:         log.With(zap.String("handler", "showtime")),
	}
}

// GetShowtimes handles GET /api/v1/showtime (public)
func (h *ShowtimeHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.GetShowtimes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetTakenSeats handles GET /api/v1/showtime/{id}/rooms/{roomId}/taken-seats (public)
func (h *ShowtimeHandler) GetTakenSeats(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	roomID := chi.URLParam(r, "roomId")

	if showtimeID == "" || roomID == "" {
		utils.ResponseBadRequest(w, "Showtime ID and room ID are required", nil)
		return
	}

	seats, err := h.seatService.GetTakenSeats(r.Context(), showtimeID, roomID)
	if err != nil {
		handleServiceError(w, h.log, err, "get taken seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}
