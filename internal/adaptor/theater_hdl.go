package adaptor

import (
	"net/http"

	"theater-showtime/internal/usecase"
	"theater-showtime/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TheaterHandler struct {
	service         usecase.TheaterService
	showtimeService usecase.ShowtimeService
	log             *zap.Logger
}

func NewTheaterHandler(service usecase.TheaterService, showtimeService usecase.ShowtimeService, log *zap.Logger) *TheaterHandler {
	return &TheaterHandler{
		service:         service,
		showtimeService: showtimeService,
		log:             log.With(zap.String("handler", "theater")),
	}
}

// GetTheaters handles GET /api/v1/theaters (public)
func (h *TheaterHandler) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := h.service.GetTheaters(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get theaters")
		return
	}

	utils.ResponseSuccess(w, "success", theaters)
}

// GetTheaterShowtimes handles GET /api/v1/theaters/{id}/showtime (public)
func (h *TheaterHandler) GetTheaterShowtimes(w http.ResponseWriter, r *http.Request) {
	theaterID := chi.URLParam(r, "id")
	if theaterID == "" {
		utils.ResponseBadRequest(w, "Theater ID is required", nil)
		return
	}

	showtimes, err := h.showtimeService.GetShowtimesByTheater(r.Context(), theaterID)
	if err != nil {
		handleServiceError(w, h.log, err, "get theater showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}
