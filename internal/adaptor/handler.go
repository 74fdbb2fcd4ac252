package adaptor

import (
	"errors"
	"net/http"

	"theater-showtime/internal/apperror"
	"theater-showtime/internal/usecase"
	"theater-showtime/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie    *MovieHandler
	Theater  *TheaterHandler
	Showtime *ShowtimeHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:    NewMovieHandler(service.Movie, log),
		Theater:  NewTheaterHandler(service.Theater, service.Showtime, log),
		Showtime: NewShowtimeHandler(service.Showtime, service.Seat, log),
	}
}

// handleServiceError maps the typed error kinds onto HTTP statuses.
// Client-shape errors keep their message and are logged at warn;
// server-side errors are logged with full detail but the client only
// ever sees a generic message.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var invalidArg *apperror.InvalidArgumentError
	var notFound *apperror.NotFoundError
	var malformedRow *apperror.MalformedRowError
	var storage *apperror.StorageError

	switch {
	case errors.As(err, &invalidArg):
		log.Warn(operation+" failed - invalid argument",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, invalidArg.Error(), nil)

	case errors.As(err, &notFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, notFound.Error())

	case errors.As(err, &malformedRow):
		log.Error(operation+" failed - malformed row",
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("field", malformedRow.Field))
		utils.ResponseInternalError(w, "Internal server error")

	case errors.As(err, &storage):
		log.Error(operation+" failed - storage",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
