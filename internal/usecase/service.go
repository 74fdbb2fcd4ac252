package usecase

import (
	"theater-showtime/internal/data/repository"
	"theater-showtime/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie    MovieService
	Theater  TheaterService
	Showtime ShowtimeService
	Seat     SeatService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	policy := FieldPolicy{
		LenientTheaterFields: config.Showtime.LenientTheaterFields,
	}

	return &Service{
		Movie:    NewMovieService(repo, log),
		Theater:  NewTheaterService(repo, log),
		Showtime: NewShowtimeService(repo, policy, log),
		Seat:     NewSeatService(repo, log),
	}
}
