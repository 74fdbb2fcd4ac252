package usecase

import (
	"context"
	"fmt"

	"theater-showtime/internal/data/repository"
	"theater-showtime/internal/dto/response"

	"go.uber.org/zap"
)

type TheaterService interface {
	GetTheaters(ctx context.Context) ([]response.TheaterResponse, error)
}

type theaterService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTheaterService(repo *repository.Repository, log *zap.Logger) TheaterService {
	return &theaterService{
		repo: repo,
		log:  log.With(zap.String("service", "theater")),
	}
}

func (s *theaterService) GetTheaters(ctx context.Context) ([]response.TheaterResponse, error) {
	theaters, err := s.repo.Theater.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get theaters", zap.Error(err))
		return nil, fmt.Errorf("get theaters: %w", err)
	}

	theaterResponses := make([]response.TheaterResponse, len(theaters))
	for i, theater := range theaters {
		theaterResponses[i] = response.TheaterToResponse(theater)
	}

	s.log.Info("Theaters retrieved", zap.Int("count", len(theaters)))

	return theaterResponses, nil
}
