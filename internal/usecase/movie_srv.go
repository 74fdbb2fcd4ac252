package usecase

import (
	"context"
	"fmt"
	"strings"

	"theater-showtime/internal/apperror"
	"theater-showtime/internal/data/repository"
	"theater-showtime/internal/dto/request"
	"theater-showtime/internal/dto/response"
	"theater-showtime/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMovieSort applies when the caller sends no sort parameter.
const DefaultMovieSort = "rating-desc"

// movieSortColumns whitelists the sortable movie columns. The value
// is the SQL identifier handed to the repository.
var movieSortColumns = map[string]string{
	"id":       "id",
	"title":    "title",
	"overview": "overview",
	"genre":    "genre",
	"rating":   "rating",
}

type MovieService interface {
	GetMovies(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Movie list validation failed", zap.Any("errors", errs))
		return nil, apperror.NewInvalidArgument(utils.FormatValidationErrors(errs), "invalid pagination parameters")
	}

	orderBy, err := ParseMovieSort(req.Sort)
	if err != nil {
		s.log.Warn("Invalid movie sort parameter",
			zap.String("sort", req.Sort),
			zap.Error(err),
		)
		return nil, err
	}

	limit := req.Limit()
	offset := req.Offset()

	movies, err := s.repo.Movie.FindAll(ctx, limit, offset, orderBy)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
			zap.String("order_by", orderBy),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.log.Info("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(movieResponses, req.Page, req.PerPage, total), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		s.log.Warn("Invalid movie ID format",
			zap.String("movie_id", movieID),
			zap.Error(err),
		)
		return nil, apperror.NewInvalidArgument(movieID, "movie ID must be a UUID")
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("get movie %s: %w", movieID, err)
	}

	if movie == nil {
		return nil, apperror.NewNotFound("movie", movieID)
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

// ParseMovieSort turns a "column-direction" parameter (e.g.
// "title-asc") into a SQL ORDER BY clause, validating both parts
// against the whitelist. An empty parameter falls back to
// DefaultMovieSort.
func ParseMovieSort(sort string) (string, error) {
	if sort == "" {
		sort = DefaultMovieSort
	}

	parts := strings.Split(sort, "-")
	if len(parts) != 2 || parts[0] == "" {
		return "", apperror.NewInvalidArgument(sort, "sort must use the column-direction form, e.g. title-asc")
	}

	column, ok := movieSortColumns[parts[0]]
	if !ok {
		return "", apperror.NewInvalidArgument(sort, fmt.Sprintf("%s is not a sortable movie column", parts[0]))
	}

	var direction string
	switch parts[1] {
	case "asc":
		direction = "ASC"
	case "desc":
		direction = "DESC"
	default:
		return "", apperror.NewInvalidArgument(sort, "sort direction must be asc or desc")
	}

	return column + " " + direction, nil
}
