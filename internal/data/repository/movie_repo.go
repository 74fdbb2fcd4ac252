package repository

import (
	"context"
	"fmt"

	"theater-showtime/internal/apperror"
	"theater-showtime/internal/data/entity"
	"theater-showtime/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	FindAll(ctx context.Context, limit, offset int, orderBy string) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

// FindAll lists movies with pagination. orderBy must come from the
// service-level whitelist, never from raw user input.
func (r *movieRepository) FindAll(ctx context.Context, limit, offset int, orderBy string) ([]*entity.Movie, error) {
	query := fmt.Sprintf(`
		SELECT id, title, overview, rating, genre, poster_url
		FROM movie
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, orderBy)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, apperror.NewStorage(fmt.Errorf("find movies: %w", err))
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Overview,
			&movie.Rating,
			&movie.Genre,
			&movie.PosterURL,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, apperror.NewStorage(fmt.Errorf("scan movie row: %w", err))
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate movie rows", zap.Error(err))
		return nil, apperror.NewStorage(fmt.Errorf("iterate movie rows: %w", err))
	}

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movie`

	var total int64
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, apperror.NewStorage(fmt.Errorf("count movies: %w", err))
	}

	return total, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, overview, rating, genre, poster_url
		FROM movie
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Overview,
		&movie.Rating,
		&movie.Genre,
		&movie.PosterURL,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, apperror.NewStorage(fmt.Errorf("find movie by ID %s: %w", id.String(), err))
	}

	return &movie, nil
}
