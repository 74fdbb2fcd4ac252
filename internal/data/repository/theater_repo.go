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

type TheaterRepository interface {
	FindAll(ctx context.Context) ([]*entity.Theater, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Theater, error)
}

type theaterRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTheaterRepository(db database.PgxIface, log *zap.Logger) TheaterRepository {
	return &theaterRepository{
		db:  db,
		log: log.With(zap.String("repository", "theater")),
	}
}

func (r *theaterRepository) FindAll(ctx context.Context) ([]*entity.Theater, error) {
	query := `
		SELECT id, name, location
		FROM theater
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find theaters", zap.Error(err))
		return nil, apperror.NewStorage(fmt.Errorf("find theaters: %w", err))
	}
	defer rows.Close()

	var theaters []*entity.Theater
	for rows.Next() {
		var theater entity.Theater
		if err := rows.Scan(&theater.ID, &theater.Name, &theater.Location); err != nil {
			r.log.Error("Failed to scan theater row", zap.Error(err))
			return nil, apperror.NewStorage(fmt.Errorf("scan theater row: %w", err))
		}
		theaters = append(theaters, &theater)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate theater rows", zap.Error(err))
		return nil, apperror.NewStorage(fmt.Errorf("iterate theater rows: %w", err))
	}

	return theaters, nil
}

func (r *theaterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Theater, error) {
	query := `
		SELECT id, name, location
		FROM theater
		WHERE id = $1
	`

	var theater entity.Theater
	err := r.db.QueryRow(ctx, query, id).Scan(&theater.ID, &theater.Name, &theater.Location)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find theater by ID",
			zap.Error(err),
			zap.String("theater_id", id.String()),
		)
		return nil, apperror.NewStorage(fmt.Errorf("find theater by ID %s: %w", id.String(), err))
	}

	return &theater, nil
}
