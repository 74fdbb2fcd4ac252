package repository

import (
	"context"
	"fmt"

	"theater-showtime/internal/apperror"
	"theater-showtime/internal/data/row"
	"theater-showtime/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ShowtimeRepository is the row source for the showtime aggregation:
// it returns denormalized join rows, one per showtime x room x
// theater combination. Grouping them back into aggregates is the
// usecase layer's job.
type ShowtimeRepository interface {
	FindAllRows(ctx context.Context) ([]row.Row, error)
	FindRowsByTheater(ctx context.Context, theaterID uuid.UUID) ([]row.Row, error)
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

// Timestamps are selected as text in a fixed format so the grouping
// pass owns the parse (and its error reporting) instead of trusting
// driver-dependent time decoding. UUIDs are cast for the same reason.
const showtimeRowColumns = `
	sh.id::text                                          AS id,
	to_char(sh.created_at, 'YYYY-MM-DD"T"HH24:MI:SS.US') AS created_at,
	to_char(sh.updated_at, 'YYYY-MM-DD"T"HH24:MI:SS.US') AS updated_at,
	m.id::text                                           AS m_id,
	m.title                                              AS m_title,
	m.rating                                             AS m_rating,
	m.genre                                              AS m_genre,
	m.poster_url                                         AS m_poster_url,
	shr.id                                               AS shr_id,
	to_char(shr.time, 'YYYY-MM-DD"T"HH24:MI:SS.US')      AS shr_time,
	shr.price                                            AS shr_price,
	shr.room_id::text                                    AS shr_room_id,
	r.name                                               AS r_name,
	t.id::text                                           AS t_id,
	t.name                                               AS t_name,
	t.location                                           AS t_location`

func (r *showtimeRepository) FindAllRows(ctx context.Context) ([]row.Row, error) {
	query := `
		SELECT` + showtimeRowColumns + `
		FROM showtime sh
			JOIN movie m ON m.id = sh.movie_id
			JOIN showtime_room shr ON shr.showtime_id = sh.id
			JOIN room r ON r.id = shr.room_id
			JOIN theater t ON t.id = r.theater_id
		ORDER BY sh.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query showtime rows", zap.Error(err))
		return nil, apperror.NewStorage(fmt.Errorf("query showtime rows: %w", err))
	}
	defer rows.Close()

	return collectRows(r, rows)
}

func (r *showtimeRepository) FindRowsByTheater(ctx context.Context, theaterID uuid.UUID) ([]row.Row, error) {
	query := `
		SELECT` + showtimeRowColumns + `
		FROM showtime sh
			JOIN movie m ON m.id = sh.movie_id
			JOIN showtime_room shr ON shr.showtime_id = sh.id
			JOIN room r ON r.id = shr.room_id
			JOIN theater t ON t.id = r.theater_id
		WHERE t.id = $1
		ORDER BY sh.id, sh.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, theaterID)
	if err != nil {
		r.log.Error("Failed to query showtime rows by theater",
			zap.Error(err),
			zap.String("theater_id", theaterID.String()),
		)
		return nil, apperror.NewStorage(fmt.Errorf("query showtime rows for theater %s: %w", theaterID.String(), err))
	}
	defer rows.Close()

	return collectRows(r, rows)
}

// collectRows turns a pgx result set into column-keyed records.
func collectRows(r *showtimeRepository, rows pgx.Rows) ([]row.Row, error) {
	fields := rows.FieldDescriptions()

	var records []row.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			r.log.Error("Failed to read showtime row values", zap.Error(err))
			return nil, apperror.NewStorage(fmt.Errorf("read showtime row values: %w", err))
		}

		record := make(row.Row, len(fields))
		for i, field := range fields {
			record[field.Name] = values[i]
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate showtime rows", zap.Error(err))
		return nil, apperror.NewStorage(fmt.Errorf("iterate showtime rows: %w", err))
	}

	return records, nil
}
