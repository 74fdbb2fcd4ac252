package usecase

import (
	"context"

	"theater-showtime/internal/data/entity"
	"theater-showtime/internal/data/repository"
	"theater-showtime/internal/data/row"

	"github.com/google/uuid"
)

type mockMovieRepo struct {
	FindAllFunc  func(ctx context.Context, limit, offset int, orderBy string) ([]*entity.Movie, error)
	CountAllFunc func(ctx context.Context) (int64, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
}

func (m *mockMovieRepo) FindAll(ctx context.Context, limit, offset int, orderBy string) ([]*entity.Movie, error) {
	return m.FindAllFunc(ctx, limit, offset, orderBy)
}

func (m *mockMovieRepo) CountAll(ctx context.Context) (int64, error) {
	return m.CountAllFunc(ctx)
}

func (m *mockMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockTheaterRepo struct {
	FindAllFunc  func(ctx context.Context) ([]*entity.Theater, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Theater, error)
}

func (m *mockTheaterRepo) FindAll(ctx context.Context) ([]*entity.Theater, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockTheaterRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Theater, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockShowtimeRepo struct {
	FindAllRowsFunc       func(ctx context.Context) ([]row.Row, error)
	FindRowsByTheaterFunc func(ctx context.Context, theaterID uuid.UUID) ([]row.Row, error)
}

func (m *mockShowtimeRepo) FindAllRows(ctx context.Context) ([]row.Row, error) {
	return m.FindAllRowsFunc(ctx)
}

func (m *mockShowtimeRepo) FindRowsByTheater(ctx context.Context, theaterID uuid.UUID) ([]row.Row, error) {
	return m.FindRowsByTheaterFunc(ctx, theaterID)
}

type mockTakenSeatRepo struct {
	FindByShowtimeAndRoomFunc func(ctx context.Context, showtimeID uuid.UUID, roomID int64) ([]*entity.TakenSeat, error)
}

func (m *mockTakenSeatRepo) FindByShowtimeAndRoom(ctx context.Context, showtimeID uuid.UUID, roomID int64) ([]*entity.TakenSeat, error) {
	return m.FindByShowtimeAndRoomFunc(ctx, showtimeID, roomID)
}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Movie:     &mockMovieRepo{},
		Theater:   &mockTheaterRepo{},
		Showtime:  &mockShowtimeRepo{},
		TakenSeat: &mockTakenSeatRepo{},
	}
}

// sampleRow builds one complete aggregation row; overrides replace
// columns, a nil override models a NULL column.
func sampleRow(overrides map[string]any) row.Row {
	record := row.Row{
		"id":           "S1",
		"created_at":   "2024-01-01T10:00:00.000000",
		"updated_at":   "2024-01-01T10:00:00.000000",
		"m_id":         "M1",
		"m_title":      "Dune",
		"m_rating":     8.5,
		"m_genre":      "Sci-Fi",
		"m_poster_url": "u",
		"shr_id":       int64(1),
		"shr_time":     "2024-01-02T19:30:00.000000",
		"shr_price":    int64(50000),
		"shr_room_id":  "R1",
		"r_name":       "Room 1",
		"t_id":         "T1",
		"t_name":       "Cineplex",
		"t_location":   "Downtown",
	}

	for column, value := range overrides {
		record[column] = value
	}

	return record
}
