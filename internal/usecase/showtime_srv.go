package usecase

import (
	"context"
	"fmt"
	"time"

	"theater-showtime/internal/apperror"
	"theater-showtime/internal/data/entity"
	"theater-showtime/internal/data/repository"
	"theater-showtime/internal/data/row"
	"theater-showtime/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RowTimeLayout is the fixed format the row source uses for
// timestamp columns. The fractional part is optional when parsing.
const RowTimeLayout = "2006-01-02T15:04:05.999999"

// FieldPolicy is the single switch for the asymmetric validation of
// aggregation rows: showtime-room and timestamp columns are always
// strict, while theater display columns (t_name, t_location) may
// fall back to empty strings when the policy is lenient. Theater
// identity (t_id) is strict either way.
type FieldPolicy struct {
	LenientTheaterFields bool
}

func DefaultFieldPolicy() FieldPolicy {
	return FieldPolicy{LenientTheaterFields: true}
}

type ShowtimeService interface {
	GetShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error)
	GetShowtimesByTheater(ctx context.Context, theaterID string) ([]response.ShowtimeResponse, error)
}

type showtimeService struct {
	repo   *repository.Repository
	policy FieldPolicy
	log    *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, policy FieldPolicy, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo:   repo,
		policy: policy,
		log:    log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) GetShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	rows, err := s.repo.Showtime.FindAllRows(ctx)
	if err != nil {
		s.log.Error("Failed to fetch showtime rows", zap.Error(err))
		return nil, fmt.Errorf("fetch showtime rows: %w", err)
	}

	showtimes, err := GroupShowtimeRows(rows, s.policy)
	if err != nil {
		s.log.Error("Failed to group showtime rows",
			zap.Error(err),
			zap.Int("row_count", len(rows)),
		)
		return nil, fmt.Errorf("group showtime rows: %w", err)
	}

	s.log.Info("Showtimes retrieved",
		zap.Int("row_count", len(rows)),
		zap.Int("showtime_count", len(showtimes)),
	)

	return showtimesToResponse(showtimes), nil
}

func (s *showtimeService) GetShowtimesByTheater(ctx context.Context, theaterID string) ([]response.ShowtimeResponse, error) {
	id, err := uuid.Parse(theaterID)
	if err != nil {
		s.log.Warn("Invalid theater ID format",
			zap.String("theater_id", theaterID),
			zap.Error(err),
		)
		return nil, apperror.NewInvalidArgument(theaterID, "theater ID must be a UUID")
	}

	theater, err := s.repo.Theater.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find theater",
			zap.Error(err),
			zap.String("theater_id", theaterID),
		)
		return nil, fmt.Errorf("find theater %s: %w", theaterID, err)
	}
	if theater == nil {
		return nil, apperror.NewNotFound("theater", theaterID)
	}

	rows, err := s.repo.Showtime.FindRowsByTheater(ctx, id)
	if err != nil {
		s.log.Error("Failed to fetch showtime rows by theater",
			zap.Error(err),
			zap.String("theater_id", theaterID),
		)
		return nil, fmt.Errorf("fetch showtime rows for theater %s: %w", theaterID, err)
	}

	showtimes, err := GroupShowtimeRows(rows, s.policy)
	if err != nil {
		s.log.Error("Failed to group showtime rows",
			zap.Error(err),
			zap.String("theater_id", theaterID),
			zap.Int("row_count", len(rows)),
		)
		return nil, fmt.Errorf("group showtime rows for theater %s: %w", theaterID, err)
	}

	s.log.Info("Showtimes retrieved for theater",
		zap.String("theater_id", theaterID),
		zap.Int("row_count", len(rows)),
		zap.Int("showtime_count", len(showtimes)),
	)

	return showtimesToResponse(showtimes), nil
}

// GroupShowtimeRows collapses denormalized join rows into one
// Showtime aggregate per distinct "id" value. The join fans a
// showtime out across one row per room x theater combination; rows
// are partitioned by id first, then each group is rebuilt in one
// pass. Output order follows the first occurrence of each id, so a
// storage ordering by created_at carries through. Any row the pass
// cannot interpret aborts the whole operation; there are no partial
// results.
func GroupShowtimeRows(rows []row.Row, policy FieldPolicy) ([]*entity.Showtime, error) {
	groups := make(map[string][]row.Row, len(rows))
	order := make([]string, 0, len(rows))

	for i, record := range rows {
		id, err := record.String("id")
		if err != nil {
			return nil, fmt.Errorf("showtime row %d: %w", i, err)
		}

		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], record)
	}

	showtimes := make([]*entity.Showtime, 0, len(order))
	for _, id := range order {
		showtime, err := buildShowtime(id, groups[id], policy)
		if err != nil {
			return nil, fmt.Errorf("showtime %s: %w", id, err)
		}
		showtimes = append(showtimes, showtime)
	}

	return showtimes, nil
}

// buildShowtime reconstructs one aggregate from its group of rows.
// The first row supplies every showtime- and movie-level scalar; by
// join construction all rows of a group agree on those. The
// remaining rows only contribute to the room and theater
// collections, deduplicated by their ids.
func buildShowtime(id string, group []row.Row, policy FieldPolicy) (*entity.Showtime, error) {
	first := group[0]

	createdAt, err := timeField(first, "created_at")
	if err != nil {
		return nil, err
	}

	updatedAt, err := timeField(first, "updated_at")
	if err != nil {
		return nil, err
	}

	movieID, err := first.String("m_id")
	if err != nil {
		return nil, err
	}
	movieTitle, err := first.String("m_title")
	if err != nil {
		return nil, err
	}
	movieGenre, err := first.String("m_genre")
	if err != nil {
		return nil, err
	}
	movieRating, err := first.Float64("m_rating")
	if err != nil {
		return nil, err
	}
	moviePosterURL, err := first.String("m_poster_url")
	if err != nil {
		return nil, err
	}

	showtime := &entity.Showtime{
		ID:        id,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Movie: entity.ShowtimeMovie{
			ID:        movieID,
			Title:     movieTitle,
			Rating:    movieRating,
			Genre:     movieGenre,
			PosterURL: moviePosterURL,
		},
		ShowtimeRooms: []entity.ShowtimeRoom{},
		Theaters:      []entity.ShowtimeTheater{},
	}

	seenRooms := make(map[int64]bool)
	seenTheaters := make(map[string]bool)

	for _, record := range group {
		theaterID, err := record.String("t_id")
		if err != nil {
			return nil, err
		}

		if !seenTheaters[theaterID] {
			theater, err := buildTheater(record, theaterID, policy)
			if err != nil {
				return nil, err
			}
			showtime.Theaters = append(showtime.Theaters, theater)
			seenTheaters[theaterID] = true
		}

		roomID, present, err := record.NullableInt64("shr_id")
		if err != nil {
			return nil, err
		}
		// A row without shr_id only enumerates a theater.
		if !present || seenRooms[roomID] {
			continue
		}

		room, err := buildShowtimeRoom(record, roomID)
		if err != nil {
			return nil, err
		}
		showtime.ShowtimeRooms = append(showtime.ShowtimeRooms, room)
		seenRooms[roomID] = true
	}

	return showtime, nil
}

func buildTheater(record row.Row, theaterID string, policy FieldPolicy) (entity.ShowtimeTheater, error) {
	var name, location string
	var err error

	if policy.LenientTheaterFields {
		if name, err = record.StringOr("t_name", ""); err != nil {
			return entity.ShowtimeTheater{}, err
		}
		if location, err = record.StringOr("t_location", ""); err != nil {
			return entity.ShowtimeTheater{}, err
		}
	} else {
		if name, err = record.String("t_name"); err != nil {
			return entity.ShowtimeTheater{}, err
		}
		if location, err = record.String("t_location"); err != nil {
			return entity.ShowtimeTheater{}, err
		}
	}

	return entity.ShowtimeTheater{
		ID:       theaterID,
		Name:     name,
		Location: location,
	}, nil
}

// buildShowtimeRoom reads the room columns of a row whose shr_id is
// set. At that point every room column is required.
func buildShowtimeRoom(record row.Row, roomID int64) (entity.ShowtimeRoom, error) {
	showTime, err := timeField(record, "shr_time")
	if err != nil {
		return entity.ShowtimeRoom{}, err
	}

	price, err := record.Int64("shr_price")
	if err != nil {
		return entity.ShowtimeRoom{}, err
	}

	physicalRoomID, err := record.String("shr_room_id")
	if err != nil {
		return entity.ShowtimeRoom{}, err
	}

	roomName, err := record.String("r_name")
	if err != nil {
		return entity.ShowtimeRoom{}, err
	}

	return entity.ShowtimeRoom{
		ID:       roomID,
		Time:     showTime,
		Price:    price,
		RoomID:   physicalRoomID,
		RoomName: roomName,
	}, nil
}

func timeField(record row.Row, field string) (time.Time, error) {
	raw, err := record.String(field)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(RowTimeLayout, raw)
	if err != nil {
		return time.Time{}, apperror.NewMalformedRow(field,
			fmt.Sprintf("value %q does not match layout %s", raw, RowTimeLayout))
	}

	return t, nil
}

func showtimesToResponse(showtimes []*entity.Showtime) []response.ShowtimeResponse {
	responses := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		responses[i] = response.ShowtimeToResponse(showtime)
	}
	return responses
}
