package adaptor

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"theater-showtime/internal/dto/request"
	"theater-showtime/internal/dto/response"

	"github.com/go-chi/chi/v5"
)

type mockShowtimeService struct {
	GetShowtimesFunc          func(ctx context.Context) ([]response.ShowtimeResponse, error)
	GetShowtimesByTheaterFunc func(ctx context.Context, theaterID string) ([]response.ShowtimeResponse, error)
}

func (m *mockShowtimeService) GetShowtimes(ctx context.Context) ([]response.ShowtimeResponse, error) {
	return m.GetShowtimesFunc(ctx)
}

func (m *mockShowtimeService) GetShowtimesByTheater(ctx context.Context, theaterID string) ([]response.ShowtimeResponse, error) {
	return m.GetShowtimesByTheaterFunc(ctx, theaterID)
}

type mockSeatService struct {
	GetTakenSeatsFunc func(ctx context.Context, showtimeID, roomID string) (*response.TakenSeatsResponse, error)
}

func (m *mockSeatService) GetTakenSeats(ctx context.Context, showtimeID, roomID string) (*response.TakenSeatsResponse, error) {
	return m.GetTakenSeatsFunc(ctx, showtimeID, roomID)
}

type mockMovieService struct {
	GetMoviesFunc    func(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovieByIDFunc func(ctx context.Context, movieID string) (*response.MovieResponse, error)
}

func (m *mockMovieService) GetMovies(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	return m.GetMoviesFunc(ctx, req)
}

func (m *mockMovieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	return m.GetMovieByIDFunc(ctx, movieID)
}

type mockTheaterService struct {
	GetTheatersFunc func(ctx context.Context) ([]response.TheaterResponse, error)
}

func (m *mockTheaterService) GetTheaters(ctx context.Context) ([]response.TheaterResponse, error) {
	return m.GetTheatersFunc(ctx)
}

// envelope mirrors utils.Response for decoding in assertions.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func executeRequest(t *testing.T, router chi.Router, method, url string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	r := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, r)

	var body envelope
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response envelope: %v", err)
	}

	return w, body
}

func newShowtimeRouter(handler *ShowtimeHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/v1/showtime", handler.GetShowtimes)
	r.Get("/api/v1/showtime/{id}/rooms/{roomId}/taken-seats", handler.GetTakenSeats)
	return r
}

func newMovieRouter(handler *MovieHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/v1/movies", handler.GetMovies)
	r.Get("/api/v1/movies/{id}", handler.GetMovieByID)
	return r
}

func newTheaterRouter(handler *TheaterHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/v1/theaters", handler.GetTheaters)
	r.Get("/api/v1/theaters/{id}/showtime", handler.GetTheaterShowtimes)
	return r
}
