package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"theater-showtime/internal/apperror"
	"theater-showtime/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTheaterHandler_GetTheaters(t *testing.T) {
	tests := []struct {
		name       string
		service    *mockTheaterService
		wantStatus int
		wantLen    int
	}{
		{
			name: "theaters returned",
			service: &mockTheaterService{
				GetTheatersFunc: func(ctx context.Context) ([]response.TheaterResponse, error) {
					return []response.TheaterResponse{
						{ID: "T1", Name: "Cineplex", Location: "Downtown"},
						{ID: "T2", Name: "Grand", Location: "Uptown"},
					}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantLen:    2,
		},
		{
			name: "empty catalog yields an empty list",
			service: &mockTheaterService{
				GetTheatersFunc: func(ctx context.Context) ([]response.TheaterResponse, error) {
					return []response.TheaterResponse{}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantLen:    0,
		},
		{
			name: "storage failure maps to a generic 500",
			service: &mockTheaterService{
				GetTheatersFunc: func(ctx context.Context) ([]response.TheaterResponse, error) {
					return nil, apperror.NewStorage(assert.AnError)
				},
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTheaterHandler(tt.service, &mockShowtimeService{}, zap.NewNop())
			router := newTheaterRouter(handler)

			w, body := executeRequest(t, router, http.MethodGet, "/api/v1/theaters")

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusOK {
				assert.False(t, body.Status)
				assert.Equal(t, "Internal server error", body.Message)
				return
			}

			require.True(t, body.Status)

			var theaters []response.TheaterResponse
			require.NoError(t, json.Unmarshal(body.Data, &theaters))
			assert.Len(t, theaters, tt.wantLen)
		})
	}
}

func TestTheaterHandler_GetTheaterShowtimes(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		service    *mockShowtimeService
		wantStatus int
	}{
		{
			name: "showtimes for the theater returned",
			url:  "/api/v1/theaters/9f0c7c6e-8b3e-4f1c-9a46-0a9d2f6b7c11/showtime",
			service: &mockShowtimeService{
				GetShowtimesByTheaterFunc: func(ctx context.Context, theaterID string) ([]response.ShowtimeResponse, error) {
					return []response.ShowtimeResponse{{ID: "S1"}}, nil
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid theater id maps to 400",
			url:  "/api/v1/theaters/not-a-uuid/showtime",
			service: &mockShowtimeService{
				GetShowtimesByTheaterFunc: func(ctx context.Context, theaterID string) ([]response.ShowtimeResponse, error) {
					return nil, apperror.NewInvalidArgument(theaterID, "theater ID must be a UUID")
				},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown theater maps to 404",
			url:  "/api/v1/theaters/9f0c7c6e-8b3e-4f1c-9a46-0a9d2f6b7c11/showtime",
			service: &mockShowtimeService{
				GetShowtimesByTheaterFunc: func(ctx context.Context, theaterID string) ([]response.ShowtimeResponse, error) {
					return nil, apperror.NewNotFound("theater", theaterID)
				},
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTheaterID string
			service := &mockShowtimeService{
				GetShowtimesByTheaterFunc: func(ctx context.Context, theaterID string) ([]response.ShowtimeResponse, error) {
					gotTheaterID = theaterID
					return tt.service.GetShowtimesByTheaterFunc(ctx, theaterID)
				},
			}

			handler := NewTheaterHandler(&mockTheaterService{}, service, zap.NewNop())
			router := newTheaterRouter(handler)

			w, body := executeRequest(t, router, http.MethodGet, tt.url)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, gotTheaterID)

			if tt.wantStatus == http.StatusOK {
				require.True(t, body.Status)

				var showtimes []response.ShowtimeResponse
				require.NoError(t, json.Unmarshal(body.Data, &showtimes))
				require.Len(t, showtimes, 1)
				assert.Equal(t, "S1", showtimes[0].ID)
			} else {
				assert.False(t, body.Status)
			}
		})
	}
}
