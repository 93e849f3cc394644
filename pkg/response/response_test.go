package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/nhlstats/player-comparison-service/internal/nhl"
	"github.com/nhlstats/player-comparison-service/internal/service"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "nil error",
			err:        nil,
			wantStatus: http.StatusOK,
			wantError:  "ok",
		},
		{
			name: "invalid input",
			err: service.NewInvalidInputError([]service.FieldError{
				{Field: "season", Message: "must be an 8-digit code like 20232024"},
			}),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_input",
		},
		{
			name:       "wrapped invalid input",
			err:        fmt.Errorf("compare: %w", service.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_input",
		},
		{
			name:       "upstream unavailable",
			err:        fmt.Errorf("%w: status 503", nhl.ErrUnavailable),
			wantStatus: http.StatusBadGateway,
			wantError:  "upstream_unavailable",
		},
		{
			name:       "deadline exceeded",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantError:  "timeout",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := MapError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if payload.Error != tt.wantError {
				t.Errorf("payload.Error = %q, want %q", payload.Error, tt.wantError)
			}
		})
	}
}

func TestMapError_CarriesFieldErrors(t *testing.T) {
	err := service.NewInvalidInputError([]service.FieldError{
		{Field: "playerId", Message: "must be a numeric id"},
		{Field: "gameType", Message: "must be 2 (regular season) or 3 (playoffs)"},
	})

	_, payload := MapError(err)
	if len(payload.FieldErrors) != 2 {
		t.Fatalf("len(FieldErrors) = %d, want 2", len(payload.FieldErrors))
	}
	if payload.FieldErrors[0].Field != "playerId" {
		t.Errorf("first field = %q, want playerId", payload.FieldErrors[0].Field)
	}
}
