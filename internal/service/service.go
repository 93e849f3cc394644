// Package service holds business logic orchestration between the NHL API
// client and the delivery layers. Kept intentionally lean: use-case
// coordination, payload normalization, comparison math and domain error
// shaping, with no transport details and no rendering.
package service

import (
	"context"
	"errors"

	"github.com/nhlstats/player-comparison-service/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInputError is newInvalidInput's exported counterpart for callers
// outside the package, mainly handlers validating request shape.
func NewInvalidInputError(fe []FieldError) error { return newInvalidInput(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PlayerService defines player-oriented use cases backed by the NHL API.
type PlayerService interface {
	GetPlayerWithStats(ctx context.Context, playerID, season, gameType string) (model.Player, error)
	GetMultiplePlayersWithStats(ctx context.Context, playerIDs []string, season, gameType string) ([]model.Player, error)
	GetGameLogs(ctx context.Context, playerID, season, gameType string) ([]model.GameLog, error)
	FilterPlayersByPosition(players []model.Player, position string) []model.Player
}

// ComparisonService defines the multi-player comparison use cases.
type ComparisonService interface {
	CompareMany(players []model.Player) (model.ComparisonResult, error)
	PairwiseSummary(a, b model.Player) string
	Similarity(a, b model.Player) float64
	Differentials(a, b model.Player) map[string]float64
	Rank(players []model.Player, stat string) []model.Player
}

// ChartService prepares chart-ready series and value maps from resolved
// players. Pure data shaping; rendering belongs to whoever consumes it.
type ChartService interface {
	BarChartData(players []model.Player, stat string) map[string]float64
	RadarChartData(players []model.Player) map[string]map[string]float64
	GameByGameSeries(player model.Player, stat string) []model.SeriesPoint
	CumulativeSeries(player model.Player, stat string) []model.SeriesPoint
	NormalizeStats(values map[string]float64) map[string]float64
}
