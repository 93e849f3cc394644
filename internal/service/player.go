package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nhlstats/player-comparison-service/internal/metrics"
	"github.com/nhlstats/player-comparison-service/internal/model"
	"github.com/nhlstats/player-comparison-service/internal/nhl"
)

// maxParallelFetches bounds the fan-out when loading several players at once.
const maxParallelFetches = 8

type playerService struct {
	api nhl.API
	log zerolog.Logger
}

func NewPlayerService(api nhl.API, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{api: api, log: l}
}

// GetPlayerWithStats fetches, resolves and aggregates one player. Upstream
// trouble degrades to a placeholder Player with zero stats; the error return
// is reserved for invalid parameters and cancelled contexts.
func (s *playerService) GetPlayerWithStats(ctx context.Context, playerID, season, gameType string) (model.Player, error) {
	var ferrs []FieldError
	if !isValidPlayerID(playerID) {
		ferrs = append(ferrs, FieldError{Field: "playerId", Message: "must be a numeric id"})
	}
	ferrs = append(ferrs, seasonParamErrors(season, gameType)...)
	if err := newInvalidInput(ferrs); err != nil {
		return model.Player{}, err
	}

	start := time.Now()
	info, err := s.api.PlayerInfo(ctx, playerID)
	if err != nil {
		return model.Player{}, err
	}
	rawLogs, err := s.api.PlayerGameLog(ctx, playerID, season, gameType)
	if err != nil {
		return model.Player{}, err
	}

	logs := NormalizeGameLogs(rawLogs, s.log)
	player := ResolvePlayer(playerID, info).
		WithGameLogs(logs).
		WithSeasonStats(AggregateStats(logs))

	if player.IsPlaceholder() {
		metrics.PlaceholderPlayers.Inc()
		s.log.Warn().Str("player_id", playerID).Msg("player resolved to placeholder")
	}
	s.log.Debug().
		Dur("took", time.Since(start)).
		Str("player_id", playerID).
		Int("games", len(logs)).
		Msg("player loaded")
	return player, nil
}

// GetMultiplePlayersWithStats loads players in parallel, preserving input
// order in the result. All fetches resolve before anything is returned.
func (s *playerService) GetMultiplePlayersWithStats(ctx context.Context, playerIDs []string, season, gameType string) ([]model.Player, error) {
	var ferrs []FieldError
	if len(playerIDs) == 0 {
		ferrs = append(ferrs, FieldError{Field: "playerIds", Message: "must not be empty"})
	}
	for _, id := range playerIDs {
		if !isValidPlayerID(id) {
			ferrs = append(ferrs, FieldError{Field: "playerIds", Message: "invalid player id: " + id})
		}
	}
	ferrs = append(ferrs, seasonParamErrors(season, gameType)...)
	if err := newInvalidInput(ferrs); err != nil {
		return nil, err
	}

	players := make([]model.Player, len(playerIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFetches)
	for i, id := range playerIDs {
		i, id := i, id
		g.Go(func() error {
			p, err := s.GetPlayerWithStats(gctx, id, season, gameType)
			if err != nil {
				return err
			}
			players[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return players, nil
}

// GetGameLogs fetches and normalizes the raw per-game rows for one player.
func (s *playerService) GetGameLogs(ctx context.Context, playerID, season, gameType string) ([]model.GameLog, error) {
	var ferrs []FieldError
	if !isValidPlayerID(playerID) {
		ferrs = append(ferrs, FieldError{Field: "playerId", Message: "must be a numeric id"})
	}
	ferrs = append(ferrs, seasonParamErrors(season, gameType)...)
	if err := newInvalidInput(ferrs); err != nil {
		return nil, err
	}

	raw, err := s.api.PlayerGameLog(ctx, playerID, season, gameType)
	if err != nil {
		return nil, err
	}
	return NormalizeGameLogs(raw, s.log), nil
}

// FilterPlayersByPosition keeps players whose position matches, ignoring case.
func (s *playerService) FilterPlayersByPosition(players []model.Player, position string) []model.Player {
	out := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.Position != "" && strings.EqualFold(p.Position, position) {
			out = append(out, p)
		}
	}
	return out
}
