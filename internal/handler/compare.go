package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nhlstats/player-comparison-service/internal/service"
	"github.com/nhlstats/player-comparison-service/pkg/response"
)

type CompareHandler struct {
	players     service.PlayerService
	comparisons service.ComparisonService
	defaults    Defaults
}

func NewCompareHandler(players service.PlayerService, comparisons service.ComparisonService, defaults Defaults) *CompareHandler {
	return &CompareHandler{players: players, comparisons: comparisons, defaults: defaults}
}

func (h *CompareHandler) Register(r *gin.RouterGroup) {
	r.GET("/compare/:ids", h.compare)
	r.GET("/rank/:stat", h.rank)
}

// splitIDs turns a comma-separated id list into trimmed entries, dropping
// empties so trailing commas don't become phantom players.
func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// compare fetches every requested player and runs the full comparison:
// category leaders, pairwise similarity scores and stat differentials.
func (h *CompareHandler) compare(c *gin.Context) {
	start := time.Now()
	ids := splitIDs(c.Param("ids"))
	season, gameType := seasonParams(c, h.defaults)

	ctx, cancel := context.WithTimeout(c.Request.Context(), serviceTimeout)
	defer cancel()

	players, err := h.players.GetMultiplePlayersWithStats(ctx, ids, season, gameType)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	result, err := h.comparisons.CompareMany(players)

	logger := log.With().
		Str("path", c.Request.URL.Path).
		Str("season", season).
		Int("players", len(ids)).
		Dur("duration", time.Since(start)).
		Logger()

	if err != nil {
		status, _ := response.MapError(err)
		logger.Error().Err(err).Int("status", status).Msg("comparison failed")
		response.WriteError(c, err)
		return
	}

	logger.Info().Int("status", http.StatusOK).Msg("comparison computed")
	response.WriteData(c, http.StatusOK, result)
}

// rank orders the requested players by one stat, optionally narrowed to a
// position first.
func (h *CompareHandler) rank(c *gin.Context) {
	ids := splitIDs(c.Query("ids"))
	if len(ids) == 0 {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{
			Field:   "ids",
			Message: "must be a comma-separated list of player ids",
		}}))
		return
	}
	season, gameType := seasonParams(c, h.defaults)

	ctx, cancel := context.WithTimeout(c.Request.Context(), serviceTimeout)
	defer cancel()

	players, err := h.players.GetMultiplePlayersWithStats(ctx, ids, season, gameType)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if position := strings.TrimSpace(c.Query("position")); position != "" {
		players = h.players.FilterPlayersByPosition(players, position)
	}
	response.WriteData(c, http.StatusOK, h.comparisons.Rank(players, c.Param("stat")))
}
